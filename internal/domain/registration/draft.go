package registration

import "slices"

// Picture is a locally encoded profile image reference.
type Picture struct {
	ContentType string
	DataURL     string
	Size        int
}

// Draft accumulates registration fields across screens. The raw password is
// never stored; the create-account submit records its bcrypt hash.
type Draft struct {
	Email          string
	PasswordHash   string
	FullName       string
	ProfilePicture *Picture
	Interests      []string
}

// DraftPatch is a partial update to a Draft. Nil fields leave the draft
// unchanged.
type DraftPatch struct {
	Email          *string
	PasswordHash   *string
	FullName       *string
	ProfilePicture *Picture
	Interests      *[]string
}

// Merge applies the non-nil fields of p to d.
func (d *Draft) Merge(p DraftPatch) {
	if p.Email != nil {
		d.Email = *p.Email
	}
	if p.PasswordHash != nil {
		d.PasswordHash = *p.PasswordHash
	}
	if p.FullName != nil {
		d.FullName = *p.FullName
	}
	if p.ProfilePicture != nil {
		pic := *p.ProfilePicture
		d.ProfilePicture = &pic
	}
	if p.Interests != nil {
		d.Interests = slices.Clone(*p.Interests)
	}
}

// Clone returns a deep copy of d.
func (d Draft) Clone() Draft {
	out := d
	if d.ProfilePicture != nil {
		pic := *d.ProfilePicture
		out.ProfilePicture = &pic
	}
	out.Interests = slices.Clone(d.Interests)
	return out
}

// HasProfile reports whether any profile-screen field has been set.
func (d Draft) HasProfile() bool {
	return d.FullName != "" || d.ProfilePicture != nil || len(d.Interests) > 0
}
