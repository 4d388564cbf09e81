package registration

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/registration-flow/internal/domain"
)

// MaxFullNameLength is the longest accepted full name, in runes.
const MaxFullNameLength = 50

// Field keys used in profile validation errors.
const (
	FieldFullName = "full_name"
	FieldInterest = "interest"
	FieldPicture  = "picture"
)

// interestCatalog is the fixed list of learning interests, in display order.
var interestCatalog = []string{
	"PLC Programming",
	"SCADA Systems",
	"HMI Design",
	"Industrial Networks",
	"Robotics",
}

// Interests returns a copy of the interest catalogue in display order.
func Interests() []string {
	return slices.Clone(interestCatalog)
}

// IsKnownInterest reports whether name is in the catalogue.
func IsKnownInterest(name string) bool {
	return slices.Contains(interestCatalog, name)
}

// ProfileForm is the working state of the profile-setup screen. It is merged
// into the Draft only by a successful submit.
type ProfileForm struct {
	Interests []string
	Picture   *Picture
}

// ToggleInterest adds name to the selection if absent and removes it if
// present. Toggling the same name twice restores the original selection.
func (p *ProfileForm) ToggleInterest(name string) error {
	if !IsKnownInterest(name) {
		return &domain.ValidationError{
			Fields: map[string]string{FieldInterest: fmt.Sprintf("unknown interest %q", name)},
		}
	}
	if i := slices.Index(p.Interests, name); i >= 0 {
		p.Interests = slices.Delete(p.Interests, i, i+1)
		return nil
	}
	p.Interests = append(p.Interests, name)
	return nil
}

// Selected reports whether name is currently selected.
func (p ProfileForm) Selected(name string) bool {
	return slices.Contains(p.Interests, name)
}

// Clone returns a deep copy of p.
func (p ProfileForm) Clone() ProfileForm {
	out := ProfileForm{Interests: slices.Clone(p.Interests)}
	if p.Picture != nil {
		pic := *p.Picture
		out.Picture = &pic
	}
	return out
}

// ValidateFullName checks that name is non-empty after trimming and within
// the length limit.
func ValidateFullName(name string) error {
	trimmed := strings.TrimSpace(name)
	switch {
	case trimmed == "":
		return &domain.ValidationError{Fields: map[string]string{FieldFullName: domain.MsgRequired}}
	case utf8.RuneCountInString(trimmed) > MaxFullNameLength:
		return &domain.ValidationError{Fields: map[string]string{
			FieldFullName: fmt.Sprintf("must be at most %d characters", MaxFullNameLength),
		}}
	}
	return nil
}
