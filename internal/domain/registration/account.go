package registration

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/jsamuelsen11/registration-flow/internal/domain"
)

// Input limits carried over from the account form.
const (
	MaxEmailLength    = 254
	MaxPasswordLength = 128
)

// Messages shown next to the account form fields.
const (
	MsgInvalidEmail     = "Please enter a valid email address."
	MsgPasswordMismatch = "Passwords do not match."
	MsgPasswordRules    = "must satisfy all password requirements"
	MsgAcceptTerms      = "must be accepted"
)

// Field keys used in account validation errors.
const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
	FieldAcceptedTerms   = "accepted_terms"
)

// emailPart excludes "@" and whitespace: RE2's ASCII \s plus vertical tab,
// every Unicode separator and the byte order mark.
const emailPart = `[^\s\x0b\p{Z}\x{feff}@]+`

// emailPattern is loose: something, "@", something, ".", something.
var emailPattern = regexp.MustCompile(`^` + emailPart + `@` + emailPart + `\.` + emailPart + `$`)

// AccountForm is the current content of the account-creation screen.
type AccountForm struct {
	Email           string
	Password        string
	ConfirmPassword string
	AcceptedTerms   bool
}

// Touched records which fields the user has focused and left at least once.
// Inline errors are only reported for touched fields.
type Touched struct {
	Email    bool
	Password bool
	Confirm  bool
}

// AllTouched marks every field as touched, as a failed submit does.
func AllTouched() Touched {
	return Touched{Email: true, Password: true, Confirm: true}
}

// AccountValidation is the result of validating an AccountForm.
type AccountValidation struct {
	EmailValid     bool
	Rules          PasswordRules
	Strength       Strength
	PasswordsMatch bool
	Submittable    bool

	// Errors holds the inline messages for touched fields only.
	Errors map[string]string

	// all holds every message regardless of touched state.
	all map[string]string
}

// ValidEmail reports whether email matches the loose address pattern.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidateAccount recomputes the whole account validation state for form.
func ValidateAccount(form AccountForm, touched Touched) AccountValidation {
	rules := CheckPassword(form.Password)

	v := AccountValidation{
		EmailValid:     ValidEmail(form.Email),
		Rules:          rules,
		Strength:       StrengthOf(rules),
		PasswordsMatch: form.Password == form.ConfirmPassword,
		Errors:         make(map[string]string),
		all:            make(map[string]string),
	}

	emailLen := utf8.RuneCountInString(form.Email)
	switch {
	case emailLen == 0:
		v.all[FieldEmail] = domain.MsgRequired
	case emailLen > MaxEmailLength:
		v.all[FieldEmail] = fmt.Sprintf("must be at most %d characters", MaxEmailLength)
		v.showIf(touched.Email, FieldEmail)
	case !v.EmailValid:
		v.all[FieldEmail] = MsgInvalidEmail
		v.showIf(touched.Email, FieldEmail)
	}

	switch {
	case utf8.RuneCountInString(form.Password) > MaxPasswordLength:
		v.all[FieldPassword] = fmt.Sprintf("must be at most %d characters", MaxPasswordLength)
		v.showIf(touched.Password, FieldPassword)
	case !rules.All():
		v.all[FieldPassword] = MsgPasswordRules
	}

	switch {
	case form.ConfirmPassword == "" && form.Password != "":
		v.all[FieldConfirmPassword] = domain.MsgRequired
	case !v.PasswordsMatch:
		v.all[FieldConfirmPassword] = MsgPasswordMismatch
		v.showIf(touched.Confirm, FieldConfirmPassword)
	}

	if !form.AcceptedTerms {
		v.all[FieldAcceptedTerms] = MsgAcceptTerms
	}

	v.Submittable = len(v.all) == 0
	return v
}

// showIf copies the message for field into the inline errors when the field
// has been touched.
func (v *AccountValidation) showIf(touched bool, field string) {
	if touched {
		v.Errors[field] = v.all[field]
	}
}

// SubmitError returns nil when the form can be submitted, otherwise a
// *domain.ValidationError carrying every failing field as if all fields had
// been touched.
func (v AccountValidation) SubmitError() error {
	if v.Submittable {
		return nil
	}
	fields := make(map[string]string, len(v.all))
	for k, msg := range v.all {
		fields[k] = msg
	}
	return &domain.ValidationError{Fields: fields}
}
