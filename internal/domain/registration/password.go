package registration

import (
	"strings"
	"unicode/utf8"
)

// MinPasswordLength is the shortest password that satisfies the length rule.
const MinPasswordLength = 8

// SpecialCharacters is the set a password must draw at least one character from.
const SpecialCharacters = `!@#$%^&*(),.?":{}|<>`

// Strength labels, indexed by the satisfied-rule count.
const (
	LabelWeak   = "Weak"
	LabelMedium = "Medium"
	LabelStrong = "Strong"
)

// Tone tells the client which colour to render the strength meter in.
type Tone string

const (
	ToneError   Tone = "error"
	ToneWarning Tone = "warning"
	ToneSuccess Tone = "success"
)

// ruleCount is the number of independent password rules.
const ruleCount = 4

// PasswordRules records which composition rules a password satisfies.
type PasswordRules struct {
	MinLength    bool
	HasUppercase bool
	HasNumber    bool
	HasSpecial   bool
}

// CheckPassword evaluates the four composition rules against pw. Uppercase
// and digit checks are ASCII-only; length counts runes.
func CheckPassword(pw string) PasswordRules {
	rules := PasswordRules{
		MinLength:  utf8.RuneCountInString(pw) >= MinPasswordLength,
		HasSpecial: strings.ContainsAny(pw, SpecialCharacters),
	}
	for i := range len(pw) {
		c := pw[i]
		switch {
		case c >= 'A' && c <= 'Z':
			rules.HasUppercase = true
		case c >= '0' && c <= '9':
			rules.HasNumber = true
		}
	}
	return rules
}

// Satisfied returns how many rules hold.
func (r PasswordRules) Satisfied() int {
	n := 0
	for _, ok := range []bool{r.MinLength, r.HasUppercase, r.HasNumber, r.HasSpecial} {
		if ok {
			n++
		}
	}
	return n
}

// All reports whether every rule holds.
func (r PasswordRules) All() bool {
	return r.Satisfied() == ruleCount
}

// Strength is the derived password strength shown next to the password field.
type Strength struct {
	Score   int
	Label   string
	Tone    Tone
	Percent int
}

// StrengthOf maps satisfied rules to a score and label: 0 has no label,
// 1-2 is Weak, 3 is Medium and 4 is Strong.
func StrengthOf(r PasswordRules) Strength {
	score := r.Satisfied()

	s := Strength{
		Score:   score,
		Percent: score * 100 / ruleCount,
		Tone:    ToneError,
	}
	switch {
	case score == 0:
	case score <= 2:
		s.Label = LabelWeak
	case score == 3:
		s.Label = LabelMedium
		s.Tone = ToneWarning
	default:
		s.Label = LabelStrong
		s.Tone = ToneSuccess
	}
	return s
}
