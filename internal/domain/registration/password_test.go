package registration

import "testing"

func TestCheckPassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		pw   string
		want PasswordRules
	}{
		{name: "empty", pw: "", want: PasswordRules{}},
		{name: "lowercase only", pw: "abc", want: PasswordRules{}},
		{name: "length only", pw: "abcdefgh", want: PasswordRules{MinLength: true}},
		{name: "uppercase only", pw: "A", want: PasswordRules{HasUppercase: true}},
		{name: "digit only", pw: "7", want: PasswordRules{HasNumber: true}},
		{name: "special only", pw: "?", want: PasswordRules{HasSpecial: true}},
		{
			name: "all rules",
			pw:   "Abcdef1!",
			want: PasswordRules{MinLength: true, HasUppercase: true, HasNumber: true, HasSpecial: true},
		},
		{name: "non-ascii uppercase ignored", pw: "Ébc", want: PasswordRules{}},
		{name: "length counts runes", pw: "ééééééé1", want: PasswordRules{MinLength: true, HasNumber: true}},
		{name: "unlisted symbol is not special", pw: "a-b_c+d", want: PasswordRules{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CheckPassword(tt.pw); got != tt.want {
				t.Errorf("CheckPassword(%q) = %+v, want %+v", tt.pw, got, tt.want)
			}
		})
	}
}

func TestCheckPassword_EverySpecialCharacterCounts(t *testing.T) {
	t.Parallel()

	for _, c := range SpecialCharacters {
		if !CheckPassword(string(c)).HasSpecial {
			t.Errorf("CheckPassword(%q).HasSpecial = false, want true", c)
		}
	}
}

func TestStrengthOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		rules     PasswordRules
		wantScore int
		wantLabel string
		wantTone  Tone
	}{
		{name: "none", rules: PasswordRules{}, wantScore: 0, wantLabel: "", wantTone: ToneError},
		{name: "one", rules: PasswordRules{MinLength: true}, wantScore: 1, wantLabel: LabelWeak, wantTone: ToneError},
		{
			name:      "two",
			rules:     PasswordRules{MinLength: true, HasNumber: true},
			wantScore: 2, wantLabel: LabelWeak, wantTone: ToneError,
		},
		{
			name:      "three",
			rules:     PasswordRules{MinLength: true, HasNumber: true, HasSpecial: true},
			wantScore: 3, wantLabel: LabelMedium, wantTone: ToneWarning,
		},
		{
			name:      "four",
			rules:     PasswordRules{MinLength: true, HasUppercase: true, HasNumber: true, HasSpecial: true},
			wantScore: 4, wantLabel: LabelStrong, wantTone: ToneSuccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := StrengthOf(tt.rules)
			if got.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", got.Score, tt.wantScore)
			}
			if got.Label != tt.wantLabel {
				t.Errorf("Label = %q, want %q", got.Label, tt.wantLabel)
			}
			if got.Tone != tt.wantTone {
				t.Errorf("Tone = %q, want %q", got.Tone, tt.wantTone)
			}
			if got.Percent != tt.wantScore*25 {
				t.Errorf("Percent = %d, want %d", got.Percent, tt.wantScore*25)
			}
		})
	}
}

func TestStrength_LongPasswordsWithAllClassesAreStrong(t *testing.T) {
	t.Parallel()

	for _, pw := range []string{"Abcdefg1!", "ZZZZZZZZ9#", "Pa55word{}", "xY0|xxxxxxxxxxxxxxxxxxxxx"} {
		s := StrengthOf(CheckPassword(pw))
		if s.Score != 4 || s.Label != LabelStrong {
			t.Errorf("strength(%q) = %d %q, want 4 %q", pw, s.Score, s.Label, LabelStrong)
		}
	}
}
