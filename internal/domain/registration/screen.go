package registration

import (
	"fmt"

	"github.com/jsamuelsen11/registration-flow/internal/domain"
)

// Screen identifies which step of the registration flow is active.
type Screen string

const (
	ScreenStart   Screen = "start"
	ScreenCreate  Screen = "create"
	ScreenProfile Screen = "profile"
	ScreenSuccess Screen = "success"
)

// screenOrder lists the screens in the only order the flow may visit them.
var screenOrder = []Screen{ScreenStart, ScreenCreate, ScreenProfile, ScreenSuccess}

// transition describes the single forward edge out of a screen. Free
// transitions can be requested directly by the client; the others are only
// taken by a successful submit on the source screen.
type transition struct {
	to   Screen
	free bool
}

var transitions = map[Screen]transition{
	ScreenStart:   {to: ScreenCreate, free: true},
	ScreenCreate:  {to: ScreenProfile},
	ScreenProfile: {to: ScreenSuccess, free: true},
}

// ParseScreen converts a raw string to a Screen.
// Returns a *domain.ValidationError for unknown values.
func ParseScreen(raw string) (Screen, error) {
	s := Screen(raw)
	if !s.IsValid() {
		return "", &domain.ValidationError{
			Fields: map[string]string{"screen": fmt.Sprintf("invalid: %q", raw)},
		}
	}
	return s, nil
}

// IsValid returns true if the screen is one of the defined constants.
func (s Screen) IsValid() bool {
	switch s {
	case ScreenStart, ScreenCreate, ScreenProfile, ScreenSuccess:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Screen) String() string {
	return string(s)
}

// Next returns the screen that follows s. The second result is false on
// the terminal success screen.
func (s Screen) Next() (Screen, bool) {
	t, ok := transitions[s]
	return t.to, ok
}

// Index returns the position of s in the flow, or -1 for invalid screens.
func (s Screen) Index() int {
	for i, candidate := range screenOrder {
		if candidate == s {
			return i
		}
	}
	return -1
}

// IsFreeTransition reports whether a client may move from -> to without
// submitting the source screen: the start screen's call to action and the
// profile screen's skip action.
func IsFreeTransition(from, to Screen) bool {
	t, ok := transitions[from]
	return ok && t.to == to && t.free
}
