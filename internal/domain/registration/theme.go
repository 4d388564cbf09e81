package registration

// Theme is the colour scheme the client renders the flow with.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle returns the opposite theme. Unknown values toggle to dark, the same
// as light.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// String implements fmt.Stringer.
func (t Theme) String() string {
	return string(t)
}
