package heart

import "github.com/charmbracelet/lipgloss"

// DefaultColor is used for any name not in the palette.
const DefaultColor = "white"

// Color pairs a palette name with its terminal color.
type Color struct {
	Name  string
	Value lipgloss.Color
}

// Bright ANSI colors, matching what most terminals call red, green, ...
var (
	ColorRed     = Color{Name: "red", Value: lipgloss.Color("9")}
	ColorGreen   = Color{Name: "green", Value: lipgloss.Color("10")}
	ColorYellow  = Color{Name: "yellow", Value: lipgloss.Color("11")}
	ColorBlue    = Color{Name: "blue", Value: lipgloss.Color("12")}
	ColorMagenta = Color{Name: "magenta", Value: lipgloss.Color("13")}
	ColorCyan    = Color{Name: "cyan", Value: lipgloss.Color("14")}
	ColorWhite   = Color{Name: "white", Value: lipgloss.Color("15")}

	Palette = []Color{
		ColorRed,
		ColorGreen,
		ColorBlue,
		ColorYellow,
		ColorMagenta,
		ColorCyan,
		ColorWhite,
	}
)

// ParseColor looks a color up by exact name. Unknown names, including case
// variants and the empty string, fall back to white.
func ParseColor(name string) Color {
	for _, c := range Palette {
		if c.Name == name {
			return c
		}
	}
	return ColorWhite
}

// ColorNames returns the palette names in display order.
func ColorNames() []string {
	names := make([]string, len(Palette))
	for i, c := range Palette {
		names[i] = c.Name
	}
	return names
}
