package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette is one color scheme
type Palette struct {
	Name    string
	Accent  lipgloss.Color
	Surface lipgloss.Color
	Raised  lipgloss.Color
	Dim     lipgloss.Color
	Muted   lipgloss.Color
	Text    lipgloss.Color
	Green   lipgloss.Color
	Red     lipgloss.Color
}

// Color palettes
var (
	DarkPalette = Palette{
		Name:    "dark",
		Accent:  lipgloss.Color("#E5A00D"),
		Surface: lipgloss.Color("#1F2937"),
		Raised:  lipgloss.Color("#374151"),
		Dim:     lipgloss.Color("#6B7280"),
		Muted:   lipgloss.Color("#9CA3AF"),
		Text:    lipgloss.Color("#F9FAFB"),
		Green:   lipgloss.Color("#10B981"),
		Red:     lipgloss.Color("#EF4444"),
	}

	LightPalette = Palette{
		Name:    "light",
		Accent:  lipgloss.Color("#B45309"),
		Surface: lipgloss.Color("#F3F4F6"),
		Raised:  lipgloss.Color("#E5E7EB"),
		Dim:     lipgloss.Color("#9CA3AF"),
		Muted:   lipgloss.Color("#4B5563"),
		Text:    lipgloss.Color("#111827"),
		Green:   lipgloss.Color("#047857"),
		Red:     lipgloss.Color("#B91C1C"),
	}
)

// Current is the palette the styles below were built from
var Current = DarkPalette

// Text styles
var (
	TitleStyle     lipgloss.Style
	SubtitleStyle  lipgloss.Style
	DimStyle       lipgloss.Style
	AccentStyle    lipgloss.Style
	ErrorStyle     lipgloss.Style
	SuccessStyle   lipgloss.Style
	HighlightStyle lipgloss.Style
)

// Tab styles
var (
	ActiveTabStyle   lipgloss.Style
	InactiveTabStyle lipgloss.Style
)

// Panel styles
var (
	ActiveBorder   lipgloss.Style
	InactiveBorder lipgloss.Style
	ToastStyle     lipgloss.Style
)

// List item styles
var (
	SelectedItemStyle lipgloss.Style
	NormalItemStyle   lipgloss.Style
)

// Form styles
var (
	LabelStyle         lipgloss.Style
	FocusedLabelStyle  lipgloss.Style
	InputTextStyle     lipgloss.Style
	ButtonStyle        lipgloss.Style
	FocusedButtonStyle lipgloss.Style
)

// Help styles
var (
	HelpKeyStyle  lipgloss.Style
	HelpDescStyle lipgloss.Style
)

// Progress bar styles
var (
	ProgressFullStyle  lipgloss.Style
	ProgressEmptyStyle lipgloss.Style
)

// Badge styles
var (
	BadgeStyle    lipgloss.Style
	DimBadgeStyle lipgloss.Style
)

// Filter and match highlight styles
var (
	FilterPromptStyle   lipgloss.Style
	MatchHighlightStyle lipgloss.Style
)

func init() {
	Apply(DarkPalette)
}

// Apply rebuilds every style from p
func Apply(p Palette) {
	Current = p

	TitleStyle = lipgloss.NewStyle().Foreground(p.Text).Bold(true)
	SubtitleStyle = lipgloss.NewStyle().Foreground(p.Muted)
	DimStyle = lipgloss.NewStyle().Foreground(p.Dim)
	AccentStyle = lipgloss.NewStyle().Foreground(p.Accent)
	ErrorStyle = lipgloss.NewStyle().Foreground(p.Red)
	SuccessStyle = lipgloss.NewStyle().Foreground(p.Green)
	HighlightStyle = lipgloss.NewStyle().
		Foreground(p.Surface).
		Background(p.Accent).
		Padding(0, 1)

	ActiveTabStyle = lipgloss.NewStyle().
		Foreground(p.Surface).
		Background(p.Accent).
		Bold(true).
		Padding(0, 2)
	InactiveTabStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Padding(0, 2)

	ActiveBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Padding(0, 1)
	InactiveBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Dim).
		Padding(0, 1)
	ToastStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Foreground(p.Text).
		Background(p.Surface).
		Bold(true).
		Padding(0, 2)

	SelectedItemStyle = lipgloss.NewStyle().
		Foreground(p.Text).
		Background(p.Raised).
		Padding(0, 1)
	NormalItemStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().Foreground(p.Dim).Width(10)
	FocusedLabelStyle = lipgloss.NewStyle().Foreground(p.Accent).Bold(true).Width(10)
	InputTextStyle = lipgloss.NewStyle().Foreground(p.Text)
	ButtonStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Background(p.Raised).
		Padding(0, 2)
	FocusedButtonStyle = lipgloss.NewStyle().
		Foreground(p.Surface).
		Background(p.Accent).
		Bold(true).
		Padding(0, 2)

	HelpKeyStyle = lipgloss.NewStyle().Foreground(p.Accent)
	HelpDescStyle = lipgloss.NewStyle().Foreground(p.Dim)

	ProgressFullStyle = lipgloss.NewStyle().Foreground(p.Accent)
	ProgressEmptyStyle = lipgloss.NewStyle().Foreground(p.Dim)

	BadgeStyle = lipgloss.NewStyle().
		Foreground(p.Surface).
		Background(p.Accent).
		Padding(0, 1)
	DimBadgeStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Background(p.Raised).
		Padding(0, 1)

	FilterPromptStyle = lipgloss.NewStyle().Foreground(p.Accent).Bold(true)
	MatchHighlightStyle = lipgloss.NewStyle().Foreground(p.Accent).Bold(true)
}

// ApplyTheme switches between the dark and light palettes
func ApplyTheme(dark bool) {
	if dark {
		Apply(DarkPalette)
		return
	}
	Apply(LightPalette)
}

// Helper functions

// Truncate truncates a string to the given display width with ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if width <= 3 {
		if width > len(runes) {
			return s
		}
		return string(runes[:width])
	}
	for len(runes) > 0 && lipgloss.Width(string(runes))+3 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

// RenderProgressBar renders a progress bar
func RenderProgressBar(percent float64, width int) string {
	if width < 3 {
		return ""
	}

	filled := int(float64(width) * percent / 100)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	return ProgressFullStyle.Render(strings.Repeat("█", filled)) +
		ProgressEmptyStyle.Render(strings.Repeat("░", width-filled))
}

// HighlightMatches renders s with the runes at positions emphasised
func HighlightMatches(s string, positions []int, base lipgloss.Style) string {
	if len(positions) == 0 {
		return base.Render(s)
	}
	hit := make(map[int]bool, len(positions))
	for _, p := range positions {
		hit[p] = true
	}

	var b strings.Builder
	var run []rune
	runHit := false
	flush := func() {
		if len(run) == 0 {
			return
		}
		style := base
		if runHit {
			style = MatchHighlightStyle.Inherit(base)
		}
		b.WriteString(style.Render(string(run)))
		run = run[:0]
	}
	for i, r := range []rune(s) {
		if hit[i] != runHit {
			flush()
			runHit = hit[i]
		}
		run = append(run, r)
	}
	flush()
	return b.String()
}
