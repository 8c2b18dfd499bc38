package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/cosmic/internal/catalog"
)

// Theme defines colors and styles for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Header, nav and footer bars
	SurfaceAlt string // Page panels
	FocusBg    string // Focused input and active tab

	// List colors
	SelectionBg   string // Selected row background
	SelectionText string // Selected row text

	// Border colors
	Border      string
	BorderMuted string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	// Like heart and now-playing marker
	Liked   string
	Playing string

	// FormatColors colors the cart format badges.
	FormatColors map[catalog.Format]string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		SurfaceAlt: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SurfaceAlt)).
			Foreground(lipgloss.Color(t.Text)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		InfoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		LikedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Liked)),

		PlayingText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Playing)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		formatColors: t.FormatColors,
		background:   t.Background,
		muted:        t.Muted,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	// Base
	Background lipgloss.Style
	Surface    lipgloss.Style
	SurfaceAlt lipgloss.Style

	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style
	LikedText   lipgloss.Style
	PlayingText lipgloss.Style

	// Components
	Header   lipgloss.Style
	Footer   lipgloss.Style
	Logo     lipgloss.Style
	Selected lipgloss.Style

	formatColors map[catalog.Format]string
	background   string
	muted        string
}

// FormatBadge returns the badge style for a cart format.
func (s Styles) FormatBadge(format catalog.Format) lipgloss.Style {
	color := s.formatColors[format]
	if color == "" {
		color = s.muted
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.background)).
		Background(lipgloss.Color(color)).
		Padding(0, 1)
}

// WithBackground returns a copy of Styles with every text style painted on
// bgColor, so segments don't fall back to the terminal background.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)

	return Styles{
		Background: s.Background.Background(bg),
		Surface:    s.Surface.Background(bg),
		SurfaceAlt: s.SurfaceAlt.Background(bg),

		Text:        s.Text.Background(bg),
		MutedText:   s.MutedText.Background(bg),
		FaintText:   s.FaintText.Background(bg),
		AccentText:  s.AccentText.Background(bg),
		SuccessText: s.SuccessText.Background(bg),
		WarningText: s.WarningText.Background(bg),
		DangerText:  s.DangerText.Background(bg),
		InfoText:    s.InfoText.Background(bg),
		LikedText:   s.LikedText.Background(bg),
		PlayingText: s.PlayingText.Background(bg),

		Header:   s.Header.Background(bg),
		Footer:   s.Footer.Background(bg),
		Logo:     s.Logo.Background(bg),
		Selected: s.Selected,

		formatColors: s.formatColors,
		background:   s.background,
		muted:        s.muted,
	}
}

// Theme definitions

const defaultThemeName = "Nebula"

var themes = map[string]Theme{
	"Nebula":  nebulaTheme(),
	"Aurora":  auroraTheme(),
	"Eclipse": eclipseTheme(),
}

var themeOrder = []string{"Nebula", "Aurora", "Eclipse"}

// GetTheme returns a theme by name, falling back to Nebula.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nebulaTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return append([]string(nil), themeOrder...)
}

func nebulaTheme() Theme {
	// Deep purple and blue gradient of the web landing page.
	return Theme{
		Name: "Nebula",

		Background: "#0b0820",
		Surface:    "#151033",
		SurfaceAlt: "#1d1745",
		FocusBg:    "#2a2160",

		SelectionBg:   "#4c1d95", // violet-900
		SelectionText: "#f5f3ff", // violet-50

		Border:      "#3b2f7a",
		BorderMuted: "#1d1745",
		BorderFocus: "#a78bfa", // violet-400

		Text:    "#ede9fe", // violet-100
		Muted:   "#a5a0c8",
		Faint:   "#6f6a96",
		Accent:  "#a78bfa", // violet-400
		Success: "#34d399", // emerald-400
		Warning: "#fbbf24", // amber-400
		Danger:  "#f87171", // red-400
		Info:    "#60a5fa", // blue-400

		Liked:   "#f472b6", // pink-400
		Playing: "#22d3ee", // cyan-400

		FormatColors: map[catalog.Format]string{
			catalog.FormatMP3:  "#60a5fa",
			catalog.FormatFLAC: "#a78bfa",
			catalog.FormatWAV:  "#f472b6",
		},
	}
}

func auroraTheme() Theme {
	// Greens and teals on a polar night base.
	return Theme{
		Name: "Aurora",

		Background: "#0b1416",
		Surface:    "#102024",
		SurfaceAlt: "#142a2f",
		FocusBg:    "#1b3a40",

		SelectionBg:   "#0f766e", // teal-700
		SelectionText: "#f0fdfa", // teal-50

		Border:      "#21474e",
		BorderMuted: "#142a2f",
		BorderFocus: "#5eead4", // teal-300

		Text:    "#e6f4f1",
		Muted:   "#93b5b0",
		Faint:   "#5f7f7a",
		Accent:  "#5eead4", // teal-300
		Success: "#86efac", // green-300
		Warning: "#fde68a", // amber-200
		Danger:  "#fb7185", // rose-400
		Info:    "#7dd3fc", // sky-300

		Liked:   "#fb7185",
		Playing: "#86efac",

		FormatColors: map[catalog.Format]string{
			catalog.FormatMP3:  "#7dd3fc",
			catalog.FormatFLAC: "#5eead4",
			catalog.FormatWAV:  "#c4b5fd",
		},
	}
}

func eclipseTheme() Theme {
	// Neutral grays with an amber corona.
	return Theme{
		Name: "Eclipse",

		Background: "#09090b", // zinc-950
		Surface:    "#18181b", // zinc-900
		SurfaceAlt: "#27272a", // zinc-800
		FocusBg:    "#323238",

		SelectionBg:   "#b45309", // amber-700
		SelectionText: "#fafafa", // zinc-50

		Border:      "#3f3f46", // zinc-700
		BorderMuted: "#27272a", // zinc-800
		BorderFocus: "#f59e0b", // amber-500

		Text:    "#f4f4f5", // zinc-100
		Muted:   "#a1a1aa", // zinc-400
		Faint:   "#71717a", // zinc-500
		Accent:  "#f59e0b", // amber-500
		Success: "#4ade80", // green-400
		Warning: "#facc15", // yellow-400
		Danger:  "#ef4444", // red-500
		Info:    "#38bdf8", // sky-400

		Liked:   "#ef4444",
		Playing: "#4ade80",

		FormatColors: map[catalog.Format]string{
			catalog.FormatMP3:  "#a1a1aa",
			catalog.FormatFLAC: "#38bdf8",
			catalog.FormatWAV:  "#f59e0b",
		},
	}
}
