package styles

import "github.com/charmbracelet/lipgloss"

// Theme is a named color palette. Applying a theme rebinds the package
// color variables; styles built from them pick the change up because they
// are rebuilt by Apply.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Muted     lipgloss.Color
	Surface   lipgloss.Color
	Text      lipgloss.Color
	Border    lipgloss.Color
}

var themes = map[string]Theme{
	"default": {
		Name:      "default",
		Primary:   lipgloss.Color("#A78BFA"),
		Secondary: lipgloss.Color("#10B981"),
		Warning:   lipgloss.Color("#F59E0B"),
		Error:     lipgloss.Color("#F87171"),
		Muted:     lipgloss.Color("#9CA3AF"),
		Surface:   lipgloss.Color("#1F2937"),
		Text:      lipgloss.Color("#F9FAFB"),
		Border:    lipgloss.Color("#6B7280"),
	},
	"monokai": {
		Name:      "monokai",
		Primary:   lipgloss.Color("#AE81FF"),
		Secondary: lipgloss.Color("#A6E22E"),
		Warning:   lipgloss.Color("#E6DB74"),
		Error:     lipgloss.Color("#F92672"),
		Muted:     lipgloss.Color("#75715E"),
		Surface:   lipgloss.Color("#272822"),
		Text:      lipgloss.Color("#F8F8F2"),
		Border:    lipgloss.Color("#75715E"),
	},
	"dracula": {
		Name:      "dracula",
		Primary:   lipgloss.Color("#BD93F9"),
		Secondary: lipgloss.Color("#50FA7B"),
		Warning:   lipgloss.Color("#F1FA8C"),
		Error:     lipgloss.Color("#FF5555"),
		Muted:     lipgloss.Color("#6272A4"),
		Surface:   lipgloss.Color("#282A36"),
		Text:      lipgloss.Color("#F8F8F2"),
		Border:    lipgloss.Color("#6272A4"),
	},
	"nord": {
		Name:      "nord",
		Primary:   lipgloss.Color("#B48EAD"),
		Secondary: lipgloss.Color("#A3BE8C"),
		Warning:   lipgloss.Color("#EBCB8B"),
		Error:     lipgloss.Color("#BF616A"),
		Muted:     lipgloss.Color("#4C566A"),
		Surface:   lipgloss.Color("#2E3440"),
		Text:      lipgloss.Color("#ECEFF4"),
		Border:    lipgloss.Color("#4C566A"),
	},
}

// ThemeNames returns the available theme names.
func ThemeNames() []string {
	return []string{"default", "monokai", "dracula", "nord"}
}

// GetTheme returns the named theme, falling back to default for unknown
// names.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["default"]
}

// Apply rebinds the package palette and rebuilds every derived style.
// Call once at startup, before any rendering.
func Apply(t Theme) {
	PrimaryColor = t.Primary
	SecondaryColor = t.Secondary
	WarningColor = t.Warning
	ErrorColor = t.Error
	MutedColor = t.Muted
	SurfaceColor = t.Surface
	TextColor = t.Text
	BorderColor = t.Border

	Primary = lipgloss.NewStyle().Foreground(PrimaryColor)
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Warning = lipgloss.NewStyle().Foreground(WarningColor)
	Error = lipgloss.NewStyle().Foreground(ErrorColor)
	Muted = lipgloss.NewStyle().Foreground(MutedColor)
	Text = lipgloss.NewStyle().Foreground(TextColor)

	Title = lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor)
	Subtitle = lipgloss.NewStyle().Foreground(MutedColor).Italic(true)

	StepBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Padding(1, 2)
	CriticalStepBox = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(WarningColor).
		Padding(1, 2)

	StepDone = lipgloss.NewStyle().Foreground(SecondaryColor).Strikethrough(true)
	StepCurrent = lipgloss.NewStyle().Bold(true).Foreground(TextColor)
	StepPending = lipgloss.NewStyle().Foreground(MutedColor)

	TimerRunning = lipgloss.NewStyle().Bold(true).Foreground(SecondaryColor)
	TimerPaused = lipgloss.NewStyle().Foreground(WarningColor)
	TimerDone = lipgloss.NewStyle().Bold(true).Foreground(ErrorColor).Blink(true)

	Banner = lipgloss.NewStyle().
		Bold(true).Foreground(TextColor).Background(PrimaryColor).Padding(0, 2)
	CompletionBanner = lipgloss.NewStyle().
		Bold(true).Foreground(TextColor).Background(SecondaryColor).Padding(0, 2)

	Reminder = lipgloss.NewStyle().Foreground(WarningColor).Italic(true)
	CountdownBadge = lipgloss.NewStyle().
		Bold(true).Foreground(SurfaceColor).Background(WarningColor).Padding(0, 1)

	HelpBar = lipgloss.NewStyle().Foreground(MutedColor)
	HelpKey = lipgloss.NewStyle().Bold(true).Foreground(TextColor)
}
