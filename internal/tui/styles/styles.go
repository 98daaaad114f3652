package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - all colors meet WCAG AA contrast (4.5:1) on dark surfaces
	PrimaryColor   = lipgloss.Color("#A78BFA") // Purple
	SecondaryColor = lipgloss.Color("#10B981") // Green
	WarningColor   = lipgloss.Color("#F59E0B") // Amber
	ErrorColor     = lipgloss.Color("#F87171") // Red
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray
	SurfaceColor   = lipgloss.Color("#1F2937") // Dark surface
	TextColor      = lipgloss.Color("#F9FAFB") // Light text
	BorderColor    = lipgloss.Color("#6B7280") // Gray

	// Convenience styles for colors
	Primary   = lipgloss.NewStyle().Foreground(PrimaryColor)
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Warning   = lipgloss.NewStyle().Foreground(WarningColor)
	Error     = lipgloss.NewStyle().Foreground(ErrorColor)
	Muted     = lipgloss.NewStyle().Foreground(MutedColor)
	Text      = lipgloss.NewStyle().Foreground(TextColor)

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor)

	Subtitle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// Current step pane
	StepBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Padding(1, 2)

	// Critical steps get the warning treatment
	CriticalStepBox = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(WarningColor).
			Padding(1, 2)

	// Step list entries
	StepDone = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Strikethrough(true)

	StepCurrent = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor)

	StepPending = lipgloss.NewStyle().
			Foreground(MutedColor)

	// Timer display
	TimerRunning = lipgloss.NewStyle().
			Bold(true).
			Foreground(SecondaryColor)

	TimerPaused = lipgloss.NewStyle().
			Foreground(WarningColor)

	TimerDone = lipgloss.NewStyle().
			Bold(true).
			Foreground(ErrorColor).
			Blink(true)

	// Transient banners (milestones, completion)
	Banner = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextColor).
		Background(PrimaryColor).
		Padding(0, 2)

	CompletionBanner = lipgloss.NewStyle().
				Bold(true).
				Foreground(TextColor).
				Background(SecondaryColor).
				Padding(0, 2)

	// Reminder toast
	Reminder = lipgloss.NewStyle().
			Foreground(WarningColor).
			Italic(true)

	// Hands-free countdown badge
	CountdownBadge = lipgloss.NewStyle().
			Bold(true).
			Foreground(SurfaceColor).
			Background(WarningColor).
			Padding(0, 1)

	// Footer help bar
	HelpBar = lipgloss.NewStyle().
		Foreground(MutedColor)

	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextColor)
)
