package terminal

import "github.com/charmbracelet/lipgloss"

var (
	// Chart colors — teal for activity, amber for vocabulary, blue for
	// participation.
	colorActivity = lipgloss.AdaptiveColor{Light: "#0d9488", Dark: "#2dd4bf"}
	colorWords    = lipgloss.AdaptiveColor{Light: "#d97706", Dark: "#fbbf24"}
	colorSenders  = lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#60a5fa"}

	// UI colors.
	colorBright = lipgloss.AdaptiveColor{Light: "#0f172a", Dark: "#f1f5f9"}
	colorDim    = lipgloss.AdaptiveColor{Light: "#94a3b8", Dark: "#64748b"}
)

var (
	styleTitle   = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	styleSection = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	styleMeta    = lipgloss.NewStyle().Foreground(colorDim)
	styleLabel   = lipgloss.NewStyle().Foreground(colorDim)
	styleCount   = lipgloss.NewStyle().Foreground(colorBright)

	styleBarActivity = lipgloss.NewStyle().Foreground(colorActivity)
	styleBarWords    = lipgloss.NewStyle().Foreground(colorWords)
	styleBarSenders  = lipgloss.NewStyle().Foreground(colorSenders)
)
