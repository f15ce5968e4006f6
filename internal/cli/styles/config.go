package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// PathEntry is one labeled location printed by `config path`.
type PathEntry struct {
	Label string
	Path  string
}

// RenderConfigInfo renders the config file path.
func (r *ConfigRenderer) RenderConfigInfo(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf(
		"\n  %s Config %s\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
	)
}

// RenderNoConfigFile renders message when config file doesn't exist yet.
func (r *ConfigRenderer) RenderNoConfigFile(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf(
		"\n  %s Config %s\n  %s\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
		r.theme.Subtle.Render("Config file will be created on first run with all defaults."),
	)
}

// RenderPaths renders the locations the application reads and writes.
func (r *ConfigRenderer) RenderPaths(entries []PathEntry) string {
	width := 0
	for _, e := range entries {
		width = max(width, lipgloss.Width(e.Label))
	}
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	var sb strings.Builder
	sb.WriteString("\n")
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("  %s %s  %s\n",
			iconStyle.Render(IconFolder),
			r.theme.Normal.Bold(true).Render(e.Label+strings.Repeat(" ", width-lipgloss.Width(e.Label))),
			r.theme.Subtle.Render(e.Path),
		))
	}
	return sb.String()
}

// RenderEffective renders the effective configuration as TOML under a header.
func (r *ConfigRenderer) RenderEffective(path, tomlBody string) string {
	header := r.RenderConfigInfo(path)
	return header + "\n" + r.theme.Box.Render(strings.TrimRight(tomlBody, "\n")) + "\n"
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}
