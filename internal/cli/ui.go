package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/matzehuels/ornatree/pkg/render/palette"
)

// stdout receives every status line. Tests swap it out.
var stdout io.Writer = os.Stdout

// =============================================================================
// Styles
// =============================================================================

// Terminal colours lean on the brand palette where it reads well on a
// dark background and fall back to ANSI 256 otherwise.
var (
	colorAccent = lipgloss.Color(palette.LightBlue)
	colorGold   = lipgloss.Color(palette.Yellow)
	colorPink   = lipgloss.Color(palette.Pink)
	colorGreen  = lipgloss.Color("71")
	colorRed    = lipgloss.Color("167")
	colorMuted  = lipgloss.Color("245")
	colorFaint  = lipgloss.Color("240")
	colorBright = lipgloss.Color("255")
	colorLinkFg = lipgloss.Color("111")
)

var (
	// StyleTitle for headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	// StyleLink for URLs.
	StyleLink = lipgloss.NewStyle().Foreground(colorLinkFg).Underline(true)

	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorFaint)

	// StyleValue for values the user asked for (paths, addresses).
	StyleValue = lipgloss.NewStyle().Foreground(colorBright)

	// StyleWarning for fallbacks and degraded operation.
	StyleWarning = lipgloss.NewStyle().Foreground(colorGold)
)

var (
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorAccent)
	styleLabel       = lipgloss.NewStyle().Foreground(colorMuted).Width(10)
	styleCommand     = lipgloss.NewStyle().Foreground(colorPink)
	styleCached      = lipgloss.NewStyle().Foreground(colorGreen)
)

// status icons, one per kind of line
var (
	iconSuccess = lipgloss.NewStyle().Foreground(colorGreen).Render("✓")
	iconError   = lipgloss.NewStyle().Foreground(colorRed).Render("✗")
	iconWarning = lipgloss.NewStyle().Foreground(colorGold).Render("!")
	iconInfo    = lipgloss.NewStyle().Foreground(colorMuted).Render("›")
)

// =============================================================================
// Status lines
// =============================================================================

func printLine(icon, format string, args ...any) {
	fmt.Fprintln(stdout, icon+" "+fmt.Sprintf(format, args...))
}

func printSuccess(format string, args ...any) { printLine(iconSuccess, format, args...) }

func printError(format string, args ...any) { printLine(iconError, format, args...) }

func printInfo(format string, args ...any) { printLine(iconInfo, format, args...) }

func printWarning(format string, args ...any) {
	fmt.Fprintln(stdout, iconWarning+" "+StyleWarning.Render(fmt.Sprintf(format, args...)))
}

// printDetail prints an indented, muted line under the previous status.
func printDetail(format string, args ...any) {
	fmt.Fprintln(stdout, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile points at a written file.
func printFile(path string) {
	fmt.Fprintln(stdout, "  "+StyleDim.Render("→")+" "+StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Fprintln(stdout, styleLabel.Render(key)+" "+StyleValue.Render(value))
}

// printStats summarises one artifact, e.g.
// "10 ornaments · 2 fallbacks · 14 kB · cached".
func printStats(ornaments, fallbacks, size int, cached bool) {
	parts := []string{StyleDim.Render(fmt.Sprintf("%d ornaments", ornaments))}
	if fallbacks > 0 {
		parts = append(parts, StyleWarning.Render(fmt.Sprintf("%d fallbacks", fallbacks)))
	}
	if size > 0 {
		parts = append(parts, StyleDim.Render(humanize.Bytes(uint64(size))))
	}
	if cached {
		parts = append(parts, styleCached.Render("cached"))
	} else {
		parts = append(parts, StyleDim.Render("fresh"))
	}
	fmt.Fprintln(stdout, "  "+strings.Join(parts, StyleDim.Render(" · ")))
}

// printNextStep suggests the command to run next.
func printNextStep(description, cmd string) {
	fmt.Fprintln(stdout, StyleDim.Render(description+":")+" "+styleCommand.Render(strings.TrimSpace(cmd)))
}

func printNewline() {
	fmt.Fprintln(stdout)
}
