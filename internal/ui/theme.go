package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Taskemon CLI theme.

const (
	IconQuest   = "🗺️"
	IconSparkle = "✨"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconError   = "🧨"
	IconScroll  = "📜"
	IconChart   = "📈"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
	cPurple  = lipgloss.Color("135")
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Cell       = lipgloss.NewStyle().Padding(0, 1)
	HeaderCell = Cell.Bold(true).Foreground(cPrimary)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// RarityText colours an achievement rarity.
func RarityText(rarity string) string {
	switch strings.ToLower(rarity) {
	case "common":
		return Muted.Render(rarity)
	case "uncommon":
		return Good.Render(rarity)
	case "rare":
		return H2.Render(rarity)
	case "epic":
		return lipgloss.NewStyle().Bold(true).Foreground(cPurple).Render(rarity)
	case "legendary":
		return Gold.Render(rarity)
	default:
		return rarity
	}
}

// Table renders rows as right-aligned columns under a header.
func Table(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, r := range rows {
		for i := 0; i < len(r) && i < len(widths); i++ {
			if w := lipgloss.Width(r[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	b.WriteString(renderRow(header, widths, HeaderCell))
	for _, r := range rows {
		b.WriteString("\n")
		b.WriteString(renderRow(r, widths, Cell))
	}
	return b.String()
}

func renderRow(cells []string, widths []int, style lipgloss.Style) string {
	out := make([]string, 0, len(widths))
	for i, w := range widths {
		v := ""
		if i < len(cells) {
			v = cells[i]
		}
		out = append(out, style.Width(w+2).Align(lipgloss.Right).Render(v))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, out...)
}

// ProgressBar draws pct (0..100) as a fixed-width bar.
func ProgressBar(pct float64, width int) string {
	if width <= 0 {
		width = 20
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct / 100 * float64(width))
	return Good.Render(strings.Repeat("█", filled)) + Muted.Render(strings.Repeat("░", width-filled))
}
