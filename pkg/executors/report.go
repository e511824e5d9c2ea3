package executors

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // yellow
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // gray
)

// Render prints one line per change and a closing total.
func Render(w io.Writer, changes []Change) {
	total := 0
	for _, c := range changes {
		total += c.Transactions
		line := fmt.Sprintf("[%d] %s -> %s : %d transaction(s)", c.Job, c.Input, c.Output, c.Transactions)
		if c.Skipped > 0 {
			line += fmt.Sprintf(", %d skipped", c.Skipped)
		}
		style := okStyle
		if c.MemoSuppressed {
			style = warnStyle
			line += " (memos excluded)"
		}
		fmt.Fprintln(w, style.Render(line))
		fmt.Fprintln(w, dimStyle.Render("    blake3 "+short(c.InputDigest)+" -> "+short(c.OutputDigest)))
	}
	fmt.Fprintf(w, "\n%d file(s), %d transaction(s)\n", len(changes), total)
}

func short(digest string) string {
	if len(digest) > 16 {
		return digest[:16]
	}
	if digest == "" {
		return "-"
	}
	return digest
}
