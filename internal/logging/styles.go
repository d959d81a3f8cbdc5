package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

type prefixStyles struct {
	verbose func(string) string
	error   func(string) string
}

func plain(s string) string { return s }

func newPrefixStyles(w io.Writer) prefixStyles {
	if !ShouldStyle(w) {
		return prefixStyles{verbose: plain, error: plain}
	}

	r := lipgloss.NewRenderer(w)
	verbose := r.NewStyle().Foreground(lipgloss.Color("245"))
	errStyle := r.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))

	return prefixStyles{
		verbose: func(s string) string { return verbose.Render(s) },
		error:   func(s string) string { return errStyle.Render(s) },
	}
}

// ShouldStyle reports whether output to w may carry ANSI styling.
//
// Returns false if:
//   - w is not a terminal (pipes, files, buffers)
//   - NORMHASH_NO_COLOR=1 is set
//   - NO_COLOR is set (accessibility/automation indicator)
func ShouldStyle(w io.Writer) bool {
	if os.Getenv("NORMHASH_NO_COLOR") == "1" {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
