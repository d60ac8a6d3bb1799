package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	mu        sync.Mutex
	stdout    io.Writer = os.Stdout
	stderr    io.Writer = os.Stderr
	color               = isTerminal(os.Stderr)
	quietMode bool
)

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SetOutput redirects stdout and stderr output. Color is disabled unless
// errOut is a terminal.
//
// Parameters:
//   - out: Destination for Markdown results
//   - errOut: Destination for messages, tips and progress
func SetOutput(out, errOut io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	stdout, stderr = out, errOut
	f, ok := errOut.(*os.File)
	color = ok && isTerminal(f)
}

// SetQuiet suppresses informational messages. Errors are always printed.
func SetQuiet(q bool) {
	mu.Lock()
	defer mu.Unlock()
	quietMode = q
}

func render(style lipgloss.Style, s string) string {
	if !color {
		return s
	}
	return style.Render(s)
}

func errLine(s string) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintln(stderr, s)
}

func infoLine(s string) {
	mu.Lock()
	defer mu.Unlock()
	if quietMode {
		return
	}
	fmt.Fprintln(stderr, s)
}

// PrintMarkdown writes a command result to stdout.
func PrintMarkdown(md string) {
	mu.Lock()
	defer mu.Unlock()

	fmt.Fprint(stdout, md)
	if !strings.HasSuffix(md, "\n") {
		fmt.Fprintln(stdout)
	}
}

// PrintSuccess prints a success message.
//
// Parameters:
//   - format: Printf format string
//   - args: Printf arguments
func PrintSuccess(format string, args ...interface{}) {
	infoLine(render(SuccessStyle, "✓ "+fmt.Sprintf(format, args...)))
}

// PrintError prints an error message.
//
// Parameters:
//   - format: Printf format string
//   - args: Printf arguments
func PrintError(format string, args ...interface{}) {
	errLine(render(ErrorStyle, "✗ "+fmt.Sprintf(format, args...)))
}

// PrintWarning prints a warning message.
func PrintWarning(format string, args ...interface{}) {
	errLine(render(WarningStyle, "⚠ "+fmt.Sprintf(format, args...)))
}

// PrintInfo prints an informational message.
func PrintInfo(format string, args ...interface{}) {
	infoLine(render(InfoStyle, fmt.Sprintf(format, args...)))
}

// PrintDim prints a dimmed message.
func PrintDim(format string, args ...interface{}) {
	infoLine(render(DimStyle, fmt.Sprintf(format, args...)))
}

// PrintTip prints the hint shown under an error. Multi-line tips are
// indented as a block.
func PrintTip(tip string) {
	tip = strings.TrimSpace(tip)
	if tip == "" {
		return
	}
	lines := strings.Split(tip, "\n")
	for i, l := range lines {
		prefix := "       "
		if i == 0 {
			prefix = "  Tip: "
		}
		lines[i] = prefix + l
	}
	errLine(render(TipStyle, strings.Join(lines, "\n")))
}

// PrintLink prints a labelled URL.
//
// Parameters:
//   - label: The link label
//   - url: The URL
func PrintLink(label, url string) {
	infoLine(fmt.Sprintf("%s %s", render(DimStyle, label+":"), render(LinkStyle, url)))
}
