package ui

import (
	"fmt"
	"strings"
)

// ProgressBar renders a single-line progress bar on stderr.
type ProgressBar struct {
	total   int
	current int
	failed  int
	width   int
	message string
}

// NewProgressBar creates a new progress bar.
//
// Parameters:
//   - total: The number of items
//   - width: The width of the bar in characters
//
// Returns:
//   - *ProgressBar: A new progress bar instance
func NewProgressBar(total, width int) *ProgressBar {
	return &ProgressBar{
		total: total,
		width: width,
	}
}

// Update redraws the bar.
//
// Parameters:
//   - current: Items processed so far
//   - failed: Items that failed so far
//   - message: Optional message shown after the bar
func (p *ProgressBar) Update(current, failed int, message string) {
	p.current = current
	p.failed = failed
	p.message = message
	p.render()
}

// Line returns the bar as text without the carriage return.
func (p *ProgressBar) Line() string {
	percent := 1.0
	if p.total > 0 {
		percent = float64(p.current) / float64(p.total)
	}
	if percent > 1 {
		percent = 1
	}
	filled := int(percent * float64(p.width))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", p.width-filled)

	line := fmt.Sprintf("%s %3d%% %d/%d", render(ProgressBarStyle, bar), int(percent*100), p.current, p.total)
	if p.failed > 0 {
		line += " " + render(ProgressFailedStyle, fmt.Sprintf("(%d failed)", p.failed))
	}
	if p.message != "" {
		line += " " + render(DimStyle, p.message)
	}
	return line
}

func (p *ProgressBar) render() {
	mu.Lock()
	defer mu.Unlock()
	if quietMode || !color {
		return
	}
	fmt.Fprintf(stderr, "\r%-80s", p.Line())
}

// Complete draws the final state and ends the line.
func (p *ProgressBar) Complete() {
	p.Update(p.total, p.failed, "")
	mu.Lock()
	defer mu.Unlock()
	if quietMode || !color {
		return
	}
	fmt.Fprintln(stderr)
}
