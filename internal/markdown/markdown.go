// Package markdown builds the Markdown documents returned by every CLI
// command, MCP tool and MCP resource.
package markdown

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Doc accumulates Markdown blocks separated by blank lines.
type Doc struct {
	b strings.Builder
}

// New returns an empty document.
func New() *Doc {
	return &Doc{}
}

func (d *Doc) block(s string) *Doc {
	if d.b.Len() > 0 {
		d.b.WriteString("\n\n")
	}
	d.b.WriteString(s)
	return d
}

// H1 adds a top-level heading.
func (d *Doc) H1(format string, args ...any) *Doc {
	return d.block("# " + fmt.Sprintf(format, args...))
}

// H2 adds a second-level heading.
func (d *Doc) H2(format string, args ...any) *Doc {
	return d.block("## " + fmt.Sprintf(format, args...))
}

// H3 adds a third-level heading.
func (d *Doc) H3(format string, args ...any) *Doc {
	return d.block("### " + fmt.Sprintf(format, args...))
}

// Paragraph adds a paragraph of text.
func (d *Doc) Paragraph(format string, args ...any) *Doc {
	return d.block(fmt.Sprintf(format, args...))
}

// Fields adds a bullet list of "**Label**: value" lines, skipping empty
// values.
func (d *Doc) Fields(fields ...Field) *Doc {
	var lines []string
	for _, f := range fields {
		if f.Value == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("- **%s**: %s", f.Label, f.Value))
	}
	if len(lines) == 0 {
		return d
	}
	return d.block(strings.Join(lines, "\n"))
}

// Bullets adds a plain bullet list.
func (d *Doc) Bullets(items ...string) *Doc {
	if len(items) == 0 {
		return d
	}
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = "- " + it
	}
	return d.block(strings.Join(lines, "\n"))
}

// Table adds a table. Cell text is escaped.
func (d *Doc) Table(headers []string, rows [][]string) *Doc {
	var sb strings.Builder
	sb.WriteString("| " + strings.Join(headers, " | ") + " |\n")
	sep := make([]string, len(headers))
	for i := range sep {
		sep[i] = "---"
	}
	sb.WriteString("|" + strings.Join(sep, "|") + "|")
	for _, row := range rows {
		cells := make([]string, len(headers))
		for i := range cells {
			if i < len(row) {
				cells[i] = Cell(row[i])
			}
		}
		sb.WriteString("\n| " + strings.Join(cells, " | ") + " |")
	}
	return d.block(sb.String())
}

// Code adds a fenced code block.
func (d *Doc) Code(lang, body string) *Doc {
	return d.block("```" + lang + "\n" + strings.TrimRight(body, "\n") + "\n```")
}

// Rule adds a horizontal rule.
func (d *Doc) Rule() *Doc {
	return d.block("---")
}

// Append adds pre-rendered Markdown.
func (d *Doc) Append(md string) *Doc {
	if md = strings.TrimSpace(md); md == "" {
		return d
	}
	return d.block(md)
}

// String returns the document with a trailing newline.
func (d *Doc) String() string {
	if d.b.Len() == 0 {
		return ""
	}
	return d.b.String() + "\n"
}

// Field is one labelled value in a Fields list.
type Field struct {
	Label string
	Value string
}

// F builds a Field.
func F(label, value string) Field {
	return Field{Label: label, Value: value}
}

// Cell escapes text for use inside a table cell.
func Cell(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}

// Truncate shortens s to at most n runes, adding an ellipsis.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}

// Title converts snake_case or lower-case labels to Title Case.
func Title(s string) string {
	return titleCaser.String(strings.ReplaceAll(s, "_", " "))
}

// Bool renders a boolean as Yes or No.
func Bool(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// Int renders n, or an empty string for zero.
func Int(n int64) string {
	if n == 0 {
		return ""
	}
	return strconv.FormatInt(n, 10)
}

// List joins values with commas, or returns an empty string.
func List(values []string) string {
	return strings.Join(values, ", ")
}

// Code wraps s in backticks, or returns an empty string.
func Code(s string) string {
	if s == "" {
		return ""
	}
	return "`" + s + "`"
}

// Date renders a Lokalise timestamp in a short form. Unparseable values
// are returned unchanged.
func Date(s string) string {
	if s == "" {
		return ""
	}
	for _, layout := range []string{"2006-01-02 15:04:05 (Etc/UTC)", time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Format("2006-01-02 15:04 UTC")
		}
	}
	return s
}

// Page describes list paging for the footer note.
type Page struct {
	Shown      int
	TotalCount int
	Page       int
	PageCount  int
	NextCursor string
}

// PageNote returns the pagination footer for a list, or an empty string
// when there is nothing to say.
func PageNote(p Page) string {
	var parts []string
	switch {
	case p.TotalCount > 0:
		parts = append(parts, fmt.Sprintf("Showing %d of %d", p.Shown, p.TotalCount))
	default:
		parts = append(parts, fmt.Sprintf("Showing %d", p.Shown))
	}
	if p.PageCount > 0 && p.Page > 0 {
		parts = append(parts, fmt.Sprintf("page %d of %d", p.Page, p.PageCount))
		if p.Page < p.PageCount {
			parts = append(parts, fmt.Sprintf("use page %d for more", p.Page+1))
		}
	}
	if p.NextCursor != "" {
		parts = append(parts, fmt.Sprintf("next cursor `%s`", p.NextCursor))
	}
	return "_" + strings.Join(parts, " · ") + "_"
}

// ProjectURL returns the web app link for a project on hostname.
func ProjectURL(hostname, projectID string) string {
	if hostname == "" {
		hostname = "lokalise.com"
	}
	return fmt.Sprintf("https://app.%s/project/%s/", hostname, projectID)
}

// Link renders a Markdown link.
func Link(text, url string) string {
	return fmt.Sprintf("[%s](%s)", text, url)
}
