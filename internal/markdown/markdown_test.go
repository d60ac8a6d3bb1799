package markdown

import (
	"strings"
	"testing"
)

func TestDocBlocks(t *testing.T) {
	got := New().
		H1("Project %s", "Website").
		Fields(F("ID", "p1"), F("Empty", ""), F("Team", "7")).
		Table([]string{"Key", "Value"}, [][]string{{"a|b", "line1\nline2"}}).
		String()

	want := "# Project Website\n\n" +
		"- **ID**: p1\n- **Team**: 7\n\n" +
		"| Key | Value |\n|---|---|\n| a\\|b | line1 line2 |\n"
	if got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestEmptyDoc(t *testing.T) {
	if got := New().Fields(F("x", "")).Bullets().String(); got != "" {
		t.Errorf("String() = %q, want empty", got)
	}
}

func TestTitle(t *testing.T) {
	tests := map[string]string{
		"in_progress":           "In Progress",
		"review":                "Review",
		"automatic_translation": "Automatic Translation",
	}
	for in, want := range tests {
		if got := Title(in); got != want {
			t.Errorf("Title(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("héllo world", 5); got != "héll…" {
		t.Errorf("Truncate() = %q", got)
	}
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate() = %q", got)
	}
}

func TestPageNote(t *testing.T) {
	note := PageNote(Page{Shown: 100, TotalCount: 250, Page: 1, PageCount: 3})
	for _, want := range []string{"Showing 100 of 250", "page 1 of 3", "use page 2"} {
		if !strings.Contains(note, want) {
			t.Errorf("PageNote() = %q, missing %q", note, want)
		}
	}

	note = PageNote(Page{Shown: 10, NextCursor: "eyJpZCI6MX0="})
	if !strings.Contains(note, "next cursor `eyJpZCI6MX0=`") {
		t.Errorf("PageNote() = %q, missing cursor", note)
	}
}

func TestDate(t *testing.T) {
	if got := Date("2024-03-01 10:20:30 (Etc/UTC)"); got != "2024-03-01 10:20 UTC" {
		t.Errorf("Date() = %q", got)
	}
	if got := Date("yesterday"); got != "yesterday" {
		t.Errorf("Date() = %q, want input unchanged", got)
	}
}

func TestProjectURL(t *testing.T) {
	if got := ProjectURL("stage.lokalise.cloud", "p1.abc"); got != "https://app.stage.lokalise.cloud/project/p1.abc/" {
		t.Errorf("ProjectURL() = %q", got)
	}
}
