package tasks

import (
	"strconv"
	"strings"

	"github.com/lokalise/lokalise-mcp/internal/api"
	"github.com/lokalise/lokalise-mcp/internal/domain"
	"github.com/lokalise/lokalise-mcp/internal/markdown"
)

func status(s string) string {
	return markdown.Title(s)
}

func percent(n int) string {
	return strconv.Itoa(n) + "%"
}

func formatList(projectID string, tasks []api.Task, page api.Pagination) string {
	doc := markdown.New().H1("Tasks in Project %s", projectID)
	if len(tasks) == 0 {
		return doc.Paragraph("No tasks found.").String()
	}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		langs := make([]string, 0, len(t.Languages))
		for _, l := range t.Languages {
			langs = append(langs, l.LanguageISO)
		}
		rows = append(rows, []string{
			strconv.FormatInt(t.TaskID, 10),
			t.Title,
			markdown.Title(t.TaskType),
			status(t.Status),
			percent(t.Progress),
			strconv.Itoa(t.KeysCount),
			markdown.List(langs),
			markdown.Date(t.DueDate),
		})
	}
	doc.Table([]string{"Task ID", "Title", "Type", "Status", "Progress", "Keys", "Languages", "Due"}, rows)
	return doc.Paragraph("%s", markdown.PageNote(domain.PageOf(page, len(tasks)))).String()
}

func assignees(l api.TaskLanguage) string {
	var names []string
	for _, u := range l.Users {
		switch {
		case u.Fullname != "":
			names = append(names, u.Fullname)
		case u.Email != "":
			names = append(names, u.Email)
		default:
			names = append(names, "user "+strconv.FormatInt(u.UserID, 10))
		}
	}
	for _, g := range l.Groups {
		if g.Name != "" {
			names = append(names, g.Name+" (group)")
		} else {
			names = append(names, "group "+strconv.FormatInt(g.ID, 10))
		}
	}
	return strings.Join(names, ", ")
}

func flags(t *api.Task) string {
	var on []string
	if t.AutoCloseLanguages {
		on = append(on, "auto-close languages")
	}
	if t.AutoCloseTask {
		on = append(on, "auto-close task")
	}
	if t.AutoCloseItems {
		on = append(on, "auto-close items")
	}
	if t.DoLockTranslations {
		on = append(on, "locks translations")
	}
	return markdown.List(on)
}

func formatTask(title, projectID string, t *api.Task, host string) string {
	doc := markdown.New().H1("%s", title)
	doc.Fields(
		markdown.F("Task ID", strconv.FormatInt(t.TaskID, 10)),
		markdown.F("Title", t.Title),
		markdown.F("Type", markdown.Title(t.TaskType)),
		markdown.F("Status", status(t.Status)),
		markdown.F("Progress", percent(t.Progress)),
		markdown.F("Keys", strconv.Itoa(t.KeysCount)),
		markdown.F("Words", strconv.Itoa(t.WordsCount)),
		markdown.F("Source language", t.SourceLanguageISO),
		markdown.F("Due", markdown.Date(t.DueDate)),
		markdown.F("Parent task", markdown.Int(t.ParentTaskID)),
		markdown.F("Closing tags", markdown.List(t.ClosingTags)),
		markdown.F("Settings", flags(t)),
		markdown.F("Created", markdown.Date(t.CreatedAt)),
		markdown.F("Created by", t.CreatedByEmail),
		markdown.F("Completed", markdown.Date(t.CompletedAt)),
		markdown.F("Open in Lokalise", markdown.ProjectURL(host, projectID)+"tasks"),
	)
	if t.Description != "" {
		doc.H2("Description").Paragraph("%s", t.Description)
	}
	if len(t.Languages) > 0 {
		rows := make([][]string, 0, len(t.Languages))
		for _, l := range t.Languages {
			rows = append(rows, []string{l.LanguageISO, status(l.Status), percent(l.Progress), assignees(l)})
		}
		doc.H2("Languages").Table([]string{"Language", "Status", "Progress", "Assignees"}, rows)
	}
	return doc.String()
}

func formatDeleted(taskID int64, deleted bool) string {
	doc := markdown.New().H1("Task Deleted")
	if !deleted {
		return doc.Paragraph("Lokalise did not delete task %d.", taskID).String()
	}
	return doc.Paragraph("Deleted task %d.", taskID).String()
}
