package projects

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/lokalise/lokalise-mcp/internal/api"
	"github.com/lokalise/lokalise-mcp/internal/domain"
	"github.com/lokalise/lokalise-mcp/internal/markdown"
)

func formatList(projects []api.Project, page api.Pagination, host string) string {
	doc := markdown.New().H1("Lokalise Projects")
	if len(projects) == 0 {
		return doc.Paragraph("No projects found.").String()
	}

	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		progress, keys := "-", "-"
		if p.Statistics != nil {
			progress = fmt.Sprintf("%d%%", p.Statistics.ProgressTotal)
			keys = strconv.Itoa(p.Statistics.Keys)
		}
		rows = append(rows, []string{
			markdown.Link(p.Name, markdown.ProjectURL(host, p.ProjectID)),
			markdown.Code(p.ProjectID),
			p.BaseLanguageISO,
			keys,
			progress,
			markdown.Date(p.CreatedAt),
		})
	}
	doc.Table([]string{"Name", "Project ID", "Base", "Keys", "Progress", "Created"}, rows)
	return doc.Paragraph("%s", markdown.PageNote(domain.PageOf(page, len(projects)))).String()
}

func formatProject(p *api.Project, host string) string {
	doc := markdown.New().H1("Project: %s", p.Name)
	doc.Fields(
		markdown.F("Project ID", markdown.Code(p.ProjectID)),
		markdown.F("Type", markdown.Title(p.ProjectType)),
		markdown.F("Description", p.Description),
		markdown.F("Base language", p.BaseLanguageISO),
		markdown.F("Team ID", markdown.Int(p.TeamID)),
		markdown.F("Created", markdown.Date(p.CreatedAt)),
		markdown.F("Created by", p.CreatedByEmail),
		markdown.F("Open in Lokalise", markdown.ProjectURL(host, p.ProjectID)),
	)

	if s := p.Statistics; s != nil {
		doc.H2("Statistics").Fields(
			markdown.F("Progress", fmt.Sprintf("%d%%", s.ProgressTotal)),
			markdown.F("Keys", strconv.Itoa(s.Keys)),
			markdown.F("Team members", strconv.Itoa(s.Team)),
			markdown.F("Base words", strconv.Itoa(s.BaseWords)),
			markdown.F("QA issues", strconv.Itoa(s.QAIssuesTotal)),
		)
		if len(s.Languages) > 0 {
			rows := make([][]string, 0, len(s.Languages))
			for _, l := range s.Languages {
				rows = append(rows, []string{l.LanguageISO, fmt.Sprintf("%d%%", l.Progress), strconv.Itoa(l.WordsToDo)})
			}
			doc.H3("Languages").Table([]string{"Language", "Progress", "Words to do"}, rows)
		}
	}

	if len(p.Settings) > 0 {
		keys := make([]string, 0, len(p.Settings))
		for k, v := range p.Settings {
			keys = append(keys, fmt.Sprintf("%s: %v", markdown.Title(k), v))
		}
		sort.Strings(keys)
		doc.H2("Settings").Bullets(keys...)
	}
	return doc.String()
}

func formatCreated(p *api.Project, host string) string {
	return markdown.New().
		H1("Project Created").
		Paragraph("Project **%s** was created.", p.Name).
		Fields(
			markdown.F("Project ID", markdown.Code(p.ProjectID)),
			markdown.F("Base language", p.BaseLanguageISO),
			markdown.F("Open in Lokalise", markdown.ProjectURL(host, p.ProjectID)),
		).String()
}

func formatUpdated(p *api.Project, host string) string {
	return markdown.New().
		H1("Project Updated").
		Fields(
			markdown.F("Project ID", markdown.Code(p.ProjectID)),
			markdown.F("Name", p.Name),
			markdown.F("Description", p.Description),
			markdown.F("Open in Lokalise", markdown.ProjectURL(host, p.ProjectID)),
		).String()
}

func formatDeleted(res *api.DeleteProjectResponse) string {
	doc := markdown.New().H1("Project Deleted")
	if !res.ProjectDeleted {
		return doc.Paragraph("Lokalise did not confirm deletion of project %s.", markdown.Code(res.ProjectID)).String()
	}
	return doc.Paragraph("Project %s and all of its keys were deleted.", markdown.Code(res.ProjectID)).String()
}

func formatEmptied(res *api.EmptyProjectResponse) string {
	doc := markdown.New().H1("Project Emptied")
	if !res.KeysDeleted {
		return doc.Paragraph("Lokalise did not confirm that the keys of %s were deleted.", markdown.Code(res.ProjectID)).String()
	}
	return doc.Paragraph("All keys of project %s were deleted. The project and its languages remain.", markdown.Code(res.ProjectID)).String()
}
