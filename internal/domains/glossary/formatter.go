package glossary

import (
	"fmt"
	"strconv"

	"github.com/lokalise/lokalise-mcp/internal/api"
	"github.com/lokalise/lokalise-mcp/internal/domain"
	"github.com/lokalise/lokalise-mcp/internal/markdown"
)

func flags(t api.GlossaryTerm) string {
	var out []string
	if t.CaseSensitive {
		out = append(out, "case-sensitive")
	}
	if !t.Translatable {
		out = append(out, "not translatable")
	}
	if t.Forbidden {
		out = append(out, "forbidden")
	}
	return markdown.List(out)
}

func lang(tr api.GlossaryTermTranslation) string {
	switch {
	case tr.LangISO != "":
		return tr.LangISO
	case tr.LangName != "":
		return tr.LangName
	}
	return "lang " + strconv.FormatInt(tr.LangID, 10)
}

func formatList(projectID string, terms []api.GlossaryTerm, page api.Pagination) string {
	doc := markdown.New().H1("Glossary of Project %s", projectID)
	if len(terms) == 0 {
		return doc.Paragraph("No glossary terms found.").String()
	}
	rows := make([][]string, 0, len(terms))
	for _, t := range terms {
		rows = append(rows, []string{
			strconv.FormatInt(t.ID, 10),
			t.Term,
			markdown.Truncate(t.Description, 60),
			flags(t),
			strconv.Itoa(len(t.Translations)),
			markdown.List(t.Tags),
		})
	}
	doc.Table([]string{"Term ID", "Term", "Description", "Flags", "Translations", "Tags"}, rows)
	return doc.Paragraph("%s", markdown.PageNote(domain.PageOf(page, len(terms)))).String()
}

func formatTerm(t *api.GlossaryTerm) string {
	doc := markdown.New().H1("Glossary Term: %s", t.Term)
	doc.Fields(
		markdown.F("Term ID", strconv.FormatInt(t.ID, 10)),
		markdown.F("Description", t.Description),
		markdown.F("Case sensitive", markdown.Bool(t.CaseSensitive)),
		markdown.F("Translatable", markdown.Bool(t.Translatable)),
		markdown.F("Forbidden", markdown.Bool(t.Forbidden)),
		markdown.F("Tags", markdown.List(t.Tags)),
		markdown.F("Created", markdown.Date(t.CreatedAt)),
		markdown.F("Updated", markdown.Date(t.UpdatedAt)),
	)
	if len(t.Translations) > 0 {
		rows := make([][]string, 0, len(t.Translations))
		for _, tr := range t.Translations {
			rows = append(rows, []string{lang(tr), tr.Translation, tr.Description})
		}
		doc.H2("Translations").Table([]string{"Language", "Translation", "Note"}, rows)
	}
	return doc.String()
}

func formatChanged(title, verb string, requested int, terms []api.GlossaryTerm) string {
	doc := markdown.New().H1("%s", title)
	doc.Paragraph("%d of %d terms %s.", len(terms), requested, verb)
	items := make([]string, 0, len(terms))
	for _, t := range terms {
		items = append(items, fmt.Sprintf("%s (ID %d)", markdown.Code(t.Term), t.ID))
	}
	return doc.Bullets(items...).String()
}

func formatDeleted(requested int, res *api.DeleteGlossaryTermsResponse) string {
	doc := markdown.New().H1("Glossary Terms Deleted")
	doc.Paragraph("Deleted %d of %d terms.", res.DeletedCount, requested)
	if len(res.Failed) > 0 {
		items := make([]string, 0, len(res.Failed))
		for _, f := range res.Failed {
			items = append(items, fmt.Sprintf("%d: %s", f.ID, f.Message))
		}
		doc.H2("Not Deleted").Bullets(items...)
	}
	return doc.String()
}
