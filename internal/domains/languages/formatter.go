package languages

import (
	"fmt"
	"strconv"

	"github.com/lokalise/lokalise-mcp/internal/api"
	"github.com/lokalise/lokalise-mcp/internal/domain"
	"github.com/lokalise/lokalise-mcp/internal/markdown"
)

func formatList(title string, langs []api.Language, page api.Pagination) string {
	doc := markdown.New().H1("%s", title)
	if len(langs) == 0 {
		return doc.Paragraph("No languages found.").String()
	}
	rows := make([][]string, 0, len(langs))
	for _, l := range langs {
		rows = append(rows, []string{
			strconv.FormatInt(l.LangID, 10),
			markdown.Code(l.LangISO),
			l.LangName,
			markdown.Bool(l.IsRTL),
			markdown.List(l.PluralForms),
		})
	}
	doc.Table([]string{"Language ID", "Code", "Name", "RTL", "Plural Forms"}, rows)
	return doc.Paragraph("%s", markdown.PageNote(domain.PageOf(page, len(langs)))).String()
}

func formatLanguage(title string, l *api.Language) string {
	return markdown.New().
		H1("%s", title).
		Fields(
			markdown.F("Language ID", strconv.FormatInt(l.LangID, 10)),
			markdown.F("Code", markdown.Code(l.LangISO)),
			markdown.F("Name", l.LangName),
			markdown.F("Right-to-left", markdown.Bool(l.IsRTL)),
			markdown.F("Plural forms", markdown.List(l.PluralForms)),
		).String()
}

func formatAdded(requested int, langs []api.Language) string {
	doc := markdown.New().H1("Languages Added")
	doc.Paragraph("Added %d of %d languages.", len(langs), requested)
	items := make([]string, 0, len(langs))
	for _, l := range langs {
		items = append(items, fmt.Sprintf("%s %s (ID %d)", markdown.Code(l.LangISO), l.LangName, l.LangID))
	}
	return doc.Bullets(items...).String()
}

func formatRemoved(args GetArgs, deleted bool) string {
	doc := markdown.New().H1("Language Removed")
	if !deleted {
		return doc.Paragraph("Lokalise did not remove language %d.", args.LanguageID).String()
	}
	return doc.Paragraph("Removed language %d and all of its translations from project %s.", args.LanguageID, markdown.Code(args.ProjectID)).String()
}
