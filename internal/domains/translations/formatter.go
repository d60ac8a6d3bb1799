package translations

import (
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/lokalise/lokalise-mcp/internal/api"
	"github.com/lokalise/lokalise-mcp/internal/domain"
	"github.com/lokalise/lokalise-mcp/internal/markdown"
)

const previewLen = 80

// text renders a translation for a table cell. Plural forms arrive as a
// JSON object string.
func text(s string) string {
	if s == "" {
		return "_(empty)_"
	}
	if r := gjson.Parse(s); strings.HasPrefix(strings.TrimSpace(s), "{") && r.IsObject() {
		var parts []string
		r.ForEach(func(k, v gjson.Result) bool {
			parts = append(parts, k.String()+": "+v.String())
			return true
		})
		return strings.Join(parts, "; ")
	}
	return s
}

func statuses(t api.Translation) string {
	names := make([]string, 0, len(t.CustomTranslationStatuses))
	for _, s := range t.CustomTranslationStatuses {
		names = append(names, s.Title)
	}
	return markdown.List(names)
}

func formatList(projectID string, ts []api.Translation, page api.Pagination) string {
	doc := markdown.New().H1("Translations in Project %s", projectID)
	if len(ts) == 0 {
		return doc.Paragraph("No translations found.").String()
	}
	rows := make([][]string, 0, len(ts))
	for _, t := range ts {
		rows = append(rows, []string{
			strconv.FormatInt(t.TranslationID, 10),
			strconv.FormatInt(t.KeyID, 10),
			t.LanguageISO,
			markdown.Truncate(text(t.Translation), previewLen),
			markdown.Bool(t.IsReviewed),
			markdown.Bool(t.IsUnverified),
		})
	}
	doc.Table([]string{"Translation ID", "Key ID", "Language", "Translation", "Reviewed", "Unverified"}, rows)
	return doc.Paragraph("%s", markdown.PageNote(domain.PageOf(page, len(ts)))).String()
}

func fields(projectID string, t *api.Translation) []markdown.Field {
	return []markdown.Field{
		markdown.F("Translation ID", strconv.FormatInt(t.TranslationID, 10)),
		markdown.F("Key ID", strconv.FormatInt(t.KeyID, 10)),
		markdown.F("Project", markdown.Code(projectID)),
		markdown.F("Language", t.LanguageISO),
		markdown.F("Reviewed", markdown.Bool(t.IsReviewed)),
		markdown.F("Unverified", markdown.Bool(t.IsUnverified)),
		markdown.F("Words", markdown.Int(int64(t.Words))),
		markdown.F("Statuses", statuses(*t)),
		markdown.F("Task", markdown.Int(t.TaskID)),
		markdown.F("Modified", markdown.Date(t.ModifiedAt)),
		markdown.F("Modified by", t.ModifiedByEmail),
	}
}

func formatTranslation(projectID string, t *api.Translation) string {
	return markdown.New().
		H1("Translation %d", t.TranslationID).
		Fields(fields(projectID, t)...).
		H2("Text").
		Code("", nonEmpty(t.Translation)).
		String()
}

func nonEmpty(s string) string {
	if s == "" {
		return "(empty)"
	}
	return s
}

func formatUpdated(projectID string, t *api.Translation) string {
	return markdown.New().
		H1("Translation Updated").
		Fields(fields(projectID, t)...).
		H2("Text").
		Code("", nonEmpty(t.Translation)).
		String()
}

func formatBulk(projectID string, res BulkResult) string {
	doc := markdown.New().H1("Bulk Translation Update")
	doc.Fields(
		markdown.F("Project", markdown.Code(projectID)),
		markdown.F("Requested", strconv.Itoa(res.Total)),
		markdown.F("Succeeded", strconv.Itoa(res.Succeeded)),
		markdown.F("Failed", strconv.Itoa(res.Failed)),
		markdown.F("Duration", res.Duration.Round(time.Millisecond).String()),
	)

	rows := make([][]string, 0, len(res.Results))
	for _, r := range res.Results {
		status, detail := "Updated", ""
		if r.Success {
			if r.Translation != nil {
				detail = markdown.Truncate(r.Translation.LanguageISO+": "+text(r.Translation.Translation), previewLen)
			}
		} else {
			status, detail = "Failed", r.Error
		}
		rows = append(rows, []string{strconv.FormatInt(r.TranslationID, 10), status, strconv.Itoa(r.Attempts), detail})
	}
	doc.Table([]string{"Translation ID", "Status", "Attempts", "Details"}, rows)

	if res.Failed > 0 {
		doc.Paragraph("%d update(s) failed after retrying. Re-run them with the IDs above once the cause is fixed.", res.Failed)
	}
	return doc.String()
}
