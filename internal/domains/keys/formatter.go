package keys

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/lokalise/lokalise-mcp/internal/api"
	"github.com/lokalise/lokalise-mcp/internal/domain"
	"github.com/lokalise/lokalise-mcp/internal/markdown"
)

const previewLen = 60

func keyName(k api.Key) string {
	if name := k.KeyName.String(); name != "" {
		return name
	}
	return "(unnamed)"
}

func translationsPreview(ts []api.Translation) string {
	parts := make([]string, 0, len(ts))
	for _, t := range ts {
		if t.Translation == "" {
			continue
		}
		parts = append(parts, t.LanguageISO+": "+markdown.Truncate(t.Translation, 30))
	}
	return markdown.Truncate(strings.Join(parts, "; "), previewLen)
}

func formatList(projectID string, keys []api.Key, page api.Pagination, withTranslations bool) string {
	doc := markdown.New().H1("Keys in Project %s", projectID)
	if len(keys) == 0 {
		return doc.Paragraph("No keys found.").String()
	}

	headers := []string{"Key ID", "Name", "Platforms", "Tags"}
	if withTranslations {
		headers = append(headers, "Translations")
	}
	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		name := keyName(k)
		if k.IsArchived {
			name += " (archived)"
		}
		row := []string{strconv.FormatInt(k.KeyID, 10), markdown.Code(name), markdown.List(k.Platforms), markdown.List(k.Tags)}
		if withTranslations {
			row = append(row, translationsPreview(k.Translations))
		}
		rows = append(rows, row)
	}
	doc.Table(headers, rows)
	return doc.Paragraph("%s", markdown.PageNote(domain.PageOf(page, len(keys)))).String()
}

func formatKey(projectID string, k *api.Key, host string) string {
	doc := markdown.New().H1("Key: %s", keyName(*k))
	doc.Fields(
		markdown.F("Key ID", strconv.FormatInt(k.KeyID, 10)),
		markdown.F("Project", markdown.Code(projectID)),
		markdown.F("Description", k.Description),
		markdown.F("Platforms", markdown.List(k.Platforms)),
		markdown.F("Tags", markdown.List(k.Tags)),
		markdown.F("Filename", k.Filenames.String()),
		markdown.F("Context", k.Context),
		markdown.F("Plural", pluralLabel(k)),
		markdown.F("Hidden", yesOnly(k.IsHidden)),
		markdown.F("Archived", yesOnly(k.IsArchived)),
		markdown.F("Character limit", charLimit(k.CharLimit)),
		markdown.F("Base words", charLimit(k.BaseWords)),
		markdown.F("Created", markdown.Date(k.CreatedAt)),
		markdown.F("Modified", markdown.Date(k.ModifiedAt)),
		markdown.F("Open in Lokalise", markdown.ProjectURL(host, projectID)+"?k="+strconv.FormatInt(k.KeyID, 10)),
	)

	if names := platformNames(k.KeyName); len(names) > 0 {
		doc.H2("Platform Names").Bullets(names...)
	}

	if len(k.Translations) > 0 {
		rows := make([][]string, 0, len(k.Translations))
		for _, t := range k.Translations {
			rows = append(rows, []string{
				t.LanguageISO,
				renderTranslation(t.Translation, k.IsPlural),
				markdown.Bool(t.IsReviewed),
				markdown.Bool(t.IsUnverified),
				strconv.FormatInt(t.TranslationID, 10),
			})
		}
		doc.H2("Translations").Table([]string{"Language", "Translation", "Reviewed", "Unverified", "Translation ID"}, rows)
	}
	return doc.String()
}

// renderTranslation flattens a plural translation, which Lokalise encodes as
// a JSON object inside the string, to "one: x; other: y".
func renderTranslation(s string, plural bool) string {
	if s == "" {
		return "_(empty)_"
	}
	if plural && gjson.Valid(s) {
		r := gjson.Parse(s)
		if r.IsObject() {
			var parts []string
			r.ForEach(func(k, v gjson.Result) bool {
				parts = append(parts, k.String()+": "+v.String())
				return true
			})
			return strings.Join(parts, "; ")
		}
	}
	return s
}

func platformNames(p api.PlatformStrings) []string {
	if p.IOS == p.Android && p.Android == p.Web && p.Web == p.Other {
		return nil
	}
	var out []string
	for _, e := range []struct{ label, v string }{{"iOS", p.IOS}, {"Android", p.Android}, {"Web", p.Web}, {"Other", p.Other}} {
		if e.v != "" {
			out = append(out, fmt.Sprintf("%s: `%s`", e.label, e.v))
		}
	}
	return out
}

func pluralLabel(k *api.Key) string {
	if !k.IsPlural {
		return ""
	}
	if k.PluralName != "" {
		return "Yes (" + k.PluralName + ")"
	}
	return "Yes"
}

func yesOnly(b bool) string {
	if !b {
		return ""
	}
	return "Yes"
}

func charLimit(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func formatUpdated(projectID string, k *api.Key) string {
	return markdown.New().
		H1("Key Updated").
		Fields(
			markdown.F("Key ID", strconv.FormatInt(k.KeyID, 10)),
			markdown.F("Name", markdown.Code(keyName(*k))),
			markdown.F("Project", markdown.Code(projectID)),
			markdown.F("Platforms", markdown.List(k.Platforms)),
			markdown.F("Tags", markdown.List(k.Tags)),
			markdown.F("Description", k.Description),
		).String()
}

func formatBulk(title, verb string, requested int, res *api.BulkKeysResponse) string {
	doc := markdown.New().H1("%s", title)
	doc.Paragraph("%d of %d keys %s.", len(res.Keys), requested, verb)
	if len(res.Keys) > 0 {
		rows := make([][]string, 0, len(res.Keys))
		for _, k := range res.Keys {
			rows = append(rows, []string{strconv.FormatInt(k.KeyID, 10), markdown.Code(keyName(k)), markdown.List(k.Platforms)})
		}
		doc.Table([]string{"Key ID", "Name", "Platforms"}, rows)
	}
	if len(res.Errors) > 0 {
		items := make([]string, 0, len(res.Errors))
		for _, e := range res.Errors {
			item := fmt.Sprintf("%s (code %d)", e.Message, e.Code)
			if name := gjson.GetBytes(e.Key, "key_name").String(); name != "" {
				item = markdown.Code(name) + ": " + item
			}
			items = append(items, item)
		}
		doc.H2("Errors").Bullets(items...)
	}
	return doc.String()
}

func formatDeleted(res *api.DeleteKeysResponse, ids []int64) string {
	doc := markdown.New().H1("Keys Deleted")
	removed := res.KeyRemoved || res.KeysRemoved
	if !removed {
		doc.Paragraph("Lokalise did not remove any keys.")
	} else {
		list := make([]string, len(ids))
		for i, id := range ids {
			list[i] = strconv.FormatInt(id, 10)
		}
		doc.Paragraph("Removed %d key(s) from project %s: %s.", len(ids), markdown.Code(res.ProjectID), strings.Join(list, ", "))
	}
	if res.KeysLocked > 0 {
		doc.Paragraph("%d key(s) are locked by tasks or processes and were not deleted.", res.KeysLocked)
	}
	return doc.String()
}
