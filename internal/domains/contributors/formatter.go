package contributors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lokalise/lokalise-mcp/internal/api"
	"github.com/lokalise/lokalise-mcp/internal/domain"
	"github.com/lokalise/lokalise-mcp/internal/markdown"
)

func displayName(c *api.Contributor) string {
	if c.Fullname != "" {
		return c.Fullname
	}
	return c.Email
}

func role(c api.Contributor) string {
	switch {
	case c.IsAdmin && c.IsReviewer:
		return "Admin, Reviewer"
	case c.IsAdmin:
		return "Admin"
	case c.IsReviewer:
		return "Reviewer"
	}
	return "Translator"
}

// languages renders "en (rw), de (r)".
func languages(langs []api.ContributorLanguage) string {
	parts := make([]string, 0, len(langs))
	for _, l := range langs {
		mode := "r"
		if l.IsWritable {
			mode = "rw"
		}
		parts = append(parts, fmt.Sprintf("%s (%s)", l.LangISO, mode))
	}
	return strings.Join(parts, ", ")
}

func formatList(projectID string, list []api.Contributor, page api.Pagination) string {
	doc := markdown.New().H1("Contributors in Project %s", projectID)
	if len(list) == 0 {
		return doc.Paragraph("No contributors found.").String()
	}
	rows := make([][]string, 0, len(list))
	for _, c := range list {
		rows = append(rows, []string{
			strconv.FormatInt(c.UserID, 10),
			c.Fullname,
			c.Email,
			role(c),
			languages(c.Languages),
		})
	}
	doc.Table([]string{"User ID", "Name", "Email", "Role", "Languages"}, rows)
	return doc.Paragraph("%s", markdown.PageNote(domain.PageOf(page, len(list)))).String()
}

func formatContributor(title string, c *api.Contributor) string {
	doc := markdown.New().H1("%s", title).Fields(
		markdown.F("User ID", strconv.FormatInt(c.UserID, 10)),
		markdown.F("Email", c.Email),
		markdown.F("Name", c.Fullname),
		markdown.F("Role", role(*c)),
		markdown.F("Admin rights", markdown.List(c.AdminRights)),
		markdown.F("Role ID", markdown.Int(c.RoleID)),
		markdown.F("Joined", markdown.Date(c.CreatedAt)),
	)
	if len(c.Languages) > 0 {
		rows := make([][]string, 0, len(c.Languages))
		for _, l := range c.Languages {
			rows = append(rows, []string{l.LangISO, l.LangName, markdown.Bool(l.IsWritable)})
		}
		doc.H2("Languages").Table([]string{"Code", "Name", "Writable"}, rows)
	}
	return doc.String()
}

func formatAdded(requested int, list []api.Contributor) string {
	doc := markdown.New().H1("Contributors Added")
	doc.Paragraph("Added %d of %d contributors.", len(list), requested)
	items := make([]string, 0, len(list))
	for _, c := range list {
		items = append(items, fmt.Sprintf("%s (ID %d, %s)", c.Email, c.UserID, role(c)))
	}
	return doc.Bullets(items...).String()
}

func formatRemoved(args GetArgs, deleted bool) string {
	doc := markdown.New().H1("Contributor Removed")
	if !deleted {
		return doc.Paragraph("Lokalise did not remove contributor %d.", args.ContributorID).String()
	}
	return doc.Paragraph("Removed contributor %d from project %s.", args.ContributorID, markdown.Code(args.ProjectID)).String()
}
