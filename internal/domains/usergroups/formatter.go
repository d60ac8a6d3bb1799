package usergroups

import (
	"strconv"

	"github.com/lokalise/lokalise-mcp/internal/api"
	"github.com/lokalise/lokalise-mcp/internal/domain"
	"github.com/lokalise/lokalise-mcp/internal/markdown"
)

func ids(values []int64) string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strconv.FormatInt(v, 10)
	}
	return markdown.List(out)
}

func formatList(teamID int64, groups []api.UserGroup, page api.Pagination) string {
	doc := markdown.New().H1("User Groups in Team %d", teamID)
	if len(groups) == 0 {
		return doc.Paragraph("No user groups found.").String()
	}
	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []string{
			strconv.FormatInt(g.GroupID, 10),
			g.Name,
			markdown.Bool(g.Permissions.IsAdmin),
			markdown.Bool(g.Permissions.IsReviewer),
			strconv.Itoa(len(g.Members)),
			strconv.Itoa(len(g.Projects)),
		})
	}
	doc.Table([]string{"Group ID", "Name", "Admin", "Reviewer", "Members", "Projects"}, rows)
	return doc.Paragraph("%s", markdown.PageNote(domain.PageOf(page, len(groups)))).String()
}

// formatGroup renders a group. A non-empty note is formatted with args and
// shown under the title.
func formatGroup(title string, g *api.UserGroup, note string, args ...any) string {
	doc := markdown.New().H1("%s", title)
	if note != "" {
		doc.Paragraph(note, args...)
	}
	doc.Fields(
		markdown.F("Group ID", strconv.FormatInt(g.GroupID, 10)),
		markdown.F("Team ID", markdown.Int(g.TeamID)),
		markdown.F("Admin", markdown.Bool(g.Permissions.IsAdmin)),
		markdown.F("Reviewer", markdown.Bool(g.Permissions.IsReviewer)),
		markdown.F("Admin rights", markdown.List(g.Permissions.AdminRights)),
		markdown.F("Members", ids(g.Members)),
		markdown.F("Created", markdown.Date(g.CreatedAt)),
	)
	if len(g.Projects) > 0 {
		items := make([]string, len(g.Projects))
		for i, p := range g.Projects {
			items[i] = markdown.Code(p)
		}
		doc.H2("Projects").Bullets(items...)
	}
	if len(g.Permissions.Languages) > 0 {
		rows := make([][]string, 0, len(g.Permissions.Languages))
		for _, l := range g.Permissions.Languages {
			rows = append(rows, []string{l.LangISO, l.LangName, markdown.Bool(l.IsWritable)})
		}
		doc.H2("Languages").Table([]string{"Code", "Name", "Writable"}, rows)
	}
	return doc.String()
}

func formatDeleted(args GetArgs, deleted bool) string {
	doc := markdown.New().H1("User Group Deleted")
	if !deleted {
		return doc.Paragraph("Lokalise did not delete group %d.", args.GroupID).String()
	}
	return doc.Paragraph("Deleted group %d from team %d.", args.GroupID, args.TeamID).String()
}
