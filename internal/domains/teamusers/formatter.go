package teamusers

import (
	"strconv"

	"github.com/lokalise/lokalise-mcp/internal/api"
	"github.com/lokalise/lokalise-mcp/internal/domain"
	"github.com/lokalise/lokalise-mcp/internal/markdown"
)

func name(u *api.TeamUser) string {
	if u.Fullname != "" {
		return u.Fullname
	}
	return u.Email
}

func formatList(teamID int64, users []api.TeamUser, page api.Pagination) string {
	doc := markdown.New().H1("Users in Team %d", teamID)
	if len(users) == 0 {
		return doc.Paragraph("No team users found.").String()
	}
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			strconv.FormatInt(u.UserID, 10),
			u.Fullname,
			u.Email,
			markdown.Title(u.Role),
			markdown.Date(u.CreatedAt),
		})
	}
	doc.Table([]string{"User ID", "Name", "Email", "Role", "Joined"}, rows)
	return doc.Paragraph("%s", markdown.PageNote(domain.PageOf(page, len(users)))).String()
}

func formatUser(title string, u *api.TeamUser) string {
	return markdown.New().H1("%s", title).Fields(
		markdown.F("User ID", strconv.FormatInt(u.UserID, 10)),
		markdown.F("Email", u.Email),
		markdown.F("Name", u.Fullname),
		markdown.F("Role", markdown.Title(u.Role)),
		markdown.F("Joined", markdown.Date(u.CreatedAt)),
	).String()
}

func formatDeleted(args GetArgs, deleted bool) string {
	doc := markdown.New().H1("Team User Removed")
	if !deleted {
		return doc.Paragraph("Lokalise did not remove user %d.", args.UserID).String()
	}
	return doc.Paragraph("Removed user %d from team %d.", args.UserID, args.TeamID).String()
}
