package comments

import (
	"strconv"

	"github.com/lokalise/lokalise-mcp/internal/api"
	"github.com/lokalise/lokalise-mcp/internal/domain"
	"github.com/lokalise/lokalise-mcp/internal/markdown"
)

func author(c api.Comment) string {
	if c.AddedByEmail != "" {
		return c.AddedByEmail
	}
	return markdown.Int(c.AddedBy)
}

func formatList(title string, comments []api.Comment, page api.Pagination, withKey bool) string {
	doc := markdown.New().H1("%s", title)
	if len(comments) == 0 {
		return doc.Paragraph("No comments found.").String()
	}
	headers := []string{"Comment ID", "Author", "Added", "Comment"}
	if withKey {
		headers = []string{"Comment ID", "Key ID", "Author", "Added", "Comment"}
	}
	rows := make([][]string, 0, len(comments))
	for _, c := range comments {
		row := []string{strconv.FormatInt(c.CommentID, 10)}
		if withKey {
			row = append(row, strconv.FormatInt(c.KeyID, 10))
		}
		row = append(row, author(c), markdown.Date(c.AddedAt), markdown.Truncate(c.Comment, 100))
		rows = append(rows, row)
	}
	doc.Table(headers, rows)
	return doc.Paragraph("%s", markdown.PageNote(domain.PageOf(page, len(comments)))).String()
}

func formatComment(c *api.Comment) string {
	return markdown.New().
		H1("Comment %d", c.CommentID).
		Fields(
			markdown.F("Key ID", strconv.FormatInt(c.KeyID, 10)),
			markdown.F("Author", author(*c)),
			markdown.F("Added", markdown.Date(c.AddedAt)),
		).
		Paragraph("> %s", c.Comment).
		String()
}

func formatCreated(keyID int64, comments []api.Comment) string {
	doc := markdown.New().H1("Comments Added")
	doc.Paragraph("Added %d comment(s) to key %d.", len(comments), keyID)
	items := make([]string, 0, len(comments))
	for _, c := range comments {
		items = append(items, "#"+strconv.FormatInt(c.CommentID, 10)+": "+markdown.Truncate(c.Comment, 100))
	}
	return doc.Bullets(items...).String()
}

func formatDeleted(args CommentArgs, deleted bool) string {
	doc := markdown.New().H1("Comment Deleted")
	if !deleted {
		return doc.Paragraph("Lokalise did not delete comment %d.", args.CommentID).String()
	}
	return doc.Paragraph("Deleted comment %d on key %d.", args.CommentID, args.KeyID).String()
}
