package queuedprocesses

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/lokalise/lokalise-mcp/internal/api"
	"github.com/lokalise/lokalise-mcp/internal/domain"
	"github.com/lokalise/lokalise-mcp/internal/markdown"
)

func formatList(projectID string, procs []api.QueuedProcess, page api.Pagination) string {
	doc := markdown.New().H1("Queued Processes in Project %s", projectID)
	if len(procs) == 0 {
		return doc.Paragraph("No queued processes found.").String()
	}
	rows := make([][]string, 0, len(procs))
	for _, p := range procs {
		rows = append(rows, []string{
			markdown.Code(p.ProcessID),
			markdown.Title(p.Type),
			markdown.Title(p.Status),
			markdown.Truncate(p.Message, 60),
			p.CreatedByEmail,
			markdown.Date(p.CreatedAt),
		})
	}
	doc.Table([]string{"Process ID", "Type", "Status", "Message", "Created By", "Created"}, rows)
	return doc.Paragraph("%s", markdown.PageNote(domain.PageOf(page, len(procs)))).String()
}

// formatProcess renders a process. Scalar details become fields and nested
// ones (per-file import results) a YAML block.
func formatProcess(p *api.QueuedProcess) string {
	doc := markdown.New().H1("Queued Process %s", p.ProcessID).Fields(
		markdown.F("Type", markdown.Title(p.Type)),
		markdown.F("Status", markdown.Title(p.Status)),
		markdown.F("Message", p.Message),
		markdown.F("Created by", p.CreatedByEmail),
		markdown.F("Created", markdown.Date(p.CreatedAt)),
	)
	if len(p.Details) == 0 {
		return doc.String()
	}

	keys := make([]string, 0, len(p.Details))
	for k := range p.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var fields []markdown.Field
	nested := map[string]any{}
	for _, k := range keys {
		switch v := p.Details[k].(type) {
		case map[string]any, []any:
			nested[k] = v
		default:
			fields = append(fields, markdown.F(markdown.Title(k), fmt.Sprint(v)))
		}
	}
	doc.H2("Details").Fields(fields...)
	if len(nested) > 0 {
		if out, err := yaml.Marshal(nested); err == nil {
			doc.Code("yaml", string(out))
		}
	}
	return doc.String()
}
