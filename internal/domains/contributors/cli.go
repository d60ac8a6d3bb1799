package contributors

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lokalise/lokalise-mcp/internal/apperr"
	"github.com/lokalise/lokalise-mcp/internal/domain"
	"github.com/lokalise/lokalise-mcp/internal/handler"
)

// Commands returns the contributors CLI commands.
func (d *Domain) Commands() []*cobra.Command {
	return []*cobra.Command{
		d.listCmd(),
		d.getCmd(),
		d.currentCmd(),
		d.addCmd(),
		d.updateCmd(),
		d.removeCmd(),
	}
}

// permissionFlags binds the flags shared by add and update.
type permissionFlags struct {
	languages []string
	rights    []string
}

func (pf *permissionFlags) bind(cmd *cobra.Command, p *Permissions) {
	f := cmd.Flags()
	f.StringVar(&p.Fullname, "name", "", "Display name")
	f.Bool("admin", false, "Project admin")
	f.Bool("reviewer", false, "Can mark translations reviewed")
	f.StringSliceVar(&pf.languages, "languages", nil, "Language access as iso or iso:rw, e.g. en:rw,de")
	f.StringSliceVar(&pf.rights, "admin-rights", nil, "Admin rights")
}

// apply copies flag values into p. "de" is read-only and "de:rw" writable.
func (pf *permissionFlags) apply(cmd *cobra.Command, p *Permissions) error {
	p.IsAdmin = handler.OptionalBool(cmd, "admin")
	p.IsReviewer = handler.OptionalBool(cmd, "reviewer")
	p.AdminRights = pf.rights
	for _, l := range pf.languages {
		iso, mode, _ := strings.Cut(l, ":")
		switch mode {
		case "", "r":
			p.Languages = append(p.Languages, LanguageAccess{LangISO: iso})
		case "rw", "w":
			p.Languages = append(p.Languages, LanguageAccess{LangISO: iso, IsWritable: true})
		default:
			return apperr.Validation("--languages entry %q must be iso, iso:r or iso:rw", l)
		}
	}
	return nil
}

func (d *Domain) listCmd() *cobra.Command {
	var in ListArgs
	cmd := &cobra.Command{
		Use:   "list-contributors",
		Short: "List the contributors of a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.Limit = handler.OptionalInt(cmd, "limit")
			in.Page = handler.OptionalInt(cmd, "page")
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				return d.ctl.List(ctx, in)
			})
		},
	}
	cmd.Flags().StringVar(&in.ProjectID, "project-id", "", "Project ID (required)")
	cmd.Flags().Int("limit", domain.DefaultLimit, "Number of contributors to return (1-500)")
	cmd.Flags().Int("page", 1, "Page number")
	return cmd
}

func (d *Domain) getCmd() *cobra.Command {
	var in GetArgs
	cmd := &cobra.Command{
		Use:   "get-contributor",
		Short: "Show a contributor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				return d.ctl.Get(ctx, in)
			})
		},
	}
	cmd.Flags().StringVar(&in.ProjectID, "project-id", "", "Project ID (required)")
	cmd.Flags().Int64Var(&in.ContributorID, "contributor-id", 0, "Contributor user ID (required)")
	return cmd
}

func (d *Domain) currentCmd() *cobra.Command {
	var in CurrentArgs
	cmd := &cobra.Command{
		Use:   "get-current-contributor",
		Short: "Show your own contributor record in a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				return d.ctl.Current(ctx, in)
			})
		},
	}
	cmd.Flags().StringVar(&in.ProjectID, "project-id", "", "Project ID (required)")
	return cmd
}

func (d *Domain) addCmd() *cobra.Command {
	var (
		in       AddArgs
		one      NewContributor
		pf       permissionFlags
		jsonBody string
	)
	cmd := &cobra.Command{
		Use:   "add-contributors",
		Short: "Invite contributors to a project",
		Example: `  lokalise-mcp add-contributors --project-id <id> --email ana@example.com --languages en:rw,de
  lokalise-mcp add-contributors --project-id <id> --contributors @people.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				if jsonBody != "" {
					if err := handler.DecodeJSON("contributors", jsonBody, &in.Contributors); err != nil {
						return "", err
					}
				}
				if one.Email != "" {
					if err := pf.apply(cmd, &one.Permissions); err != nil {
						return "", err
					}
					in.Contributors = append(in.Contributors, one)
				}
				return d.ctl.Add(ctx, in)
			})
		},
	}
	cmd.Flags().StringVar(&in.ProjectID, "project-id", "", "Project ID (required)")
	cmd.Flags().StringVar(&jsonBody, "contributors", "", "JSON array of contributors, @file or - for stdin")
	cmd.Flags().StringVar(&one.Email, "email", "", "Email of a single contributor to invite")
	pf.bind(cmd, &one.Permissions)
	return cmd
}

func (d *Domain) updateCmd() *cobra.Command {
	var (
		in UpdateArgs
		pf permissionFlags
	)
	cmd := &cobra.Command{
		Use:     "update-contributor",
		Short:   "Update a contributor's permissions",
		Example: "  lokalise-mcp update-contributor --project-id <id> --contributor-id 42 --reviewer --languages fr:rw",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				if err := pf.apply(cmd, &in.Permissions); err != nil {
					return "", err
				}
				return d.ctl.Update(ctx, in)
			})
		},
	}
	cmd.Flags().StringVar(&in.ProjectID, "project-id", "", "Project ID (required)")
	cmd.Flags().Int64Var(&in.ContributorID, "contributor-id", 0, "Contributor user ID (required)")
	pf.bind(cmd, &in.Permissions)
	return cmd
}

func (d *Domain) removeCmd() *cobra.Command {
	var in GetArgs
	cmd := &cobra.Command{
		Use:   "remove-contributor",
		Short: "Remove a contributor from a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handler.RunDestructive(cmd, fmt.Sprintf("remove contributor %d", in.ContributorID), func(ctx context.Context) (string, error) {
				return d.ctl.Remove(ctx, in)
			})
		},
	}
	cmd.Flags().StringVar(&in.ProjectID, "project-id", "", "Project ID (required)")
	cmd.Flags().Int64Var(&in.ContributorID, "contributor-id", 0, "Contributor user ID (required)")
	handler.RequireConfirm(cmd)
	return cmd
}
