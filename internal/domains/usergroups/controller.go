package usergroups

import (
	"context"
	"strconv"

	"github.com/lokalise/lokalise-mcp/internal/api"
	"github.com/lokalise/lokalise-mcp/internal/apperr"
	"github.com/lokalise/lokalise-mcp/internal/domain"
)

// Controller validates arguments, calls the service and formats results.
type Controller struct {
	svc *Service
}

// NewController creates a Controller.
func NewController(deps domain.Deps) *Controller {
	return &Controller{svc: NewService(deps.Clients)}
}

func fail(err error, op string, groupID int64) error {
	c := apperr.Context{Operation: op, EntityType: "user group"}
	if groupID > 0 {
		c.EntityID = strconv.FormatInt(groupID, 10)
	}
	return apperr.WithContext(err, c)
}

// List lists a team's groups.
func (c *Controller) List(ctx context.Context, args ListArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "list user groups", 0)
	}
	groups, page, err := c.svc.List(ctx, args.TeamID, api.PageOptions{Limit: args.limit, Page: args.page})
	if err != nil {
		return "", fail(err, "list user groups", 0)
	}
	return formatList(args.TeamID, groups, page), nil
}

// Get shows one group.
func (c *Controller) Get(ctx context.Context, args GetArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "get user group", args.GroupID)
	}
	g, err := c.svc.Get(ctx, args.TeamID, args.GroupID)
	if err != nil {
		return "", fail(err, "get user group", args.GroupID)
	}
	return formatGroup("User Group: "+g.Name, g, ""), nil
}

// Create creates a group.
func (c *Controller) Create(ctx context.Context, args CreateArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "create user group", 0)
	}
	g, err := c.svc.Create(ctx, args.TeamID, args.request())
	if err != nil {
		return "", fail(err, "create user group", 0)
	}
	return formatGroup("User Group Created", g, ""), nil
}

// Update replaces a group's name and permissions.
func (c *Controller) Update(ctx context.Context, args UpdateArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "update user group", args.GroupID)
	}
	g, err := c.svc.Update(ctx, args.TeamID, args.GroupID, args.request())
	if err != nil {
		return "", fail(err, "update user group", args.GroupID)
	}
	return formatGroup("User Group Updated", g, ""), nil
}

// Delete deletes a group.
func (c *Controller) Delete(ctx context.Context, args GetArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "delete user group", args.GroupID)
	}
	res, err := c.svc.Delete(ctx, args.TeamID, args.GroupID)
	if err != nil {
		return "", fail(err, "delete user group", args.GroupID)
	}
	return formatDeleted(args, res.GroupDeleted), nil
}

// AddMembers adds users to a group.
func (c *Controller) AddMembers(ctx context.Context, args MembersArgs) (string, error) {
	return c.members(ctx, args, "add group members", c.svc.AddMembers, "Added %d member(s).")
}

// RemoveMembers removes users from a group.
func (c *Controller) RemoveMembers(ctx context.Context, args MembersArgs) (string, error) {
	return c.members(ctx, args, "remove group members", c.svc.RemoveMembers, "Removed %d member(s).")
}

// AddProjects grants a group access to projects.
func (c *Controller) AddProjects(ctx context.Context, args ProjectsArgs) (string, error) {
	return c.projects(ctx, args, "add group projects", c.svc.AddProjects, "Added %d project(s).")
}

// RemoveProjects revokes a group's access to projects.
func (c *Controller) RemoveProjects(ctx context.Context, args ProjectsArgs) (string, error) {
	return c.projects(ctx, args, "remove group projects", c.svc.RemoveProjects, "Removed %d project(s).")
}

type membersCall func(ctx context.Context, teamID, groupID int64, ids []int64) (*api.UserGroup, error)

type projectsCall func(ctx context.Context, teamID, groupID int64, ids []string) (*api.UserGroup, error)

func (c *Controller) members(ctx context.Context, args MembersArgs, op string, call membersCall, note string) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, op, args.GroupID)
	}
	g, err := call(ctx, args.TeamID, args.GroupID, args.UserIDs)
	if err != nil {
		return "", fail(err, op, args.GroupID)
	}
	return formatGroup("User Group: "+g.Name, g, note, len(args.UserIDs)), nil
}

func (c *Controller) projects(ctx context.Context, args ProjectsArgs, op string, call projectsCall, note string) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, op, args.GroupID)
	}
	g, err := call(ctx, args.TeamID, args.GroupID, args.ProjectIDs)
	if err != nil {
		return "", fail(err, op, args.GroupID)
	}
	return formatGroup("User Group: "+g.Name, g, note, len(args.ProjectIDs)), nil
}
