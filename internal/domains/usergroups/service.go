package usergroups

import (
	"context"

	"github.com/lokalise/lokalise-mcp/internal/api"
	"github.com/lokalise/lokalise-mcp/internal/apperr"
)

// Service calls the Lokalise user group endpoints.
type Service struct {
	clients api.ClientSource
}

// NewService creates a Service.
func NewService(clients api.ClientSource) *Service {
	return &Service{clients: clients}
}

// List returns a page of a team's groups.
func (s *Service) List(ctx context.Context, teamID int64, opts api.PageOptions) ([]api.UserGroup, api.Pagination, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, api.Pagination{}, err
	}
	out, page, err := c.ListUserGroups(ctx, teamID, opts)
	if err != nil {
		return nil, page, apperr.Wrap(err, "failed to list user groups")
	}
	return out, page, nil
}

// Get returns one group.
func (s *Service) Get(ctx context.Context, teamID, groupID int64) (*api.UserGroup, error) {
	return s.group(func(c *api.Client) (*api.UserGroup, error) {
		return c.GetUserGroup(ctx, teamID, groupID)
	}, "failed to get user group")
}

// Create creates a group.
func (s *Service) Create(ctx context.Context, teamID int64, in *api.UserGroupInput) (*api.UserGroup, error) {
	return s.group(func(c *api.Client) (*api.UserGroup, error) {
		return c.CreateUserGroup(ctx, teamID, in)
	}, "failed to create user group")
}

// Update replaces a group's name and permissions.
func (s *Service) Update(ctx context.Context, teamID, groupID int64, in *api.UserGroupInput) (*api.UserGroup, error) {
	return s.group(func(c *api.Client) (*api.UserGroup, error) {
		return c.UpdateUserGroup(ctx, teamID, groupID, in)
	}, "failed to update user group")
}

// AddMembers adds users to a group.
func (s *Service) AddMembers(ctx context.Context, teamID, groupID int64, userIDs []int64) (*api.UserGroup, error) {
	return s.group(func(c *api.Client) (*api.UserGroup, error) {
		return c.AddMembersToGroup(ctx, teamID, groupID, userIDs)
	}, "failed to add group members")
}

// RemoveMembers removes users from a group.
func (s *Service) RemoveMembers(ctx context.Context, teamID, groupID int64, userIDs []int64) (*api.UserGroup, error) {
	return s.group(func(c *api.Client) (*api.UserGroup, error) {
		return c.RemoveMembersFromGroup(ctx, teamID, groupID, userIDs)
	}, "failed to remove group members")
}

// AddProjects grants a group access to projects.
func (s *Service) AddProjects(ctx context.Context, teamID, groupID int64, projectIDs []string) (*api.UserGroup, error) {
	return s.group(func(c *api.Client) (*api.UserGroup, error) {
		return c.AddProjectsToGroup(ctx, teamID, groupID, projectIDs)
	}, "failed to add group projects")
}

// RemoveProjects revokes a group's access to projects.
func (s *Service) RemoveProjects(ctx context.Context, teamID, groupID int64, projectIDs []string) (*api.UserGroup, error) {
	return s.group(func(c *api.Client) (*api.UserGroup, error) {
		return c.RemoveProjectsFromGroup(ctx, teamID, groupID, projectIDs)
	}, "failed to remove group projects")
}

// Delete deletes a group.
func (s *Service) Delete(ctx context.Context, teamID, groupID int64) (*api.DeleteUserGroupResponse, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, err
	}
	out, err := c.DeleteUserGroup(ctx, teamID, groupID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to delete user group")
	}
	return out, nil
}

func (s *Service) group(call func(*api.Client) (*api.UserGroup, error), msg string) (*api.UserGroup, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, err
	}
	g, err := call(c)
	if err != nil {
		return nil, apperr.Wrap(err, msg)
	}
	return g, nil
}
