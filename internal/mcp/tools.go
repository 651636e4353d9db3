package mcp

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/admindesk/admindesk/internal/store"
)

// listPageSize mirrors the HTTP directory's fixed page length.
const listPageSize = 20

// registerTools registers the directory tools on the given server.
func (s *MCPServer) registerTools(srv *server.MCPServer) {

	srv.AddTool(
		mcp.NewTool("directory_list_users",
			mcp.WithDescription(
				"List users in the directory, 20 per page, ordered by name. "+
					"Returns each user's name and email. Use page to walk the "+
					"directory; pages are 1-based.",
			),
			mcp.WithToolAnnotation(readOnlyAnnotation()),
			mcp.WithNumber("page",
				mcp.Description("1-based page number (default 1)"),
			),
		),
		s.handleListUsers,
	)

	srv.AddTool(
		mcp.NewTool("directory_get_user",
			mcp.WithDescription(
				"Get one user's detail view by id: name, email, country, city, "+
					"and company.",
			),
			mcp.WithToolAnnotation(readOnlyAnnotation()),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("User id"),
			),
		),
		s.handleGetUser,
	)

	srv.AddTool(
		mcp.NewTool("directory_filter_users",
			mcp.WithDescription(
				"Filter users by country and/or city. Matching is "+
					"case-insensitive substring containment; an omitted filter "+
					"matches everything. Returns full user records.",
			),
			mcp.WithToolAnnotation(readOnlyAnnotation()),
			mcp.WithString("country",
				mcp.Description("Country fragment to match (optional)"),
			),
			mcp.WithString("city",
				mcp.Description("City fragment to match (optional)"),
			),
		),
		s.handleFilterUsers,
	)

	srv.AddTool(
		mcp.NewTool("directory_search_users",
			mcp.WithDescription(
				"Search users whose name or email contains the query, "+
					"case-insensitive. Returns profile projections without ids.",
			),
			mcp.WithToolAnnotation(readOnlyAnnotation()),
			mcp.WithString("query",
				mcp.Required(),
				mcp.Description("Fragment matched against name and email"),
			),
		),
		s.handleSearchUsers,
	)
}

func (s *MCPServer) handleListUsers(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page := optionalInt(request, "page", 1)
	if page < 1 {
		return toolError("page must be a positive integer, got %d", page)
	}

	users, err := s.store.ListUsers(ctx, (page-1)*listPageSize, listPageSize)
	if err != nil {
		return toolError("list users: %v", err)
	}
	return successJSON(users)
}

func (s *MCPServer) handleGetUser(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireString(request, "id")
	if err != nil {
		return toolError("%v", err)
	}

	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return toolError("no user with id %q", id)
		}
		return toolError("get user: %v", err)
	}
	return successJSON(user.Detail())
}

func (s *MCPServer) handleFilterUsers(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	country := optionalString(request, "country")
	city := optionalString(request, "city")

	users, err := s.store.FilterUsers(ctx, country, city)
	if err != nil {
		return toolError("filter users: %v", err)
	}
	return successJSON(users)
}

func (s *MCPServer) handleSearchUsers(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := requireString(request, "query")
	if err != nil {
		return toolError("%v", err)
	}

	users, err := s.store.SearchUsers(ctx, query)
	if err != nil {
		return toolError("search users: %v", err)
	}
	return successJSON(users)
}
