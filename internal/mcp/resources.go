// ABOUTME: MCP resource implementations for the training store.
// ABOUTME: Provides motiv8r://catalog, motiv8r://quests, and motiv8r://history.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/stslabs/motiv8r/internal/catalog"
	"github.com/stslabs/motiv8r/internal/session"
)

func (s *Server) registerResources() {
	// motiv8r://catalog - the full exercise catalog
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "motiv8r://catalog",
		Name:        "Exercise Catalog",
		Description: "Every exercise with category, muscles, equipment, and XP value",
		MIMEType:    "application/json",
	}, s.handleCatalogResource)

	// motiv8r://quests - today's quest board
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "motiv8r://quests",
		Name:        "Daily Quests",
		Description: "Today's quest selection with progress and claim state",
		MIMEType:    "application/json",
	}, s.handleQuestsResource)

	// motiv8r://history - workout history and PRs
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "motiv8r://history",
		Name:        "Training History",
		Description: "Completed workouts and personal records",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)
}

// Resource handlers

func (s *Server) handleCatalogResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	result := map[string]any{
		"categories": catalog.Categories(),
		"exercises":  catalog.All(),
	}
	return resourceJSON("motiv8r://catalog", result)
}

func (s *Server) handleQuestsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	result := map[string]any{
		"quests":      s.engine.Status(),
		"all_claimed": s.engine.AllClaimed(),
		"total_xp":    s.engine.TotalXP(),
	}
	return resourceJSON("motiv8r://quests", result)
}

func (s *Server) handleHistoryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	history := session.LoadHistory(s.store)
	prs := session.LoadPRs(s.store)

	result := map[string]any{
		"workouts":         history,
		"personal_records": prs,
		"counts": map[string]int{
			"workouts": len(history),
			"prs":      len(prs),
		},
	}
	return resourceJSON("motiv8r://history", result)
}

func resourceJSON(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
