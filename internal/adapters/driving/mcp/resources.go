package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/edi-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for edi resources.
	uriScheme = "edi://"

	// historyLimit bounds the edi://history listing.
	historyLimit = 50
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "formats",
		Name:        "formats",
		Description: "Routing keys (dialect, version, message type) that can be converted",
		MIMEType:    "application/json",
	}, s.handleFormatsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "history",
		Name:        "history",
		Description: "Most recent conversions, newest first",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "history/{id}",
		Name:        "history-record",
		Description: "A single recorded conversion",
		MIMEType:    "application/json",
	}, s.handleHistoryRecordResource)
}

// formatInfo is one entry of the edi://formats resource.
type formatInfo struct {
	Dialect     string `json:"dialect"`
	Version     string `json:"version"`
	MessageType string `json:"message_type"`
	Key         string `json:"key"`
}

// recordInfo is the JSON form of a conversion record.
type recordInfo struct {
	ID        string `json:"id"`
	Command   string `json:"command"`
	Input     string `json:"input"`
	Dialect   string `json:"dialect,omitempty"`
	Type      string `json:"type,omitempty"`
	Charset   string `json:"charset,omitempty"`
	Stage     string `json:"stage"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
	CreatedAt string `json:"created_at"`
}

func toRecordInfo(r *domain.ConversionRecord) recordInfo {
	info := recordInfo{
		ID:        r.ID,
		Command:   string(r.Command),
		Input:     r.Input,
		Dialect:   string(r.Dialect),
		Charset:   string(r.Charset),
		Stage:     string(r.Stage),
		Success:   r.Success,
		Error:     r.Error,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
	}
	if key := r.Key(); !key.IsZero() {
		info.Type = key.String()
	}
	return info
}

// handleFormatsResource lists the supported routing keys.
func (s *Server) handleFormatsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	keys := s.ports.Catalog.Keys()

	infos := make([]formatInfo, len(keys))
	for i, key := range keys {
		infos[i] = formatInfo{
			Dialect:     key.Dialect.String(),
			Version:     key.Version,
			MessageType: key.MessageType,
			Key:         key.String(),
		}
	}

	return jsonResult(req.Params.URI, infos, "formats")
}

// handleHistoryResource lists recent conversions.
func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	infos := []recordInfo{}

	if s.ports.History != nil {
		records, err := s.ports.History.List(ctx, historyLimit)
		if err != nil {
			return nil, fmt.Errorf("listing history: %w", err)
		}
		for i := range records {
			infos = append(infos, toRecordInfo(&records[i]))
		}
	}

	return jsonResult(req.Params.URI, infos, "history")
}

// handleHistoryRecordResource returns a single recorded conversion.
func (s *Server) handleHistoryRecordResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	id := extractRecordID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	record, err := s.ports.History.Get(ctx, id)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return jsonResult(req.Params.URI, toRecordInfo(record), "history record")
}

func jsonResult(uri string, v any, what string) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", what, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractRecordID extracts the record ID from a URI like edi://history/{id}.
func extractRecordID(uri string) string {
	const prefix = uriScheme + "history/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
