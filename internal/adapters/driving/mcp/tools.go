package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/edi-cli/internal/core/domain"
)

// toolInputName designates tool input in conversion history.
const toolInputName = "mcp"

// DocumentInput is the input schema for tools that take native EDI text.
type DocumentInput struct {
	Document string `json:"document" jsonschema:"the complete X12 or EDIFACT interchange text"`
}

// StructuredInput is the input schema for the json_to_edi tool.
type StructuredInput struct {
	JSON string `json:"json" jsonschema:"a structured value previously produced by edi_to_json"`
}

// EncodingOutput is the output schema for the edi_encoding tool.
type EncodingOutput struct {
	Encoding string `json:"encoding"`
}

// TypeOutput is the output schema for the edi_type tool.
type TypeOutput struct {
	Type        string `json:"type"`
	Dialect     string `json:"dialect"`
	Version     string `json:"version"`
	MessageType string `json:"message_type"`
}

// ConversionOutput is the output schema for the conversion tools.
type ConversionOutput struct {
	Output  string `json:"output"`
	Type    string `json:"type"`
	Charset string `json:"charset"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "edi_encoding",
		Description: "Classify a document as X12, EDIFACT or UNKNOWN from its leading marker",
	}, s.handleEncoding)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "edi_type",
		Description: "Report the version/message type routing key of an EDI document",
	}, s.handleType)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "edi_to_json",
		Description: "Convert an EDI document into its structured JSON form",
	}, s.handleToJSON)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "json_to_edi",
		Description: "Convert a structured JSON value back into an X12 document",
	}, s.handleToEDI)
}

func documentInput(content string) domain.Input {
	return domain.Input{Name: toolInputName, Content: []byte(content)}
}

// handleEncoding handles the edi_encoding tool invocation.
func (s *Server) handleEncoding(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DocumentInput,
) (*mcp.CallToolResult, EncodingOutput, error) {
	dialect := s.ports.Conversion.Encoding(ctx, documentInput(input.Document))
	return nil, EncodingOutput{Encoding: dialect.String()}, nil
}

// handleType handles the edi_type tool invocation.
func (s *Server) handleType(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DocumentInput,
) (*mcp.CallToolResult, TypeOutput, error) {
	key, err := s.ports.Conversion.Type(ctx, documentInput(input.Document))
	if err != nil {
		return nil, TypeOutput{}, err
	}

	return nil, TypeOutput{
		Type:        key.String(),
		Dialect:     key.Dialect.String(),
		Version:     key.Version,
		MessageType: key.MessageType,
	}, nil
}

// handleToJSON handles the edi_to_json tool invocation.
func (s *Server) handleToJSON(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DocumentInput,
) (*mcp.CallToolResult, ConversionOutput, error) {
	conv, err := s.ports.Conversion.ToStructured(ctx, documentInput(input.Document))
	if err != nil {
		return nil, ConversionOutput{}, err
	}
	return nil, conversionOutput(conv), nil
}

// handleToEDI handles the json_to_edi tool invocation.
func (s *Server) handleToEDI(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input StructuredInput,
) (*mcp.CallToolResult, ConversionOutput, error) {
	conv, err := s.ports.Conversion.ToDocument(ctx, documentInput(input.JSON))
	if err != nil {
		return nil, ConversionOutput{}, err
	}
	return nil, conversionOutput(conv), nil
}

func conversionOutput(conv *domain.Conversion) ConversionOutput {
	return ConversionOutput{
		Output:  conv.Output,
		Type:    conv.Key.String(),
		Charset: string(conv.Charset),
	}
}
