package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/photomosaic/internal/imaging"
	"github.com/ironsheep/photomosaic/internal/mosaic"
	"github.com/ironsheep/photomosaic/internal/scan"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "mosaic_create").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.log.WithField("tool", params.Name).WithError(err).Warn("Tool execution failed")
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_grid_overlay":
		return s.handleImageGridOverlay(args)
	case "tile_summarize":
		return s.handleTileSummarize(args)
	case "mosaic_create":
		return s.handleMosaicCreate(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

type imagePathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

type imageGridOverlayArgs struct {
	Path       string `json:"path"`
	SampleSize int    `json:"sample_size"`
	Color      string `json:"color"`
}

func (s *Server) handleImageGridOverlay(args json.RawMessage) (interface{}, error) {
	var a imageGridOverlayArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.SampleSize == 0 {
		a.SampleSize = mosaic.DefaultSampleSize
	}
	if a.Color == "" {
		a.Color = "#FF0000"
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.GridOverlay(img, a.SampleSize, a.Color)
}

// TileSummaryResult is the result of tile_summarize.
type TileSummaryResult struct {
	Path    string           `json:"path"`
	Average imaging.RGBColor `json:"average"`
	Hex     string           `json:"hex"`
}

func (s *Server) handleTileSummarize(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	tile, err := mosaic.SummarizeFile(a.Path)
	if err != nil {
		return nil, err
	}
	return &TileSummaryResult{
		Path:    tile.Path,
		Average: tile.Average,
		Hex:     tile.Average.Hex(),
	}, nil
}

type mosaicCreateArgs struct {
	TilesDir       string `json:"tiles_dir"`
	Recursive      bool   `json:"recursive"`
	Target         string `json:"target"`
	Output         string `json:"output"`
	SampleSize     *int   `json:"sample_size"`
	SubImageSize   *int   `json:"sub_image_size"`
	AllowableError *int   `json:"allowable_error"`
	Seed           uint64 `json:"seed"`
}

func (s *Server) handleMosaicCreate(args json.RawMessage) (interface{}, error) {
	var a mosaicCreateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	cfg := mosaic.DefaultConfig()
	if a.SampleSize != nil {
		cfg.SampleSize = *a.SampleSize
	}
	if a.AllowableError != nil {
		cfg.AllowableError = *a.AllowableError
	}
	if a.SubImageSize != nil {
		if err := cfg.SetSubImageSize(*a.SubImageSize); err != nil {
			return nil, err
		}
	}
	cfg.Seed = a.Seed
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tiles, err := scan.Images(a.TilesDir, a.Recursive)
	if err != nil {
		return nil, fmt.Errorf("failed to scan tile directory: %w", err)
	}

	p := mosaic.Pipeline{Config: cfg, Logger: s.log, Store: s.store}
	report, err := p.Run(tiles, a.Target, a.Output)
	if err != nil {
		return nil, err
	}
	s.cache.Evict(a.Output)
	return report, nil
}
