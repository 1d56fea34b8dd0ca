package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "image_dimensions",
			Description: "Get the width, height and format of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the image file"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_grid_overlay",
			Description: "Preview how a target image will be divided: trims it to a multiple of the sample size and draws the sampling grid. Returns a base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the target image"),
					"sample_size": map[string]interface{}{
						"type":        "integer",
						"description": "Edge of each sampling block in pixels. Default 10",
						"default":     10,
					},
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Grid line color as hex (#RRGGBB or #RRGGBBAA). Default #FF0000",
						"default":     "#FF0000",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "tile_summarize",
			Description: "Summarize a candidate tile image: crop to the centered square, shrink to 25x25 and report the average color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the tile image"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "mosaic_create",
			Description: "Build a photographic mosaic of a target image from the images in a tile directory and write it to an output file (.png, .jpg or .bmp).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"tiles_dir": pathProperty("Directory containing candidate tile images"),
					"target":    pathProperty("Image to reproduce as a mosaic"),
					"output":    pathProperty("Path of the mosaic to write"),
					"recursive": map[string]interface{}{
						"type":        "boolean",
						"description": "Also search subdirectories of tiles_dir. Default false",
						"default":     false,
					},
					"sample_size": map[string]interface{}{
						"type":        "integer",
						"description": "Edge of each sampling block in target pixels. Default 10",
						"default":     10,
					},
					"sub_image_size": map[string]interface{}{
						"type":        "integer",
						"description": "Edge of each mosaic cell in output pixels; must be positive when given. Default: sample_size",
					},
					"allowable_error": map[string]interface{}{
						"type":        "integer",
						"description": "Per-channel tolerance between a block's and a tile's average color. Default 15",
						"default":     15,
					},
					"seed": map[string]interface{}{
						"type":        "integer",
						"description": "Seed for tile selection; 0 picks a random seed",
					},
				},
				"required": []string{"tiles_dir", "target", "output"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
