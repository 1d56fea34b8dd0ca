// Package server exposes the mosaic pipeline as an MCP (Model Context Protocol) server.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - image_dimensions: Width, height and format of an image
//   - image_grid_overlay: Preview of the sampling grid over a target image
//   - tile_summarize: Average color of a candidate tile
//   - mosaic_create: Build a mosaic from a tile directory and a target image
//
// # Caching
//
// Images read by image_dimensions and image_grid_overlay are kept in memory
// for the lifetime of the process. A mosaic written by mosaic_create is
// evicted so later calls see the new file. When a tile store is supplied,
// tile summaries are shared with the command line tool.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
package server
