// Package mcp provides Model Context Protocol server implementation for the slide puzzle.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for puzzle operations
//   - Session-aware command execution
//   - Stdio and HTTP transport modes
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - puzzle_state: Get current puzzle state with grid rendering
//   - move: Apply a single move token (up/down/left/right or w/s/a/d)
//   - apply_sequence: Apply a whole token sequence in one call
//   - shuffle: Scramble the puzzle with random moves
//   - reset_puzzle: Reset puzzle to its solved state
//   - move_history: Retrieve move history with pagination
//   - save_puzzle: Write a grid snapshot to a JSON file
//   - load_puzzle: Replace the grid from a JSON snapshot
//   - create_session: Create new puzzle session with preset selection
//   - get_session: Get specific session details
//   - list_sessions: List all active sessions
//   - list_configs: List available puzzle presets
//   - puzzle_instructions: Comprehensive rules, including the inverted
//     move semantics (a token names the tile's source side, not the
//     blank's travel direction)
//   - describe_tile: Detailed information about a single grid cell
//
// Transport Modes:
//
// The server supports two transport modes:
//   - Stdio: Direct stdio communication for local MCP clients
//   - HTTP: HTTP endpoint for remote MCP integration
//
// Architecture:
//
// The MCP layer is a thin client over the REST API: every tool handler
// translates its arguments into an HTTP call against the puzzle server
// and formats the JSON response as text. This keeps a single source of
// truth for puzzle semantics in the service layer.
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
//
// AI Integration:
//
// The MCP interface enables AI agents to:
//   - Autonomously solve puzzles
//   - Develop and test solving strategies
//   - Analyze puzzle states and plan blank maneuvers
//   - Manage multiple puzzle sessions
//   - Learn from move history
package mcp
