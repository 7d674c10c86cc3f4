// Package api provides HTTP REST API handlers for the sliding puzzle.
//
// The api package implements:
//   - RESTful endpoints for puzzle operations
//   - Session management endpoints
//   - Preset listing and creation
//   - Save/load grid snapshots
//   - WebSocket upgrade handling
//   - Static file serving
//
// Endpoints:
//
// Puzzle Operations:
//   - GET /api/sessions/{id}/state - Get current puzzle state
//   - GET /api/sessions/{id}/render - Plain-text grid rendering
//   - POST /api/sessions/{id}/move - Apply a single move token
//   - POST /api/sessions/{id}/sequence - Apply a literal move sequence
//   - POST /api/sessions/{id}/shuffle - Apply a random move sequence
//   - POST /api/sessions/{id}/reset - Restore the solved configuration
//   - GET /api/sessions/{id}/history - Get move history with pagination
//
// Session Management:
//   - POST /api/sessions - Create new session
//   - GET /api/sessions - List all sessions
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete session
//
// Save Files:
//   - POST /api/sessions/{id}/save - Write the grid to a save file
//   - POST /api/sessions/{id}/load - Replace the grid from a save file
//
// Configuration:
//   - GET /api/configs - List available presets
//   - GET /api/configs/{name} - Get a specific preset
//   - POST /api/configs - Create a preset
//
// Request/Response Format:
//
// All endpoints accept and return JSON. Move tokens accept both word and
// letter forms, case-insensitively:
//
//	{"token": "up"}      // or "w"
//	{"sequence": "wasd"} // letters only, unknown characters skipped
//	{"length": 50}       // shuffle; 0 uses the preset's shuffle_length
//	{"path": "puzzle_save.json"} // save/load; empty uses the default
//
// Move semantics: a token names the direction a TILE slides into the blank,
// so "up" moves the tile below the blank up (the blank moves down).
//
// Error Handling:
//
// Errors are returned as JSON with appropriate HTTP status codes:
//
//	{
//	  "error": "error message"
//	}
//
// Malformed save files produce 400; unknown sessions produce 404 on reads
// and 500 on mutations, mirroring the service error wrapping.
package api
