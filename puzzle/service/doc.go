// Package service defines the application-facing operations for the sliding
// puzzle and their result types.
//
// The PuzzleService interface is the single entry point used by every
// transport (REST API, WebSocket broadcasts, MCP tools, CLI). It covers
// session lifecycle, move and sequence application, shuffling, save-file
// round trips, and preset management. The SessionManager and ConfigManager
// interfaces decouple the service from the concrete session store and the
// preset directory.
//
// Result types carry the full puzzle state after each operation so clients
// can render without a second round trip.
package service
