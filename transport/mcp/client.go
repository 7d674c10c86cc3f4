package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/tilegames/slide-puzzle/puzzle/engine"
	"github.com/tilegames/slide-puzzle/puzzle/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Slide Puzzle",
		"2.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Slide Puzzle - MCP Interface

This is a thin client that proxies all requests to the REST API server.

PUZZLE OBJECTIVE:
Arrange the numbered tiles in row-major order with the blank (X) in the
bottom-right corner.

MOVEMENT SEMANTICS (READ CAREFULLY):
A move token names the direction of the tile SOURCE relative to the blank,
not the direction the blank travels. "down" (s) slides the tile ABOVE the
blank down into it, so the blank moves UP. "up" (w) pulls the tile below
the blank up, "left" (a) pulls the tile to the RIGHT of the blank, and
"right" (d) pulls the tile to the LEFT. Moves whose source cell falls
outside the grid are ignored, not errors.

AVAILABLE TOOLS:
- puzzle_state: Get current puzzle state with grid rendering
- move: Single move (up/down/left/right or w/s/a/d) - requires intent explanation
- apply_sequence: Apply a whole token sequence at once - requires intent explanation
- shuffle: Scramble the puzzle with random moves
- reset_puzzle: Reset to the solved state
- move_history: View past moves with pagination
- save_puzzle / load_puzzle: Persist and restore grid snapshots
- create_session: Create new puzzle session
- get_session: Get session details
- list_sessions: List all active sessions
- list_configs: List available puzzle presets
- puzzle_instructions: Get comprehensive puzzle instructions and rules
- describe_tile: Get detailed info about a specific grid cell

NOTE: The 'intent' parameter on move/apply_sequence tools serves as rubber duck debugging - explain your reasoning!`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new puzzle session with optional preset selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "Name of the preset to use (optional)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active puzzle sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to retrieve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Puzzle operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "puzzle_state",
		Description: "Get the current puzzle state",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handlePuzzleState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move",
		Description: "Apply a single move token. The token names where the sliding tile comes FROM relative to the blank: 'down' slides the tile above the blank downward (blank goes up).",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"token": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"up", "down", "left", "right", "w", "s", "a", "d"},
					"description": "Move token (word or letter form)",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this move (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"session_id", "token"},
		},
	}, c.handleMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "apply_sequence",
		Description: "Apply a whole sequence of move letters (w/s/a/d) in one call. Unrecognized characters and out-of-bounds moves are skipped, not errors.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"sequence": map[string]interface{}{
					"type":        "string",
					"description": "Sequence of move letters, e.g. \"ssadw\"",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this sequence of moves (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"session_id", "sequence"},
		},
	}, c.handleApplySequence)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "shuffle",
		Description: "Scramble the puzzle with random moves",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"length": map[string]interface{}{
					"type":        "integer",
					"description": "Number of random moves (0 uses the preset default)",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleShuffle)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_puzzle",
		Description: "Reset the puzzle to its solved state",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleReset)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move_history",
		Description: "Get move history for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Items per page",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleMoveHistory)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "save_puzzle",
		Description: "Save the current grid to a JSON snapshot file on the server",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Target file path (optional, defaults to puzzle_save.json)",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleSavePuzzle)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "load_puzzle",
		Description: "Load a grid snapshot from a JSON file on the server, replacing the session's grid",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Source file path (optional, defaults to puzzle_save.json)",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleLoadPuzzle)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available puzzle presets",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "puzzle_instructions",
		Description: "Get comprehensive puzzle instructions and rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handlePuzzleInstructions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "describe_tile",
		Description: "Get detailed information about a specific grid cell: its label, whether it is the blank, and whether it sits in its solved position. Useful for verifying tile placement before planning moves.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"row": map[string]interface{}{
					"type":        "integer",
					"description": "Row of the cell to describe (0-based)",
				},
				"col": map[string]interface{}{
					"type":        "integer",
					"description": "Column of the cell to describe (0-based)",
				},
			},
			Required: []string{"session_id", "row", "col"},
		},
	}, c.handleDescribeTile)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	configID, _ := args["config_id"].(string)

	body := map[string]string{}
	if configID != "" {
		body["config_id"] = configID
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nPreset: %s\n", session.ID, session.ConfigName)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		result += fmt.Sprintf("- %s (Preset: %s, Created: %s)\n",
			s.ID, s.ConfigName, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSessionInfo(&session)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handlePuzzleState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state engine.PuzzleState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatPuzzleState(&state)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	token, _ := args["token"].(string)
	intent, _ := args["intent"].(string)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	body := map[string]interface{}{
		"token": token,
	}

	var result service.MoveResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/move", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatMoveResult(&result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleApplySequence(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	sequence, _ := args["sequence"].(string)
	intent, _ := args["intent"].(string)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	body := map[string]interface{}{
		"sequence": sequence,
	}

	var result service.SequenceResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/sequence", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatSequenceResult(sessionID, &result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleShuffle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	body := map[string]interface{}{}
	if length, ok := args["length"].(float64); ok {
		body["length"] = int(length)
	}

	var result service.SequenceResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/shuffle", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatSequenceResult(sessionID, &result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var response struct {
		Message string              `json:"message"`
		State   *engine.PuzzleState `json:"state"`
	}

	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/reset", sessionID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatPuzzleState(response.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleMoveHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	params := "?"
	if page, ok := args["page"].(float64); ok {
		params += fmt.Sprintf("page=%d&", int(page))
	}
	if limit, ok := args["limit"].(float64); ok {
		params += fmt.Sprintf("limit=%d&", int(limit))
	}

	var history service.HistoryResponse
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/history%s", sessionID, params), nil, &history)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatHistory(&history)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleSavePuzzle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	path, _ := args["path"].(string)

	body := map[string]string{}
	if path != "" {
		body["path"] = path
	}

	var result service.SaveResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/save", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := fmt.Sprintf("Saved %dx%d grid to %s\n%s", result.Rows, result.Cols, result.Path, result.Message)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleLoadPuzzle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	path, _ := args["path"].(string)

	body := map[string]string{}
	if path != "" {
		body["path"] = path
	}

	var state engine.PuzzleState
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/load", sessionID), body, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Loaded %dx%d grid\n\n%s", state.Rows, state.Cols, formatPuzzleState(&state))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	err := c.apiCall("GET", "/api/configs", nil, &configs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Presets:\n\n"
	for _, config := range configs {
		result += fmt.Sprintf("• %s\n  %s\n  Grid: %dx%d, Shuffle: %d moves\n\n",
			config.ConfigID, config.Description, config.Rows, config.Cols, config.ShuffleLength)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handlePuzzleInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `🧩 Slide Puzzle - Complete Instructions

PUZZLE OBJECTIVE:
Arrange the numbered tiles in row-major ascending order with the blank (X)
in the bottom-right corner. A 3x3 puzzle is solved when it reads:

1 2 3
4 5 6
7 8 X

PUZZLE MECHANICS:
• The grid holds tiles numbered 1..N-1 plus a single blank cell shown as X
• Each move slides exactly one tile into the blank; the tile and blank swap
• Moves that would pull a tile from outside the grid are IGNORED, not errors
• Shuffling applies random legal moves, so the puzzle always stays solvable

MOVEMENT SEMANTICS (MOST COMMON FAILURE POINT):
⚠️ A move token names where the sliding tile COMES FROM relative to the
blank - NOT the direction the blank travels. The blank moves OPPOSITE to
the token name:

• down (s): slides the tile ABOVE the blank downward → blank moves UP
• up (w): slides the tile BELOW the blank upward → blank moves DOWN
• left (a): slides the tile RIGHT of the blank leftward → blank moves RIGHT
• right (d): slides the tile LEFT of the blank rightward → blank moves LEFT

Tokens are case-insensitive and accepted in word form (up/down/left/right)
or letter form (w/s/a/d).

🤖 AI AGENTS - CRITICAL SUCCESS STRATEGIES:

⚠️ TOKEN DIRECTION (verify before planning):
BEFORE any solving plan, confirm the inverted semantics with test moves:
1. Find the blank position in the rendered grid
2. Issue a single move and compare the new blank position to your prediction
3. If the blank moved opposite to what you expected, you were reading the
   token as a blank direction - re-read the semantics above

🗺️ SYSTEMATIC SOLVING:
- Solve the top row first, then the left column, then recurse on the
  remaining smaller subgrid
- The last two tiles of a row or column must be placed together as a pair
- Track the blank position after every move; it is your only actuator

🔄 ITERATIVE DEVELOPMENT:
1. **Analysis**: Read the grid, locate the blank and misplaced tiles
2. **Planning**: Express tile routes as blank maneuvers around the target
3. **Execution**: Use apply_sequence for efficiency, single move for precision
4. **Refinement**: Re-render the state after each sequence and adjust

🚨 CRITICAL PITFALLS TO AVOID:
- ❌ Treating a token as the direction the blank moves (it is the opposite)
- ❌ Assuming an ignored move was applied - check the applied/ignored counts
- ❌ Breaking already-solved rows while routing the blank (go around them)
- ❌ Issuing long blind sequences without re-reading the state

🎮 API USAGE BEST PRACTICES:
- Use apply_sequence for efficiency rather than individual moves
- Use describe_tile to verify a cell's label when the rendering is ambiguous
- Save before risky maneuvers with save_puzzle, restore with load_puzzle
- Monitor the solved flag and total move count after each operation

MOVEMENT COMMANDS:
- up, down, left, right (or w, s, a, d) - Single moves
- Sequences - Strings of move letters executed in order, e.g. "ssawd"

PERSISTENCE:
- save_puzzle writes a JSON snapshot of the grid on the server
- load_puzzle replaces the session's grid from a snapshot file
- Snapshots record only the grid, not the move history

SOLVED CONDITION:
- All tiles in row-major ascending order, blank in the bottom-right corner
- The state reports solved=true and the preset's solved message

CONFIGURATION OPTIONS:
- Presets control grid dimensions and default shuffle length
- pocket (2x2): Trivial warm-up grid
- classic (3x3): The standard 8-puzzle
- fifteen (4x4): The classic 15-puzzle
- wide (3x5): Rectangular variant

SESSION MANAGEMENT:
- Multiple puzzle sessions can run simultaneously
- Each session has unique 4-character ID
- Sessions maintain independent state and configuration
- Use session-specific tools for multi-puzzle management

Remember: the token names the tile's source side, the blank moves the
opposite way. Verify with a test move before committing to a plan!

Good luck solving! 🧩`

	return mcp.NewToolResultText(instructions), nil
}

func (c *Client) handleDescribeTile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	row := int(args["row"].(float64))
	col := int(args["col"].(float64))

	// Get the current puzzle state to access the grid
	var state engine.PuzzleState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// Check bounds
	if row < 0 || row >= state.Rows || col < 0 || col >= state.Cols {
		return mcp.NewToolResultError(fmt.Sprintf("Position (%d, %d) is out of bounds. Grid is %dx%d (rows 0-%d, cols 0-%d)",
			row, col, state.Rows, state.Cols, state.Rows-1, state.Cols-1)), nil
	}

	cell := state.Grid[row][col]

	// Solved-position label for this cell: row-major numbering, blank last
	solvedLabel := engine.Blank
	if row != state.Rows-1 || col != state.Cols-1 {
		solvedLabel = engine.Cell(fmt.Sprintf("%d", row*state.Cols+col+1))
	}

	var description string
	if cell.IsBlank() {
		description = "The blank cell - tiles slide into this position"
	} else {
		description = fmt.Sprintf("Tile %s", cell)
	}

	inPlace := cell == solvedLabel
	placement := "misplaced"
	if inPlace {
		placement = "in its solved position"
	}

	result := fmt.Sprintf(`Cell at position (%d, %d):
━━━━━━━━━━━━━━━━━━━━━━━━
Label: %s
Blank: %v
Placement: %s
Solved-position label: %s
Description: %s

%s`,
		row, col,
		cell,
		cell.IsBlank(),
		placement,
		solvedLabel,
		description,
		getPlacementReminder(cell, inPlace))

	return mcp.NewToolResultText(result), nil
}

func getPlacementReminder(cell engine.Cell, inPlace bool) string {
	if cell.IsBlank() {
		return "🔲 Remember: move tokens name the side the sliding tile comes FROM relative to this blank - the blank itself moves the opposite way."
	}
	if inPlace {
		return "✅ This tile is already home - route the blank around it to avoid undoing progress."
	}
	return "🎯 This tile still needs to be moved. Bring the blank adjacent to it on the side you want it to slide from."
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nPreset: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigName,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatPuzzleState(session.PuzzleState))
}

func formatPuzzleState(state *engine.PuzzleState) string {
	if state == nil {
		return "No puzzle state available"
	}

	var result strings.Builder

	// Header (include cumulative total moves)
	blank := "?"
	if pos, err := state.Grid.BlankPosition(); err == nil {
		blank = fmt.Sprintf("(%d,%d)", pos.Row, pos.Col)
	}
	result.WriteString(fmt.Sprintf("Grid: %dx%d | Blank: %s | Moves: %d\n\n",
		state.Rows, state.Cols, blank, state.TotalMoves))

	result.WriteString(engine.RenderGrid(state.Grid))

	// Possible moves from the final state
	if pm := computePossibleMoves(state); len(pm) > 0 {
		result.WriteString("\nPossible moves: ")
		result.WriteString(strings.Join(pm, ","))
		result.WriteString("\n")
	}

	// Status
	if state.Solved {
		result.WriteString("\n🎉 SOLVED!")
	}

	if state.Message != "" {
		result.WriteString(fmt.Sprintf("\nMessage: %s", state.Message))
	}

	return result.String()
}

func formatMoveResult(result *service.MoveResult) string {
	response := ""
	if result.Success {
		response = "✓ Move applied\n"
	} else {
		response = "✗ Move ignored\n"
	}

	response += fmt.Sprintf("Token: %s | Blank now at (%d,%d)\n",
		result.Token, result.Blank.Row, result.Blank.Col)

	if len(result.PossibleMoves) > 0 {
		response += fmt.Sprintf("Possible moves: %s\n", strings.Join(result.PossibleMoves, ","))
	}

	response += "\n" + formatPuzzleState(result.PuzzleState)
	return response
}

func formatSequenceResult(sessionID string, result *service.SequenceResult) string {
	var b strings.Builder

	// Session header
	rows, cols := 0, 0
	configName := ""
	if result.PuzzleState != nil {
		rows, cols = result.PuzzleState.Rows, result.PuzzleState.Cols
		configName = result.PuzzleState.ConfigName
	}
	b.WriteString(fmt.Sprintf("Session: %s • Preset: %s • Grid: %dx%d\n",
		sessionID, configName, rows, cols))

	// Sequence summary
	kind := "Sequence"
	if result.Random {
		kind = "Shuffle"
	}
	b.WriteString(fmt.Sprintf("%s: applied %d/%d moves (%d ignored)\n",
		kind, result.Applied, result.Requested, result.Ignored))

	if len(result.PossibleMoves) > 0 {
		b.WriteString("Possible moves: ")
		b.WriteString(strings.Join(result.PossibleMoves, ","))
		b.WriteString("\n")
	}

	// Full state at the end
	b.WriteString("\n")
	b.WriteString(formatPuzzleState(result.PuzzleState))
	return b.String()
}

// computePossibleMoves returns tokens that would currently apply
func computePossibleMoves(state *engine.PuzzleState) []string {
	if state == nil || state.Grid == nil {
		return []string{}
	}
	var res []string
	for _, d := range []engine.Direction{engine.Up, engine.Down, engine.Left, engine.Right} {
		if state.Grid.CanApply(d) {
			res = append(res, string(d))
		}
	}
	return res
}

func formatHistory(history *service.HistoryResponse) string {
	result := fmt.Sprintf("Move History (Page %d/%d) — Total: %d\n\n",
		history.Page, history.TotalPages, history.TotalMoves)

	for i, move := range history.Moves {
		num := (history.Page-1)*history.PageSize + i + 1
		status := "✓"
		if !move.Success {
			status = "✗"
		}
		result += fmt.Sprintf("%d. %s %s [blank (%d,%d)→(%d,%d)]\n",
			num, move.Action, status,
			move.BlankFrom.Row, move.BlankFrom.Col,
			move.BlankTo.Row, move.BlankTo.Col)
	}

	return result
}
