package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/wricardo/sinking-island/game/engine"
	"github.com/wricardo/sinking-island/game/service"
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
		baseURL: strings.TrimSuffix(baseURL, "/"),
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
		"Sinking Island",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Sinking Island - MCP Interface

This is a thin client that proxies all requests to the REST API server.

Each turn has three phases: movement (up to 3 actions), sinking (flip one
island tile) and spinning (spin the wheel, then move what it picked).

AVAILABLE TOOLS:
- create_session / list_sessions: manage games
- game_state: the whole board, the sinking ledger and whose turn it is
- pawn_targets: hexes a pawn can reach right now
- describe_hex: one hex, its occupants and the nearest coral
- move_pawn, move_actor, move_transport: move things on the board
- flip_tile, spin_wheel, skip: advance the turn
- list_configs: available islands
- game_instructions: the full rules

Coordinates are cube coordinates x, y, z with x + y + z = 0.`),
	)

	c.registerTools()
}

func sessionProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Session ID",
	}
}

func integerProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": description,
	}
}

// coordinateTool describes a tool that takes a session, optionally an
// entity id, and a target hex
func coordinateTool(name, description, idName, idDescription string) mcp.Tool {
	properties := map[string]interface{}{
		"session_id": sessionProperty(),
		"x":          integerProperty("Target cube x"),
		"y":          integerProperty("Target cube y"),
		"z":          integerProperty("Target cube z"),
	}
	required := []string{"session_id", "x", "y", "z"}
	if idName != "" {
		properties[idName] = integerProperty(idDescription)
		required = append(required, idName)
	}
	return mcp.Tool{
		Name:        name,
		Description: description,
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: properties,
			Required:   required,
		},
	}
}

// sessionTool describes a tool whose only argument is the session
func sessionTool(name, description string) mcp.Tool {
	return mcp.Tool{
		Name:        name,
		Description: description,
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProperty(),
			},
			Required: []string{"session_id"},
		},
	}
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session with optional config and player count",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "ID of the config to use (optional, see list_configs)",
				},
				"players": integerProperty("Number of players, 2 to 6 (optional, defaults to the config)"),
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	// Reading the board
	c.mcpServer.AddTool(sessionTool("game_state", "Get the board, the sinking ledger and the turn state"), c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "pawn_targets",
		Description: "List the hexes a pawn of the current player can move to now",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProperty(),
				"pawn_id":    integerProperty("Pawn ID"),
			},
			Required: []string{"session_id", "pawn_id"},
		},
	}, c.handlePawnTargets)

	c.mcpServer.AddTool(coordinateTool("describe_hex",
		"Describe one hex: its piece, pawns, sea creatures, transports and the nearest coral",
		"", ""), c.handleDescribeHex)

	// Game operations
	c.mcpServer.AddTool(coordinateTool("move_pawn",
		"Move one of the current player's pawns during the movement phase",
		"pawn_id", "Pawn ID"), c.handleMovePawn)

	c.mcpServer.AddTool(coordinateTool("move_actor",
		"Move the sea creature picked by the wheel during the spinning phase",
		"actor_id", "Actor ID"), c.handleMoveActor)

	c.mcpServer.AddTool(coordinateTool("move_transport",
		"Move a boat or dolphin: with your pawns aboard during movement, or as picked by the wheel",
		"transport_id", "Transport ID"), c.handleMoveTransport)

	c.mcpServer.AddTool(coordinateTool("flip_tile",
		"Sink an island tile during the sinking phase",
		"", ""), c.handleFlipTile)

	c.mcpServer.AddTool(sessionTool("spin_wheel", "Spin the wheel during the spinning phase"), c.handleSpinWheel)

	c.mcpServer.AddTool(sessionTool("skip", "Skip the rest of the movement phase, or the spinning phase"), c.handleSkip)

	// Configuration
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available island configurations",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get the complete rules of the game",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
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

// Argument helpers

func arguments(request mcp.CallToolRequest) map[string]interface{} {
	args, _ := request.Params.Arguments.(map[string]interface{})
	if args == nil {
		return map[string]interface{}{}
	}
	return args
}

// intArg reads an integer argument. JSON numbers arrive as float64.
func intArg(args map[string]interface{}, key string) (int, bool) {
	switch v := args[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case json.Number:
		n, err := v.Int64()
		return int(n), err == nil
	}
	return 0, false
}

func requireInts(args map[string]interface{}, keys ...string) ([]int, error) {
	values := make([]int, 0, len(keys))
	for _, key := range keys {
		v, ok := intArg(args, key)
		if !ok {
			return nil, fmt.Errorf("%s is required and must be an integer", key)
		}
		values = append(values, v)
	}
	return values, nil
}

func sessionPath(args map[string]interface{}, suffix string) (string, error) {
	sessionID, _ := args["session_id"].(string)
	if sessionID == "" {
		return "", fmt.Errorf("session_id is required")
	}
	return "/api/sessions/" + url.PathEscape(sessionID) + suffix, nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)

	body := map[string]interface{}{}
	if configID, _ := args["config_id"].(string); configID != "" {
		body["config_id"] = configID
	}
	if players, ok := intArg(args, "players"); ok {
		body["players"] = players
	}

	var session service.SessionInfo
	if err := c.apiCall(ctx, "POST", "/api/sessions", body, &session); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatSessionInfo(&session)), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	if err := c.apiCall(ctx, "GET", "/api/sessions", nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		fmt.Fprintf(&b, "- %s (Config: %s, Players: %d, Phase: %s, Created: %s)\n",
			s.ID, s.ConfigName, s.Players, s.GameState.Phase, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := sessionPath(arguments(request), "/state")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var snapshot engine.GameSnapshot
	if err := c.apiCall(ctx, "GET", path, nil, &snapshot); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatSnapshot(&snapshot)), nil
}

func (c *Client) handlePawnTargets(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	ids, err := requireInts(args, "pawn_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	path, err := sessionPath(args, fmt.Sprintf("/pawns/%d/targets", ids[0]))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var response struct {
		PawnID  int                     `json:"pawn_id"`
		Targets []engine.CubeCoordinate `json:"targets"`
	}
	if err := c.apiCall(ctx, "GET", path, nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if len(response.Targets) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("Pawn %d cannot move right now.", response.PawnID)), nil
	}
	targets := make([]string, 0, len(response.Targets))
	for _, t := range response.Targets {
		targets = append(targets, t.String())
	}
	return mcp.NewToolResultText(fmt.Sprintf("Pawn %d can reach %d hexes: %s",
		response.PawnID, len(targets), strings.Join(targets, " "))), nil
}

func (c *Client) handleDescribeHex(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	xyz, err := requireInts(args, "x", "y", "z")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	path, err := sessionPath(args, fmt.Sprintf("/hexes/%d/%d/%d", xyz[0], xyz[1], xyz[2]))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var desc service.HexDescription
	if err := c.apiCall(ctx, "GET", path, nil, &desc); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatHexDescription(&desc)), nil
}

// moveEntity posts a coordinate action. idKey names the entity argument and
// kind its route segment; both are empty for flip_tile.
func (c *Client) moveEntity(ctx context.Context, request mcp.CallToolRequest, idKey, kind, field string) (*mcp.CallToolResult, error) {
	args := arguments(request)
	xyz, err := requireInts(args, "x", "y", "z")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	suffix := "/flip"
	if idKey != "" {
		ids, err := requireInts(args, idKey)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		suffix = fmt.Sprintf("/%s/%d/move", kind, ids[0])
	}
	path, err := sessionPath(args, suffix)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	body := map[string]interface{}{field: engine.NewCubeCoordinate(xyz[0], xyz[1], xyz[2])}
	return c.postAction(ctx, path, body)
}

func (c *Client) postAction(ctx context.Context, path string, body interface{}) (*mcp.CallToolResult, error) {
	var result service.ActionResult
	if err := c.apiCall(ctx, "POST", path, body, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatActionResult(&result)), nil
}

func (c *Client) handleMovePawn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return c.moveEntity(ctx, request, "pawn_id", "pawns", "to")
}

func (c *Client) handleMoveActor(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return c.moveEntity(ctx, request, "actor_id", "actors", "to")
}

func (c *Client) handleMoveTransport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return c.moveEntity(ctx, request, "transport_id", "transports", "to")
}

func (c *Client) handleFlipTile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return c.moveEntity(ctx, request, "", "", "at")
}

func (c *Client) handleSpinWheel(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := sessionPath(arguments(request), "/spin")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return c.postAction(ctx, path, nil)
}

func (c *Client) handleSkip(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := sessionPath(arguments(request), "/skip")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return c.postAction(ctx, path, nil)
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	if err := c.apiCall(ctx, "GET", "/api/configs", nil, &configs); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	b.WriteString("Available Configurations:\n\n")
	for _, config := range configs {
		fmt.Fprintf(&b, "• %s (config_id: %s)\n  %s\n  Players: %d, Pawns each: %d, Rings: %d, Wheel: %s\n\n",
			config.Name, config.ConfigID, config.Description, config.Players, config.PawnsPerPlayer,
			config.Rings, strings.Join(config.SpinnerSections, ", "))
	}

	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(instructions), nil
}

const instructions = `Sinking Island - Complete Instructions

GAME OBJECTIVE:
The island is sinking. Bring one of your pawns onto a coral hex at the
edge of the sea to win. A player with no pawns left is out, and when only
one player still has pawns on the board that player wins.

THE BOARD:
• Hexes use cube coordinates (x, y, z) with x + y + z = 0
• The island is built in rings around (0,0,0): peak, mountain, forest and
  beach layers, then water, then coral
• Water hexes hold sea creatures and transports. Coral never sinks and
  describe_hex tells you how far away the nearest one is.

TURN STRUCTURE:
1. Movement: up to 3 actions. A pawn moves one hex per action over land,
   or rides a boat or dolphin with it. A transport moves when the majority
   of its riders belong to you.
2. Sinking: flip one island tile. Tiles sink outside in: every beach goes
   before any forest, every forest before any mountain. A flipped tile
   becomes water and may reveal a creature or transport.
3. Spinning: spin the wheel once. It picks a creature or transport type and
   how far it moves ("1", "2", "3", or "D" to dive under the island). Move
   one of that type by that distance, or skip. Either ends the turn.

SEA CREATURES:
• shark: eats pawns swimming on its hex, riders are safe
• kraken: smashes transports, sharks on the hex eat the passengers
• seamunster: smashes transports and eats every pawn on its hex
• vortex: swallows everything around it, then disappears

TRANSPORTS:
• boat: 3 seats, cannot dive
• dolphin: 1 seat, can dive

USEFUL TOOLS:
• pawn_targets lists where a pawn can go before you commit
• describe_hex tells you what is on a hex and how far the nearest coral is
• game_state shows the sinking ledger: which tile type must sink next

A rejected move does not change the board. The result explains why.`

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nConfig: %s\nPlayers: %d\n%s",
		session.ID, session.ConfigName, session.Players, formatGameState(session.GameState))
}

func formatGameState(state engine.GameState) string {
	if state.Won {
		if state.Winner == 0 {
			return "Game over: nobody survived\n"
		}
		return fmt.Sprintf("Game over: player %d wins\n", state.Winner)
	}
	return fmt.Sprintf("Turn: player %d, %s phase\n", state.CurrentPlayer, state.Phase)
}

func formatSnapshot(snapshot *engine.GameSnapshot) string {
	var b strings.Builder
	b.WriteString(formatGameState(snapshot.State))

	b.WriteString("\nPlayers:\n")
	for _, p := range snapshot.Players {
		fmt.Fprintf(&b, "  player %d: %d pawns, %d actions left\n", p.ID, p.PawnCount, p.ActionsLeft)
	}

	b.WriteString("\nSinking ledger (next to sink first):\n")
	for i := len(snapshot.IslandPieces) - 1; i >= 0; i-- {
		piece := snapshot.IslandPieces[i]
		fmt.Fprintf(&b, "  %s: %d\n", piece.Type, piece.Count)
	}

	b.WriteString("\nPawns:\n")
	for _, p := range snapshot.Pawns {
		fmt.Fprintf(&b, "  pawn %d (player %d) at %s\n", p.ID, p.PlayerID, p.Coordinates)
	}

	if len(snapshot.Actors) > 0 {
		b.WriteString("\nSea creatures:\n")
		for _, a := range snapshot.Actors {
			fmt.Fprintf(&b, "  %s %d at %s\n", a.Type, a.ID, a.Coordinates)
		}
	}

	if len(snapshot.Transports) > 0 {
		b.WriteString("\nTransports:\n")
		for _, t := range snapshot.Transports {
			fmt.Fprintf(&b, "  %s %d at %s, %d/%d seats taken\n", t.Type, t.ID, t.Coordinates, t.Capacity, t.MaxCapacity)
		}
	}

	if snapshot.LastSpin != nil {
		fmt.Fprintf(&b, "\nWheel: %s moves %s\n", snapshot.LastSpin.Section, snapshot.LastSpin.Moves)
	}
	return b.String()
}

func formatActionResult(result *service.ActionResult) string {
	var b strings.Builder
	if result.Success {
		b.WriteString("✓ ")
	} else {
		b.WriteString("✗ ")
	}
	b.WriteString(result.Message)
	b.WriteString("\n")

	if result.ActionsLeft != nil {
		fmt.Fprintf(&b, "Actions left: %d\n", *result.ActionsLeft)
	}
	if result.Spawned != "" {
		fmt.Fprintf(&b, "The tile revealed: %s\n", result.Spawned)
	}
	if result.Spin != nil {
		fmt.Fprintf(&b, "Wheel: %s moves %s\n", result.Spin.Section, result.Spin.Moves)
	}
	for _, e := range result.Events {
		b.WriteString(formatEvent(e))
	}
	b.WriteString(formatGameState(result.GameState))
	return b.String()
}

func formatEvent(e engine.Event) string {
	line := fmt.Sprintf("  #%d %s", e.Seq, e.Kind)
	if e.EntityID != 0 {
		line += fmt.Sprintf(" %d", e.EntityID)
	}
	if e.From != nil && e.To != nil {
		line += fmt.Sprintf(" %s -> %s", e.From, e.To)
	} else if e.To != nil {
		line += fmt.Sprintf(" at %s", e.To)
	}
	if e.Detail != "" {
		line += " (" + e.Detail + ")"
	}
	if e.Casualties != nil && !e.Casualties.Empty() {
		line += fmt.Sprintf(" lost: %d pawns, %d transports, %d creatures",
			len(e.Casualties.Pawns), len(e.Casualties.Transports), len(e.Casualties.Actors))
	}
	return line + "\n"
}

func formatHexDescription(desc *service.HexDescription) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hex %s: %s\n", desc.Hex.Coordinates, desc.Hex.PieceType)
	for _, p := range desc.Pawns {
		fmt.Fprintf(&b, "  pawn %d (player %d)\n", p.ID, p.PlayerID)
	}
	for _, a := range desc.Actors {
		fmt.Fprintf(&b, "  %s %d\n", a.Type, a.ID)
	}
	for _, t := range desc.Transports {
		fmt.Fprintf(&b, "  %s %d, %d/%d seats taken\n", t.Type, t.ID, t.Capacity, t.MaxCapacity)
	}
	if desc.NearestCoral != nil {
		fmt.Fprintf(&b, "Nearest coral: %s, %d hexes away\n", desc.NearestCoral, desc.CoralDistance)
	}
	return b.String()
}
