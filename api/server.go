package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/wricardo/sinking-island/game/config"
	"github.com/wricardo/sinking-island/game/engine"
	"github.com/wricardo/sinking-island/game/service"
	"github.com/wricardo/sinking-island/transport/websocket"
)

// Server represents the REST API server
type Server struct {
	service service.GameService
	hub     *websocket.Hub
	router  *mux.Router
}

// NewServer creates a new API server. hub may be nil, in which case no
// snapshots are pushed.
func NewServer(gameService service.GameService, hub *websocket.Hub) *Server {
	s := &Server{
		service: gameService,
		hub:     hub,
		router:  mux.NewRouter(),
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()

	// Session management
	api.HandleFunc("/sessions", s.handleCreateSession).Methods("POST")
	api.HandleFunc("/sessions", s.handleListSessions).Methods("GET")
	api.HandleFunc("/sessions/{id}", s.handleGetSession).Methods("GET")
	api.HandleFunc("/sessions/{id}", s.handleDeleteSession).Methods("DELETE")

	// Game state
	api.HandleFunc("/sessions/{id}/state", s.handleGetGameState).Methods("GET")
	api.HandleFunc("/sessions/{id}/history", s.handleGetHistory).Methods("GET")
	api.HandleFunc("/sessions/{id}/pawns/{pawn:[0-9]+}/targets", s.handlePawnTargets).Methods("GET")
	api.HandleFunc("/sessions/{id}/hexes/{x:-?[0-9]+}/{y:-?[0-9]+}/{z:-?[0-9]+}", s.handleDescribeHex).Methods("GET")

	// Game operations
	api.HandleFunc("/sessions/{id}/pawns/{pawn:[0-9]+}/move", s.handleMovePawn).Methods("POST")
	api.HandleFunc("/sessions/{id}/actors/{actor:[0-9]+}/move", s.handleMoveActor).Methods("POST")
	api.HandleFunc("/sessions/{id}/transports/{transport:[0-9]+}/move", s.handleMoveTransport).Methods("POST")
	api.HandleFunc("/sessions/{id}/flip", s.handleFlipTile).Methods("POST")
	api.HandleFunc("/sessions/{id}/spin", s.handleSpinWheel).Methods("POST")
	api.HandleFunc("/sessions/{id}/skip", s.handleSkip).Methods("POST")

	// Configuration
	api.HandleFunc("/configs", s.handleListConfigs).Methods("GET")
	api.HandleFunc("/configs", s.handleCreateConfig).Methods("POST")
	api.HandleFunc("/configs/{name}", s.handleGetConfig).Methods("GET")

	// WebSocket
	s.router.HandleFunc("/ws", s.handleWebSocket)

	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps a service error to a status code
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound), errors.Is(err, config.ErrConfigNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, config.ErrInvalidConfig), errors.Is(err, engine.ErrFormat), errors.Is(err, engine.ErrGame):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}

// pathInt reads a numeric route variable; the route pattern guarantees digits
func pathInt(r *http.Request, name string) int {
	n, _ := strconv.Atoi(mux.Vars(r)[name])
	return n
}

// coordinateRequest is the body of every action aimed at a hex
type coordinateRequest struct {
	To *engine.CubeCoordinate `json:"to,omitempty"`
	At *engine.CubeCoordinate `json:"at,omitempty"`
}

// decodeCoordinate reads the "to" (or "at") coordinate from the body
func decodeCoordinate(r *http.Request) (engine.CubeCoordinate, error) {
	var req coordinateRequest
	if r.Body == nil {
		return engine.CubeCoordinate{}, errors.New("request body required")
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return engine.CubeCoordinate{}, fmt.Errorf("invalid request body: %v", err)
	}
	switch {
	case req.To != nil:
		return *req.To, nil
	case req.At != nil:
		return *req.At, nil
	}
	return engine.CubeCoordinate{}, errors.New(`a target coordinate ("to") is required`)
}

// Session Handlers

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ConfigID   string `json:"config_id,omitempty"`
		ConfigName string `json:"config_name,omitempty"` // Deprecated, use config_id
		Players    int    `json:"players,omitempty"`
	}

	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}

	// Support both new and old parameter names, but prefer config_id
	configID := req.ConfigID
	if configID == "" && req.ConfigName != "" {
		configID = req.ConfigName
	}

	session, err := s.service.CreateSession(r.Context(), configID, req.Players)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	log.Printf("[SESSION] created %s config=%s players=%d", session.ID, session.ConfigName, session.Players)
	respondJSON(w, http.StatusCreated, session)
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.service.ListSessions(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Parse query parameters
	query := r.URL.Query()
	sortBy := query.Get("sort")    // "created", "accessed" (default)
	order := query.Get("order")    // "asc", "desc" (default: "desc")
	limitStr := query.Get("limit") // number of sessions to return

	if sortBy == "" {
		sortBy = "accessed"
	}
	if order == "" {
		order = "desc"
	}

	if configID := query.Get("config"); configID != "" {
		filtered := sessions[:0]
		for _, session := range sessions {
			if session.ConfigName == configID {
				filtered = append(filtered, session)
			}
		}
		sessions = filtered
	}
	total := len(sessions)

	sort.Slice(sessions, func(i, j int) bool {
		var ti, tj time.Time
		if sortBy == "created" {
			ti, tj = sessions[i].CreatedAt, sessions[j].CreatedAt
		} else {
			ti, tj = sessions[i].LastAccessedAt, sessions[j].LastAccessedAt
		}

		if order == "asc" {
			return ti.Before(tj)
		}
		return ti.After(tj)
	})

	limit := len(sessions)
	if limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l < len(sessions) {
			limit = l
		}
	}
	sessions = sessions[:limit]

	respondJSON(w, http.StatusOK, map[string]any{
		"count":    len(sessions),
		"total":    total,
		"sessions": sessions,
		"sort":     sortBy,
		"order":    order,
	})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session, err := s.service.GetSession(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, session)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	if err := s.service.DeleteSession(r.Context(), sessionID); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Session %s deleted", sessionID),
	})
}

// Game State Handlers

func (s *Server) handleGetGameState(w http.ResponseWriter, r *http.Request) {
	state, err := s.service.GetGameState(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, state)
}

func (s *Server) handlePawnTargets(w http.ResponseWriter, r *http.Request) {
	pawnID := pathInt(r, "pawn")
	targets, err := s.service.LegalPawnTargets(r.Context(), mux.Vars(r)["id"], pawnID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"pawn_id": pawnID,
		"targets": targets,
	})
}

func (s *Server) handleDescribeHex(w http.ResponseWriter, r *http.Request) {
	at := engine.NewCubeCoordinate(pathInt(r, "x"), pathInt(r, "y"), pathInt(r, "z"))
	desc, err := s.service.DescribeHex(r.Context(), mux.Vars(r)["id"], at)
	if err != nil {
		if errors.Is(err, engine.ErrGame) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, desc)
}

func (s *Server) handleGetHistory(w http.ResponseWriter, r *http.Request) {
	opts := service.HistoryOptions{
		Page:  1,
		Limit: 20,
		Order: "desc",
	}

	query := r.URL.Query()
	if pageStr := query.Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			opts.Page = p
		}
	}
	if limitStr := query.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			opts.Limit = l
		}
	}
	if order := query.Get("order"); order == "asc" || order == "desc" {
		opts.Order = order
	}

	history, err := s.service.GetHistory(r.Context(), mux.Vars(r)["id"], opts)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, history)
}

// Game Operation Handlers

// respondAction writes an action result, logs it and pushes the new board
// to the session's WebSocket clients when the action succeeded
func (s *Server) respondAction(w http.ResponseWriter, r *http.Request, action string, result *service.ActionResult, err error) {
	sessionID := mux.Vars(r)["id"]
	if err != nil {
		respondServiceError(w, err)
		return
	}

	status := "FAIL"
	if result.Success {
		status = "OK"
	}
	log.Printf("[ACTION] session=%s %s status=%s player=%d phase=%s msg=%q",
		sessionID, action, status, result.GameState.CurrentPlayer, result.GameState.Phase, result.Message)

	if result.Success && s.hub != nil {
		if snapshot, err := s.service.GetGameState(context.WithoutCancel(r.Context()), sessionID); err == nil {
			s.hub.BroadcastSnapshot(sessionID, snapshot)
		}
	}

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleMovePawn(w http.ResponseWriter, r *http.Request) {
	to, err := decodeCoordinate(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	result, err := s.service.MovePawn(r.Context(), mux.Vars(r)["id"], pathInt(r, "pawn"), to)
	s.respondAction(w, r, "move_pawn", result, err)
}

func (s *Server) handleMoveActor(w http.ResponseWriter, r *http.Request) {
	to, err := decodeCoordinate(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	result, err := s.service.MoveActor(r.Context(), mux.Vars(r)["id"], pathInt(r, "actor"), to)
	s.respondAction(w, r, "move_actor", result, err)
}

func (s *Server) handleMoveTransport(w http.ResponseWriter, r *http.Request) {
	to, err := decodeCoordinate(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	result, err := s.service.MoveTransport(r.Context(), mux.Vars(r)["id"], pathInt(r, "transport"), to)
	s.respondAction(w, r, "move_transport", result, err)
}

func (s *Server) handleFlipTile(w http.ResponseWriter, r *http.Request) {
	at, err := decodeCoordinate(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	result, err := s.service.FlipTile(r.Context(), mux.Vars(r)["id"], at)
	s.respondAction(w, r, "flip_tile", result, err)
}

func (s *Server) handleSpinWheel(w http.ResponseWriter, r *http.Request) {
	result, err := s.service.SpinWheel(r.Context(), mux.Vars(r)["id"])
	s.respondAction(w, r, "spin_wheel", result, err)
}

func (s *Server) handleSkip(w http.ResponseWriter, r *http.Request) {
	result, err := s.service.Skip(r.Context(), mux.Vars(r)["id"])
	s.respondAction(w, r, "skip", result, err)
}

// Configuration Handlers

func (s *Server) handleListConfigs(w http.ResponseWriter, r *http.Request) {
	configs, err := s.service.ListConfigs(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, configs)
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	configName := mux.Vars(r)["name"]

	cfg, err := s.service.LoadConfig(r.Context(), configName)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, cfg)
}

func (s *Server) handleCreateConfig(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ConfigID string `json:"config_id,omitempty"`
		engine.GameConfig
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "Config name is required")
		return
	}
	configID := req.ConfigID
	if configID == "" {
		configID = strings.ToLower(strings.ReplaceAll(req.Name, " ", "-"))
	}

	if err := s.service.SaveConfig(r.Context(), configID, &req.GameConfig); err != nil {
		respondServiceError(w, fmt.Errorf("failed to save config: %w", err))
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"message":   "Configuration saved successfully",
		"config_id": configID,
	})
}

// WebSocket Handler

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		http.Error(w, "session parameter required", http.StatusBadRequest)
		return
	}
	if s.hub == nil {
		http.Error(w, "live updates are disabled", http.StatusServiceUnavailable)
		return
	}

	// Verify session exists
	if _, err := s.service.GetSession(r.Context(), sessionID); err != nil {
		http.Error(w, "Invalid session", http.StatusNotFound)
		return
	}

	s.hub.ServeWS(w, r, sessionID)

	// Send the current board so the client does not wait for the next move
	if snapshot, err := s.service.GetGameState(context.WithoutCancel(r.Context()), sessionID); err == nil {
		s.hub.BroadcastSnapshot(sessionID, snapshot)
	}
}

// Health check
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
