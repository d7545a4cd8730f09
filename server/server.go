// Package server exposes the engine to the browser UI: a JSON POST /find
// endpoint and a websocket /ws session where every text frame is a
// FindRequest answered by one FindResponse.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/katalvlaran/gridpath"
)

// ErrLimitExceeded indicates a request larger than the configured limits.
var ErrLimitExceeded = errors.New("server: request exceeds limits")

// Server answers path requests. It holds configuration only; every request
// runs an independent search.
type Server struct {
	cfg      Config
	logger   *log.Logger
	upgrader websocket.Upgrader
	strategy gridpath.Strategy
}

// New validates cfg and returns a Server logging to logger.
func New(cfg Config, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	strategy, err := gridpath.ParseStrategy(cfg.DefaultStrategy)
	if err != nil {
		return nil, fmt.Errorf("server: default strategy: %w", err)
	}
	if cfg.MaxCells <= 0 || cfg.MaxIterations <= 0 {
		return nil, fmt.Errorf("server: limits must be positive (cells=%d iterations=%d)", cfg.MaxCells, cfg.MaxIterations)
	}
	if cfg.PingPeriod > 0 && cfg.PongWait > 0 && cfg.PingPeriod >= cfg.PongWait {
		return nil, fmt.Errorf("server: ping period %v must be shorter than pong wait %v", cfg.PingPeriod, cfg.PongWait)
	}
	return &Server{
		cfg:      cfg,
		logger:   logger,
		strategy: strategy,
		upgrader: websocket.Upgrader{
			// the UI is served from a different origin during development
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}, nil
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/find", s.handleFind)
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "ok\n")
	})
	return mux
}

// Solve runs one request. Errors wrapping gridpath.ErrInvalidInput or
// ErrLimitExceeded are the caller's fault; anything else is internal.
func (s *Server) Solve(ctx context.Context, req FindRequest) (FindResponse, error) {
	resp := FindResponse{ID: req.ID, Moves: []int{}}

	if req.Width > 0 && req.Height > 0 && req.Width > s.cfg.MaxCells/req.Height {
		return resp, fmt.Errorf("%w: %dx%d grid over %d cells", ErrLimitExceeded, req.Width, req.Height, s.cfg.MaxCells)
	}
	if req.MaxIterations > s.cfg.MaxIterations {
		return resp, fmt.Errorf("%w: max_iterations %d over %d", ErrLimitExceeded, req.MaxIterations, s.cfg.MaxIterations)
	}

	strategy := s.strategy
	if req.Strategy != "" {
		var err error
		if strategy, err = gridpath.ParseStrategy(req.Strategy); err != nil {
			return resp, err
		}
	}
	opts := []gridpath.Option{gridpath.WithStrategy(strategy)}
	if req.Seed != nil {
		opts = append(opts, gridpath.WithSeed(*req.Seed))
	}
	var visited []PointMsg
	if req.Trace {
		opts = append(opts, gridpath.WithOnVisit(func(p gridpath.Point, _ int) {
			visited = append(visited, pointMsg(p))
		}))
	}

	params := req.Params()
	res, err := gridpath.Search(ctx, params, opts...)
	if err != nil {
		return resp, err
	}

	resp.Moves = moveCodes(res.Moves)
	resp.Status = res.Status.String()
	resp.Strategy = res.Strategy.String()
	resp.Expanded = res.Expanded
	resp.Visited = visited
	// the planner only runs, and only consumes a seed, past the early exits
	ran := res.Status == gridpath.StatusFound || res.Status == gridpath.StatusExhausted
	if strategy == gridpath.StrategyGenetic && ran {
		seed := res.Seed
		resp.Seed = &seed
	}
	if res.Status == gridpath.StatusUnreachable {
		resp.Breach = s.breach(params)
	}
	return resp, nil
}

// breach lists the fewest walls whose removal would connect the endpoints.
func (s *Server) breach(p gridpath.Params) []PointMsg {
	g, err := gridpath.Validate(p, gridpath.DefaultOptions())
	if err != nil {
		return nil
	}
	walls, _, err := g.Breach(p.Start, p.End)
	if err != nil {
		return nil
	}
	out := make([]PointMsg, len(walls))
	for i, w := range walls {
		out[i] = pointMsg(w)
	}
	return out
}

func (s *Server) handleFind(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeJSON(w, http.StatusMethodNotAllowed, FindResponse{Moves: []int{}, Error: "use POST"})
		return
	}
	var req FindRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.cfg.ReadLimit))
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, FindResponse{Moves: []int{}, Error: "decode request: " + err.Error()})
		return
	}

	resp, err := s.Solve(r.Context(), req)
	if err != nil {
		code := statusFor(err)
		if code == http.StatusInternalServerError {
			s.logger.Printf("find %q: %v", req.ID, err)
		}
		resp.Error = err.Error()
		writeJSON(w, code, resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("upgrade %s: %v", r.RemoteAddr, err)
		return
	}
	ws.SetReadLimit(s.cfg.ReadLimit)
	s.logger.Printf("session open %s", ws.RemoteAddr())

	conn := NewConnection(ws, s.cfg, s.logger)
	go conn.WritePump()
	conn.ReadPump(&session{srv: s, ctx: r.Context()})

	s.logger.Printf("session closed %s", ws.RemoteAddr())
}

// session handles the frames of one websocket connection.
type session struct {
	srv *Server
	ctx context.Context
}

// HandleMessage decodes a FindRequest, solves it and queues the response.
func (h *session) HandleMessage(conn *Connection, message []byte) {
	var req FindRequest
	if err := json.Unmarshal(message, &req); err != nil {
		_ = conn.SendMessage(FindResponse{Moves: []int{}, Error: "decode request: " + err.Error()})
		return
	}
	resp, err := h.srv.Solve(h.ctx, req)
	if err != nil {
		if statusFor(err) == http.StatusInternalServerError {
			h.srv.logger.Printf("ws find %q: %v", req.ID, err)
		}
		resp.Error = err.Error()
	}
	if err := conn.SendMessage(resp); err != nil {
		h.srv.logger.Printf("ws encode %q: %v", req.ID, err)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, gridpath.ErrInvalidInput), errors.Is(err, ErrLimitExceeded):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
