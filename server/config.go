package server

import "time"

// Config bounds what a single request may ask of the engine.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string
	// MaxCells rejects grids with more than Width×Height cells.
	MaxCells int
	// MaxIterations rejects requests with a larger iteration budget.
	MaxIterations int
	// DefaultStrategy applies when a request names none.
	DefaultStrategy string
	// ReadLimit caps a websocket frame or HTTP body in bytes.
	ReadLimit int64
	// WriteTimeout bounds each websocket write.
	WriteTimeout time.Duration
	// SendBuffer is the per-connection outgoing queue length.
	SendBuffer int
	// PongWait closes a websocket session that sends nothing, not even a
	// pong, for this long. Zero disables the read deadline.
	PongWait time.Duration
	// PingPeriod is the interval between keepalive pings; it must be
	// shorter than PongWait. Zero disables pings.
	PingPeriod time.Duration
}

// DefaultConfig returns limits that comfortably fit the browser UI's grids.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		MaxCells:        1 << 20,
		MaxIterations:   1 << 20,
		DefaultStrategy: "bfs",
		ReadLimit:       8 << 20,
		WriteTimeout:    10 * time.Second,
		SendBuffer:      16,
		PongWait:        60 * time.Second,
		PingPeriod:      54 * time.Second,
	}
}
