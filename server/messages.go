package server

import (
	"github.com/katalvlaran/gridpath"
)

// PointMsg is a cell coordinate on the wire.
type PointMsg struct {
	X int `json:"x" jsonschema:"required,minimum=0"`
	Y int `json:"y" jsonschema:"required,minimum=0"`
}

func (p PointMsg) point() gridpath.Point { return gridpath.Point{X: p.X, Y: p.Y} }

func pointMsg(p gridpath.Point) PointMsg { return PointMsg{X: p.X, Y: p.Y} }

// FindRequest is one "Find" action: the grid, both endpoints and the tuning
// parameters. WallsX[i] pairs with WallsY[i].
type FindRequest struct {
	ID            string   `json:"id,omitempty" jsonschema:"description=Echoed back in the response"`
	Start         PointMsg `json:"start" jsonschema:"required"`
	End           PointMsg `json:"end" jsonschema:"required"`
	Width         int      `json:"width" jsonschema:"required,minimum=1"`
	Height        int      `json:"height" jsonschema:"required,minimum=1"`
	BranchFactor  int      `json:"branch_factor" jsonschema:"required,minimum=1"`
	MaxIterations int      `json:"max_iterations" jsonschema:"required,minimum=1"`
	StepParam     float64  `json:"step_param" jsonschema:"minimum=0,maximum=1"`
	WallsX        []int    `json:"walls_x"`
	WallsY        []int    `json:"walls_y"`
	Strategy      string   `json:"strategy,omitempty" jsonschema:"enum=bfs,enum=astar,enum=genetic"`
	Seed          *int64   `json:"seed,omitempty"`
	Trace         bool     `json:"trace,omitempty" jsonschema:"description=Return the cells expanded by bfs"`
}

// Params converts the request into engine parameters.
func (r FindRequest) Params() gridpath.Params {
	return gridpath.Params{
		Start:         r.Start.point(),
		End:           r.End.point(),
		Width:         r.Width,
		Height:        r.Height,
		BranchFactor:  r.BranchFactor,
		MaxIterations: r.MaxIterations,
		StepParam:     r.StepParam,
		ObstacleXs:    r.WallsX,
		ObstacleYs:    r.WallsY,
	}
}

// FindResponse carries the move codes (0=W, 1=N, 2=E, 3=S) or an error.
// Moves is an int array so it never encodes as base64.
type FindResponse struct {
	ID       string     `json:"id,omitempty"`
	Moves    []int      `json:"moves"`
	Status   string     `json:"status,omitempty" jsonschema:"enum=found,enum=same_cell,enum=unreachable,enum=exhausted,enum=blocked_endpoint"`
	Strategy string     `json:"strategy,omitempty"`
	Expanded int        `json:"expanded"`
	Seed     *int64     `json:"seed,omitempty"`
	Breach   []PointMsg `json:"breach,omitempty" jsonschema:"description=Fewest walls to remove when unreachable"`
	Visited  []PointMsg `json:"visited,omitempty"`
	Error    string     `json:"error,omitempty"`
}

func moveCodes(moves []gridpath.Move) []int {
	out := make([]int, len(moves))
	for i, m := range moves {
		out[i] = int(m)
	}
	return out
}
