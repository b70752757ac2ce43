package pathfinding

import (
	"math"
	"math/big"
)

// Octile weights: cardinal = 10, diagonal = 14 (≈10√2).
const (
	cardinalCost uint64 = 10
	diagonalCost uint64 = 14

	linearScale        uint64 = 10
	aggressiveExponent        = 10
)

// direction is a neighbor offset.
type direction struct {
	dRow, dCol int
}

// neighborOffsets is the expansion order. It decides push order and
// therefore insertion-order tie-breaks.
var neighborOffsets = [8]direction{
	{-1, -1},
	{1, -1},
	{1, 1},
	{-1, 1},
	{0, 1},
	{1, 0},
	{0, -1},
	{-1, 0},
}

func (d direction) diagonal() bool {
	return d.dRow != 0 && d.dCol != 0
}

// movementCost returns the octile weight of a single step.
func movementCost(d direction) uint64 {
	if d.diagonal() {
		return diagonalCost
	}
	return cardinalCost
}

// costModel combines movement and heuristic cost for one search.
type costModel struct {
	dims          Dimensions
	end           Position
	aggressive    bool
	legacyPairing bool
}

// heuristic is the truncated straight-line distance from p to the end,
// taking the shorter way around each wrapped axis.
func (m costModel) heuristic(p Position) uint64 {
	rowLimit, colLimit := m.dims.Rows, m.dims.Cols
	if m.legacyPairing {
		rowLimit, colLimit = m.dims.Cols, m.dims.Rows
	}

	dx := wrapDelta(m.end.Row-p.Row, rowLimit)
	dy := wrapDelta(m.end.Col-p.Col, colLimit)
	return uint64(math.Sqrt(float64(dx*dx + dy*dy)))
}

// wrapDelta replaces delta with the distance around the wrap when that is shorter.
func wrapDelta(delta, size int) int {
	if delta < 0 {
		delta = -delta
	}
	if delta > size/2 {
		return size - delta
	}
	return delta
}

// stepCost is the nominal cost of moving in direction d onto neighbor.
func (m costModel) stepCost(d direction, neighbor Position) uint64 {
	return movementCost(d) + m.heuristic(neighbor)
}

// advance adds a step to a running distance under the configured growth mode.
// The result saturates at Infinity.
func (m costModel) advance(current Cost, step uint64) Cost {
	if m.aggressive {
		return current.add(powCost(step, aggressiveExponent))
	}
	return current.add(NewCost(step).mul(linearScale))
}

// maxStepCost bounds stepCost on dims. A wrapped delta never exceeds the
// larger side, under either pairing.
func maxStepCost(dims Dimensions) uint64 {
	side := float64(max(dims.Rows, dims.Cols))
	return diagonalCost + uint64(math.Sqrt(2*side*side)) + 1
}

// costFits reports whether every distance a search on dims can produce fits
// in a Cost. A finalized distance spans at most Rows*Cols steps.
func costFits(dims Dimensions, aggressive bool) bool {
	step := new(big.Int).SetUint64(maxStepCost(dims))
	if aggressive {
		step.Exp(step, big.NewInt(aggressiveExponent), nil)
	} else {
		step.Mul(step, new(big.Int).SetUint64(linearScale))
	}
	bound := step.Mul(step, big.NewInt(int64(dims.Rows)*int64(dims.Cols)))
	return bound.Cmp(Infinity.Big()) < 0
}
