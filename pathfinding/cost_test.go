package pathfinding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMovementCost(t *testing.T) {
	for _, offset := range neighborOffsets {
		want := cardinalCost
		if offset.dRow != 0 && offset.dCol != 0 {
			want = diagonalCost
		}
		assert.Equal(t, want, movementCost(offset), "offset %+v", offset)
	}
}

func TestHeuristic(t *testing.T) {
	tests := []struct {
		name   string
		model  costModel
		from   Position
		expect uint64
	}{
		{
			name:   "at the end",
			model:  costModel{dims: Dimensions{Rows: 5, Cols: 5}, end: Position{2, 2}},
			from:   Position{2, 2},
			expect: 0,
		},
		{
			name:   "straight line",
			model:  costModel{dims: Dimensions{Rows: 9, Cols: 9}, end: Position{0, 0}},
			from:   Position{0, 3},
			expect: 3,
		},
		{
			name:   "truncated diagonal",
			model:  costModel{dims: Dimensions{Rows: 9, Cols: 9}, end: Position{0, 0}},
			from:   Position{2, 2},
			expect: 2, // sqrt(8)
		},
		{
			name:   "wraps the shorter way",
			model:  costModel{dims: Dimensions{Rows: 10, Cols: 10}, end: Position{0, 0}},
			from:   Position{9, 8},
			expect: 2, // (1, 2) around both edges
		},
		{
			name:   "corrected pairing on wide grid",
			model:  costModel{dims: Dimensions{Rows: 3, Cols: 10}, end: Position{2, 9}},
			from:   Position{0, 1},
			expect: 2, // row delta 2 -> 1, col delta 8 -> 2
		},
		{
			name:   "legacy pairing on wide grid",
			model:  costModel{dims: Dimensions{Rows: 3, Cols: 10}, end: Position{2, 9}, legacyPairing: true},
			from:   Position{0, 1},
			expect: 5, // row delta 2 kept, col delta 8 -> 3 - 8 = -5
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.model.heuristic(tt.from))
		})
	}
}

func TestAdvance(t *testing.T) {
	normal := costModel{}
	aggressive := costModel{aggressive: true}

	assert.Equal(t, NewCost(110), normal.advance(Cost{}, 11))
	assert.Equal(t, NewCost(250), normal.advance(NewCost(110), 14))
	assert.Equal(t, NewCost(1e10), aggressive.advance(Cost{}, 10))
	assert.Equal(t, NewCost(25937424601), aggressive.advance(Cost{}, 11))

	t.Run("carries past 64 bits", func(t *testing.T) {
		// 100^10 = 1e20 = 5 * 2^64 + 15532559262904483840
		got := aggressive.advance(Cost{}, 100)
		assert.Equal(t, Cost{Hi: 5, Lo: 7766279631452241920}, got)
		assert.Equal(t, "100000000000000000000", got.String())
		assert.True(t, NewCost(^uint64(0)).Less(got))
	})

	t.Run("saturates at Infinity", func(t *testing.T) {
		assert.Equal(t, Infinity, normal.advance(Cost{Hi: ^uint64(0), Lo: ^uint64(0) - 5}, 10))
		assert.Equal(t, Infinity, Infinity.mul(2))
		assert.Equal(t, Infinity, powCost(1<<20, 10))
		assert.Equal(t, NewCost(1024), powCost(2, 10))
	})
}

func TestCostFits(t *testing.T) {
	tests := []struct {
		name       string
		dims       Dimensions
		aggressive bool
		fits       bool
	}{
		{"small aggressive", Dimensions{Rows: 3, Cols: 3}, true, true},
		{"largest service grid aggressive", Dimensions{Rows: 200, Cols: 200}, true, true},
		{"huge aggressive", Dimensions{Rows: 5000, Cols: 5000}, true, false},
		{"huge normal", Dimensions{Rows: 5000, Cols: 5000}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.fits, costFits(tt.dims, tt.aggressive))
		})
	}
}
