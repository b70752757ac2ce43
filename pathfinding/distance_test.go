package pathfinding

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCostOrdering(t *testing.T) {
	assert.True(t, NewCost(9).Less(NewCost(10)))
	assert.True(t, NewCost(^uint64(0)).Less(Cost{Hi: 1}))
	assert.False(t, Cost{Hi: 1}.Less(Cost{Hi: 1}))
	assert.True(t, Cost{Hi: 7, Lo: 1}.Less(Infinity))
}

func TestParseCost(t *testing.T) {
	for _, c := range []Cost{{}, NewCost(110), {Hi: 5, Lo: 7766279631452241920}, Infinity} {
		parsed, err := ParseCost(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}

	for _, bad := range []string{"", "x", "-1", "340282366920938463463374607431768211456"} {
		_, err := ParseCost(bad)
		assert.ErrorIs(t, err, ErrInvalidCost, bad)
	}
}

func TestCostJSON(t *testing.T) {
	event := Event{TileID: 3, Type: Visited, Distance: Cost{Hi: 5, Lo: 7766279631452241920}}

	data, err := json.Marshal(event)
	require.NoError(t, err)
	assert.JSONEq(t, `{"tile_id":3,"event_type":"visited","distance":100000000000000000000}`, string(data))

	var decoded Event
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, event, decoded)

	var quoted Cost
	require.NoError(t, json.Unmarshal([]byte(`"42"`), &quoted))
	assert.Equal(t, NewCost(42), quoted)
}
