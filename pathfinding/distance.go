package pathfinding

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"math/bits"
)

var ErrInvalidCost = errors.New("invalid cost")

// Cost is an unsigned 128-bit path cost. Aggressive steps are raised to the
// tenth power, which leaves uint64 behind on grids of a few hundred tiles.
type Cost struct {
	Hi, Lo uint64
}

// Infinity is the distance of a node no path has reached yet.
var Infinity = Cost{Hi: math.MaxUint64, Lo: math.MaxUint64}

// NewCost returns v as a Cost.
func NewCost(v uint64) Cost {
	return Cost{Lo: v}
}

// Less reports whether c is strictly smaller than o.
func (c Cost) Less(o Cost) bool {
	if c.Hi != o.Hi {
		return c.Hi < o.Hi
	}
	return c.Lo < o.Lo
}

// Uint64 returns c when it fits in 64 bits.
func (c Cost) Uint64() (uint64, bool) {
	return c.Lo, c.Hi == 0
}

// Big returns c as a big.Int.
func (c Cost) Big() *big.Int {
	n := new(big.Int).SetUint64(c.Hi)
	n.Lsh(n, 64)
	return n.Or(n, new(big.Int).SetUint64(c.Lo))
}

// String returns the decimal value of c.
func (c Cost) String() string {
	if c.Hi == 0 {
		return fmt.Sprintf("%d", c.Lo)
	}
	return c.Big().String()
}

// ParseCost parses a non-negative decimal of at most 128 bits.
func ParseCost(s string) (Cost, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok || n.Sign() < 0 || n.BitLen() > 128 {
		return Cost{}, fmt.Errorf("%w: %q", ErrInvalidCost, s)
	}
	lo := new(big.Int).And(n, new(big.Int).SetUint64(math.MaxUint64)).Uint64()
	hi := new(big.Int).Rsh(n, 64).Uint64()
	return Cost{Hi: hi, Lo: lo}, nil
}

// MarshalJSON writes c as a JSON number.
func (c Cost) MarshalJSON() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal.
func (c *Cost) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := ParseCost(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Cost) add(o Cost) Cost {
	lo, carry := bits.Add64(c.Lo, o.Lo, 0)
	hi, carry := bits.Add64(c.Hi, o.Hi, carry)
	if carry != 0 {
		return Infinity
	}
	return Cost{Hi: hi, Lo: lo}
}

func (c Cost) mul(v uint64) Cost {
	loHi, lo := bits.Mul64(c.Lo, v)
	hiHi, hiLo := bits.Mul64(c.Hi, v)
	if hiHi != 0 {
		return Infinity
	}
	hi, carry := bits.Add64(loHi, hiLo, 0)
	if carry != 0 {
		return Infinity
	}
	return Cost{Hi: hi, Lo: lo}
}

func powCost(base uint64, exponent int) Cost {
	result := NewCost(1)
	for i := 0; i < exponent; i++ {
		result = result.mul(base)
		if result == Infinity {
			return Infinity
		}
	}
	return result
}
