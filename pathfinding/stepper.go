package pathfinding

import "fmt"

// Stepper advances a search one finalization at a time.
// It is not safe for concurrent use.
type Stepper struct {
	search *search
}

// NewStepper resolves the grid snapshot and returns a Stepper positioned
// before the first pop.
func (e *Engine) NewStepper(tiles []Tile, currentTileID int, aggressive bool) (*Stepper, error) {
	if !costFits(e.dims, aggressive) {
		return nil, fmt.Errorf("%w: %dx%d (aggressive=%t)", ErrCostOverflow, e.dims.Rows, e.dims.Cols, aggressive)
	}

	grid, start, end, err := e.snapshot(tiles, currentTileID)
	if err != nil {
		return nil, err
	}

	model := costModel{
		dims:          e.dims,
		end:           end,
		aggressive:    aggressive,
		legacyPairing: e.opts.LegacyWrapPairing,
	}
	return &Stepper{search: newSearch(grid, start, end, model, e.opts.CheckedEvents)}, nil
}

// Step finalizes the next node and returns the events it produced.
// done is true once the end was popped or the frontier is exhausted; a
// terminating step returns no events.
func (s *Stepper) Step() (events []Event, done bool) {
	events = s.search.step()
	return events, s.search.done
}

// Done reports whether the search has terminated.
func (s *Stepper) Done() bool {
	return s.search.done
}

// Pending returns the number of frontier entries, stale ones included.
func (s *Stepper) Pending() int {
	return s.search.frontier.len()
}

// Result returns the events accumulated so far and the outcome. The
// outcome is only meaningful once Done reports true.
func (s *Stepper) Result() Result {
	result := s.search.result
	result.Events = make([]Event, len(s.search.result.Events))
	copy(result.Events, s.search.result.Events)
	return result
}
