/*
Package pathfinding computes the order in which cells of a toroidal grid are
finalized while searching from a start tile toward an end tile.

The search is a weighted A* variant over an 8-connected grid whose edges wrap
around to the opposite side. Each step costs an octile movement weight plus a
wraparound-aware straight-line estimate to the end, and the accumulated cost
grows either linearly (normal mode) or as the tenth power of the step
(aggressive mode).

The package exposes two entry points:

  - Engine.Search runs a search to completion and returns a Result.
  - Engine.NewStepper advances the same search one finalization at a time,
    for visualizers that replay the order incrementally.

An Engine is bound to fixed grid Dimensions and is safe for concurrent use;
every search allocates its own node grid and frontier.
*/
package pathfinding
