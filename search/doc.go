// Package search implements six path searches over a grid.Grid for an
// agent.Agent: breadth-first (BFS), depth-first (DFS), iterative deepening
// (IDDFS), A* (AStar), greedy best-first (Greedy), and bidirectional A*
// (BiAStar).
//
// What
//
//   - Every algorithm has the same entry point:
//     func(a *agent.Agent, opts ...Option) (*Result, error).
//   - The grid is reset before searching and owned exclusively for the run
//     (grid.Grid.Acquire); a second concurrent search on the same grid
//     fails with grid.ErrGridBusy.
//   - Result carries a tagged Status, the concatenated Path of step tokens,
//     the reached Goals in order, and the visit Count (the start counts 1).
//   - If the start is a goal and all-mode is off, the result is that goal
//     with an empty path and a count of 1.
//   - In all-mode (WithAll) each reached goal becomes the root of the next
//     leg; the search stops with StatusPartial once the remaining goals are
//     unreachable.
//   - IDDFS honors a visit cap (WithLimit, DefaultLimit by default, 0 for
//     none) and reports StatusLimitExceeded when it is hit.
//
// Guarantees
//
//   - BFS: fewest steps (a jump is one step).
//   - AStar: least cost with jumping disabled.
//   - DFS, IDDFS, Greedy, BiAStar: valid paths, no optimality.
//
// Ordering
//
//	Neighbors are generated Up, Left, Down, Right. Informed searches break
//	f ties on lower h and then on insertion order, so results are fully
//	reproducible for a given map.
//
// Complexity (N = cells)
//
//   - BFS, DFS, AStar, Greedy, BiAStar: O(N log N) time, O(N) memory per leg
//     without jumping; jumping multiplies expansion by O(W+H).
//   - IDDFS: O(N²) visits in the worst case, bounded by the cap.
//
// Errors
//
//   - ErrNilAgent, ErrNoGoals, ErrOptionViolation: misuse.
//   - grid.ErrGridBusy: grid owned by another search.
//   - context errors from WithContext.
//   - Result.Err maps statuses onto ErrNoGoalReachable and
//     ErrSearchLimitExceeded for callers that prefer errors.
package search
