// Package gridnav is a toolkit for agent path search on rectangular grids
// with walls.
//
// A map is a height×width grid of cells, some covered by rectangular walls,
// with one start cell and one or more goal cells. An agent moves one cell
// Up, Left, Down or Right per step; with jumping enabled it may instead move
// d cells along a row or column, landing past walls, at a cost of 2^(d-1).
//
// The module is organized under these packages:
//
//	grid/     Direction, Location, Wall, Cell, Grid, neighbor generation
//	agent/    Agent, Step and Path tokens, path tracing and replay
//	queue/    indexed min-heap with decrease-key for open lists
//	search/   BFS, DFS, IDDFS, A*, greedy best-first, bidirectional A*
//	mapfile/  text and YAML map files
//	mapgen/   seeded random maps
//	render/   character map output with path overlay
//	bench/    timing and allocation reports, CSV export
//	config/   YAML/TOML settings with embedded defaults
//
// The gridnav command (cmd/gridnav) exposes all of it on the command line:
//
//	gridnav search RobotNav-test.txt astar -a
//	gridnav show RobotNav-test.txt --path bfs
//	gridnav analyze RobotNav-test.txt all --csv results.csv
//
// Quick start:
//
//	m, _ := mapfile.Load("maps/RobotNav-test.txt")
//	_, a, _ := m.Build(false)
//	res, _ := search.AStar(a, search.WithAll(true))
//	fmt.Println(res.Goals, res.Count, res.Path)
package gridnav
