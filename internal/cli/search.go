package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridnav/agent"
	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/mapfile"
	"github.com/katalvlaran/gridnav/search"
)

// searchFlags holds the flags shared by search, show and analyze.
type searchFlags struct {
	all   bool
	jump  bool
	limit int
}

// register adds the flags to cmd.
func (f *searchFlags) register(cmd *cobra.Command, withLimit bool) {
	cmd.Flags().BoolVarP(&f.all, "all", "a", false, "search all goals")
	cmd.Flags().BoolVarP(&f.jump, "jump", "j", false, "allow the agent to jump over cells")
	if withLimit {
		cmd.Flags().IntVarP(&f.limit, "limit", "l", 0, "IDDFS visit cap, 0 for none (default from config)")
	}
}

// resolve fills unset flags from the configuration.
func (f *searchFlags) resolve(c *CLI, cmd *cobra.Command) {
	if !cmd.Flags().Changed("all") {
		f.all = c.Config.Search.All
	}
	if !cmd.Flags().Changed("jump") {
		f.jump = c.Config.Search.Jump
	}
	if !cmd.Flags().Changed("limit") {
		f.limit = c.Config.Search.Limit
	}
}

func (f *searchFlags) options(c *CLI, cmd *cobra.Command) []search.Option {
	return []search.Option{
		search.WithContext(cmd.Context()),
		search.WithAll(f.all),
		search.WithLimit(f.limit),
		search.WithLogger(c.Logger),
	}
}

// searchCommand creates the search command.
func (c *CLI) searchCommand() *cobra.Command {
	var flags searchFlags

	cmd := &cobra.Command{
		Use:   "search [file] [algorithm]",
		Short: "Search a map and print the goal, visit count and path",
		Long: `Search a map file with one algorithm.

Prints the file and algorithm, then either the reached goal (or goals with
--all) followed by the number of visited cells and the path, or
"No goal is reachable; <count>".`,
		Example: `  gridnav search RobotNav-test.txt dfs
  gridnav search maps/corridor.yaml iddfs -l 10000
  gridnav search no_goal.txt bfs -a -j`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.resolve(c, cmd)
			file, algName := c.Config.Maps.Default, c.Config.Search.Algorithm
			if len(args) > 0 {
				file = args[0]
			}
			if len(args) > 1 {
				algName = args[1]
			}

			name, err := search.Canonical(algName)
			if err != nil {
				return err
			}
			fn, _ := search.Lookup(name)
			_, a, err := c.loadAgent(file, flags.jump)
			if err != nil {
				return err
			}

			p := newProgress(c.Logger)
			res, err := fn(a, flags.options(c, cmd)...)
			if err != nil {
				return err
			}
			p.done("search finished", "algorithm", name, "status", res.Status)

			c.println(file, strings.ToLower(algName))
			c.printResult(res, flags.all)
			return nil
		},
	}
	flags.register(cmd, true)
	return cmd
}

// loadAgent resolves file against the map directory and builds it.
func (c *CLI) loadAgent(file string, jump bool) (*mapfile.Map, *agent.Agent, error) {
	path := mapfile.Resolve(c.Config.Maps.Dir, file)
	m, err := mapfile.Load(path)
	if err != nil {
		return nil, nil, err
	}
	_, a, err := m.Build(jump)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	c.Logger.Debug("map loaded", "path", path, "size", fmt.Sprintf("%dx%d", m.Height, m.Width),
		"goals", len(m.Goals), "walls", len(m.Walls), "jump", jump)
	return m, a, nil
}

// printResult prints the outcome lines of a search.
func (c *CLI) printResult(res *search.Result, all bool) {
	switch res.Status {
	case search.StatusSuccess, search.StatusPartial:
		c.println(goalsLabel(res.Goals, all), res.Count)
		c.println(res.Path)
		if res.Status == search.StatusPartial {
			c.printWarning("%d goals reached, the rest are unreachable", len(res.Goals))
		}
	case search.StatusLimitExceeded:
		c.println("Visit limit exceeded;", res.Count)
		if len(res.Goals) > 0 {
			c.println(goalsLabel(res.Goals, true))
			c.println(res.Path)
		}
	default:
		c.println("No goal is reachable;", res.Count)
	}
}

// goalsLabel renders one goal as its cell and several as a list.
func goalsLabel(goals []*grid.Cell, list bool) string {
	if !list && len(goals) == 1 {
		return goals[0].String()
	}
	parts := make([]string, len(goals))
	for i, g := range goals {
		parts[i] = g.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
