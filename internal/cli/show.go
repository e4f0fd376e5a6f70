package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridnav/agent"
	"github.com/katalvlaran/gridnav/render"
	"github.com/katalvlaran/gridnav/search"
)

// showCommand creates the show command.
func (c *CLI) showCommand() *cobra.Command {
	var (
		flags searchFlags
		alg   string
		plain bool
		stats bool
	)

	cmd := &cobra.Command{
		Use:   "show [file]",
		Short: "Draw a map, optionally with the path an algorithm finds",
		Long: `Draw a map as characters: A is the start, G a goal, 1 a wall and 0 a free cell.
With --path, the cells the agent lands on are marked with *.
With --stats, the free area, the region around the start and the region
count are printed below the map.`,
		Example: `  gridnav show RobotNav-test.txt
  gridnav show RobotNav-test.txt --path astar -a
  gridnav show no_goal.txt --stats`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.resolve(c, cmd)
			file := c.Config.Maps.Default
			if len(args) > 0 {
				file = args[0]
			}
			_, a, err := c.loadAgent(file, flags.jump)
			if err != nil {
				return err
			}

			var report func()
			if stats {
				report = c.areaStats(a)
			}

			r := render.Styled(nil)
			if plain {
				r = render.Plain()
			}
			if alg == "" {
				if err := r.Map(c.out, a); err != nil {
					return err
				}
				if report != nil {
					report()
				}
				return nil
			}

			fn, err := search.Lookup(alg)
			if err != nil {
				return err
			}
			res, err := fn(a, flags.options(c, cmd)...)
			if err != nil {
				return err
			}
			if err := r.Path(c.out, a, res.Path); err != nil {
				return err
			}
			c.printResult(res, flags.all)
			if report != nil {
				report()
			}
			return nil
		},
	}
	flags.register(cmd, true)
	cmd.Flags().StringVarP(&alg, "path", "p", "", "overlay the path found by this algorithm")
	cmd.Flags().BoolVar(&plain, "plain", false, "disable colors")
	cmd.Flags().BoolVar(&stats, "stats", false, "print area and region statistics")
	return cmd
}

// areaStats measures the agent's grid before any search runs and returns a
// printer for the figures.
func (c *CLI) areaStats(a *agent.Agent) func() {
	g := a.Grid()
	net := g.NetArea()
	reachable := len(g.ComponentOf(a.Cell()))
	regions := len(g.Components())
	return func() {
		c.printKeyValue("net area", fmt.Sprintf("%d cells", net))
		c.printKeyValue("reachable", fmt.Sprintf("%d of %d cells", reachable, net))
		c.printKeyValue("regions", fmt.Sprintf("%d connected", regions))
	}
}
