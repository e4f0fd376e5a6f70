package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridnav/bench"
	"github.com/katalvlaran/gridnav/search"
)

// analyzeCommand creates the analyze command.
func (c *CLI) analyzeCommand() *cobra.Command {
	var (
		flags  searchFlags
		runs   int
		output string
	)

	cmd := &cobra.Command{
		Use:   "analyze [file] [algorithm|all]",
		Short: "Time an algorithm over repeated runs",
		Long: `Search a map repeatedly and report the mean, standard deviation, minimum and
maximum run time together with the bytes allocated per run.

With "all" as the algorithm every algorithm is measured, in single-goal and
all-goals mode.`,
		Example: `  gridnav analyze RobotNav-test.txt astar -n 500
  gridnav analyze RobotNav-test.txt all --csv results.csv`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.resolve(c, cmd)
			if !cmd.Flags().Changed("runs") {
				runs = c.Config.Bench.Runs
			}
			if !cmd.Flags().Changed("csv") {
				output = c.Config.Bench.Output
			}
			file, alg := c.Config.Maps.Default, c.Config.Search.Algorithm
			if len(args) > 0 {
				file = args[0]
			}
			if len(args) > 1 {
				alg = args[1]
			}

			m, _, err := c.loadAgent(file, flags.jump)
			if err != nil {
				return err
			}
			bc := bench.Case{
				Map:       m,
				MapName:   file,
				Algorithm: alg,
				All:       flags.all,
				Jump:      flags.jump,
				Limit:     flags.limit,
				Runs:      runs,
				Logger:    c.Logger,
			}

			mode := "one goal"
			if flags.all {
				mode = "all goals"
			}
			can := "cannot"
			if flags.jump {
				can = "can"
			}

			var reports []*bench.Report
			if strings.EqualFold(alg, "all") {
				c.printTitle("Analyzing every algorithm on %s (agent %s jump)", file, can)
				reports, err = bench.Sweep(cmd.Context(), bc, search.Names())
			} else {
				c.printTitle("Analyzing %s on %s (%s, agent %s jump)", strings.ToUpper(alg), file, mode, can)
				var r *bench.Report
				r, err = bench.Run(cmd.Context(), bc)
				reports = append(reports, r)
			}
			if err != nil {
				return err
			}

			for _, r := range reports {
				c.printReport(r)
			}
			if output == "" {
				return nil
			}
			return c.writeReports(output, reports)
		},
	}
	flags.register(cmd, true)
	cmd.Flags().IntVarP(&runs, "runs", "n", bench.DefaultRuns, "number of runs")
	cmd.Flags().StringVar(&output, "csv", "", "write the reports to this CSV file")
	return cmd
}

func (c *CLI) printReport(r *bench.Report) {
	mode := "one goal"
	if r.All {
		mode = "all goals"
	}
	c.println()
	c.printKeyValue("algorithm", fmt.Sprintf("%s (%s)", r.Algorithm, mode))
	c.printKeyValue("result", fmt.Sprintf("%s, %d goals, %d steps, %d visited", r.Status, r.Goals, r.Steps, r.Count))
	c.printKeyValue("time", fmt.Sprintf("%.4f ms ± %.4f (min %.4f, max %.4f, %d runs)", r.MeanMs, r.StdDevMs, r.MinMs, r.MaxMs, r.Runs))
	c.printKeyValue("memory", fmt.Sprintf("%d bytes per run", r.AllocBytes))
}

func (c *CLI) writeReports(path string, reports []*bench.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := bench.WriteCSV(f, reports); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	c.printSuccess("Wrote %d reports to %s", len(reports), path)
	return nil
}
