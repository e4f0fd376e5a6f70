package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridnav/mapfile"
	"github.com/katalvlaran/gridnav/search"
)

// mapsCommand creates the maps command.
func (c *CLI) mapsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "maps",
		Short: "List the map files in the map directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := mapfile.List(c.Config.Maps.Dir)
			if err != nil {
				return err
			}
			c.printTitle("Maps in %s", c.Config.Maps.Dir)
			for _, n := range names {
				note := ""
				if n == c.Config.Maps.Default {
					note = "(default)"
				}
				c.printItem(n, note)
			}
			return nil
		},
	}
}

// algorithmsCommand creates the algorithms command.
func (c *CLI) algorithmsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "algorithms",
		Aliases: []string{"algs"},
		Short:   "List the search algorithms",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.printTitle("Search algorithms")
			for _, n := range search.Names() {
				kind := "uninformed"
				if search.Informed(n) {
					kind = "informed"
				}
				c.printItem(n, fmt.Sprintf("(%s)", kind))
			}
			return nil
		},
	}
}
