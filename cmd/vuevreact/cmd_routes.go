package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jezweb/vuevreact"
)

func newRoutesCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the page routes in match order",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			table, err := vuevreact.New(vuevreact.ConfigFromEnv()).PageRoutes()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PATH\tNAME\tTITLE")
			for _, r := range table.Routes() {
				title := r.Title
				switch {
				case r.Redirect != "":
					title = "-> " + r.Redirect
				case r.Dynamic():
					title += " (dynamic)"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", r.Path, r.Name, title)
			}
			return w.Flush()
		},
	}
}
