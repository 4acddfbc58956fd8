// vuevreact serves the Vue vs React comparison site and builds its static
// artifacts.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Version metadata injected via ldflags.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// errExit signals a non-zero exit after the command already reported.
var errExit = errors.New("exit")

func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errExit) {
			fmt.Fprintf(stderr, "vuevreact: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "vuevreact",
		Short:         "Vue vs React comparison site",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			fmt.Fprintf(stderr, "vuevreact: unknown command %q\n", args[0])
			return errExit
		},
	}
	root.AddCommand(
		newServeCmd(stdout),
		newSitemapCmd(stdout),
		newRoutesCmd(stdout),
		newOGCmd(stdout),
		newVersionCmd(stdout),
	)
	return root
}
