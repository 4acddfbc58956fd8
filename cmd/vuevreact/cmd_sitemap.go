package main

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jezweb/vuevreact"
	"github.com/jezweb/vuevreact/content"
)

func newSitemapCmd(stdout io.Writer) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "sitemap",
		Short: "Write sitemap.xml for the listed site paths",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			catalog, err := content.Load()
			if err != nil {
				return err
			}
			cfg := vuevreact.ConfigFromEnv()
			if err := vuevreact.GenerateSitemapFile(out, cfg.URL, catalog.Sitemap, time.Now()); err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Sitemap generated at %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", filepath.Join("public", "sitemap.xml"), "Output path")
	return cmd
}
