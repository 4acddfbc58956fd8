package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jezweb/vuevreact"
)

func newOGCmd(stdout io.Writer) *cobra.Command {
	var src, out string
	cmd := &cobra.Command{
		Use:   "og",
		Short: "Crop and scale an image into a 1200x630 social preview card",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if src == "" {
				return errors.New("--src is required")
			}
			if err := vuevreact.GenerateSocialCard(src, out); err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Social card written to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&src, "src", "", "Source image (PNG, JPEG or GIF)")
	cmd.Flags().StringVar(&out, "out", filepath.Join("public", "og-image.jpg"), "Output JPEG path")
	return cmd
}
