package main

import (
	"fmt"
	"io"
	"os"

	"github.com/esimov/vorinterp/delaunay"
	"github.com/esimov/vorinterp/sites"
	"github.com/spf13/cobra"
)

func sitesCmd() *cobra.Command {
	var (
		in   string
		out  string
		opts siteOptions
	)

	cmd := &cobra.Command{
		Use:   "sites",
		Short: "Generate the sites of an image and write them as CSV or JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			img, err := loadImage(cmd.Context(), in)
			if err != nil {
				return err
			}
			img = downscale(img, maxSize)
			points, err := opts.pick(img)
			if err != nil {
				return err
			}

			if out == "-" {
				return writeSites(cmd.OutOrStdout(), points, sites.CSV)
			}
			return saveSites(out, points)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&in, "in", "", "Source image or URL (required)")
	fs.StringVar(&out, "out", "-", "Destination file, .json for JSON, - for stdout")
	fs.IntVar(&maxSize, "max-size", 0, "Downscale the source so its longest side fits this size; sites are written in the downscaled coordinates")
	opts.register(fs)
	cmd.MarkFlagRequired("in")
	return cmd
}

// saveSites writes points into path, picking the format from the extension.
func saveSites(path string, points []delaunay.Point) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close output: %w", cerr)
		}
	}()
	return writeSites(f, points, sites.FormatFromPath(path))
}

func writeSites(w io.Writer, points []delaunay.Point, format sites.Format) error {
	if err := sites.Write(w, points, format); err != nil {
		return fmt.Errorf("failed to write sites: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(sitesCmd())
}
