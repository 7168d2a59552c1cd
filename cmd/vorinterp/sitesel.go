package main

import (
	"fmt"
	"image"
	"log/slog"
	"os"

	"github.com/esimov/vorinterp/delaunay"
	"github.com/esimov/vorinterp/sites"
	"github.com/spf13/pflag"
)

// siteOptions collects the flags choosing the sites of an image.
type siteOptions struct {
	file    string
	mode    string
	count   int
	step    int
	seed    int64
	corners bool
	edges   sites.Options
}

func (o *siteOptions) register(fs *pflag.FlagSet) {
	d := sites.DefaultOptions
	fs.StringVar(&o.file, "sites", "", "Read the sites from a CSV (x,y per line) or JSON file instead of generating them.\n"+
		"Coordinates are used as they are: pass the --max-size the file was generated with")
	fs.StringVar(&o.mode, "mode", "edges", "Site generation: edges, random, grid")
	fs.IntVar(&o.count, "count", 1000, "Number of random sites")
	fs.IntVar(&o.step, "step", 16, "Grid spacing in pixels")
	fs.Int64Var(&o.seed, "seed", d.Seed, "Random seed")
	fs.BoolVar(&o.corners, "corners", d.Corners, "Add the image corners so the mesh covers the whole image")
	fs.IntVar(&o.edges.BlurRadius, "blur", d.BlurRadius, "Blur radius applied before edge detection")
	fs.IntVar(&o.edges.SobelThreshold, "sobel", d.SobelThreshold, "Sobel filter threshold")
	fs.IntVar(&o.edges.PointsThreshold, "points", d.PointsThreshold, "Edge points threshold")
	fs.IntVar(&o.edges.MaxPoints, "max", d.MaxPoints, "Maximum number of edge sites")
}

// pick returns the sites for img. Sites read from a file are used as they are.
func (o *siteOptions) pick(img image.Image) ([]delaunay.Point, error) {
	if o.file != "" {
		f, err := os.Open(o.file)
		if err != nil {
			return nil, fmt.Errorf("failed to open sites: %w", err)
		}
		defer f.Close()

		points, err := sites.Read(f, sites.FormatFromPath(o.file))
		if err != nil {
			return nil, fmt.Errorf("failed to read sites: %w", err)
		}
		return points, nil
	}

	b := img.Bounds()
	h, w := b.Dy(), b.Dx()

	var points []delaunay.Point
	switch o.mode {
	case "edges":
		opts := o.edges
		opts.Seed = o.seed
		opts.Corners = o.corners
		points = sites.Edges(img, opts)
	case "random":
		points = sites.Random(h, w, o.count, o.seed)
		if o.corners {
			points = append(points, sites.Grid(h, w, max(h, w))...)
		}
	case "grid":
		if o.step <= 0 {
			return nil, fmt.Errorf("grid step must be positive, got %d", o.step)
		}
		points = sites.Grid(h, w, o.step)
	default:
		return nil, fmt.Errorf("unknown site mode: %s", o.mode)
	}
	slog.Debug("selected sites", "mode", o.mode, "count", len(points))
	return points, nil
}
