/*
Package vorinterp rebuilds images from a sparse set of sites using Delaunay triangulation.

The sites are triangulated, every pixel is assigned to the nearest vertex of the triangle
containing it and each site takes the average color of its pixels. The image is then
rendered again by blending the site colors across every triangle with barycentric weights,
producing a smooth gradient mesh. Pixels outside the convex hull of the sites stay black.

The package provides a command line utility; check the supported commands by typing:

	$ vorinterp --help

Example interpolating a raw RGB buffer:

	package main

	import (
		"fmt"

		"github.com/esimov/vorinterp"
		"github.com/esimov/vorinterp/delaunay"
	)

	func main() {
		src, err := vorinterp.RasterFromPix(width, height, pix)
		if err != nil {
			fmt.Printf("Invalid image: %s", err.Error())
			return
		}
		sites := []delaunay.Point{{X: 0, Y: 0}, {X: 0, Y: width - 1}, {X: height - 1, Y: 0}}
		out, err := vorinterp.Interpolate(src, sites)
		if err != nil {
			fmt.Printf("Error on interpolation process: %s", err.Error())
			return
		}
		fmt.Println(len(out.Pix))
	}

Example using the Processor on any image.Image, with a wireframe overlay:

	p := &vorinterp.Processor{
		Fallback:  vorinterp.FallbackNeighbors,
		Wireframe: vorinterp.WithWireframe,
		LineWidth: 1,
	}
	res, err := p.Interpolate(img, sites)
	if err != nil {
		fmt.Printf("Error on interpolation process: %s", err.Error())
	}
	png.Encode(w, res.Image)

Sites use the (row, column) convention: Point.X is the row and Point.Y the column.
The pipeline is single threaded; AggregateRows, Accumulator.Merge and RenderRows let
callers split the work by rows and still obtain identical output.
*/
package vorinterp
