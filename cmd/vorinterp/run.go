package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/esimov/vorinterp"
	"github.com/esimov/vorinterp/utils"
	"github.com/spf13/cobra"
)

var (
	inPath        string
	outPath       string
	siteOpts      siteOptions
	fallback      string
	fallbackColor string
	strictBounds  bool
	wireframe     int
	lineWidth     float64
	isSolid       bool
	markers       float64
	noise         int
	grayscale     bool
	colors        int
	compare       bool
	maxSize       int
	stats         bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Interpolate an image, a remote image or a directory of images",
	Long: `Picks sites on the source image (or reads them from a file), triangulates them
and renders the interpolated image. A directory as input processes every supported
image into the output directory as PNG.`,
	RunE: runInterpolation,
}

func init() {
	fs := runCmd.Flags()
	fs.StringVar(&inPath, "in", "", "Source image, URL or directory (required)")
	fs.StringVar(&outPath, "out", "", "Destination image or directory (required)")
	siteOpts.register(fs)
	fs.StringVar(&fallback, "fallback", "neighbors", "Color of sites without pixels: neighbors, color, strict")
	fs.StringVar(&fallbackColor, "fallback-color", "#000000", "Color used by the color fallback")
	fs.BoolVar(&strictBounds, "strict-bounds", false, "Reject sites outside the image")
	fs.IntVar(&wireframe, "wireframe", vorinterp.WithoutWireframe, "Wireframe mode (0: without, 1: with, 2: only)")
	fs.Float64Var(&lineWidth, "width", 1, "Wireframe line width")
	fs.BoolVar(&isSolid, "solid", false, "Use solid black wireframe lines")
	fs.Float64Var(&markers, "markers", 0, "Draw the sites as dots of this radius")
	fs.IntVar(&noise, "noise", 0, "Noise factor")
	fs.BoolVar(&grayscale, "gray", false, "Convert to grayscale")
	fs.IntVar(&colors, "colors", 0, "Quantize the output to at most this many colors")
	fs.BoolVar(&compare, "compare", false, "Write the source and the result side by side")
	fs.IntVar(&maxSize, "max-size", 0, "Downscale the source so its longest side fits this size; sites are picked in the downscaled coordinates")
	fs.BoolVar(&stats, "stats", false, "Report the MSE and PSNR of the result")

	runCmd.MarkFlagRequired("in")
	runCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(runCmd)
}

func newProcessor() (*vorinterp.Processor, error) {
	policy, err := vorinterp.ParseFallback(fallback)
	if err != nil {
		return nil, err
	}
	c, err := parseHexColor(fallbackColor)
	if err != nil {
		return nil, err
	}
	if wireframe < vorinterp.WithoutWireframe || wireframe > vorinterp.WireframeOnly {
		return nil, fmt.Errorf("unknown wireframe mode: %d", wireframe)
	}
	return &vorinterp.Processor{
		Fallback:      policy,
		FallbackColor: c,
		StrictBounds:  strictBounds,
		Wireframe:     wireframe,
		LineWidth:     lineWidth,
		IsSolid:       isSolid,
		MarkerRadius:  markers,
		Noise:         noise,
		Grayscale:     grayscale,
	}, nil
}

func runInterpolation(cmd *cobra.Command, args []string) error {
	p, err := newProcessor()
	if err != nil {
		return err
	}
	toProcess, err := collect(inPath, outPath)
	if err != nil {
		return err
	}

	var failed int
	for _, job := range toProcess {
		if err := process(cmd, p, job.in, job.out); err != nil {
			if len(toProcess) == 1 {
				return err
			}
			slog.Error("Error converting image", "path", job.in, "error", err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d images failed", failed, len(toProcess))
	}
	return nil
}

type job struct {
	in, out string
}

// collect maps every source to its destination. A directory source requires a
// directory destination.
func collect(in, out string) ([]job, error) {
	if isURL(in) {
		return []job{{in, out}}, nil
	}
	fs, err := os.Stat(in)
	if err != nil {
		return nil, fmt.Errorf("failed to open source: %w", err)
	}
	if !fs.IsDir() {
		return []job{{in, out}}, nil
	}

	dst, err := os.Stat(out)
	if err != nil {
		return nil, fmt.Errorf("failed to get destination stats: %w", err)
	}
	if !dst.IsDir() {
		return nil, fmt.Errorf("destination %s must be a directory", out)
	}

	entries, err := os.ReadDir(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read dir: %w", err)
	}
	var jobs []job
	for _, e := range entries {
		if e.IsDir() || !supported(e.Name()) {
			continue
		}
		name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		jobs = append(jobs, job{
			in:  filepath.Join(in, e.Name()),
			out: filepath.Join(out, name+".png"),
		})
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].in < jobs[j].in })
	if len(jobs) == 0 {
		return nil, fmt.Errorf("no supported images in %s", in)
	}
	return jobs, nil
}

func process(cmd *cobra.Command, p *vorinterp.Processor, in, out string) error {
	img, err := loadImage(cmd.Context(), in)
	if err != nil {
		return err
	}
	img = downscale(img, maxSize)

	points, err := siteOpts.pick(img)
	if err != nil {
		return err
	}

	s := utils.NewSpinner()
	s.Start("Interpolating image...")
	start := time.Now()
	res, err := p.Interpolate(img, points)
	s.Stop()
	if err != nil {
		return fmt.Errorf("failed to interpolate %s: %w", in, err)
	}
	elapsed := time.Since(start)

	result := res.Image
	if compare {
		result = vorinterp.SideBySide(img, res.Image, "Input", "Output")
	}
	if err := saveImage(out, result, colors); err != nil {
		return err
	}

	slog.Info("Interpolation complete",
		"source", in,
		"output", out,
		"sites", res.Triangulation.NumSites(),
		"faces", res.Triangulation.NumFaces(),
		"elapsed", elapsed,
	)

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Generated in: %s%s%s\n", utils.SuccessColor, utils.FormatTime(elapsed), utils.DefaultColor)
	fmt.Fprintf(w, "Total number of %s%d%s triangles generated out of %s%d%s sites\n",
		utils.SuccessColor, res.Triangulation.NumFaces(), utils.DefaultColor,
		utils.SuccessColor, res.Triangulation.NumSites(), utils.DefaultColor)

	if stats {
		src := vorinterp.RasterFromImage(img)
		mse, err := vorinterp.MSE(src, res.Raster)
		if err != nil {
			return err
		}
		psnr, _ := vorinterp.PSNR(src, res.Raster)
		if math.IsInf(psnr, 1) {
			fmt.Fprintf(w, "MSE: %.2f, PSNR: inf\n", mse)
		} else {
			fmt.Fprintf(w, "MSE: %.2f, PSNR: %.2f dB\n", mse, psnr)
		}
	}
	fmt.Fprintf(w, "Saved as: %s %s✓%s\n\n", filepath.Base(out), utils.SuccessColor, utils.DefaultColor)
	return nil
}

// parseHexColor accepts #rrggbb or #rgb.
func parseHexColor(s string) (vorinterp.Color, error) {
	var c color.RGBA
	var err error
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 6:
		_, err = fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B)
	case 3:
		_, err = fmt.Sscanf(s, "%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R *= 17
		c.G *= 17
		c.B *= 17
	default:
		err = fmt.Errorf("expected 3 or 6 hex digits")
	}
	if err != nil {
		return vorinterp.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return vorinterp.Color{R: c.R, G: c.G, B: c.B}, nil
}
