package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/esimov/vorinterp"
	"github.com/esimov/vorinterp/sites"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 8), G: uint8(y * 8), B: 90, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode %s: %v", path, err)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    vorinterp.Color
		wantErr bool
	}{
		{in: "#102030", want: vorinterp.Color{R: 0x10, G: 0x20, B: 0x30}},
		{in: "ff00aa", want: vorinterp.Color{R: 0xff, G: 0x00, B: 0xaa}},
		{in: "#fff", want: vorinterp.Color{R: 0xff, G: 0xff, B: 0xff}},
		{in: "#12345", wantErr: true},
		{in: "#zzzzzz", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseHexColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseHexColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCollect(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writePNG(t, filepath.Join(src, "b.png"), 4, 4)
	writePNG(t, filepath.Join(src, "a.png"), 4, 4)
	if err := os.WriteFile(filepath.Join(src, "notes.txt"), []byte("skip"), 0o644); err != nil {
		t.Fatal(err)
	}

	jobs, err := collect(src, dst)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	if jobs[0].out != filepath.Join(dst, "a.png") || jobs[1].out != filepath.Join(dst, "b.png") {
		t.Errorf("unexpected destinations %v", jobs)
	}

	if _, err := collect(src, filepath.Join(src, "a.png")); err == nil {
		t.Error("a directory source with a file destination should fail")
	}
}

func TestRunCommand(t *testing.T) {
	const w, h = 24, 16
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	writePNG(t, in, w, h)

	tests := []struct {
		name     string
		out      string
		args     []string
		bounds   image.Rectangle
		maxColor int
	}{
		{
			name:   "png",
			out:    "out.png",
			args:   []string{"--colors", "0", "--compare=false"},
			bounds: image.Rect(0, 0, w, h),
		},
		{
			name:     "gif is paletted",
			out:      "out.gif",
			args:     []string{"--colors", "0", "--compare=false"},
			bounds:   image.Rect(0, 0, w, h),
			maxColor: 256,
		},
		{
			name:     "png with reduced colors",
			out:      "colors.png",
			args:     []string{"--colors", "8", "--compare=false"},
			bounds:   image.Rect(0, 0, w, h),
			maxColor: 8,
		},
		{
			name:   "side by side",
			out:    "compare.png",
			args:   []string{"--colors", "0", "--compare"},
			bounds: image.Rect(0, 0, 2*w+8, h+20),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(dir, tt.out)
			var buf bytes.Buffer
			rootCmd.SetOut(&buf)
			args := []string{"run", "--in", in, "--out", out, "--mode", "grid", "--step", "4", "--stats"}
			rootCmd.SetArgs(append(args, tt.args...))
			if err := rootCmd.Execute(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			f, err := os.Open(out)
			if err != nil {
				t.Fatalf("missing output: %v", err)
			}
			defer f.Close()
			img, _, err := image.Decode(f)
			if err != nil {
				t.Fatalf("failed to decode output: %v", err)
			}
			if img.Bounds() != tt.bounds {
				t.Errorf("unexpected output bounds %v, want %v", img.Bounds(), tt.bounds)
			}
			if tt.maxColor > 0 {
				p, ok := img.(*image.Paletted)
				if !ok {
					t.Fatalf("expected a paletted image, got %T", img)
				}
				if len(p.Palette) == 0 || len(p.Palette) > tt.maxColor {
					t.Errorf("expected at most %d colors, got %d", tt.maxColor, len(p.Palette))
				}
			}
			if !strings.Contains(buf.String(), "PSNR") {
				t.Errorf("expected quality stats in the output, got %q", buf.String())
			}
		})
	}
}

func TestSitesCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "sites.json")
	writePNG(t, in, 20, 10)

	rootCmd.SetArgs([]string{"sites", "--in", in, "--out", out, "--mode", "grid", "--step", "5"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("missing output: %v", err)
	}
	defer f.Close()
	points, err := sites.Read(f, sites.JSON)
	if err != nil {
		t.Fatalf("failed to read sites: %v", err)
	}
	if want := len(sites.Grid(10, 20, 5)); len(points) != want {
		t.Errorf("expected %d sites, got %d", want, len(points))
	}

	rootCmd.SetArgs([]string{"sites", "--in", in, "--out", filepath.Join(dir, "missing", "sites.csv")})
	if err := rootCmd.Execute(); err == nil {
		t.Error("expected an error for an unwritable destination")
	}
}

func TestMaxSizeHelp(t *testing.T) {
	for _, name := range []string{"run", "sites"} {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil {
			t.Fatalf("missing %s command: %v", name, err)
		}
		fl := cmd.Flags().Lookup("sites")
		if fl == nil || !strings.Contains(fl.Usage, "--max-size") {
			t.Errorf("%s: --sites help should tell that site files follow --max-size", name)
		}
	}
}
