package sites

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/esimov/vorinterp/delaunay"
	"github.com/pkg/errors"
)

// Format selects the encoding of a site list.
type Format int

const (
	// CSV stores one "x,y" pair per line. Blank lines and lines starting with # are skipped.
	CSV Format = iota
	// JSON stores an array of [x, y] pairs.
	JSON
)

// FormatFromPath picks the format from the file extension, defaulting to CSV.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return JSON
	}
	return CSV
}

// Write encodes the sites to w.
func Write(w io.Writer, points []delaunay.Point, f Format) error {
	if f == JSON {
		pairs := make([][2]int, len(points))
		for i, p := range points {
			pairs[i] = [2]int{p.X, p.Y}
		}
		enc := json.NewEncoder(w)
		return errors.Wrap(enc.Encode(pairs), "encoding sites")
	}

	bw := bufio.NewWriter(w)
	for _, p := range points {
		if _, err := fmt.Fprintf(bw, "%d,%d\n", p.X, p.Y); err != nil {
			return errors.Wrap(err, "writing sites")
		}
	}
	return errors.Wrap(bw.Flush(), "writing sites")
}

// Read decodes a site list from r.
func Read(r io.Reader, f Format) ([]delaunay.Point, error) {
	if f == JSON {
		var pairs [][2]int
		if err := json.NewDecoder(r).Decode(&pairs); err != nil {
			return nil, errors.Wrap(err, "decoding sites")
		}
		points := make([]delaunay.Point, len(pairs))
		for i, p := range pairs {
			points[i] = delaunay.Pt(p[0], p[1])
		}
		return points, nil
	}

	var points []delaunay.Point
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Split(text, ",")
		if len(fields) != 2 {
			return nil, errors.Errorf("line %d: expected x,y got %q", line, text)
		}
		x, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		y, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		points = append(points, delaunay.Pt(x, y))
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading sites")
	}
	return points, nil
}
