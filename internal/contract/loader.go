package contract

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/tjo-photometry/colorcurve/schema"
)

// FileSeriesLoader implements the SeriesLoader interface by reading
// whitespace-delimited "MJD MAG ERR NFRAMES" text files.
type FileSeriesLoader struct{}

var _ SeriesLoader = &FileSeriesLoader{} // Compile-time check

// NewFileSeriesLoader creates a new file based series loader.
func NewFileSeriesLoader() *FileSeriesLoader {
	return &FileSeriesLoader{}
}

// LoadSeries implements the SeriesLoader interface.
func (l *FileSeriesLoader) LoadSeries(ctx context.Context, path string, band schema.Band) (schema.Series, error) {
	if err := ctx.Err(); err != nil {
		return schema.Series{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return schema.Series{}, fmt.Errorf("cannot read %s band data: %w", band, err)
	}
	defer func() { _ = f.Close() }()
	return ParseSeries(f, path, band)
}

// ParseSeries parses one band series. Blank lines and lines starting with '#'
// are skipped. The frame count column is optional. Errors carry name:line.
func ParseSeries(r io.Reader, name string, band schema.Band) (schema.Series, error) {
	series := schema.Series{Band: band}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		obs, err := parseObservation(strings.Fields(line))
		if err != nil {
			return schema.Series{}, fmt.Errorf("%s:%d: %w", name, lineNo, err)
		}
		series.Observations = append(series.Observations, obs)
	}
	if err := scanner.Err(); err != nil {
		return schema.Series{}, fmt.Errorf("%s: %w", name, err)
	}
	return series, nil
}

// parseObservation converts the columns of one data row.
// Every column must be a finite number.
func parseObservation(fields []string) (schema.Observation, error) {
	if len(fields) < 3 || len(fields) > 4 {
		return schema.Observation{}, fmt.Errorf("expected 3 or 4 columns (MJD MAG ERR [NFRAMES]), got %d", len(fields))
	}
	var values [3]float64
	for i, label := range []string{"MJD", "magnitude", "error"} {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return schema.Observation{}, fmt.Errorf("invalid %s %q", label, fields[i])
		}
		values[i] = v
	}
	obs := schema.Observation{MJD: values[0], Mag: values[1], MagErr: values[2]}
	if len(fields) == 4 {
		// Frame counts are often written as floats, e.g. "3.0".
		n, err := strconv.ParseFloat(fields[3], 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return schema.Observation{}, fmt.Errorf("invalid frame count %q", fields[3])
		}
		obs.Frames = int(n)
	}
	return obs, nil
}
