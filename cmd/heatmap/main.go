// Command heatmap renders a heat map from a recorded analytics log
// without a database.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"event-heatmap-service/internal/analyticslog"
	"event-heatmap-service/internal/config"
	"event-heatmap-service/internal/heatmap/adapters/echarts"
	heatmaphttp "event-heatmap-service/internal/heatmap/adapters/http/fiber"
	"event-heatmap-service/internal/heatmap/adapters/imageplot"
	"event-heatmap-service/internal/heatmap/adapters/memory"
	"event-heatmap-service/internal/heatmap/core/domain"
	"event-heatmap-service/internal/heatmap/core/ports"
	"event-heatmap-service/internal/heatmap/core/usecase"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

var createOutput = func(path string) (io.WriteCloser, error) { return os.Create(path) }

// vec3Flag parses "x,y,z".
type vec3Flag struct {
	v   domain.Vec3
	set bool
}

func (f *vec3Flag) String() string {
	return fmt.Sprintf("%g,%g,%g", f.v.X, f.v.Y, f.v.Z)
}

func (f *vec3Flag) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return errors.New("expected x,y,z")
	}
	var xyz [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return err
		}
		xyz[i] = v
	}
	f.v = domain.Vec3{X: xyz[0], Y: xyz[1], Z: xyz[2]}
	f.set = true
	return nil
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("heatmap", flag.ContinueOnError)

	var (
		inPath    string
		cfgPath   string
		worldID   string
		metricID  string
		fromStr   string
		toStr     string
		format    string
		outPath   string
		offset    vec3Flag
		scale     vec3Flag
		threshold float64
		hasThresh bool
	)

	fs.StringVar(&inPath, "in", "", "recorded analytics log (JSON)")
	fs.StringVar(&cfgPath, "config", "", "heatmap defaults (JSON)")
	fs.StringVar(&worldID, "world", "", "world id (empty bins every world in the log)")
	fs.StringVar(&metricID, "metric", "", "metric id (empty for all)")
	fs.Var(&offset, "offset", "grid offset x,y,z")
	fs.Var(&scale, "scale", "cell size x,y,z")
	fs.Float64Var(&threshold, "threshold", config.DefaultDisplayThreshold, "display threshold in [0,1)")
	fs.StringVar(&fromStr, "from", "", "start time (RFC3339)")
	fs.StringVar(&toStr, "to", "", "end time (RFC3339)")
	fs.StringVar(&format, "format", "json", "output format: json, html or png")
	fs.StringVar(&outPath, "out", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "threshold" {
			hasThresh = true
		}
	})

	if inPath == "" {
		return errors.New("-in is required")
	}
	switch format {
	case "json", "html", "png":
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	cfg, err := config.LoadHeatmapDefaults(cfgPath)
	if err != nil {
		return err
	}
	settings, err := cfg.Settings()
	if err != nil {
		return err
	}
	if offset.set {
		settings.Offset = offset.v
	}
	if scale.set {
		settings.Scale = scale.v
	}
	if hasThresh {
		settings.DisplayThreshold = threshold
	}
	if fromStr != "" || toStr != "" {
		tr, err := parseRange(fromStr, toStr)
		if err != nil {
			return err
		}
		settings.TimeRange = tr
	}

	f, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	records, err := analyticslog.Decode(f)
	f.Close()
	if err != nil {
		return err
	}

	source := memory.FromRecords(records)
	in := usecase.BuildHeatmapInput{WorldID: worldID, MetricID: metricID, Settings: settings}
	if worldID == "" {
		in.AllWorlds = true
		log.Printf("no -world given, binning %d world(s)", len(source.Worlds()))
	}
	uc := usecase.NewBuildHeatmapUseCase(source)

	if outPath == "" {
		return write(ctx, uc, in, format, stdout)
	}

	file, err := createOutput(outPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := write(ctx, uc, in, format, file); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}

// write builds the heat map and encodes it to out in the given format.
func write(ctx context.Context, uc *usecase.BuildHeatmapUseCase, in usecase.BuildHeatmapInput, format string, out io.Writer) error {
	var provider ports.RenderTargetProvider
	switch format {
	case "json":
		view, err := uc.Execute(ctx, in)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(heatmaphttp.NewHeatmapResponse(view))
	case "html":
		provider = echarts.NewRenderer()
	case "png":
		provider = imageplot.NewRenderer()
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	target, err := provider.AcquireRenderTarget(out)
	if err != nil {
		return err
	}
	view, err := uc.Render(ctx, in, target)
	if err != nil {
		return err
	}
	log.Printf("rendered %d bars (max amount %d) as %s", len(view.Bars), view.Summary.MaxAmount, format)
	return nil
}

func parseRange(fromStr, toStr string) (*domain.TimeRange, error) {
	if fromStr == "" || toStr == "" {
		return nil, errors.New("-from and -to must be given together")
	}
	from, err := time.Parse(time.RFC3339, fromStr)
	if err != nil {
		return nil, fmt.Errorf("invalid -from: %w", err)
	}
	to, err := time.Parse(time.RFC3339, toStr)
	if err != nil {
		return nil, fmt.Errorf("invalid -to: %w", err)
	}
	return &domain.TimeRange{Begin: from.UTC(), End: to.UTC()}, nil
}
