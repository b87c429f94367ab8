// Command render formats a forecast offline and prints the device segments
// the service would deliver. It reads scraped forecast text, or an NWS
// forecast document with -nws.
//
// Usage:
//
//	go run ./cmd/render -in forecast.txt -mode compact -device inreach
//	curl -s https://api.weather.gov/gridpoints/AFC/170,218/forecast | \
//	  go run ./cmd/render -in - -nws -days 2
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/couchcryptid/satcom-forecast/internal/domain"
	"github.com/couchcryptid/satcom-forecast/internal/format"
	"github.com/couchcryptid/satcom-forecast/internal/observability"
	"github.com/couchcryptid/satcom-forecast/internal/pipeline"
	"github.com/couchcryptid/satcom-forecast/internal/split"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	in := fs.String("in", "-", "forecast file, or - for stdin")
	nws := fs.Bool("nws", false, "input is an NWS forecast JSON document")
	mode := fs.String("mode", string(format.DefaultMode), "summary, compact or full")
	days := fs.Int("days", -1, "days after today to include; negative includes all")
	device := fs.String("device", string(split.DefaultDevice), "zoleo or inreach")
	limit := fs.Int("limit", 0, "custom per-message character limit")
	raw := fs.Bool("raw", false, "print the formatted text before splitting")
	if err := fs.Parse(args); err != nil {
		return err
	}

	data, err := readInput(*in, stdin)
	if err != nil {
		return err
	}

	req := domain.RenderRequest{
		ID:          "cli",
		Mode:        *mode,
		Device:      *device,
		CustomLimit: *limit,
	}
	if *days >= 0 {
		req.Days = days
	}
	if *nws {
		if !json.Valid(data) {
			return fmt.Errorf("%s: not a JSON document", *in)
		}
		req.Forecast = data
	} else {
		req.ForecastText = string(data)
	}
	if err := domain.ValidateRenderRequest(req); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	if *raw {
		periods, err := req.Periods()
		if err != nil {
			return err
		}
		m, _ := format.ParseMode(req.Mode)
		fmt.Fprintln(stdout, format.Format(periods, m, req.Days))
		fmt.Fprintln(stdout)
	}

	renderer := pipeline.NewRenderer(pipeline.Options{}, logger, observability.NewUnregisteredMetrics())
	reply, err := renderer.Render(context.Background(), req)
	if err != nil {
		return err
	}

	for i, seg := range reply.Segments {
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		fmt.Fprintln(stdout, seg)
	}
	return nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read forecast: %w", err)
	}
	return data, nil
}
