package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/couchcryptid/satcom-forecast/internal/domain"
	"github.com/couchcryptid/satcom-forecast/internal/format"
	"github.com/couchcryptid/satcom-forecast/internal/observability"
	"github.com/couchcryptid/satcom-forecast/internal/split"
)

// Options configures a Renderer.
type Options struct {
	// DefaultMode and DefaultDevice apply when a request leaves them unset.
	DefaultMode   format.Mode
	DefaultDevice split.Device
	// CacheSize bounds the render cache. Zero disables caching.
	CacheSize int
}

// Renderer implements Transformer by formatting a request's forecast and
// splitting it for the requested device.
type Renderer struct {
	opts    Options
	cache   *renderCache
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewRenderer creates a Renderer.
func NewRenderer(opts Options, logger *slog.Logger, metrics *observability.Metrics) *Renderer {
	if opts.DefaultMode == "" {
		opts.DefaultMode = format.DefaultMode
	}
	if opts.DefaultDevice == "" {
		opts.DefaultDevice = split.DefaultDevice
	}
	r := &Renderer{opts: opts, logger: logger, metrics: metrics}
	if opts.CacheSize > 0 {
		r.cache = newRenderCache(opts.CacheSize)
	}
	return r
}

// Transform decodes a request from the source topic and renders it.
func (r *Renderer) Transform(ctx context.Context, raw domain.RawEvent) (domain.RenderReply, error) {
	req, err := domain.ParseRawEvent(raw)
	if err != nil {
		return domain.RenderReply{}, err
	}
	return r.Render(ctx, req)
}

// Render formats and splits a validated request. Unknown modes and devices
// fall back to the configured defaults with a warning.
func (r *Renderer) Render(_ context.Context, req domain.RenderRequest) (domain.RenderReply, error) {
	mode := r.resolveMode(req)
	profile := r.resolveProfile(req)
	limit := profile.Limit()

	key := domain.Fingerprint(req, string(mode), limit)
	out, ok := r.lookup(key)
	if !ok {
		periods, err := req.Periods()
		if err != nil {
			return domain.RenderReply{}, fmt.Errorf("render %s: %w", req.ID, err)
		}
		text := format.Format(periods, mode, req.Days)
		out = rendering{
			characters: utf8.RuneCountInString(text),
			segments:   split.Split(text, profile),
		}
		r.store(key, out)
	}

	reply := domain.NewReply(req)
	reply.Mode = string(mode)
	reply.Device = string(profile.Device)
	reply.Limit = limit
	reply.Characters = out.characters
	reply.Segments = append([]string(nil), out.segments...)

	r.metrics.Renders.WithLabelValues(reply.Mode).Inc()
	r.metrics.SegmentsPerReply.Observe(float64(len(reply.Segments)))
	r.logger.Debug("forecast rendered",
		"request_id", req.ID,
		"mode", reply.Mode,
		"device", reply.Device,
		"characters", reply.Characters,
		"segments", len(reply.Segments),
	)
	return reply, nil
}

func (r *Renderer) resolveMode(req domain.RenderRequest) format.Mode {
	if req.Mode == "" {
		return r.opts.DefaultMode
	}
	mode, ok := format.ParseMode(req.Mode)
	if !ok {
		r.logger.Warn("unknown format mode, using default",
			"request_id", req.ID, "mode", req.Mode, "default", r.opts.DefaultMode)
		return r.opts.DefaultMode
	}
	return mode
}

func (r *Renderer) resolveProfile(req domain.RenderRequest) split.Profile {
	device := r.opts.DefaultDevice
	if req.Device != "" {
		d, ok := split.ParseDevice(req.Device)
		if ok {
			device = d
		} else {
			r.logger.Warn("unknown device, using default",
				"request_id", req.ID, "device", req.Device, "default", r.opts.DefaultDevice)
		}
	}
	if req.CustomLimit > 0 && req.CustomLimit < split.MinCustomLimit {
		r.logger.Warn("custom limit below minimum, using device limit",
			"request_id", req.ID, "custom_limit", req.CustomLimit, "minimum", split.MinCustomLimit)
	}
	return split.Profile{Device: device, CustomLimit: req.CustomLimit}
}

func (r *Renderer) lookup(key string) (rendering, bool) {
	if r.cache == nil {
		return rendering{}, false
	}
	out, ok := r.cache.get(key)
	if ok {
		r.metrics.RenderCache.WithLabelValues("hit").Inc()
	} else {
		r.metrics.RenderCache.WithLabelValues("miss").Inc()
	}
	return out, ok
}

func (r *Renderer) store(key string, out rendering) {
	if r.cache != nil {
		r.cache.put(key, out)
	}
}
