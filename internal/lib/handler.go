package lib

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ccfrost/recpath/internal/config"
)

var (
	// ErrNoOutput is returned when there is no recording output to redirect.
	ErrNoOutput = errors.New("no recording output")
	// ErrNoBasePath is returned when the recording output has no path set.
	ErrNoBasePath = errors.New("recording output has no path")
)

// Handler redirects the recording output into a per-recording directory
// when a recording starts.
type Handler struct {
	frontend Frontend
	template Template
	now      func() time.Time

	mu       sync.RWMutex
	settings config.Settings
}

type HandlerOption func(*Handler)

// WithClock sets the clock used for the date token.
func WithClock(now func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.now = now
	}
}

// WithTemplate replaces DefaultTemplate.
func WithTemplate(t Template) HandlerOption {
	return func(h *Handler) {
		h.template = t
	}
}

func NewHandler(f Frontend, s config.Settings, opts ...HandlerOption) *Handler {
	h := &Handler{
		frontend: f,
		template: MustParseTemplate(DefaultTemplate),
		now:      time.Now,
		settings: s,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Loaded logs that the handler is ready to receive events.
func (h *Handler) Loaded() {
	logger.Info("Dynamic recording path handler loaded",
		slog.String("template", h.template.String()))
}

// Settings returns the current naming settings.
func (h *Handler) Settings() config.Settings {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.settings
}

// UpdateSettings replaces the naming settings. It takes effect on the next event.
func (h *Handler) UpdateSettings(s config.Settings) {
	h.mu.Lock()
	h.settings = s
	h.mu.Unlock()
	logger.Debug("Updated naming settings",
		slog.Bool("use_active_context", s.UseActiveContext),
		slog.String("mode", string(s.Mode)),
		slog.String("fallback_name", s.FallbackName))
}

// OnEvent is the host event callback. Events other than
// EventRecordingStarting are ignored. It always returns normally.
func (h *Handler) OnEvent(ev Event) {
	if ev != EventRecordingStarting {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Recording path handler panicked", slog.Any("panic", r))
		}
	}()

	rp, err := h.RecordingStarting()
	switch {
	case errors.Is(err, ErrNoOutput):
		logger.Debug("No recording output, nothing to redirect")
	case err != nil:
		logger.Warn("Leaving recording path unchanged", slog.String("error", err.Error()))
	default:
		logger.Info("Redirected recording output", slog.String("path", rp.Final))
	}
}

// RecordingStarting resolves the recording directory, creates it and points
// the recording output at it. On error the output path is left unchanged.
func (h *Handler) RecordingStarting() (ResolvedPath, error) {
	return h.withResolved(func(out Output, rp ResolvedPath) error {
		if err := EnsureDirectory(rp.Final); err != nil {
			return err
		}
		out.SetPath(rp.Final)
		return nil
	})
}

// Preview resolves the recording directory without creating it or changing
// the recording output.
func (h *Handler) Preview() (ResolvedPath, error) {
	return h.withResolved(func(Output, ResolvedPath) error { return nil })
}

func (h *Handler) withResolved(fn func(Output, ResolvedPath) error) (ResolvedPath, error) {
	var rp ResolvedPath
	var err error
	ok := withOutput(h.frontend, func(out Output) {
		base := out.Path()
		if base == "" {
			err = ErrNoBasePath
			return
		}
		nc := ResolveContext(h.Settings(), h.frontend, h.now())
		rp, err = h.template.Resolve(base, nc)
		if err != nil {
			err = fmt.Errorf("failed to expand %q: %w", h.template, err)
			return
		}
		err = fn(out, rp)
	})
	if !ok {
		return ResolvedPath{}, ErrNoOutput
	}
	if err != nil {
		return ResolvedPath{}, err
	}
	return rp, nil
}
