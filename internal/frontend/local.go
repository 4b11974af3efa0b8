// Package frontend provides an in-process host frontend for recpath.
//
// Local keeps a scene graph and a recording output in memory and hands out
// reference-counted handles to them, the way a media application's frontend
// API does. The CLI builds one from the config file; tests use it to check
// that every handle is released.
package frontend

import (
	"sync"

	"github.com/ccfrost/recpath/internal/config"
	"github.com/ccfrost/recpath/internal/lib"
)

// Source kinds.
const (
	KindInput = "input"
	KindScene = "scene"
)

type SourceInfo struct {
	Name string
	Kind string
}

// Local is an in-memory Frontend. It is safe for concurrent use.
type Local struct {
	mu sync.Mutex

	scene    string
	hasScene bool
	items    []string

	sources []SourceInfo

	outputPath string
	hasOutput  bool

	refs int
}

var _ lib.Frontend = (*Local)(nil)

func NewLocal() *Local {
	return &Local{}
}

// FromConfig builds a Local with the scene graph and output path of cfg.
// An empty scene means no scene is active; an empty output path means there
// is no recording output.
func FromConfig(cfg config.RecpathConfig) *Local {
	l := NewLocal()
	if cfg.Frontend.Scene != "" {
		l.SetScene(cfg.Frontend.Scene, cfg.Frontend.Items...)
	}
	for _, src := range cfg.Frontend.Sources {
		kind := src.Kind
		if kind == "" {
			kind = KindInput
		}
		l.AddSource(src.Name, kind)
	}
	if cfg.OutputPath != "" {
		l.SetOutput(cfg.OutputPath)
	}
	return l
}

// SetScene makes name the current scene with the given item sources, in order.
func (l *Local) SetScene(name string, items ...string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.scene = name
	l.hasScene = true
	l.items = append([]string(nil), items...)
}

func (l *Local) ClearScene() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.scene = ""
	l.hasScene = false
	l.items = nil
}

func (l *Local) AddSource(name, kind string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sources = append(l.sources, SourceInfo{Name: name, Kind: kind})
}

// EligibleNames returns the names of the sources of the given kind, in the
// order they were added.
func (l *Local) EligibleNames(kind string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var names []string
	for _, src := range l.sources {
		if src.Kind == kind {
			names = append(names, src.Name)
		}
	}
	return names
}

// SetOutput creates the recording output with the given path.
func (l *Local) SetOutput(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.outputPath = path
	l.hasOutput = true
}

func (l *Local) ClearOutput() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.outputPath = ""
	l.hasOutput = false
}

// OutputPath returns the current recording output path.
func (l *Local) OutputPath() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.outputPath
}

// Outstanding returns the number of handles not yet released.
func (l *Local) Outstanding() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.refs
}

func (l *Local) CurrentScene() (lib.Scene, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.hasScene {
		return nil, false
	}
	l.refs++
	return &sceneRef{
		ref:   ref{l: l},
		name:  l.scene,
		items: append([]string(nil), l.items...),
	}, true
}

func (l *Local) RecordingOutput() (lib.Output, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.hasOutput {
		return nil, false
	}
	l.refs++
	return &outputRef{ref: ref{l: l}}, true
}

type ref struct {
	l    *Local
	once sync.Once
}

func (r *ref) Release() {
	r.once.Do(func() {
		r.l.mu.Lock()
		r.l.refs--
		r.l.mu.Unlock()
	})
}

type sourceRef struct {
	ref
	name string
}

func (s *sourceRef) Name() string {
	return s.name
}

type sceneRef struct {
	ref
	name  string
	items []string
}

func (s *sceneRef) Name() string {
	return s.name
}

func (s *sceneRef) FirstItemSource() (lib.Source, bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	s.l.mu.Lock()
	s.l.refs++
	s.l.mu.Unlock()
	return &sourceRef{ref: ref{l: s.l}, name: s.items[0]}, true
}

type outputRef struct {
	ref
}

func (o *outputRef) Path() string {
	return o.l.OutputPath()
}

func (o *outputRef) SetPath(path string) {
	o.l.mu.Lock()
	defer o.l.mu.Unlock()
	o.l.outputPath = path
}
