package lib

import (
	"log/slog"
	"time"

	"github.com/ccfrost/recpath/internal/config"
)

// Sentinel names used when the naming context cannot be determined.
const (
	UnknownScene  = "UnknownScene"
	UnknownSource = "UnknownSource"
)

// DateLayout is the layout of the date token.
const DateLayout = "2006-01-02"

// NamingContext holds the tokens substituted into the path template.
type NamingContext struct {
	Name string
	Date string
}

// NamingStrategy produces the name token for a recording.
type NamingStrategy interface {
	NamingToken(f Frontend) string
}

// SceneNaming names recordings after the current scene.
type SceneNaming struct{}

func (SceneNaming) NamingToken(f Frontend) string {
	var name string
	if !withScene(f, func(s Scene) { name = s.Name() }) {
		logger.Debug("Using sentinel name", slog.String("cause", "no current scene"))
		return UnknownScene
	}
	if name == "" {
		logger.Debug("Using sentinel name", slog.String("cause", "current scene has no name"))
		return UnknownScene
	}
	return name
}

// ItemSourceNaming names recordings after the source of the current scene's first item.
type ItemSourceNaming struct{}

func (ItemSourceNaming) NamingToken(f Frontend) string {
	var name, cause string
	hasScene := withScene(f, func(s Scene) {
		hasSource := withFirstItemSource(s, func(src Source) {
			name = src.Name()
		})
		if !hasSource {
			cause = "current scene has no item source"
		}
	})
	if !hasScene {
		cause = "no current scene"
	}
	if cause == "" && name == "" {
		cause = "item source has no name"
	}
	if cause != "" {
		logger.Debug("Using sentinel name", slog.String("cause", cause))
		return UnknownSource
	}
	return name
}

// FixedNaming names recordings after a configured name.
type FixedNaming struct {
	Name string
}

func (n FixedNaming) NamingToken(Frontend) string {
	if n.Name == "" {
		logger.Debug("Using sentinel name", slog.String("cause", "no fallback name configured"))
		return UnknownSource
	}
	return n.Name
}

// StrategyFor returns the naming strategy selected by s.
func StrategyFor(s config.Settings) NamingStrategy {
	if !s.UseActiveContext {
		return FixedNaming{Name: s.FallbackName}
	}
	if s.Mode == config.ModeSource {
		return ItemSourceNaming{}
	}
	return SceneNaming{}
}

// ResolveNamingToken returns the name token for s. It never returns "".
func ResolveNamingToken(s config.Settings, f Frontend) string {
	return StrategyFor(s).NamingToken(f)
}

// DateToken formats now as a calendar date in the local time zone.
func DateToken(now time.Time) string {
	return now.In(time.Local).Format(DateLayout)
}

// ResolveContext builds the naming context for a recording starting at now.
func ResolveContext(s config.Settings, f Frontend, now time.Time) NamingContext {
	return NamingContext{
		Name: ResolveNamingToken(s, f),
		Date: DateToken(now),
	}
}
