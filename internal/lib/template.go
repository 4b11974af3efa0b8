package lib

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"github.com/ccfrost/recpath/internal/config"
)

// Placeholder value keys.
const (
	PlaceholderDate = "DATE"
	PlaceholderName = "NAME"
)

// DefaultTemplate puts recordings in a date directory holding a name directory.
const DefaultTemplate = config.DefaultSubdirTemplate

// DefaultPlaceholders maps the markers understood in recording templates to
// their value keys. SCENE and SOURCE are accepted as spellings of NAME.
var DefaultPlaceholders = map[string]string{
	"DATE":   PlaceholderDate,
	"NAME":   PlaceholderName,
	"SCENE":  PlaceholderName,
	"SOURCE": PlaceholderName,
}

var (
	// ErrPathEscapesBase is returned when an expanded template would not stay
	// below the base path.
	ErrPathEscapesBase = errors.New("expanded path escapes base path")

	markerName = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

	// '%' delimits markers, so it is reserved along with the characters that
	// are invalid in a path segment on some OS.
	invalidTokenChars = regexp.MustCompile(`[<>:"/\\|?*%\x00-\x1f]`)

	// Windows drops trailing dots and spaces from names; elsewhere they are
	// kept so distinct names stay distinct.
	trimTrailingDots = runtime.GOOS == "windows"
)

type segment struct {
	literal string
	key     string // value key; empty for a literal
}

// Template is a parsed path template: literal text interleaved with %TAG% markers.
// Literal '/' separates directory levels regardless of the host OS.
type Template struct {
	raw      string
	segments []segment
}

// ParseTemplate parses s. placeholders maps each accepted marker tag to the
// value key it is replaced with. A %TAG% whose tag is not in placeholders is
// an error; a '%' that does not start a marker is kept as text.
func ParseTemplate(s string, placeholders map[string]string) (Template, error) {
	t := Template{raw: s}
	var lit strings.Builder
	for i := 0; i < len(s); {
		if s[i] != '%' {
			lit.WriteByte(s[i])
			i++
			continue
		}
		end := strings.IndexByte(s[i+1:], '%')
		if end < 0 || !markerName.MatchString(s[i+1:i+1+end]) {
			lit.WriteByte('%')
			i++
			continue
		}
		tag := s[i+1 : i+1+end]
		key, ok := placeholders[tag]
		if !ok {
			return Template{}, fmt.Errorf("unknown placeholder %%%s%% in template %q", tag, s)
		}
		if lit.Len() > 0 {
			t.segments = append(t.segments, segment{literal: lit.String()})
			lit.Reset()
		}
		t.segments = append(t.segments, segment{key: key})
		i += end + 2
	}
	if lit.Len() > 0 {
		t.segments = append(t.segments, segment{literal: lit.String()})
	}
	if len(t.segments) == 0 {
		return Template{}, fmt.Errorf("empty template")
	}
	return t, nil
}

// MustParseTemplate is like ParseTemplate with DefaultPlaceholders but panics on error.
func MustParseTemplate(s string) Template {
	t, err := ParseTemplate(s, DefaultPlaceholders)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Template) String() string {
	return t.raw
}

// Expand substitutes values into the template and returns the relative path
// it describes. Each value is sanitized into a single path segment and is
// not scanned for further markers.
func (t Template) Expand(values map[string]string) (string, error) {
	var b strings.Builder
	for _, seg := range t.segments {
		if seg.key == "" {
			b.WriteString(seg.literal)
			continue
		}
		v, ok := values[seg.key]
		if !ok {
			return "", fmt.Errorf("no value for placeholder %s", seg.key)
		}
		b.WriteString(sanitizeToken(v))
	}

	suffix := filepath.Clean(filepath.FromSlash(b.String()))
	if !filepath.IsLocal(suffix) {
		return "", fmt.Errorf("%w: %q", ErrPathEscapesBase, b.String())
	}
	return suffix, nil
}

// ResolvedPath is a template expanded under a base path.
type ResolvedPath struct {
	Base   string
	Suffix string
	Final  string
}

// Resolve expands the template with nc and joins it to base.
func (t Template) Resolve(base string, nc NamingContext) (ResolvedPath, error) {
	suffix, err := t.Expand(map[string]string{
		PlaceholderDate: nc.Date,
		PlaceholderName: nc.Name,
	})
	if err != nil {
		return ResolvedPath{}, err
	}
	return ResolvedPath{
		Base:   base,
		Suffix: suffix,
		Final:  filepath.Join(base, suffix),
	}, nil
}

// Expand returns base joined with DefaultTemplate expanded for nc.
func Expand(base string, nc NamingContext) (string, error) {
	rp, err := MustParseTemplate(DefaultTemplate).Resolve(base, nc)
	if err != nil {
		return "", err
	}
	return rp.Final, nil
}

// sanitizeToken turns v into a name usable as one path segment.
//
// Separators, reserved characters, '%' and control chars are replaced with
// underscore. Trailing dots and spaces are trimmed on Windows only. Whatever
// else the name contains is kept as-is. Empty, "." and ".." become "_".
func sanitizeToken(v string) string {
	v = invalidTokenChars.ReplaceAllString(v, "_")
	if trimTrailingDots {
		v = strings.TrimRight(v, ". ")
	}
	switch v {
	case "", ".", "..":
		return "_"
	}
	return v
}
