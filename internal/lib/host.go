//go:generate go run github.com/golang/mock/mockgen -source=${GOFILE} -destination=zz_generated_mocks_test.go -package=lib Frontend,Scene,Source,Output

package lib

// Handle is a reference to an object owned by the host application.
// Release must be called exactly once when the caller is done with it.
type Handle interface {
	Release()
}

// Source is a named entity in the host's scene graph.
type Source interface {
	Handle
	Name() string
}

// Scene is a source that contains an ordered list of items.
type Scene interface {
	Handle
	Name() string
	// FirstItemSource returns the source of the scene's first item.
	// The caller owns the returned handle.
	FirstItemSource() (Source, bool)
}

// Output is the host's recording output.
type Output interface {
	Handle
	Path() string
	SetPath(path string)
}

// Frontend is the part of the host application that recpath queries.
// Every handle it returns is owned by the caller.
type Frontend interface {
	CurrentScene() (Scene, bool)
	RecordingOutput() (Output, bool)
}

// Event is a host frontend notification.
type Event string

// EventRecordingStarting fires when a recording is about to start, before
// the output opens its file.
const EventRecordingStarting Event = "recording_starting"

// withScene calls fn with the current scene and releases it afterwards.
// It reports false without calling fn if there is no current scene.
func withScene(f Frontend, fn func(Scene)) bool {
	scene, ok := f.CurrentScene()
	if !ok || scene == nil {
		return false
	}
	defer scene.Release()
	fn(scene)
	return true
}

// withFirstItemSource calls fn with the source of the scene's first item and
// releases it afterwards.
func withFirstItemSource(scene Scene, fn func(Source)) bool {
	src, ok := scene.FirstItemSource()
	if !ok || src == nil {
		return false
	}
	defer src.Release()
	fn(src)
	return true
}

// withOutput calls fn with the recording output and releases it afterwards.
func withOutput(f Frontend, fn func(Output)) bool {
	out, ok := f.RecordingOutput()
	if !ok || out == nil {
		return false
	}
	defer out.Release()
	fn(out)
	return true
}
