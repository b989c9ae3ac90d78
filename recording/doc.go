// Package recording captures drawing primitives as an ordered list of
// commands that can be played back to different backends.
//
// Separating recording from serialization keeps geometry and color logic
// testable on its own: a generator produces a Recording, tests inspect its
// commands, and a backend turns the same Recording into output text.
//
// # Architecture
//
//   - Recorder: captures primitives as commands, in call order
//   - Recording: immutable, replayable list of commands
//   - Backend: renders commands to a specific output format
//
// # Basic Usage
//
//	rec := recording.NewRecorder(2048, 2048)
//	rec.BeginLayer("borders")
//	rec.Line(0, 128, 2048, 128, recording.Stroke{Width: 4, Color: gray})
//	r := rec.FinishRecording()
//
//	b, _ := recording.NewBackend("svg")
//	if err := r.Playback(b); err != nil {
//	    // handle error
//	}
//	err := b.(recording.FileBackend).SaveToFile("out.svg")
//
// # Layers
//
// A LayerCommand starts a named group of elements. Groups carry no drawing
// state; they let tests and tools address one family of elements, for
// example Recording.Layer("circles").
//
// # Backend Registration
//
// Backends are registered using the database/sql driver pattern. Import a
// backend package with a blank identifier to register it:
//
//	import _ "github.com/gogpu/debugtex/recording/backends/svg"
//
// # Thread Safety
//
// Recorder is NOT safe for concurrent use. Recording objects are immutable
// after FinishRecording and can be shared and played back from multiple
// goroutines, each with its own Backend.
package recording
