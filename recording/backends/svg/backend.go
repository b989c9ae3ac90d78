// Package svg provides an SVG backend for the recording system.
//
// The backend serializes primitives in playback order, so later elements
// overlay earlier ones. Lines and circles reference a full-canvas mask
// defined once per document, which clips shapes that extend past the
// canvas edges.
//
// # Output
//
// Documents are UTF-8 encoded. By default they start with a byte order
// mark; use WithBOM(false) to omit it. Coordinates are written with the
// shortest decimal form of their single-precision value. Opacities always
// have three decimals.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/debugtex/recording/backends/svg"
//
//	// Create via registry
//	backend, _ := recording.NewBackend("svg")
//
//	// Or create directly
//	backend := svg.NewBackend(svg.WithBOM(false))
//
//	if err := rec.Playback(backend); err != nil {
//	    // handle error
//	}
//	err := backend.SaveToFile("output.svg")
package svg

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/gogpu/debugtex"
	"github.com/gogpu/debugtex/recording"
)

// Name is the registry name of the backend.
const Name = "svg"

// MaskID is the id of the clipping mask lines and circles refer to.
const MaskID = "pageMask"

func init() {
	recording.Register(Name, func() recording.Backend {
		return NewBackend()
	})
}

var (
	// ErrNotStarted is returned when drawing or End happens before Begin.
	ErrNotStarted = errors.New("svg: backend not started")

	// ErrNotFinished is returned when output is requested before End.
	ErrNotFinished = errors.New("svg: document not finished")
)

// Option configures a Backend.
type Option func(*Backend)

// WithBOM controls whether output starts with a UTF-8 byte order mark.
func WithBOM(enabled bool) Option {
	return func(b *Backend) {
		b.bom = enabled
	}
}

// Backend renders recordings to SVG markup.
// It implements recording.Backend, recording.WriterBackend and
// recording.FileBackend.
type Backend struct {
	buf bytes.Buffer
	bom bool

	started  bool
	finished bool
	err      error
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// NewBackend creates a new SVG backend.
// The backend must be initialized with Begin before use.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{
		bom: true,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Begin implements recording.Backend. It discards any previous document and
// writes the document header and the clipping mask definition.
func (b *Backend) Begin(width, height int) error {
	b.buf.Reset()
	b.started, b.finished = true, false
	b.err = nil

	w, h := strconv.Itoa(width), strconv.Itoa(height)
	b.line(`<?xml version="1.0" encoding="UTF-8"?>`)
	b.line(`<svg width="`, w, `" height="`, h, `" version="1.1" xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink">`)
	b.line()

	b.line(`<defs>`)
	b.line(`  <mask id="`+MaskID+`">`)
	b.line(`    <rect x="0" y="0" width="`, w, `" height="`, h, `" fill="white" />`)
	b.line(`  </mask>`)
	b.line(`</defs>`)
	return nil
}

// End implements recording.Backend. It closes the root element.
func (b *Backend) End() error {
	if !b.started {
		return ErrNotStarted
	}
	if b.err != nil {
		return b.err
	}
	b.line()
	b.line(`</svg>`)
	b.started, b.finished = false, true
	return nil
}

// BeginLayer implements recording.Backend. Layers produce no markup.
func (b *Backend) BeginLayer(string) {
	b.check()
}

// FillRect implements recording.Backend.
func (b *Backend) FillRect(rect debugtex.Box, color debugtex.RGBA) {
	if !b.check() {
		return
	}
	size := rect.Size()
	b.line(`<rect x="`, num(rect.Min.X), `" y="`, num(rect.Min.Y),
		`" width="`, num(size.X), `" height="`, num(size.Y), `" `,
		`style="stroke-width:0; fill:`, color.RGBString(), `; fill-opacity:`, color.Opacity(), `" />`)
}

// Line implements recording.Backend.
func (b *Backend) Line(from, to debugtex.Point, stroke recording.Stroke) {
	if !b.check() {
		return
	}
	b.line(`<line x1="`, num(from.X), `" y1="`, num(from.Y),
		`" x2="`, num(to.X), `" y2="`, num(to.Y), `" `,
		maskRef, ` `, strokeStyle(stroke), ` />`)
}

// Circle implements recording.Backend.
func (b *Backend) Circle(center debugtex.Point, radius float64, stroke recording.Stroke) {
	if !b.check() {
		return
	}
	b.line(`<circle cx="`, num(center.X), `" cy="`, num(center.Y),
		`" r="`, num(radius), `" fill="none" `,
		maskRef, ` `, strokeStyle(stroke), ` />`)
}

// Arc implements recording.Backend. The arc runs counter-clockwise from the
// end angle back to the start angle.
func (b *Backend) Arc(center debugtex.Point, radius, start, end float64, stroke recording.Stroke) {
	if !b.check() {
		return
	}
	from := debugtex.FromPolar(center.X, center.Y, radius, end)
	to := debugtex.FromPolar(center.X, center.Y, radius, start)
	large := "0"
	if end-start > 180 {
		large = "1"
	}
	r := num(radius)
	b.line(`<path d="M `, num(from.X), ` `, num(from.Y),
		` A `, r, ` `, r, ` 0 `, large, ` 0 `, num(to.X), ` `, num(to.Y), ` " `,
		`style="fill: none; stroke:`, stroke.Color.RGBString(),
		`; stroke-width:`, num(stroke.Width),
		`; stroke-opacity:`, stroke.Color.Opacity(), `"/>`)
}

// Text implements recording.Backend.
func (b *Backend) Text(cmd recording.TextCommand) {
	if !b.check() {
		return
	}
	b.write(`<text x="`, num(cmd.Anchor.X), `" y="`, num(cmd.Anchor.Y),
		`" dominant-baseline="middle" text-anchor="middle" `,
		`style="font-family:sans-serif; font-size:`, num(cmd.FontSize), `; font-weight:bold; `,
		`fill:`, cmd.Fill.RGBString(), `; fill-opacity:`, cmd.Fill.Opacity(), `; `,
		`stroke:`, cmd.Outline.RGBString(), `; stroke-opacity:`, cmd.Outline.Opacity(), `" >`)
	xml.Escape(&b.buf, []byte(cmd.Text))
	b.line(`</text>`)
}

// Bytes returns the finished document without byte order mark.
// It returns nil before End has succeeded.
func (b *Backend) Bytes() []byte {
	if !b.finished {
		return nil
	}
	return b.buf.Bytes()
}

// WriteTo implements recording.WriterBackend.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.finished {
		return 0, ErrNotFinished
	}
	cw := &countingWriter{w: w}
	if !b.bom {
		_, err := cw.Write(b.buf.Bytes())
		return cw.n, err
	}
	tw := transform.NewWriter(cw, unicode.UTF8BOM.NewEncoder())
	if _, err := tw.Write(b.buf.Bytes()); err != nil {
		return cw.n, err
	}
	err := tw.Close()
	return cw.n, err
}

// SaveToFile implements recording.FileBackend.
//
// The document is written to a temporary file next to path, which is closed
// and then renamed over path. On failure the temporary file is removed and
// any existing file at path is left untouched.
func (b *Backend) SaveToFile(path string) error {
	if !b.finished {
		return ErrNotFinished
	}
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()

	if _, err := b.WriteTo(f); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Chmod(0o644); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// check records ErrNotStarted for drawing calls outside Begin/End.
func (b *Backend) check() bool {
	if b.err != nil {
		return false
	}
	if !b.started {
		b.err = ErrNotStarted
		return false
	}
	return true
}

const maskRef = `mask="url(#` + MaskID + `)"`

func (b *Backend) write(parts ...string) {
	for _, p := range parts {
		b.buf.WriteString(p)
	}
}

func (b *Backend) line(parts ...string) {
	b.write(parts...)
	b.buf.WriteByte('\n')
}

func strokeStyle(s recording.Stroke) string {
	return `style="stroke:` + s.Color.RGBString() +
		`; stroke-width:` + num(s.Width) +
		`; stroke-opacity:` + s.Color.Opacity() + `"`
}

// num formats a coordinate with single precision, the way the shipped
// textures were authored.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 32)
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
