package recording

import (
	"fmt"

	"github.com/gogpu/debugtex"
)

// mockBackend logs every call as a short string for order assertions.
type mockBackend struct {
	name     string
	calls    []string
	beginErr error
	endErr   error
	width    int
	height   int
}

func newMockBackend(name string) *mockBackend {
	return &mockBackend{name: name}
}

func (b *mockBackend) Begin(width, height int) error {
	b.width, b.height = width, height
	b.calls = append(b.calls, "begin")
	return b.beginErr
}

func (b *mockBackend) End() error {
	b.calls = append(b.calls, "end")
	return b.endErr
}

func (b *mockBackend) BeginLayer(name string) {
	b.calls = append(b.calls, "layer "+name)
}

func (b *mockBackend) FillRect(rect debugtex.Box, _ debugtex.RGBA) {
	b.calls = append(b.calls, fmt.Sprintf("rect %v %v", rect.Min, rect.Max))
}

func (b *mockBackend) Line(from, to debugtex.Point, s Stroke) {
	b.calls = append(b.calls, fmt.Sprintf("line %v %v %v", from, to, s.Width))
}

func (b *mockBackend) Circle(center debugtex.Point, radius float64, _ Stroke) {
	b.calls = append(b.calls, fmt.Sprintf("circle %v %v", center, radius))
}

func (b *mockBackend) Arc(center debugtex.Point, radius, start, end float64, _ Stroke) {
	b.calls = append(b.calls, fmt.Sprintf("arc %v %v %v %v", center, radius, start, end))
}

func (b *mockBackend) Text(cmd TextCommand) {
	b.calls = append(b.calls, "text "+cmd.Text)
}
