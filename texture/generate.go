package texture

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gogpu/debugtex"
	"github.com/gogpu/debugtex/recording"
	"github.com/gogpu/debugtex/recording/backends/svg"
)

// Output is one texture file produced by Generate.
type Output struct {
	// Name is the file name, relative to the output directory.
	Name string
	// Build records the texture.
	Build func(cfg debugtex.Config) (*recording.Recording, error)
}

// Outputs returns the shipped textures in generation order.
func Outputs() []Output {
	return []Output{
		{Name: "tex_DebugGrid.svg", Build: Grid},
		{Name: "tex_DebugUVTiles.svg", Build: func(cfg debugtex.Config) (*recording.Recording, error) {
			return UVTiles(cfg, ModeCells)
		}},
		{Name: "tex_DebugAlignment.svg", Build: func(cfg debugtex.Config) (*recording.Recording, error) {
			return UVTiles(cfg, ModeAlignment)
		}},
	}
}

// GenerateOption configures Generate.
type GenerateOption func(*generateOptions)

type generateOptions struct {
	backend string
	outputs []Output
}

// WithBackend selects the registered backend used to serialize textures.
// The backend must implement recording.FileBackend. The default is "svg".
func WithBackend(name string) GenerateOption {
	return func(o *generateOptions) {
		o.backend = name
	}
}

// WithOutputs replaces the list of textures to generate.
func WithOutputs(outputs ...Output) GenerateOption {
	return func(o *generateOptions) {
		o.outputs = outputs
	}
}

// Generate writes every output into dir, one file after another.
// An unregistered backend is rejected before any file is written.
// Otherwise Generate stops at the first failure and returns an error naming
// the file.
// Files already written are kept; the failed file is never left partially
// written.
func Generate(ctx context.Context, dir string, cfg debugtex.Config, opts ...GenerateOption) error {
	o := generateOptions{
		backend: svg.Name,
		outputs: Outputs(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if !recording.IsRegistered(o.backend) {
		return fmt.Errorf("texture: unknown backend %q, registered: %s",
			o.backend, strings.Join(recording.Backends(), ", "))
	}

	for _, out := range o.outputs {
		path := filepath.Join(dir, out.Name)
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("texture: generate %s: %w", path, err)
		}
		if err := generateOne(o.backend, cfg, out, path); err != nil {
			return fmt.Errorf("texture: generate %s: %w", path, err)
		}
	}
	return nil
}

func generateOne(backend string, cfg debugtex.Config, out Output, path string) error {
	rec, err := out.Build(cfg)
	if err != nil {
		return err
	}
	return Render(rec, backend, path)
}

// Render plays rec back to a new instance of the named backend and saves
// the result to path.
func Render(rec *recording.Recording, backend, path string) error {
	b, err := recording.NewBackend(backend)
	if err != nil {
		return err
	}
	fb, ok := b.(recording.FileBackend)
	if !ok {
		return fmt.Errorf("texture: backend %q cannot write files", backend)
	}

	log := debugtex.Logger()
	for _, name := range rec.Layers() {
		log.Debug("texture: layer", "path", path, "layer", name, "elements", len(rec.Layer(name)))
	}

	if err := rec.Playback(fb); err != nil {
		return err
	}
	if err := fb.SaveToFile(path); err != nil {
		return err
	}

	log.Info("texture: wrote file", "path", path, "elements", rec.Len()-len(rec.Layers()))
	return nil
}
