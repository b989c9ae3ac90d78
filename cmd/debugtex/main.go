// Command debugtex regenerates the debug textures in the working directory:
// tex_DebugGrid.svg, tex_DebugUVTiles.svg and tex_DebugAlignment.svg.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/debugtex"
	"github.com/gogpu/debugtex/texture"
)

func main() {
	debugtex.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := newRootCmd(".").Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "debugtex:", err)
		os.Exit(1)
	}
}

// newRootCmd returns the root command, writing textures into dir.
func newRootCmd(dir string) *cobra.Command {
	return &cobra.Command{
		Use:   "debugtex",
		Short: "Regenerate the SVG debug textures",
		Long: `debugtex writes the grid, UV tile and alignment debug textures
used to check texture coordinate mapping on 3D models.
Existing files are replaced.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return texture.Generate(cmd.Context(), dir, debugtex.DefaultConfig())
		},
	}
}
