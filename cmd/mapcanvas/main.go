// Command mapcanvas renders transit map documents to SVG, PNG or PDF.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/crederauk/svgmapcanvas/internal/config"
	"github.com/crederauk/svgmapcanvas/mapcanvas"
	"github.com/crederauk/svgmapcanvas/mapdoc"
	"github.com/crederauk/svgmapcanvas/mappdf"
	"github.com/crederauk/svgmapcanvas/mapraster"
	"github.com/crederauk/svgmapcanvas/mapsvg"
)

var version = "dev"

func main() {
	if err := newRootCmd(config.Load()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:          "mapcanvas",
		Short:        "Render schematic transit maps",
		SilenceUsage: true,
	}
	root.AddCommand(newRenderCmd(cfg), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "mapcanvas", version)
		},
	}
}

type renderOptions struct {
	output string
	format string
	strict bool
	width  float64
	height float64
}

func newRenderCmd(cfg *config.Config) *cobra.Command {
	opts := renderOptions{
		output: "-",
		format: cfg.Format,
		strict: cfg.Strict,
		width:  cfg.Width,
		height: cfg.Height,
	}
	cmd := &cobra.Command{
		Use:   "render <input>",
		Short: "Render a map document (.xml, .yaml, .yml or .json)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
				Level(cfg.LogLevel).With().Timestamp().Logger()
			return runRender(cmd.OutOrStdout(), args[0], opts, logger)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", opts.output, "output file, - for stdout")
	flags.StringVarP(&opts.format, "format", "f", opts.format, "output format: svg, png or pdf")
	flags.BoolVar(&opts.strict, "strict", opts.strict, "reject unknown document elements")
	flags.Float64Var(&opts.width, "width", opts.width, "output width, when the document has none")
	flags.Float64Var(&opts.height, "height", opts.height, "output height, when the document has none")
	return cmd
}

type encodeFunc func(w io.Writer, s *mapcanvas.Scene) error

var encoders = map[string]encodeFunc{
	"svg": mapsvg.Encode,
	"png": mapraster.RenderPNG,
	"pdf": func(w io.Writer, s *mapcanvas.Scene) error { return mappdf.Render(s, w) },
}

func runRender(stdout io.Writer, input string, opts renderOptions, logger zerolog.Logger) error {
	encode, ok := encoders[strings.ToLower(opts.format)]
	if !ok {
		return fmt.Errorf("unknown format %q", opts.format)
	}

	errMode := mapdoc.WarnErrorMode
	if opts.strict {
		errMode = mapdoc.StrictErrorMode
	}
	reader := &mapdoc.Reader{ErrorMode: errMode, Logger: logger}
	m, err := reader.Read(input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", input, err)
	}
	if m.Width == 0 {
		m.Width = opts.width
	}
	if m.Height == 0 {
		m.Height = opts.height
	}

	scene, err := mapcanvas.New(mapcanvas.WithLogger(logger)).Render(*m)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", input, err)
	}

	if opts.output == "-" || opts.output == "" {
		if err := encode(stdout, scene); err != nil {
			return fmt.Errorf("writing %s: %w", opts.format, err)
		}
	} else if err := writeFile(opts.output, scene, encode); err != nil {
		return err
	}
	logger.Info().
		Str("input", input).
		Str("format", opts.format).
		Int("stations", len(scene.Stations)).
		Int("vehicles", len(scene.Vehicles)).
		Msg("map rendered")
	return nil
}

// writeFile encodes scene into path. A failed close is reported since
// it may lose buffered output.
func writeFile(path string, scene *mapcanvas.Scene, encode encodeFunc) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f, scene); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
