package cmd

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/maikh/pathtracer/pkg/renderer"
	"github.com/maikh/pathtracer/pkg/scene"
)

var opts struct {
	sceneName    string
	sceneFile    string
	width        int
	samples      int
	depth        int
	workers      int
	seed         int64
	output       string
	format       string
	previewWidth uint
}

var rootCmd = &cobra.Command{
	Use:   "pathtracer",
	Short: "Stochastic path tracer for sphere scenes",
	Long: `pathtracer renders a scene of spheres with diffuse, metal and
dielectric materials to a PNG or PPM image using Monte Carlo path tracing.`,
	SilenceUsage: true,
	RunE:         runRender,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&opts.sceneName, "scene", "default", "Built-in scene: 'default' or 'cover'")
	flags.StringVar(&opts.sceneFile, "scene-file", "", "YAML scene description (overrides --scene)")
	flags.IntVar(&opts.width, "width", 0, "Image width in pixels")
	flags.IntVar(&opts.samples, "samples", 0, "Samples per pixel")
	flags.IntVar(&opts.depth, "depth", 0, "Maximum ray bounce depth")
	flags.IntVar(&opts.workers, "workers", 0, "Render workers (0 = all CPUs)")
	flags.Int64Var(&opts.seed, "seed", 0, "Render seed")
	flags.StringVar(&opts.output, "output", "", "Output file (default output/<scene>/render_<timestamp>.<format>)")
	flags.StringVar(&opts.format, "format", "png", "Output format: 'png' or 'ppm'")
	flags.UintVar(&opts.previewWidth, "preview-width", 0, "Also write a downscaled preview PNG of this width")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	log := logrus.New()

	s, name, err := buildScene()
	if err != nil {
		return err
	}

	settings := s.Settings
	applyOverrides(cmd, &settings)

	if opts.format != "png" && opts.format != "ppm" {
		return fmt.Errorf("unknown output format %q", opts.format)
	}

	outputPath := opts.output
	if outputPath == "" {
		dir := filepath.Join("output", name)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		timestamp := time.Now().Format("20060102_150405")
		outputPath = filepath.Join(dir, fmt.Sprintf("render_%s.%s", timestamp, opts.format))
	}

	log.Infof("rendering scene %q at %dx%d, %d spp, depth %d, seed %d",
		name, settings.Width, settings.Height,
		settings.SamplesPerPixel, settings.MaxDepth, settings.Seed)

	rt := renderer.NewRaytracer(s, settings, log)
	started := time.Now()
	fb := rt.Render()
	log.Infof("render completed in %v", time.Since(started))

	if err := writeOutput(fb, outputPath); err != nil {
		return err
	}
	log.Infof("render saved as %s", outputPath)

	if opts.previewWidth > 0 {
		previewPath := previewPathFor(outputPath)
		if err := writePreview(fb, previewPath, opts.previewWidth); err != nil {
			return err
		}
		log.Infof("preview saved as %s", previewPath)
	}

	return nil
}

// buildScene resolves the scene selection to a loaded scene and a name
// used for the default output directory
func buildScene() (*scene.Scene, string, error) {
	if opts.sceneFile != "" {
		s, err := scene.LoadFile(opts.sceneFile)
		if err != nil {
			return nil, "", err
		}
		name := filepath.Base(opts.sceneFile)
		name = name[:len(name)-len(filepath.Ext(name))]
		return s, name, nil
	}

	switch opts.sceneName {
	case "default":
		return scene.NewDefaultScene(), "default", nil
	case "cover":
		seed := opts.seed
		if seed == 0 {
			seed = renderer.DefaultRenderSettings().Seed
		}
		return scene.NewCoverScene(seed), "cover", nil
	default:
		return nil, "", fmt.Errorf("unknown scene %q (want 'default' or 'cover')", opts.sceneName)
	}
}

// applyOverrides layers explicitly-set flags over the scene's defaults
func applyOverrides(cmd *cobra.Command, settings *renderer.RenderSettings) {
	flags := cmd.Flags()
	if flags.Changed("width") && opts.width > 0 {
		// Preserve the scene's aspect ratio when rescaling
		aspect := float64(settings.Width) / float64(settings.Height)
		settings.Width = opts.width
		settings.Height = int(float64(opts.width) / aspect)
	}
	if flags.Changed("samples") && opts.samples > 0 {
		settings.SamplesPerPixel = opts.samples
	}
	if flags.Changed("depth") && opts.depth > 0 {
		settings.MaxDepth = opts.depth
	}
	if flags.Changed("workers") {
		settings.Workers = opts.workers
	}
	if flags.Changed("seed") {
		settings.Seed = opts.seed
	}
}

func writeOutput(fb *renderer.Framebuffer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if opts.format == "ppm" {
		return fb.WritePPM(f)
	}
	return fb.WritePNG(f)
}

func writePreview(fb *renderer.Framebuffer, path string, width uint) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating preview file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, fb.Preview(width)); err != nil {
		return fmt.Errorf("encoding preview: %w", err)
	}
	return nil
}

func previewPathFor(outputPath string) string {
	ext := filepath.Ext(outputPath)
	return outputPath[:len(outputPath)-len(ext)] + "_preview.png"
}
