// Command rampgen bakes a color ramp document into a texture, shader and
// editor preview.
//
// Usage:
//
//	rampgen -in ramp.json -out ramp.png -height 16 -preview
//	rampgen -in ramp.json -wgsl ramp.wgsl -editor editor.png -watch
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"charm.land/lipgloss/v2"

	"github.com/gogpu/colorramp"
	"github.com/gogpu/colorramp/editor"
	"github.com/gogpu/colorramp/internal/watch"
	"github.com/gogpu/colorramp/material"
	"github.com/gogpu/colorramp/paint"
	_ "github.com/gogpu/colorramp/paint/raster"
)

type config struct {
	in       string
	out      string
	height   int
	preview  bool
	columns  int
	wgsl     string
	validate bool
	editor   string
	backend  string
	watch    bool
}

func main() {
	var (
		cfg     config
		verbose = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.StringVar(&cfg.in, "in", "", "ramp document (JSON); empty for the default black-to-white ramp")
	flag.StringVar(&cfg.out, "out", "ramp.png", "texture PNG output; empty to skip")
	flag.IntVar(&cfg.height, "height", 1, "rows in the texture PNG")
	flag.BoolVar(&cfg.preview, "preview", false, "print a swatch of the ramp to the terminal")
	flag.IntVar(&cfg.columns, "columns", 64, "swatch width in terminal cells")
	flag.StringVar(&cfg.wgsl, "wgsl", "", "WGSL shader output; empty to skip")
	flag.BoolVar(&cfg.validate, "validate", true, "validate the shader with naga")
	flag.StringVar(&cfg.editor, "editor", "", "editor preview PNG output; empty to skip")
	flag.StringVar(&cfg.backend, "backend", "raster", "paint backend for the editor preview")
	flag.BoolVar(&cfg.watch, "watch", false, "regenerate whenever -in changes")
	flag.Parse()

	if *verbose {
		colorramp.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := generate(cfg, os.Stdout); err != nil {
		log.Fatalf("rampgen: %v", err)
	}
	if !cfg.watch {
		return
	}
	if cfg.in == "" {
		log.Fatal("rampgen: -watch needs -in")
	}

	w, err := watch.New(cfg.in, 0, func() error {
		if err := generate(cfg, os.Stdout); err != nil {
			return err
		}
		log.Printf("rampgen: regenerated from %s", cfg.in)
		return nil
	}, func(err error) {
		log.Printf("rampgen: %v", err)
	})
	if err != nil {
		log.Fatalf("rampgen: %v", err)
	}
	w.Start()
	defer w.Stop()

	log.Printf("rampgen: watching %s", cfg.in)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
}

// generate loads the document and writes every requested output.
func generate(cfg config, stdout io.Writer) error {
	doc, err := loadDocument(cfg.in)
	if err != nil {
		return err
	}

	node := material.New(material.WithShaderValidation(cfg.validate))
	defer node.Close()
	if err := node.Load(doc); err != nil {
		return err
	}
	tex := node.Texture()

	if cfg.out != "" {
		if err := writePNG(cfg.out, tex.Image(cfg.height)); err != nil {
			return err
		}
	}
	if cfg.preview {
		if _, err := lipgloss.Fprintln(stdout, swatch(tex, cfg.columns)); err != nil {
			return err
		}
	}
	if cfg.wgsl != "" {
		node.FactorConnected = true
		shader, err := node.Compile()
		if err != nil {
			return err
		}
		if err := os.WriteFile(cfg.wgsl, []byte(shader.WGSL), 0o644); err != nil {
			return fmt.Errorf("write shader: %w", err)
		}
	}
	if cfg.editor != "" {
		if err := renderEditor(cfg.editor, cfg.backend, node); err != nil {
			return err
		}
	}
	return nil
}

func loadDocument(path string) (*colorramp.Document, error) {
	if path == "" {
		return colorramp.NewDocument(colorramp.NewStopSet(), colorramp.InterpLinear, false), nil
	}
	return colorramp.LoadDocument(path)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("write png %s: %w", path, err)
	}
	return f.Close()
}

// pngSaver is implemented by paint backends that produce an image.
type pngSaver interface {
	SavePNG(path string) error
}

// renderEditor paints the editor widget for the node's curve and saves it.
func renderEditor(path, backendName string, node *material.Node) error {
	backend, err := paint.NewBackend(backendName)
	if err != nil {
		return err
	}
	saver, ok := backend.(pngSaver)
	if !ok {
		return fmt.Errorf("paint backend %q cannot write PNG files", backendName)
	}

	var opts []editor.Option
	if m, err := paint.DefaultMeasurer(); err == nil {
		opts = append(opts, editor.WithTextMeasurer(m))
	}
	ctrl := editor.New(node.Curve(), opts...)
	if err := ctrl.Paint(editor.DesiredSize()).Playback(backend); err != nil {
		return fmt.Errorf("paint editor: %w", err)
	}
	return saver.SavePNG(path)
}

// swatch renders the texture as a row of colored terminal cells.
func swatch(tex *colorramp.Texture, columns int) string {
	if tex == nil || tex.Width == 0 {
		return ""
	}
	if columns < 1 {
		columns = 1
	}
	var b strings.Builder
	for i := 0; i < columns; i++ {
		x := i * tex.Width / columns
		b.WriteString(lipgloss.NewStyle().Background(cellColor(tex, x)).Render(" "))
	}
	return b.String()
}

// cellColor returns texel x as an opaque sRGB color for the terminal.
func cellColor(tex *colorramp.Texture, x int) color.Color {
	c := tex.At(x)
	if !tex.SRGB {
		linear := colorramp.RGB(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
		c = linear.Encode(true)
	}
	c.A = 255
	return c
}
