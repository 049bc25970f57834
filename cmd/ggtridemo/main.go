// Command ggtridemo renders a synthetic GUI frame through the ggtri backend
// on the software renderer and saves the result as a PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/ggtri"
	"github.com/gogpu/ggtri/render"
)

func main() {
	var (
		width   = flag.Int("width", 640, "image width")
		height  = flag.Int("height", 480, "image height")
		frames  = flag.Int("frames", 3, "number of frames to render")
		config  = flag.String("config", "", "TOML config file")
		output  = flag.String("output", "ggtri.png", "output file")
		verbose = flag.Bool("v", false, "log cache misses")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	ggtri.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(*width, *height, *frames, *config, *output); err != nil {
		log.Fatalf("ggtridemo: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

func run(width, height, frames int, configPath, output string) error {
	cfg := ggtri.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = ggtri.LoadConfig(configPath); err != nil {
			return err
		}
	}

	sw := render.NewSoftwareRenderer(width, height)
	window := gpucontext.NullWindowProvider{W: width, H: height, SF: 1}
	b, err := ggtri.Initialize(sw, window, width, height, demoAtlas(), ggtri.WithConfig(cfg))
	if err != nil {
		return err
	}
	defer b.Shutdown()

	for i := range frames {
		b.NewFrame(nil)
		sw.SetDrawColor(color.NRGBA{R: 24, G: 26, B: 32, A: 255})
		sw.Clear()
		if err := b.Render(buildFrame(float32(width), float32(height), i)); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}

	st := b.Stats()
	slog.Info("ggtridemo: done",
		"frames", frames,
		"rects", st.Rects,
		"rasterized", st.Rasterized,
		"cache_hits", st.CacheHits,
		"uniform_hit_rate", st.Uniform.HitRate,
		"generic_hit_rate", st.Generic.HitRate)

	return savePNG(output, sw.Image())
}

// Atlas layout: the top-left 2x2 block is white, the rest is a checkerboard.
const atlasSize = 16

var whitePixelUV = ggtri.Vec2{X: 0.5 / atlasSize, Y: 0.5 / atlasSize}

func demoAtlas() *ggtri.FontAtlas {
	img := image.NewNRGBA(image.Rect(0, 0, atlasSize, atlasSize))
	for y := range atlasSize {
		for x := range atlasSize {
			c := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			if (x >= 2 || y >= 2) && (x/4+y/4)%2 == 1 {
				c.A = 0
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return &ggtri.FontAtlas{Image: img, WhitePixelUV: whitePixelUV}
}

func pack(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

func vtx(x, y float32, uv ggtri.Vec2, col uint32) ggtri.Vertex {
	return ggtri.Vertex{Pos: ggtri.Vec2{X: x, Y: y}, UV: uv, Col: col}
}

// buildFrame emits a window with a title bar, a checkered panel, a disc made
// of a triangle fan and a shaded triangle. Frame n moves the disc, so its
// triangles hit the cache at new positions.
func buildFrame(w, h float32, n int) *ggtri.DrawData {
	l := &ggtri.DrawList{}
	clip := ggtri.Vec4{X: 0, Y: 0, Z: w, W: h}
	l.PushCommand(clip, ggtri.TextureRef{})

	// Window body and title bar take the rectangle fast path.
	l.PrimRectUV(ggtri.Vec2{X: 20, Y: 20}, ggtri.Vec2{X: w - 20, Y: h - 20}, whitePixelUV, whitePixelUV, pack(48, 52, 64, 255))
	l.PrimRectUV(ggtri.Vec2{X: 20, Y: 20}, ggtri.Vec2{X: w - 20, Y: 44}, whitePixelUV, whitePixelUV, pack(66, 150, 250, 255))

	// Checkered panel sampled from the atlas.
	l.PrimRectUV(ggtri.Vec2{X: 40, Y: 64}, ggtri.Vec2{X: 200, Y: 224},
		ggtri.Vec2{X: 2.0 / atlasSize, Y: 2.0 / atlasSize}, ggtri.Vec2{X: 1, Y: 1}, pack(255, 200, 80, 255))

	// Disc.
	const segments = 24
	cx, cy, r := 320+float32(n*40), float32(160), float32(60)
	fill := pack(240, 80, 90, 255)
	for i := range segments {
		a0 := 2 * math.Pi * float64(i) / segments
		a1 := 2 * math.Pi * float64(i+1) / segments
		l.PrimTriangle(
			vtx(cx, cy, whitePixelUV, fill),
			vtx(cx+r*float32(math.Cos(a0)), cy+r*float32(math.Sin(a0)), whitePixelUV, fill),
			vtx(cx+r*float32(math.Cos(a1)), cy+r*float32(math.Sin(a1)), whitePixelUV, fill),
		)
	}

	// Shaded triangle clipped to the lower half of the window.
	l.PushCommand(ggtri.Vec4{X: 0, Y: h / 2, Z: w, W: h}, ggtri.TextureRef{})
	l.PrimTriangle(
		vtx(w/2, h/2-40, whitePixelUV, pack(255, 0, 0, 255)),
		vtx(w-60, h-40, whitePixelUV, pack(0, 255, 0, 255)),
		vtx(60, h-40, whitePixelUV, pack(0, 0, 255, 200)),
	)

	return &ggtri.DrawData{CmdLists: []*ggtri.DrawList{l}}
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
