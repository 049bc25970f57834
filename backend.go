package ggtri

import (
	"time"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/ggtri/render"
)

// Backend draws a GUI library's triangle output through a render.Renderer.
//
// Rectangles made of two triangles are drawn with one fill or one blit.
// Every other triangle is rasterized once into a texture the size of its
// bounding box, cached by its shape relative to that box, and blitted;
// an identical triangle anywhere on screen reuses the cached texture.
//
// Backend is not safe for concurrent use. All calls must come from the
// goroutine that owns the renderer.
type Backend struct {
	device *Device
	atlas  *uploadedAtlas
	cfg    Config
	io     *IO

	window gpucontext.WindowProvider
	now    func() time.Time
	closed bool
}

// Initialize creates a backend drawing through r. It uploads the font
// atlas and sets up the IO state for a width x height window.
//
// A width or height <= 0 takes the display size from r.OutputSize.
//
// window is optional. When it also implements gpucontext.PlatformProvider
// and WithPlatform is not given, it provides the cursor and clipboard.
func Initialize(r render.Renderer, window gpucontext.WindowProvider, width, height int, atlas *FontAtlas, opts ...Option) (*Backend, error) {
	if r == nil {
		return nil, ErrNilRenderer
	}
	if atlas == nil || atlas.Image == nil {
		return nil, ErrNilAtlas
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.config.Validate(); err != nil {
		return nil, err
	}
	if o.platform == nil {
		if pp, ok := window.(gpucontext.PlatformProvider); ok {
			o.platform = pp
		}
	}

	if width <= 0 || height <= 0 {
		width, height = r.OutputSize()
	}

	up, err := uploadAtlas(r, atlas)
	if err != nil {
		return nil, err
	}

	b := &Backend{
		device: newDevice(r, o.config),
		atlas:  up,
		cfg:    o.config,
		io:     newIO(o.platform),
		window: window,
		now:    o.now,
	}
	b.io.DisplaySize = Vec2{X: float32(width), Y: float32(height)}

	aw, ah := up.size()
	Logger().Info("ggtri: initialized",
		"display", [2]int{width, height},
		"atlas", [2]int{aw, ah},
		"uniform_cache", o.config.UniformCacheSize,
		"generic_cache", o.config.GenericCacheSize)
	return b, nil
}

// Shutdown releases every cached triangle texture and the atlas texture.
// It is safe to call more than once.
func (b *Backend) Shutdown() {
	if b.closed {
		return
	}
	b.closed = true

	st := b.device.Stats()
	b.device.clearCaches()
	b.atlas.release()
	Logger().Info("ggtri: shut down",
		"rasterized", st.Rasterized,
		"cache_hits", st.CacheHits,
		"rects", st.Rects)
}

// NewFrame prepares the IO state for a new GUI frame: display size and
// scale from window, frame time, mouse position and buttons, and the
// platform cursor. A nil window uses the one given to Initialize.
func (b *Backend) NewFrame(window gpucontext.WindowProvider) {
	if window == nil {
		window = b.window
	}
	b.io.newFrame(window, b.now())
}

// Render draws data. The renderer's blend mode, draw color, clip
// rectangle and render target are restored before Render returns, also
// when a user callback panics.
func (b *Backend) Render(data *DrawData) error {
	if b.closed {
		return ErrShutdown
	}
	if data == nil {
		return nil
	}

	r := b.device.renderer
	blend := r.BlendMode()
	drawColor := r.DrawColor()
	clip, clipOn := r.ClipRect()
	target := r.RenderTarget()

	defer func() {
		b.device.DisableClip()
		if err := r.SetRenderTarget(target); err != nil {
			Logger().Warn("ggtri: restore render target", "error", err)
		}
		if clipOn {
			r.SetClipRect(&clip)
		} else {
			r.SetClipRect(nil)
		}
		r.SetDrawColor(drawColor)
		r.SetBlendMode(blend)
	}()

	r.SetBlendMode(render.BlendAlpha)
	b.device.beginFrame()
	for _, l := range data.CmdLists {
		if l != nil {
			b.renderList(l)
		}
	}
	return nil
}

// IO returns the input and display state shared with the GUI library.
func (b *Backend) IO() *IO {
	return b.io
}

// Stats returns the drawing counters.
func (b *Backend) Stats() Stats {
	return b.device.Stats()
}

// Config returns the configuration the backend was created with.
func (b *Backend) Config() Config {
	return b.cfg
}

// Device returns the render-target wrapper the backend draws through.
func (b *Backend) Device() *Device {
	return b.device
}

// FontTexture returns the uploaded atlas texture, or nil after Shutdown.
func (b *Backend) FontTexture() render.Texture {
	return b.atlas.tex
}
