package ggtri

import (
	"time"

	"github.com/gogpu/gpucontext"
)

// Option configures a Backend during Initialize.
//
// Example:
//
//	b, err := ggtri.Initialize(renderer, window, w, h, atlas,
//	    ggtri.WithUniformCacheSize(1024),
//	    ggtri.WithVerticalFlipFromV(true))
type Option func(*options)

// options holds optional configuration for Backend creation.
type options struct {
	config   Config
	platform gpucontext.PlatformProvider
	now      func() time.Time
}

// defaultOptions returns the default backend options.
func defaultOptions() options {
	return options{
		config: DefaultConfig(),
		now:    time.Now,
	}
}

// WithConfig replaces the whole configuration, for example one read with
// LoadConfig. Options applied after it still override single fields.
func WithConfig(c Config) Option {
	return func(o *options) {
		o.config = c
	}
}

// WithUniformCacheSize sets the capacity of the uniform-color triangle cache.
func WithUniformCacheSize(n int) Option {
	return func(o *options) {
		o.config.UniformCacheSize = n
	}
}

// WithGenericCacheSize sets the capacity of the textured triangle cache.
func WithGenericCacheSize(n int) Option {
	return func(o *options) {
		o.config.GenericCacheSize = n
	}
}

// WithVerticalFlipFromV selects the V coordinate for vertical flip
// detection in the rectangle fast path.
func WithVerticalFlipFromV(on bool) Option {
	return func(o *options) {
		o.config.VerticalFlipFromV = on
	}
}

// WithPlatform sets the platform provider used for the mouse cursor and
// the clipboard. Without it both are no-ops.
func WithPlatform(p gpucontext.PlatformProvider) Option {
	return func(o *options) {
		o.platform = p
	}
}

// WithClock replaces the clock NewFrame uses to compute DeltaTime.
// It is meant for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}
