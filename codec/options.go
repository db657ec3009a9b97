package codec

// Option configures encoding.
//
// Example:
//
//	// JPEG at quality 80, resampled to 640x480
//	err := codec.Save("out.jpg", g, codec.WithQuality(80), codec.WithSize(640, 480))
type Option func(*options)

// options holds optional encoder configuration.
type options struct {
	quality   int
	width     int
	height    int
	format    Format
	formatSet bool
}

// DefaultQuality is the JPEG quality used when WithQuality is not given.
const DefaultQuality = 95

// defaultOptions returns the default encoder options.
func defaultOptions() options {
	return options{
		quality: DefaultQuality,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithQuality sets the JPEG quality, clamped to 1..100. Other formats
// ignore it.
func WithQuality(q int) Option {
	return func(o *options) {
		o.quality = min(max(q, 1), 100)
	}
}

// WithSize resamples the grid to width x height before encoding.
// A zero or negative value leaves the size unchanged.
func WithSize(width, height int) Option {
	return func(o *options) {
		if width > 0 && height > 0 {
			o.width, o.height = width, height
		}
	}
}

// WithFormat forces the output format instead of deriving it from the
// file extension in Save.
func WithFormat(f Format) Option {
	return func(o *options) {
		o.format = f
		o.formatSet = true
	}
}
