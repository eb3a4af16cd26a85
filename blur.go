package gaussblur

import (
	"image"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultRadius is the blur radius used when the configuration does not set one.
const DefaultRadius = 1

// Blur options
type Blur struct {
	Radius  int           `toml:"radius"`
	Edge    EdgeCondition `toml:"edge"`
	Workers int           `toml:"workers"`

	// Logger receives a debug entry for every convolution pass. Nil disables logging.
	Logger logrus.FieldLogger `toml:"-"`
}

// GaussianBlur blurs src with the given radius, leaving the pixels
// the kernel cannot fully cover untouched.
func GaussianBlur(src image.Image, radius int) (*image.NRGBA, error) {
	b := &Blur{Radius: radius, Edge: EdgeNoOp}
	return b.Apply(src)
}

// Validate checks the options before any pixel is touched.
func (b *Blur) Validate() error {
	if b.Radius < 1 {
		return errors.Wrapf(ErrInvalidArgument, "radius must be >= 1, got %d", b.Radius)
	}
	if !b.Edge.valid() {
		return errors.Wrapf(ErrInvalidArgument, "unknown edge condition %d", int(b.Edge))
	}
	return nil
}

// Apply runs the separable Gaussian blur: a horizontal pass over src,
// followed by a vertical pass over the horizontal result.
func (b *Blur) Apply(src image.Image) (*image.NRGBA, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "nil source image")
	}

	hk, err := BuildKernel(b.Radius, Horizontal)
	if err != nil {
		return nil, err
	}
	vk, err := BuildKernel(b.Radius, Vertical)
	if err != nil {
		return nil, err
	}

	var (
		dst  *image.NRGBA
		next = src
	)
	for _, k := range []*Kernel{hk, vk} {
		op, err := NewConvolveOp(k, b.Edge)
		if err != nil {
			return nil, err
		}
		op.Workers = b.Workers

		now := time.Now()
		dst = op.Filter(next)
		next = dst

		orientation, _ := k.Orientation()
		b.logger().WithFields(logrus.Fields{
			"pass":    orientation.String(),
			"radius":  b.Radius,
			"edge":    b.Edge.String(),
			"bounds":  dst.Bounds().String(),
			"elapsed": time.Since(now),
		}).Debug("convolution pass done")
	}

	return dst, nil
}

var discardLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

func (b *Blur) logger() logrus.FieldLogger {
	if b.Logger == nil {
		return discardLogger
	}
	return b.Logger
}
