package gaussblur

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidArgument is returned when a kernel, convolution or blur is requested with bad input.
var ErrInvalidArgument = errors.New("invalid argument")

// Orientation selects the shape of a one dimensional kernel.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// Kernel is an immutable grid of convolution weights stored in row-major order.
type Kernel struct {
	width  int
	height int
	data   []float64
}

// NewKernel creates a kernel of the given size from the first width*height values of data.
// The data is copied, so later changes to the slice do not affect the kernel.
func NewKernel(width, height int, data []float64) (*Kernel, error) {
	if width < 1 || height < 1 {
		return nil, errors.Wrapf(ErrInvalidArgument, "kernel size %dx%d", width, height)
	}
	if len(data) < width*height {
		return nil, errors.Wrapf(ErrInvalidArgument,
			"kernel %dx%d needs %d values, got %d", width, height, width*height, len(data))
	}
	k := &Kernel{
		width:  width,
		height: height,
		data:   make([]float64, width*height),
	}
	copy(k.data, data)

	return k, nil
}

// GaussianWeights samples the Gaussian function at the integer offsets [-radius, radius].
// The standard deviation is fixed to radius/3, so the kernel spans three sigmas on each side.
// The weights are normalized twice: once by the continuous Gaussian constant
// and once by their discrete sum, which makes them add up to 1.
func GaussianWeights(radius int) ([]float64, error) {
	if radius < 1 {
		return nil, errors.Wrapf(ErrInvalidArgument, "radius must be >= 1, got %d", radius)
	}

	size := radius*2 + 1
	sigma := float64(radius) / 3.0
	twoSigmaSquare := 2.0 * sigma * sigma
	sigmaRoot := math.Sqrt(twoSigmaSquare * math.Pi)

	weights := make([]float64, size)
	total := 0.0
	for i := -radius; i <= radius; i++ {
		distance := float64(i * i)
		index := i + radius
		weights[index] = math.Exp(-distance/twoSigmaSquare) / sigmaRoot
		total += weights[index]
	}
	for i := range weights {
		weights[i] /= total
	}

	return weights, nil
}

// BuildKernel returns the Gaussian blur kernel for the radius, shaped as a single row
// (Horizontal) or a single column (Vertical). Both shapes share the same weights.
func BuildKernel(radius int, orientation Orientation) (*Kernel, error) {
	if orientation != Horizontal && orientation != Vertical {
		return nil, errors.Wrapf(ErrInvalidArgument, "unknown kernel orientation %d", int(orientation))
	}
	weights, err := GaussianWeights(radius)
	if err != nil {
		return nil, err
	}

	size := len(weights)
	if orientation == Horizontal {
		return &Kernel{width: size, height: 1, data: weights}, nil
	}
	return &Kernel{width: 1, height: size, data: weights}, nil
}

// OuterProduct combines a horizontal and a vertical kernel into the equivalent
// two dimensional kernel. Convolving with the result gives the same output
// as convolving with h followed by v.
func OuterProduct(h, v *Kernel) (*Kernel, error) {
	if h == nil || v == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "nil kernel")
	}
	if h.height != 1 || v.width != 1 {
		return nil, errors.Wrapf(ErrInvalidArgument,
			"outer product needs a row and a column kernel, got %dx%d and %dx%d",
			h.width, h.height, v.width, v.height)
	}

	k := &Kernel{
		width:  h.width,
		height: v.height,
		data:   make([]float64, h.width*v.height),
	}
	for y := 0; y < k.height; y++ {
		for x := 0; x < k.width; x++ {
			k.data[y*k.width+x] = v.data[y] * h.data[x]
		}
	}
	return k, nil
}

// Width returns the number of kernel columns.
func (k *Kernel) Width() int { return k.width }

// Height returns the number of kernel rows.
func (k *Kernel) Height() int { return k.height }

// XOrigin returns the column of the kernel element aligned with the destination pixel.
func (k *Kernel) XOrigin() int { return (k.width - 1) / 2 }

// YOrigin returns the row of the kernel element aligned with the destination pixel.
func (k *Kernel) YOrigin() int { return (k.height - 1) / 2 }

// At returns the weight at column x and row y.
func (k *Kernel) At(x, y int) float64 {
	return k.data[y*k.width+x]
}

// Data returns a copy of the kernel weights in row-major order.
func (k *Kernel) Data() []float64 {
	data := make([]float64, len(k.data))
	copy(data, k.data)
	return data
}

// Sum returns the sum of all the kernel weights.
func (k *Kernel) Sum() float64 {
	var sum float64
	for _, w := range k.data {
		sum += w
	}
	return sum
}

// Orientation reports the shape of a one dimensional kernel.
// The second value is false for two dimensional and single element kernels.
func (k *Kernel) Orientation() (Orientation, bool) {
	switch {
	case k.height == 1 && k.width > 1:
		return Horizontal, true
	case k.width == 1 && k.height > 1:
		return Vertical, true
	}
	return 0, false
}

func (k *Kernel) String() string {
	return fmt.Sprintf("Kernel(%dx%d)", k.width, k.height)
}
