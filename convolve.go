package gaussblur

import (
	"image"
	"runtime"
	"sync"

	"github.com/anthonynsimon/bild/convolution"
	"github.com/disintegration/imaging"
	"github.com/esimov/gaussblur/utils"
	"github.com/pkg/errors"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// ConvolveOp applies a kernel to an image. Every channel, alpha included,
// is convolved independently on non-premultiplied pixel values.
type ConvolveOp struct {
	// Workers is the number of goroutines sharing the image rows.
	// Zero or a value above 20 uses the number of CPUs.
	Workers int

	kernel *Kernel
	edge   EdgeCondition
}

// NewConvolveOp returns a convolution with the given kernel and edge condition.
func NewConvolveOp(k *Kernel, edge EdgeCondition) (*ConvolveOp, error) {
	if k == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "nil kernel")
	}
	if !edge.valid() {
		return nil, errors.Wrapf(ErrInvalidArgument, "unknown edge condition %d", int(edge))
	}
	return &ConvolveOp{kernel: k, edge: edge}, nil
}

// Kernel returns the kernel used by the operation.
func (op *ConvolveOp) Kernel() *Kernel { return op.kernel }

// Edge returns the edge condition used by the operation.
func (op *ConvolveOp) Edge() EdgeCondition { return op.edge }

// Filter convolves src and returns the result as a new image of the same size
// with its min-point at (0, 0). The source image is never modified.
func (op *ConvolveOp) Filter(src image.Image) *image.NRGBA {
	img := toNRGBA(src)

	switch op.edge {
	case EdgeExtend, EdgeWrap:
		return op.filterUnbounded(img)
	default:
		return op.filterBounded(img)
	}
}

// filterBounded convolves only the pixels for which the whole kernel fits inside the image.
// The remaining border pixels are copied from src or left zeroed, depending on the edge condition.
func (op *ConvolveOp) filterBounded(src *image.NRGBA) *image.NRGBA {
	var (
		k    = op.kernel
		w, h = src.Bounds().Dx(), src.Bounds().Dy()
		dst  = image.NewNRGBA(image.Rect(0, 0, w, h))

		minX = k.XOrigin()
		minY = k.YOrigin()
		maxX = w - (k.width - 1 - minX)
		maxY = h - (k.height - 1 - minY)
	)

	parallel(h, op.workers(), func(y int) {
		srcRow := src.Pix[y*src.Stride : y*src.Stride+w*4]
		dstRow := dst.Pix[y*dst.Stride : y*dst.Stride+w*4]

		for x := 0; x < w; x++ {
			off := x * 4
			if x < minX || x >= maxX || y < minY || y >= maxY {
				if op.edge == EdgeNoOp {
					copy(dstRow[off:off+4], srcRow[off:off+4])
				}
				continue
			}

			var r, g, b, a float64
			for ky := 0; ky < k.height; ky++ {
				si := (y-minY+ky)*src.Stride + (x-minX)*4
				for kx := 0; kx < k.width; kx++ {
					weight := k.data[ky*k.width+kx]
					s := src.Pix[si : si+4 : si+4]
					r += float64(s[0]) * weight
					g += float64(s[1]) * weight
					b += float64(s[2]) * weight
					a += float64(s[3]) * weight
					si += 4
				}
			}

			dstRow[off+0] = clampUint8(r)
			dstRow[off+1] = clampUint8(g)
			dstRow[off+2] = clampUint8(b)
			dstRow[off+3] = clampUint8(a)
		}
	})

	return dst
}

// filterUnbounded hands the convolution over to bild, which extends
// or wraps the source coordinates falling outside of the image.
func (op *ConvolveOp) filterUnbounded(src *image.NRGBA) *image.NRGBA {
	k := convolution.NewKernel(op.kernel.width, op.kernel.height)
	copy(k.Matrix, op.kernel.data)

	res := convolution.Convolve(src, k, &convolution.Options{
		Wrap: op.edge == EdgeWrap,
	})
	return imaging.Clone(res)
}

func (op *ConvolveOp) workers() int {
	if op.Workers <= 0 || op.Workers > maxWorkers {
		return runtime.NumCPU()
	}
	return op.Workers
}

// parallel calls fn for every row in [0, rows), spreading the rows over the given number of workers.
func parallel(rows, workers int, fn func(y int)) {
	workers = utils.Min(workers, rows)
	if workers <= 1 {
		for y := 0; y < rows; y++ {
			fn(y)
		}
		return
	}

	ys := make(chan int, rows)
	for y := 0; y < rows; y++ {
		ys <- y
	}
	close(ys)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for y := range ys {
				fn(y)
			}
		}()
	}
	wg.Wait()
}
