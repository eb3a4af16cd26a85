/*
Package gaussblur builds Gaussian blur kernels and applies them to in-memory images
as a separable convolution: one horizontal pass followed by one vertical pass.

The kernel for a radius r holds 2*r+1 samples of a Gaussian with sigma = r/3,
normalized so that the weights sum to 1. The same weights are shaped either
as a single row or as a single column:

	hk, err := gaussblur.BuildKernel(3, gaussblur.Horizontal)
	if err != nil {
		// the radius was lower than 1
	}

The convolution itself leaves the pixels which the kernel cannot fully cover
untouched, unless another edge condition is requested:

	b := &gaussblur.Blur{
		Radius: 3,
		Edge:   gaussblur.EdgeNoOp,
	}

	blurred, err := b.Apply(img)
	if err != nil {
		fmt.Printf("Error blurring image: %s", err.Error())
	}
*/
package gaussblur
