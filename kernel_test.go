package gaussblur

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKernel_WeightsShouldSumToOne(t *testing.T) {
	assert := assert.New(t)

	for radius := 1; radius <= 100; radius++ {
		weights, err := GaussianWeights(radius)
		require.NoError(t, err)

		var sum float64
		for _, w := range weights {
			sum += w
		}
		assert.InDelta(1.0, sum, 1e-6, "radius %d", radius)
	}
}

func TestKernel_WeightsShouldBeSymmetricAndPositive(t *testing.T) {
	assert := assert.New(t)

	for radius := 1; radius <= 100; radius++ {
		weights, err := GaussianWeights(radius)
		require.NoError(t, err)
		require.Len(t, weights, 2*radius+1)

		for i := range weights {
			assert.Equal(weights[i], weights[len(weights)-1-i], "radius %d, index %d", radius, i)
			assert.Greater(weights[i], 0.0, "radius %d, index %d", radius, i)
		}
	}
}

func TestKernel_WeightsShouldDecreaseFromCenter(t *testing.T) {
	weights, err := GaussianWeights(5)
	require.NoError(t, err)

	for i := 1; i <= 5; i++ {
		assert.Less(t, weights[i-1], weights[i])
	}
}

func TestKernel_InvalidRadius(t *testing.T) {
	assert := assert.New(t)

	for _, radius := range []int{0, -1, -100} {
		k, err := BuildKernel(radius, Horizontal)
		assert.ErrorIs(err, ErrInvalidArgument)
		assert.Nil(k)

		k, err = BuildKernel(radius, Vertical)
		assert.ErrorIs(err, ErrInvalidArgument)
		assert.Nil(k)

		weights, err := GaussianWeights(radius)
		assert.ErrorIs(err, ErrInvalidArgument)
		assert.Nil(weights)
	}
}

func TestKernel_InvalidOrientation(t *testing.T) {
	k, err := BuildKernel(2, Orientation(7))
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Nil(t, k)
}

func TestKernel_RadiusOne(t *testing.T) {
	assert := assert.New(t)

	sigma := 1.0 / 3.0
	twoSigmaSquare := 2 * sigma * sigma
	norm := math.Sqrt(twoSigmaSquare * math.Pi)

	assert.InDelta(0.2222, twoSigmaSquare, 1e-4)
	assert.InDelta(0.8355, norm, 1e-4)

	side := math.Exp(-1/twoSigmaSquare) / norm
	center := 1 / norm
	total := 2*side + center

	k, err := BuildKernel(1, Horizontal)
	require.NoError(t, err)

	weights := k.Data()
	require.Len(t, weights, 3)
	assert.InDelta(side/total, weights[0], 1e-12)
	assert.InDelta(center/total, weights[1], 1e-12)
	assert.InDelta(side/total, weights[2], 1e-12)

	assert.Equal(weights[0], weights[2])
	assert.Less(weights[0], weights[1])
	assert.InDelta(1.0, weights[0]+weights[1]+weights[2], 1e-12)
}

func TestKernel_Orientation(t *testing.T) {
	assert := assert.New(t)

	for _, radius := range []int{1, 2, 7, 30} {
		hk, err := BuildKernel(radius, Horizontal)
		require.NoError(t, err)
		vk, err := BuildKernel(radius, Vertical)
		require.NoError(t, err)

		size := 2*radius + 1
		assert.Equal(size, hk.Width())
		assert.Equal(1, hk.Height())
		assert.Equal(1, vk.Width())
		assert.Equal(size, vk.Height())
		assert.Equal(hk.Data(), vk.Data())

		o, ok := hk.Orientation()
		assert.True(ok)
		assert.Equal(Horizontal, o)
		o, ok = vk.Orientation()
		assert.True(ok)
		assert.Equal(Vertical, o)

		assert.Equal(radius, hk.XOrigin())
		assert.Equal(0, hk.YOrigin())
		assert.Equal(0, vk.XOrigin())
		assert.Equal(radius, vk.YOrigin())

		for i := 0; i < size; i++ {
			assert.Equal(hk.At(i, 0), vk.At(0, i))
		}
	}
}

func TestKernel_ShouldBeIdempotent(t *testing.T) {
	for _, radius := range []int{1, 3, 12} {
		k1, err := BuildKernel(radius, Vertical)
		require.NoError(t, err)
		k2, err := BuildKernel(radius, Vertical)
		require.NoError(t, err)

		d1, d2 := k1.Data(), k2.Data()
		for i := range d1 {
			assert.Equal(t, math.Float64bits(d1[i]), math.Float64bits(d2[i]))
		}
	}
}

func TestKernel_DataShouldBeCopied(t *testing.T) {
	k, err := BuildKernel(2, Horizontal)
	require.NoError(t, err)

	data := k.Data()
	data[0] = 42
	assert.NotEqual(t, 42.0, k.At(0, 0))

	src := []float64{1, 2, 3, 4}
	nk, err := NewKernel(2, 2, src)
	require.NoError(t, err)
	src[3] = 0
	assert.Equal(t, 4.0, nk.At(1, 1))
	assert.Equal(t, 10.0, nk.Sum())
}

func TestKernel_NewKernelValidation(t *testing.T) {
	assert := assert.New(t)

	_, err := NewKernel(0, 3, []float64{1, 2, 3})
	assert.ErrorIs(err, ErrInvalidArgument)

	_, err = NewKernel(3, 3, []float64{1, 2, 3})
	assert.ErrorIs(err, ErrInvalidArgument)

	k, err := NewKernel(1, 1, []float64{1})
	assert.NoError(err)
	_, ok := k.Orientation()
	assert.False(ok)
}

func TestKernel_OuterProduct(t *testing.T) {
	assert := assert.New(t)

	hk, err := BuildKernel(2, Horizontal)
	require.NoError(t, err)
	vk, err := BuildKernel(2, Vertical)
	require.NoError(t, err)

	k, err := OuterProduct(hk, vk)
	require.NoError(t, err)
	assert.Equal(5, k.Width())
	assert.Equal(5, k.Height())
	assert.InDelta(1.0, k.Sum(), 1e-12)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			assert.Equal(vk.At(0, y)*hk.At(x, 0), k.At(x, y))
			assert.Equal(k.At(x, y), k.At(y, x))
		}
	}

	_, err = OuterProduct(vk, hk)
	assert.ErrorIs(err, ErrInvalidArgument)
	_, err = OuterProduct(nil, vk)
	assert.ErrorIs(err, ErrInvalidArgument)
}

func TestKernel_ConcurrentBuild(t *testing.T) {
	expected, err := GaussianWeights(9)
	require.NoError(t, err)

	errs := make(chan error, 16)
	results := make(chan []float64, 16)
	for i := 0; i < 16; i++ {
		go func(o Orientation) {
			k, err := BuildKernel(9, o)
			if err != nil {
				errs <- err
				return
			}
			results <- k.Data()
		}(Orientation(i % 2))
	}

	for i := 0; i < 16; i++ {
		select {
		case err := <-errs:
			t.Fatal(err)
		case data := <-results:
			assert.Equal(t, expected, data)
		}
	}
}
