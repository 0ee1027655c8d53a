package main

import (
	"github.com/go-gl/mathgl/mgl32"
	opensimplex "github.com/ojrac/opensimplex-go"
)

var (
	sim = opensimplex.New(0)
)

// colorSpeed is how fast the animated color walks through noise space, in
// noise units per second.
const colorSpeed = 0.4

func clamp01(x float32) float32 {
	return mgl32.Clamp(x, 0, 1)
}

func noise2(x, y float32, octaves int, persistence, lacunarity float32) float32 {
	var (
		freq  float32 = 1
		amp   float32 = 1
		max   float32 = 1
		total         = sim.Eval2(float64(x), float64(y))
	)
	for i := 0; i < octaves; i++ {
		freq *= lacunarity
		amp *= persistence
		max += amp
		total += sim.Eval2(float64(x*freq), float64(y*freq)) * float64(amp)
	}
	return clamp01((1 + float32(total)/max) / 2)
}

// animatedColor returns an opaque color that drifts smoothly with t seconds.
// Each channel samples its own row of the noise field.
func animatedColor(t float64) mgl32.Vec4 {
	x := float32(t * colorSpeed)
	return mgl32.Vec4{
		noise2(x, 0, 2, 0.5, 2),
		noise2(x, 17, 2, 0.5, 2),
		noise2(x, 43, 2, 0.5, 2),
		1,
	}
}

// projection maps the [-1,1] square into the framebuffer without stretching
// it, whatever the aspect ratio.
func projection(width, height int) mgl32.Mat4 {
	if width <= 0 || height <= 0 {
		return mgl32.Ident4()
	}
	aspect := float32(width) / float32(height)
	if aspect >= 1 {
		return mgl32.Ortho2D(-aspect, aspect, -1, 1)
	}
	return mgl32.Ortho2D(-1, 1, -1/aspect, 1/aspect)
}
