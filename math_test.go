package main

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func project(m mgl32.Mat4, x, y float32) mgl32.Vec2 {
	v := m.Mul4x1(mgl32.Vec4{x, y, 0, 1})
	return mgl32.Vec2{v.X() / v.W(), v.Y() / v.W()}
}

func TestProjectionKeepsAspect(t *testing.T) {
	cases := []struct {
		w, h int
		in   mgl32.Vec2
		out  mgl32.Vec2
	}{
		{640, 640, mgl32.Vec2{0.5, 0.5}, mgl32.Vec2{0.5, 0.5}},
		{800, 400, mgl32.Vec2{1, 1}, mgl32.Vec2{0.5, 1}},
		{400, 800, mgl32.Vec2{1, 1}, mgl32.Vec2{1, 0.5}},
		{0, 480, mgl32.Vec2{0.3, -0.2}, mgl32.Vec2{0.3, -0.2}},
	}
	for _, c := range cases {
		got := project(projection(c.w, c.h), c.in.X(), c.in.Y())
		assert.True(t, got.ApproxEqual(c.out), "%dx%d: %v != %v", c.w, c.h, got, c.out)
	}
}

func TestAnimatedColor(t *testing.T) {
	prev := animatedColor(0)
	for i := 0; i < 600; i++ {
		tm := float64(i) / 60
		c := animatedColor(tm)
		for j := 0; j < 3; j++ {
			assert.True(t, c[j] >= 0 && c[j] <= 1, "channel %d at %v: %v", j, tm, c[j])
			// one frame apart stays close
			assert.InDelta(t, prev[j], c[j], 0.1)
		}
		assert.Equal(t, float32(1), c[3])
		prev = c
	}
	assert.Equal(t, animatedColor(2.5), animatedColor(2.5))
}
