package main

import (
	"strings"

	"github.com/pkg/errors"
)

// Scene is a static piece of 2d geometry. Positions are x,y pairs; when
// Indices is empty the vertices are drawn in order.
type Scene struct {
	Name      string
	Positions []float32
	Indices   []uint32
}

var (
	triangleScene = &Scene{
		Name: "triangle",
		Positions: []float32{
			-0.5, -0.5,
			0.0, 0.5,
			0.5, -0.5,
		},
	}

	quadScene = &Scene{
		Name: "quad",
		Positions: []float32{
			-0.5, -0.5, // 0
			0.5, -0.5, // 1
			0.5, 0.5, // 2
			-0.5, 0.5, // 3
		},
		Indices: []uint32{
			0, 1, 2,
			2, 3, 0,
		},
	}

	scenes = []*Scene{triangleScene, quadScene}
)

func (s *Scene) Indexed() bool {
	return len(s.Indices) != 0
}

func (s *Scene) Vertices() int {
	return len(s.Positions) / 2
}

// DrawCount is the count passed to the draw call.
func (s *Scene) DrawCount() int32 {
	if s.Indexed() {
		return int32(len(s.Indices))
	}
	return int32(s.Vertices())
}

func FindScene(name string) (int, error) {
	for i, s := range scenes {
		if strings.EqualFold(s.Name, name) {
			return i, nil
		}
	}
	names := make([]string, len(scenes))
	for i, s := range scenes {
		names[i] = s.Name
	}
	return -1, errors.Errorf("unknown scene %q, want one of %s", name, strings.Join(names, ", "))
}
