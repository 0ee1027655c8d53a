package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenes(t *testing.T) {
	assert.False(t, triangleScene.Indexed())
	assert.Equal(t, 3, triangleScene.Vertices())
	assert.Equal(t, int32(3), triangleScene.DrawCount())

	assert.True(t, quadScene.Indexed())
	assert.Equal(t, 4, quadScene.Vertices())
	assert.Equal(t, int32(6), quadScene.DrawCount())
}

func TestSceneIndicesInRange(t *testing.T) {
	for _, s := range scenes {
		require.Zero(t, len(s.Positions)%2, s.Name)
		if s.Indexed() {
			require.Zero(t, len(s.Indices)%3, s.Name)
		} else {
			require.Zero(t, s.Vertices()%3, s.Name)
		}
		for _, i := range s.Indices {
			assert.Less(t, int(i), s.Vertices(), s.Name)
		}
	}
}

func TestFindScene(t *testing.T) {
	i, err := FindScene("quad")
	require.NoError(t, err)
	assert.Same(t, quadScene, scenes[i])

	i, err = FindScene("Triangle")
	require.NoError(t, err)
	assert.Same(t, triangleScene, scenes[i])

	_, err = FindScene("cube")
	assert.EqualError(t, err, `unknown scene "cube", want one of triangle, quad`)
}
