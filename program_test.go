package main

import (
	"errors"
	"testing"

	"github.com/faiface/glhf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgramCache(t *testing.T) {
	builds := 0
	cache, err := newProgramCache(2, func(src ShaderProgramSource) (*glhf.Shader, error) {
		builds++
		if src.VertexSource == "bad" {
			return nil, errors.New("compile error")
		}
		return new(glhf.Shader), nil
	})
	require.NoError(t, err)

	a := ShaderProgramSource{VertexSource: "a", FragmentSource: "f"}
	b := ShaderProgramSource{VertexSource: "b", FragmentSource: "f"}
	c := ShaderProgramSource{VertexSource: "c", FragmentSource: "f"}

	pa, cached, err := cache.Get(a)
	require.NoError(t, err)
	assert.False(t, cached)

	again, cached, err := cache.Get(a)
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Same(t, pa, again)
	assert.Equal(t, 1, builds)

	_, _, err = cache.Get(b)
	require.NoError(t, err)
	_, _, err = cache.Get(c)
	require.NoError(t, err)
	assert.Equal(t, 2, cache.Len())

	// a was least recently used and got evicted
	_, cached, err = cache.Get(a)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 4, builds)

	_, _, err = cache.Get(ShaderProgramSource{VertexSource: "bad"})
	assert.Error(t, err)
	assert.Equal(t, 2, cache.Len())
}

func TestProgramFormats(t *testing.T) {
	assert.Equal(t, "u_MVP", programUniforms[uniformMVP].Name)
	assert.Equal(t, "u_Color", programUniforms[uniformColor].Name)
	// one vec2 per vertex
	assert.Equal(t, 2*4, programVertexFormat.Size())
}
