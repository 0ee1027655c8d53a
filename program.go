package main

import (
	"github.com/faiface/glhf"
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
)

// uniform indexes into programUniforms
const (
	uniformMVP = iota
	uniformColor
)

var (
	programVertexFormat = glhf.AttrFormat{
		glhf.Attr{Name: "position", Type: glhf.Vec2},
	}
	programUniforms = glhf.AttrFormat{
		glhf.Attr{Name: "u_MVP", Type: glhf.Mat4},
		glhf.Attr{Name: "u_Color", Type: glhf.Vec4},
	}
)

// NewProgram compiles and links src. Must be called on the main thread.
func NewProgram(src ShaderProgramSource) (*glhf.Shader, error) {
	shader, err := glhf.NewShader(programVertexFormat, programUniforms, src.VertexSource, src.FragmentSource)
	if err != nil {
		return nil, errors.Wrap(err, "build program")
	}
	return shader, nil
}

// programCache keeps recently linked programs so that reloading an
// unchanged file does not relink.
type programCache struct {
	cache *lru.Cache
	build func(ShaderProgramSource) (*glhf.Shader, error)
}

func newProgramCache(size int, build func(ShaderProgramSource) (*glhf.Shader, error)) (*programCache, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &programCache{
		cache: cache,
		build: build,
	}, nil
}

// Get returns the program for src, building it on a miss. The second result
// reports whether the program came from the cache.
func (c *programCache) Get(src ShaderProgramSource) (*glhf.Shader, bool, error) {
	if v, ok := c.cache.Get(src); ok {
		return v.(*glhf.Shader), true, nil
	}
	shader, err := c.build(src)
	if err != nil {
		return nil, false, err
	}
	c.cache.Add(src, shader)
	return shader, false, nil
}

func (c *programCache) Len() int {
	return c.cache.Len()
}
