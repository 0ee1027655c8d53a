package main

import (
	"github.com/faiface/glhf"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

type Mesh struct {
	vao, vbo, ebo uint32
	mode          uint32
	count         int32
	indexed       bool
}

// NewMesh uploads the scene geometry laid out by the shader's vertex format.
// Must be called on the main thread.
func NewMesh(shader *glhf.Shader, scene *Scene) *Mesh {
	m := &Mesh{
		mode:    gl.TRIANGLES,
		count:   scene.DrawCount(),
		indexed: scene.Indexed(),
	}
	data := scene.Positions
	if len(data) == 0 {
		return m
	}
	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	offset := 0
	for _, attr := range shader.VertexFormat() {
		loc := gl.GetAttribLocation(shader.ID(), gl.Str(attr.Name+"\x00"))
		if loc < 0 {
			// optimized out by the driver
			offset += attr.Type.Size()
			continue
		}
		var size int32
		switch attr.Type {
		case glhf.Float:
			size = 1
		case glhf.Vec2:
			size = 2
		case glhf.Vec3:
			size = 3
		case glhf.Vec4:
			size = 4
		}
		gl.VertexAttribPointer(
			uint32(loc),
			size,
			gl.FLOAT,
			false,
			int32(shader.VertexFormat().Size()),
			gl.PtrOffset(offset),
		)
		gl.EnableVertexAttribArray(uint32(loc))
		offset += attr.Type.Size()
	}

	if m.indexed {
		gl.GenBuffers(1, &m.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(scene.Indices)*4, gl.Ptr(scene.Indices), gl.STATIC_DRAW)
	}
	// the element buffer binding is part of the vao state, unbind the vao first
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	return m
}

func (m *Mesh) Draw() {
	if m.vao == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	if m.indexed {
		gl.DrawElements(m.mode, m.count, gl.UNSIGNED_INT, gl.PtrOffset(0))
	} else {
		gl.DrawArrays(m.mode, 0, m.count)
	}
	gl.BindVertexArray(0)
}

func (m *Mesh) Release() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
		if m.ebo != 0 {
			gl.DeleteBuffers(1, &m.ebo)
		}
		m.vao = 0
		m.vbo = 0
		m.ebo = 0
	}
}

// SceneRender draws one scene with one program. All methods must be called
// on the main thread.
type SceneRender struct {
	shader *glhf.Shader
	scene  *Scene
	mesh   *Mesh
}

func NewSceneRender(shader *glhf.Shader, scene *Scene) *SceneRender {
	return &SceneRender{
		shader: shader,
		scene:  scene,
		mesh:   NewMesh(shader, scene),
	}
}

// SetShader swaps the program. Attribute locations may differ between
// programs so the mesh is rebuilt.
func (r *SceneRender) SetShader(shader *glhf.Shader) {
	if shader == r.shader {
		return
	}
	r.shader = shader
	r.rebuild()
}

func (r *SceneRender) SetScene(scene *Scene) {
	if scene == r.scene {
		return
	}
	r.scene = scene
	r.rebuild()
}

func (r *SceneRender) Scene() *Scene {
	return r.scene
}

func (r *SceneRender) rebuild() {
	r.mesh.Release()
	r.mesh = NewMesh(r.shader, r.scene)
}

func (r *SceneRender) Draw(mvp mgl32.Mat4, color mgl32.Vec4) {
	r.shader.Begin()
	r.shader.SetUniformAttr(uniformMVP, mvp)
	r.shader.SetUniformAttr(uniformColor, color)
	r.mesh.Draw()
	r.shader.End()
}

func (r *SceneRender) Release() {
	r.mesh.Release()
}
