package glbackend

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/sirupsen/logrus"

	"github.com/hollowmoss/briar/engine/core"
)

const materialBinding = 0

// Device implements core.Device on OpenGL 3.3 core.
type Device struct {
	win       core.Window
	ubo       uint32 // material uniform buffer, std140
	wireframe bool
	bound     *pipeline
}

// DefaultTarget is the window's default framebuffer.
type DefaultTarget struct{}

func (DefaultTarget) IsDrawable() {}

func NewDevice(win core.Window, cfg core.Config) (*Device, error) {
	d := &Device{win: win}
	if cfg.SampleCount > 1 {
		gl.Enable(gl.MULTISAMPLE)
	}
	gl.Enable(gl.DEPTH_TEST)

	gl.GenBuffers(1, &d.ubo)
	gl.BindBuffer(gl.UNIFORM_BUFFER, d.ubo)
	gl.BufferData(gl.UNIFORM_BUFFER, int(unsafe.Sizeof(core.MaterialBlock{})), nil, gl.DYNAMIC_DRAW)
	gl.BindBufferBase(gl.UNIFORM_BUFFER, materialBinding, d.ubo)
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
	return d, nil
}

func (d *Device) Shutdown() {
	if d.ubo != 0 {
		gl.DeleteBuffers(1, &d.ubo)
	}
}

func (d *Device) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (d *Device) SetWireframe(enabled bool) {
	d.wireframe = enabled
	if enabled {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

func (d *Device) Present(core.Drawable) {
	d.win.SwapBuffers()
}

// --- resource creation ---

type pipeline struct {
	program   uint32
	depthTest bool
	blend     bool
	cull      bool

	locModel    int32
	locViewProj int32
	locNormal   int32
}

func (*pipeline) IsPipeline() {}

func (d *Device) CreatePipeline(desc core.PipelineDesc) (core.Pipeline, error) {
	prog, err := makeProgram(desc.VertexSource, desc.FragmentSource)
	if err != nil {
		return nil, err
	}
	p := &pipeline{
		program:   prog,
		depthTest: desc.DepthTest,
		blend:     desc.Blend,
		cull:      desc.CullBackFaces,
	}
	p.locModel = gl.GetUniformLocation(prog, gl.Str("uModel\x00"))
	p.locViewProj = gl.GetUniformLocation(prog, gl.Str("uViewProj\x00"))
	p.locNormal = gl.GetUniformLocation(prog, gl.Str("uNormalMat\x00"))

	if idx := gl.GetUniformBlockIndex(prog, gl.Str("Material\x00")); idx != gl.INVALID_INDEX {
		gl.UniformBlockBinding(prog, idx, materialBinding)
	}

	// Fixed sampler slots; set once.
	gl.UseProgram(prog)
	for i, name := range []string{"uBaseColorTex\x00", "uNormalTex\x00", "uMetalRoughTex\x00"} {
		if loc := gl.GetUniformLocation(prog, gl.Str(name)); loc >= 0 {
			gl.Uniform1i(loc, int32(i))
		}
	}
	gl.UseProgram(0)
	return p, nil
}

type mesh struct {
	vao, vbo, ebo uint32
	indexCount    int
}

func (m *mesh) IndexCount() int { return m.indexCount }

func (d *Device) CreateMesh(data core.MeshData) (core.Mesh, error) {
	if len(data.Vertices) == 0 || len(data.Indices) == 0 {
		return nil, fmt.Errorf("create mesh: empty vertex or index data")
	}
	m := &mesh{indexCount: len(data.Indices)}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data.Vertices)*4, gl.Ptr(data.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data.Indices)*4, gl.Ptr(data.Indices), gl.STATIC_DRAW)

	for _, a := range data.Layout.Attributes {
		gl.EnableVertexAttribArray(uint32(a.Location))
		gl.VertexAttribPointer(uint32(a.Location), int32(a.Size), gl.FLOAT, false,
			int32(data.Layout.Stride), unsafe.Pointer(uintptr(a.Offset)))
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	return m, nil
}

type texture struct{ id uint32 }

func (*texture) IsTexture() {}

func (d *Device) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	if len(desc.Levels) == 0 {
		return nil, fmt.Errorf("create texture: no pixel data")
	}
	var format int32 = gl.RGBA8
	var pixFormat uint32 = gl.RGBA
	if desc.Format == core.PixelFormatRGB8 {
		format = gl.RGB8
		pixFormat = gl.RGB
	}

	t := &texture{}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)

	w, h := desc.Width, desc.Height
	for level, pixels := range desc.Levels {
		gl.TexImage2D(gl.TEXTURE_2D, int32(level), format, int32(w), int32(h), 0,
			pixFormat, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
		if w > 1 {
			w /= 2
		}
		if h > 1 {
			h /= 2
		}
	}

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	if len(desc.Levels) > 1 {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAX_LEVEL, int32(len(desc.Levels)-1))
	} else {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t, nil
}

// --- frame encoding ---

type renderPass struct{ dev *Device }

func (d *Device) BeginPass(_ core.Drawable, clearColor [4]float32) (core.RenderPass, error) {
	gl.ClearColor(clearColor[0], clearColor[1], clearColor[2], clearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	d.bound = nil
	return &renderPass{dev: d}, nil
}

func (rp *renderPass) BindPipeline(p core.Pipeline) {
	gp, ok := p.(*pipeline)
	if !ok {
		logrus.Warn("gl: foreign pipeline handle")
		return
	}
	rp.dev.bound = gp
	gl.UseProgram(gp.program)
	if gp.depthTest {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
	if gp.blend {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	} else {
		gl.Disable(gl.BLEND)
	}
	if gp.cull {
		gl.Enable(gl.CULL_FACE)
	} else {
		gl.Disable(gl.CULL_FACE)
	}
}

func (rp *renderPass) SetDrawUniforms(u core.DrawUniforms) {
	gp := rp.dev.bound
	if gp == nil {
		return
	}
	if gp.locModel >= 0 {
		gl.UniformMatrix4fv(gp.locModel, 1, false, &u.Model[0])
	}
	if gp.locViewProj >= 0 {
		gl.UniformMatrix4fv(gp.locViewProj, 1, false, &u.ViewProjection[0])
	}
	if gp.locNormal >= 0 {
		gl.UniformMatrix4fv(gp.locNormal, 1, false, &u.Normal[0])
	}
}

func (rp *renderPass) SetMaterial(block core.MaterialBlock) {
	gl.BindBuffer(gl.UNIFORM_BUFFER, rp.dev.ubo)
	gl.BufferSubData(gl.UNIFORM_BUFFER, 0, int(unsafe.Sizeof(block)), unsafe.Pointer(&block))
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
}

func (rp *renderPass) BindTexture(slot core.TextureSlot, t core.Texture) {
	gt, ok := t.(*texture)
	if !ok {
		logrus.Warn("gl: foreign texture handle")
		return
	}
	gl.ActiveTexture(uint32(gl.TEXTURE0 + int(slot)))
	gl.BindTexture(gl.TEXTURE_2D, gt.id)
}

func (rp *renderPass) DrawIndexed(m core.Mesh) {
	gm, ok := m.(*mesh)
	if !ok {
		logrus.Warn("gl: foreign mesh handle")
		return
	}
	gl.BindVertexArray(gm.vao)
	gl.DrawElements(gl.TRIANGLES, int32(gm.indexCount), gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (rp *renderPass) End() {
	gl.UseProgram(0)
	rp.dev.bound = nil
}

// --- shader utilities ---

func makeShader(src string, shaderType uint32) (uint32, error) {
	if len(src) == 0 || src[len(src)-1] != 0 {
		src += "\x00"
	}
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		infoLog := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(infoLog))
		return 0, fmt.Errorf("shader compile error: %s", infoLog)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		infoLog := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(infoLog))
		return 0, fmt.Errorf("program link error: %s", infoLog)
	}
	return prog, nil
}
