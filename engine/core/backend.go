package core

import "github.com/go-gl/mathgl/mgl32"

// Device is the narrow contract the render pipeline is written against.
// A backend (OpenGL, or a recording fake in tests) implements it; the
// pipeline never reaches past these verbs.
type Device interface {
	CreatePipeline(desc PipelineDesc) (Pipeline, error)
	CreateMesh(data MeshData) (Mesh, error)
	CreateTexture(desc TextureDesc) (Texture, error)

	// BeginPass clears the target and returns an encoder for one frame's
	// draw commands. Returns an error when no render target is available;
	// the caller skips the frame.
	BeginPass(target Drawable, clearColor [4]float32) (RenderPass, error)

	// Present hands the finished frame to the target.
	Present(target Drawable)

	SetWireframe(enabled bool)
	Resize(w, h int)
	Shutdown()
}

// RenderPass encodes draw commands for a single frame.
type RenderPass interface {
	BindPipeline(p Pipeline)
	SetDrawUniforms(u DrawUniforms)
	SetMaterial(block MaterialBlock)
	BindTexture(slot TextureSlot, t Texture)
	DrawIndexed(m Mesh)
	End()
}

// Pipeline is an opaque pipeline-state identity: a compiled shader program
// plus fixed-function state. The engine only ever compares two Pipelines
// for identity when coalescing state changes; it never introspects one.
type Pipeline interface{ IsPipeline() }

// Texture is an opaque texture handle.
type Texture interface{ IsTexture() }

// Drawable is an opaque render target (a window surface, offscreen
// framebuffer, ...). Interpreted only by the backend that issued it.
type Drawable interface{ IsDrawable() }

// Mesh is a GPU-resident vertex/index buffer pair.
type Mesh interface {
	IndexCount() int
}

// DrawUniforms is the per-draw uniform payload. Normal is the
// inverse-transpose of Model; the model matrix alone mis-transforms
// normals under non-uniform scale.
type DrawUniforms struct {
	Model          mgl32.Mat4
	ViewProjection mgl32.Mat4
	Normal         mgl32.Mat4
}

// MaterialBlock is the GPU-visible material payload. Field order, types and
// padding match the std140 layout of the shader-side struct exactly; do not
// reorder or insert fields.
type MaterialBlock struct {
	BaseColor               [4]float32
	Emissive                [3]float32
	Metallic                float32
	Roughness               float32
	HasBaseColorTex         float32
	HasNormalTex            float32
	HasMetallicRoughnessTex float32
}

// TextureSlot names the fixed texture bind points of the mesh pipeline.
type TextureSlot int

const (
	SlotBaseColor TextureSlot = iota
	SlotNormal
	SlotMetallicRoughness
)

// PixelFormat for texture creation requests.
type PixelFormat int

const (
	PixelFormatRGBA8 PixelFormat = iota
	PixelFormatRGB8
)

// AttribType of a vertex attribute.
type AttribType int

const (
	AttribFloat32 AttribType = iota
)

type VertexAttrib struct {
	Location int
	Size     int // components, e.g. 3 for vec3
	Type     AttribType
	Offset   int // bytes from vertex start
}

// VertexLayout describes one interleaved vertex buffer.
type VertexLayout struct {
	Stride     int // bytes per vertex
	Attributes []VertexAttrib
}

// PipelineDesc is a pipeline creation request.
type PipelineDesc struct {
	VertexSource   string
	FragmentSource string
	Layout         VertexLayout
	DepthTest      bool
	Blend          bool
	CullBackFaces  bool
}

// MeshData is a mesh creation request: interleaved vertices plus a
// triangle-list index buffer.
type MeshData struct {
	Vertices []float32
	Indices  []uint32
	Layout   VertexLayout
}

// TextureDesc is a texture creation request. Levels[0] is the full-size
// RGBA image; further entries are an optional precomputed mipmap chain.
type TextureDesc struct {
	Width  int
	Height int
	Format PixelFormat
	Levels [][]byte
}
