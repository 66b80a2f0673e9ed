package renderer3d

import (
	"github.com/pkg/errors"

	"github.com/hollowmoss/briar/engine/core"
)

// Recording fake backend: captures the command stream instead of issuing
// GPU work, so pipeline tests can assert on ordering and coalescing.

type fakePipeline struct{ name string }

func (*fakePipeline) IsPipeline() {}

type fakeTexture struct{ name string }

func (*fakeTexture) IsTexture() {}

type fakeMesh struct{ indices int }

func (m *fakeMesh) IndexCount() int { return m.indices }

type fakeTarget struct{}

func (fakeTarget) IsDrawable() {}

type fakeOp struct {
	kind     string // bind | uniforms | material | texture | draw | end
	pipeline core.Pipeline
	mesh     core.Mesh
	uniforms core.DrawUniforms
	material core.MaterialBlock
	slot     core.TextureSlot
}

type fakeDevice struct {
	ops       []fakeOp
	passErr   error
	presented int
	wireframe bool
}

func (d *fakeDevice) CreatePipeline(core.PipelineDesc) (core.Pipeline, error) {
	return &fakePipeline{}, nil
}

func (d *fakeDevice) CreateMesh(data core.MeshData) (core.Mesh, error) {
	return &fakeMesh{indices: len(data.Indices)}, nil
}

func (d *fakeDevice) CreateTexture(core.TextureDesc) (core.Texture, error) {
	return &fakeTexture{}, nil
}

func (d *fakeDevice) BeginPass(core.Drawable, [4]float32) (core.RenderPass, error) {
	if d.passErr != nil {
		return nil, d.passErr
	}
	return &fakePass{d: d}, nil
}

func (d *fakeDevice) Present(core.Drawable) { d.presented++ }
func (d *fakeDevice) SetWireframe(v bool)   { d.wireframe = v }
func (d *fakeDevice) Resize(w, h int)       {}
func (d *fakeDevice) Shutdown()             {}

func (d *fakeDevice) opsOfKind(kind string) []fakeOp {
	var out []fakeOp
	for _, op := range d.ops {
		if op.kind == kind {
			out = append(out, op)
		}
	}
	return out
}

type fakePass struct{ d *fakeDevice }

func (p *fakePass) BindPipeline(pl core.Pipeline) {
	p.d.ops = append(p.d.ops, fakeOp{kind: "bind", pipeline: pl})
}

func (p *fakePass) SetDrawUniforms(u core.DrawUniforms) {
	p.d.ops = append(p.d.ops, fakeOp{kind: "uniforms", uniforms: u})
}

func (p *fakePass) SetMaterial(b core.MaterialBlock) {
	p.d.ops = append(p.d.ops, fakeOp{kind: "material", material: b})
}

func (p *fakePass) BindTexture(slot core.TextureSlot, t core.Texture) {
	p.d.ops = append(p.d.ops, fakeOp{kind: "texture", slot: slot})
}

func (p *fakePass) DrawIndexed(m core.Mesh) {
	p.d.ops = append(p.d.ops, fakeOp{kind: "draw", mesh: m})
}

func (p *fakePass) End() {
	p.d.ops = append(p.d.ops, fakeOp{kind: "end"})
}

var errNoDrawable = errors.New("no drawable")
