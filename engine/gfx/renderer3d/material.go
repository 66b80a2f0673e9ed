package renderer3d

import (
	"github.com/hollowmoss/briar/engine/colors"
	"github.com/hollowmoss/briar/engine/core"
)

// Material is the CPU-editable material record. Pipeline and textures are
// non-owning references into backend resources; Block derives the
// GPU-transmissible subset.
type Material struct {
	Name      string
	BaseColor colors.Color
	Metallic  float32
	Roughness float32
	Emissive  [3]float32

	Pipeline             core.Pipeline
	BaseColorTex         core.Texture
	NormalTex            core.Texture
	MetallicRoughnessTex core.Texture
}

func NewMaterial(name string) *Material {
	return &Material{
		Name:      name,
		BaseColor: colors.White,
		Roughness: 0.5,
	}
}

// Block projects the material into its GPU-safe payload: no pointers, fixed
// layout, texture presence encoded as flags.
func (m *Material) Block() core.MaterialBlock {
	b := core.MaterialBlock{
		BaseColor: [4]float32(m.BaseColor),
		Emissive:  m.Emissive,
		Metallic:  m.Metallic,
		Roughness: m.Roughness,
	}
	if m.BaseColorTex != nil {
		b.HasBaseColorTex = 1
	}
	if m.NormalTex != nil {
		b.HasNormalTex = 1
	}
	if m.MetallicRoughnessTex != nil {
		b.HasMetallicRoughnessTex = 1
	}
	return b
}
