package scene

import "github.com/go-gl/mathgl/mgl32"

// TransformComponent gives a node a local transform and a cached world
// matrix. The cache is invalidated, never eagerly recomputed, on any local
// mutation or structural change; WorldMatrix recomputes it lazily.
type TransformComponent struct {
	BaseComponent
	local Transform
	world mgl32.Mat4
	dirty bool
}

func NewTransformComponent() *TransformComponent {
	return &TransformComponent{
		BaseComponent: NewBaseComponent(KindTransform),
		local:         NewTransform(),
		dirty:         true,
	}
}

func (t *TransformComponent) Local() Transform { return t.local }

func (t *TransformComponent) SetLocal(tr Transform) {
	t.local = tr
	t.invalidateSubtree()
}

func (t *TransformComponent) SetPosition(p mgl32.Vec3) {
	t.local.Position = p
	t.invalidateSubtree()
}

func (t *TransformComponent) SetRotation(q mgl32.Quat) {
	t.local.Rotation = q
	t.invalidateSubtree()
}

func (t *TransformComponent) SetScale(s mgl32.Vec3) {
	t.local.Scale = s
	t.invalidateSubtree()
}

// Invalidate marks the cached world matrix stale.
func (t *TransformComponent) Invalidate() { t.dirty = true }

// Attaching or detaching a transform changes the ancestor chain every
// descendant resolves through, so the whole subtree goes stale, same as on
// reparenting.
func (t *TransformComponent) OnAttach(n *Node) { n.invalidateTransforms() }

func (t *TransformComponent) OnDetach(n *Node) {
	t.dirty = true
	n.invalidateTransforms()
}

// WorldMatrix returns the node's world transform, recomputing the cache if
// stale: the nearest ancestor world matrix times the local model matrix.
func (t *TransformComponent) WorldMatrix() mgl32.Mat4 {
	if t.dirty {
		t.world = t.parentWorld().Mul4(t.local.ModelMatrix())
		t.dirty = false
	}
	return t.world
}

func (t *TransformComponent) parentWorld() mgl32.Mat4 {
	owner := t.Owner()
	if owner == nil {
		return mgl32.Ident4()
	}
	for p := owner.Parent(); p != nil; p = p.Parent() {
		if c, ok := p.Component(KindTransform); ok {
			if tc, ok := c.(*TransformComponent); ok {
				return tc.WorldMatrix()
			}
		}
	}
	return mgl32.Ident4()
}

// invalidateSubtree covers a local mutation: this node's world matrix and
// every descendant's depend on it.
func (t *TransformComponent) invalidateSubtree() {
	t.dirty = true
	if owner := t.Owner(); owner != nil {
		for _, ch := range owner.Children() {
			ch.invalidateTransforms()
		}
	}
}
