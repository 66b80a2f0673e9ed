package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transformPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	v := m.Mul4x1(p.Vec4(1))
	return v.Vec3()
}

func TestIdentityTransform(t *testing.T) {
	tr := NewTransform()
	assert.True(t, tr.ModelMatrix().ApproxEqual(mgl32.Ident4()))
}

func TestModelMatrixAppliesScaleFirst(t *testing.T) {
	tr := NewTransform()
	tr.Position = mgl32.Vec3{1, 2, 3}
	tr.Scale = mgl32.Vec3{2, 2, 2}

	got := transformPoint(tr.ModelMatrix(), mgl32.Vec3{1, 0, 0})
	want := mgl32.Vec3{3, 2, 3} // scaled to (2,0,0), then translated
	assert.InDelta(t, want.X(), got.X(), 1e-5)
	assert.InDelta(t, want.Y(), got.Y(), 1e-5)
	assert.InDelta(t, want.Z(), got.Z(), 1e-5)
}

func TestModelMatrixRotationBetweenScaleAndTranslation(t *testing.T) {
	tr := NewTransform()
	tr.Position = mgl32.Vec3{0, 0, 10}
	tr.Rotation = mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0})
	tr.Scale = mgl32.Vec3{2, 1, 1}

	// (1,0,0) -> scale -> (2,0,0) -> yaw 90° -> (0,0,-2) -> translate.
	got := transformPoint(tr.ModelMatrix(), mgl32.Vec3{1, 0, 0})
	assert.InDelta(t, 0, got.X(), 1e-5)
	assert.InDelta(t, 0, got.Y(), 1e-5)
	assert.InDelta(t, 8, got.Z(), 1e-5)
}

func makeTransformNode(name string, pos mgl32.Vec3) (*Node, *TransformComponent) {
	n := NewNode(name)
	tc := NewTransformComponent()
	tc.SetPosition(pos)
	if !n.AddComponent(tc) {
		panic("add transform component")
	}
	return n, tc
}

func TestWorldMatrixComposesParentChain(t *testing.T) {
	parent, _ := makeTransformNode("parent", mgl32.Vec3{1, 0, 0})
	child, childTC := makeTransformNode("child", mgl32.Vec3{2, 0, 0})
	require.True(t, parent.AddChild(child))

	got := transformPoint(childTC.WorldMatrix(), mgl32.Vec3{0, 0, 0})
	assert.InDelta(t, 3, got.X(), 1e-5)
}

func TestReparentingInvalidatesSubtreeCache(t *testing.T) {
	oldParent, _ := makeTransformNode("old", mgl32.Vec3{1, 0, 0})
	newParent, _ := makeTransformNode("new", mgl32.Vec3{10, 0, 0})
	child, childTC := makeTransformNode("child", mgl32.Vec3{2, 0, 0})
	grandchild, grandTC := makeTransformNode("grandchild", mgl32.Vec3{0.5, 0, 0})
	require.True(t, oldParent.AddChild(child))
	require.True(t, child.AddChild(grandchild))

	// Prime both caches.
	assert.InDelta(t, 3, transformPoint(childTC.WorldMatrix(), mgl32.Vec3{}).X(), 1e-5)
	assert.InDelta(t, 3.5, transformPoint(grandTC.WorldMatrix(), mgl32.Vec3{}).X(), 1e-5)

	// Reparent: the whole subtree, grandchild included, must see the new
	// ancestor chain on next read.
	require.True(t, newParent.AddChild(child))
	assert.InDelta(t, 12, transformPoint(childTC.WorldMatrix(), mgl32.Vec3{}).X(), 1e-5)
	assert.InDelta(t, 12.5, transformPoint(grandTC.WorldMatrix(), mgl32.Vec3{}).X(), 1e-5)
}

func TestLocalMutationInvalidatesDescendants(t *testing.T) {
	parent, parentTC := makeTransformNode("parent", mgl32.Vec3{1, 0, 0})
	child, childTC := makeTransformNode("child", mgl32.Vec3{2, 0, 0})
	require.True(t, parent.AddChild(child))

	assert.InDelta(t, 3, transformPoint(childTC.WorldMatrix(), mgl32.Vec3{}).X(), 1e-5)

	parentTC.SetPosition(mgl32.Vec3{5, 0, 0})
	assert.InDelta(t, 7, transformPoint(childTC.WorldMatrix(), mgl32.Vec3{}).X(), 1e-5)
}

func TestAddingTransformMidChainInvalidatesDescendants(t *testing.T) {
	root, _ := makeTransformNode("root", mgl32.Vec3{1, 0, 0})
	mid := NewNode("mid") // no transform yet
	leaf, leafTC := makeTransformNode("leaf", mgl32.Vec3{2, 0, 0})
	require.True(t, root.AddChild(mid))
	require.True(t, mid.AddChild(leaf))

	// Primed against the root-only ancestor chain.
	assert.InDelta(t, 3, transformPoint(leafTC.WorldMatrix(), mgl32.Vec3{}).X(), 1e-5)

	// A transform appearing mid-chain must flow into descendants on next read.
	midTC := NewTransformComponent()
	midTC.SetPosition(mgl32.Vec3{10, 0, 0})
	require.True(t, mid.AddComponent(midTC))
	assert.InDelta(t, 13, transformPoint(leafTC.WorldMatrix(), mgl32.Vec3{}).X(), 1e-5)

	// And removing it must restore the shorter chain.
	require.True(t, mid.RemoveComponent(midTC))
	assert.InDelta(t, 3, transformPoint(leafTC.WorldMatrix(), mgl32.Vec3{}).X(), 1e-5)
}

func TestDetachedChildFallsBackToLocal(t *testing.T) {
	parent, _ := makeTransformNode("parent", mgl32.Vec3{1, 0, 0})
	child, childTC := makeTransformNode("child", mgl32.Vec3{2, 0, 0})
	require.True(t, parent.AddChild(child))
	assert.InDelta(t, 3, transformPoint(childTC.WorldMatrix(), mgl32.Vec3{}).X(), 1e-5)

	require.True(t, parent.RemoveChild(child))
	assert.InDelta(t, 2, transformPoint(childTC.WorldMatrix(), mgl32.Vec3{}).X(), 1e-5)
}
