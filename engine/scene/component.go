package scene

import "sync/atomic"

// ComponentKind is the closed tag set for component lookup. One tag per
// known component kind keeps Component(kind) an O(1) map access with no
// reflection.
type ComponentKind uint8

const (
	KindTransform ComponentKind = iota
	KindCamera
	KindLight
	KindScript
)

func (k ComponentKind) String() string {
	switch k {
	case KindTransform:
		return "transform"
	case KindCamera:
		return "camera"
	case KindLight:
		return "light"
	case KindScript:
		return "script"
	default:
		return "unknown"
	}
}

// Component is an attachable behavior/data unit owned by exactly one Node.
// Concrete components embed BaseComponent; the unexported methods keep the
// ownership bookkeeping inside this package.
type Component interface {
	ID() uint64
	Kind() ComponentKind
	Owner() *Node
	Enabled() bool

	setOwner(n *Node)

	// OnAttach/OnDetach are hooks invoked by the owning node when the
	// component is added or removed.
	OnAttach(n *Node)
	OnDetach(n *Node)

	// Update advances the component by dt seconds. Called only while the
	// component is enabled and its node active.
	Update(dt float64)
}

var nextComponentID atomic.Uint64

// BaseComponent supplies identity, kind, owner back-reference and the
// enable flag. Embed it in every concrete component.
type BaseComponent struct {
	id      uint64
	kind    ComponentKind
	owner   *Node
	enabled bool
}

func NewBaseComponent(kind ComponentKind) BaseComponent {
	return BaseComponent{id: nextComponentID.Add(1), kind: kind, enabled: true}
}

func (c *BaseComponent) ID() uint64          { return c.id }
func (c *BaseComponent) Kind() ComponentKind { return c.kind }
func (c *BaseComponent) Owner() *Node        { return c.owner }
func (c *BaseComponent) Enabled() bool       { return c.enabled }
func (c *BaseComponent) SetEnabled(v bool)   { c.enabled = v }

func (c *BaseComponent) setOwner(n *Node) { c.owner = n }

// Default hook implementations; concrete components override as needed.
func (c *BaseComponent) OnAttach(*Node) {}
func (c *BaseComponent) OnDetach(*Node) {}
func (c *BaseComponent) Update(float64) {}
