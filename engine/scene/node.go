package scene

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

var nextNodeID atomic.Uint64

// Node is a tree-structured scene entity owning components and children.
// The parent pointer is a non-owning back-reference; the child slice owns.
// A node appears as a child of at most one parent, and the child list and
// parent back-reference always agree.
type Node struct {
	id     uint64
	Name   string
	Active bool

	parent   *Node
	children []*Node

	comps  map[uint64]Component
	byKind map[ComponentKind][]Component
	order  []Component // insertion order, drives Update
}

func NewNode(name string) *Node {
	return &Node{
		id:     nextNodeID.Add(1),
		Name:   name,
		Active: true,
		comps:  map[uint64]Component{},
		byKind: map[ComponentKind][]Component{},
	}
}

func (n *Node) ID() uint64        { return n.id }
func (n *Node) Parent() *Node     { return n.parent }
func (n *Node) Children() []*Node { return n.children }

// AddComponent claims ownership of c and invokes its attach hook.
// A component that already has an owner is rejected.
func (n *Node) AddComponent(c Component) bool {
	if c.Owner() != nil {
		logrus.WithFields(logrus.Fields{
			"node":      n.Name,
			"component": c.Kind().String(),
		}).Warn("add component: already owned")
		return false
	}
	n.comps[c.ID()] = c
	n.byKind[c.Kind()] = append(n.byKind[c.Kind()], c)
	n.order = append(n.order, c)
	c.setOwner(n)
	c.OnAttach(n)
	return true
}

// RemoveComponent detaches c if and only if this node owns that exact
// instance. Both indices are updated, the detach hook runs, and the owner
// back-reference is cleared.
func (n *Node) RemoveComponent(c Component) bool {
	stored, ok := n.comps[c.ID()]
	if !ok || stored != c {
		logrus.WithFields(logrus.Fields{
			"node":      n.Name,
			"component": c.Kind().String(),
		}).Warn("remove component: not owned by this node")
		return false
	}
	delete(n.comps, c.ID())
	n.byKind[c.Kind()] = removeComp(n.byKind[c.Kind()], c)
	n.order = removeComp(n.order, c)
	c.OnDetach(n)
	c.setOwner(nil)
	return true
}

// RemoveComponentOfKind removes the first component of the given kind.
func (n *Node) RemoveComponentOfKind(k ComponentKind) bool {
	list := n.byKind[k]
	if len(list) == 0 {
		return false
	}
	return n.RemoveComponent(list[0])
}

// Component returns the first component of the given kind.
func (n *Node) Component(k ComponentKind) (Component, bool) {
	list := n.byKind[k]
	if len(list) == 0 {
		return nil, false
	}
	return list[0], true
}

// Components returns all components of the given kind.
func (n *Node) Components(k ComponentKind) []Component { return n.byKind[k] }

func (n *Node) HasComponent(k ComponentKind) bool { return len(n.byKind[k]) > 0 }

// AddChild parents c under n. Self-parenting is refused. A child that
// already has a parent is detached from it first. Reparenting invalidates
// the cached world transforms of c's whole subtree; the parent chain above
// it changed.
func (n *Node) AddChild(c *Node) bool {
	if c == n {
		logrus.WithField("node", n.Name).Warn("add child: cannot parent a node to itself")
		return false
	}
	if c.parent != nil {
		c.parent.RemoveChild(c)
	}
	c.parent = n
	n.children = append(n.children, c)
	c.invalidateTransforms()
	return true
}

// RemoveChild detaches c from n. Detaching does not destroy the child.
func (n *Node) RemoveChild(c *Node) bool {
	for i, ch := range n.children {
		if ch == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			c.parent = nil
			c.invalidateTransforms()
			return true
		}
	}
	return false
}

// FindChild looks up a child by name, optionally recursing depth-first.
func (n *Node) FindChild(name string, recursive bool) *Node {
	for _, c := range n.children {
		if c.Name == name {
			return c
		}
	}
	if recursive {
		for _, c := range n.children {
			if found := c.FindChild(name, true); found != nil {
				return found
			}
		}
	}
	return nil
}

// FindChildByID looks up a child by id, optionally recursing depth-first.
func (n *Node) FindChildByID(id uint64, recursive bool) *Node {
	for _, c := range n.children {
		if c.id == id {
			return c
		}
	}
	if recursive {
		for _, c := range n.children {
			if found := c.FindChildByID(id, true); found != nil {
				return found
			}
		}
	}
	return nil
}

// Update advances enabled components, then children in list order. The
// traversal is synchronous and depth-first: components may mutate node
// state (e.g. the transform cache) that downstream children read.
func (n *Node) Update(dt float64) {
	if !n.Active {
		return
	}
	for _, c := range n.order {
		if c.Enabled() {
			c.Update(dt)
		}
	}
	for _, c := range n.children {
		c.Update(dt)
	}
}

// invalidateTransforms marks every cached world transform in the subtree
// rooted at n stale. Caches recompute lazily on next read.
func (n *Node) invalidateTransforms() {
	for _, c := range n.byKind[KindTransform] {
		if tc, ok := c.(*TransformComponent); ok {
			tc.Invalidate()
		}
	}
	for _, ch := range n.children {
		ch.invalidateTransforms()
	}
}

func removeComp(list []Component, c Component) []Component {
	for i, x := range list {
		if x == c {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
