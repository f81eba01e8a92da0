// Copyright 2026, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package vdom

// so components either render to another component (or fragment)
// or to a base element (text or vdom).  base elements can then render children

type ChildKey struct {
	Tag string
	Idx int
	Key string
}

type ComponentImpl struct {
	WaveId  string
	Tag     string
	Key     string
	Elem    *Elem
	Mounted bool

	// hooks
	Hooks []*Hook

	// #text component
	Text string

	// base component -- vdom or #fragment
	Children []*ComponentImpl

	// component -> component
	Comp *ComponentImpl

	// last value returned by the component func.  returning the same *Elem
	// again tells the root the subtree is unchanged.
	RenderedElem *Elem
	RenderCount  int
	SkipCount    int
}

func (c *ComponentImpl) compMatch(tag string, key string) bool {
	if c == nil {
		return false
	}
	return c.Tag == tag && c.Key == key
}
