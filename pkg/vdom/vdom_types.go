// Copyright 2026, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package vdom

const TextTag = "#text"
const FragmentTag = "#fragment"
const BindTag = "bind"

const ChildrenPropKey = "children"
const KeyPropKey = "key"
const StylePropKey = "style"
const ClassNamePropKey = "className"

const ObjectType_Func = "func"

// vdom element
// doubles as the input to Render and the output of MakeVDom
type Elem struct {
	WaveId   string         `json:"waveid,omitempty"` // set on rendered elems (except #text)
	Tag      string         `json:"tag"`
	Props    map[string]any `json:"props,omitempty"`
	Children []Elem         `json:"children,omitempty"`
	Text     string         `json:"text,omitempty"`
}

// used in rendered props to stand in for go functions
type VDomFunc struct {
	Fn   any    `json:"-"`
	Type string `json:"type"`
}

type VDomSimpleRef[T any] struct {
	Current T `json:"current"`
}

// generic hook structure
type Hook struct {
	Init      bool          // is initialized
	Idx       int           // index in the hook array
	Fn        func() func() // for useEffect
	UnmountFn func()        // for useEffect
	Val       any           // for useState, useRef
	Deps      []any
}

type EffectWorkElem struct {
	Id          string
	EffectIndex int
}
