// Copyright 2026, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

// Package animate builds vdom components that wrap an element in a container
// running a named css keyframe animation.
package animate

import (
	"context"
	"fmt"

	"github.com/wavetermdev/waveanim/pkg/util/utilfn"
	"github.com/wavetermdev/waveanim/pkg/vdom"
)

type StylePolicy int

const (
	// style is derived once, after the first mount.  later prop changes do not
	// update the animation.
	ComputeOnMount StylePolicy = iota
	// style is re-derived whenever a style-relevant prop changes
	RecomputeOnChange
)

func (p StylePolicy) String() string {
	switch p {
	case ComputeOnMount:
		return "compute-on-mount"
	case RecomputeOnChange:
		return "recompute-on-change"
	}
	return fmt.Sprintf("StylePolicy(%d)", int(p))
}

func ParseStylePolicy(s string) (StylePolicy, error) {
	switch s {
	case "", "compute-on-mount", "mount":
		return ComputeOnMount, nil
	case "recompute-on-change", "change":
		return RecomputeOnChange, nil
	}
	return ComputeOnMount, fmt.Errorf("invalid style policy %q", s)
}

type Option func(*Animated)

func WithStylePolicy(policy StylePolicy) Option {
	return func(a *Animated) {
		a.policy = policy
	}
}

// WithReporter sets the diagnostic sink (LogReporter by default).  nil discards.
func WithReporter(reporter Reporter) Option {
	return func(a *Animated) {
		if reporter == nil {
			reporter = DiscardReporter
		}
		a.reporter = reporter
	}
}

// WithName overrides the registered component name
func WithName(name string) Option {
	return func(a *Animated) {
		a.name = name
	}
}

// Animated is a component produced by MakeAnimatedComponent.  it is immutable
// after construction and may be registered with any number of roots.
type Animated struct {
	wrapped       string
	animationName string
	name          string
	policy        StylePolicy
	reporter      Reporter
}

type renderSnapshot struct {
	props AnimationProps
	style DerivedStyle
	out   *vdom.Elem
}

// MakeAnimatedComponent returns a component that renders wrapped (a base tag
// or a registered component name) inside a container animated with
// animationName.  an empty wrapped renders the children directly inside the
// container.
func MakeAnimatedComponent(wrapped string, animationName string, opts ...Option) *Animated {
	a := &Animated{
		wrapped:       wrapped,
		animationName: animationName,
		name:          "Animated" + utilfn.UpperFirst(animationName),
		policy:        ComputeOnMount,
		reporter:      LogReporter,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Animated) ComponentName() string {
	return a.name
}

func (a *Animated) AnimationName() string {
	return a.animationName
}

func (a *Animated) Wrapped() string {
	return a.wrapped
}

func (a *Animated) StylePolicy() StylePolicy {
	return a.policy
}

// the name used in diagnostics
func (a *Animated) displayName() string {
	if a.wrapped != "" {
		return a.wrapped
	}
	return a.name
}

func (a *Animated) Register(root *vdom.RootElem) error {
	return root.RegisterComponent(a.name, a.Render)
}

// Elem returns an element that renders this component with props.  the
// children slice is used as-is (not copied) so identical children compare equal.
func (a *Animated) Elem(props AnimationProps) *vdom.Elem {
	return &vdom.Elem{Tag: a.name, Props: props.PropMap(), Children: props.Children}
}

func (a *Animated) styleDeps(props AnimationProps) []any {
	if a.policy == RecomputeOnChange {
		return props.styleDeps()
	}
	return []any{}
}

func (a *Animated) renderContainer(props AnimationProps, style DerivedStyle) *vdom.Elem {
	var inner any = props.Children
	if a.wrapped != "" {
		inner = vdom.E(a.wrapped, props.Children)
	}
	if props.Block {
		return vdom.E("div", vdom.P(vdom.StylePropKey, style.StyleMap(DisplayBlock)), inner)
	}
	return vdom.E("span", vdom.P(vdom.StylePropKey, style.StyleMap(DisplayInlineBlock)), inner)
}

// Render is the component function.  when the props (children by identity)
// and the derived style are unchanged since the last render, the previous
// output is returned as-is and the host skips reconciling the subtree.
func (a *Animated) Render(ctx context.Context, props AnimationProps) any {
	style, setStyle := vdom.UseState(ctx, DerivedStyle{})
	last := vdom.UseRef[*renderSnapshot](ctx, nil)
	vdom.UseEffect(ctx, func() func() {
		newStyle := DeriveStyle(a.animationName, props)
		if newStyle != style {
			setStyle(newStyle)
		}
		return nil
	}, a.styleDeps(props))
	propsChanged := last.Current == nil || !last.Current.props.ShallowEqual(props)
	if !propsChanged && last.Current.style == style {
		return last.Current.out
	}
	// a style-only change (the mount pass) does not re-report
	if propsChanged {
		for _, diag := range Validate(a.displayName(), props) {
			a.reporter(diag)
		}
	}
	out := a.renderContainer(props, style)
	last.Current = &renderSnapshot{props: props, style: style, out: out}
	return out
}
