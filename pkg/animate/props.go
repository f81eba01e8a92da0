// Copyright 2026, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package animate

import (
	"regexp"

	"github.com/wavetermdev/waveanim/pkg/vdom"
)

const (
	DefaultDuration        = "1s"
	DefaultTimingFunction  = "ease"
	DefaultDelay           = "0s"
	DefaultDirection       = "normal"
	DefaultIterations      = "1"
	DefaultBackfaceVisible = "visible"
	DefaultFillMode        = "none"
	DefaultPlayState       = "running"
)

var DirectionValues = []string{"normal", "reverse", "alternate", "alternate-reverse", "initial", "inherit"}
var FillModeValues = []string{"none", "forwards", "backwards", "both"}
var PlayStateValues = []string{"paused", "running"}
var BackfaceValues = []string{"visible", "hidden"}
var TimingKeywords = []string{"linear", "ease", "ease-in", "ease-out", "ease-in-out", "step-start", "step-end"}

const cssNumRe = `-?(?:\d+(?:\.\d*)?|\.\d+)`

var stepsRe = regexp.MustCompile(`^steps\(\s*\d+\s*(?:,\s*(?:start|end)\s*)?\)$`)
var cubicBezierRe = regexp.MustCompile(`^cubic-bezier\(\s*` + cssNumRe + `\s*,\s*` + cssNumRe + `\s*,\s*` + cssNumRe + `\s*,\s*` + cssNumRe + `\s*\)$`)

// AnimationProps are the props accepted by an animated component.
// an empty string means "not set" and is replaced by the default when the style is derived.
// there is no way to pass an explicit empty value: duration="" in a template or
// --duration "" on the command line renders with the default duration.
type AnimationProps struct {
	Duration        string      `json:"duration,omitempty" jsonschema:"description=CSS time value (1s or 250ms),default=1s"`
	TimingFunction  string      `json:"timingFunction,omitempty" jsonschema:"description=easing keyword or steps()/cubic-bezier() function,default=ease"`
	Delay           string      `json:"delay,omitempty" jsonschema:"description=CSS time value,default=0s"`
	Direction       string      `json:"direction,omitempty" jsonschema:"enum=normal,enum=reverse,enum=alternate,enum=alternate-reverse,enum=initial,enum=inherit,default=normal"`
	Iterations      string      `json:"iterations,omitempty" jsonschema:"description=iteration count or infinite,default=1"`
	BackfaceVisible string      `json:"backfaceVisible,omitempty" jsonschema:"enum=visible,enum=hidden,default=visible"`
	FillMode        string      `json:"fillMode,omitempty" jsonschema:"enum=none,enum=forwards,enum=backwards,enum=both,default=none"`
	PlayState       string      `json:"playState,omitempty" jsonschema:"enum=paused,enum=running,default=running"`
	Block           bool        `json:"block,omitempty" jsonschema:"description=render a block (div) container instead of inline-block (span)"`
	Children        []vdom.Elem `json:"children" jsonschema:"description=at least one child element,minItems=1"`
}

func DefaultProps() AnimationProps {
	return AnimationProps{
		Duration:        DefaultDuration,
		TimingFunction:  DefaultTimingFunction,
		Delay:           DefaultDelay,
		Direction:       DefaultDirection,
		Iterations:      DefaultIterations,
		BackfaceVisible: DefaultBackfaceVisible,
		FillMode:        DefaultFillMode,
		PlayState:       DefaultPlayState,
	}
}

func orDefault(val string, def string) string {
	if val == "" {
		return def
	}
	return val
}

// WithDefaults returns a copy with every unset field filled in.  the receiver is not modified.
func (p AnimationProps) WithDefaults() AnimationProps {
	p.Duration = orDefault(p.Duration, DefaultDuration)
	p.TimingFunction = orDefault(p.TimingFunction, DefaultTimingFunction)
	p.Delay = orDefault(p.Delay, DefaultDelay)
	p.Direction = orDefault(p.Direction, DefaultDirection)
	p.Iterations = orDefault(p.Iterations, DefaultIterations)
	p.BackfaceVisible = orDefault(p.BackfaceVisible, DefaultBackfaceVisible)
	p.FillMode = orDefault(p.FillMode, DefaultFillMode)
	p.PlayState = orDefault(p.PlayState, DefaultPlayState)
	return p
}

// PropMap returns the set fields as vdom props (children excluded)
func (p AnimationProps) PropMap() map[string]any {
	rtn := make(map[string]any)
	setStr := func(key string, val string) {
		if val != "" {
			rtn[key] = val
		}
	}
	setStr("duration", p.Duration)
	setStr("timingFunction", p.TimingFunction)
	setStr("delay", p.Delay)
	setStr("direction", p.Direction)
	setStr("iterations", p.Iterations)
	setStr("backfaceVisible", p.BackfaceVisible)
	setStr("fillMode", p.FillMode)
	setStr("playState", p.PlayState)
	if p.Block {
		rtn["block"] = true
	}
	return rtn
}

func sameElems(a []vdom.Elem, b []vdom.Elem) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return &a[0] == &b[0]
}

// ShallowEqual compares one level deep: string and bool fields by value,
// children by slice identity (not contents).
func (p AnimationProps) ShallowEqual(other AnimationProps) bool {
	return p.Duration == other.Duration &&
		p.TimingFunction == other.TimingFunction &&
		p.Delay == other.Delay &&
		p.Direction == other.Direction &&
		p.Iterations == other.Iterations &&
		p.BackfaceVisible == other.BackfaceVisible &&
		p.FillMode == other.FillMode &&
		p.PlayState == other.PlayState &&
		p.Block == other.Block &&
		sameElems(p.Children, other.Children)
}

// the fields that feed the derived style (Block and Children do not)
func (p AnimationProps) styleDeps() []any {
	return []any{p.Duration, p.TimingFunction, p.Delay, p.Direction, p.Iterations, p.BackfaceVisible, p.FillMode, p.PlayState}
}
