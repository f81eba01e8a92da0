// Copyright 2026, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package animate

import "strings"

const (
	DisplayBlock       = "block"
	DisplayInlineBlock = "inline-block"
)

// DerivedStyle is the per-instance style computed from the props.
// the zero value means "not computed yet".
type DerivedStyle struct {
	Animation          string `json:"animation,omitempty"`
	BackfaceVisibility string `json:"backfaceVisibility,omitempty"`
}

// ComposeAnimation builds the animation shorthand:
// "<name> <duration> <timing> <delay> <iterations> <direction> <fillmode> <playstate>".
// values are written verbatim (invalid values are not corrected).
func ComposeAnimation(animationName string, props AnimationProps) string {
	p := props.WithDefaults()
	return strings.Join([]string{
		animationName,
		p.Duration,
		p.TimingFunction,
		p.Delay,
		p.Iterations,
		p.Direction,
		p.FillMode,
		p.PlayState,
	}, " ")
}

func DeriveStyle(animationName string, props AnimationProps) DerivedStyle {
	return DerivedStyle{
		Animation:          ComposeAnimation(animationName, props),
		BackfaceVisibility: props.WithDefaults().BackfaceVisible,
	}
}

func (s DerivedStyle) IsZero() bool {
	return s == DerivedStyle{}
}

// StyleMap returns the style prop for the container: the derived fields
// first, then display on top (display always wins).
func (s DerivedStyle) StyleMap(display string) map[string]any {
	rtn := make(map[string]any)
	if s.Animation != "" {
		rtn["animation"] = s.Animation
	}
	if s.BackfaceVisibility != "" {
		rtn["backfaceVisibility"] = s.BackfaceVisibility
	}
	rtn["display"] = display
	return rtn
}
