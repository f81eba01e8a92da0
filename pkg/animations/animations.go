// Copyright 2026, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

// Package animations is the catalog of built-in animated components, one per
// keyframe animation shipped in the companion stylesheet.
package animations

import (
	"fmt"
	"strings"

	"github.com/wavetermdev/waveanim/pkg/animate"
	"github.com/wavetermdev/waveanim/pkg/util/ds"
	"github.com/wavetermdev/waveanim/pkg/util/utilfn"
	"github.com/wavetermdev/waveanim/pkg/vdom"
)

const (
	CategoryAttention = "attention"
	CategoryEntrance  = "entrance"
	CategoryExit      = "exit"
	CategoryCustom    = "custom"
)

type Entry struct {
	Name      string `json:"name"`
	Component string `json:"component"`
	Category  string `json:"category"`
}

// Make builds the animated component for this entry
func (e Entry) Make(opts ...animate.Option) *animate.Animated {
	allOpts := append([]animate.Option{animate.WithName(e.Component)}, opts...)
	return animate.MakeAnimatedComponent("", e.Name, allOpts...)
}

var builtins = map[string][]string{
	CategoryAttention: {
		"bounce", "flash", "pulse", "rubberBand", "shake", "swing", "tada", "wobble", "jello", "heartBeat",
	},
	CategoryEntrance: {
		"bounceIn", "bounceInDown", "bounceInLeft", "bounceInRight", "bounceInUp",
		"fadeIn", "fadeInDown", "fadeInLeft", "fadeInRight", "fadeInUp",
		"flipInX", "flipInY", "lightSpeedIn", "rotateIn", "rollIn",
		"slideInDown", "slideInLeft", "slideInRight", "slideInUp",
		"zoomIn", "zoomInDown", "zoomInLeft", "zoomInRight", "zoomInUp",
	},
	CategoryExit: {
		"bounceOut", "fadeOut", "fadeOutDown", "fadeOutUp", "flipOutX", "flipOutY",
		"hinge", "lightSpeedOut", "rotateOut", "rollOut",
		"slideOutDown", "slideOutLeft", "slideOutRight", "slideOutUp",
		"zoomOut", "zoomOutDown", "zoomOutUp",
	},
}

var catalog = ds.MakeSortedMap[Entry]()

func init() {
	for category, names := range builtins {
		for _, name := range names {
			catalog.Set(name, Entry{Name: name, Component: utilfn.UpperFirst(name), Category: category})
		}
	}
}

// Add registers a custom animation name in the catalog
func Add(animationName string, category string) (Entry, error) {
	if animationName == "" || strings.ContainsAny(animationName, " \t\n;") {
		return Entry{}, fmt.Errorf("invalid animation name %q", animationName)
	}
	if category == "" {
		category = CategoryCustom
	}
	entry := Entry{Name: animationName, Component: utilfn.UpperFirst(animationName), Category: category}
	if !catalog.SetUnless(animationName, entry) {
		return Entry{}, fmt.Errorf("animation %q already in catalog", animationName)
	}
	return entry, nil
}

// Lookup finds an entry by animation name ("fadeIn") or component name ("FadeIn").
// falls back to a case-insensitive match.
func Lookup(name string) (Entry, bool) {
	if entry, ok := catalog.Get(name); ok {
		return entry, true
	}
	var found Entry
	var ok bool
	catalog.Each(func(key string, entry Entry) {
		if ok {
			return
		}
		if entry.Component == name || strings.EqualFold(key, name) {
			found = entry
			ok = true
		}
	})
	return found, ok
}

// Names returns the animation names in sorted order
func Names() []string {
	return catalog.Keys()
}

func All() []Entry {
	rtn := make([]Entry, 0, catalog.Len())
	catalog.Each(func(key string, entry Entry) {
		rtn = append(rtn, entry)
	})
	return rtn
}

// RegisterAll registers every catalog component on root.  opts are applied to
// every component.
func RegisterAll(root *vdom.RootElem, opts ...animate.Option) error {
	for _, entry := range All() {
		if err := entry.Make(opts...).Register(root); err != nil {
			return fmt.Errorf("registering %s: %w", entry.Component, err)
		}
	}
	return nil
}
