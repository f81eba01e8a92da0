// Copyright 2026, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package animate

import (
	"errors"
	"strings"
	"testing"

	"github.com/wavetermdev/waveanim/pkg/vdom"
)

func TestValidTimingFunction(t *testing.T) {
	valid := []string{
		"linear", "ease", "ease-in", "ease-out", "ease-in-out", "step-start", "step-end",
		"steps(4)", "steps(4, end)", "steps( 2 ,start )",
		"cubic-bezier(0.1, 0.7, 1.0, 0.1)", "cubic-bezier(.25,-1,0,1.5)",
	}
	for _, val := range valid {
		if !ValidTimingFunction(val) {
			t.Errorf("expected %q to be valid", val)
		}
	}
	invalid := []string{"", "fast", "steps()", "steps(2, middle)", "cubic-bezier(1,2,3)", "cubic-bezier(a,b,c,d)", "EASE"}
	for _, val := range invalid {
		if ValidTimingFunction(val) {
			t.Errorf("expected %q to be invalid", val)
		}
	}
}

func TestValidateEnums(t *testing.T) {
	kids := []vdom.Elem{vdom.TextElem("x")}
	tests := []struct {
		name  string
		props AnimationProps
		field string
	}{
		{"direction", AnimationProps{Direction: "sideways"}, "direction"},
		{"fillMode", AnimationProps{FillMode: "always"}, "fillMode"},
		{"playState", AnimationProps{PlayState: "stopped"}, "playState"},
		{"backface", AnimationProps{BackfaceVisible: "maybe"}, "backfaceVisible"},
		{"timing", AnimationProps{TimingFunction: "bouncy"}, "timingFunction"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.props.Children = kids
			diags := Validate("Box", tc.props)
			if len(diags) != 1 {
				t.Fatalf("expected one diagnostic, got %v", diags)
			}
			if diags[0].Kind != KindInvalidEnumValue || diags[0].Field != tc.field || diags[0].Component != "Box" {
				t.Fatalf("bad diagnostic: %#v", diags[0])
			}
		})
	}
	if diags := Validate("Box", AnimationProps{Children: kids}); len(diags) != 0 {
		t.Fatalf("defaults should be valid, got %v", diags)
	}
	all := AnimationProps{
		Direction:       "alternate-reverse",
		FillMode:        "both",
		PlayState:       "paused",
		BackfaceVisible: "hidden",
		TimingFunction:  "steps(3, start)",
		Duration:        "anything",
		Iterations:      "infinite",
		Children:        kids,
	}
	if diags := Validate("Box", all); len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diags)
	}
}

func TestDiagnosticsError(t *testing.T) {
	if err := DiagnosticsError(nil); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	diags := Validate("Box", AnimationProps{Direction: "up"})
	err := DiagnosticsError(diags)
	if err == nil {
		t.Fatalf("expected error")
	}
	var de diagError
	if !errors.As(err, &de) {
		t.Fatalf("expected a diagError in %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "ConfigurationError: Box must have at least one child") || !strings.Contains(msg, "InvalidEnumValue: Box: invalid direction \"up\"") {
		t.Fatalf("bad error text: %s", msg)
	}
}
