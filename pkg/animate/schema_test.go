// Copyright 2026, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package animate

import (
	"slices"
	"strings"
	"testing"
)

func TestPropsSchema(t *testing.T) {
	schema := PropsSchema()
	if !slices.Contains(schema.Required, "children") {
		t.Fatalf("children should be required, got %v", schema.Required)
	}
	if slices.Contains(schema.Required, "duration") {
		t.Fatalf("duration should be optional")
	}
	direction, ok := schema.Properties.Get("direction")
	if !ok {
		t.Fatalf("no direction property")
	}
	if !slices.Contains(direction.Enum, any("alternate-reverse")) || len(direction.Enum) != len(DirectionValues) {
		t.Fatalf("bad direction enum: %v", direction.Enum)
	}
	children, ok := schema.Properties.Get("children")
	if !ok || len(children.OneOf) != 2 || children.OneOf[0].Type != "string" ||
		children.OneOf[1].Type != "array" || children.OneOf[1].Items.Type != "string" {
		t.Fatalf("children should be html text or a list of html strings: %#v", children)
	}
	iterations, ok := schema.Properties.Get("iterations")
	if !ok || len(iterations.OneOf) != 2 || iterations.OneOf[1].Type != "number" {
		t.Fatalf("iterations should allow a number: %#v", iterations)
	}
	if _, ok := schema.Definitions["Elem"]; ok {
		t.Fatalf("schema should not reference Elem")
	}
	jsonStr, err := PropsSchemaJson()
	if err != nil {
		t.Fatalf("marshal schema: %v", err)
	}
	if !strings.Contains(jsonStr, `"timingFunction"`) || !strings.Contains(jsonStr, `"backfaceVisible"`) {
		t.Fatalf("schema json missing properties:\n%s", jsonStr)
	}
}
