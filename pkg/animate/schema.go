// Copyright 2026, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package animate

import (
	"github.com/invopop/jsonschema"
	"github.com/wavetermdev/waveanim/pkg/util/utilfn"
)

// PropsSchema returns the json schema for props files (exposed by the cli).
// files give children as html text and may give iterations as a number, so
// those two properties are replaced after reflecting AnimationProps.
func PropsSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		ExpandedStruct: true,
	}
	schema := r.Reflect(&AnimationProps{})
	schema.Title = "AnimationProps"
	minItems := uint64(1)
	schema.Properties.Set("children", &jsonschema.Schema{
		Description: "children as html text, or a list of html strings",
		OneOf: []*jsonschema.Schema{
			{Type: "string"},
			{Type: "array", Items: &jsonschema.Schema{Type: "string"}, MinItems: &minItems},
		},
	})
	schema.Properties.Set("iterations", &jsonschema.Schema{
		Description: "iteration count or infinite",
		Default:     DefaultIterations,
		OneOf: []*jsonschema.Schema{
			{Type: "string"},
			{Type: "number", Minimum: "0"},
		},
	})
	delete(schema.Definitions, "Elem")
	if len(schema.Definitions) == 0 {
		schema.Definitions = nil
	}
	return schema
}

func PropsSchemaJson() (string, error) {
	return utilfn.MarshalIndentNoHTMLString(PropsSchema(), "", "  ")
}
