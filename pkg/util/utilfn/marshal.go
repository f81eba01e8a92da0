// Copyright 2026, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package utilfn

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// MarshalIndentNoHTMLString marshals the value to JSON with indentation and SetEscapeHTML(false), returning a string
func MarshalIndentNoHTMLString(v any, prefix, indent string) (string, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent(prefix, indent)
	err := encoder.Encode(v)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

func doMapStructure(out any, input any, weak bool, errorUnused bool) error {
	dconfig := &mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "json",
		WeaklyTypedInput: weak,
		ErrorUnused:      errorUnused,
	}
	decoder, err := mapstructure.NewDecoder(dconfig)
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// does a mapstructure using "json" tags, allowing string <-> bool/number conversions.
// props that come from html attributes or json files are often the "wrong" type.
func DoMapStructureWeak(out any, input any) error {
	return doMapStructure(out, input, true, false)
}

// like DoMapStructureWeak, but keys with no matching field are an error
func DoMapStructureStrict(out any, input any) error {
	return doMapStructure(out, input, true, true)
}
