// Copyright 2026, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

// Package propsfile loads animation props from json or yaml files.
package propsfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wavetermdev/waveanim/pkg/animate"
	"github.com/wavetermdev/waveanim/pkg/util/utilfn"
	"github.com/wavetermdev/waveanim/pkg/vdom"
	"gopkg.in/yaml.v2"
)

const (
	FormatJson = "json"
	FormatYaml = "yaml"
)

func FormatFromFileName(fileName string) (string, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".json":
		return FormatJson, nil
	case ".yaml", ".yml":
		return FormatYaml, nil
	}
	return "", fmt.Errorf("unsupported props file extension %q (expected .json, .yaml or .yml)", filepath.Ext(fileName))
}

func Load(fileName string) (animate.AnimationProps, error) {
	format, err := FormatFromFileName(fileName)
	if err != nil {
		return animate.AnimationProps{}, err
	}
	data, err := os.ReadFile(fileName)
	if err != nil {
		return animate.AnimationProps{}, fmt.Errorf("reading props file: %w", err)
	}
	props, err := Parse(data, format)
	if err != nil {
		return animate.AnimationProps{}, fmt.Errorf("props file %s: %w", filepath.Base(fileName), err)
	}
	return props, nil
}

func Parse(data []byte, format string) (animate.AnimationProps, error) {
	var m map[string]any
	switch format {
	case FormatJson:
		if err := json.Unmarshal(data, &m); err != nil {
			return animate.AnimationProps{}, fmt.Errorf("parsing json: %w", err)
		}
	case FormatYaml:
		if err := yaml.Unmarshal(data, &m); err != nil {
			return animate.AnimationProps{}, fmt.Errorf("parsing yaml: %w", err)
		}
	default:
		return animate.AnimationProps{}, fmt.Errorf("unknown props format %q", format)
	}
	return DecodeProps(m)
}

// ParseChildren binds an html fragment into child elements
func ParseChildren(htmlStr string) ([]vdom.Elem, error) {
	if strings.TrimSpace(htmlStr) == "" {
		return nil, nil
	}
	elem, err := vdom.BindWithError(htmlStr, nil)
	if err != nil {
		return nil, fmt.Errorf("parsing children html: %w", err)
	}
	if elem == nil {
		return nil, nil
	}
	if elem.Tag == vdom.FragmentTag {
		return elem.Children, nil
	}
	return []vdom.Elem{*elem}, nil
}

func decodeChildren(val any) ([]vdom.Elem, error) {
	switch v := val.(type) {
	case nil:
		return nil, nil
	case string:
		return ParseChildren(v)
	case []any:
		var rtn []vdom.Elem
		for idx, part := range v {
			htmlStr, ok := part.(string)
			if !ok {
				return nil, fmt.Errorf("children[%d]: expected an html string, got %T", idx, part)
			}
			elems, err := ParseChildren(htmlStr)
			if err != nil {
				return nil, fmt.Errorf("children[%d]: %w", idx, err)
			}
			rtn = append(rtn, elems...)
		}
		return rtn, nil
	}
	return nil, fmt.Errorf("children: expected an html string or a list of html strings, got %T", val)
}

// DecodeProps converts a generic map (json/yaml document) into props.
// "children" is html text, unknown keys are an error.
func DecodeProps(m map[string]any) (animate.AnimationProps, error) {
	var props animate.AnimationProps
	fields := make(map[string]any, len(m))
	for k, v := range m {
		if k == vdom.ChildrenPropKey {
			continue
		}
		fields[k] = v
	}
	if err := utilfn.DoMapStructureStrict(&props, fields); err != nil {
		return props, err
	}
	children, err := decodeChildren(m[vdom.ChildrenPropKey])
	if err != nil {
		return props, err
	}
	props.Children = children
	return props, nil
}
