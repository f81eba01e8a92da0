// Copyright 2026, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package propsfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/invopop/jsonschema"
	"github.com/wavetermdev/waveanim/pkg/animate"
	"gopkg.in/yaml.v2"
)

const (
	jsonFixture = `{"duration": "2s", "iterations": 3, "block": true, "children": "<b>hi</b><i>there</i>"}`
	yamlFixture = "direction: alternate\niterations: infinite\nchildren:\n  - <span>a</span>\n  - plain text\n"
)

func writeFile(t *testing.T, dir string, name string, contents string) string {
	t.Helper()
	fileName := filepath.Join(dir, name)
	if err := os.WriteFile(fileName, []byte(contents), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return fileName
}

func TestLoadJson(t *testing.T) {
	dir := t.TempDir()
	fileName := writeFile(t, dir, "props.json", jsonFixture)
	props, err := Load(fileName)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if props.Duration != "2s" || props.Iterations != "3" || !props.Block {
		t.Fatalf("bad props: %#v", props)
	}
	if len(props.Children) != 2 || props.Children[0].Tag != "b" || props.Children[1].Tag != "i" {
		t.Fatalf("bad children: %#v", props.Children)
	}
}

func TestLoadYaml(t *testing.T) {
	dir := t.TempDir()
	fileName := writeFile(t, dir, "props.yaml", yamlFixture)
	props, err := Load(fileName)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if props.Direction != "alternate" || props.Iterations != "infinite" || props.Block {
		t.Fatalf("bad props: %#v", props)
	}
	if len(props.Children) != 2 || props.Children[0].Tag != "span" || props.Children[1].Text != "plain text" {
		t.Fatalf("bad children: %#v", props.Children)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(writeFile(t, dir, "props.txt", "{}")); err == nil {
		t.Errorf("expected extension error")
	}
	if _, err := Load(writeFile(t, dir, "unknown.json", `{"speed": "fast"}`)); err == nil || !strings.Contains(err.Error(), "speed") {
		t.Errorf("expected unknown key error, got %v", err)
	}
	if _, err := Load(writeFile(t, dir, "badchild.json", `{"children": "<div><span></div>"}`)); err == nil {
		t.Errorf("expected children html error")
	}
	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Errorf("expected missing file error")
	}
}

func TestParseChildrenEmpty(t *testing.T) {
	elems, err := ParseChildren("   ")
	if err != nil || elems != nil {
		t.Fatalf("expected no children, got %v %v", elems, err)
	}
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	fileName := writeFile(t, dir, "props.json", `{"duration": "1s", "children": "x"}`)
	updates := make(chan WatcherUpdate, 32)
	w, err := MakeWatcher(fileName, func(update WatcherUpdate) {
		updates <- update
	})
	if err != nil {
		t.Fatalf("make watcher: %v", err)
	}
	defer w.Close()
	w.Start()
	first := <-updates
	if first.Err != nil || first.Props.Duration != "1s" {
		t.Fatalf("bad initial update: %#v", first)
	}
	writeFile(t, dir, "other.json", `{"duration": "9s"}`)
	writeFile(t, dir, "props.json", `{"duration": "2s", "children": "x"}`)
	timeout := time.After(5 * time.Second)
	for {
		select {
		case update := <-updates:
			if update.Props.Duration == "9s" {
				t.Fatalf("update for unrelated file")
			}
			if update.Err == nil && update.Props.Duration == "2s" {
				if w.GetLast().Props.Duration != "2s" {
					t.Fatalf("GetLast not updated")
				}
				return
			}
		case <-timeout:
			t.Fatalf("timed out waiting for change")
		}
	}
}

func schemaTypes(s *jsonschema.Schema) []string {
	if s.Type != "" {
		return []string{s.Type}
	}
	var rtn []string
	for _, sub := range s.OneOf {
		rtn = append(rtn, sub.Type)
	}
	return rtn
}

func jsonType(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int64, float64:
		return "number"
	case []any:
		return "array"
	}
	return "object"
}

func TestFixturesMatchSchema(t *testing.T) {
	schema := animate.PropsSchema()
	var jsonDoc, yamlDoc map[string]any
	if err := json.Unmarshal([]byte(jsonFixture), &jsonDoc); err != nil {
		t.Fatalf("json: %v", err)
	}
	if err := yaml.Unmarshal([]byte(yamlFixture), &yamlDoc); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	for _, doc := range []map[string]any{jsonDoc, yamlDoc} {
		for key, val := range doc {
			prop, ok := schema.Properties.Get(key)
			if !ok {
				t.Fatalf("schema has no property %q", key)
			}
			types := schemaTypes(prop)
			if !slices.Contains(types, jsonType(val)) {
				t.Errorf("%s: value %#v (%s) not allowed by schema types %v", key, val, jsonType(val), types)
			}
			if _, err := DecodeProps(map[string]any{key: val}); err != nil {
				t.Errorf("%s: decode: %v", key, err)
			}
		}
	}
}
