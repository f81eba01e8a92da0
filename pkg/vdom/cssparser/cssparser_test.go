// Copyright 2026, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package cssparser

import (
	"fmt"
	"log"
	"testing"
)

func compareMaps(a, b map[string]string) error {
	if len(a) != len(b) {
		return fmt.Errorf("map length mismatch: %d != %d", len(a), len(b))
	}
	for k, v := range a {
		if b[k] != v {
			return fmt.Errorf("value mismatch for key %s: %q != %q", k, v, b[k])
		}
	}
	return nil
}

func TestParse1(t *testing.T) {
	style := `background: url("example;with;semicolons.jpg"); color: red; margin-right: 5px; content: "hello;world";`
	p := MakeParser(style)
	parsed, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	expected := map[string]string{
		"background":   `url("example;with;semicolons.jpg")`,
		"color":        "red",
		"margin-right": "5px",
		"content":      `"hello;world"`,
	}
	if err := compareMaps(parsed, expected); err != nil {
		t.Fatalf("Parsed map does not match expected: %v", err)
	}
}

func TestParseAnimation(t *testing.T) {
	style := `
		animation: bounce 2s cubic-bezier(0.1, 0.7, 1.0, 0.1)
			0s infinite alternate both running;
		Backface-Visibility: hidden;
		display: inline-block`
	p := MakeParser(style)
	decls, err := p.ParseDecls()
	if err != nil {
		t.Fatalf("ParseDecls failed: %v", err)
	}
	if len(decls) != 3 {
		t.Fatalf("expected 3 decls, got %d: %v", len(decls), decls)
	}
	if decls[0].Prop != "animation" || decls[0].Value != "bounce 2s cubic-bezier(0.1, 0.7, 1.0, 0.1) 0s infinite alternate both running" {
		t.Errorf("bad animation decl: %#v", decls[0])
	}
	if decls[1].Prop != "backface-visibility" || decls[1].Value != "hidden" {
		t.Errorf("bad backface decl: %#v", decls[1])
	}
	if decls[2].Prop != "display" || decls[2].Value != "inline-block" {
		t.Errorf("bad display decl: %#v", decls[2])
	}
}

func TestParseRepeatedProp(t *testing.T) {
	p := MakeParser(`display: block; display: inline-block`)
	parsed, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if parsed["display"] != "inline-block" {
		t.Fatalf("expected last display to win, got %q", parsed["display"])
	}
}

func TestParserErrors(t *testing.T) {
	badStyles := []string{
		`hello more: bad;`,
		`background: url("example.jpg`,
		`foo: url(...`,
		`color: red) ;`,
		`: red`,
	}
	for _, style := range badStyles {
		p := MakeParser(style)
		_, err := p.Parse()
		if err == nil {
			t.Fatalf("expected error for %q, got nil", style)
		}
		log.Printf("got expected error: %v\n", err)
	}
}
