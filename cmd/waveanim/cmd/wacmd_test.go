// Copyright 2026, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/wavetermdev/waveanim/pkg/animate"
	"github.com/wavetermdev/waveanim/pkg/propsfile"
)

func captureOutput(t *testing.T) (stdout *bytes.Buffer, stderr *bytes.Buffer) {
	t.Helper()
	origOut, origErr := WrappedStdout, WrappedStderr
	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	WrappedStdout, WrappedStderr = stdout, stderr
	t.Cleanup(func() {
		WrappedStdout, WrappedStderr = origOut, origErr
	})
	return stdout, stderr
}

func mustChildren(t *testing.T, htmlStr string) animate.AnimationProps {
	t.Helper()
	children, err := propsfile.ParseChildren(htmlStr)
	if err != nil {
		t.Fatalf("parse children: %v", err)
	}
	return animate.AnimationProps{Children: children}
}

func TestRenderSessionHtml(t *testing.T) {
	s, err := makeRenderSession("fadeIn", "", animate.ComputeOnMount, 10)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	diags, suppressed := s.render(mustChildren(t, "<b>hi</b>"))
	if len(diags) != 0 || suppressed {
		t.Fatalf("unexpected diags=%v suppressed=%v", diags, suppressed)
	}
	out, err := s.output(FormatHtml)
	if err != nil {
		t.Fatalf("output: %v", err)
	}
	expected := `<span style="animation: fadeIn 1s ease 0s 1 normal none running; backface-visibility: visible; display: inline-block"><b>hi</b></span>`
	if out != expected {
		t.Fatalf("html:\n got: %s\nwant: %s", out, expected)
	}
	if _, err := s.output("xml"); err == nil {
		t.Fatalf("expected format error")
	}
}

func TestRenderSessionSuppressesIdenticalReload(t *testing.T) {
	s, err := makeRenderSession("pulse", "", animate.ComputeOnMount, 10)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	s.render(mustChildren(t, "<b>same</b>"))
	_, suppressed := s.render(mustChildren(t, "<b>same</b>"))
	if !suppressed {
		t.Fatalf("identical reload should be suppressed: %s", s.summary())
	}
	_, suppressed = s.render(mustChildren(t, "<b>different</b>"))
	if suppressed {
		t.Fatalf("changed children should re-render")
	}
}

func TestRenderSessionCustomAnimation(t *testing.T) {
	s, err := makeRenderSession("myKeyframes", "section", animate.ComputeOnMount, 10)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	diags, _ := s.render(animate.AnimationProps{})
	if len(diags) != 1 || diags[0].Kind != animate.KindConfigurationError || !strings.HasPrefix(diags[0].Message, "section must have") {
		t.Fatalf("expected missing children diagnostic, got %v", diags)
	}
	out, _ := s.output(FormatHtml)
	if !strings.Contains(out, "animation: myKeyframes 1s") || !strings.Contains(out, "<section></section>") {
		t.Fatalf("bad output: %s", out)
	}
}

func TestCommands(t *testing.T) {
	t.Run("render", func(t *testing.T) {
		stdout, _ := captureOutput(t)
		rootCmd.SetArgs([]string{"render", "bounce", "--block", "--iterations", "infinite", "--child", "<i>x</i>"})
		if code := Execute(); code != 0 {
			t.Fatalf("exit code %d", code)
		}
		expected := `<div style="animation: bounce 1s ease 0s infinite normal none running; backface-visibility: visible; display: block"><i>x</i></div>`
		if strings.TrimSpace(stdout.String()) != expected {
			t.Fatalf("render output:\n got: %s\nwant: %s", stdout.String(), expected)
		}
	})
	t.Run("strict", func(t *testing.T) {
		_, stderr := captureOutput(t)
		rootCmd.SetArgs([]string{"render", "fadeIn", "--direction", "sideways", "--child", "x", "--strict"})
		if code := Execute(); code != 1 {
			t.Fatalf("expected exit code 1, got %d", code)
		}
		if !strings.Contains(stderr.String(), "InvalidEnumValue") {
			t.Fatalf("diagnostic not printed: %s", stderr.String())
		}
	})
	t.Run("list", func(t *testing.T) {
		stdout, _ := captureOutput(t)
		rootCmd.SetArgs([]string{"list", "--category", "exit"})
		if code := Execute(); code != 0 {
			t.Fatalf("exit code %d", code)
		}
		out := stdout.String()
		if !strings.Contains(out, "fadeOut") || !strings.Contains(out, "FadeOut") || strings.Contains(out, "fadeInUp") {
			t.Fatalf("bad list output: %s", out)
		}
	})
	t.Run("schema", func(t *testing.T) {
		stdout, _ := captureOutput(t)
		rootCmd.SetArgs([]string{"schema"})
		if code := Execute(); code != 0 {
			t.Fatalf("exit code %d", code)
		}
		if !strings.Contains(stdout.String(), `"playState"`) {
			t.Fatalf("bad schema output: %s", stdout.String())
		}
	})
}
