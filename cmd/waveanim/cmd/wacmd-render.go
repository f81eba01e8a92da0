// Copyright 2026, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/spf13/cobra"
	"github.com/wavetermdev/waveanim/pkg/animate"
	"github.com/wavetermdev/waveanim/pkg/animations"
	"github.com/wavetermdev/waveanim/pkg/propsfile"
	"github.com/wavetermdev/waveanim/pkg/util/sigutil"
	"github.com/wavetermdev/waveanim/pkg/util/utilfn"
	"github.com/wavetermdev/waveanim/pkg/vdom"
	"github.com/wavetermdev/waveanim/pkg/wavebase"
)

const (
	FormatHtml = "html"
	FormatJson = "json"
)

var (
	renderFlagProps   animate.AnimationProps
	renderChildHtml   string
	renderWrapped     string
	renderPropsFile   string
	renderFormat      string
	renderPolicy      string
	renderStrict      bool
	renderWatch       bool
	renderMaxPasses   int
	renderShowSummary bool
)

var renderCmd = &cobra.Command{
	Use:   "render [flags] animation",
	Short: "Render an animated component and print the resulting tree",
	Long: `Render mounts the animation wrapper in a fresh root, runs its mount effects
and prints the rendered tree.  animation is a built-in name (see 'waveanim list')
or any keyframe name.

Examples:
  waveanim render fadeIn --child '<b>hello</b>'
  waveanim render bounce --block --iterations infinite --child '<img src="logo.png"/>'
  waveanim render zoomIn --props props.yaml --format json
  waveanim render pulse --props props.json --watch`,
	Args: cobra.ExactArgs(1),
	RunE: renderRun,
}

func init() {
	flags := renderCmd.Flags()
	flags.StringVar(&renderFlagProps.Duration, "duration", "", "animation duration (default 1s)")
	flags.StringVar(&renderFlagProps.TimingFunction, "timing", "", "timing function (default ease)")
	flags.StringVar(&renderFlagProps.Delay, "delay", "", "animation delay (default 0s)")
	flags.StringVar(&renderFlagProps.Direction, "direction", "", "animation direction (default normal)")
	flags.StringVar(&renderFlagProps.Iterations, "iterations", "", "iteration count or infinite (default 1)")
	flags.StringVar(&renderFlagProps.BackfaceVisible, "backface", "", "backface visibility (default visible)")
	flags.StringVar(&renderFlagProps.FillMode, "fill-mode", "", "fill mode (default none)")
	flags.StringVar(&renderFlagProps.PlayState, "play-state", "", "play state (default running)")
	flags.BoolVar(&renderFlagProps.Block, "block", false, "use a block (div) container")
	flags.StringVar(&renderChildHtml, "child", "", "children as html")
	flags.StringVar(&renderWrapped, "wrap", "", "tag to wrap the children in (inside the container)")
	flags.StringVar(&renderPropsFile, "props", "", "props file (.json, .yaml)")
	flags.StringVar(&renderFormat, "format", FormatHtml, "output format (html, json)")
	flags.StringVar(&renderPolicy, "policy", "compute-on-mount", "style policy (compute-on-mount, recompute-on-change)")
	flags.BoolVar(&renderStrict, "strict", false, "exit with an error if there are any diagnostics")
	flags.BoolVar(&renderWatch, "watch", false, "re-render when the props file changes (requires --props)")
	flags.IntVar(&renderMaxPasses, "max-passes", 10, "maximum effect/render passes")
	flags.BoolVar(&renderShowSummary, "summary", false, "print render/skip counts after rendering")
	rootCmd.AddCommand(renderCmd)
}

// renderSession owns a root with a single animated component.  all access
// goes through lock so watch updates never overlap.
type renderSession struct {
	lock         sync.Mutex
	root         *vdom.RootElem
	anim         *animate.Animated
	diags        []animate.Diagnostic
	lastChildren []vdom.Elem
	maxPasses    int
}

func makeAnimated(animationName string, wrapped string, policy animate.StylePolicy, reporter animate.Reporter) *animate.Animated {
	opts := []animate.Option{animate.WithStylePolicy(policy), animate.WithReporter(reporter)}
	if entry, ok := animations.Lookup(animationName); ok {
		opts = append(opts, animate.WithName(entry.Component))
		return animate.MakeAnimatedComponent(wrapped, entry.Name, opts...)
	}
	return animate.MakeAnimatedComponent(wrapped, animationName, opts...)
}

func makeRenderSession(animationName string, wrapped string, policy animate.StylePolicy, maxPasses int) (*renderSession, error) {
	s := &renderSession{root: vdom.MakeRoot(), maxPasses: maxPasses}
	s.anim = makeAnimated(animationName, wrapped, policy, func(d animate.Diagnostic) {
		s.diags = append(s.diags, d)
	})
	if err := s.anim.Register(s.root); err != nil {
		return nil, fmt.Errorf("registering %s: %w", s.anim.ComponentName(), err)
	}
	return s, nil
}

// must hold lock
func (s *renderSession) component() *vdom.ComponentImpl {
	comps := s.root.FindComponents(s.anim.ComponentName())
	if len(comps) == 0 {
		return nil
	}
	return comps[0]
}

// render renders props and returns the diagnostics for this pass.  suppressed is
// true when the component reused its previous output.
func (s *renderSession) render(props animate.AnimationProps) (diags []animate.Diagnostic, suppressed bool) {
	s.lock.Lock()
	defer s.lock.Unlock()
	// unchanged children keep their identity so identical reloads are suppressed
	if s.lastChildren != nil && reflect.DeepEqual(s.lastChildren, props.Children) {
		props.Children = s.lastChildren
	}
	s.lastChildren = props.Children
	s.diags = nil
	var skipsBefore int
	if comp := s.component(); comp != nil {
		skipsBefore = comp.SkipCount
	}
	s.root.Render(s.anim.Elem(props))
	s.root.RunWorkUntilIdle(s.maxPasses)
	if comp := s.component(); comp != nil {
		suppressed = comp.SkipCount > skipsBefore
	}
	return s.diags, suppressed
}

func (s *renderSession) output(format string) (string, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	vd := s.root.MakeVDom()
	switch format {
	case FormatHtml:
		return vdom.RenderHTML(vd), nil
	case FormatJson:
		return utilfn.MarshalIndentNoHTMLString(vd, "", "  ")
	}
	return "", fmt.Errorf("invalid format %q (expected html or json)", format)
}

func (s *renderSession) summary() string {
	s.lock.Lock()
	defer s.lock.Unlock()
	comp := s.component()
	if comp == nil {
		return "component not mounted"
	}
	return fmt.Sprintf("%s renders=%d skipped=%d mounted=%v", s.anim.ComponentName(), comp.RenderCount, comp.SkipCount, comp.Mounted)
}

// overlays the flags the user set explicitly on top of base
func applyFlagOverrides(cmd *cobra.Command, base animate.AnimationProps) animate.AnimationProps {
	flags := cmd.Flags()
	overrides := []struct {
		flag string
		dst  *string
		src  string
	}{
		{"duration", &base.Duration, renderFlagProps.Duration},
		{"timing", &base.TimingFunction, renderFlagProps.TimingFunction},
		{"delay", &base.Delay, renderFlagProps.Delay},
		{"direction", &base.Direction, renderFlagProps.Direction},
		{"iterations", &base.Iterations, renderFlagProps.Iterations},
		{"backface", &base.BackfaceVisible, renderFlagProps.BackfaceVisible},
		{"fill-mode", &base.FillMode, renderFlagProps.FillMode},
		{"play-state", &base.PlayState, renderFlagProps.PlayState},
	}
	for _, o := range overrides {
		if flags.Changed(o.flag) {
			*o.dst = o.src
		}
	}
	if flags.Changed("block") {
		base.Block = renderFlagProps.Block
	}
	return base
}

func buildProps(cmd *cobra.Command, fileProps *animate.AnimationProps) (animate.AnimationProps, error) {
	var props animate.AnimationProps
	if fileProps != nil {
		props = *fileProps
	}
	props = applyFlagOverrides(cmd, props)
	if cmd.Flags().Changed("child") {
		children, err := propsfile.ParseChildren(renderChildHtml)
		if err != nil {
			return props, err
		}
		props.Children = children
	}
	return props, nil
}

func renderAndPrint(s *renderSession, props animate.AnimationProps, format string, strict bool) error {
	diags, suppressed := s.render(props)
	if suppressed {
		WriteStderr("render suppressed (props unchanged)\n")
		return nil
	}
	writeDiagnostics(diags)
	if strict {
		if err := animate.DiagnosticsError(diags); err != nil {
			return fmt.Errorf("strict mode: %w", err)
		}
	}
	out, err := s.output(format)
	if err != nil {
		return err
	}
	WriteStdout("%s\n", out)
	if renderShowSummary {
		WriteStderr("%s\n", s.summary())
	}
	return nil
}

func renderRun(cmd *cobra.Command, args []string) error {
	policy, err := animate.ParseStylePolicy(renderPolicy)
	if err != nil {
		return err
	}
	if renderFormat != FormatHtml && renderFormat != FormatJson {
		return fmt.Errorf("invalid format %q (expected html or json)", renderFormat)
	}
	if renderWatch && renderPropsFile == "" {
		return fmt.Errorf("--watch requires --props")
	}
	propsFileName := ""
	if renderPropsFile != "" {
		propsFileName, err = wavebase.ExpandHomeDir(renderPropsFile)
		if err != nil {
			return err
		}
	}
	s, err := makeRenderSession(args[0], renderWrapped, policy, renderMaxPasses)
	if err != nil {
		return err
	}
	if renderWatch {
		return watchAndRender(cmd, s, propsFileName)
	}
	var fileProps *animate.AnimationProps
	if propsFileName != "" {
		loaded, err := propsfile.Load(propsFileName)
		if err != nil {
			return err
		}
		fileProps = &loaded
	}
	props, err := buildProps(cmd, fileProps)
	if err != nil {
		return err
	}
	return renderAndPrint(s, props, renderFormat, renderStrict)
}

func watchAndRender(cmd *cobra.Command, s *renderSession, propsFileName string) error {
	w, err := propsfile.MakeWatcher(propsFileName, func(update propsfile.WatcherUpdate) {
		if update.Err != nil {
			WriteStderr("error: %v\n", update.Err)
			return
		}
		props, err := buildProps(cmd, &update.Props)
		if err != nil {
			WriteStderr("error: %v\n", err)
			return
		}
		if err := renderAndPrint(s, props, renderFormat, renderStrict); err != nil {
			WriteStderr("error: %v\n", err)
		}
	})
	if err != nil {
		return err
	}
	defer w.Close()
	doneCh := make(chan string, 1)
	stop := sigutil.InstallShutdownSignalHandlers(func(reason string) {
		doneCh <- reason
	})
	defer stop()
	WriteStderr("watching %s (ctrl-c to exit)\n", wavebase.ReplaceHomeDir(propsFileName))
	w.Start()
	WriteStderr("%s, exiting\n", <-doneCh)
	return nil
}
