// Copyright 2026, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package animate

import (
	"errors"
	"fmt"
	"log"
	"slices"
)

type DiagnosticKind string

const (
	KindConfigurationError DiagnosticKind = "ConfigurationError"
	KindInvalidEnumValue   DiagnosticKind = "InvalidEnumValue"
)

// Diagnostic is an advisory message about a component's props.  diagnostics
// never stop rendering, invalid values are still passed through to the style.
type Diagnostic struct {
	Kind      DiagnosticKind `json:"kind"`
	Component string         `json:"component"`
	Field     string         `json:"field,omitempty"`
	Value     string         `json:"value,omitempty"`
	Message   string         `json:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Kind, d.Message)
}

type diagError struct {
	diag Diagnostic
}

func (e diagError) Error() string {
	return e.diag.String()
}

// Reporter receives diagnostics for a render.  it is called synchronously
// from the render pass.
type Reporter func(Diagnostic)

func LogReporter(d Diagnostic) {
	log.Printf("[animate] %s\n", d.String())
}

// DiscardReporter drops all diagnostics
func DiscardReporter(d Diagnostic) {}

func ValidTimingFunction(val string) bool {
	if slices.Contains(TimingKeywords, val) {
		return true
	}
	return stepsRe.MatchString(val) || cubicBezierRe.MatchString(val)
}

func enumDiag(componentName string, field string, val string, allowed []string) Diagnostic {
	return Diagnostic{
		Kind:      KindInvalidEnumValue,
		Component: componentName,
		Field:     field,
		Value:     val,
		Message:   fmt.Sprintf("%s: invalid %s %q, expected one of %v", componentName, field, val, allowed),
	}
}

// Validate checks props against the accepted enumerations.  unset fields are
// checked with their defaults (which are always valid).  componentName is used
// in the messages.
func Validate(componentName string, props AnimationProps) []Diagnostic {
	var rtn []Diagnostic
	if len(props.Children) == 0 {
		rtn = append(rtn, Diagnostic{
			Kind:      KindConfigurationError,
			Component: componentName,
			Field:     "children",
			Message:   fmt.Sprintf("%s must have at least one child element to perform the animation", componentName),
		})
	}
	p := props.WithDefaults()
	if !ValidTimingFunction(p.TimingFunction) {
		rtn = append(rtn, Diagnostic{
			Kind:      KindInvalidEnumValue,
			Component: componentName,
			Field:     "timingFunction",
			Value:     p.TimingFunction,
			Message:   fmt.Sprintf("%s: invalid timingFunction %q, expected one of %v, steps(int[, start|end]) or cubic-bezier(n,n,n,n)", componentName, p.TimingFunction, TimingKeywords),
		})
	}
	if !slices.Contains(DirectionValues, p.Direction) {
		rtn = append(rtn, enumDiag(componentName, "direction", p.Direction, DirectionValues))
	}
	if !slices.Contains(BackfaceValues, p.BackfaceVisible) {
		rtn = append(rtn, enumDiag(componentName, "backfaceVisible", p.BackfaceVisible, BackfaceValues))
	}
	if !slices.Contains(FillModeValues, p.FillMode) {
		rtn = append(rtn, enumDiag(componentName, "fillMode", p.FillMode, FillModeValues))
	}
	if !slices.Contains(PlayStateValues, p.PlayState) {
		rtn = append(rtn, enumDiag(componentName, "playState", p.PlayState, PlayStateValues))
	}
	return rtn
}

// DiagnosticsError joins diagnostics into a single error (nil if there are none)
func DiagnosticsError(diags []Diagnostic) error {
	if len(diags) == 0 {
		return nil
	}
	errs := make([]error, 0, len(diags))
	for _, d := range diags {
		errs = append(errs, diagError{diag: d})
	}
	return errors.Join(errs...)
}
