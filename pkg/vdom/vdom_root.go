// Copyright 2026, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package vdom

import (
	"context"
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/google/uuid"
	"github.com/wavetermdev/waveanim/pkg/panichandler"
	"github.com/wavetermdev/waveanim/pkg/util/utilfn"
)

type vdomContextKeyType struct{}

var vdomContextKey = vdomContextKeyType{}

type VDomContextVal struct {
	Root    *RootElem
	Comp    *ComponentImpl
	HookIdx int
}

// RootElem owns the persistent component tree.  Render, RunWork and
// ForceRender must be called from a single goroutine.
type RootElem struct {
	OuterCtx        context.Context
	Root            *ComponentImpl
	CFuncs          map[string]any
	CompMap         map[string]*ComponentImpl // component waveid -> component
	EffectWorkQueue []*EffectWorkElem
	NeedsRenderMap  map[string]bool

	// waveids that asked for a render in the current pass
	dirtyMap map[string]bool
}

func (r *RootElem) AddRenderWork(id string) {
	if r.NeedsRenderMap == nil {
		r.NeedsRenderMap = make(map[string]bool)
	}
	r.NeedsRenderMap[id] = true
}

func (r *RootElem) AddEffectWork(id string, effectIndex int) {
	r.EffectWorkQueue = append(r.EffectWorkQueue, &EffectWorkElem{Id: id, EffectIndex: effectIndex})
}

func (r *RootElem) HasWork() bool {
	return len(r.EffectWorkQueue) > 0 || len(r.NeedsRenderMap) > 0
}

func MakeRoot() *RootElem {
	return &RootElem{
		Root:    nil,
		CFuncs:  make(map[string]any),
		CompMap: make(map[string]*ComponentImpl),
	}
}

func (r *RootElem) SetOuterCtx(ctx context.Context) {
	r.OuterCtx = ctx
}

func validateCFunc(cfunc any) error {
	if cfunc == nil {
		return fmt.Errorf("component function cannot be nil")
	}
	rval := reflect.ValueOf(cfunc)
	if rval.Kind() != reflect.Func {
		return fmt.Errorf("component function must be a function")
	}
	rtype := rval.Type()
	if rtype.NumIn() != 2 {
		return fmt.Errorf("component function must take exactly 2 arguments")
	}
	if rtype.NumOut() != 1 {
		return fmt.Errorf("component function must return exactly 1 value")
	}
	// first arg must be context.Context
	if rtype.In(0) != reflect.TypeOf((*context.Context)(nil)).Elem() {
		return fmt.Errorf("component function first argument must be context.Context")
	}
	// second can a map[string]any, or a struct, or ptr to struct (we'll reflect the value into it)
	arg2Type := rtype.In(1)
	if arg2Type.Kind() == reflect.Ptr {
		arg2Type = arg2Type.Elem()
	}
	if arg2Type.Kind() == reflect.Map {
		if arg2Type.Key().Kind() != reflect.String ||
			!(arg2Type.Elem().Kind() == reflect.Interface && arg2Type.Elem().NumMethod() == 0) {
			return fmt.Errorf("map argument must be map[string]any")
		}
	} else if arg2Type.Kind() != reflect.Struct &&
		!(arg2Type.Kind() == reflect.Interface && arg2Type.NumMethod() == 0) {
		return fmt.Errorf("component function second argument must be map[string]any, struct, or any")
	}
	return nil
}

func (r *RootElem) RegisterComponent(name string, cfunc any) error {
	if name == "" || IsBaseTag(name) {
		return fmt.Errorf("invalid component name %q (must start with an uppercase letter)", name)
	}
	if err := validateCFunc(cfunc); err != nil {
		return fmt.Errorf("registering component %q: %w", name, err)
	}
	r.CFuncs[name] = cfunc
	return nil
}

func (r *RootElem) Render(elem *Elem) {
	r.render(elem, &r.Root)
}

// ForceRender re-renders the whole tree from the current root element.
// components that return their previous output are not reconciled again.
func (r *RootElem) ForceRender() {
	if r.Root == nil {
		return
	}
	r.render(r.Root.Elem, &r.Root)
}

// RunWork runs queued effects (this is the "mounted" signal for components)
// and then performs a render pass if any state changed.
func (r *RootElem) RunWork() {
	workQueue := r.EffectWorkQueue
	r.EffectWorkQueue = nil
	// first, run effect cleanups
	for _, work := range workQueue {
		comp := r.CompMap[work.Id]
		if comp == nil {
			continue
		}
		hook := comp.Hooks[work.EffectIndex]
		if hook.UnmountFn != nil {
			hook.UnmountFn()
			hook.UnmountFn = nil
		}
	}
	// now run, new effects
	for _, work := range workQueue {
		comp := r.CompMap[work.Id]
		if comp == nil {
			continue
		}
		comp.Mounted = true
		hook := comp.Hooks[work.EffectIndex]
		if hook.Fn != nil {
			hook.UnmountFn = r.runEffectWithGuard(comp.Tag, hook.Fn)
		}
	}
	// now check if we need a render
	if len(r.NeedsRenderMap) > 0 && r.Root != nil {
		r.dirtyMap = r.NeedsRenderMap
		r.NeedsRenderMap = nil
		r.render(r.Root.Elem, &r.Root)
		r.dirtyMap = nil
	}
}

// RunWorkUntilIdle calls RunWork until there is no queued work or maxPasses is hit.
// returns the number of passes run.
func (r *RootElem) RunWorkUntilIdle(maxPasses int) int {
	passes := 0
	for passes < maxPasses && r.HasWork() {
		r.RunWork()
		passes++
	}
	if r.HasWork() {
		log.Printf("[vdom] work still pending after %d passes\n", passes)
	}
	return passes
}

func (r *RootElem) runEffectWithGuard(compTag string, fn func() func()) (unmountFn func()) {
	defer func() {
		panichandler.PanicHandler(fmt.Sprintf("effect in component %q", compTag), recover())
	}()
	return fn()
}

func (r *RootElem) render(elem *Elem, comp **ComponentImpl) {
	if elem == nil || elem.Tag == "" {
		r.unmount(comp)
		return
	}
	elemKey := elem.Key()
	if *comp == nil || !(*comp).compMatch(elem.Tag, elemKey) {
		r.unmount(comp)
		r.createComp(elem.Tag, elemKey, comp)
	}
	(*comp).Elem = elem
	if elem.Tag == TextTag {
		r.renderText(elem.Text, comp)
		return
	}
	if IsBaseTag(elem.Tag) {
		// simple vdom, fragment
		r.renderSimple(elem, comp)
		return
	}
	cfunc := r.CFuncs[elem.Tag]
	if cfunc == nil {
		text := fmt.Sprintf("<%s>", elem.Tag)
		r.renderText(text, comp)
		return
	}
	r.renderComponent(cfunc, elem, comp)
}

func (r *RootElem) unmount(comp **ComponentImpl) {
	if *comp == nil {
		return
	}
	// parent clean up happens first
	for _, hook := range (*comp).Hooks {
		if hook.UnmountFn != nil {
			hook.UnmountFn()
		}
	}
	// clean up any children
	if (*comp).Comp != nil {
		r.unmount(&(*comp).Comp)
	}
	if (*comp).Children != nil {
		for _, child := range (*comp).Children {
			r.unmount(&child)
		}
	}
	delete(r.CompMap, (*comp).WaveId)
	*comp = nil
}

func (r *RootElem) createComp(tag string, key string, comp **ComponentImpl) {
	*comp = &ComponentImpl{WaveId: uuid.New().String(), Tag: tag, Key: key}
	r.CompMap[(*comp).WaveId] = *comp
}

func (r *RootElem) renderText(text string, comp **ComponentImpl) {
	if (*comp).Text != text {
		(*comp).Text = text
	}
}

func (r *RootElem) renderChildren(elems []Elem, curChildren []*ComponentImpl) []*ComponentImpl {
	newChildren := make([]*ComponentImpl, len(elems))
	curCM := make(map[ChildKey]*ComponentImpl)
	usedMap := make(map[*ComponentImpl]bool)
	for idx, child := range curChildren {
		if child.Key != "" {
			curCM[ChildKey{Tag: child.Tag, Idx: 0, Key: child.Key}] = child
		} else {
			curCM[ChildKey{Tag: child.Tag, Idx: idx, Key: ""}] = child
		}
	}
	for idx := range elems {
		elem := &elems[idx]
		elemKey := elem.Key()
		var curChild *ComponentImpl
		if elemKey != "" {
			curChild = curCM[ChildKey{Tag: elem.Tag, Idx: 0, Key: elemKey}]
		} else {
			curChild = curCM[ChildKey{Tag: elem.Tag, Idx: idx, Key: ""}]
		}
		usedMap[curChild] = true
		newChildren[idx] = curChild
		r.render(elem, &newChildren[idx])
	}
	for _, child := range curChildren {
		if !usedMap[child] {
			r.unmount(&child)
		}
	}
	return newChildren
}

func (r *RootElem) renderSimple(elem *Elem, comp **ComponentImpl) {
	if (*comp).Comp != nil {
		r.unmount(&(*comp).Comp)
	}
	(*comp).Children = r.renderChildren(elem.Children, (*comp).Children)
}

func (r *RootElem) makeRenderContext(comp *ComponentImpl) context.Context {
	var ctx context.Context
	if r.OuterCtx != nil {
		ctx = r.OuterCtx
	} else {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, vdomContextKey, &VDomContextVal{Root: r, Comp: comp, HookIdx: 0})
	return ctx
}

func getRenderContext(ctx context.Context) *VDomContextVal {
	v := ctx.Value(vdomContextKey)
	if v == nil {
		return nil
	}
	return v.(*VDomContextVal)
}

// children are assigned directly (not decoded) so components can compare
// them by identity across renders
func setChildrenField(structVal reflect.Value, children []Elem) {
	if structVal.Kind() != reflect.Struct {
		return
	}
	childrenType := reflect.TypeOf(children)
	rtype := structVal.Type()
	for i := 0; i < rtype.NumField(); i++ {
		field := rtype.Field(i)
		if !field.IsExported() || field.Type != childrenType {
			continue
		}
		tagName, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if tagName != ChildrenPropKey {
			continue
		}
		structVal.Field(i).Set(reflect.ValueOf(children))
		return
	}
}

func callCFunc(cfunc any, ctx context.Context, props map[string]any) any {
	rval := reflect.ValueOf(cfunc)
	arg2Type := rval.Type().In(1)
	isPtr := arg2Type.Kind() == reflect.Ptr
	if isPtr {
		arg2Type = arg2Type.Elem()
	}

	var arg2Val reflect.Value
	if arg2Type.Kind() == reflect.Interface && arg2Type.NumMethod() == 0 {
		arg2Val = reflect.New(arg2Type)
		arg2Val.Elem().Set(reflect.ValueOf(props))
	} else {
		arg2Val = reflect.New(arg2Type)
		// if arg2 is a map, just pass props
		if arg2Type.Kind() == reflect.Map {
			arg2Val.Elem().Set(reflect.ValueOf(props))
		} else {
			decodeProps := make(map[string]any, len(props))
			for k, v := range props {
				if k == ChildrenPropKey {
					continue
				}
				decodeProps[k] = v
			}
			err := utilfn.DoMapStructureWeak(arg2Val.Interface(), decodeProps)
			if err != nil {
				log.Printf("[vdom] error decoding props: %v\n", err)
			}
			children, _ := props[ChildrenPropKey].([]Elem)
			setChildrenField(arg2Val.Elem(), children)
		}
	}
	argVal := arg2Val.Elem()
	if isPtr {
		argVal = arg2Val
	}
	rtnVal := rval.Call([]reflect.Value{reflect.ValueOf(ctx), argVal})
	if len(rtnVal) == 0 {
		return nil
	}
	return rtnVal[0].Interface()
}

// creates an error element for display when a component panics
func renderErrorElem(componentName string, errorMsg string) *Elem {
	return E("div",
		P("className", "vdom-error"),
		E("div", P("className", "vdom-error-title"), fmt.Sprintf("Component Error: %s", componentName)),
		E("div", errorMsg),
	)
}

func callCFuncWithErrorGuard(cfunc any, ctx context.Context, props map[string]any, componentName string) (result any) {
	defer func() {
		if panicErr := panichandler.PanicHandler(fmt.Sprintf("render component %q", componentName), recover()); panicErr != nil {
			result = renderErrorElem(componentName, panicErr.Error())
		}
	}()
	return callCFunc(cfunc, ctx, props)
}

func (r *RootElem) subtreeDirty(c *ComponentImpl) bool {
	if c == nil || len(r.dirtyMap) == 0 {
		return false
	}
	if r.dirtyMap[c.WaveId] {
		return true
	}
	if r.subtreeDirty(c.Comp) {
		return true
	}
	for _, child := range c.Children {
		if r.subtreeDirty(child) {
			return true
		}
	}
	return false
}

func (r *RootElem) renderComponent(cfunc any, elem *Elem, comp **ComponentImpl) {
	if (*comp).Children != nil {
		for _, child := range (*comp).Children {
			r.unmount(&child)
		}
		(*comp).Children = nil
	}
	props := make(map[string]any)
	for k, v := range elem.Props {
		props[k] = v
	}
	props[ChildrenPropKey] = elem.Children
	ctx := r.makeRenderContext(*comp)
	renderedElem := callCFuncWithErrorGuard(cfunc, ctx, props, elem.Tag)
	(*comp).RenderCount++
	rtnPtr, _ := renderedElem.(*Elem)
	if rtnPtr != nil && rtnPtr == (*comp).RenderedElem && (*comp).Comp != nil && !r.subtreeDirty((*comp).Comp) {
		// same output as the last render, nothing to reconcile
		(*comp).SkipCount++
		return
	}
	(*comp).RenderedElem = rtnPtr
	rtnElemArr := partToElems(renderedElem)
	if len(rtnElemArr) == 0 {
		r.unmount(&(*comp).Comp)
		return
	}
	var rtnElem *Elem
	if len(rtnElemArr) == 1 {
		if rtnPtr != nil {
			rtnElem = rtnPtr
		} else {
			rtnElem = &rtnElemArr[0]
		}
	} else {
		rtnElem = &Elem{Tag: FragmentTag, Children: rtnElemArr}
	}
	r.render(rtnElem, &(*comp).Comp)
}

// FindComponents returns the live components rendered for tag
func (r *RootElem) FindComponents(tag string) []*ComponentImpl {
	var rtn []*ComponentImpl
	for _, comp := range r.CompMap {
		if comp.Tag == tag {
			rtn = append(rtn, comp)
		}
	}
	return rtn
}

func convertPropsToVDom(props map[string]any) map[string]any {
	if len(props) == 0 {
		return nil
	}
	vdomProps := make(map[string]any)
	for k, v := range props {
		if v == nil {
			continue
		}
		val := reflect.ValueOf(v)
		if val.Kind() == reflect.Func {
			vdomProps[k] = VDomFunc{Type: ObjectType_Func}
			continue
		}
		vdomProps[k] = v
	}
	return vdomProps
}

func convertBaseToVDom(c *ComponentImpl) *Elem {
	elem := &Elem{WaveId: c.WaveId, Tag: c.Tag}
	if c.Elem != nil {
		elem.Props = convertPropsToVDom(c.Elem.Props)
	}
	for _, child := range c.Children {
		childElem := convertCompToVDom(child)
		if childElem != nil {
			elem.Children = append(elem.Children, *childElem)
		}
	}
	if c.Tag == TextTag {
		elem.WaveId = ""
		elem.Text = c.Text
	}
	return elem
}

func convertCompToVDom(c *ComponentImpl) *Elem {
	if c == nil {
		return nil
	}
	if c.Comp != nil {
		return convertCompToVDom(c.Comp)
	}
	if !IsBaseTag(c.Tag) {
		// custom component that rendered nothing
		return nil
	}
	return convertBaseToVDom(c)
}

// MakeVDom returns the rendered tree (base elements only)
func (r *RootElem) MakeVDom() *Elem {
	if r.Root == nil {
		return nil
	}
	return convertCompToVDom(r.Root)
}
