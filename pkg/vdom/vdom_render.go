// Copyright 2026, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package vdom

import (
	"fmt"
	"html"
	"reflect"
	"sort"
	"strings"

	"github.com/wavetermdev/waveanim/pkg/util/utilfn"
)

// static html output for rendered trees (the output of MakeVDom, or any tree of base elements)

var voidTags = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true, "hr": true,
	"img": true, "input": true, "link": true, "meta": true, "source": true, "track": true, "wbr": true,
}

// StyleString renders a style prop as inline css.  keys are emitted in sorted
// order (camelCase keys are converted to kebab-case).
func StyleString(style any) string {
	var entries [][2]string
	switch s := style.(type) {
	case nil:
		return ""
	case string:
		return s
	case map[string]string:
		for k, v := range s {
			entries = append(entries, [2]string{k, v})
		}
	case map[string]any:
		for k, v := range s {
			if v == nil {
				continue
			}
			sval, ok := numToString(v)
			if !ok {
				sval = fmt.Sprint(v)
			}
			entries = append(entries, [2]string{k, sval})
		}
	default:
		return fmt.Sprint(style)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i][0] < entries[j][0] })
	var parts []string
	for _, entry := range entries {
		if entry[1] == "" {
			continue
		}
		parts = append(parts, utilfn.CamelToKebab(entry[0])+": "+entry[1])
	}
	return strings.Join(parts, "; ")
}

func attrName(propName string) string {
	switch propName {
	case ClassNamePropKey:
		return "class"
	case "htmlFor":
		return "for"
	}
	return propName
}

func writeAttrs(buf *strings.Builder, props map[string]any) {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if k == KeyPropKey || k == ChildrenPropKey {
			continue
		}
		v := props[k]
		if v == nil {
			continue
		}
		if _, ok := v.(VDomFunc); ok {
			continue
		}
		if reflect.ValueOf(v).Kind() == reflect.Func {
			continue
		}
		var sval string
		if k == StylePropKey {
			sval = StyleString(v)
			if sval == "" {
				continue
			}
		} else if bval, ok := v.(bool); ok {
			if !bval {
				continue
			}
			buf.WriteString(" " + attrName(k))
			continue
		} else if nval, ok := numToString(v); ok {
			sval = nval
		} else {
			sval = fmt.Sprint(v)
		}
		buf.WriteString(" " + attrName(k) + "=\"" + html.EscapeString(sval) + "\"")
	}
}

func renderHTMLTo(buf *strings.Builder, elem *Elem) {
	if elem == nil {
		return
	}
	if elem.Tag == TextTag {
		buf.WriteString(html.EscapeString(elem.Text))
		return
	}
	if elem.Tag == FragmentTag || !IsBaseTag(elem.Tag) {
		for idx := range elem.Children {
			renderHTMLTo(buf, &elem.Children[idx])
		}
		return
	}
	buf.WriteString("<" + elem.Tag)
	writeAttrs(buf, elem.Props)
	if voidTags[elem.Tag] {
		buf.WriteString("/>")
		return
	}
	buf.WriteString(">")
	for idx := range elem.Children {
		renderHTMLTo(buf, &elem.Children[idx])
	}
	buf.WriteString("</" + elem.Tag + ">")
}

// RenderHTML serializes a tree of base elements as html.  custom component
// tags are not expanded (only their children are written), so pass the output
// of RootElem.MakeVDom for fully rendered trees.
func RenderHTML(elem *Elem) string {
	var buf strings.Builder
	renderHTMLTo(&buf, elem)
	return buf.String()
}
