// Copyright 2026, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package vdom

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/wavetermdev/htmltoken"
	"github.com/wavetermdev/waveanim/pkg/util/utilfn"
	"github.com/wavetermdev/waveanim/pkg/vdom/cssparser"
)

// can tokenize and bind HTML to Elems

const Html_ParamPrefix = "#param:"

func appendChildToStack(stack []*Elem, child *Elem) {
	if child == nil {
		return
	}
	if len(stack) == 0 {
		return
	}
	parent := stack[len(stack)-1]
	parent.Children = append(parent.Children, *child)
}

func pushElemStack(stack []*Elem, elem *Elem) []*Elem {
	if elem == nil {
		return stack
	}
	return append(stack, elem)
}

func popElemStack(stack []*Elem) []*Elem {
	if len(stack) <= 1 {
		return stack
	}
	curElem := stack[len(stack)-1]
	appendChildToStack(stack[:len(stack)-1], curElem)
	return stack[:len(stack)-1]
}

func curElemTag(stack []*Elem) string {
	if len(stack) == 0 {
		return ""
	}
	return stack[len(stack)-1].Tag
}

func finalizeStack(stack []*Elem) *Elem {
	if len(stack) == 0 {
		return nil
	}
	for len(stack) > 1 {
		stack = popElemStack(stack)
	}
	rtnElem := stack[0]
	if len(rtnElem.Children) == 0 {
		return nil
	}
	if len(rtnElem.Children) == 1 {
		return &rtnElem.Children[0]
	}
	return rtnElem
}

func getAttr(token htmltoken.Token, key string) string {
	for _, attr := range token.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// ParseStyleAttr converts an inline css string into a style prop (camelCase keys)
func ParseStyleAttr(styleStr string) (map[string]any, error) {
	decls, err := cssparser.MakeParser(styleStr).ParseDecls()
	if err != nil {
		return nil, err
	}
	rtn := make(map[string]any, len(decls))
	for _, decl := range decls {
		rtn[utilfn.KebabToCamel(decl.Prop)] = decl.Value
	}
	return rtn, nil
}

func attrToProp(key string, attrVal string, isJson bool, params map[string]any) any {
	if isJson {
		var val any
		err := json.Unmarshal([]byte(attrVal), &val)
		if err != nil {
			return nil
		}
		unmStrVal, ok := val.(string)
		if !ok {
			return val
		}
		attrVal = unmStrVal
		// fallthrough using the json str val
	}
	if strings.HasPrefix(attrVal, Html_ParamPrefix) {
		bindKey := attrVal[len(Html_ParamPrefix):]
		bindVal, ok := params[bindKey]
		if !ok {
			return nil
		}
		return bindVal
	}
	if key == StylePropKey {
		styleMap, err := ParseStyleAttr(attrVal)
		if err != nil {
			log.Printf("[vdom] invalid style attribute %q: %v\n", attrVal, err)
			return nil
		}
		return styleMap
	}
	return attrVal
}

func tokenToElem(token htmltoken.Token, params map[string]any) *Elem {
	elem := &Elem{Tag: token.Data}
	if len(token.Attr) > 0 {
		elem.Props = make(map[string]any)
	}
	for _, attr := range token.Attr {
		if attr.Key == "" || attr.Val == "" {
			continue
		}
		propVal := attrToProp(attr.Key, attr.Val, attr.IsJson, params)
		if propVal == nil {
			continue
		}
		elem.Props[attr.Key] = propVal
	}
	return elem
}

func isWsChar(char rune) bool {
	return char == ' ' || char == '\t' || char == '\n' || char == '\r'
}

func isWsByte(char byte) bool {
	return char == ' ' || char == '\t' || char == '\n' || char == '\r'
}

func isFirstCharLt(s string) bool {
	for _, char := range s {
		if isWsChar(char) {
			continue
		}
		return char == '<'
	}
	return false
}

func isLastCharGt(s string) bool {
	for i := len(s) - 1; i >= 0; i-- {
		char := s[i]
		if isWsByte(char) {
			continue
		}
		return char == '>'
	}
	return false
}

func isAllWhitespace(s string) bool {
	for _, char := range s {
		if !isWsChar(char) {
			return false
		}
	}
	return true
}

func trimWhitespaceConditionally(s string) string {
	// Trim leading whitespace if the first non-whitespace character is '<'
	if isAllWhitespace(s) {
		return ""
	}
	if isFirstCharLt(s) {
		s = strings.TrimLeftFunc(s, isWsChar)
	}
	// Trim trailing whitespace if the last non-whitespace character is '>'
	if isLastCharGt(s) {
		s = strings.TrimRightFunc(s, isWsChar)
	}
	return s
}

func processWhitespace(htmlStr string) string {
	lines := strings.Split(htmlStr, "\n")
	var newLines []string
	for _, line := range lines {
		trimmedLine := trimWhitespaceConditionally(line + "\n")
		if trimmedLine == "" {
			continue
		}
		newLines = append(newLines, trimmedLine)
	}
	return strings.Join(newLines, "")
}

func processTextStr(s string) string {
	if s == "" {
		return ""
	}
	if isAllWhitespace(s) {
		return " "
	}
	return strings.TrimSpace(s)
}

// Bind parses an html template into an Elem.  attribute values of the form
// "#param:name" and <bind key="name"/> tags are filled from params.
// parse errors are rendered as a text node rather than returned.
func Bind(htmlStr string, params map[string]any) *Elem {
	elem, err := BindWithError(htmlStr, params)
	if err != nil {
		errTextElem := TextElem(err.Error())
		if elem == nil {
			return &errTextElem
		}
		if elem.Tag != FragmentTag {
			elem = &Elem{Tag: FragmentTag, Children: []Elem{*elem}}
		}
		elem.Children = append(elem.Children, errTextElem)
	}
	return elem
}

// BindWithError is Bind, but returns the parse error (and whatever was parsed before it)
func BindWithError(htmlStr string, params map[string]any) (*Elem, error) {
	htmlStr = processWhitespace(htmlStr)
	r := strings.NewReader(htmlStr)
	iter := htmltoken.NewTokenizer(r)
	var elemStack []*Elem
	elemStack = append(elemStack, &Elem{Tag: FragmentTag})
	var tokenErr error
outer:
	for {
		tokenType := iter.Next()
		token := iter.Token()
		switch tokenType {
		case htmltoken.StartTagToken:
			if token.Data == BindTag {
				tokenErr = errors.New("bind tag must be self closing")
				break outer
			}
			elem := tokenToElem(token, params)
			elemStack = pushElemStack(elemStack, elem)
		case htmltoken.EndTagToken:
			if token.Data == BindTag {
				tokenErr = errors.New("bind tag must be self closing")
				break outer
			}
			if len(elemStack) <= 1 {
				tokenErr = fmt.Errorf("end tag %q without start tag", token.Data)
				break outer
			}
			if curElemTag(elemStack) != token.Data {
				tokenErr = fmt.Errorf("end tag %q does not match start tag %q", token.Data, curElemTag(elemStack))
				break outer
			}
			elemStack = popElemStack(elemStack)
		case htmltoken.SelfClosingTagToken:
			if token.Data == BindTag {
				keyAttr := getAttr(token, "key")
				dataVal := params[keyAttr]
				elemList := partToElems(dataVal)
				for idx := range elemList {
					appendChildToStack(elemStack, &elemList[idx])
				}
				continue
			}
			elem := tokenToElem(token, params)
			appendChildToStack(elemStack, elem)
		case htmltoken.TextToken:
			if token.Data == "" {
				continue
			}
			textStr := processTextStr(token.Data)
			if textStr == "" {
				continue
			}
			elem := TextElem(textStr)
			appendChildToStack(elemStack, &elem)
		case htmltoken.CommentToken:
			continue
		case htmltoken.DoctypeToken:
			tokenErr = errors.New("doctype not supported")
			break outer
		case htmltoken.ErrorToken:
			if iter.Err() == io.EOF {
				break outer
			}
			tokenErr = iter.Err()
			break outer
		}
	}
	if tokenErr == nil && len(elemStack) > 1 {
		tokenErr = fmt.Errorf("unclosed tag %q", curElemTag(elemStack))
	}
	return finalizeStack(elemStack), tokenErr
}
