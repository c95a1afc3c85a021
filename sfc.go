// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sfcinsert

package sfcinsert

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// SFCParser parses the block structure of a Vue single-file component.
//
// Only top-level blocks are modeled. Script, style and custom blocks get one
// text child holding their raw content. Template blocks get text, comment and
// nested template children; other markup is kept as text. Element spans
// include the opening and closing tags.
type SFCParser struct{}

// Parse parses component source into a root node.
func (SFCParser) Parse(src string) (*Node, error) {
	doc, err := sfcGrammar.ParseString("", src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	b := treeBuilder{src: src, lines: newLineIndex(src)}
	root := &Node{
		Type: NodeRoot,
		Loc:  b.loc(0, len(src)),
	}

	for _, item := range doc.Items {
		if err := b.appendItem(root, item); err != nil {
			return nil, err
		}
	}

	return root, nil
}

// treeBuilder converts grammar output into Node values.
type treeBuilder struct {
	src   string
	lines []int
}

// appendItem appends one top-level item to root.
func (b *treeBuilder) appendItem(root *Node, item *sfcItem) error {
	start := item.Pos.Offset

	switch {
	case item.Template != nil:
		node, err := b.template(item.Template)
		if err != nil {
			return err
		}

		root.Children = append(root.Children, node)
	case item.Raw != nil:
		node, err := b.raw(item.Raw)
		if err != nil {
			return err
		}

		root.Children = append(root.Children, node)
	case item.Void != "":
		node, err := b.element(item.Void, start, start+len(item.Void))
		if err != nil {
			return err
		}

		root.Children = append(root.Children, node)
	case item.Comment != "":
		root.Children = append(root.Children, b.comment(item.Comment, start))
	default:
		root.Children = b.appendText(root.Children, item.Text, start)
	}

	return nil
}

// raw builds a script, style or custom block element.
func (b *treeBuilder) raw(block *rawBlock) (*Node, error) {
	start := block.Pos.Offset

	node, err := b.element(block.Open, start, start+block.size())
	if err != nil {
		return nil, err
	}

	if body := block.body(); body != "" {
		contentStart := start + len(block.Open)
		node.Children = []*Node{{
			Type:    NodeText,
			Content: body,
			Loc:     b.loc(contentStart, contentStart+len(body)),
		}}
	}

	return node, nil
}

// template builds a template element with its markup children.
func (b *treeBuilder) template(block *templateBlock) (*Node, error) {
	start := block.Pos.Offset

	node, err := b.element(block.Open, start, start+block.size())
	if err != nil {
		return nil, err
	}

	offset := start + len(block.Open)
	for _, piece := range block.Body {
		switch {
		case piece.Nested != nil:
			child, err := b.template(piece.Nested)
			if err != nil {
				return nil, err
			}

			node.Children = append(node.Children, child)
		case piece.Comment != "":
			node.Children = append(node.Children, b.comment(piece.Comment, offset))
		default:
			node.Children = b.appendText(node.Children, piece.Text, offset)
		}

		offset += piece.size()
	}

	return node, nil
}

// element builds an element node from its opening tag and full span.
func (b *treeBuilder) element(open string, start int, end int) (*Node, error) {
	tag, err := attrGrammar.ParseString("", open)
	if err != nil {
		return nil, fmt.Errorf("%w: opening tag at offset %d: %v", ErrParse, start, err)
	}

	node := &Node{
		Type: NodeElement,
		Tag:  strings.TrimPrefix(tag.Name, "<"),
		Loc:  b.loc(start, end),
	}

	if len(tag.Attrs) > 0 {
		node.Props = make([]Prop, 0, len(tag.Attrs))
	}

	for _, attr := range tag.Attrs {
		propStart := start + attr.Pos.Offset + len(attr.Space)
		node.Props = append(node.Props, Prop{
			Name:  attr.Name,
			Value: attr.value(),
			Loc:   b.loc(propStart, propStart+attr.size()),
		})
	}

	return node, nil
}

// comment builds a comment node; content excludes the delimiters.
func (b *treeBuilder) comment(raw string, start int) *Node {
	content := strings.TrimSuffix(strings.TrimPrefix(raw, "<!--"), "-->")
	return &Node{
		Type:    NodeComment,
		Content: content,
		Loc:     b.loc(start, start+len(raw)),
	}
}

// appendText appends text at start, merging it into a directly preceding text node.
func (b *treeBuilder) appendText(children []*Node, text string, start int) []*Node {
	if n := len(children); n > 0 {
		last := children[n-1]
		if last.Type == NodeText && last.Loc.End.Offset == start {
			last.Content += text
			last.Loc.End = b.position(start + len(text))
			return children
		}
	}

	return append(children, &Node{
		Type:    NodeText,
		Content: text,
		Loc:     b.loc(start, start+len(text)),
	})
}

// loc builds a location from byte offsets.
func (b *treeBuilder) loc(start int, end int) Location {
	return Location{
		Start: b.position(start),
		End:   b.position(end),
	}
}

// position converts a byte offset to a full position.
func (b *treeBuilder) position(offset int) Position {
	line := sort.Search(len(b.lines), func(i int) bool { return b.lines[i] > offset }) - 1
	if line < 0 {
		line = 0
	}

	lineStart := b.lines[line]
	return Position{
		Offset: offset,
		Line:   line + 1,
		Column: utf8.RuneCountInString(b.src[lineStart:offset]) + 1,
	}
}

// newLineIndex returns byte offsets of every line start in src.
func newLineIndex(src string) []int {
	lines := make([]int, 1, strings.Count(src, "\n")+1)
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			lines = append(lines, i+1)
		}
	}

	return lines
}
