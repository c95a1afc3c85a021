// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sfcinsert

package sfcinsert

// NodeType is the kind of a parsed component node.
type NodeType uint8

const (
	// NodeRoot is the document root; its children are the top-level blocks.
	NodeRoot NodeType = iota
	// NodeElement is a tag with props and children.
	NodeElement
	// NodeText is raw text carried in Content.
	NodeText
	// NodeComment is an HTML comment carried in Content without delimiters.
	NodeComment
)

// Position is one point in the source.
type Position struct {
	// Offset is the byte offset from the start of the source.
	Offset int `json:"offset" yaml:"offset"`
	// Line is 1-based.
	Line int `json:"line" yaml:"line"`
	// Column is 1-based and counted in runes.
	Column int `json:"column" yaml:"column"`
}

// Location is a half-open source range.
type Location struct {
	Start Position `json:"start" yaml:"start"`
	End   Position `json:"end" yaml:"end"`
}

// Prop is one attribute of an element.
type Prop struct {
	Name string `json:"name" yaml:"name"`
	// Value is the unquoted value, empty for boolean attributes.
	Value string   `json:"value,omitempty" yaml:"value,omitempty"`
	Loc   Location `json:"loc" yaml:"loc"`
}

// Node is one node of the tree a Parser produces.
//
// Element spans include their opening and closing tags. Text children of
// raw blocks span exactly the content between the tags.
type Node struct {
	Type     NodeType `json:"type" yaml:"type"`
	Tag      string   `json:"tag,omitempty" yaml:"tag,omitempty"`
	Props    []Prop   `json:"props,omitempty" yaml:"props,omitempty"`
	Children []*Node  `json:"children,omitempty" yaml:"children,omitempty"`
	Content  string   `json:"content,omitempty" yaml:"content,omitempty"`
	Loc      Location `json:"loc" yaml:"loc"`
}

// Parser turns component source into a node tree.
type Parser interface {
	Parse(src string) (*Node, error)
}

// ParserFunc adapts a plain function to Parser.
type ParserFunc func(src string) (*Node, error)

// Parse calls f(src).
func (f ParserFunc) Parse(src string) (*Node, error) {
	return f(src)
}

// Child returns the first direct element child with tag, or nil.
func (n *Node) Child(tag string) *Node {
	if n == nil {
		return nil
	}

	for _, child := range n.Children {
		if child != nil && child.Type == NodeElement && child.Tag == tag {
			return child
		}
	}

	return nil
}

// HasProp reports whether element carries a prop with name.
func (n *Node) HasProp(name string) bool {
	if n == nil {
		return false
	}

	for i := range n.Props {
		if n.Props[i].Name == name {
			return true
		}
	}

	return false
}

// firstText returns the first text child with non-empty content, or nil.
func (n *Node) firstText() *Node {
	for _, child := range n.Children {
		if child != nil && child.Type == NodeText && child.Content != "" {
			return child
		}
	}

	return nil
}
