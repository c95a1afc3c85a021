// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sfcinsert

package sfcinsert

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

const (
	tagNameRE   = `[a-zA-Z][a-zA-Z0-9:._-]*`
	attrNameRE  = `[^\s"'<>/=]+`
	attrEqRE    = `\s*=\s*`
	attrValueRE = `"[^"]*"|'[^']*'|` + attrNameRE
	attrsRE     = `(?:\s+` + attrNameRE + `(?:` + attrEqRE + `(?:` + attrValueRE + `))?)*`
)

// openTagRE matches a whole opening tag named name, attributes included.
func openTagRE(name string) string {
	return `<` + name + attrsRE + `\s*>`
}

// sfcLexer splits a component into top-level blocks.
//
// Script, style and custom block bodies are raw text up to their closing tag.
// Template bodies are raw text too, except that nested template tags are
// balanced so the outer closing tag is found.
var sfcLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "Comment", Pattern: `<!--(?s:.*?)-->`},
		{Name: "ScriptOpen", Pattern: openTagRE("script"), Action: lexer.Push("Script")},
		{Name: "StyleOpen", Pattern: openTagRE("style"), Action: lexer.Push("Style")},
		{Name: "TemplateOpen", Pattern: openTagRE("template"), Action: lexer.Push("Template")},
		{Name: "VoidTag", Pattern: `<` + tagNameRE + attrsRE + `\s*/>`},
		{Name: "BlockOpen", Pattern: openTagRE(tagNameRE), Action: lexer.Push("Block")},
		{Name: "StrayClose", Pattern: `</[^>]*>`},
		{Name: "Text", Pattern: `[^<]+`},
		{Name: "Lt", Pattern: `<`},
	},
	"Script": {
		{Name: "ScriptClose", Pattern: `</script\s*>`, Action: lexer.Pop()},
		{Name: "ScriptText", Pattern: `[^<]+`},
		{Name: "ScriptLt", Pattern: `<`},
	},
	"Style": {
		{Name: "StyleClose", Pattern: `</style\s*>`, Action: lexer.Pop()},
		{Name: "StyleText", Pattern: `[^<]+`},
		{Name: "StyleLt", Pattern: `<`},
	},
	"Block": {
		{Name: "BlockClose", Pattern: `</` + tagNameRE + `\s*>`, Action: lexer.Pop()},
		{Name: "BlockText", Pattern: `[^<]+`},
		{Name: "BlockLt", Pattern: `<`},
	},
	"Template": {
		{Name: "TemplateClose", Pattern: `</template\s*>`, Action: lexer.Pop()},
		{Name: "InnerTemplateOpen", Pattern: openTagRE("template"), Action: lexer.Push("Template")},
		{Name: "MarkupComment", Pattern: `<!--(?s:.*?)-->`},
		{Name: "MarkupText", Pattern: `[^<]+`},
		{Name: "MarkupLt", Pattern: `<`},
	},
})

//nolint:govet // participle grammar tags are not standard struct tags
type sfcDocument struct {
	Items []*sfcItem `@@*`
}

//nolint:govet // participle grammar tags are not standard struct tags
type sfcItem struct {
	Pos lexer.Position

	Template *templateBlock `  @@`
	Raw      *rawBlock      `| @@`
	Void     string         `| @VoidTag`
	Comment  string         `| @Comment`
	Text     string         `| @(Text | Lt | StrayClose)`
}

// rawBlock is a script, style or custom block.
//
//nolint:govet // participle grammar tags are not standard struct tags
type rawBlock struct {
	Pos lexer.Position

	Open  string   `@(ScriptOpen | StyleOpen | BlockOpen)`
	Body  []string `@(ScriptText | ScriptLt | StyleText | StyleLt | BlockText | BlockLt)*`
	Close string   `@(ScriptClose | StyleClose | BlockClose)`
}

//nolint:govet // participle grammar tags are not standard struct tags
type templateBlock struct {
	Pos lexer.Position

	Open  string         `@(TemplateOpen | InnerTemplateOpen)`
	Body  []*markupPiece `@@*`
	Close string         `@TemplateClose`
}

//nolint:govet // participle grammar tags are not standard struct tags
type markupPiece struct {
	Pos lexer.Position

	Nested  *templateBlock `  @@`
	Comment string         `| @MarkupComment`
	Text    string         `| @(MarkupText | MarkupLt)`
}

// sfcGrammar is the participle parser for component blocks.
var sfcGrammar = participle.MustBuild[sfcDocument](
	participle.Lexer(sfcLexer),
)

// attrLexer tokenizes one opening tag.
//
// Eq and TagEnd absorb surrounding whitespace so every Whitespace token
// is followed by an attribute name.
var attrLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "TagStart", Pattern: `<` + tagNameRE},
	{Name: "TagEnd", Pattern: `\s*/?>`},
	{Name: "Eq", Pattern: attrEqRE},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "String", Pattern: `"[^"]*"|'[^']*'`},
	{Name: "Word", Pattern: attrNameRE},
})

//nolint:govet // participle grammar tags are not standard struct tags
type openTag struct {
	Name  string       `@TagStart`
	Attrs []*attribute `@@*`
	End   string       `@TagEnd`
}

//nolint:govet // participle grammar tags are not standard struct tags
type attribute struct {
	Pos lexer.Position

	Space string     `@Whitespace`
	Name  string     `@Word`
	Value *attrValue `@@?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type attrValue struct {
	Eq   string `@Eq`
	Text string `@(String | Word)`
}

// attrGrammar is the participle parser for opening tags.
var attrGrammar = participle.MustBuild[openTag](
	participle.Lexer(attrLexer),
)

// size returns the source length of the block.
func (b *rawBlock) size() int {
	n := len(b.Open) + len(b.Close)
	for _, s := range b.Body {
		n += len(s)
	}

	return n
}

// body returns block content between the tags.
func (b *rawBlock) body() string {
	return strings.Join(b.Body, "")
}

// size returns the source length of the block, nested templates included.
func (b *templateBlock) size() int {
	n := len(b.Open) + len(b.Close)
	for _, piece := range b.Body {
		n += piece.size()
	}

	return n
}

// size returns the source length of the piece.
func (p *markupPiece) size() int {
	switch {
	case p.Nested != nil:
		return p.Nested.size()
	case p.Comment != "":
		return len(p.Comment)
	default:
		return len(p.Text)
	}
}

// size returns the source length of the attribute without leading whitespace.
func (a *attribute) size() int {
	n := len(a.Name)
	if a.Value != nil {
		n += len(a.Value.Eq) + len(a.Value.Text)
	}

	return n
}

// value returns the attribute value without quotes.
func (a *attribute) value() string {
	if a.Value == nil {
		return ""
	}

	v := a.Value.Text
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		return v[1 : len(v)-1]
	}

	return v
}
