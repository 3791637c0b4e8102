package testutil

import "github.com/contentkit/richhtml/pkg/richtext"

// Doc builds a document from top-level nodes.
func Doc(nodes ...richtext.Node) *richtext.Document {
	return &richtext.Document{Content: nodes}
}

// Para builds a paragraph node.
func Para(children ...richtext.Node) *richtext.Paragraph {
	return &richtext.Paragraph{Children: children}
}

// H builds a heading node.
func H(level int, children ...richtext.Node) *richtext.Heading {
	return &richtext.Heading{Level: level, Children: children}
}

// Txt builds a text node with the given mark kinds applied in order.
func Txt(value string, marks ...string) *richtext.Text {
	ms := make([]richtext.Mark, 0, len(marks))
	for _, kind := range marks {
		ms = append(ms, richtext.Mark{Kind: kind})
	}
	return &richtext.Text{Value: value, Marks: ms}
}

// Link builds a hyperlink node.
func Link(url, title string, children ...richtext.Node) *richtext.Hyperlink {
	return &richtext.Hyperlink{URL: url, Title: title, Children: children}
}

// AssetOf builds an asset block with an inline target.
func AssetOf(title, url, contentType string) *richtext.AssetBlock {
	return &richtext.AssetBlock{Target: &richtext.Asset{
		Title: title,
		File:  richtext.AssetFile{URL: url, ContentType: contentType},
	}}
}
