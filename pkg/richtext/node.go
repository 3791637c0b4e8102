package richtext

// Node is one element of a rich-text document tree. The set of
// implementations is closed: Text, Paragraph, Heading, Hyperlink,
// AssetBlock and Unknown.
type Node interface {
	// node is a marker method sealing the variant set.
	node()
}

// Document is the root container of a rich-text document. It owns an
// ordered sequence of top-level nodes; order is significant and preserved
// by rendering.
type Document struct {
	Content []Node
}

// Mark kinds with a fixed HTML mapping. Any other kind is legal and maps
// to a generic inline span.
const (
	MarkBold      = "bold"
	MarkItalic    = "italic"
	MarkUnderline = "underline"
)

// Mark is an inline style annotation attached to a Text node.
type Mark struct {
	Kind string
}

// Text is a run of character data with zero or more marks applied in
// sequence order.
type Text struct {
	Value string
	Marks []Mark
}

// Paragraph is a block of inline content.
type Paragraph struct {
	Children []Node
}

// Heading is a section heading. Level must be between 1 and 6; values
// outside that range violate the caller contract and are rejected at
// render time.
type Heading struct {
	Level    int
	Children []Node
}

// Hyperlink wraps inline content in a link. The children are the visible
// content; URL and Title become the anchor's attributes.
type Hyperlink struct {
	URL      string
	Title    string
	Children []Node
}

// AssetBlock embeds an external asset (image or downloadable file) in the
// document. Target must be resolved before rendering; resolution is a
// collaborator's concern, not this package's.
type AssetBlock struct {
	Target *Asset
}

// Unknown carries a node variant this model does not recognize, preserving
// its wire-format type tag. The engine's fallback renderer drops Unknown
// nodes silently.
type Unknown struct {
	NodeType string
}

func (*Text) node()       {}
func (*Paragraph) node()  {}
func (*Heading) node()    {}
func (*Hyperlink) node()  {}
func (*AssetBlock) node() {}
func (*Unknown) node()    {}
