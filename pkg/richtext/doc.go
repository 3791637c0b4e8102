// Package richtext defines the content node model for structured rich-text
// documents: a closed set of node variants (text, paragraph, heading,
// hyperlink, asset block) plus a Document root container. Nodes are plain
// immutable data; all rendering behavior lives in pkg/renderer.
//
// The variant of a node is its Go type, checked by type assertion. A string
// node type tag exists only on the JSON wire format (see json.go) and on
// Unknown, the carrier for variants this model does not recognize.
package richtext
