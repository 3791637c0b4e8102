package richtext

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/contentkit/richhtml/pkg/errors"
	"github.com/contentkit/richhtml/pkg/logging"
)

// Wire-format node type tags. These exist only on the JSON boundary; once
// decoded, a node's variant is its Go type.
const (
	nodeTypeDocument   = "document"
	nodeTypeParagraph  = "paragraph"
	nodeTypeText       = "text"
	nodeTypeHyperlink  = "hyperlink"
	nodeTypeAssetBlock = "embedded-asset-block"
	headingTypePrefix  = "heading-"
)

// AssetResolver resolves an asset reference ID to a full Asset record.
// Documents exported with link-style targets carry only an ID; callers
// supply a resolver to look them up (from an API client, a cache, a local
// index). Decoding fails with ErrAssetResolve when the resolver errors.
type AssetResolver func(id string) (*Asset, error)

// DecodeOptions controls document decoding.
type DecodeOptions struct {
	// ResolveAsset is consulted for asset blocks whose target is a
	// reference ID rather than an inline asset record. When nil, such
	// blocks decode to Unknown and render as empty.
	ResolveAsset AssetResolver
}

// jsonNode is the wire representation of a content node.
type jsonNode struct {
	NodeType string          `json:"nodeType"`
	Value    string          `json:"value,omitempty"`
	Marks    []jsonMark      `json:"marks,omitempty"`
	Content  []jsonNode      `json:"content,omitempty"`
	Data     json.RawMessage `json:"data,omitempty"`
}

type jsonMark struct {
	Type string `json:"type"`
}

type jsonLinkData struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

type jsonAssetData struct {
	Target struct {
		Sys struct {
			ID string `json:"id"`
		} `json:"sys"`
		Title string `json:"title"`
		File  struct {
			URL         string `json:"url"`
			ContentType string `json:"contentType"`
		} `json:"file"`
	} `json:"target"`
}

// DecodeDocument reads a type-tagged JSON document from r and builds the
// node tree. Unrecognized node types are preserved as Unknown nodes rather
// than rejected, so newer authoring formats degrade to skipped content
// instead of failing the whole document.
func DecodeDocument(r io.Reader) (*Document, error) {
	return DecodeDocumentWith(r, DecodeOptions{})
}

// DecodeDocumentWith is DecodeDocument with explicit options.
func DecodeDocumentWith(r io.Reader, opts DecodeOptions) (*Document, error) {
	logger := logging.GetLogger("richtext.decode")

	var root jsonNode
	dec := json.NewDecoder(r)
	if err := dec.Decode(&root); err != nil {
		return nil, errors.Wrap(err, errors.ErrDecode, "invalid document JSON")
	}
	if root.NodeType != nodeTypeDocument {
		return nil, errors.Newf(errors.ErrDecode, "root node type is %q, want %q", root.NodeType, nodeTypeDocument)
	}

	content, err := decodeNodes(root.Content, opts)
	if err != nil {
		return nil, err
	}

	logger.Debug().Int("topLevelNodes", len(content)).Msg("document decoded")
	return &Document{Content: content}, nil
}

func decodeNodes(nodes []jsonNode, opts DecodeOptions) ([]Node, error) {
	out := make([]Node, 0, len(nodes))
	for i := range nodes {
		n, err := decodeNode(&nodes[i], opts)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func decodeNode(n *jsonNode, opts DecodeOptions) (Node, error) {
	switch {
	case n.NodeType == nodeTypeText:
		marks := make([]Mark, 0, len(n.Marks))
		for _, m := range n.Marks {
			marks = append(marks, Mark{Kind: m.Type})
		}
		return &Text{Value: n.Value, Marks: marks}, nil

	case n.NodeType == nodeTypeParagraph:
		children, err := decodeNodes(n.Content, opts)
		if err != nil {
			return nil, err
		}
		return &Paragraph{Children: children}, nil

	case strings.HasPrefix(n.NodeType, headingTypePrefix):
		level, err := strconv.Atoi(strings.TrimPrefix(n.NodeType, headingTypePrefix))
		if err != nil || level < 1 || level > 6 {
			return nil, errors.Newf(errors.ErrDecode, "invalid heading node type %q", n.NodeType)
		}
		children, cerr := decodeNodes(n.Content, opts)
		if cerr != nil {
			return nil, cerr
		}
		return &Heading{Level: level, Children: children}, nil

	case n.NodeType == nodeTypeHyperlink:
		var data jsonLinkData
		if len(n.Data) > 0 {
			if err := json.Unmarshal(n.Data, &data); err != nil {
				return nil, errors.Wrap(err, errors.ErrDecode, "invalid hyperlink data")
			}
		}
		children, err := decodeNodes(n.Content, opts)
		if err != nil {
			return nil, err
		}
		return &Hyperlink{URL: data.URI, Title: data.Title, Children: children}, nil

	case n.NodeType == nodeTypeAssetBlock:
		return decodeAssetBlock(n, opts)

	default:
		return &Unknown{NodeType: n.NodeType}, nil
	}
}

func decodeAssetBlock(n *jsonNode, opts DecodeOptions) (Node, error) {
	logger := logging.GetLogger("richtext.decode")

	var data jsonAssetData
	if len(n.Data) > 0 {
		if err := json.Unmarshal(n.Data, &data); err != nil {
			return nil, errors.Wrap(err, errors.ErrDecode, "invalid asset block data")
		}
	}

	// Inline targets carry the full asset record.
	if data.Target.File.URL != "" || data.Target.Title != "" {
		return &AssetBlock{Target: &Asset{
			Title: data.Target.Title,
			File: AssetFile{
				URL:         data.Target.File.URL,
				ContentType: data.Target.File.ContentType,
			},
		}}, nil
	}

	// Link-style targets carry only an ID and need a resolver.
	if id := data.Target.Sys.ID; id != "" {
		if opts.ResolveAsset == nil {
			logger.Debug().Str("assetId", id).Msg("no asset resolver configured, dropping asset block")
			return &Unknown{NodeType: n.NodeType}, nil
		}
		asset, err := opts.ResolveAsset(id)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrAssetResolve, "resolving asset %q", id)
		}
		if asset == nil {
			return nil, errors.Newf(errors.ErrAssetResolve, "resolver returned no asset for %q", id)
		}
		return &AssetBlock{Target: asset}, nil
	}

	return nil, errors.New(errors.ErrDecode, "asset block has neither inline target nor reference ID")
}

// String returns a short description of the unknown node, useful in logs.
func (u *Unknown) String() string {
	return fmt.Sprintf("unknown node %q", u.NodeType)
}
