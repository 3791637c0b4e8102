package richtext

import "strings"

// Asset is an external media resource referenced by an AssetBlock. It is
// not part of the document tree itself; how it gets resolved (fetch, cache,
// inline embed) is outside this package.
type Asset struct {
	Title string
	File  AssetFile
}

// AssetFile describes the binary behind an asset. An empty ContentType
// means the content type is unknown and the asset is treated as a plain
// downloadable file.
type AssetFile struct {
	URL         string
	ContentType string
}

// IsImage reports whether the file's content type identifies an image.
// The check is a case-insensitive substring match, so "image/png" and
// "IMAGE/JPEG" both qualify. An absent content type is not an image.
func (f AssetFile) IsImage() bool {
	return strings.Contains(strings.ToLower(f.ContentType), "image")
}
