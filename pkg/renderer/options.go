package renderer

import "html"

// Options controls HTML emission. The zero value is NOT the default;
// use DefaultOptions.
type Options struct {
	// Escape HTML-escapes text content and attribute values. Disable
	// only for input you fully trust: with escaping off, authored
	// content is interpolated into markup verbatim.
	Escape bool

	// SelfClose emits XHTML-style self-closing void elements
	// (<img ... />) instead of HTML5 void syntax (<img ...>).
	SelfClose bool
}

// DefaultOptions returns the safe defaults: escaping on, HTML5 void
// element syntax.
func DefaultOptions() Options {
	return Options{Escape: true}
}

// escape applies the configured escaping policy to a text or attribute
// value.
func (o Options) escape(s string) string {
	if !o.Escape {
		return s
	}
	return html.EscapeString(s)
}
