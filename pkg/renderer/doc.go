// Package renderer turns richtext document trees into HTML strings.
//
// The engine is a registry of renderers. Each renderer claims nodes through
// a Matches predicate and carries a priority; Resolve stable-sorts renderers
// by ascending priority (registration order breaks ties) and picks the first
// match. Built-in renderers cover every model variant, and a catch-all
// fallback at PriorityFallback guarantees resolution always succeeds by
// rendering unrecognized variants as the empty string. That silent-drop
// policy is deliberate: unknown content is skipped, not an error.
//
// Callers extend the engine by registering their own renderers. A custom
// renderer at PriorityDefault beats the fallback for any node it matches;
// to take precedence over a built-in, register it below PriorityDefault
// (PriorityOverride is the conventional slot).
//
// Escaping policy: text and attribute values are HTML-escaped by default.
// Options.Escape = false disables this for trusted input; the engine never
// escapes silently differently per renderer.
//
// A Registry is safe for concurrent RenderDocument calls once registration
// is complete. Registration itself must not be interleaved with renders.
// Rendering recurses to the document's nesting depth; pathologically deep
// trees are bounded only by the goroutine stack.
package renderer
