// Package testutil provides compact builders for rich-text document
// fixtures used across renderer and decode tests.
package testutil
