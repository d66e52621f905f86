// Package formatter wraps reduction results for the wire.
//
// Stations are serialized as a name-sorted list rather than a map so that
// responses are stable and diff-friendly for downstream consumers.
package formatter
