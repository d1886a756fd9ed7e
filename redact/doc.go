// Package redact scrubs sensitive fields from decoded API payloads before
// they are logged or displayed.
//
// Redact walks arbitrarily nested maps and slices, replacing the values of
// known sensitive keys with a fixed sentinel while preserving the structure
// and all non-sensitive content. The sensitive field set tracks the field
// names produced by the Litter-Robot API's JSON responses.
package redact
