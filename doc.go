// Package pylitterbot provides the data-normalization core of a Go client
// for the Litter-Robot cloud API.
//
// The real logic lives in subpackages: codec opaque-ifies credential-like
// strings, timeutil normalizes API timestamps into UTC offset-aware
// instants, and redact scrubs sensitive fields from payloads before they
// reach logs. This root package carries the straight-line glue those call
// sites share: URL joining, pluralization, strict-default map lookup, and
// deprecation notices.
//
// Every exported function is pure and safe for concurrent use; the only
// logging call in the module is WarnDeprecated.
package pylitterbot
