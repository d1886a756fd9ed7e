// Package codec provides the reversible text transform used to opaque-ify
// credential-like values (session tokens, persisted auth state) before they
// are stored or logged.
//
// Encode accepts either a plain string or a JSON-serializable mapping;
// mappings are serialized to their canonical JSON text first. Decode only
// reverses the text transform and never re-parses the payload as structured
// data; callers that encoded a mapping re-parse the result themselves.
package codec
