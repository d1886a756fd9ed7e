// Package log defines the structured logging abstraction used by the
// client library, decoupling callers from the concrete logging backend.
package log
