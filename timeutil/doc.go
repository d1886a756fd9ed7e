// Package timeutil normalizes the loosely-formatted timestamps returned by
// the remote API into canonical UTC-offset-aware instants, and provides the
// small time arithmetic the client library builds on top of them.
//
// The current instant is obtained through the Clock interface so callers
// can inject a fixed clock in tests.
package timeutil
