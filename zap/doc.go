// Package zap provides adapters and helpers around zap-based logging.
//
// It bridges the log abstraction to zap while preserving structured fields,
// so the client library's one logging call site stays backend-agnostic.
package zap
