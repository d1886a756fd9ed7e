package zap

import (
	"strings"
)

// controlCharReplacer escapes control characters that can be used for log injection (CWE-117).
// Newlines, carriage returns, and tabs in log messages can forge fake log entries in console encoders,
// mislead incident response, or inject false audit trail entries.
//
// The JSON encoder already escapes these inside string values, so this is primarily a defense
// for development environments using the console encoder.
var controlCharReplacer = strings.NewReplacer(
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// sanitizeString escapes control characters in a single string value.
func sanitizeString(s string) string {
	return controlCharReplacer.Replace(s)
}
