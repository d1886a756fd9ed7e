package redact

import (
	"maps"
	"sync"
)

// Redacted is the sentinel substituted for every sensitive field value.
const Redacted = "**REDACTED**"

// defaultSensitiveFields lists the JSON field names the remote API emits
// whose values must never appear unredacted in logs or debug dumps. The
// list is an external contract: it has to stay in sync with the field names
// the API actually produces.
var defaultSensitiveFields = []string{
	"token",
	"idToken",
	"refreshToken",
	"userId",
	"userEmail",
	"sessionId",
	"oneSignalPlayerId",
	"deviceId",
	"id",
	"litterRobotId",
	"unitId",
	"litterRobotSerial",
	"serial",
}

var (
	sensitiveFieldsMapOnce sync.Once
	sensitiveFieldsMap     map[string]bool
)

// fieldsMap returns the shared lookup map, building it on first use.
// The map is never mutated after initialization.
func fieldsMap() map[string]bool {
	sensitiveFieldsMapOnce.Do(func() {
		sensitiveFieldsMap = make(map[string]bool, len(defaultSensitiveFields))
		for _, field := range defaultSensitiveFields {
			sensitiveFieldsMap[field] = true
		}
	})

	return sensitiveFieldsMap
}

// DefaultSensitiveFields returns the field names considered sensitive.
func DefaultSensitiveFields() []string {
	return defaultSensitiveFields
}

// SensitiveFieldsMap provides a map version of DefaultSensitiveFields for
// lookup operations. The underlying cache is initialized only once; each
// call returns a shallow clone so callers cannot mutate shared state.
func SensitiveFieldsMap() map[string]bool {
	fields := fieldsMap()

	clone := make(map[string]bool, len(fields))
	maps.Copy(clone, fields)

	return clone
}

// IsSensitiveField reports whether a field name is in the sensitive set.
//
// Matching is exact and case-sensitive: the API's field names are fixed
// camelCase identifiers, and the set contains short names like "id" where
// fuzzy matching would redact unrelated fields.
func IsSensitiveField(fieldName string) bool {
	return fieldsMap()[fieldName]
}
