//go:build unit

package redact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedact(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    any
		expected any
	}{
		{
			name: "should redact sensitive keys and keep everything else",
			input: map[string]any{
				"token": "abc",
				"name":  "Max",
				"nested": map[string]any{
					"deviceId": "d1",
					"note":     "",
				},
			},
			expected: map[string]any{
				"token": Redacted,
				"name":  "Max",
				"nested": map[string]any{
					"deviceId": Redacted,
					"note":     "",
				},
			},
		},
		{
			name: "should leave nil and empty string values unchanged even under sensitive keys",
			input: map[string]any{
				"token":        "",
				"refreshToken": nil,
				"userId":       "u-1",
			},
			expected: map[string]any{
				"token":        "",
				"refreshToken": nil,
				"userId":       Redacted,
			},
		},
		{
			name: "should replace a sensitive key's container value with the sentinel",
			input: map[string]any{
				"token": map[string]any{"inner": "secret"},
			},
			expected: map[string]any{
				"token": Redacted,
			},
		},
		{
			name: "should redact elements of a slice independently",
			input: []any{
				map[string]any{"serial": "LR3-0001", "power": "on"},
				map[string]any{"serial": "LR3-0002", "power": "off"},
			},
			expected: []any{
				map[string]any{"serial": Redacted, "power": "on"},
				map[string]any{"serial": Redacted, "power": "off"},
			},
		},
		{
			name: "should redact slices nested under non-sensitive keys",
			input: map[string]any{
				"robots": []any{
					map[string]any{"litterRobotId": "r1", "nickname": "Kitchen"},
				},
			},
			expected: map[string]any{
				"robots": []any{
					map[string]any{"litterRobotId": Redacted, "nickname": "Kitchen"},
				},
			},
		},
		{
			name:     "should pass through a scalar string",
			input:    "plain",
			expected: "plain",
		},
		{
			name:     "should pass through a scalar number",
			input:    42,
			expected: 42,
		},
		{
			name:     "should pass through nil",
			input:    nil,
			expected: nil,
		},
		{
			name:     "should return an empty map unchanged",
			input:    map[string]any{},
			expected: map[string]any{},
		},
		{
			name: "should be a no-op on values with no sensitive keys",
			input: map[string]any{
				"name":  "Max",
				"power": true,
				"settings": map[string]any{
					"cycleDelay": 7,
				},
			},
			expected: map[string]any{
				"name":  "Max",
				"power": true,
				"settings": map[string]any{
					"cycleDelay": 7,
				},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Redact(tt.input), "Redact() result should match expected value")
		})
	}
}

func TestRedactIsIdempotent(t *testing.T) {
	t.Parallel()

	input := map[string]any{
		"token":  "abc",
		"name":   "Max",
		"robots": []any{map[string]any{"serial": "LR3-0001"}},
	}

	once := Redact(input)
	twice := Redact(once)

	assert.Equal(t, once, twice, "redacting an already-redacted structure should yield an identical structure")
}

func TestRedactDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	input := map[string]any{
		"token": "abc",
		"nested": map[string]any{
			"deviceId": "d1",
		},
	}

	result := Redact(input)

	require.IsType(t, map[string]any{}, result)
	assert.Equal(t, "abc", input["token"], "input map should keep its original value")
	assert.Equal(t, "d1", input["nested"].(map[string]any)["deviceId"], "nested input map should keep its original value")
}

func TestRedactPreservesShape(t *testing.T) {
	t.Parallel()

	input := map[string]any{
		"token": "abc",
		"robots": []any{
			map[string]any{"serial": "LR3-0001", "power": "on"},
			"scalar-element",
		},
	}

	result, ok := Redact(input).(map[string]any)
	require.True(t, ok)

	assert.Len(t, result, len(input), "top-level key count should be preserved")

	for key := range input {
		assert.Contains(t, result, key, "every input key should survive redaction")
	}

	robots, ok := result["robots"].([]any)
	require.True(t, ok)
	assert.Len(t, robots, 2, "sequence length should be preserved")
}

func TestIsSensitiveField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		field    string
		expected bool
	}{
		{
			name:     "should match token",
			field:    "token",
			expected: true,
		},
		{
			name:     "should match deviceId",
			field:    "deviceId",
			expected: true,
		},
		{
			name:     "should match id",
			field:    "id",
			expected: true,
		},
		{
			name:     "should not match name",
			field:    "name",
			expected: false,
		},
		{
			name:     "should not match a different casing",
			field:    "DeviceID",
			expected: false,
		},
		{
			name:     "should not match a superstring of a sensitive field",
			field:    "tokenType",
			expected: false,
		},
		{
			name:     "should not match the empty string",
			field:    "",
			expected: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, IsSensitiveField(tt.field))
		})
	}
}

func TestSensitiveFieldsMapReturnsClone(t *testing.T) {
	t.Parallel()

	first := SensitiveFieldsMap()
	first["injected"] = true
	delete(first, "token")

	second := SensitiveFieldsMap()

	assert.False(t, second["injected"], "mutating a returned map should not affect later calls")
	assert.True(t, second["token"], "original entries should survive mutation of earlier clones")
	assert.Len(t, second, len(DefaultSensitiveFields()))
}
