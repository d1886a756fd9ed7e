package codec

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrDecode reports an encoded value that is not valid base64 or whose
	// decoded payload is not valid UTF-8 text.
	ErrDecode = errors.New("invalid encoded value")

	// ErrSerialize reports a value that cannot be serialized to JSON prior
	// to encoding.
	ErrSerialize = errors.New("unable to serialize value")
)

// Encode transforms a value into its base64 text form.
//
// A string is encoded directly over its UTF-8 bytes. Any other value
// (typically a map[string]any) is serialized to JSON first, so
// Decode(Encode(m)) yields the canonical JSON text of m, not a re-parsed
// mapping. Values JSON cannot represent return ErrSerialize.
func Encode(value any) (string, error) {
	text, ok := value.(string)
	if !ok {
		data, err := json.Marshal(value)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrSerialize, err)
		}

		text = string(data)
	}

	return base64.StdEncoding.EncodeToString([]byte(text)), nil
}

// Decode reverses Encode, returning the original text.
//
// It returns ErrDecode when the input is not valid base64 or the decoded
// bytes are not valid UTF-8.
func Decode(value string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: decoded payload is not valid UTF-8", ErrDecode)
	}

	return string(data), nil
}
