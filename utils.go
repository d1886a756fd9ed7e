package pylitterbot

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/cxmcc/pylitterbot/log"
)

// URLJoin joins a base URL and a subpath or URL to form an absolute
// interpretation of the latter.
//
// The base is treated as a directory: a missing trailing slash is added
// before resolving, so URLJoin("https://api.example.com/v1", "users")
// yields "https://api.example.com/v1/users". An absolute subpathOrURL
// replaces the base entirely, per RFC 3986 reference resolution.
func URLJoin(base, subpathOrURL string) string {
	if subpathOrURL == "" {
		return base
	}

	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	baseURL, err := url.Parse(base)
	if err != nil {
		return subpathOrURL
	}

	ref, err := url.Parse(subpathOrURL)
	if err != nil {
		return base
	}

	return baseURL.ResolveReference(ref).String()
}

// Pluralize renders a count with its unit word, appending "s" for any count
// other than one.
func Pluralize(word string, count int) string {
	if count != 1 {
		word += "s"
	}

	return fmt.Sprintf("%d %s", count, word)
}

// GetOrDefault returns the value stored under key, or def when the key is
// absent or its value is nil. It prevents returning nil even when a key is
// present in the map, which plain map indexing cannot express.
func GetOrDefault(m map[string]any, key string, def any) any {
	if value, ok := m[key]; ok && value != nil {
		return value
	}

	return def
}

// IsUUID validates if the string passed through is a UUID.
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)

	return err == nil
}

// WarnDeprecated logs a deprecation warning for oldName, naming newName as
// the replacement when one exists. It is the only logging call site in the
// module; a nil logger drops the notice.
func WarnDeprecated(ctx context.Context, logger log.Logger, oldName, newName string) {
	if logger == nil || !logger.Enabled(log.LevelWarn) {
		return
	}

	message := oldName + " has been deprecated"
	if newName != "" {
		message += " in favor of " + newName
	}

	message += " and will be removed in a future release"

	logger.Log(ctx, log.LevelWarn, message)
}
