// Package correlate encodes report text into interaction action ids and back.
// Selection interactions carry no server-side session state; the original
// message text rides inside the action id as an opaque token.
package correlate

import (
	"encoding/base64"
	"strings"

	perr "incstats/internal/platform/errors"
)

// Prefix tags category-selection action ids so interaction routers can match them
const Prefix = "category_select"

// delimiter joins Prefix and token. StdEncoding's alphabet (A-Za-z0-9+/=)
// never produces it, so the first occurrence always marks the boundary
const delimiter = "-"

// Encode returns the opaque token for text. Any UTF-8 input round-trips,
// including the empty string
func Encode(text string) string {
	return base64.StdEncoding.EncodeToString([]byte(text))
}

// Decode recovers the original text from a token produced by Encode
// Malformed tokens yield a codec error, never a panic
func Decode(token string) (string, error) {
	b, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeCodec, "malformed correlation token %q", token)
	}
	return string(b), nil
}

// ActionID builds the full action id for a report text
func ActionID(text string) string {
	return Prefix + delimiter + Encode(text)
}

// SplitActionID separates an action id into its prefix and token.
// Only the first delimiter splits, so tokens that themselves contain
// the delimiter survive intact
func SplitActionID(id string) (prefix, token string, err error) {
	parts := strings.SplitN(id, delimiter, 2)
	if len(parts) != 2 {
		return "", "", perr.CodecErrf("action id %q has no token", id)
	}
	return parts[0], parts[1], nil
}

// TextFromActionID is the common decode path: split then decode the token
func TextFromActionID(id string) (string, error) {
	_, token, err := SplitActionID(id)
	if err != nil {
		return "", err
	}
	return Decode(token)
}
