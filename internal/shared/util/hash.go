package util

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const namespaceHexLen = 32

// UserNamespace maps a user id to a stable directory name that does not
// leak the id itself. Ids differing only in surrounding whitespace share
// a namespace.
func UserNamespace(userID string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(userID)))
	return "u" + hex.EncodeToString(sum[:])[:namespaceHexLen]
}
