package common

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// PageFilenameExt is appended to generated page names.
const PageFilenameExt = ".html"

// ContentHash computes SHA256 hash of content and returns hex string.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}

// RandomPageFilename returns an unguessable page name such as
// "3f9c1a7be20d4c55.html": 16 hex characters taken from a random UUID.
func RandomPageFilename() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return id[:16] + PageFilenameExt
}
