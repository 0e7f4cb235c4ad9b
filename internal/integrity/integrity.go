// Package integrity computes content digests used to detect edits to
// stored documents. A document keeps two digests: the import digest,
// fixed when content first enters the store, and the session digest,
// recomputed on every edit. The two diverge exactly when the content
// has changed since import.
package integrity

import (
	"crypto/md5"
	"crypto/sha1"
	"fmt"
	"regexp"
	"strings"
)

var hexPattern = regexp.MustCompile(`^[0-9A-F]+$`)

// MD5 returns the MD5 digest of content as 32 uppercase hex characters.
func MD5(content string) string {
	return fmt.Sprintf("%X", md5.Sum([]byte(content)))
}

// SHA1 returns the SHA-1 digest of content as 40 uppercase hex characters.
func SHA1(content string) string {
	return fmt.Sprintf("%X", sha1.Sum([]byte(content)))
}

// Verify reports whether content hashes to want. Comparison is
// case-insensitive so digests stored by older versions in lowercase
// still verify.
func Verify(content, want string) bool {
	return strings.EqualFold(MD5(content), want)
}

// WellFormed reports whether s looks like a digest this package
// produced: uppercase hex of MD5 or SHA-1 length.
func WellFormed(s string) bool {
	if len(s) != 32 && len(s) != 40 {
		return false
	}
	return hexPattern.MatchString(s)
}
