package idioms

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a short hex fingerprint of a transcript.
//
// It hashes with BLAKE2b-256 and truncates to 16 bytes (32 hex chars). Two
// runs that printed the same lines have the same fingerprint.
func Fingerprint(transcript string) string {
	sum := blake2b.Sum256([]byte(transcript))
	return hex.EncodeToString(sum[:16])
}
