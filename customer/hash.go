package customer

import (
	"crypto/sha256"
	"encoding/hex"
)

// DeriveHash computes the stable external key for a customer: the
// hex-encoded sha256 digest of the email concatenated with the phone number.
// No salt, no normalization; the same pair always yields the same hash, which
// is relied upon for URLs and duplicate-submission safety.
func DeriveHash(email, phone string) string {
	sum := sha256.Sum256([]byte(email + phone))
	return hex.EncodeToString(sum[:])
}
