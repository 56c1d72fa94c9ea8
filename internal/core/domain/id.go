package domain

import "encoding/hex"

// idLength is the hex length of a 12 byte document identifier
const idLength = 24

// ValidID reports whether id is a well formed document identifier
func ValidID(id string) bool {
	if len(id) != idLength {
		return false
	}
	_, err := hex.DecodeString(id)
	return err == nil
}
