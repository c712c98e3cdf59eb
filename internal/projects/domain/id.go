package domain

import "encoding/hex"

// IDLength is the length of the hexadecimal project identifier.
const IDLength = 24

// ValidateID checks that id has the external identifier format. It never touches storage.
func ValidateID(id string) error {
	if len(id) != IDLength {
		return ErrInvalidID
	}
	if _, err := hex.DecodeString(id); err != nil {
		return ErrInvalidID
	}
	return nil
}
