package core

import (
	"fmt"

	"github.com/segmentio/ksuid"
)

// ID is a K-sortable unique identifier. Every execution carries one so runs
// can be correlated across log lines and rendered results.
type ID string

// NewID generates a new random ID.
func NewID() (ID, error) {
	uid, err := ksuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate ID: %w", err)
	}
	return ID(uid.String()), nil
}
