package repository

import (
	"encoding/base64"
	"fmt"
)

// Pagination cursors are opaque outside this package: base64url of the id of
// the last record returned. The cursor carries no ordering information; resume
// position is re-derived by re-resolving that record inside the same sort
// order, so callers can never depend on the encoding.

func encodeCursor(id string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(id))
}

func decodeCursor(cursor string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return "", fmt.Errorf("malformed cursor: %w", err)
	}
	return string(raw), nil
}
