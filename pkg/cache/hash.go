package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Key returns "kind:" followed by the SHA-256 of parts encoded as JSON.
// Parts must be JSON-encodable; map keys are encoded in sorted order, so
// equal inputs give equal keys.
func Key(kind string, parts ...any) (string, error) {
	data, err := json.Marshal(parts)
	if err != nil {
		return "", err
	}
	return kind + ":" + Hash(data), nil
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
