package domain

import "github.com/google/uuid"

// BuildIdempotencyKey scopes a client Idempotency-Key to its user.
func BuildIdempotencyKey(userID uuid.UUID, key string) string {
	return userID.String() + ":transfer:" + key
}
