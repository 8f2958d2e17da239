// Package kvstore is the session persistence boundary. Carts, order
// history and favorites are stored as JSON values keyed per session;
// the rest of the application never talks to the backing store directly.
package kvstore

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Store reads and writes JSON values keyed per session.
type Store interface {
	// GetJSON loads the value at (sessionID, key) into dest. The bool
	// reports whether the key existed.
	GetJSON(ctx context.Context, sessionID, key string, dest interface{}) (bool, error)
	SetJSON(ctx context.Context, sessionID, key string, value interface{}, ttl time.Duration) error
	Del(ctx context.Context, sessionID, key string) error
}

func buildKey(prefix, sessionID, key string) string {
	trimmed := strings.TrimSpace(prefix)
	if trimmed == "" {
		trimmed = "ss"
	}
	return fmt.Sprintf("%s:session:%s:%s", trimmed, sessionID, key)
}
