// File: utils/session.go
package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"golang.org/x/oauth2"
)

const CredentialSessionPrefix = "calSession:"

// CredentialSessionTTL bounds how long a calendar credential bundle is
// kept without a fresh sign-in.
const CredentialSessionTTL = 24 * time.Hour

// CredentialSession holds the opaque token bundle that authorizes
// calendar provider calls for one signed-in user. A missing session
// means "act as signed-out", never an error.
type CredentialSession struct {
	Token         *oauth2.Token `json:"token"`
	Scopes        []string      `json:"scopes,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	LastUpdatedAt time.Time     `json:"lastUpdatedAt"`
}

// SaveCredentialSession saves the session in Redis with a TTL.
func SaveCredentialSession(client *redis.Client, sessionID string, session CredentialSession) error {
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal credential session: %w", err)
	}
	ctx := context.Background()
	if err := client.Set(ctx, CredentialSessionPrefix+sessionID, data, CredentialSessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save credential session: %w", err)
	}
	return nil
}

// GetCredentialSession retrieves the session from Redis. A redis.Nil
// result means the caller should treat the request as signed-out.
func GetCredentialSession(client *redis.Client, sessionID string) (*CredentialSession, error) {
	ctx := context.Background()
	data, err := client.Get(ctx, CredentialSessionPrefix+sessionID).Result()
	if err != nil {
		return nil, err
	}
	var session CredentialSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal credential session: %w", err)
	}
	return &session, nil
}

// DeleteCredentialSession removes a session from Redis.
func DeleteCredentialSession(client *redis.Client, sessionID string) error {
	ctx := context.Background()
	return client.Del(ctx, CredentialSessionPrefix+sessionID).Err()
}
