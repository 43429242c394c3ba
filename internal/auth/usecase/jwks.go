package usecase

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"codetutor-backend/internal/apperror"
)

// jwksDocument mirrors the JSON shape of a JWKS endpoint response
type jwksDocument struct {
	Keys []jwksKey `json:"keys"`
}

type jwksKey struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// KeySet caches the identity provider's public signing keys. The cached copy
// is reused while younger than ttl and refetched after that. Concurrent
// refreshes are tolerated, last writer wins.
type KeySet struct {
	endpoint string
	ttl      time.Duration
	client   *http.Client
	now      func() time.Time

	mu        sync.RWMutex
	keys      map[string]*rsa.PublicKey
	fetchedAt time.Time
}

// NewKeySet creates a KeySet backed by the given JWKS endpoint
func NewKeySet(endpoint string, ttl, fetchTimeout time.Duration) *KeySet {
	return &KeySet{
		endpoint: endpoint,
		ttl:      ttl,
		client:   &http.Client{Timeout: fetchTimeout},
		now:      time.Now,
	}
}

// Key returns the public key for the given key ID, refreshing the cache if it
// has gone stale. A key ID absent from a fresh key set is an authentication
// failure, not a reason to refetch.
func (s *KeySet) Key(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	keys, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	key, ok := keys[kid]
	if !ok {
		return nil, apperror.Unauthenticated("token signed with unknown key")
	}
	return key, nil
}

func (s *KeySet) current(ctx context.Context) (map[string]*rsa.PublicKey, error) {
	s.mu.RLock()
	keys, fetchedAt := s.keys, s.fetchedAt
	s.mu.RUnlock()

	if keys != nil && s.now().Sub(fetchedAt) < s.ttl {
		return keys, nil
	}

	fresh, err := s.fetch(ctx)
	if err != nil {
		if keys != nil {
			// Provider unreachable but we still hold an older copy. Serve it
			// and leave fetchedAt alone so the next call retries the fetch.
			return keys, nil
		}
		return nil, apperror.ServiceUnavailable("identity provider unreachable: " + err.Error())
	}

	s.mu.Lock()
	s.keys = fresh
	s.fetchedAt = s.now()
	s.mu.Unlock()

	return fresh, nil
}

func (s *KeySet) fetch(ctx context.Context) (map[string]*rsa.PublicKey, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jwks endpoint returned status %d", resp.StatusCode)
	}

	var doc jwksDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode jwks response: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(doc.Keys))
	for _, k := range doc.Keys {
		if k.Kty != "RSA" || k.Kid == "" {
			continue
		}
		pub, err := parseRSAKey(k)
		if err != nil {
			continue
		}
		keys[k.Kid] = pub
	}
	return keys, nil
}

// parseRSAKey rebuilds an RSA public key from its base64url modulus and
// exponent components
func parseRSAKey(k jwksKey) (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, fmt.Errorf("decode modulus: %w", err)
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, fmt.Errorf("decode exponent: %w", err)
	}
	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nBytes),
		E: int(new(big.Int).SetBytes(eBytes).Int64()),
	}, nil
}
