// Package auth reconciles a bearer token across three possible sources
// at application start: a token embedded in the URL (post-OAuth
// redirect), durable key-value storage, and the token's own claims.
//
// DecodeToken does NOT verify signatures. It is presentation-layer
// convenience, never a trust boundary; verified parsing lives in the
// HTTP middleware.
package auth

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Storage keys are fixed; the whole session is cleared wholesale,
// there is no partial invalidation.
const (
	StorageTokenKey  = "auth_token_marquesa"
	StorageUserKey   = "auth_user_marquesa"
	StorageExpiryKey = "auth_expiry_marquesa"
)

type Claims struct {
	ID       string `json:"id"`
	UserType string `json:"userType"`
	Email    string `json:"email"`
	Exp      int64  `json:"exp"`
}

type UserRecord struct {
	ID             string `json:"id"`
	Name           string `json:"name,omitempty"`
	Email          string `json:"email,omitempty"`
	UserType       string `json:"userType,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// SessionStore is the durable key-value storage the sync writes to.
// Injected so tests can run against isolated instances.
type SessionStore interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

func (m *MemoryStore) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, okk := m.values[key]
	return v, okk
}

func (m *MemoryStore) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

func (m *MemoryStore) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
}

// ExtractTokenFromURL checks the fragment (#token=) first, then the
// query string. Either way the token is stripped from the returned URL.
func ExtractTokenFromURL(u *url.URL) (string, *url.URL) {
	if u == nil {
		return "", nil
	}
	stripped := *u

	if u.Fragment != "" {
		if vals, err := url.ParseQuery(u.Fragment); err == nil {
			if token := strings.TrimSpace(vals.Get("token")); token != "" {
				vals.Del("token")
				stripped.Fragment = vals.Encode()
				stripped.RawFragment = ""
				return token, &stripped
			}
		}
	}

	q := u.Query()
	if token := strings.TrimSpace(q.Get("token")); token != "" {
		q.Del("token")
		stripped.RawQuery = q.Encode()
		return token, &stripped
	}

	return "", &stripped
}

// DecodeToken parses the claims without verifying the signature.
// Returns nil for malformed tokens, tokens missing id/exp, and tokens
// whose exp already elapsed.
func DecodeToken(raw string) *Claims {
	return decodeTokenAt(raw, time.Now())
}

func decodeTokenAt(raw string, now time.Time) *Claims {
	mapClaims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(strings.TrimSpace(raw), mapClaims); err != nil {
		return nil
	}

	id, _ := mapClaims["id"].(string)
	if id == "" {
		return nil
	}
	expRaw, okk := mapClaims["exp"].(float64)
	if !okk {
		return nil
	}
	exp := int64(expRaw)
	if exp <= now.Unix() {
		return nil
	}

	claims := &Claims{ID: id, Exp: exp}
	claims.UserType, _ = mapClaims["userType"].(string)
	claims.Email, _ = mapClaims["email"].(string)
	return claims
}

type SyncSource string

const (
	SourceURL     SyncSource = "url"
	SourceStorage SyncSource = "storage"
	SourceNone    SyncSource = "none"
)

// Sync persists and recovers sessions through a SessionStore.
type Sync struct {
	Store SessionStore

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s Sync) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// SyncToStorage decodes the token and writes token, user record and raw
// expiry under the three fixed keys. When user is nil a fallback record
// is built from the claims. Reports success.
func (s Sync) SyncToStorage(token string, user *UserRecord) bool {
	claims := decodeTokenAt(token, s.now())
	if claims == nil {
		return false
	}

	record := user
	if record == nil {
		record = &UserRecord{
			ID:       claims.ID,
			Email:    claims.Email,
			UserType: claims.UserType,
		}
	}

	encoded, err := json.Marshal(record)
	if err != nil {
		return false
	}

	s.Store.Set(StorageTokenKey, token)
	s.Store.Set(StorageUserKey, string(encoded))
	s.Store.Set(StorageExpiryKey, strconv.FormatInt(claims.Exp, 10))
	return true
}

// HasValidStoredSession requires all three keys, an unexpired expiry
// and a parseable user record carrying an id. An expired session is
// cleared as a side effect.
func (s Sync) HasValidStoredSession() bool {
	token, okToken := s.Store.Get(StorageTokenKey)
	rawUser, okUser := s.Store.Get(StorageUserKey)
	rawExpiry, okExpiry := s.Store.Get(StorageExpiryKey)
	if !okToken || !okUser || !okExpiry || token == "" {
		return false
	}

	expiry, err := parseExpiry(rawExpiry)
	if err != nil {
		return false
	}
	if !expiry.After(s.now()) {
		s.ClearStoredSession()
		return false
	}

	var record UserRecord
	if err := json.Unmarshal([]byte(rawUser), &record); err != nil || record.ID == "" {
		return false
	}
	return true
}

// ClearStoredSession wipes the whole session.
func (s Sync) ClearStoredSession() {
	s.Store.Delete(StorageTokenKey)
	s.Store.Delete(StorageUserKey)
	s.Store.Delete(StorageExpiryKey)
}

// StoredToken returns the persisted token when the session is valid.
func (s Sync) StoredToken() (string, bool) {
	if !s.HasValidStoredSession() {
		return "", false
	}
	token, _ := s.Store.Get(StorageTokenKey)
	return token, true
}

// HandleInitialTokenSync resolves the session at startup. A fresh URL
// token wins over a cached session so a post-OAuth redirect always
// replaces whatever was stored.
func (s Sync) HandleInitialTokenSync(u *url.URL) (string, SyncSource, *url.URL) {
	token, stripped := ExtractTokenFromURL(u)
	if token != "" && s.SyncToStorage(token, nil) {
		return token, SourceURL, stripped
	}

	if stored, okk := s.StoredToken(); okk {
		return stored, SourceStorage, stripped
	}

	return "", SourceNone, stripped
}

func parseExpiry(raw string) (time.Time, error) {
	secs, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(secs, 0), nil
}
