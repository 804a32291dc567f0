// Package credential persists CLI tokens on the local filesystem.
package credential

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DirName is the per-user directory holding CLI state.
	DirName  = ".rivalradar"
	fileName = "credentials.yaml"
)

// ErrNotLoggedIn is returned when no usable access token is stored.
var ErrNotLoggedIn = errors.New("not logged in: run `rivalctl login`")

// Credentials is the token pair saved after a successful login.
type Credentials struct {
	AccessToken  string    `yaml:"access_token"`
	RefreshToken string    `yaml:"refresh_token"`
	ExpiresAt    time.Time `yaml:"expires_at"`
}

// FileStore keeps Credentials in a YAML file readable only by the owner.
type FileStore struct {
	path string
	now  func() time.Time
}

// NewFileStore returns a store rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, fileName), now: time.Now}
}

// DefaultDir returns $HOME/.rivalradar.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error finding home directory: %w", err)
	}
	return filepath.Join(home, DirName), nil
}

// Path returns the credentials file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the stored credentials. A missing file yields ErrNotLoggedIn.
func (s *FileStore) Load() (*Credentials, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotLoggedIn
	}
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	var c Credentials
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}
	return &c, nil
}

// Save writes c, creating the directory when needed.
func (s *FileStore) Save(c *Credentials) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

// Clear removes the stored credentials. Clearing an empty store is not an error.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove credentials: %w", err)
	}
	return nil
}

// AccessToken returns the stored access token while it is still valid.
func (s *FileStore) AccessToken(context.Context) (string, error) {
	c, err := s.Load()
	if err != nil {
		return "", err
	}
	if c.AccessToken == "" {
		return "", ErrNotLoggedIn
	}
	if !c.ExpiresAt.IsZero() && !s.now().Before(c.ExpiresAt) {
		return "", fmt.Errorf("access token expired: %w", ErrNotLoggedIn)
	}
	return c.AccessToken, nil
}
