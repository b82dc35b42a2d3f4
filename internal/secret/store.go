// Package secret resolves the password for a scanner login, consulting the
// platform credential vault and falling back to interactive entry.
package secret

import (
	"errors"

	"github.com/zalando/go-keyring"
)

// ErrNotFound reports that no secret is stored for a (service, account) pair.
var ErrNotFound = errors.New("secret not found")

// Store is the narrow interface onto a credential vault. The service is the
// scanner address and the account the login username.
type Store interface {
	Get(service, account string) (string, error)
	Set(service, account, secret string) error
}

// KeyringStore is backed by the OS credential manager: Windows Credential
// Manager, the macOS Keychain, or the freedesktop Secret Service.
type KeyringStore struct{}

func (KeyringStore) Get(service, account string) (string, error) {
	password, err := keyring.Get(service, account)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return password, nil
}

func (KeyringStore) Set(service, account, secret string) error {
	return keyring.Set(service, account, secret)
}

// MemStore is an in-memory Store, used by tests and by runs with the
// credential vault disabled in configuration.
type MemStore struct {
	Secrets map[string]string
	Err     error // when set, returned from every call
}

func memKey(service, account string) string {
	return service + "\x00" + account
}

func (m *MemStore) Get(service, account string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	secret, ok := m.Secrets[memKey(service, account)]
	if !ok {
		return "", ErrNotFound
	}
	return secret, nil
}

func (m *MemStore) Set(service, account, secret string) error {
	if m.Err != nil {
		return m.Err
	}
	if m.Secrets == nil {
		m.Secrets = make(map[string]string)
	}
	m.Secrets[memKey(service, account)] = secret
	return nil
}
