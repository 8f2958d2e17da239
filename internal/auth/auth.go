// Package auth provides the storefront account surface. The shop runs
// on a stand-in provider: accounts live in memory and calls carry an
// artificial delay so clients exercise their loading states.
package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Account is a registered storefront user.
type Account struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Provider registers and authenticates accounts.
type Provider interface {
	Register(ctx context.Context, email, name, password string) (*Account, error)
	Login(ctx context.Context, email, password string) (*Account, error)
}

type storedAccount struct {
	account      Account
	passwordHash []byte
}

// MockProvider keeps accounts in memory. Every call sleeps for the
// configured delay before answering, unless the context is cancelled
// first.
type MockProvider struct {
	delay    time.Duration
	mu       sync.RWMutex
	accounts map[string]storedAccount
}

// NewMockProvider builds an empty provider with the given delay.
func NewMockProvider(delay time.Duration) *MockProvider {
	return &MockProvider{
		delay:    delay,
		accounts: make(map[string]storedAccount),
	}
}

func (p *MockProvider) wait(ctx context.Context) error {
	if p.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(p.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account.
func (p *MockProvider) Register(ctx context.Context, email, name, password string) (*Account, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}

	key := normalizeEmail(email)
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if _, exists := p.accounts[key]; exists {
		return nil, ErrEmailTaken
	}
	account := Account{Email: key, Name: strings.TrimSpace(name)}
	p.accounts[key] = storedAccount{account: account, passwordHash: hash}
	return &account, nil
}

// Login checks credentials.
func (p *MockProvider) Login(ctx context.Context, email, password string) (*Account, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}

	p.mu.RLock()
	stored, exists := p.accounts[normalizeEmail(email)]
	p.mu.RUnlock()
	if !exists {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(stored.passwordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	account := stored.account
	return &account, nil
}
