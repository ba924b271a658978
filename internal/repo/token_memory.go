package repo

import (
	"sort"
	"sync"
)

// InMemoryTokenRepository is an in-memory set of recipient tokens.
type InMemoryTokenRepository struct {
	mu     sync.Mutex
	tokens map[string]struct{}
}

func NewInMemoryTokenRepository() *InMemoryTokenRepository {
	return &InMemoryTokenRepository{tokens: map[string]struct{}{}}
}

func (r *InMemoryTokenRepository) Register(token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token] = struct{}{}
	return nil
}

func (r *InMemoryTokenRepository) Remove(token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tokens, token)
	return nil
}

func (r *InMemoryTokenRepository) All() ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tokens := make([]string, 0, len(r.tokens))
	for t := range r.tokens {
		tokens = append(tokens, t)
	}
	sort.Strings(tokens)
	return tokens, nil
}

// Clear drops all tokens. Used by tests.
func (r *InMemoryTokenRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens = map[string]struct{}{}
}
