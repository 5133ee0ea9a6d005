package id

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Generator creates opaque document IDs.
type Generator interface {
	NewID() (string, error)
}

// RandomGenerator issues random UUIDv4 values without dashes, which keeps
// them URL-safe and the same width as the hex ids used elsewhere.
type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) NewID() (string, error) {
	v, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}

	return strings.ReplaceAll(v.String(), "-", ""), nil
}

// SequenceGenerator returns prefix-1, prefix-2, ... and is meant for tests
// that need predictable ids.
type SequenceGenerator struct {
	mu     sync.Mutex
	prefix string
	next   int
}

func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

func (g *SequenceGenerator) NewID() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.next++
	return fmt.Sprintf("%s-%d", g.prefix, g.next), nil
}
