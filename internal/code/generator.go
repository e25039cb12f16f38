// Package code produces the short identifiers handed out at registration.
package code

import (
	"math/rand/v2"
	"strings"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const (
	DefaultLength = 6

	// maxAttemptsPerLength bounds the retry loop before the generator grows
	// the code. Collisions at length 6 are already astronomically unlikely
	// for small registries; the growth step makes termination provable
	// instead of probabilistic.
	maxAttemptsPerLength = 64
	growStep             = 2
)

type Generator struct {
	Length int
}

func NewGenerator() *Generator {
	return &Generator{Length: DefaultLength}
}

// Generate returns one candidate code, each character drawn uniformly
// from [A-Z0-9].
func (g *Generator) Generate() string {
	return g.generate(g.length())
}

// Unique returns a code for which taken reports false. It retries at the
// configured length and falls back to progressively longer codes, so it
// terminates even against an adversarial registry.
func (g *Generator) Unique(taken func(string) bool) string {
	length := g.length()
	for {
		for i := 0; i < maxAttemptsPerLength; i++ {
			c := g.generate(length)
			if !taken(c) {
				return c
			}
		}
		length += growStep
	}
}

func (g *Generator) length() int {
	if g.Length < 1 {
		return DefaultLength
	}
	return g.Length
}

func (g *Generator) generate(length int) string {
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteByte(alphabet[rand.IntN(len(alphabet))])
	}
	return b.String()
}
