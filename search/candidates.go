package search

import (
	"math"

	"jayconrod.com/md4lab/crypto"
)

// Alphabet is the set of bytes random candidates are drawn from.
const Alphabet = `abcdefghijklmnopqrstuvwxyz1234567890!@#$%^&*()_+={}[]:"<>?/`

// Generator produces candidate strings for a search.
type Generator interface {
	// Candidate returns a new candidate of exactly length bytes.
	Candidate(length int) string
}

// Source is a stream of uniformly distributed 32-bit values.
// *crypto.MT19937 satisfies it.
type Source interface {
	Uint32() uint32
}

// RandomStrings draws each byte of a candidate uniformly from Alphabet.
type RandomStrings struct {
	src Source
}

// NewRandomStrings returns a generator reading from src.
func NewRandomStrings(src Source) *RandomStrings {
	return &RandomStrings{src: src}
}

// NewSeededStrings returns a generator backed by a Mersenne Twister seeded
// with seed. Equal seeds yield equal candidate sequences.
func NewSeededStrings(seed uint32) *RandomStrings {
	return NewRandomStrings(crypto.NewMT19937(seed))
}

func (g *RandomStrings) Candidate(length int) string {
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = Alphabet[g.index()]
	}
	return string(buf)
}

// index returns a value in [0, len(Alphabet)). Draws from the short tail of
// the uint32 range are rejected so every letter is equally likely.
func (g *RandomStrings) index() int {
	const size = uint32(len(Alphabet))
	const tail = (math.MaxUint32%size + 1) % size
	for {
		v := g.src.Uint32()
		if v <= math.MaxUint32-tail {
			return int(v % size)
		}
	}
}

var _ Generator = (*RandomStrings)(nil)
