// Package search looks for random strings whose MD4 digests agree on a
// truncated hex prefix.
//
// Two experiments are supported. RandomPair draws candidates until any two
// of them share the first k hex digits, which takes on the order of 2^(2k)
// probes (the birthday bound on a 4k-bit space). FixedTarget draws
// candidates until one shares the first k hex digits with the digest of a
// fixed string, which takes on the order of 2^(4k) probes.
//
// Nothing here is concurrent and nothing performs I/O. Randomness comes
// only from the Generator passed in, so a seeded generator makes a run
// reproducible.
package search

import (
	"errors"
	"fmt"
	"log/slog"

	"jayconrod.com/md4lab/crypto"
)

// MaxPrefix is the longest prefix that can be searched: a full MD4 digest
// in hex digits.
const MaxPrefix = 2 * crypto.MD4Size

// DefaultTarget is the string searched against in FixedTarget mode when
// Config.Target is empty.
const DefaultTarget = "password"

// ErrInvalidConfig is returned, wrapped, for configurations rejected before
// any probing starts.
var ErrInvalidConfig = errors.New("invalid search configuration")

// Mode selects what a candidate's prefix is compared against.
type Mode int

const (
	// RandomPair compares each candidate against all earlier candidates of
	// the same pass.
	RandomPair Mode = iota

	// FixedTarget compares each candidate against the digest of the target.
	FixedTarget
)

func (m Mode) String() string {
	switch m {
	case RandomPair:
		return "pair"
	case FixedTarget:
		return "target"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode returns the Mode named by s, as printed by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "pair":
		return RandomPair, nil
	case "target":
		return FixedTarget, nil
	default:
		return 0, fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, s)
	}
}

// Config describes one search run.
type Config struct {
	// Length is the length of every candidate string. Must be at least 1.
	Length int

	// MaxPrefix is the last prefix length searched, in hex digits. Passes
	// run for every prefix length from 1 up to and including MaxPrefix.
	MaxPrefix int

	Mode Mode

	// Target is the fixed string for FixedTarget mode. Empty means
	// DefaultTarget. Ignored in RandomPair mode.
	Target string

	// Logger receives a debug record per pass. Nil discards.
	Logger *slog.Logger
}

// Validate reports whether c can be searched.
func (c Config) Validate() error {
	if c.Length < 1 {
		return fmt.Errorf("%w: candidate length %d, need at least 1", ErrInvalidConfig, c.Length)
	}
	if c.MaxPrefix < 1 || c.MaxPrefix > MaxPrefix {
		return fmt.Errorf("%w: prefix length %d, need 1 to %d", ErrInvalidConfig, c.MaxPrefix, MaxPrefix)
	}
	if c.Mode != RandomPair && c.Mode != FixedTarget {
		return fmt.Errorf("%w: unknown mode %v", ErrInvalidConfig, c.Mode)
	}
	return nil
}

func (c Config) target() string {
	if c.Target == "" {
		return DefaultTarget
	}
	return c.Target
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

// Result is the outcome of one pass.
type Result struct {
	// Prefix is the number of leading hex digits compared.
	Prefix int `json:"prefix"`

	// Bits is 4*Prefix.
	Bits int `json:"bits"`

	// Probes is the number of candidates hashed during the pass, including
	// the one that matched.
	Probes int `json:"probes"`

	// First is the earlier of the two matching strings. In FixedTarget mode
	// it is the candidate that matched the target.
	First     string `json:"first"`
	FirstHash string `json:"firstHash"`

	// Second is the candidate that completed the match. In FixedTarget mode
	// it is the target itself.
	Second     string `json:"second"`
	SecondHash string `json:"secondHash"`
}

// Run searches every prefix length of cfg and returns one Result per
// length, shortest first.
func Run(cfg Config, gen Generator) ([]Result, error) {
	var results []Result
	err := Walk(cfg, gen, func(r Result) error {
		results = append(results, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Walk searches every prefix length of cfg, shortest first, and calls fn
// with each Result as soon as its pass completes. If fn returns an error,
// Walk stops and returns it.
//
// Walk does not return until a match is found at every length. For long
// prefixes that can take longer than anyone is willing to wait; fn is the
// only place to give up.
func Walk(cfg Config, gen Generator, fn func(Result) error) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if gen == nil {
		return fmt.Errorf("%w: no candidate generator", ErrInvalidConfig)
	}
	lg := cfg.logger().With(slog.String("mode", cfg.Mode.String()), slog.Int("length", cfg.Length))

	var target, targetHash string
	if cfg.Mode == FixedTarget {
		target = cfg.target()
		targetHash = crypto.MD4Hex([]byte(target))
		lg.Debug("searching against target", slog.String("target", target), slog.String("hash", targetHash))
	}

	for k := 1; k <= cfg.MaxPrefix; k++ {
		var r Result
		if cfg.Mode == FixedTarget {
			r = targetPass(gen, cfg.Length, k, target, targetHash)
		} else {
			r = pairPass(gen, cfg.Length, k)
		}
		lg.Debug("prefix matched",
			slog.Int("prefix", r.Prefix),
			slog.Int("bits", r.Bits),
			slog.Int("probes", r.Probes))
		if err := fn(r); err != nil {
			return err
		}
	}
	return nil
}

type probe struct {
	s, hash string
}

// pairPass draws candidates until two different ones share k hex digits.
// Drawing the same string twice is not a collision.
func pairPass(gen Generator, length, k int) Result {
	seen := make(map[string]probe)
	for probes := 1; ; probes++ {
		s := gen.Candidate(length)
		hash := crypto.MD4Hex([]byte(s))
		prev, ok := seen[hash[:k]]
		if ok && prev.s != s {
			return Result{
				Prefix:     k,
				Bits:       4 * k,
				Probes:     probes,
				First:      prev.s,
				FirstHash:  prev.hash,
				Second:     s,
				SecondHash: hash,
			}
		}
		if !ok {
			seen[hash[:k]] = probe{s: s, hash: hash}
		}
	}
}

// targetPass draws candidates until one shares k hex digits with
// targetHash.
func targetPass(gen Generator, length, k int, target, targetHash string) Result {
	for probes := 1; ; probes++ {
		s := gen.Candidate(length)
		hash := crypto.MD4Hex([]byte(s))
		if hash[:k] == targetHash[:k] {
			return Result{
				Prefix:     k,
				Bits:       4 * k,
				Probes:     probes,
				First:      s,
				FirstHash:  hash,
				Second:     target,
				SecondHash: targetHash,
			}
		}
	}
}
