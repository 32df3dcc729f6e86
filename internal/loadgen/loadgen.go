// Package loadgen produces synthetic key streams for load testing a cache.
package loadgen

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

// ErrInvalidConfig is returned when a Config cannot produce keys.
var ErrInvalidConfig = errors.New("invalid load config")

// Config describes a stream of keys. The mean walks from MeanBegin towards
// MeanEnd one step per draw; each draw is taken from a normal distribution
// around the current mean and kept only if it falls inside
// [MeanBegin, MeanEnd]. Generation stops after Requests kept keys or when
// the mean reaches MeanEnd, whichever comes first.
type Config struct {
	Requests  int
	MeanBegin int
	MeanEnd   int
	Deviation float64
	Seed      uint64
}

// Validate checks that the config describes a non-empty range.
func (c Config) Validate() error {
	switch {
	case c.Requests <= 0:
		return fmt.Errorf("%w: requests must be positive, got %d",
			ErrInvalidConfig, c.Requests)
	case c.MeanEnd <= c.MeanBegin:
		return fmt.Errorf("%w: mean end %d not above mean begin %d",
			ErrInvalidConfig, c.MeanEnd, c.MeanBegin)
	case c.Deviation < 0 || math.IsNaN(c.Deviation):
		return fmt.Errorf("%w: deviation must not be negative, got %v",
			ErrInvalidConfig, c.Deviation)
	}
	return nil
}

// Generate returns the key stream described by cfg. The same seed always
// yields the same stream.
func Generate(cfg Config) ([]int, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))

	span := cfg.MeanEnd - cfg.MeanBegin
	keys := make([]int, 0, min(cfg.Requests, span))
	for mean := cfg.MeanBegin; mean < cfg.MeanEnd; mean++ {
		r := int(float64(mean) + rng.NormFloat64()*cfg.Deviation)
		if r >= cfg.MeanBegin && r <= cfg.MeanEnd {
			keys = append(keys, r)
		}
		if len(keys) >= cfg.Requests {
			break
		}
	}
	return keys, nil
}
