//go:generate go run github.com/dmarkham/enumer -type=SourceKind -trimprefix=SourceKind -transform=kebab -text
package sample

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"sync"

	"golang.org/x/exp/rand"
)

// Source supplies raw random bits to a Sampler.
type Source interface {
	// Uint32 returns 32 uniformly distributed random bits.
	Uint32() uint32
}

type SourceKind int

const (
	// SourceKindFast is the process-wide generator, safe for concurrent use.
	SourceKindFast SourceKind = iota
	// SourceKindSeeded is a reproducible PCG stream.
	SourceKindSeeded
	// SourceKindCrypto reads from the operating system CSPRNG.
	SourceKindCrypto
)

type fastSource struct{}

func (fastSource) Uint32() uint32 {
	return rand.Uint32()
}

// FastSource returns the process-wide source. The top-level generator of
// x/exp/rand is locked, so the returned value may be shared freely.
func FastSource() Source {
	return fastSource{}
}

type seededSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func (s *seededSource) Uint32() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Uint32()
}

// NewSeededSource returns a deterministic source: two sources built from
// the same seed yield the same sequence.
func NewSeededSource(seed uint64) Source {
	return &seededSource{rnd: rand.New(rand.NewSource(seed))}
}

type cryptoSource struct{}

func (cryptoSource) Uint32() uint32 {
	var buf [4]byte
	// crypto/rand.Read never fails on supported platforms
	_, _ = crand.Read(buf[:])
	return binary.LittleEndian.Uint32(buf[:])
}

// CryptoSource returns a source backed by the operating system CSPRNG.
func CryptoSource() Source {
	return cryptoSource{}
}

// NewSource builds the source for kind. A seeded source without a seed
// takes its seed from the fast source; the seed actually used is returned
// so callers can report it.
func NewSource(kind SourceKind, seed *uint64) (Source, uint64, error) {
	switch kind {
	case SourceKindFast:
		return FastSource(), 0, nil
	case SourceKindSeeded:
		var s uint64
		if seed != nil {
			s = *seed
		} else {
			s = rand.Uint64()
		}
		return NewSeededSource(s), s, nil
	case SourceKindCrypto:
		return CryptoSource(), 0, nil
	default:
		return nil, 0, fmt.Errorf("unsupported source kind: %v", kind)
	}
}
