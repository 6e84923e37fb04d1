// Package cache assigns intern indexes to values so repeated values can be
// written as back-references. A Cache is scoped to one session and is not
// safe for concurrent use.
package cache

import (
	"bytes"
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/rawbytedev/fressian"
	"github.com/zeebo/blake3"
)

// HashFunc hashes an encoded value.
type HashFunc func(p []byte) uint64

// XXHash is the default hash.
func XXHash(p []byte) uint64 { return xxhash.Sum64(p) }

// Blake3 hashes with BLAKE3 and keeps the first eight bytes of the digest.
func Blake3(p []byte) uint64 {
	sum := blake3.Sum256(p)
	return binary.BigEndian.Uint64(sum[:8])
}

type Options struct {
	Hash HashFunc
	// MaxDepth is passed to the encoder used by Intern.
	MaxDepth int
}

type entry struct {
	index int
	raw   []byte
}

type Cache struct {
	hash    HashFunc
	enc     *fressian.Fressian
	entries map[uint64][]entry
	n       int
}

func New(opts Options) *Cache {
	if opts.Hash == nil {
		opts.Hash = XXHash
	}
	return &Cache{
		hash:    opts.Hash,
		enc:     fressian.New(fressian.Options{MaxDepth: opts.MaxDepth}),
		entries: make(map[uint64][]entry),
	}
}

// Intern encodes v and returns its index. seen reports whether an equal
// encoding was interned before; otherwise v gets the next index.
func (c *Cache) Intern(v any) (index int, seen bool, err error) {
	p, err := c.enc.Encode(v)
	if err != nil {
		return 0, false, err
	}
	index, seen = c.InternEncoded(p)
	return index, seen, nil
}

// InternEncoded is Intern for a value that is already encoded. p is copied
// when it is recorded.
func (c *Cache) InternEncoded(p []byte) (index int, seen bool) {
	h := c.hash(p)
	for _, e := range c.entries[h] {
		if bytes.Equal(e.raw, p) {
			return e.index, true
		}
	}
	index = c.n
	c.n++
	c.entries[h] = append(c.entries[h], entry{index: index, raw: bytes.Clone(p)})
	return index, false
}

// Len reports the number of interned values.
func (c *Cache) Len() int { return c.n }

// Reset forgets every entry. Indexes restart at zero.
func (c *Cache) Reset() {
	clear(c.entries)
	c.n = 0
}
