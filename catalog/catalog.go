// SPDX-License-Identifier: MIT

// Package catalog groups molecules by molecule hash to report probable
// duplicates. Equal hashes are not proof of identity: collisions are
// possible, so callers confirm a reported group by other means.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/molhash/atomhash"
	"github.com/katalvlaran/molhash/core"
)

var (
	// ErrNilGenerator indicates a missing molecule hash generator.
	ErrNilGenerator = errors.New("catalog: nil generator")

	// ErrLengthMismatch indicates names and molecules of different lengths.
	ErrLengthMismatch = errors.New("catalog: names and molecules differ in length")
)

// Group is every name filed under one hash, in insertion order.
type Group struct {
	Hash  int64
	Names []string
}

// Catalog files named molecules by hash. Groups keep the order in which
// their hash was first seen. Safe for concurrent use.
type Catalog struct {
	mu     sync.Mutex
	gen    atomhash.MoleculeHashGenerator
	groups *linkedhashmap.Map // int64 -> []string
	count  int
}

// New returns an empty catalog hashing with gen.
func New(gen atomhash.MoleculeHashGenerator) (*Catalog, error) {
	if gen == nil {
		return nil, ErrNilGenerator
	}
	return &Catalog{gen: gen, groups: linkedhashmap.New()}, nil
}

// Add hashes m and files it under name. dup reports whether the hash was
// already present.
func (c *Catalog) Add(name string, m core.Container) (hash int64, dup bool, err error) {
	hash, err = c.gen.Generate(m)
	if err != nil {
		return 0, false, fmt.Errorf("catalog: Add(%s): %w", name, err)
	}
	return hash, c.file(name, hash), nil
}

// AddAll hashes mols concurrently with atomhash.HashAll and files them in
// input order, so the result does not depend on scheduling.
func (c *Catalog) AddAll(ctx context.Context, names []string, mols []core.Container, workers int) error {
	if len(names) != len(mols) {
		return fmt.Errorf("catalog: AddAll: %d names, %d molecules: %w", len(names), len(mols), ErrLengthMismatch)
	}
	hashes, err := atomhash.HashAll(ctx, c.gen, mols, workers)
	if err != nil {
		return fmt.Errorf("catalog: AddAll: %w", err)
	}
	for i, h := range hashes {
		c.file(names[i], h)
	}
	return nil
}

func (c *Catalog) file(name string, hash int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.count++
	prev, found := c.groups.Get(hash)
	if !found {
		c.groups.Put(hash, []string{name})
		return false
	}
	names := prev.([]string)
	klog.V(2).Infof("catalog: %q has the same hash %d as %q", name, hash, names[0])
	c.groups.Put(hash, append(names, name))
	return true
}

// Lookup returns the names filed under hash.
func (c *Catalog) Lookup(hash int64) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, found := c.groups.Get(hash)
	if !found {
		return nil
	}
	return append([]string(nil), v.([]string)...)
}

// Len returns the number of distinct hashes.
func (c *Catalog) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.groups.Size()
}

// Count returns the number of filed molecules.
func (c *Catalog) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.count
}

// Groups returns every group in first-seen order.
func (c *Catalog) Groups() []Group {
	return c.collect(1)
}

// Duplicates returns the groups with more than one name, in first-seen order.
func (c *Catalog) Duplicates() []Group {
	return c.collect(2)
}

func (c *Catalog) collect(minSize int) []Group {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []Group
	it := c.groups.Iterator()
	for it.Next() {
		names := it.Value().([]string)
		if len(names) < minSize {
			continue
		}
		out = append(out, Group{Hash: it.Key().(int64), Names: append([]string(nil), names...)})
	}
	return out
}
