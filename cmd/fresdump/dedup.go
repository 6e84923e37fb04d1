package main

import (
	"github.com/rawbytedev/fressian"
	"github.com/rawbytedev/fressian/pkg/cache"
	"github.com/rawbytedev/fressian/pkg/wire"
)

type dedupStats struct {
	values        int
	distinct      int
	repeated      int
	repeatedBytes int
}

// dedup interns every value below the top level and counts how many
// repeat an earlier one. Children of a repeated value are not visited.
func dedup(values []any, c *cache.Cache) (dedupStats, error) {
	var s dedupStats
	f := fressian.New(fressian.Options{})
	var walk func(v any) error
	visit := func(v any) error {
		p, err := f.Encode(v)
		if err != nil {
			return err
		}
		s.values++
		if _, seen := c.InternEncoded(p); seen {
			s.repeated++
			s.repeatedBytes += len(p)
			return nil
		}
		return walk(v)
	}
	walk = func(v any) error {
		switch v := v.(type) {
		case []any:
			for _, e := range v {
				if err := visit(e); err != nil {
					return err
				}
			}
		case wire.Set:
			for _, e := range v {
				if err := visit(e); err != nil {
					return err
				}
			}
		case wire.Map:
			for _, ent := range v {
				if err := visit(ent.Key); err != nil {
					return err
				}
				if err := visit(ent.Value); err != nil {
					return err
				}
			}
		}
		return nil
	}
	for _, v := range values {
		if err := walk(v); err != nil {
			return s, err
		}
	}
	s.distinct = c.Len()
	return s, nil
}
