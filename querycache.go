package leapdb

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/elastic/go-freelru"
)

const minQueryCacheSize = 16

// QueryCache memoizes fully drained solver result sets. The cache key
// digests the participating trees' identity and version together with
// the variable mapping, so any mutation of a tree silently retires its
// cached queries: the stale key is never produced again and ages out
// of the LRU.
//
// Cached result slices are aliased between callers; treat them as
// read-only, the same contract as cursor-returned keys.
type QueryCache struct {
	lru    *freelru.LRU[uint64, []Key]
	logger Logger
}

// NewQueryCache returns a cache holding up to the configured number of
// result sets (WithQueryCacheSize, default 128). Sizes below
// minQueryCacheSize are raised to it.
func NewQueryCache(options ...Option) (*QueryCache, error) {
	opts := defaultOptions()
	for _, opt := range options {
		opt(&opts)
	}
	size := max(opts.queryCacheSize, minQueryCacheSize)

	lru, err := freelru.New[uint64, []Key](uint32(size), hashQueryKey)
	if err != nil {
		return nil, err
	}
	return &QueryCache{lru: lru, logger: opts.logger}, nil
}

// Solve returns the solver's complete result set, from cache when the
// same query over the same tree versions was drained before. On a miss
// the solver is Reset and drained.
func (qc *QueryCache) Solve(s *Solver) []Key {
	key := s.fingerprint()
	if results, ok := qc.lru.Get(key); ok {
		qc.logger.Info("query cache hit", "key", key, "results", len(results))
		return results
	}

	s.Reset()
	results := s.All()
	qc.lru.Add(key, results)
	qc.logger.Info("query cache miss", "key", key, "results", len(results))
	return results
}

// Len returns the number of cached result sets.
func (qc *QueryCache) Len() int { return qc.lru.Len() }

// Purge drops every cached result set.
func (qc *QueryCache) Purge() { qc.lru.Purge() }

func hashQueryKey(k uint64) uint32 {
	return uint32(k ^ k>>32)
}

// fingerprint digests everything the result set depends on: the
// variable count, each constraint's tree identity and version, and the
// constraint-to-variable maps.
func (s *Solver) fingerprint() uint64 {
	d := xxhash.New()
	var buf [8]byte

	binary.BigEndian.PutUint64(buf[:], uint64(len(s.los)))
	_, _ = d.Write(buf[:])
	for c, constraint := range s.constraints {
		tree := constraint.cursor.tree
		_, _ = d.Write(tree.id[:])
		binary.BigEndian.PutUint64(buf[:], tree.version)
		_, _ = d.Write(buf[:])
		for _, v := range s.ixes[c] {
			binary.BigEndian.PutUint64(buf[:], uint64(v))
			_, _ = d.Write(buf[:])
		}
	}
	return d.Sum64()
}
