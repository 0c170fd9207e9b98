package leapdb

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Tree is a mutable in-memory B-tree mapping fixed-arity composite
// keys to opaque values. All keys in one tree share the tree's arity.
//
// A tree is not safe for concurrent mutation. Any mutation invalidates
// every Cursor over the tree; cursors must be Reset before reuse.
type Tree struct {
	root    *node
	maxKeys int
	keyLen  int

	// version is bumped on every mutation; cursors carry the version
	// they were positioned under and refuse to seek once it is stale.
	version uint64

	id     uuid.UUID
	count  int
	logger Logger
}

// Item is one key/value pair of a tree.
type Item struct {
	Key   Key
	Value any
}

// New returns an empty tree. Non-root nodes hold between minKeys and
// 2*minKeys keys; every key must have exactly keyLen elements.
func New(minKeys, keyLen int, options ...Option) *Tree {
	if minKeys < 1 {
		panic(fmt.Sprintf("leapdb: minKeys must be >= 1, got %d", minKeys))
	}
	if keyLen < 1 {
		panic(fmt.Sprintf("leapdb: keyLen must be >= 1, got %d", keyLen))
	}

	opts := defaultOptions()
	for _, opt := range options {
		opt(&opts)
	}

	t := &Tree{
		maxKeys: 2 * minKeys,
		keyLen:  keyLen,
		id:      uuid.New(),
		logger:  opts.logger,
	}
	t.root = &node{tree: t}
	t.logger.Info("tree created",
		"tree", t.id.String(),
		"minKeys", minKeys,
		"keyLen", keyLen,
	)
	return t
}

// KeyLen returns the tree's key arity.
func (t *Tree) KeyLen() int { return t.keyLen }

// Len returns the number of keys in the tree.
func (t *Tree) Len() int { return t.count }

// ID returns the tree's identity, assigned at construction.
func (t *Tree) ID() uuid.UUID { return t.id }

// Assoc inserts or overwrites key. The tree takes ownership of key;
// callers must not mutate it afterwards. Returns whether the key
// already existed.
func (t *Tree) Assoc(key Key, val any) bool {
	t.checkArity(key)
	t.version++
	existed := t.root.assoc(key, val)
	if !existed {
		t.count++
	}
	return existed
}

// Dissoc removes key. Returns whether the key existed.
func (t *Tree) Dissoc(key Key) bool {
	t.checkArity(key)
	existed := t.root.dissoc(key)
	if existed {
		t.version++
		t.count--
	}
	return existed
}

// Get returns the value stored under key, or ErrKeyNotFound.
func (t *Tree) Get(key Key) (any, error) {
	t.checkArity(key)
	n := t.root
	for {
		ix := findGTE(n.keys, key)
		if ix < len(n.keys) && n.keys[ix].Equal(key) {
			return n.vals[ix], nil
		}
		if n.leaf() {
			return nil, ErrKeyNotFound
		}
		n = n.children[ix]
	}
}

// ForEach walks all key/value pairs in key order. The walk stops when
// fn returns false. Keys are aliased; clone before retaining.
func (t *Tree) ForEach(fn func(Key, any) bool) {
	t.root.foreach(fn)
}

// Items returns a snapshot of all pairs in key order. Keys are cloned
// and safe to retain.
func (t *Tree) Items() []Item {
	items := make([]Item, 0, t.count)
	t.root.foreach(func(k Key, v any) bool {
		items = append(items, Item{Key: k.Clone(), Value: v})
		return true
	})
	return items
}

// Cursor returns a cursor positioned at the root, valid for the
// tree's current version.
func (t *Tree) Cursor() *Cursor {
	return &Cursor{tree: t, version: t.version, node: t.root}
}

// Fingerprint hashes the ordered key/value contents. Two trees with
// equal contents under the same key order produce the same
// fingerprint.
func (t *Tree) Fingerprint() uint64 {
	d := xxhash.New()
	var buf []byte
	t.root.foreach(func(k Key, v any) bool {
		buf = k.appendBytes(buf[:0])
		_, _ = d.Write(buf)
		_, _ = fmt.Fprintf(d, "%v", v)
		return true
	})
	return d.Sum64()
}

func (t *Tree) checkArity(key Key) {
	if len(key) != t.keyLen {
		panic(fmt.Sprintf("leapdb: key arity %d does not match tree arity %d", len(key), t.keyLen))
	}
}
