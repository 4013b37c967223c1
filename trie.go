package trie

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Trie is a character-keyed prefix tree mapping strings to values of type V.
// Values are stored by copy, so one value may be shared across many keys
// (see AddWordList). A single RWMutex guards the whole tree: mutators take
// the write lock, readers the read lock.
//
// By default keys match exactly. Normalisation and case folding can be
// switched on with the chainable configuration methods, which must be called
// before the first insert.
type Trie[V any] struct {
	root *node[V]
	mu   sync.RWMutex
	size int

	normalised    bool
	caseSensitive bool
}

// New creates a new empty trie. Keys match exactly: normalisation is off and
// matching is case sensitive.
func New[V any]() *Trie[V] {
	t := new(Trie[V])
	t.root = newNode[V]()
	t.caseSensitive = true
	return t
}

// WithNormalisation sets the Trie to strip diacritics from keys, so Jurg
// stores and finds the same entry as Jürg. Configure before inserting.
func (t *Trie[V]) WithNormalisation() *Trie[V] {
	t.normalised = true
	return t
}

// WithoutNormalisation sets the Trie to leave diacritics in keys untouched.
func (t *Trie[V]) WithoutNormalisation() *Trie[V] {
	t.normalised = false
	return t
}

// CaseSensitive sets the Trie to match keys case sensitively.
func (t *Trie[V]) CaseSensitive() *Trie[V] {
	t.caseSensitive = true
	return t
}

// CaseInsensitive sets the Trie to lower-case keys before storing and
// matching them. Configure before inserting.
func (t *Trie[V]) CaseInsensitive() *Trie[V] {
	t.caseSensitive = false
	return t
}

// fold applies the configured normalisation and case folding to a key.
func (t *Trie[V]) fold(key string) string {
	if t.normalised {
		transformer := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
		if normal, _, err := transform.String(transformer, key); err == nil {
			key = normal
		}
	}
	if !t.caseSensitive {
		key = strings.ToLower(key)
	}
	return key
}

// Insert stores value under key, creating intermediate nodes as needed.
// Re-inserting an existing key overwrites its value. The empty key is legal
// and stores its value on the root.
func (t *Trie[V]) Insert(key string, value V) {
	t.mu.Lock()
	defer t.mu.Unlock()
	current := t.root
	for _, c := range t.fold(key) {
		current = current.ensureChild(c)
	}
	if !current.isTerminal() {
		t.size++
	}
	current.setValue(value)
}

// Get returns the value stored under key. The second return value is false
// when key was never inserted, including when key is only a prefix of some
// longer stored key.
func (t *Trie[V]) Get(key string) (V, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	end := t.descend(t.fold(key))
	if end == nil {
		var zero V
		return zero, false
	}
	return end.getValue()
}

// Delete removes key and its value, pruning any chain of nodes that no
// longer leads to a stored key. It returns true iff key was present.
// Deleting the empty key is disallowed and always returns false; a value
// stored on the root stays put. Deleting an absent key leaves the tree
// unchanged.
func (t *Trie[V]) Delete(key string) bool {
	if key == "" {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	deleted, _ := deleteRecursive(t.root, []rune(t.fold(key)))
	if deleted {
		t.size--
	}
	return deleted
}

// deleteRecursive walks the remaining key below current. The prune return
// value tells the caller to remove current from its own children map: true
// once current no longer marks a key end and has no children left.
func deleteRecursive[V any](current *node[V], key []rune) (deleted, prune bool) {
	if len(key) == 0 {
		if !current.isTerminal() {
			// The path exists but no key ends here.
			return false, false
		}
		current.clearValue()
		return true, !current.hasChildren()
	}
	child, ok := current.child(key[0])
	if !ok {
		return false, false
	}
	deleted, pruneChild := deleteRecursive(child, key[1:])
	if pruneChild {
		current.removeChild(key[0])
	}
	return deleted, deleted && !current.isTerminal() && !current.hasChildren()
}

// PrefixSearch reports whether any stored key starts with prefix. The node
// at the end of the path need not itself be a key. The empty prefix is
// always true.
func (t *Trie[V]) PrefixSearch(prefix string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.descend(t.fold(prefix)) != nil
}

// AutoComplete returns up to maxResults stored keys starting with prefix,
// depth first in ascending code-point order, so output is deterministic and
// truncation under maxResults is reproducible. If prefix is itself a stored
// key it comes first. maxResults <= 0 returns an empty slice without
// traversing.
func (t *Trie[V]) AutoComplete(prefix string, maxResults int) []string {
	results := []string{}
	if maxResults <= 0 {
		return results
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	folded := t.fold(prefix)
	start := t.descend(folded)
	if start == nil {
		return results
	}
	collectWords(start, folded, maxResults, &results)
	return results
}

// collectWords appends every complete key in the subtree under n, stopping
// as soon as the cap is hit. Subtrees past the cap are never entered.
func collectWords[V any](n *node[V], current string, max int, results *[]string) {
	if n.isTerminal() {
		*results = append(*results, current)
		if len(*results) >= max {
			return
		}
	}
	for _, c := range n.sortedChildRunes() {
		child, _ := n.child(c)
		collectWords(child, current+string(c), max, results)
		if len(*results) >= max {
			return
		}
	}
}

// AddWordList inserts every word with the value valueGenerator produces for
// it.
func (t *Trie[V]) AddWordList(words []string, valueGenerator func(string) V) {
	for _, word := range words {
		t.Insert(word, valueGenerator(word))
	}
}

// Len returns the number of stored keys.
func (t *Trie[V]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.size
}

// descend follows path from the root and returns the node it ends at, or
// nil if the path leaves the tree. Callers hold the lock.
func (t *Trie[V]) descend(path string) *node[V] {
	current := t.root
	for _, c := range path {
		next, ok := current.child(c)
		if !ok {
			return nil
		}
		current = next
	}
	return current
}
