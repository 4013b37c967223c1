// Package wordlist loads dictionaries for bulk insertion into a trie.
//
// Two formats are supported: plain text with one word per line, and a YAML
// document carrying a list of rank-weighted words.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	trie "github.com/sarthakjha889/go-prefix-trie"
)

// Entry is one weighted dictionary word.
type Entry struct {
	Word string `yaml:"word"`
	Rank int    `yaml:"rank"`
}

type document struct {
	Words []Entry `yaml:"words"`
}

// Read parses a plain-text word list: one word per line, surrounding
// whitespace trimmed, blank lines and lines starting with '#' skipped.
func Read(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return words, nil
}

// ReadFile reads a plain-text word list from path.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// ReadYAML parses a weighted dictionary: a YAML document with a top-level
// "words" list of {word, rank} pairs.
func ReadYAML(r io.Reader) ([]Entry, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode word list: %w", err)
	}
	return doc.Words, nil
}

// ReadYAMLFile reads a weighted dictionary from path.
func ReadYAMLFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	return ReadYAML(f)
}

// Populate inserts every entry into the trie with its rank as the payload.
func Populate(t *trie.Trie[int], entries []Entry) {
	for _, e := range entries {
		t.Insert(e.Word, e.Rank)
	}
}
