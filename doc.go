/*
Package trie provides a generic prefix tree mapping strings to values.
It supports insertion, exact lookup, deletion with branch pruning, prefix
existence tests and bounded autocomplete, with optional normalisation and
case folding of keys.
*/
package trie
