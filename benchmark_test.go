package trie

import (
	"fmt"
	"runtime"
	"strings"
	"testing"
)

func generateWords(count int, prefix string) []string {
	words := make([]string, count)
	for i := 0; i < count; i++ {
		words[i] = fmt.Sprintf("%s%06d", prefix, i)
	}
	return words
}

func generateRealisticWords(count int) []string {
	prefixes := []string{"app", "test", "user", "data", "file", "sys", "web", "api", "db", "cache"}
	suffixes := []string{"_config", "_manager", "_service", "_handler", "_controller", "_model", "_view", "_util", "_helper", "_factory"}

	words := make([]string, count)
	for i := 0; i < count; i++ {
		words[i] = fmt.Sprintf("%s%d%s", prefixes[i%len(prefixes)], i%1000, suffixes[i%len(suffixes)])
	}
	return words
}

func generateEnglishLikeWords(count int) []string {
	consonants := "bcdfghjklmnpqrstvwxyz"
	vowels := "aeiou"
	words := make([]string, count)

	for i := 0; i < count; i++ {
		var word strings.Builder
		length := 3 + (i % 8)
		for j := 0; j < length; j++ {
			if j%2 == 0 {
				word.WriteByte(consonants[i%len(consonants)])
			} else {
				word.WriteByte(vowels[i%len(vowels)])
			}
		}
		words[i] = word.String()
	}
	return words
}

func BenchmarkInsert(b *testing.B) {
	for _, size := range []int{100, 1000, 10000} {
		words := generateWords(size, "word")
		b.Run(fmt.Sprintf("sequential-%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				tr := New[int]()
				for _, word := range words {
					tr.Insert(word, i)
				}
				runtime.KeepAlive(tr)
			}
		})
	}
}

func BenchmarkAddWordList(b *testing.B) {
	for _, size := range []int{100, 1000, 10000} {
		words := generateWords(size, "batch")
		b.Run(fmt.Sprintf("batch-%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				tr := New[int]()
				tr.AddWordList(words, func(word string) int { return len(word) })
				runtime.KeepAlive(tr)
			}
		})
	}
}

func BenchmarkGet(b *testing.B) {
	for _, size := range []int{100, 1000, 10000} {
		words := generateWords(size, "lookup")
		tr := New[int]()
		for _, word := range words {
			tr.Insert(word, 1)
		}

		b.Run(fmt.Sprintf("hit-%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				for _, word := range words {
					v, _ := tr.Get(word)
					runtime.KeepAlive(v)
				}
			}
		})

		missing := generateWords(size, "missing")
		b.Run(fmt.Sprintf("miss-%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				for _, word := range missing {
					v, _ := tr.Get(word)
					runtime.KeepAlive(v)
				}
			}
		})
	}
}

func BenchmarkPrefixSearch(b *testing.B) {
	for _, size := range []int{1000, 10000} {
		words := generateRealisticWords(size)
		tr := New[int]()
		for _, word := range words {
			tr.Insert(word, 1)
		}

		prefixes := []string{"app", "test", "user", "web", "nonexistent"}
		b.Run(fmt.Sprintf("realistic-%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				for _, prefix := range prefixes {
					runtime.KeepAlive(tr.PrefixSearch(prefix))
				}
			}
		})
	}
}

func BenchmarkAutoComplete(b *testing.B) {
	words := generateRealisticWords(10000)
	tr := New[int]()
	for _, word := range words {
		tr.Insert(word, 1)
	}

	prefixes := []string{"app", "test", "user", "data", "nonexistent"}
	for _, maxResults := range []int{5, 10, 50, 100} {
		b.Run(fmt.Sprintf("realistic-%d", maxResults), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				for _, prefix := range prefixes {
					runtime.KeepAlive(tr.AutoComplete(prefix, maxResults))
				}
			}
		})
	}
}

func BenchmarkAutoCompleteScaling(b *testing.B) {
	for _, size := range []int{1000, 5000, 10000, 20000} {
		words := generateEnglishLikeWords(size)
		tr := New[int]()
		for _, word := range words {
			tr.Insert(word, 1)
		}

		b.Run(fmt.Sprintf("english_like-%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				for prefixLen := 1; prefixLen <= 3; prefixLen++ {
					runtime.KeepAlive(tr.AutoComplete("test"[:prefixLen], 10))
				}
			}
		})
	}
}

func BenchmarkDelete(b *testing.B) {
	for _, size := range []int{100, 1000, 5000} {
		words := generateWords(size, "delete")
		b.Run(fmt.Sprintf("sequential-%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				tr := New[int]()
				for _, word := range words {
					tr.Insert(word, 1)
				}
				b.StartTimer()

				for _, word := range words {
					runtime.KeepAlive(tr.Delete(word))
				}
			}
		})
	}
}

func BenchmarkUnicode(b *testing.B) {
	seeds := []string{"café", "naïve", "résumé", "你好", "مرحبا", "здравствуй", "こんにちは", "שלום"}
	words := make([]string, 1000)
	for i := range words {
		words[i] = fmt.Sprintf("%s%d", seeds[i%len(seeds)], i)
	}

	b.Run("insert", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			tr := New[int]()
			for _, word := range words {
				tr.Insert(word, 1)
			}
			runtime.KeepAlive(tr)
		}
	})

	tr := New[int]()
	for _, word := range words {
		tr.Insert(word, 1)
	}
	b.Run("autocomplete", func(b *testing.B) {
		prefixes := []string{"caf", "你", "مرح"}
		for i := 0; i < b.N; i++ {
			for _, prefix := range prefixes {
				runtime.KeepAlive(tr.AutoComplete(prefix, 10))
			}
		}
	})
}
