package analytics

import (
	"math"
	"sort"
	"strings"
)

// WordCounter counts word occurrences across the labels of one source.
type WordCounter struct {
	counts map[string]int
	total  int
}

func NewWordCounter() *WordCounter {
	return &WordCounter{counts: make(map[string]int)}
}

// FromCounts builds a counter from an existing frequency map.
func FromCounts(counts map[string]int) *WordCounter {
	wc := NewWordCounter()
	for word, count := range counts {
		wc.counts[word] += count
		wc.total += count
	}
	return wc
}

// Update counts every whitespace-separated word of text.
func (wc *WordCounter) Update(text string) {
	for _, word := range strings.Fields(text) {
		wc.counts[word]++
		wc.total++
	}
}

func (wc *WordCounter) Count(word string) int {
	return wc.counts[word]
}

// Total is the number of words counted, duplicates included.
func (wc *WordCounter) Total() int {
	return wc.total
}

// Counts returns a copy of the frequency map.
func (wc *WordCounter) Counts() map[string]int {
	out := make(map[string]int, len(wc.counts))
	for word, count := range wc.counts {
		out[word] = count
	}
	return out
}

type wordCount struct {
	Word  string
	Count int
}

func (wc *WordCounter) sorted() []wordCount {
	counts := make([]wordCount, 0, len(wc.counts))
	for k, v := range wc.counts {
		counts = append(counts, wordCount{k, v})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Word < counts[j].Word
	})
	return counts
}

// MostCommon returns up to n words, most frequent first. n < 0 returns all of them.
func (wc *WordCounter) MostCommon(n int) []string {
	counts := wc.sorted()

	limit := n
	if n < 0 || len(counts) < n {
		limit = len(counts)
	}

	top := make([]string, limit)
	for i := 0; i < limit; i++ {
		top[i] = counts[i].Word
	}
	return top
}

// CommonWords returns the words occurring at least
// max(itemCount*minPercentage, minCount) times, most frequent first.
func (wc *WordCounter) CommonWords(itemCount int, minPercentage float64, minCount int) []string {
	threshold := math.Max(float64(itemCount)*minPercentage, float64(minCount))

	var common []string
	for _, c := range wc.sorted() {
		if float64(c.Count) < threshold {
			break
		}
		common = append(common, c.Word)
	}
	return common
}

// RemoveCommonWords drops every common word from the labels, matching whole words only.
func RemoveCommonWords(labels map[string]string, common []string) {
	if len(common) == 0 {
		return
	}

	drop := make(map[string]struct{}, len(common))
	for _, word := range common {
		drop[word] = struct{}{}
	}

	for key, label := range labels {
		words := strings.Fields(label)
		kept := words[:0]
		for _, word := range words {
			if _, exists := drop[word]; !exists {
				kept = append(kept, word)
			}
		}
		labels[key] = strings.Join(kept, " ")
	}
}
