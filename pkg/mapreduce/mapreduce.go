package mapreduce

import "github.com/dtnitsch/item-labeler/pkg/analytics"

// Map generates a word frequency map for a set of labels.
func Map(labels map[string]string) map[string]int {
	wc := analytics.NewWordCounter()
	for _, label := range labels {
		wc.Update(label)
	}
	return wc.Counts()
}

// Reduce aggregates a slice of word frequency maps into a single map.
func Reduce(intermediate []map[string]int) map[string]int {
	finalResults := make(map[string]int)

	for _, counts := range intermediate {
		for word, count := range counts {
			finalResults[word] += count
		}
	}

	return finalResults
}

// MergeLabels merges per-source label maps into one map.
// Item names are prefixed with their source, so keys never collide across sources.
func MergeLabels(intermediate []map[string]string) map[string]string {
	size := 0
	for _, labels := range intermediate {
		size += len(labels)
	}

	merged := make(map[string]string, size)
	for _, labels := range intermediate {
		for item, label := range labels {
			merged[item] = label
		}
	}
	return merged
}
