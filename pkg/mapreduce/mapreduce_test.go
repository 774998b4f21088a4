package mapreduce

import (
	"reflect"
	"testing"
)

func TestMapReduce(t *testing.T) {
	a := Map(map[string]string{"x//1": "dell u2412m", "x//2": "dell"})
	b := Map(map[string]string{"y//1": "hp dell"})

	got := Reduce([]map[string]int{a, b})
	want := map[string]int{"dell": 3, "u2412m": 1, "hp": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reduce() = %v, want %v", got, want)
	}
}

func TestMergeLabels(t *testing.T) {
	got := MergeLabels([]map[string]string{
		{"x//1": "u2412m"},
		{"y//1": "p2414h", "y//2": ""},
	})
	want := map[string]string{"x//1": "u2412m", "y//1": "p2414h", "y//2": ""}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MergeLabels() = %v, want %v", got, want)
	}
}

func TestTopKeywords(t *testing.T) {
	counts := map[string]int{"dell": 3, "hp": 1, "acer": 1}

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{name: "top one", n: 1, want: []string{"dell:3"}},
		{name: "ties sorted by word", n: 3, want: []string{"dell:3", "acer:1", "hp:1"}},
		{name: "n larger than map", n: 10, want: []string{"dell:3", "acer:1", "hp:1"}},
		{name: "negative n", n: -1, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TopKeywords(counts, tt.n); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TopKeywords() = %v, want %v", got, tt.want)
			}
		})
	}
}
