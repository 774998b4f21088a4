package textclean

import (
	"testing"

	"github.com/dtnitsch/item-labeler/models"
)

func newTestCleaner(t *testing.T) *Cleaner {
	t.Helper()
	c, err := New(models.DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

func TestClean(t *testing.T) {
	c := newTestCleaner(t)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercase and punctuation",
			input: "Acer G226HQL-Bbd",
			want:  "acer g226hql bbd",
		},
		{
			name:  "resolution and noise words",
			input: "Samsung 24\" LED Monitor 1920x1080 S24F350",
			want:  "samsung 24 s24f350",
		},
		{
			name:  "website removed",
			input: "Dell 27\" Monitor - www.dell.com",
			want:  "dell 27",
		},
		{
			name:  "url removed",
			input: "Visit https://shop.example.com/p?id=1 for U2412M",
			want:  "visit for u2412m",
		},
		{
			name:  "number with unit",
			input: "Philips 60Hz 5ms 27inch 273V",
			want:  "philips 273v",
		},
		{
			name:  "split decimal joined",
			input: "HP EliteDisplay E243 23.8\" Full HD",
			want:  "hp elitedisplay e243238 full hd",
		},
		{
			name:  "windows version",
			input: "Touchscreen PC Windows 10 Pro",
			want:  "pc pro",
		},
		{
			name:  "noise terms are word bounded",
			input: "Newton portable display",
			want:  "newton portable",
		},
		{
			name:  "plural noise term",
			input: "2 HDMI ports cables",
			want:  "2",
		},
		{
			name:  "non-ascii letters bound words",
			input: "Écran éled 24 LED",
			want:  "écran éled 24",
		},
		{
			name:  "adjacent noise words",
			input: "LED LCD Monitor",
			want:  "",
		},
		{
			name:  "fullwidth normalized",
			input: "ＡＢＣ１２３",
			want:  "abc123",
		},
		{
			name:  "empty",
			input: "   ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Clean(tt.input); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTryFindModelName(t *testing.T) {
	c := newTestCleaner(t)

	tests := []struct {
		input string
		want  string
	}{
		{input: "samsung 24 s24f350", want: "s24f350"},
		{input: "asus vs228h p", want: "vs228h"},
		{input: "lg 22mp 22mp58vq", want: "22mp 22mp58vq"},
		{input: "dell ultrasharp", want: ""},
		{input: "a1b hp", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := c.TryFindModelName(tt.input); got != tt.want {
				t.Errorf("TryFindModelName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	c := newTestCleaner(t)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "model narrowed", input: "Samsung 24\" LED Monitor S24F350", want: "s24f350"},
		{name: "single word kept", input: "U2412M", want: "u2412m"},
		{name: "no model keeps cleaned text", input: "Dell UltraSharp Monitor", want: "dell ultrasharp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Label(tt.input); got != tt.want {
				t.Errorf("Label(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestJoinSplitNumbers(t *testing.T) {
	if got := JoinSplitNumbers("1 2 3 a 4  5"); got != "123 a 45" {
		t.Errorf("JoinSplitNumbers() = %q", got)
	}
}

func TestNew_InvalidPattern(t *testing.T) {
	config := models.DefaultConfig()
	config.NoiseTerms = []string{"(unclosed"}
	if _, err := New(config); err == nil {
		t.Error("New() error = nil, want error for invalid pattern")
	}
}
