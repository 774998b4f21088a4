// Package textclean normalizes scraped product text into short matching labels.
package textclean

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/dtnitsch/item-labeler/models"
)

var (
	reWebsite      = regexp.MustCompile(`(?:https?://|www\.)\S+|\b[a-z0-9][a-z0-9-]*(?:\.[a-z0-9-]+)*\.(?:com|net|org|info|biz|co\.uk|de|fr|it|es|nl|ca|au|us|eu)\b`)
	reSpecialChars = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)
	reResolution   = regexp.MustCompile(wordBounded(`\d+\s*x\s*\d+`))
	reSplitNumber  = regexp.MustCompile(`(\d)\s+(\d)`)
	reSpaces       = regexp.MustCompile(`\s+`)
)

// Cleaner applies the rule-based cleaning pipeline.
// It is safe for concurrent use.
type Cleaner struct {
	units            *regexp.Regexp
	noise            *regexp.Regexp
	minModelTokenLen int
}

// New compiles a Cleaner from the unit and noise-term patterns in config.
func New(config *models.Config) (*Cleaner, error) {
	c := &Cleaner{minModelTokenLen: config.MinModelTokenLen}

	if len(config.Units) > 0 {
		pattern := `\d+\s*(?:\.\d+)?(?:` + strings.Join(config.Units, "|") + `)\s*`
		re, err := regexp.Compile(wordBounded(pattern))
		if err != nil {
			return nil, fmt.Errorf("invalid unit pattern: %w", err)
		}
		c.units = re
	}

	if len(config.NoiseTerms) > 0 {
		pattern := `(?:` + strings.Join(config.NoiseTerms, "|") + `)s?`
		re, err := regexp.Compile(wordBounded(pattern))
		if err != nil {
			return nil, fmt.Errorf("invalid noise term pattern: %w", err)
		}
		c.noise = re
	}

	return c, nil
}

// Clean lowercases text and strips websites, punctuation and non-relevant words.
func (c *Cleaner) Clean(text string) string {
	s := strings.ToLower(norm.NFKC.String(text))
	s = RemoveWebsites(s)
	s = ReplaceSpecialChars(s)
	s = c.RemoveNonRelevantWords(s)
	s = JoinSplitNumbers(s)
	return CollapseSpaces(s)
}

// RemoveNonRelevantWords drops number+unit tokens, resolutions and noise terms.
func (c *Cleaner) RemoveNonRelevantWords(s string) string {
	if c.units != nil {
		s = removeWords(c.units, s)
	}
	s = removeWords(reResolution, s)
	if c.noise != nil {
		s = removeWords(c.noise, s)
	}
	return s
}

// wordBounded wraps pattern so it only matches between non-alphanumeric
// characters. Unlike \b, letters outside ASCII count as word characters.
func wordBounded(pattern string) string {
	return `(?P<pre>^|[^\p{L}\p{N}])(?:` + pattern + `)(?P<post>$|[^\p{L}\p{N}])`
}

// removeWords deletes every match of a wordBounded pattern, keeping the
// surrounding separators. Adjacent words share a separator, so it repeats
// until nothing matches.
func removeWords(re *regexp.Regexp, s string) string {
	for {
		next := re.ReplaceAllString(s, "${pre}${post}")
		if next == s {
			return s
		}
		s = next
	}
}

// TryFindModelName keeps only the mixed letter/digit tokens long enough to
// look like a model number. It returns "" when there are none.
func (c *Cleaner) TryFindModelName(s string) string {
	var kept []string
	for _, word := range strings.Fields(s) {
		if len([]rune(word)) <= c.minModelTokenLen {
			continue
		}
		if LooksLikeModel(word) {
			kept = append(kept, word)
		}
	}
	return strings.Join(kept, " ")
}

// Label cleans text and narrows multi-word results down to a model name when one is found.
func (c *Cleaner) Label(text string) string {
	cleaned := c.Clean(text)
	if len(strings.Fields(cleaned)) > 1 {
		if model := c.TryFindModelName(cleaned); model != "" {
			return model
		}
	}
	return cleaned
}

// LooksLikeModel reports whether word mixes letters and digits.
func LooksLikeModel(word string) bool {
	hasLetter := false
	hasDigit := false
	for _, r := range word {
		if unicode.IsLetter(r) {
			hasLetter = true
		}
		if unicode.IsDigit(r) {
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

// RemoveWebsites replaces URLs and bare domain names with a space.
func RemoveWebsites(s string) string {
	return reWebsite.ReplaceAllString(s, " ")
}

// ReplaceSpecialChars replaces every run of characters that are not letters,
// digits or whitespace with a space.
func ReplaceSpecialChars(s string) string {
	return reSpecialChars.ReplaceAllString(s, " ")
}

// JoinSplitNumbers removes whitespace between digits ("1 920" -> "1920").
func JoinSplitNumbers(s string) string {
	for {
		next := reSplitNumber.ReplaceAllString(s, "$1$2")
		if next == s {
			return s
		}
		s = next
	}
}

// CollapseSpaces turns whitespace runs into single spaces and trims the ends.
func CollapseSpaces(s string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}
