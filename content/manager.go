package content

import (
	_ "embed"
	"fmt"
	"log"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

//go:embed words.yaml
var defaultWords []byte

// Parse decodes a YAML word list and normalizes it
// Words are trimmed and upper-cased; empty words and whitespace-only entries are dropped
func Parse(data []byte) (*WordList, error) {
	var list WordList
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("content: unmarshal word list: %w", err)
	}

	for i := range list.Categories {
		c := &list.Categories[i]
		kept := c.Words[:0]
		for _, w := range c.Words {
			w = normalize(w)
			if w == "" {
				continue
			}
			kept = append(kept, w)
		}
		c.Words = kept
	}

	if list.Count() == 0 {
		return nil, fmt.Errorf("content: word list has no usable words")
	}
	return &list, nil
}

// LoadFile reads and parses a word list file
func LoadFile(path string) (*WordList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: load %s: %w", path, err)
	}
	list, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content: parse %s: %w", path, err)
	}
	log.Printf("Loaded %d words in %d categories from %s", list.Count(), len(list.Categories), path)
	return list, nil
}

// Default returns the embedded word list
func Default() *WordList {
	list, err := Parse(defaultWords)
	if err != nil {
		// Embedded asset is part of the build
		panic(err)
	}
	return list
}

// Words flattens categories in file order
func (l *WordList) Words() []string {
	out := make([]string, 0, l.Count())
	for _, c := range l.Categories {
		out = append(out, c.Words...)
	}
	return out
}

// Count returns the total number of words
func (l *WordList) Count() int {
	n := 0
	for _, c := range l.Categories {
		n += len(c.Words)
	}
	return n
}

// normalize keeps letters only, upper-cased
func normalize(w string) string {
	w = strings.ToUpper(strings.TrimSpace(w))
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}
		return -1
	}, w)
}
