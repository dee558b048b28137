package content

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/1pavlov/vibecoded-kids-games/vmath"
)

func TestDefaultWordList(t *testing.T) {
	list := Default()
	if got := list.Count(); got != 92 {
		t.Errorf("Expected 92 default words, got %d", got)
	}
	if len(list.Categories) != 10 {
		t.Errorf("Expected 10 categories, got %d", len(list.Categories))
	}
	if !slices.Contains(list.Words(), "КОТ") {
		t.Error("Expected default list to contain КОТ")
	}
}

func TestParseNormalizes(t *testing.T) {
	data := []byte(`
categories:
  - name: test
    words: [" кот ", "", "ёж!", "   "]
`)
	list, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := []string{"КОТ", "ЁЖ"}
	if got := list.Words(); !slices.Equal(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestParseRejectsEmptyList(t *testing.T) {
	if _, err := Parse([]byte("categories: []")); err == nil {
		t.Error("Expected error for empty word list")
	}
	if _, err := Parse([]byte("categories: [")); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.yaml")
	if err := os.WriteFile(path, []byte("categories:\n  - name: a\n    words: [ДОМ, САД]\n"), 0644); err != nil {
		t.Fatalf("Failed to write word list: %v", err)
	}

	list, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if list.Count() != 2 {
		t.Errorf("Expected 2 words, got %d", list.Count())
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestDeckIsPermutationAndExhausts(t *testing.T) {
	words := []string{"КОТ", "ДОМ", "САД", "ЛЕС", "МИР"}
	d := NewDeck(words, vmath.NewFastRand(11))

	var got []string
	for {
		w, ok := d.Next()
		if !ok {
			break
		}
		got = append(got, w)
	}

	if len(got) != len(words) {
		t.Fatalf("Expected %d words, got %d", len(words), len(got))
	}
	slices.Sort(got)
	sorted := slices.Clone(words)
	slices.Sort(sorted)
	if !slices.Equal(got, sorted) {
		t.Errorf("Expected permutation of %v, got %v", sorted, got)
	}
	if d.Played() != 5 || d.Remaining() != 0 {
		t.Errorf("Expected 5 played 0 remaining, got %d %d", d.Played(), d.Remaining())
	}
	if words[0] != "КОТ" {
		t.Error("NewDeck must not shuffle the caller's slice")
	}
}

func TestDeckReplaceKeepsPlayedCount(t *testing.T) {
	d := NewDeck([]string{"КОТ", "ДОМ"}, vmath.NewFastRand(1))
	d.Next()
	d.Replace([]string{"ЛЕС", "САД", "МИР"})

	if d.Remaining() != 3 {
		t.Errorf("Expected 3 remaining after replace, got %d", d.Remaining())
	}
	d.Next()
	if d.Played() != 2 {
		t.Errorf("Expected played count to carry over, got %d", d.Played())
	}
}

func TestDistractorPoolExcludesWordLetters(t *testing.T) {
	word := []rune("КОТ")
	pool := DistractorPool(word)
	for _, r := range word {
		if slices.Contains(pool, r) {
			t.Errorf("Pool should not contain %q", r)
		}
	}
	if len(pool) != len(DistractorAlphabet)-3 {
		t.Errorf("Expected %d runes, got %d", len(DistractorAlphabet)-3, len(pool))
	}
}

func TestIsVowel(t *testing.T) {
	if !IsVowel('А') || !IsVowel('Ё') {
		t.Error("Expected А and Ё to be vowels")
	}
	if IsVowel('К') {
		t.Error("К is not a vowel")
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.yaml")
	if err := os.WriteFile(path, []byte("categories: []\n"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("categories:\n  - name: a\n    words: [КОТ]\n"), 0644); err != nil {
		t.Fatalf("Failed to rewrite file: %v", err)
	}

	select {
	case got := <-w.Events:
		if filepath.Base(got) != "words.yaml" {
			t.Errorf("Expected event for words.yaml, got %s", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for change event")
	}
}
