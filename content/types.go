package content

// Category is a themed group of words
type Category struct {
	Name  string   `yaml:"name"`
	Words []string `yaml:"words"`
}

// WordList is the on-disk word list format
type WordList struct {
	Categories []Category `yaml:"categories"`
}

// Source yields target words in play order
type Source interface {
	// Next returns the next word; ok is false when the source is exhausted
	Next() (word string, ok bool)
	// Played returns how many words have been handed out
	Played() int
	// Len returns the total number of words in the current list
	Len() int
}
