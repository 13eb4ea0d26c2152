package domain

// Entry is one selectable line of the picker
type Entry struct {
	Text   string
	Source string // file or directory the entry came from
}

// ValueKey selects how an entry's value is derived
type ValueKey string

const (
	ValueKeyIndex ValueKey = "index" // position in the list
	ValueKeyText  ValueKey = "text"  // the entry text
)

// Valid reports whether k is a known value key
func (k ValueKey) Valid() bool {
	return k == ValueKeyIndex || k == ValueKeyText
}
