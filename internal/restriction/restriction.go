// Package restriction accumulates and renders the human-readable restriction
// summary appended to property descriptions.
package restriction

import (
	"fmt"
	"strings"
)

const (
	newLine      = "\n"
	listItemMark = "* "
	indent       = "  "
	colonMark    = ": "
)

// Entry is one top-level bullet with optional nested bullets.
type Entry struct {
	Label string
	Value string
	Items []string
}

// Buffer is an ordered list of restriction entries.
type Buffer struct {
	entries []Entry
}

// Add appends a "label: value" bullet.
func (b *Buffer) Add(label string, value interface{}) {
	b.entries = append(b.entries, Entry{Label: label, Value: fmt.Sprint(value)})
}

// AddList appends a category bullet followed by one nested bullet per item.
func (b *Buffer) AddList(label string, items []string) {
	b.entries = append(b.entries, Entry{Label: label, Items: append([]string(nil), items...)})
}

// Append copies the entries of other to the end of b.
func (b *Buffer) Append(other Buffer) {
	b.entries = append(b.entries, other.entries...)
}

// Len returns the number of top-level entries.
func (b Buffer) Len() int {
	return len(b.entries)
}

// Render formats the buffer as Markdown bullets. Every entry starts on a new line.
func (b Buffer) Render() string {
	var sb strings.Builder
	for _, e := range b.entries {
		sb.WriteString(newLine)
		sb.WriteString(listItemMark)
		sb.WriteString(e.Label)
		sb.WriteString(colonMark)
		sb.WriteString(e.Value)
		for _, item := range e.Items {
			sb.WriteString(newLine)
			sb.WriteString(indent)
			sb.WriteString(listItemMark)
			sb.WriteString(item)
		}
	}
	return sb.String()
}
