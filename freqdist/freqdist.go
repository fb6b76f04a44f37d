// Package freqdist counts words over normalized plots and charts the most or least
// frequent ones. It is used while exploring a corpus, not during inference.
package freqdist

import (
	"sort"
	"strings"
)

// Entry is one word and its count.
type Entry struct {
	Word  string
	Count int
}

// FreqDist is a word count table that remembers first-seen order.
type FreqDist struct {
	order  []string
	counts map[string]int
}

func New() *FreqDist {
	return &FreqDist{counts: make(map[string]int)}
}

// FromTexts counts the words of every text in the collection.
func FromTexts(texts []string) *FreqDist {
	fd := New()
	for _, text := range texts {
		fd.AddText(text)
	}
	return fd
}

// FromText counts the words of a single text.
func FromText(text string) *FreqDist {
	fd := New()
	fd.AddText(text)
	return fd
}

func (fd *FreqDist) Add(word string) {
	fd.AddN(word, 1)
}

func (fd *FreqDist) AddN(word string, n int) {
	if _, ok := fd.counts[word]; !ok {
		fd.order = append(fd.order, word)
	}
	fd.counts[word] += n
}

// AddText adds every whitespace separated word of text.
func (fd *FreqDist) AddText(text string) {
	for _, w := range strings.Fields(text) {
		fd.Add(w)
	}
}

func (fd *FreqDist) Count(word string) int {
	return fd.counts[word]
}

// Len is the number of distinct words.
func (fd *FreqDist) Len() int {
	return len(fd.order)
}

// Total is the number of words counted.
func (fd *FreqDist) Total() int {
	total := 0
	for _, c := range fd.counts {
		total += c
	}
	return total
}

// Entries returns every word in first-seen order.
func (fd *FreqDist) Entries() []Entry {
	entries := make([]Entry, len(fd.order))
	for i, w := range fd.order {
		entries[i] = Entry{Word: w, Count: fd.counts[w]}
	}
	return entries
}

// Select returns the n most frequent words when largest is set, the n least frequent
// otherwise. Ties keep first-seen order.
func (fd *FreqDist) Select(n int, largest bool) []Entry {
	entries := fd.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		if largest {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Count < entries[j].Count
	})
	if n >= 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries
}
