// Package match resolves free text against a user's category taxonomy.
package match

import (
	"strings"
	"unicode/utf8"

	"github.com/fintrack-dev/fintrack/internal/model"
	"github.com/fintrack-dev/fintrack/internal/textnorm"
)

// minKeywordLen filters out one-character keywords that would match noise.
const minKeywordLen = 2

// Candidate is one category's entry in the keyword-match list.
type Candidate struct {
	ID       string
	Keywords []string
}

// Index is a prebuilt lookup over a user's effective category set.
type Index struct {
	Candidates []Candidate
	Names      map[string]string // normalized category name -> id
}

// BuildIndex builds a match index from an effective category set. The slice
// must be ordered globals-first so user-owned names override global ones.
func BuildIndex(categories []model.Category) *Index {
	idx := &Index{Names: make(map[string]string, len(categories))}
	for _, c := range categories {
		idx.Candidates = append(idx.Candidates, Candidate{ID: c.ID, Keywords: c.Keywords})
		if name := textnorm.Normalize(c.Name); name != "" {
			idx.Names[name] = c.ID
		}
	}
	return idx
}

// Match returns the id of the best-matching category for text, or "" when
// nothing matches. An exact normalized-name match wins outright; otherwise
// the longest matching keyword across all candidates wins, first seen on
// ties. A keyword matches when either normalized string contains the other.
func (idx *Index) Match(text string) string {
	norm := textnorm.Normalize(text)
	if norm == "" {
		return ""
	}
	if id, ok := idx.Names[norm]; ok {
		return id
	}

	bestID := ""
	bestLen := 0
	for _, cand := range idx.Candidates {
		for _, kw := range cand.Keywords {
			k := textnorm.Normalize(kw)
			n := utf8.RuneCountInString(k)
			if n < minKeywordLen {
				continue
			}
			if !strings.Contains(norm, k) && !strings.Contains(k, norm) {
				continue
			}
			if n > bestLen {
				bestID = cand.ID
				bestLen = n
			}
		}
	}
	return bestID
}
