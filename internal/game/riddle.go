package game

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Category selects which riddle a panel shows.
type Category string

const (
	CategoryHut     Category = "hut"
	CategoryBunker  Category = "bunker"
	CategoryBulldog Category = "bulldog"
	CategoryFinal   Category = "final_riddle"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryHut, CategoryBunker, CategoryBulldog, CategoryFinal:
		return true
	default:
		return false
	}
}

// phase returns the phase that presents riddles of this category.
func (c Category) phase() Phase {
	switch c {
	case CategoryHut:
		return PhaseHut
	case CategoryBunker:
		return PhaseBunker
	case CategoryBulldog:
		return PhaseBulldogRiddle
	default:
		return PhaseFinalRiddle
	}
}

type Riddle struct {
	ID       string   `json:"-"`
	Category Category `json:"category"`
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
}

func (r *Riddle) Validate() error {
	el := errors.NewErrorList()

	if !r.Category.Valid() {
		el.Add(fmt.Errorf("unknown category %q", r.Category))
	}
	if strings.TrimSpace(r.Question) == "" {
		el.Add(fmt.Errorf("question is required"))
	}
	if normalizeAnswer(r.Answer) == "" {
		el.Add(fmt.Errorf("answer is required"))
	}

	return el.Err()
}

// Matches reports whether input is the riddle's answer, ignoring case and surrounding space.
func (r *Riddle) Matches(input string) bool {
	return normalizeAnswer(input) == normalizeAnswer(r.Answer)
}

func normalizeAnswer(s string) string {
	return norm.NFC.String(cases.Fold().String(strings.TrimSpace(s)))
}

// RiddleBook holds one riddle per category.
type RiddleBook struct {
	byCategory map[Category]*Riddle
}

// NewRiddleBook indexes the stored riddles by category. A final riddle is required.
func NewRiddleBook(st storage.Storer[*Riddle]) (*RiddleBook, error) {
	b := &RiddleBook{byCategory: map[Category]*Riddle{}}

	for _, id := range st.Keys() {
		r := *st.Get(id)
		r.ID = id

		if other, ok := b.byCategory[r.Category]; ok {
			return nil, fmt.Errorf("riddles %q and %q share category %q", other.ID, id, r.Category)
		}
		b.byCategory[r.Category] = &r
	}

	if b.byCategory[CategoryFinal] == nil {
		return nil, fmt.Errorf("%s: %w", CategoryFinal, ErrRiddleNotFound)
	}

	return b, nil
}

// Get returns the riddle for category, or nil.
func (b *RiddleBook) Get(c Category) *Riddle {
	return b.byCategory[c]
}
