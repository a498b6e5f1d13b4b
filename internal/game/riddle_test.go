package game

import (
	"errors"
	"testing"

	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-testutil"
)

func TestRiddle_Matches(t *testing.T) {
	r := &Riddle{Category: CategoryBulldog, Question: "?", Answer: "время"}

	tests := map[string]struct {
		input string
		exp   bool
	}{
		"exact":           {input: "время", exp: true},
		"padded and case": {input: " Время ", exp: true},
		"upper":           {input: "ВРЕМЯ", exp: true},
		"wrong":           {input: "деньги", exp: false},
		"empty":           {input: "", exp: false},
		"inner space":     {input: "вре мя", exp: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "matches", r.Matches(tt.input), tt.exp)
		})
	}
}

func TestRiddle_Validate(t *testing.T) {
	tests := map[string]struct {
		riddle    Riddle
		expErrMsg string
	}{
		"valid": {
			riddle: Riddle{Category: CategoryHut, Question: "q", Answer: "a"},
		},
		"unknown category": {
			riddle:    Riddle{Category: "dragon", Question: "q", Answer: "a"},
			expErrMsg: "unknown category",
		},
		"blank question": {
			riddle:    Riddle{Category: CategoryHut, Question: "  ", Answer: "a"},
			expErrMsg: "question is required",
		},
		"blank answer": {
			riddle:    Riddle{Category: CategoryHut, Question: "q", Answer: " "},
			expErrMsg: "answer is required",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.riddle.Validate()
			if tt.expErrMsg == "" {
				testutil.AssertEqual(t, "error", err, nil)
				return
			}
			testutil.AssertErrorContains(t, err, tt.expErrMsg)
		})
	}
}

func TestNewRiddleBook(t *testing.T) {
	tests := map[string]struct {
		store     mockRiddleStore
		expErrMsg string
		expErr    error
	}{
		"full set": {
			store: testRiddles(),
		},
		"duplicate category": {
			store: mockRiddleStore{
				"name":  {Category: CategoryFinal, Question: "q", Answer: "a"},
				"name2": {Category: CategoryFinal, Question: "q", Answer: "b"},
			},
			expErrMsg: "share category",
		},
		"missing final": {
			store: mockRiddleStore{
				"sleep": {Category: CategoryHut, Question: "q", Answer: "a"},
			},
			expErr: ErrRiddleNotFound,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			book, err := NewRiddleBook(tt.store)
			switch {
			case tt.expErrMsg != "":
				testutil.AssertErrorContains(t, err, tt.expErrMsg)
			case tt.expErr != nil:
				if !errors.Is(err, tt.expErr) {
					t.Errorf("expected %v, got %v", tt.expErr, err)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				testutil.AssertEqual(t, "final id", book.Get(CategoryFinal).ID, "name")
				testutil.AssertEqual(t, "bulldog answer", book.Get(CategoryBulldog).Answer, "время")
			}
		})
	}
}

func TestShippedRiddles(t *testing.T) {
	st, err := storage.NewFileStore[*Riddle]("../../assets/riddles")
	if err != nil {
		t.Fatalf("loading riddles: %v", err)
	}

	book, err := NewRiddleBook(st)
	if err != nil {
		t.Fatalf("indexing riddles: %v", err)
	}
	for _, c := range []Category{CategoryHut, CategoryBunker, CategoryBulldog, CategoryFinal} {
		if book.Get(c) == nil {
			t.Errorf("no riddle for %s", c)
		}
	}
}
