package game

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestParseChoice(t *testing.T) {
	tests := map[string]struct {
		input     string
		expChoice Choice
		expErr    error
	}{
		"lower":      {input: "rock", expChoice: Rock},
		"mixed case": {input: " Paper ", expChoice: Paper},
		"upper":      {input: "SCISSORS", expChoice: Scissors},
		"unknown":    {input: "lizard", expErr: ErrInvalidChoice},
		"empty":      {input: "", expErr: ErrInvalidChoice},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c, err := ParseChoice(tt.input)
			if !errors.Is(err, tt.expErr) {
				t.Fatalf("expected error %v, got %v", tt.expErr, err)
			}
			testutil.AssertEqual(t, "choice", c, tt.expChoice)
		})
	}
}

func TestPlayRPS(t *testing.T) {
	tests := map[string]struct {
		player   Choice
		opponent Choice
		exp      RPSResult
	}{
		"rock blunts scissors": {player: Rock, opponent: Scissors, exp: RPSWin},
		"scissors cut paper":   {player: Scissors, opponent: Paper, exp: RPSWin},
		"paper covers rock":    {player: Paper, opponent: Rock, exp: RPSWin},
		"rock loses to paper":  {player: Rock, opponent: Paper, exp: RPSLose},
		"paper loses":          {player: Paper, opponent: Scissors, exp: RPSLose},
		"scissors lose":        {player: Scissors, opponent: Rock, exp: RPSLose},
		"tie":                  {player: Paper, opponent: Paper, exp: RPSTie},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "result", PlayRPS(tt.player, tt.opponent), tt.exp)
		})
	}
}

func TestRandomOpponent(t *testing.T) {
	opp := NewRandomOpponent(rand.New(rand.NewPCG(1, 2)))

	seen := map[Choice]int{}
	for range 300 {
		seen[opp.Choose()]++
	}

	for _, c := range choices {
		if seen[c] == 0 {
			t.Errorf("%s never chosen", c)
		}
	}
	testutil.AssertEqual(t, "distinct", len(seen), 3)
}
