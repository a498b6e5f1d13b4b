package game

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Choice is a rock-paper-scissors hand.
type Choice string

const (
	Rock     Choice = "rock"
	Paper    Choice = "paper"
	Scissors Choice = "scissors"
)

var choices = []Choice{Rock, Paper, Scissors}

func ParseChoice(s string) (Choice, error) {
	c := Choice(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case Rock, Paper, Scissors:
		return c, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrInvalidChoice)
	}
}

// Beats reports whether c defeats o.
func (c Choice) Beats(o Choice) bool {
	switch c {
	case Rock:
		return o == Scissors
	case Scissors:
		return o == Paper
	case Paper:
		return o == Rock
	default:
		return false
	}
}

type RPSResult string

const (
	RPSWin  RPSResult = "win"
	RPSLose RPSResult = "lose"
	RPSTie  RPSResult = "tie"
)

// PlayRPS scores a round from the player's point of view.
func PlayRPS(player, opponent Choice) RPSResult {
	switch {
	case player == opponent:
		return RPSTie
	case player.Beats(opponent):
		return RPSWin
	default:
		return RPSLose
	}
}

// Opponent picks the bulldog's hand.
type Opponent interface {
	Choose() Choice
}

// RandomOpponent picks uniformly at random.
type RandomOpponent struct {
	rng *rand.Rand
}

func NewRandomOpponent(rng *rand.Rand) *RandomOpponent {
	return &RandomOpponent{rng: rng}
}

func (o *RandomOpponent) Choose() Choice {
	return choices[o.rng.IntN(len(choices))]
}
