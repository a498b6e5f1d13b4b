package game

// Phase is the single active mode of a session.
type Phase string

const (
	PhaseExplore       Phase = "explore"
	PhaseHut           Phase = "hut"
	PhaseBunker        Phase = "bunker"
	PhaseShop          Phase = "shop"
	PhaseFinalRiddle   Phase = "final_riddle"
	PhaseBulldogRiddle Phase = "bulldog_riddle"
	PhaseRPS           Phase = "rps_game"
)

// Panel is the UI panel shown for a phase.
type Panel string

const (
	PanelNone        Panel = ""
	PanelRiddle      Panel = "riddle"
	PanelShop        Panel = "shop"
	PanelFinalRiddle Panel = "final_riddle"
	PanelRPS         Panel = "rps"
)

func (p Phase) Panel() Panel {
	switch p {
	case PhaseHut, PhaseBunker, PhaseBulldogRiddle:
		return PanelRiddle
	case PhaseShop:
		return PanelShop
	case PhaseFinalRiddle:
		return PanelFinalRiddle
	case PhaseRPS:
		return PanelRPS
	default:
		return PanelNone
	}
}

// Inventory is what the player is carrying.
type Inventory struct {
	Keys     int  `json:"keys"`
	Coins    int  `json:"coins"`
	FinalKey bool `json:"final_key"`
}

// Outcome names the result of a player command.
type Outcome string

const (
	OutcomeNone              Outcome = "none"
	OutcomeMissed            Outcome = "missed"
	OutcomeOpened            Outcome = "opened"
	OutcomeClosed            Outcome = "closed"
	OutcomeDoorLocked        Outcome = "door_locked"
	OutcomeDoorOpened        Outcome = "door_opened"
	OutcomeCoinFound         Outcome = "coin_found"
	OutcomeCorrect           Outcome = "correct"
	OutcomeIncorrect         Outcome = "incorrect"
	OutcomeWon               Outcome = "won"
	OutcomeBought            Outcome = "bought"
	OutcomeAlreadyOwned      Outcome = "already_owned"
	OutcomeInsufficientFunds Outcome = "insufficient_funds"
	OutcomeRPSWin            Outcome = "rps_win"
	OutcomeRPSLose           Outcome = "rps_lose"
	OutcomeRPSTie            Outcome = "rps_tie"
)
