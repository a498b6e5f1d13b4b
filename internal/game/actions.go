package game

import (
	"fmt"

	"github.com/pixil98/go-adventure/internal/camera"
	"github.com/pixil98/go-adventure/internal/scene"
)

// KeyDown records a key press. Unbound codes are ignored and return false.
func (s *Session) KeyDown(code string) bool {
	return s.keyEdge(code, true)
}

// KeyUp records a key release. Unbound codes are ignored and return false.
func (s *Session) KeyUp(code string) bool {
	return s.keyEdge(code, false)
}

func (s *Session) keyEdge(code string, down bool) bool {
	var ok bool
	if down {
		ok = s.sampler.KeyDown(code)
	} else {
		ok = s.sampler.KeyUp(code)
	}
	if ok {
		s.status = render(statusKey, map[string]any{"Code": code, "Down": down})
	}
	return ok
}

// ReleaseAll drops every held key, e.g. when the client loses focus.
func (s *Session) ReleaseAll() {
	s.sampler.Reset()
}

// SetViewport updates the client's drawing surface used for picking.
func (s *Session) SetViewport(vp camera.Viewport) error {
	if vp.Width <= 0 || vp.Height <= 0 {
		return fmt.Errorf("%vx%v: %w", vp.Width, vp.Height, ErrInvalidViewport)
	}
	s.viewport = vp
	return nil
}

// Click resolves a pointer click at client pixel coordinates and dispatches it.
func (s *Session) Click(x, y float64) (Outcome, error) {
	if !s.loading.IsReady() {
		s.status = render(statusNotReady, nil)
		return OutcomeNone, ErrNotReady
	}

	ev, ok := s.resolver.ResolveClick(s.follow.View(s.cfg.Lens, s.viewport), x, y)
	if !ok {
		s.status = render(statusClick, map[string]any{"Kind": ""})
		s.rpsVisible = false
		return OutcomeMissed, nil
	}
	return s.Interact(ev)
}

// InteractKind dispatches an interaction with the first registered object of kind.
func (s *Session) InteractKind(kind scene.Kind) (Outcome, error) {
	it := s.registry.FirstOfKind(kind)
	if it == nil {
		return OutcomeNone, fmt.Errorf("%s: %w", kind, ErrUnknownInteractable)
	}
	return s.Interact(scene.Event{ID: it.ID, Kind: it.Kind})
}

// Interact applies an interaction event to the session.
func (s *Session) Interact(ev scene.Event) (Outcome, error) {
	if !s.loading.IsReady() {
		return OutcomeNone, ErrNotReady
	}
	it := s.registry.Get(ev.ID)
	if it == nil {
		return OutcomeNone, fmt.Errorf("%s %q: %w", ev.Kind, ev.ID, ErrUnknownInteractable)
	}

	s.status = render(statusClick, map[string]any{"Kind": string(it.Kind)})

	switch it.Kind {
	case scene.KindWizard:
		s.open(PhaseShop)
		s.say(render(msgWizardGreeting, map[string]any{"Price": s.cfg.Economy.KeyPrice}))
		return OutcomeOpened, nil

	case scene.KindBulldog:
		s.open(PhaseRPS)
		s.rpsVisible = true
		s.say(render(msgBulldogGreeting, nil))
		return OutcomeOpened, nil

	case scene.KindHutDoor:
		s.rpsVisible = false
		if !s.inventory.FinalKey {
			s.say(render(msgDoorLocked, nil))
			return OutcomeDoorLocked, nil
		}
		s.say(render(msgDoorOpen, nil))
		if s.door != nil {
			s.door.tween = NewTween(s.door.node.RotationY, s.cfg.DoorOpenAngle, s.cfg.DoorOpenDuration)
		}
		return OutcomeDoorOpened, nil

	case scene.KindStone:
		s.rpsVisible = false
		s.registry.Remove(it.ID)
		it.Root.Detach()
		s.inventory.Coins += s.cfg.Economy.StoneCoins
		s.say(render(msgCoinFound, map[string]any{"Coins": s.cfg.Economy.StoneCoins}))
		return OutcomeCoinFound, nil

	default:
		s.rpsVisible = false
		return OutcomeNone, nil
	}
}

// open switches to a panel phase, replacing whatever panel was showing.
func (s *Session) open(p Phase) {
	s.phase = p
	s.riddle = nil
	s.rpsVisible = false
}

// OpenRiddle shows the riddle of a non-final category.
func (s *Session) OpenRiddle(c Category) (Outcome, error) {
	if !c.Valid() || c == CategoryFinal {
		return OutcomeNone, fmt.Errorf("%q: %w", c, ErrUnknownCategory)
	}
	r := s.riddles.Get(c)
	if r == nil {
		return OutcomeNone, fmt.Errorf("%s: %w", c, ErrRiddleNotFound)
	}

	s.open(c.phase())
	s.riddle = r
	s.say(r.Question)
	return OutcomeOpened, nil
}

// SubmitAnswer checks an answer against the active riddle.
func (s *Session) SubmitAnswer(text string) (Outcome, error) {
	r := s.riddle
	if r == nil {
		return OutcomeNone, ErrNoRiddle
	}

	if r.Category == CategoryFinal {
		if !r.Matches(text) {
			s.say(render(msgFinalIncorrect, nil))
			return OutcomeIncorrect, nil
		}
		s.won = true
		s.open(PhaseExplore)
		s.say(render(msgFinalWon, nil))
		return OutcomeWon, nil
	}

	if !r.Matches(text) {
		s.say(render(msgRiddleIncorrect, nil))
		return OutcomeIncorrect, nil
	}

	reward := map[string]any{"Keys": 0, "Coins": 0}
	switch r.Category {
	case CategoryHut, CategoryBunker:
		s.inventory.Keys += s.cfg.Economy.RiddleKeys
		reward["Keys"] = s.cfg.Economy.RiddleKeys
	case CategoryBulldog:
		s.inventory.Coins += s.cfg.Economy.BulldogReward
		reward["Coins"] = s.cfg.Economy.BulldogReward
	}
	s.open(PhaseExplore)
	s.say(render(msgRiddleCorrect, reward))
	return OutcomeCorrect, nil
}

// BuyKey buys the final key from the wizard.
func (s *Session) BuyKey() (Outcome, error) {
	if s.inventory.FinalKey {
		s.say(render(msgKeyOwned, nil))
		return OutcomeAlreadyOwned, nil
	}

	price := s.cfg.Economy.KeyPrice
	if s.inventory.Coins < price {
		s.say(render(msgInsufficientFunds, map[string]any{"Price": price, "Coins": s.inventory.Coins}))
		return OutcomeInsufficientFunds, nil
	}

	s.inventory.Coins -= price
	s.inventory.FinalKey = true
	s.collide.Unlock()
	s.open(PhaseExplore)
	s.say(render(msgKeyBought, nil))
	return OutcomeBought, nil
}

// ChooseRPS plays one round of rock-paper-scissors against the bulldog.
func (s *Session) ChooseRPS(c Choice) (Outcome, error) {
	if s.phase != PhaseRPS || !s.rpsVisible {
		return OutcomeNone, ErrRPSUnavailable
	}
	c, err := ParseChoice(string(c))
	if err != nil {
		return OutcomeNone, err
	}

	opp := s.opponent.Choose()
	result := PlayRPS(c, opp)

	outcome := OutcomeRPSLose
	switch result {
	case RPSWin:
		s.inventory.Coins += s.cfg.Economy.RPSReward
		outcome = OutcomeRPSWin
	case RPSTie:
		outcome = OutcomeRPSTie
	}

	s.say(render(msgRPSResult, map[string]any{
		"Player":   string(c),
		"Opponent": string(opp),
		"Result":   string(result),
		"Reward":   s.cfg.Economy.RPSReward,
	}))
	s.rpsVisible = false
	return outcome, nil
}

// ClosePanel returns to exploring and clears the message and riddle.
func (s *Session) ClosePanel() Outcome {
	s.open(PhaseExplore)
	s.message = ""
	return OutcomeClosed
}
