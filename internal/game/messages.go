package game

import (
	"bytes"
	"log/slog"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

var templateFuncs = sprig.TxtFuncMap()

func mustTemplate(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(templateFuncs).Parse(text))
}

// Player-facing messages.
var (
	msgWizardGreeting = mustTemplate("wizard_greeting",
		`Wizard: Hello! Want to buy the final key for {{ .Price }} coins?`)
	msgBulldogGreeting = mustTemplate("bulldog_greeting",
		`Bulldog: Woof! Shall we play rock-paper-scissors? Choose!`)
	msgDoorLocked = mustTemplate("door_locked",
		`This door is locked. You need the final key!`)
	msgDoorOpen = mustTemplate("door_open",
		`You have the key, come on in.`)
	msgCoinFound = mustTemplate("coin_found",
		`You found {{ if eq .Coins 1 }}a coin{{ else }}{{ .Coins }} coins{{ end }}!`)
	msgRiddleCorrect = mustTemplate("riddle_correct",
		`Correct!{{ if .Keys }} You received {{ if eq .Keys 1 }}a key{{ else }}{{ .Keys }} keys{{ end }}.{{ end }}{{ if .Coins }} Take {{ .Coins }} coins.{{ end }}`)
	msgRiddleIncorrect = mustTemplate("riddle_incorrect",
		`Wrong, try again.`)
	msgEnterBuilding = mustTemplate("enter_building",
		`You entered the hut! {{ .Question }}`)
	msgFinalWon = mustTemplate("final_won",
		`CONGRATULATIONS! You solved every riddle and finished the game!`)
	msgFinalIncorrect = mustTemplate("final_incorrect",
		`Wrong answer to the final riddle...`)
	msgKeyBought = mustTemplate("key_bought",
		`Congratulations! You bought the final key. Looks like it opens something important...`)
	msgKeyOwned = mustTemplate("key_owned",
		`You already have the final key.`)
	msgInsufficientFunds = mustTemplate("insufficient_funds",
		`You don't have enough coins. The key costs {{ .Price }}, you have {{ .Coins }}.`)
	msgRPSResult = mustTemplate("rps_result",
		`You chose {{ .Player | title }}, the bulldog chose {{ .Opponent | title }}. `+
			`{{ if eq .Result "win" }}You win! Woof woof! Take {{ .Reward }} coins.`+
			`{{ else if eq .Result "tie" }}A tie! Woof!`+
			`{{ else }}You lose! Grrr!{{ end }}`)
)

// Status channel lines.
var (
	statusLoaded = mustTemplate("status_loaded",
		`Loaded models: {{ .Completed }}/{{ .Expected }} ({{ .Name }} {{ ternary "ok" "failed" .OK }})`)
	statusReady = mustTemplate("status_ready",
		`Scene ready!`)
	statusDoorMissing = mustTemplate("status_door_missing",
		`Error: hut door ({{ .Door | quote }}) not found!`)
	statusLoadFailed = mustTemplate("status_load_failed",
		`Failed to load {{ .Name }}: {{ .Error }}`)
	statusMoving = mustTemplate("status_moving",
		`Player moving: x={{ printf "%.2f" .X }}, z={{ printf "%.2f" .Z }}`)
	statusCollision = mustTemplate("status_collision",
		`{{ if eq .Reason "door_open" }}Passing through the door (have key)`+
			`{{ else if eq .Reason "door_locked" }}Bumped into the door (no key)`+
			`{{ else }}Bumped into a wall{{ end }}`)
	statusKey = mustTemplate("status_key",
		`Key {{ ternary "pressed" "released" .Down }}: {{ .Code }}`)
	statusClick = mustTemplate("status_click",
		`{{ if .Kind }}Clicked interactable: {{ .Kind }}{{ else }}Click: nothing interactable there{{ end }}`)
	statusNotReady = mustTemplate("status_not_ready",
		`Click ignored: scene is not ready`)
)

// render executes t, falling back to the template name if the data does not fit.
func render(t *template.Template, data any) string {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		slog.Warn("rendering message", "template", t.Name(), "error", err)
		return t.Name()
	}
	return buf.String()
}
