package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, out, errOut io.Writer) *Output {
	return &Output{format: format, out: out, errOut: errOut}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]string{"message": err.Error()}
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			errData["message"] = apiErr.Message
			errData["code"] = apiErr.Code
		}
		data, _ := json.Marshal(errData)
		_, _ = fmt.Fprintln(o.errOut, string(data))
	} else {
		_, _ = fmt.Fprintf(o.errOut, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case ProfileResult:
		o.printf("%s\n", v.Message)
		o.printProfile(v.Profile)
	case LookupResult:
		if !v.Exists || v.Profile == nil {
			o.printf("No profile found.\n")
			return
		}
		o.printProfile(*v.Profile)
	case FightResult:
		o.printFight(v)
	case MessageResult:
		o.printf("%s\n", v.Message)
	case HealthResult:
		o.printf("Status: %s\n", v.Status)
	default:
		o.printJSON(data)
	}
}

// Profile mirrors the API profile
type Profile struct {
	ID          string `json:"id"`
	Nickname    string `json:"nickname"`
	Race        string `json:"race"`
	HP          int    `json:"hp"`
	Power       int    `json:"power"`
	Agility     int    `json:"agility"`
	Protection  int    `json:"protection"`
	Experience  int    `json:"experience"`
	Level       int    `json:"level"`
	ExtraPoints int    `json:"extraPoints"`
}

// Bot mirrors the API fight opponent
type Bot struct {
	Nickname   string `json:"nickname"`
	HP         int    `json:"hp"`
	Power      int    `json:"power"`
	Agility    int    `json:"agility"`
	Protection int    `json:"protection"`
}

// ProfileResult is returned by create, allocate and spend
type ProfileResult struct {
	Message string  `json:"message"`
	Profile Profile `json:"profile"`
}

// LookupResult is returned by a profile lookup
type LookupResult struct {
	Exists  bool     `json:"exists"`
	Profile *Profile `json:"profile,omitempty"`
}

// FightResult is returned by a fight round
type FightResult struct {
	Log         []string `json:"log"`
	Player      Profile  `json:"player"`
	FightResult *string  `json:"fightResult"`
	Bot         Bot      `json:"bot"`
}

// MessageResult carries only a message
type MessageResult struct {
	Message string `json:"message"`
}

// HealthResult is returned by the health check
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.out, format, args...)
}

func (o *Output) printProfile(p Profile) {
	o.printf("Player: %s (%s)\n", p.Nickname, p.ID)
	o.printf("Race: %s\n", p.Race)
	o.printf("Level: %d (%d XP)\n", p.Level, p.Experience)
	o.printf("HP: %d  Power: %d  Agility: %d  Protection: %d\n", p.HP, p.Power, p.Agility, p.Protection)
	if p.ExtraPoints > 0 {
		o.printf("Unspent points: %d\n", p.ExtraPoints)
	}
}

func (o *Output) printFight(f FightResult) {
	for _, line := range f.Log {
		o.printf("%s\n", line)
	}
	o.printf("\n%s: %d HP  |  %s: %d HP\n", f.Player.Nickname, f.Player.HP, f.Bot.Nickname, f.Bot.HP)
	switch {
	case f.FightResult == nil:
		o.printf("The fight goes on.\n")
	case *f.FightResult == "won":
		o.printf("You won! Level %d, %d XP.\n", f.Player.Level, f.Player.Experience)
	default:
		o.printf("You lost.\n")
	}
}
