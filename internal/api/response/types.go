package response

import (
	"github.com/mcoot/botarena/internal/model"
	"github.com/mcoot/botarena/internal/services/fight"
)

// Profile represents a player profile in API responses
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

// ProfileFromModel converts a model.Profile to a response Profile
func ProfileFromModel(p *model.Profile) Profile {
	return Profile{
		ID:          string(p.ID),
		Nickname:    p.Nickname,
		Race:        string(p.Race),
		HP:          p.HP,
		Power:       p.Power,
		Agility:     p.Agility,
		Protection:  p.Protection,
		Experience:  p.Experience,
		Level:       p.Level,
		ExtraPoints: p.ExtraPoints,
	}
}

// Bot represents the fight opponent in API responses
type Bot struct {
	Nickname   string `json:"nickname"`
	HP         int    `json:"hp"`
	Power      int    `json:"power"`
	Agility    int    `json:"agility"`
	Protection int    `json:"protection"`
}

// BotFromModel converts a model.Combatant
func BotFromModel(c model.Combatant) Bot {
	return Bot{
		Nickname:   c.Nickname,
		HP:         c.HP,
		Power:      c.Power,
		Agility:    c.Agility,
		Protection: c.Protection,
	}
}

// ProfileResponse is returned by every endpoint that changes a profile
type ProfileResponse struct {
	Message string  `json:"message"`
	Profile Profile `json:"profile"`
}

// LookupResponse is the response for GET /profile/{id}. Profile is omitted
// when the id is unknown.
type LookupResponse struct {
	Exists  bool     `json:"exists"`
	Profile *Profile `json:"profile,omitempty"`
}

// FightResponse is the response for POST /fight
type FightResponse struct {
	Log    []string `json:"log"`
	Player Profile  `json:"player"`
	// FightResult is "won", "lost" or null when both sides survive
	FightResult *string `json:"fightResult"`
	Bot         Bot     `json:"bot"`
}

// FightResponseFromResult converts a fight.Result
func FightResponseFromResult(r *fight.Result) FightResponse {
	resp := FightResponse{
		Log:    r.Log,
		Player: ProfileFromModel(r.Player),
		Bot:    BotFromModel(r.Bot),
	}
	if resp.Log == nil {
		resp.Log = []string{}
	}
	if r.Result != model.FightUndecided {
		result := string(r.Result)
		resp.FightResult = &result
	}
	return resp
}

// MessageResponse carries only a status message
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the response for GET /health
type HealthResponse struct {
	Status string `json:"status"`
}
