package model

// BodyPart is the unit of targeting in a fight exchange
type BodyPart string

const (
	BodyPartHead    BodyPart = "head"
	BodyPartChest   BodyPart = "chest"
	BodyPartStomach BodyPart = "stomach"
	BodyPartLegs    BodyPart = "legs"
)

// BodyParts returns every targetable body part. Bots index into this slice.
func BodyParts() []BodyPart {
	return []BodyPart{BodyPartHead, BodyPartChest, BodyPartStomach, BodyPartLegs}
}

// ParseBodyPart validates a body part name
func ParseBodyPart(s string) (BodyPart, bool) {
	for _, p := range BodyParts() {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

// FightResult is the outcome of a single fight round
type FightResult string

const (
	FightWon  FightResult = "won"
	FightLost FightResult = "lost"
	// FightUndecided means both sides survived the round
	FightUndecided FightResult = ""
)

// Combatant is one side of an exchange
type Combatant struct {
	Nickname string `json:"nickname"`
	Stats
}

// BotNickname is the display name used for the scripted opponent
const BotNickname = "Bot"

// NewBot returns the fixed baseline opponent. Bots are never persisted.
func NewBot() *Combatant {
	return &Combatant{
		Nickname: BotNickname,
		Stats:    BaseStats(),
	}
}
