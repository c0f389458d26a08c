// Package combat resolves fight exchanges between a player and an opponent.
//
// Every random draw goes through random.Random so a queued mock reproduces a
// fight exactly. Per round the draws are: the player's exchange, then the
// opponent's exchange. A fully blocked strike draws nothing.
package combat

import (
	"fmt"

	"github.com/mcoot/botarena/internal/dependencies/random"
	"github.com/mcoot/botarena/internal/model"
)

const (
	// DodgePerAgility is the dodge chance in percent per point of agility
	// the defender has over the attacker
	DodgePerAgility = 5
	// MaxDodgeChance caps the dodge chance in percent. There is no lower cap,
	// so a slower defender yields a negative chance that never dodges.
	MaxDodgeChance = 75
	// PartialBlockChance is the chance in percent that a guarded strike with
	// a power margin of exactly one still lands
	PartialBlockChance = 50
)

// Outcome describes what happened to a single strike
type Outcome string

const (
	OutcomeHit     Outcome = "hit"
	OutcomeDodged  Outcome = "dodged"
	OutcomeBlocked Outcome = "blocked"
)

// Choice is where a fighter strikes and what they guard in a round
type Choice struct {
	Hit    model.BodyPart
	Defend model.BodyPart
}

// Exchange is one strike from attacker to defender
type Exchange struct {
	Attacker   string
	Defender   string
	Target     model.BodyPart
	Outcome    Outcome
	Damage     int
	DefenderHP int
}

// String renders the exchange as a log line
func (e Exchange) String() string {
	switch e.Outcome {
	case OutcomeHit:
		return fmt.Sprintf("%s hits %s in the %s for %d damage. %s has %d HP left.",
			e.Attacker, e.Defender, e.Target, e.Damage, e.Defender, e.DefenderHP)
	case OutcomeDodged:
		return fmt.Sprintf("%s dodges %s's strike to the %s.", e.Defender, e.Attacker, e.Target)
	default:
		return fmt.Sprintf("%s blocks %s's strike to the %s.", e.Defender, e.Attacker, e.Target)
	}
}

// DodgeChance returns the percent chance that an unguarded strike misses
func DodgeChance(attacker, defender model.Stats) int {
	chance := (defender.Agility - attacker.Agility) * DodgePerAgility
	if chance > MaxDodgeChance {
		chance = MaxDodgeChance
	}
	return chance
}

// PierceChance returns the percent chance that a guarded strike with the
// given power margin lands. Margins of zero or less never land.
func PierceChance(margin int) int {
	switch {
	case margin <= 0:
		return 0
	case margin == 1:
		return PartialBlockChance
	default:
		return random.PercentSides
	}
}

// Resolver applies the combat rules using an injected random source
type Resolver struct {
	random random.Random
}

// NewResolver creates a new Resolver
func NewResolver(rnd random.Random) *Resolver {
	return &Resolver{random: rnd}
}

// Strike resolves attacker hitting the hit part while the defender guards
// defend. Damage is subtracted from defender.HP.
func (r *Resolver) Strike(attacker, defender *model.Combatant, hit, defend model.BodyPart) Exchange {
	ex := Exchange{
		Attacker: attacker.Nickname,
		Defender: defender.Nickname,
		Target:   hit,
	}

	if defend != hit {
		if random.PercentRoll(r.random) >= DodgeChance(attacker.Stats, defender.Stats) {
			ex.Outcome = OutcomeHit
			ex.Damage = attacker.Power
		} else {
			ex.Outcome = OutcomeDodged
		}
	} else {
		margin := attacker.Power - defender.Protection
		ex.Outcome = OutcomeBlocked
		// A margin of zero or less is a guaranteed block and draws nothing
		if margin > 0 && random.PercentRoll(r.random) < PierceChance(margin) {
			ex.Outcome = OutcomeHit
			ex.Damage = margin
		}
	}

	defender.HP -= ex.Damage
	ex.DefenderHP = defender.HP
	return ex
}

// Round is the record of one bidirectional fight round
type Round struct {
	Exchanges    []Exchange
	Result       model.FightResult
	LevelsGained int
	Opponent     model.Combatant
}

// Log returns one line per exchange
func (r Round) Log() []string {
	lines := make([]string, len(r.Exchanges))
	for i, ex := range r.Exchanges {
		lines[i] = ex.String()
	}
	return lines
}

// Fight plays a single round between the profile and the opponent, then
// settles it on the profile: a loss floors hp at 1, a win awards experience
// and any level-ups it unlocks.
func (r *Resolver) Fight(p *model.Profile, opponent *model.Combatant, player, opp Choice) Round {
	fighter := &model.Combatant{Nickname: p.Nickname, Stats: p.Stats}

	round := Round{
		Exchanges: []Exchange{
			r.Strike(fighter, opponent, player.Hit, opp.Defend),
			r.Strike(opponent, fighter, opp.Hit, player.Defend),
		},
	}

	p.HP = fighter.HP
	switch {
	case p.HP <= 0:
		round.Result = model.FightLost
		p.HP = 1
	case opponent.HP <= 0:
		round.Result = model.FightWon
		round.LevelsGained = p.AwardExperience(model.XPPerWin)
	default:
		round.Result = model.FightUndecided
	}

	round.Opponent = *opponent
	return round
}
