package bot

import (
	"github.com/mcoot/botarena/internal/dependencies/random"
	"github.com/mcoot/botarena/internal/model"
)

// RandomStrategy picks the attack part and then the defend part uniformly at
// random, ignoring anything the player chose
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// ChoosePlan draws the attack part first, then the defend part
func (s *RandomStrategy) ChoosePlan() Plan {
	parts := model.BodyParts()
	attack := random.Pick(s.random, parts)
	defend := random.Pick(s.random, parts)
	return Plan{Attack: attack, Defend: defend}
}
