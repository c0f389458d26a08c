package bot

import "github.com/mcoot/botarena/internal/model"

// Plan is the bot's choice for one fight round
type Plan struct {
	Attack model.BodyPart
	Defend model.BodyPart
}

// Strategy defines how a bot chooses where to strike and what to guard
type Strategy interface {
	// ChoosePlan selects the attack and defend body parts for a round
	ChoosePlan() Plan
}
