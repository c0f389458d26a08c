package fight

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mcoot/botarena/internal/model"
	"github.com/mcoot/botarena/internal/services/bot"
	"github.com/mcoot/botarena/internal/services/combat"
	"github.com/mcoot/botarena/internal/storage"
)

// Result is the outcome of one fight round as returned to the player
type Result struct {
	Log    []string
	Player *model.Profile
	Result model.FightResult
	Bot    model.Combatant
}

// Controller runs fights between stored profiles and a freshly built bot
type Controller struct {
	store    storage.Store
	strategy bot.Strategy
	resolver *combat.Resolver
	logger   *slog.Logger
}

// NewController creates a new fight Controller
func NewController(
	store storage.Store,
	strategy bot.Strategy,
	resolver *combat.Resolver,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		store:    store,
		strategy: strategy,
		resolver: resolver,
		logger:   logger.With(slog.String("component", "fight")),
	}
}

// Fight plays one round for the profile. The profile must exist before the
// body parts are validated. The round is resolved inside the store mutation,
// so the stored profile only changes once the whole round has been settled.
func (c *Controller) Fight(ctx context.Context, id, hit, defend string) (*Result, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, model.NewValidationError(model.ErrMissingField,
			"Missing required field(s): telegram_id.")
	}
	profileID := model.ProfileID(id)

	if _, err := c.store.GetProfile(ctx, profileID); err != nil {
		return nil, err
	}

	hitPart, err := parseBodyPart("hit", hit)
	if err != nil {
		return nil, err
	}
	defendPart, err := parseBodyPart("defend", defend)
	if err != nil {
		return nil, err
	}

	var round combat.Round
	updated, err := c.store.MutateProfile(ctx, profileID, func(p *model.Profile) error {
		plan := c.strategy.ChoosePlan()
		round = c.resolver.Fight(p, model.NewBot(),
			combat.Choice{Hit: hitPart, Defend: defendPart},
			combat.Choice{Hit: plan.Attack, Defend: plan.Defend},
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("fight resolved",
		slog.String("profile_id", id),
		slog.String("result", resultLabel(round.Result)),
		slog.Int("player_hp", updated.HP),
		slog.Int("bot_hp", round.Opponent.HP),
		slog.Int("levels_gained", round.LevelsGained),
	)

	return &Result{
		Log:    round.Log(),
		Player: updated,
		Result: round.Result,
		Bot:    round.Opponent,
	}, nil
}

func parseBodyPart(field, value string) (model.BodyPart, error) {
	part, ok := model.ParseBodyPart(strings.ToLower(strings.TrimSpace(value)))
	if !ok {
		return "", model.NewValidationError(model.ErrInvalidBodyPart,
			"Invalid %s %q. Choose one of: head, chest, stomach, legs.", field, value)
	}
	return part, nil
}

func resultLabel(r model.FightResult) string {
	if r == model.FightUndecided {
		return "undecided"
	}
	return string(r)
}
