package fight

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/botarena/internal/dependencies/mocks"
	"github.com/mcoot/botarena/internal/model"
	"github.com/mcoot/botarena/internal/services/bot"
	"github.com/mcoot/botarena/internal/services/combat"
	"github.com/mcoot/botarena/internal/storage/memory"
	"github.com/mcoot/botarena/internal/storage/storagetest"
	"github.com/mcoot/botarena/internal/testutil"
)

// Indices into model.BodyParts()
const (
	head = iota
	chest
	stomach
	legs
)

type ControllerSuite struct {
	suite.Suite
	store      *memory.Storage
	random     *mocks.MockRandom
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.store = memory.New()
	s.random = mocks.NewMockRandom()
	s.controller = NewController(
		s.store,
		bot.NewRandomStrategy(s.random),
		combat.NewResolver(s.random),
		testutil.NopLogger(),
	)
	s.ctx = context.Background()
}

func (s *ControllerSuite) seed(mutate func(p *model.Profile)) *model.Profile {
	p := model.NewProfile("u1", "Alice", model.RaceElf,
		model.Allocation{HP: 1, Power: 1, Agility: 1, Protection: 2})
	if mutate != nil {
		mutate(p)
	}
	s.Require().NoError(s.store.CreateProfile(s.ctx, p))
	return p
}

func (s *ControllerSuite) TestFightUndecided() {
	// elf: hp 21, power 3, agility 5, protection 4
	s.seed(nil)
	// Bot attacks legs and guards stomach; player hits head (draw 0 lands),
	// bot's strike to legs is dodged (chance 15, draw 10)
	s.random.QueueIntn(legs, stomach, 0, 10)

	res, err := s.controller.Fight(s.ctx, "u1", "head", "chest")
	s.Require().NoError(err)

	s.Equal(model.FightUndecided, res.Result)
	s.Equal([]string{
		"Alice hits Bot in the head for 3 damage. Bot has 17 HP left.",
		"Alice dodges Bot's strike to the legs.",
	}, res.Log)
	s.Equal(17, res.Bot.HP)
	s.Equal(model.BotNickname, res.Bot.Nickname)
	s.Equal(21, res.Player.HP)
	s.Equal(0, s.random.Remaining())
	s.Equal([]int{4, 4, 100, 100}, s.random.IntnCalls)
}

func (s *ControllerSuite) TestFightPersistsDamage() {
	s.seed(nil)
	// Bot attacks chest unguarded and lands (chance 15, draw 15)
	s.random.QueueIntn(chest, head, 15, 15)

	res, err := s.controller.Fight(s.ctx, "u1", "head", "legs")
	s.Require().NoError(err)

	// Player strike to the guarded head: margin 1, draw 15 < 50 lands for 1
	s.Equal(19, res.Bot.HP)
	s.Equal(19, res.Player.HP)

	stored, err := s.store.GetProfile(s.ctx, "u1")
	s.Require().NoError(err)
	s.Equal(res.Player, stored)
}

func (s *ControllerSuite) TestFightWonLevelsUp() {
	s.seed(func(p *model.Profile) {
		p.Power = 25
		p.Experience = 9
		p.ExtraPoints = 0
	})
	s.random.QueueIntn(head, chest, 99, 99)

	res, err := s.controller.Fight(s.ctx, "u1", "legs", "head")
	s.Require().NoError(err)

	s.Equal(model.FightWon, res.Result)
	s.LessOrEqual(res.Bot.HP, 0)
	s.Equal(2, res.Player.Level)
	s.Equal(0, res.Player.Experience)
	s.Equal(3, res.Player.ExtraPoints)
}

func (s *ControllerSuite) TestFightLostClampsHP() {
	s.seed(func(p *model.Profile) {
		p.HP = 1
	})
	// Player strike to the guarded head with margin 1 is blocked on 99,
	// bot hits legs unguarded
	s.random.QueueIntn(legs, head, 99, 99)

	res, err := s.controller.Fight(s.ctx, "u1", "head", "chest")
	s.Require().NoError(err)

	s.Equal(model.FightLost, res.Result)
	s.Equal(1, res.Player.HP)
	s.Equal(0, res.Player.Experience)
}

func (s *ControllerSuite) TestFightUnknownProfile() {
	_, err := s.controller.Fight(s.ctx, "ghost", "head", "chest")
	s.ErrorIs(err, model.ErrProfileNotFound)
	s.Empty(s.random.IntnCalls)
}

func (s *ControllerSuite) TestFightUnknownProfileCheckedBeforeBodyParts() {
	_, err := s.controller.Fight(s.ctx, "ghost", "tail", "wing")
	s.ErrorIs(err, model.ErrProfileNotFound)
}

func (s *ControllerSuite) TestFightInvalidBodyPart() {
	before := s.seed(nil)

	_, err := s.controller.Fight(s.ctx, "u1", "tail", "chest")
	s.ErrorIs(err, model.ErrInvalidBodyPart)

	_, err = s.controller.Fight(s.ctx, "u1", "head", "")
	s.ErrorIs(err, model.ErrInvalidBodyPart)

	stored, err := s.store.GetProfile(s.ctx, "u1")
	s.Require().NoError(err)
	s.Equal(before, stored)
	s.Empty(s.random.IntnCalls)
}

func (s *ControllerSuite) TestFightMissingID() {
	_, err := s.controller.Fight(s.ctx, " ", "head", "chest")
	s.ErrorIs(err, model.ErrMissingField)
}

func (s *ControllerSuite) TestFightStoreFailure() {
	boom := errors.New("store down")
	controller := NewController(storagetest.FailingStore{Err: boom},
		bot.NewRandomStrategy(s.random), combat.NewResolver(s.random), testutil.NopLogger())

	_, err := controller.Fight(s.ctx, "u1", "head", "chest")
	s.ErrorIs(err, boom)
}
