package model

// ProfileID is the client-supplied identifier that keys a profile
type ProfileID string

// Starting values for every new profile
const (
	BaseHP         = 20
	BasePower      = 2
	BaseAgility    = 2
	BaseProtection = 2

	// CreationPoints must be distributed exactly when a profile is created
	CreationPoints = 5
	// StartingExtraPoints is the reserve handed out for the next level-up
	StartingExtraPoints = 5

	XPPerWin       = 1
	XPPerLevel     = 10
	PointsPerLevel = 3
)

// Stats holds the four combat attributes
type Stats struct {
	HP         int `json:"hp"`
	Power      int `json:"power"`
	Agility    int `json:"agility"`
	Protection int `json:"protection"`
}

// BaseStats returns the attributes every profile and bot starts from
func BaseStats() Stats {
	return Stats{
		HP:         BaseHP,
		Power:      BasePower,
		Agility:    BaseAgility,
		Protection: BaseProtection,
	}
}

// Apply adds an allocation to the stats
func (s Stats) Apply(a Allocation) Stats {
	return Stats{
		HP:         s.HP + a.HP,
		Power:      s.Power + a.Power,
		Agility:    s.Agility + a.Agility,
		Protection: s.Protection + a.Protection,
	}
}

// Profile is a player's persisted combat record
type Profile struct {
	ID       ProfileID `json:"id"`
	Nickname string    `json:"nickname"`
	Race     Race      `json:"race"`
	Stats
	Experience  int `json:"experience"`
	Level       int `json:"level"`
	ExtraPoints int `json:"extraPoints"`
}

// NewProfile builds a level 1 profile from base stats, race bonus and the
// player's initial allocation
func NewProfile(id ProfileID, nickname string, race Race, alloc Allocation) *Profile {
	return &Profile{
		ID:          id,
		Nickname:    nickname,
		Race:        race,
		Stats:       BaseStats().Apply(race.Bonus()).Apply(alloc),
		Experience:  0,
		Level:       1,
		ExtraPoints: StartingExtraPoints,
	}
}

// Clone returns an independent copy
func (p *Profile) Clone() *Profile {
	c := *p
	return &c
}

// AwardExperience adds experience and applies any level-ups it unlocks.
// Returns the number of levels gained.
func (p *Profile) AwardExperience(xp int) int {
	p.Experience += xp
	gained := 0
	for p.Experience >= XPPerLevel {
		p.Experience -= XPPerLevel
		p.Level++
		p.ExtraPoints += PointsPerLevel
		gained++
	}
	return gained
}
