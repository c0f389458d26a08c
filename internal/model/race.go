package model

// Race is chosen at profile creation and never changes
type Race string

const (
	RaceHuman Race = "human"
	RaceElf   Race = "elf"
	RaceDwarf Race = "dwarf"
	RaceOrc   Race = "orc"
)

// RaceBonusPoints is the one-time bonus a race grants to its favoured attribute
const RaceBonusPoints = 2

var raceBonusAttribute = map[Race]Attribute{
	RaceHuman: AttrHP,
	RaceElf:   AttrAgility,
	RaceDwarf: AttrProtection,
	RaceOrc:   AttrPower,
}

// Races lists every playable race
func Races() []Race {
	return []Race{RaceHuman, RaceElf, RaceDwarf, RaceOrc}
}

// ParseRace validates a race name
func ParseRace(s string) (Race, bool) {
	r := Race(s)
	_, ok := raceBonusAttribute[r]
	return r, ok
}

// Bonus returns the attribute increase granted by the race
func (r Race) Bonus() Allocation {
	var a Allocation
	if attr, ok := raceBonusAttribute[r]; ok {
		a.Set(attr, RaceBonusPoints)
	}
	return a
}
