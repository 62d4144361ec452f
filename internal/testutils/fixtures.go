package testutils

import (
	"time"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/repositories/character"
)

// Stats is the constructor input for one fixture character.
type Stats struct {
	Name     string
	Strength int32
	MaxHP    int32
	MaxMP    int32
}

// Sample characters used across tests.
var (
	Fay = Stats{Name: "Fay", Strength: 12, MaxHP: 10, MaxMP: 11}
	Jay = Stats{Name: "Jay", Strength: 11, MaxHP: 99, MaxMP: 97}
	E1  = Stats{Name: "E1", Strength: 2, MaxHP: 5, MaxMP: 10}
	E2  = Stats{Name: "E2", Strength: 20, MaxHP: 20, MaxMP: 10}
)

// SampleParty lists C1 through C3, whose combined punch is 62.
func SampleParty() []Stats {
	return []Stats{
		{Name: "C1", Strength: 10, MaxHP: 10, MaxMP: 10},
		{Name: "C2", Strength: 1, MaxHP: 10, MaxMP: 10},
		{Name: "C3", Strength: 20, MaxHP: 20, MaxMP: 10},
	}
}

// Character builds a fresh level 1 character from s. It panics on invalid
// stats, which fixtures never have.
func (s Stats) Character() *entities.Character {
	c, err := entities.NewCharacter(s.Name, s.Strength, s.MaxHP, s.MaxMP)
	if err != nil {
		panic(err)
	}
	return c
}

// CreateTestRecord wraps a fixture character in a stored record.
func CreateTestRecord(id string, s Stats, at time.Time) *character.Record {
	return &character.Record{
		ID:        id,
		Character: s.Character(),
		CreatedAt: at,
		UpdatedAt: at,
	}
}
