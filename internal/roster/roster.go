// Package roster serves random playable races and classes.
package roster

import (
	_ "embed"
	"fmt"
	"math/rand/v2"
	"os"

	"gopkg.in/yaml.v3"
)

// Races lists every playable race.
var Races = []string{
	"Human", "Erudite", "Wood Elf", "High Elf", "Dark Elf", "Half Elf", "Dwarf", "Troll", "Ogre",
	"Halfling", "Gnome", "Iksar", "Vah Shir",
}

// Classes lists every playable class.
var Classes = []string{
	"Warrior", "Cleric", "Paladin", "Ranger", "Shadow Knight", "Druid", "Monk", "Bard",
	"Rogue", "Shaman", "Necromancer", "Wizard", "Magician", "Enchanter", "Beastlord", "Berserker",
}

//go:embed classes.yaml
var defaultClassMap []byte

// Roster holds the race to class table. It is read-only after construction.
type Roster struct {
	classesByRace map[string][]string
	intN          func(n int) int
}

// Default returns a Roster backed by the built-in table.
func Default() *Roster {
	r, err := parse(defaultClassMap)
	if err != nil {
		panic("roster: built-in class map is invalid: " + err.Error())
	}
	return r
}

// Load reads a YAML (or JSON) race to class table from path. An empty path
// returns Default().
func Load(path string) (*Roster, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read class map: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Roster, error) {
	m := map[string][]string{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode class map: %w", err)
	}
	return &Roster{classesByRace: m, intN: rand.IntN}, nil
}

// RandomRace returns a uniformly random race.
func (r *Roster) RandomRace() string {
	return Races[r.intN(len(Races))]
}

// RandomClass returns a random class. When race is non-empty the class is
// drawn from that race's allowed classes; ok is false for an unknown race.
func (r *Roster) RandomClass(race string) (string, bool) {
	if race == "" {
		return Classes[r.intN(len(Classes))], true
	}
	allowed := r.classesByRace[race]
	if len(allowed) == 0 {
		return "", false
	}
	return allowed[r.intN(len(allowed))], true
}

// ClassesFor returns the classes available to race.
func (r *Roster) ClassesFor(race string) []string {
	return r.classesByRace[race]
}
