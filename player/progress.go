package player

import "github.com/lixenwraith/light-blaster/parameter"

// AcquiredEvolution records one evolution pick for class and tier queries
type AcquiredEvolution struct {
	ID     string `json:"id"`
	Tiered bool   `json:"tiered"`
	Tier   string `json:"tier,omitempty"`
	Class  string `json:"class"`
}

// FrozenChoice is an evolution held in a fixed offer slot across screens
type FrozenChoice struct {
	ID   string
	Slot int
	Tier string
}

// Progress is the run-scoped evolution and loot bookkeeping
type Progress struct {
	Levels   map[string]int
	Blocked  map[string]bool
	Acquired []AcquiredEvolution
	Frozen   *FrozenChoice
	Loot     map[string]bool

	RerollsLeft int
	BlocksLeft  int
	FreezesLeft int

	// NextEvolutionScore is the score at which the next evolution screen opens
	NextEvolutionScore int
	EvolutionScreens   int
}

func newProgress() Progress {
	return Progress{
		Levels:             make(map[string]int),
		Blocked:            make(map[string]bool),
		Loot:               make(map[string]bool),
		RerollsLeft:        parameter.MaxEvolutionRerolls,
		BlocksLeft:         parameter.MaxEvolutionBlocks,
		FreezesLeft:        parameter.MaxEvolutionFreezes,
		NextEvolutionScore: parameter.EvolutionFirstThreshold,
	}
}

// Level returns the acquisition count of an evolution
func (p *Player) Level(id string) int {
	return p.Progress.Levels[id]
}

// RecordEvolution increments the level and appends the acquisition record
func (p *Player) RecordEvolution(rec AcquiredEvolution) {
	p.Progress.Levels[rec.ID]++
	p.Progress.Acquired = append(p.Progress.Acquired, rec)
}

// EvolutionsOfClass counts acquired evolutions of a class
func (p *Player) EvolutionsOfClass(class string) int {
	n := 0
	for _, a := range p.Progress.Acquired {
		if a.Class == class {
			n++
		}
	}
	return n
}

// HasLoot reports whether a loot id was collected
func (p *Player) HasLoot(id string) bool {
	return p.Progress.Loot[id]
}

// AdvanceEvolutionThreshold moves the next threshold after a screen opens
func (p *Player) AdvanceEvolutionThreshold() {
	p.Progress.EvolutionScreens++
	step := parameter.EvolutionThresholdBase + parameter.EvolutionThresholdGrowth*(p.Progress.EvolutionScreens-1)
	p.Progress.NextEvolutionScore += step
}
