package progression

import "fmt"

// MilestoneStep is the energy, in joules, between two consecutive milestones.
const MilestoneStep int64 = 150_000

var (
	Materials = []string{
		"Wood", "Stone", "Copper", "Bronze", "Iron", "Steel",
		"Silver", "Gold", "Platinum", "Diamond", "Titanium", "Obsidian",
	}
	Ranks = []string{"I", "II", "III"}
)

type Milestone struct {
	ID        int    `json:"id"`
	Material  string `json:"material"`
	Rank      string `json:"rank"`
	Threshold int64  `json:"threshold"`
}

func (m Milestone) Name() string {
	return fmt.Sprintf("%s %s", m.Material, m.Rank)
}

// Milestones generates the full ladder: materials x ranks, material being the outer loop,
// so the thresholds (id * MilestoneStep) strictly increase with id.
func Milestones() []Milestone {
	milestones := make([]Milestone, 0, len(Materials)*len(Ranks))
	id := 1
	for _, material := range Materials {
		for _, rank := range Ranks {
			milestones = append(milestones, Milestone{
				ID:        id,
				Material:  material,
				Rank:      rank,
				Threshold: int64(id) * MilestoneStep,
			})
			id++
		}
	}
	return milestones
}

// MilestoneLadder wraps the generic ladder and maps its rungs back to milestones.
type MilestoneLadder struct {
	ladder *Ladder
	byID   map[int]Milestone
}

func NewMilestoneLadder() *MilestoneLadder {
	milestones := Milestones()
	rungs := make([]Rung, 0, len(milestones))
	byID := make(map[int]Milestone, len(milestones))
	for _, m := range milestones {
		rungs = append(rungs, Rung{ID: m.ID, Name: m.Name(), Threshold: m.Threshold})
		byID[m.ID] = m
	}
	return &MilestoneLadder{
		ladder: NewLadder(rungs),
		byID:   byID,
	}
}

func (ml *MilestoneLadder) All() []Milestone {
	return Milestones()
}

func (ml *MilestoneLadder) Current(total int64) (Milestone, bool) {
	r, ok := ml.ladder.Current(total)
	if !ok {
		return Milestone{}, false
	}
	return ml.byID[r.ID], true
}

func (ml *MilestoneLadder) Next(total int64) (Milestone, bool) {
	r, ok := ml.ladder.Next(total)
	if !ok {
		return Milestone{}, false
	}
	return ml.byID[r.ID], true
}

func (ml *MilestoneLadder) Progress(total int64) float64 {
	return ml.ladder.Progress(total)
}

func (ml *MilestoneLadder) Remaining(total int64) (int64, bool) {
	return ml.ladder.Remaining(total)
}

func (ml *MilestoneLadder) Crossed(previousTotal, newTotal int64) (Milestone, bool) {
	r, ok := ml.ladder.Crossed(previousTotal, newTotal)
	if !ok {
		return Milestone{}, false
	}
	return ml.byID[r.ID], true
}

// MilestoneView is what summary displays need about the milestone ladder for a total.
type MilestoneView struct {
	Current         *Milestone `json:"current"`
	Next            *Milestone `json:"next"`
	Progress        float64    `json:"progress"`
	RemainingToNext int64      `json:"remainingToNext"`
	MaxLevelReached bool       `json:"maxLevelReached"`
}

func (ml *MilestoneLadder) View(total int64) MilestoneView {
	view := MilestoneView{
		Progress: ml.Progress(total),
	}
	if current, ok := ml.Current(total); ok {
		view.Current = &current
	}
	if next, ok := ml.Next(total); ok {
		view.Next = &next
	}
	if remaining, ok := ml.Remaining(total); ok {
		view.RemainingToNext = remaining
	} else {
		view.MaxLevelReached = true
	}
	return view
}
