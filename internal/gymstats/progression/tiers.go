package progression

type PowerTier struct {
	Name      string `json:"name"`
	Threshold int64  `json:"threshold"`
}

var DefaultPowerTiers = []PowerTier{
	{Name: "Novice", Threshold: 0},
	{Name: "Apprentice", Threshold: 50_000},
	{Name: "Athlete", Threshold: 250_000},
	{Name: "Warrior", Threshold: 1_000_000},
	{Name: "Champion", Threshold: 5_000_000},
	{Name: "Titan", Threshold: 20_000_000},
	{Name: "Legend", Threshold: 50_000_000},
	{Name: "Godlike", Threshold: 100_000_000},
}

// NextTierInfo describes the tier a total is heading to.
type NextTierInfo struct {
	Name      string  `json:"name"`
	Threshold int64   `json:"threshold"`
	Progress  float64 `json:"progress"`
}

// TierLadder is the coarse, independent power scale.
type TierLadder struct {
	ladder *Ladder
}

func NewTierLadder(tiers []PowerTier) *TierLadder {
	rungs := make([]Rung, 0, len(tiers))
	for i, t := range tiers {
		rungs = append(rungs, Rung{ID: i + 1, Name: t.Name, Threshold: t.Threshold})
	}
	return &TierLadder{ladder: NewLadder(rungs)}
}

func (tl *TierLadder) Tiers() []PowerTier {
	rungs := tl.ladder.Rungs()
	tiers := make([]PowerTier, 0, len(rungs))
	for _, r := range rungs {
		tiers = append(tiers, PowerTier{Name: r.Name, Threshold: r.Threshold})
	}
	return tiers
}

// CurrentTierName is empty only if total is below the first tier threshold.
func (tl *TierLadder) CurrentTierName(total int64) string {
	r, ok := tl.ladder.Current(total)
	if !ok {
		return ""
	}
	return r.Name
}

// NextTier never fails: past the last tier it reports "Beyond <last>" with full progress,
// so the scale stays open-ended.
func (tl *TierLadder) NextTier(total int64) NextTierInfo {
	if tl.ladder.Len() == 0 {
		return NextTierInfo{Progress: 1}
	}
	next, ok := tl.ladder.Next(total)
	if !ok {
		last := tl.ladder.rungs[len(tl.ladder.rungs)-1]
		return NextTierInfo{
			Name:      "Beyond " + last.Name,
			Threshold: last.Threshold,
			Progress:  1,
		}
	}

	var base int64
	if current, ok := tl.ladder.Current(total); ok {
		base = current.Threshold
	}
	return NextTierInfo{
		Name:      next.Name,
		Threshold: next.Threshold,
		Progress:  clamp01(float64(total-base) / float64(next.Threshold-base)),
	}
}

type TierView struct {
	Current string       `json:"current"`
	Next    NextTierInfo `json:"next"`
}

func (tl *TierLadder) View(total int64) TierView {
	return TierView{
		Current: tl.CurrentTierName(total),
		Next:    tl.NextTier(total),
	}
}

// PowerTiers returns a copy of the default tier list.
func PowerTiers() []PowerTier {
	tiers := make([]PowerTier, len(DefaultPowerTiers))
	copy(tiers, DefaultPowerTiers)
	return tiers
}
