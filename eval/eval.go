package eval

func Recall(truePositives, conditionPositives int) float64 {
	if conditionPositives == 0 {
		return 0
	}
	return float64(truePositives) / float64(conditionPositives)
}

// Percent renders a ratio in [0,1] as a percentage.
func Percent(ratio float64) float64 {
	return ratio * 100
}

// Tally counts scored tokens and how many of them matched the gold
// lexicon. Tallies add up; recalls do not.
type Tally struct {
	Matched, Scored int
}

func (t *Tally) Add(r Result) {
	if scored, ok := r.(Scored); ok {
		t.Scored++
		if scored.Match {
			t.Matched++
		}
	}
}

func (t *Tally) Merge(other Tally) {
	t.Matched += other.Matched
	t.Scored += other.Scored
}

// Recall is 0 for an empty tally.
func (t Tally) Recall() float64 {
	return Recall(t.Matched, t.Scored)
}

func (t Tally) Missed() int {
	return t.Scored - t.Matched
}

func Sum(tallies ...Tally) Tally {
	var total Tally
	for _, t := range tallies {
		total.Merge(t)
	}
	return total
}
