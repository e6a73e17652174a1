package session

import "sort"

// TriggerCount is one row of the trigger frequency table.
type TriggerCount struct {
	Trigger   string `json:"trigger"`
	Frequency int    `json:"frequency"`
}

// TriggerTable counts stress trigger tags. Tags are stored verbatim; no
// case or plural normalization is applied. Not safe for concurrent use on
// its own, the owning Store guards it.
type TriggerTable struct {
	counts map[string]int
	order  []string // first-seen order, used to break ties
}

func NewTriggerTable() *TriggerTable {
	return &TriggerTable{counts: make(map[string]int)}
}

// Increment adds one occurrence of tag, creating it at 1 if absent.
func (t *TriggerTable) Increment(tag string) {
	if _, ok := t.counts[tag]; !ok {
		t.order = append(t.order, tag)
	}
	t.counts[tag]++
}

// TopN returns up to n tags ordered by descending count. Ties keep
// first-seen order. n <= 0 returns every tag.
func (t *TriggerTable) TopN(n int) []TriggerCount {
	out := make([]TriggerCount, 0, len(t.order))
	for _, tag := range t.order {
		out = append(out, TriggerCount{Trigger: tag, Frequency: t.counts[tag]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Frequency > out[j].Frequency
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

func (t *TriggerTable) Len() int {
	return len(t.order)
}

// Counts returns a copy of the raw table.
func (t *TriggerTable) Counts() map[string]int {
	out := make(map[string]int, len(t.counts))
	for k, v := range t.counts {
		out[k] = v
	}
	return out
}

