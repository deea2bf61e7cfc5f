package reconcile

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Outcome is the label of a classification bucket.
type Outcome string

// Classification maps a fixed, ordered set of outcomes to the subject names assigned
// to them. Names keep insertion order within a bucket and are not deduplicated.
type Classification struct {
	outcomes []Outcome
	buckets  map[Outcome][]string
}

// NewClassification creates an empty classification over the given outcomes.
// The outcome order is preserved when iterating and when encoding to JSON.
func NewClassification(outcomes ...Outcome) *Classification {
	c := &Classification{
		outcomes: make([]Outcome, 0, len(outcomes)),
		buckets:  make(map[Outcome][]string, len(outcomes)),
	}
	for _, o := range outcomes {
		if _, exists := c.buckets[o]; exists {
			continue
		}
		c.outcomes = append(c.outcomes, o)
		c.buckets[o] = []string{}
	}
	return c
}

// Add appends name to the bucket for outcome.
// It panics if outcome is not part of the classification's outcome set.
func (c *Classification) Add(outcome Outcome, name string) {
	names, ok := c.buckets[outcome]
	if !ok {
		panic(fmt.Sprintf("reconcile: unknown outcome %q", outcome))
	}
	c.buckets[outcome] = append(names, name)
}

// Names returns a copy of the names assigned to outcome, in insertion order.
func (c *Classification) Names(outcome Outcome) []string {
	names := c.buckets[outcome]
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Count returns the number of names assigned to outcome.
func (c *Classification) Count(outcome Outcome) int {
	return len(c.buckets[outcome])
}

// Total returns the number of names across all outcomes.
func (c *Classification) Total() int {
	total := 0
	for _, names := range c.buckets {
		total += len(names)
	}
	return total
}

// Outcomes returns the outcome set in declaration order.
func (c *Classification) Outcomes() []Outcome {
	out := make([]Outcome, len(c.outcomes))
	copy(out, c.outcomes)
	return out
}

// OutcomeOf returns the first outcome whose bucket contains name.
func (c *Classification) OutcomeOf(name string) (Outcome, bool) {
	for _, o := range c.outcomes {
		for _, n := range c.buckets[o] {
			if n == name {
				return o, true
			}
		}
	}
	return "", false
}

// Counts returns the bucket sizes keyed by outcome.
func (c *Classification) Counts() map[Outcome]int {
	counts := make(map[Outcome]int, len(c.outcomes))
	for _, o := range c.outcomes {
		counts[o] = len(c.buckets[o])
	}
	return counts
}

// MarshalJSON encodes the classification as an object whose keys follow the
// outcome declaration order.
func (c *Classification) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, o := range c.outcomes {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(o))
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(c.buckets[o])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Truncate returns at most limit names from names.
// A limit of zero or less returns names unchanged.
func Truncate(names []string, limit int) []string {
	if limit <= 0 || len(names) <= limit {
		return names
	}
	return names[:limit]
}
