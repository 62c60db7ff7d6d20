// Package rules defines the rule type, the support-resolution contract,
// and error sentinels for association-rule generation.
package rules

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/itemlift/itemlift/apriori"
	"github.com/itemlift/itemlift/itemset"
)

// Sentinel errors for rule generation.
var (
	// ErrInvalidThreshold indicates minConfidence outside [0.0, 1.0] or a
	// negative minLift.
	ErrInvalidThreshold = errors.New("rules: threshold out of range")

	// ErrNilSource indicates Generate was called without a SupportSource.
	ErrNilSource = errors.New("rules: support source is nil")

	// ErrMissingSupport indicates a subset support needed for scoring could
	// not be resolved, typically because a pruned mining result was passed
	// together with a SupportMap built from that result alone.
	ErrMissingSupport = errors.New("rules: itemset support unavailable")
)

// SupportSource resolves absolute supports for rule scoring.
//
// *apriori.Miner satisfies this interface: its registry keeps every
// support counted during mining and recounts on demand. SupportMap is the
// map-backed alternative for callers that bypassed mining.
type SupportSource interface {
	// Support returns the absolute support of s; false when unresolvable.
	Support(s itemset.Set) (int, bool)

	// Total returns the transaction count of the mining session.
	Total() int
}

// Rule is a scored implication Antecedent ⇒ Consequent.
//
// Antecedent and Consequent are disjoint, non-empty, and their union is a
// frequent itemset; Support is the absolute support of that union.
type Rule struct {
	Antecedent itemset.Set
	Consequent itemset.Set
	Support    int
	Confidence float64
	Lift       float64
}

// String renders the rule as "a => b (Confidence: 100%, Lift: 1.333)".
func (r Rule) String() string {
	return fmt.Sprintf("%s => %s (Confidence: %s%%, Lift: %s)",
		strings.Join(r.Antecedent.Items(), ", "),
		strings.Join(r.Consequent.Items(), ", "),
		trimFloat(r.Confidence*100),
		trimFloat(r.Lift),
	)
}

// trimFloat formats v rounded to three decimals without trailing zeros.
func trimFloat(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}

// SupportMap is a SupportSource backed by a plain lookup table, for
// callers that obtained supports outside a mining session.
type SupportMap struct {
	total  int
	counts map[string]int // canonical Key → absolute support
}

// NewSupportMap creates an empty SupportMap for a database of total
// transactions.
func NewSupportMap(total int) *SupportMap {
	return &SupportMap{
		total:  total,
		counts: make(map[string]int),
	}
}

// MapFromSets builds a SupportMap holding exactly the supports carried by
// sets. Note that a pruned mining result does not carry its subsets'
// supports; Generate will surface that as ErrMissingSupport.
func MapFromSets(total int, sets []apriori.FrequentItemSet) *SupportMap {
	m := NewSupportMap(total)
	for _, fs := range sets {
		m.Record(fs.Items, fs.Support)
	}

	return m
}

// Record stores the absolute support of s.
func (m *SupportMap) Record(s itemset.Set, support int) {
	m.counts[s.Key()] = support
}

// Support returns the recorded support of s; false when s was never
// recorded.
func (m *SupportMap) Support(s itemset.Set) (int, bool) {
	v, ok := m.counts[s.Key()]

	return v, ok
}

// Total returns the transaction count the map was created with.
func (m *SupportMap) Total() int {
	return m.total
}
