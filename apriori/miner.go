package apriori

import (
	"fmt"
	"math"
	"sort"

	"github.com/itemlift/itemlift/itemset"
)

// Miner runs Apriori over one transaction database.
//
// The database and the transaction total are captured once at
// construction and never change; every relative-support and downstream
// lift computation for the session uses that same total. The miner also
// keeps a registry of every support it has ever counted, independent of
// the Prune flag, so rule generation can resolve subset supports that
// maximality pruning removed from the reported result.
//
// A Miner is not safe for concurrent use; run independent sessions on
// independent Miner instances instead.
type Miner struct {
	db       *itemset.Database
	total    int
	registry map[string]int // canonical Key → absolute support
}

// NewMiner binds a mining session to db.
func NewMiner(db *itemset.Database) *Miner {
	m := &Miner{
		db:       db,
		registry: make(map[string]int),
	}
	if db != nil {
		m.total = db.Len()
	}

	return m
}

// Total returns the transaction count captured at construction.
func (m *Miner) Total() int {
	return m.total
}

// Support resolves the absolute support of s: from the registry when s was
// counted during mining, otherwise by one recount against the database.
// The second return is false only when the miner has no database to
// consult. Support satisfies the rules.SupportSource contract.
func (m *Miner) Support(s itemset.Set) (int, bool) {
	key := s.Key()
	if v, ok := m.registry[key]; ok {
		return v, true
	}
	if m.db == nil {
		return 0, false
	}
	v := m.db.Support(s)
	m.registry[key] = v

	return v, true
}

// Mine — classical level-wise Apriori.
//
// Algorithm Outline:
//  1. Normalize MinSupport to an absolute count (fail fast on a threshold
//     outside its domain).
//  2. L1: count every distinct item; keep those meeting the threshold.
//  3. Level k ≥ 2: join every pair of L(k-1) itemsets sharing exactly k-2
//     items into a k-candidate; discard candidates with any (k-1)-subset
//     missing from L(k-1) before counting (anti-monotonicity); count the
//     survivors by index intersection; keep those meeting the threshold.
//  4. Stop when a level comes up empty or k exceeds the largest
//     transaction.
//  5. Report the union of all levels, reduced to maximal itemsets when
//     opts.Prune is set, sorted by support descending, then size
//     ascending, then canonical Key.
//
// The threshold bound is inclusive. An empty database, or one where no
// item reaches the threshold, yields an empty result and a nil error.
//
// Errors: ErrNilDatabase, ErrInvalidThreshold.
func (m *Miner) Mine(opts Options) ([]FrequentItemSet, error) {
	if m.db == nil {
		return nil, ErrNilDatabase
	}
	threshold, err := m.absoluteThreshold(opts)
	if err != nil {
		return nil, err
	}

	// Level 1: every distinct item, sorted for determinism.
	var (
		all   []FrequentItemSet
		level []itemset.Set
	)
	for _, item := range m.db.Items() {
		single := itemset.New(item)
		sup := m.count(single)
		if sup >= threshold {
			level = append(level, single)
			all = append(all, m.frequent(single, sup))
		}
	}

	// Levels k ≥ 2 until exhaustion.
	for k := 2; len(level) > 0 && k <= m.db.MaxTransactionLen(); k++ {
		prev := make(map[string]struct{}, len(level))
		for _, s := range level {
			prev[s.Key()] = struct{}{}
		}

		var next []itemset.Set
		for _, cand := range join(level, k) {
			if !subsetsFrequent(cand, prev) {
				continue
			}
			sup := m.count(cand)
			if sup >= threshold {
				next = append(next, cand)
				all = append(all, m.frequent(cand, sup))
			}
		}
		level = next
	}

	if opts.Prune {
		all = maximal(all)
	}
	sortFrequent(all)

	return all, nil
}

// absoluteThreshold validates opts.MinSupport and normalizes it to an
// absolute transaction count for inclusive comparison.
func (m *Miner) absoluteThreshold(opts Options) (int, error) {
	if opts.Relative {
		// The negated form also rejects NaN.
		if !(opts.MinSupport >= 0 && opts.MinSupport <= 1) {
			return 0, fmt.Errorf("%w: relative support %v not in [0.0, 1.0]", ErrInvalidThreshold, opts.MinSupport)
		}
		// Smallest count c with c/total ≥ MinSupport. The epsilon absorbs
		// float noise such as 0.7*4 → 2.8000000000000003.
		return int(math.Ceil(opts.MinSupport*float64(m.total) - 1e-9)), nil
	}

	if opts.MinSupport != math.Trunc(opts.MinSupport) {
		return 0, fmt.Errorf("%w: absolute support %v is not an integer", ErrInvalidThreshold, opts.MinSupport)
	}
	if opts.MinSupport < 0 || opts.MinSupport > float64(m.total) {
		return 0, fmt.Errorf("%w: absolute support %v not in [0, %d]", ErrInvalidThreshold, opts.MinSupport, m.total)
	}

	return int(opts.MinSupport), nil
}

// count returns the support of s, memoized in the registry.
func (m *Miner) count(s itemset.Set) int {
	key := s.Key()
	if v, ok := m.registry[key]; ok {
		return v
	}
	v := m.db.Support(s)
	m.registry[key] = v

	return v
}

// frequent materializes the result pair for s.
func (m *Miner) frequent(s itemset.Set, sup int) FrequentItemSet {
	rel := 0.0
	if m.total > 0 {
		rel = float64(sup) / float64(m.total)
	}

	return FrequentItemSet{Items: s, Support: sup, RelativeSupport: rel}
}

// join generates the level-k candidates: unions of L(k-1) pairs that share
// exactly k-2 items (equivalently, whose union has exactly k items),
// deduplicated and sorted by canonical Key.
func join(level []itemset.Set, k int) []itemset.Set {
	seen := make(map[string]struct{})
	var out []itemset.Set
	for i := 0; i < len(level); i++ {
		for j := i + 1; j < len(level); j++ {
			u := level[i].Union(level[j])
			if u.Len() != k {
				continue
			}
			key := u.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, u)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Key() < out[b].Key() })

	return out
}

// subsetsFrequent reports whether every (k-1)-subset of cand belongs to
// the previous level. Candidates failing this can never be frequent and
// are dropped before any counting.
func subsetsFrequent(cand itemset.Set, prev map[string]struct{}) bool {
	for _, item := range cand.Items() {
		sub := cand.Clone()
		delete(sub, item)
		if _, ok := prev[sub.Key()]; !ok {
			return false
		}
	}

	return true
}

// maximal filters sets down to those not properly contained in any other
// retained set.
func maximal(sets []FrequentItemSet) []FrequentItemSet {
	out := make([]FrequentItemSet, 0, len(sets))
	for i, fs := range sets {
		isMax := true
		for j, other := range sets {
			if i != j && fs.Items.ProperSubsetOf(other.Items) {
				isMax = false
				break
			}
		}
		if isMax {
			out = append(out, fs)
		}
	}

	return out
}

// sortFrequent orders results by support descending, then size ascending,
// then canonical Key — the session's reproducible canonical order.
func sortFrequent(sets []FrequentItemSet) {
	sort.Slice(sets, func(i, j int) bool {
		a, b := sets[i], sets[j]
		if a.Support != b.Support {
			return a.Support > b.Support
		}
		if a.Items.Len() != b.Items.Len() {
			return a.Items.Len() < b.Items.Len()
		}

		return a.Items.Key() < b.Items.Key()
	})
}
