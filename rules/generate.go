package rules

import (
	"fmt"
	"sort"

	"github.com/itemlift/itemlift/apriori"
	"github.com/itemlift/itemlift/itemset"
)

// Generate derives association rules from frequent itemsets.
//
// For every itemset of size ≥ 2 in sets, every ordered bipartition
// (A, B) — A and B non-empty, disjoint, A ∪ B the itemset — is scored:
//
//	confidence = support(A∪B) / support(A)
//	lift       = confidence / (support(B) / total)
//
// A rule is kept iff confidence ≥ minConfidence and lift ≥ minLift (both
// bounds inclusive). Supports for A and B resolve through src; the union's
// support is taken from the FrequentItemSet itself, which is trusted as-is.
// No deduplication across source itemsets happens — each bipartition is
// unique to its parent.
//
// Results come back sorted by confidence descending, then lift descending,
// then canonical antecedent and consequent Keys.
//
// Errors: ErrInvalidThreshold for thresholds outside their domain (checked
// before any work), ErrNilSource, and ErrMissingSupport when src cannot
// resolve a needed subset support or resolves it to an unusable 0.
func Generate(sets []apriori.FrequentItemSet, src SupportSource, minConfidence, minLift float64) ([]Rule, error) {
	// The negated forms also reject NaN.
	if !(minConfidence >= 0 && minConfidence <= 1) {
		return nil, fmt.Errorf("%w: minimum confidence %v not in [0.0, 1.0]", ErrInvalidThreshold, minConfidence)
	}
	if !(minLift >= 0) {
		return nil, fmt.Errorf("%w: minimum lift %v is negative", ErrInvalidThreshold, minLift)
	}
	if src == nil {
		return nil, ErrNilSource
	}

	// A session with no transactions admits no honestly-supported itemsets
	// of size ≥ 2, and lift would divide by zero.
	total := src.Total()
	if total <= 0 {
		return nil, nil
	}

	var out []Rule
	for _, fs := range sets {
		items := fs.Items.Items()
		n := len(items)
		if n < 2 {
			continue
		}

		// Every non-empty proper subset of the sorted items, by bitmask.
		for mask := 1; mask < (1<<n)-1; mask++ {
			antecedent := itemset.New()
			consequent := itemset.New()
			for idx, item := range items {
				if mask&(1<<idx) != 0 {
					antecedent.Add(item)
				} else {
					consequent.Add(item)
				}
			}

			supA, err := resolve(src, antecedent)
			if err != nil {
				return nil, err
			}
			supB, err := resolve(src, consequent)
			if err != nil {
				return nil, err
			}

			confidence := float64(fs.Support) / float64(supA)
			lift := confidence * float64(total) / float64(supB)
			if confidence >= minConfidence && lift >= minLift {
				out = append(out, Rule{
					Antecedent: antecedent,
					Consequent: consequent,
					Support:    fs.Support,
					Confidence: confidence,
					Lift:       lift,
				})
			}
		}
	}
	sortRules(out)

	return out, nil
}

// resolve looks up the support of s, rejecting both an unresolvable set
// and a zero count (a subset of a frequent itemset must occur at least as
// often as the itemset itself, so 0 always signals inconsistent input).
func resolve(src SupportSource, s itemset.Set) (int, error) {
	v, ok := src.Support(s)
	if !ok || v <= 0 {
		return 0, fmt.Errorf("%w: %s", ErrMissingSupport, s)
	}

	return v, nil
}

// sortRules orders rules by confidence descending, then lift descending,
// then canonical antecedent and consequent Keys.
func sortRules(rs []Rule) {
	sort.Slice(rs, func(i, j int) bool {
		a, b := rs[i], rs[j]
		if a.Confidence != b.Confidence {
			return a.Confidence > b.Confidence
		}
		if a.Lift != b.Lift {
			return a.Lift > b.Lift
		}
		if ak, bk := a.Antecedent.Key(), b.Antecedent.Key(); ak != bk {
			return ak < bk
		}

		return a.Consequent.Key() < b.Consequent.Key()
	})
}
