// Package rules derives scored association rules from frequent itemsets
// produced by the apriori package (or supplied directly with their
// supports).
//
// 🚀 What is a rule?
//
//	A directional implication A ⇒ B between two disjoint, non-empty parts
//	of one frequent itemset, scored by:
//	  • confidence — support(A∪B) / support(A), the conditional frequency
//	    of B among transactions containing A
//	  • lift — confidence / (support(B) / total), the ratio against the
//	    frequency expected if A and B were independent; lift > 1 means
//	    positive association
//
// ✨ Key features:
//   - every ordered bipartition of every itemset of size ≥ 2 is scored,
//     not just single-item consequents
//   - inclusive thresholds: confidence == minimum and lift == minimum pass
//   - supports resolve through a narrow SupportSource interface —
//     *apriori.Miner satisfies it, and SupportMap covers callers that
//     bypassed mining
//   - exact scoring survives maximality pruning: a Miner source recounts
//     any subset support its registry is missing, while a SupportMap that
//     cannot resolve one fails loudly with ErrMissingSupport
//
// ⚙️ Usage:
//
//	m := apriori.NewMiner(db)
//	sets, _ := m.Mine(apriori.DefaultOptions())
//
//	rs, err := rules.Generate(sets, m, 0.8, 1.0)
//	if err != nil {
//	    // handle ErrInvalidThreshold, ErrNilSource, or ErrMissingSupport
//	}
//
// Determinism:
//
//	Bipartitions enumerate over sorted items; results are sorted by
//	confidence descending, then lift descending, then canonical antecedent
//	and consequent Keys.
//
// Complexity: O(2^k) bipartitions per itemset of size k, each scored with
// two source lookups.
//
// Errors:
//   - ErrInvalidThreshold — minConfidence outside [0, 1] or minLift < 0.
//   - ErrNilSource        — no SupportSource supplied.
//   - ErrMissingSupport   — a needed subset support cannot be resolved
//     (or resolves to an unusable 0).
//
// See example_test.go for runnable scenarios.
package rules
