// Package apriori discovers frequent itemsets in a transaction database
// using the classical Apriori level-wise search with anti-monotonic
// pruning.
//
// 🚀 What is Apriori?
//
//	A bottom-up search over item combinations: a combination can only be
//	frequent if every one of its subsets is frequent. The miner therefore
//	grows candidates one item at a time, discarding whole branches of the
//	search space the moment any sub-combination falls below the support
//	threshold. Widely used for:
//	  • Market-basket analysis (“customers who buy X also buy Y”)
//	  • Co-occurrence discovery in logs, alarms, and clickstreams
//	  • Feature grouping ahead of rule induction
//
// ✨ Key features:
//   - relative or absolute support thresholds (Options.Relative)
//   - inclusive threshold bound: support == threshold qualifies
//   - classical join + prune candidate generation — subsets are checked
//     against the previous level before any counting happens
//   - optional maximality pruning (Options.Prune): only itemsets not
//     contained in another frequent itemset are reported
//   - a support registry retained across the whole run, so rule scoring
//     keeps exact counts even for itemsets pruning removed from the report
//
// ⚙️ Usage:
//
//	db := itemset.NewDatabase(
//	    []string{"bread", "milk"},
//	    []string{"bread", "milk", "beer"},
//	)
//	m := apriori.NewMiner(db)
//
//	opts := apriori.DefaultOptions()
//	opts.MinSupport = 0.5 // relative by default
//	sets, err := m.Mine(opts)
//	if err != nil {
//	    // handle ErrInvalidThreshold or ErrNilDatabase
//	}
//
// Determinism:
//
//	Candidates are generated from sorted item order and results are sorted
//	by support descending, then size ascending, then canonical Key — two
//	runs over the same database always agree, element for element.
//
// Complexity:
//
//   - Per level: O(|L|²) candidate joins plus one index intersection per
//     surviving candidate.
//   - Worst case exponential in the number of distinct items when the
//     threshold is low; the prune step is what keeps realistic inputs flat.
//
// Errors:
//   - ErrNilDatabase      — Mine called on a Miner without a database.
//   - ErrInvalidThreshold — MinSupport outside its documented domain.
//
// See example_test.go for runnable scenarios.
package apriori
