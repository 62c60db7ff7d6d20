// Package itemlift is an in-memory toolkit for frequent-pattern mining:
// classical Apriori itemset discovery plus confidence/lift-scored
// association rules.
//
// 🚀 What is itemlift?
//
//	A small, focused library that answers two questions about a collection
//	of transactions (each an unordered set of discrete items):
//		• Which item combinations occur together often enough to matter?
//		• Which implications ("buyers of A also take B") do those
//		  combinations support, and how strongly?
//
// ✨ Why choose itemlift?
//
//   - Beginner-friendly – two entry points, clear thresholds, value results
//   - Deterministic – sorted canonical ordering everywhere, reproducible runs
//   - Pure Go – no cgo, no hidden deps
//   - Exact – absolute counts are retained through pruning, so rule scores
//     never drift
//
// Everything is organized under three subpackages:
//
//	itemset/ — Set and Database primitives (inverted transaction index)
//	apriori/ — level-wise frequent-itemset miner with anti-monotonic pruning
//	rules/   — bipartition enumeration scored by confidence and lift
//
// Quick sketch:
//
//	db := itemset.NewDatabase(
//	    []string{"bread", "milk"},
//	    []string{"bread", "milk", "beer"},
//	)
//	m := apriori.NewMiner(db)
//	sets, _ := m.Mine(apriori.DefaultOptions())
//	rs, _ := rules.Generate(sets, m, 0.8, 1.0)
//
// Dive into the examples/ directory for full market-basket walkthroughs.
//
//	go get github.com/itemlift/itemlift
package itemlift
