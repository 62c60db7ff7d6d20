// Package itemset provides the core primitives shared by the mining
// packages: an order-free Set of item symbols and an immutable,
// inverted-index Database of transactions.
//
// 🚀 What is itemset?
//
//	The data model underneath frequent-pattern mining:
//	  • Set      — distinct item symbols with subset/union/difference ops
//	  • Database — a transaction store answering "how many transactions
//	    contain this Set?" in one index intersection
//
// ✨ Why a dedicated package?
//
//   - Single source of truth — apriori and rules operate on the same types.
//   - Deterministic iteration — Items() is always sorted ascending, and
//     Key() gives every Set a canonical, order-independent identity usable
//     as a map key.
//   - Immutability discipline — Union/Minus/Clone allocate fresh Sets;
//     a Database never changes after construction.
//
// ⚙️ Usage:
//
//	db := itemset.NewDatabase(
//	    []string{"bread", "milk"},
//	    []string{"bread", "beer", "milk"},
//	)
//	db.Support(itemset.New("bread", "milk")) // → 2
//
// Complexity:
//
//   - Set ops: O(n) in the smaller operand.
//   - Database.Support: O(k·r) where k = items in the query set and
//     r = rows of its rarest item.
//
// See example_test.go for runnable snippets.
package itemset
