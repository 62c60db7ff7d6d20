package itemset

import "sort"

// Database is an immutable, in-memory transaction store.
//
// Transactions are indexed once at construction into an inverted index
// (item → set of transaction rows), so the support of any item
// combination is the size of the intersection of its per-item row sets.
// A Database never changes after NewDatabase returns, which makes it safe
// to share between concurrent mining sessions.
type Database struct {
	// index maps each distinct item to the rows of the transactions
	// containing it.
	index map[string]map[int]struct{}

	// total is the number of transactions supplied, empty ones included.
	total int

	// maxLen is the size of the largest transaction after deduplication.
	maxLen int
}

// NewDatabase indexes the given transactions.
//
// Duplicate items within one transaction count once. Empty transactions
// are valid: they raise the total without contributing any items.
func NewDatabase(transactions ...[]string) *Database {
	db := &Database{
		index: make(map[string]map[int]struct{}),
		total: len(transactions),
	}

	for row, tx := range transactions {
		distinct := 0
		for _, item := range tx {
			rows, ok := db.index[item]
			if !ok {
				rows = make(map[int]struct{})
				db.index[item] = rows
			}
			if _, seen := rows[row]; !seen {
				rows[row] = struct{}{}
				distinct++
			}
		}
		if distinct > db.maxLen {
			db.maxLen = distinct
		}
	}

	return db
}

// Len returns the total number of transactions, empty ones included.
func (db *Database) Len() int {
	return db.total
}

// MaxTransactionLen returns the number of distinct items in the largest
// transaction. No itemset larger than this can have non-zero support.
func (db *Database) MaxTransactionLen() int {
	return db.maxLen
}

// Items returns every distinct item in the database, ascending.
func (db *Database) Items() []string {
	out := make([]string, 0, len(db.index))
	for item := range db.index {
		out = append(out, item)
	}
	sort.Strings(out)

	return out
}

// Rows returns how many transactions contain item. Unknown items yield 0.
func (db *Database) Rows(item string) int {
	return len(db.index[item])
}

// Support returns the number of transactions containing s as a subset.
//
// The empty Set is contained in every transaction, so Support(New())
// equals Len(). Any item absent from the index forces 0.
//
// Complexity: O(k·r) — the rarest item's rows are walked once and probed
// against the remaining k-1 row sets.
func (db *Database) Support(s Set) int {
	if len(s) == 0 {
		return db.total
	}

	// Gather row sets, smallest first; bail out on an unknown item.
	rowSets := make([]map[int]struct{}, 0, len(s))
	for item := range s {
		rows, ok := db.index[item]
		if !ok {
			return 0
		}
		rowSets = append(rowSets, rows)
	}
	sort.Slice(rowSets, func(i, j int) bool { return len(rowSets[i]) < len(rowSets[j]) })

	support := 0
	for row := range rowSets[0] {
		contained := true
		for _, rows := range rowSets[1:] {
			if _, ok := rows[row]; !ok {
				contained = false
				break
			}
		}
		if contained {
			support++
		}
	}

	return support
}
