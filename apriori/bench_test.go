package apriori_test

import (
	"fmt"
	"testing"

	"github.com/itemlift/itemlift/apriori"
	"github.com/itemlift/itemlift/itemset"
)

// syntheticDB builds a deterministic database of n transactions over a
// vocabulary of `items` products. Each transaction takes every item whose
// index divides its row, so co-occurrence structure is dense enough to
// drive multi-level mining without randomness.
func syntheticDB(n, items int) *itemset.Database {
	txs := make([][]string, n)
	for row := 0; row < n; row++ {
		var tx []string
		for i := 1; i <= items; i++ {
			if (row+1)%i == 0 {
				tx = append(tx, fmt.Sprintf("item%02d", i))
			}
		}
		txs[row] = tx
	}

	return itemset.NewDatabase(txs...)
}

// benchmarkMine runs Mine over a prepared database with the given options.
func benchmarkMine(b *testing.B, n, items int, opts apriori.Options) {
	db := syntheticDB(n, items)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := apriori.NewMiner(db)
		if _, err := m.Mine(opts); err != nil {
			b.Fatalf("Mine failed: %v", err)
		}
	}
}

// BenchmarkMine_SmallPruned benchmarks a pruned run over 200 transactions
// and 12 distinct items.
func BenchmarkMine_SmallPruned(b *testing.B) {
	benchmarkMine(b, 200, 12, apriori.Options{MinSupport: 0.1, Relative: true, Prune: true})
}

// BenchmarkMine_SmallUnpruned benchmarks the same run with the full
// multi-level report.
func BenchmarkMine_SmallUnpruned(b *testing.B) {
	benchmarkMine(b, 200, 12, apriori.Options{MinSupport: 0.1, Relative: true})
}

// BenchmarkMine_MediumAbsolute benchmarks an absolute-threshold run over
// 2000 transactions and 16 distinct items.
func BenchmarkMine_MediumAbsolute(b *testing.B) {
	benchmarkMine(b, 2000, 16, apriori.Options{MinSupport: 250, Prune: true})
}
