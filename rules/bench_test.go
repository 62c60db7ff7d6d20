package rules_test

import (
	"fmt"
	"testing"

	"github.com/itemlift/itemlift/apriori"
	"github.com/itemlift/itemlift/itemset"
	"github.com/itemlift/itemlift/rules"
)

// benchmarkGenerate mines a deterministic divisor-structured database once
// and times rule generation alone.
func benchmarkGenerate(b *testing.B, n, items int, minSupport float64) {
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
	m := apriori.NewMiner(itemset.NewDatabase(txs...))
	sets, err := m.Mine(apriori.Options{MinSupport: minSupport, Relative: true})
	if err != nil {
		b.Fatalf("Mine failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rules.Generate(sets, m, 0.5, 0.05); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}

// BenchmarkGenerate_Small scores rules over a 200×12 database.
func BenchmarkGenerate_Small(b *testing.B) {
	benchmarkGenerate(b, 200, 12, 0.1)
}

// BenchmarkGenerate_Medium scores rules over a 2000×16 database.
func BenchmarkGenerate_Medium(b *testing.B) {
	benchmarkGenerate(b, 2000, 16, 0.1)
}
