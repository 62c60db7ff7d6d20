// Package apriori defines options, result types, and error sentinels for
// frequent-itemset mining.
package apriori

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/itemlift/itemlift/itemset"
)

// Sentinel errors for mining.
var (
	// ErrNilDatabase indicates Mine was invoked without a transaction database.
	ErrNilDatabase = errors.New("apriori: database is nil")

	// ErrInvalidThreshold indicates MinSupport lies outside its documented
	// domain: [0.0, 1.0] in relative mode, an integer in [0, total
	// transactions] in absolute mode.
	ErrInvalidThreshold = errors.New("apriori: minimum support out of range")
)

// Options configures a mining run.
type Options struct {
	// MinSupport is the support threshold, interpreted according to
	// Relative. The bound is inclusive: support == threshold qualifies.
	MinSupport float64

	// Relative selects the unit of MinSupport: a frequency in [0.0, 1.0]
	// when true, an absolute transaction count when false.
	Relative bool

	// Prune, when true, reduces the result to maximal frequent itemsets:
	// no reported itemset is a proper subset of another reported itemset.
	// When false, every frequent itemset of every size is reported,
	// single items included.
	Prune bool
}

// DefaultOptions returns the conventional thresholds:
// relative support 0.5, maximality pruning enabled.
func DefaultOptions() Options {
	return Options{
		MinSupport: 0.5,
		Relative:   true,
		Prune:      true,
	}
}

// FrequentItemSet pairs an itemset with its support in the mined database.
//
// Support is always the absolute transaction count, even when the run was
// thresholded in relative terms, so downstream rule scoring works on exact
// counts. RelativeSupport carries the same value as a frequency.
type FrequentItemSet struct {
	Items           itemset.Set
	Support         int
	RelativeSupport float64
}

// String renders the itemset as "a, b -> 75% (3)".
func (f FrequentItemSet) String() string {
	return fmt.Sprintf("%s -> %s%% (%d)",
		strings.Join(f.Items.Items(), ", "),
		trimFloat(f.RelativeSupport*100),
		f.Support,
	)
}

// trimFloat formats v rounded to three decimals without trailing zeros,
// so 75.0 prints as "75" and 66.666… as "66.667".
func trimFloat(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}
