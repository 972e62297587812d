package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/tbeaumont/lattice-miner/mining"
)

// WriteCSV persists a collection or reducer view as CSV with a header
// row: itemset (comma-joined sorted names), order, count, support.
func WriteCSV(w io.Writer, src mining.ItemsetSource, dict *mining.Dictionary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"itemset", "order", "count", "support"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	total := src.Total()
	for _, e := range src.Entries() {
		row := []string{
			e.Set.Names(dict),
			strconv.Itoa(e.Set.Order()),
			strconv.Itoa(e.Count),
			formatSupport(e.Count, total),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
