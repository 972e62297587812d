package report

import (
	"io"

	"github.com/goccy/go-json"

	"github.com/tbeaumont/lattice-miner/mining"
)

// itemsetRecord is the JSON shape of one mined itemset.
type itemsetRecord struct {
	Items   []string `json:"items"`
	Order   int      `json:"order"`
	Count   int      `json:"count"`
	Support float64  `json:"support"`
}

type collectionRecord struct {
	Transactions int             `json:"transactions"`
	Itemsets     []itemsetRecord `json:"itemsets"`
}

// WriteJSON exports a collection or reducer view as JSON. Items appear
// as name arrays in canonical order; support is the derived fraction.
func WriteJSON(w io.Writer, src mining.ItemsetSource, dict *mining.Dictionary) error {
	entries := src.Entries()
	total := src.Total()

	rec := collectionRecord{
		Transactions: total,
		Itemsets:     make([]itemsetRecord, 0, len(entries)),
	}
	for _, e := range entries {
		items := make([]string, e.Set.Order())
		for i, it := range e.Set {
			items[i] = dict.Name(it)
		}
		support := 0.0
		if total > 0 {
			support = float64(e.Count) / float64(total)
		}
		rec.Itemsets = append(rec.Itemsets, itemsetRecord{
			Items:   items,
			Order:   e.Set.Order(),
			Count:   e.Count,
			Support: support,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}
