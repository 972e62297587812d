package store

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/tbeaumont/lattice-miner/mining"
)

// Binary layout for a stored transaction: u32 item count followed by
// big-endian u32 item codes in canonical order. Big-endian keeps byte
// order aligned with code order so stored values sort like itemsets.

func encodeItemset(set mining.Itemset) []byte {
	buf := make([]byte, 4*(len(set)+1))
	binary.BigEndian.PutUint32(buf[0:4], uint32(len(set)))
	for i, it := range set {
		binary.BigEndian.PutUint32(buf[4*(i+1):4*(i+2)], uint32(it))
	}
	return buf
}

func decodeItemset(buf []byte) (mining.Itemset, error) {
	if len(buf) < 4 {
		return nil, fmt.Errorf("transaction record truncated: %d bytes", len(buf))
	}
	n := int(binary.BigEndian.Uint32(buf[0:4]))
	if len(buf) < 4*(n+1) {
		return nil, fmt.Errorf("transaction record truncated: want %d items, have %d bytes", n, len(buf))
	}
	set := make(mining.Itemset, n)
	for i := 0; i < n; i++ {
		set[i] = mining.Item(binary.BigEndian.Uint32(buf[4*(i+1) : 4*(i+2)]))
	}
	return set, nil
}

// The dictionary is stored as newline-joined names in code order.
// Names never contain newlines; the CSV loader trims them out.

func encodeDictionary(dict *mining.Dictionary) []byte {
	return []byte(strings.Join(dict.Names(), "\n"))
}

func decodeDictionary(buf []byte) *mining.Dictionary {
	if len(buf) == 0 {
		return mining.NewDictionary(nil)
	}
	return mining.NewDictionary(strings.Split(string(buf), "\n"))
}
