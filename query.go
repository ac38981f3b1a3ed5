package cashbook

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query returns the transactions of txs selected by the JSONPath expression
// expr, evaluated on the JSON array of txs. For instance
//
//	$[?(@.price < 0)]
//	$[?(@.type == "rent")]
//
// Selected values must be transaction objects; the result keeps the order of
// txs.
func Query(txs []Transaction, expr string) ([]Transaction, error) {
	if txs == nil {
		txs = []Transaction{}
	}
	raw, err := json.Marshal(txs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transactions: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transactions: %w", err)
	}
	res, err := jsonpath.Get(expr, doc)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", expr, err)
	}

	selected := make(map[string]bool)
	var collect func(v any)
	collect = func(v any) {
		switch v := v.(type) {
		case []any:
			for _, e := range v {
				collect(e)
			}
		case map[string]any:
			if id, ok := v["id"].(string); ok {
				selected[id] = true
			}
		}
	}
	collect(res)

	var out []Transaction
	for _, tx := range txs {
		if selected[tx.ID.String()] {
			out = append(out, tx)
		}
	}
	return out, nil
}
