package dictionary

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/japaniel/lexis/pkg/lexicon"
)

const exportVersion = 1

type exportFile struct {
	Version int            `json:"version"`
	Items   []lexicon.Item `json:"items"`
}

// Export writes every item of l as JSON in store order.
func Export(w io.Writer, l *lexicon.Lexicon) error {
	out := exportFile{Version: exportVersion, Items: make([]lexicon.Item, 0, l.Len())}
	for pos := 0; pos < l.Len(); pos++ {
		it, err := l.ItemAt(pos)
		if err != nil {
			return err
		}
		out.Items = append(out.Items, it)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	return nil
}

// ReadExport decodes a file written by Export.
func ReadExport(r io.Reader) ([]lexicon.Item, error) {
	var in exportFile
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("decode export: %w", err)
	}
	if in.Version != exportVersion {
		return nil, fmt.Errorf("unsupported export version %d", in.Version)
	}
	return in.Items, nil
}
