package todo

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Encode serializes records to the durable JSON form: a two-space
// indented array with a trailing newline. Encoding is deterministic, so
// encoding the same sequence twice yields byte-identical output.
func Encode(items []Todo) ([]byte, error) {
	if items == nil {
		items = []Todo{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode todos: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode parses the durable JSON form back into records. Decoding is
// all-or-nothing: a single malformed record fails the whole decode with
// an error wrapping ErrCorruptFile. Empty input decodes as an empty
// store.
func Decode(data []byte) ([]Todo, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var items []Todo
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptFile, err)
	}

	seen := make(map[int]bool, len(items))
	for i := range items {
		if err := ValidateRecord(&items[i]); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrCorruptFile, i+1, err)
		}
		if seen[items[i].ID] {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrCorruptFile, items[i].ID)
		}
		seen[items[i].ID] = true
	}

	return items, nil
}
