package main

import (
	"encoding/json"
	"os"
	"strings"
)

func encodeJSONToStdout(value any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func joinTags(tags []string) string {
	return strings.Join(tags, ",")
}
