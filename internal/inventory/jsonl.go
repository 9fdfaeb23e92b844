package inventory

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mesh-intelligence/wardrobe/pkg/types"
)

// loadJSONL reads one entry per line. Blank lines are skipped; a line that
// is not a JSON object fails the whole load with its line number.
func loadJSONL(path string) ([]*types.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	items := []*types.Item{}
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		data := scanner.Bytes()
		if len(bytes.TrimSpace(data)) == 0 {
			continue
		}

		var rec record
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("%s:%d: %w: %v", path, line, ErrMalformedEntry, err)
		}
		it, err := rec.toItem()
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, line, err)
		}
		items = append(items, it)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return items, nil
}
