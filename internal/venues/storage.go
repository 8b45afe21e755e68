package venues

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/klabast/ledig-bane/internal/availability"
)

// LoadFile reads a JSON array of venues. An empty path selects the built-in table.
func LoadFile(path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open venues file: %w", err)
	}
	defer file.Close()

	return Load(file)
}

// Load decodes a JSON array of venues from r
func Load(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read venues: %w", err)
	}

	var list []availability.Venue
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse venues: %w", err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("venues file contains no venues")
	}

	return NewTable(list)
}
