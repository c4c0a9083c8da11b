package schematic

import (
	"fmt"
	"os"
)

// Load reads and decodes the schematic file at path.
func Load(path string) (*Schematic, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load schematic: %w", err)
	}
	return Decode(data)
}

// Save encodes the document and writes it to path. The write is
// all-or-nothing at the filesystem boundary; no partial recovery is
// attempted.
func (s *Schematic) Save(path string) error {
	data, err := s.Encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("save schematic: %w", err)
	}
	return nil
}
