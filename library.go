package schematic

import (
	"fmt"

	"github.com/df-mc/goleveldb/leveldb"
)

// Library is a named store of schematics backed by a leveldb database.
// Documents are stored in their encoded form, so a stored file round
// trips byte for byte. A Library is safe for use from a single
// goroutine per the document model; leveldb itself serializes access.
type Library struct {
	db *leveldb.DB
}

// OpenLibrary opens the schematic library in dir, creating it if it
// does not exist.
func OpenLibrary(dir string) (*Library, error) {
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, fmt.Errorf("open schematic library: %w", err)
	}
	return &Library{db: db}, nil
}

// Put encodes the document and stores it under name, replacing any
// previous document with that name.
func (l *Library) Put(name string, s *Schematic) error {
	data, err := s.Encode()
	if err != nil {
		return err
	}
	if err := l.db.Put([]byte(name), data, nil); err != nil {
		return fmt.Errorf("store schematic %q: %w", name, err)
	}
	return nil
}

// Get decodes and returns the document stored under name. A missing
// name surfaces leveldb.ErrNotFound.
func (l *Library) Get(name string) (*Schematic, error) {
	data, err := l.db.Get([]byte(name), nil)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Delete removes the document stored under name. Deleting a missing
// name is not an error.
func (l *Library) Delete(name string) error {
	return l.db.Delete([]byte(name), nil)
}

// Names returns the names of all stored documents.
func (l *Library) Names() ([]string, error) {
	it := l.db.NewIterator(nil, nil)
	defer it.Release()

	var names []string
	for it.Next() {
		names = append(names, string(it.Key()))
	}
	if err := it.Error(); err != nil {
		return nil, fmt.Errorf("list schematics: %w", err)
	}
	return names, nil
}

// Close releases the underlying database.
func (l *Library) Close() error {
	return l.db.Close()
}
