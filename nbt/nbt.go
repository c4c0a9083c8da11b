// Package nbt implements the big-endian binary tag format used by
// schematic files: a tree of typed, named nodes rooted in a compound.
//
// The package keeps a concrete node type per wire tag rather than
// mapping onto native Go values, so a parsed tree serializes back to
// the exact bytes it was read from.
package nbt

import (
	"errors"
	"fmt"
)

// Tag type markers as they appear on the wire.
const (
	TagEnd byte = iota
	TagByte
	TagShort
	TagInt
	TagLong
	TagFloat
	TagDouble
	TagByteArray
	TagString
	TagList
	TagCompound
)

// ErrMalformed is wrapped by every parse failure: unknown type markers,
// declared lengths that exceed the remaining input, and unterminated
// compounds.
var ErrMalformed = errors.New("nbt: malformed tag data")

// ErrTagNotFound is wrapped by compound accessors when a tag with the
// requested name and type is not present.
var ErrTagNotFound = errors.New("nbt: tag not found")

// Tag is a single node of the tag tree.
type Tag interface {
	// ID returns the wire type marker of the tag.
	ID() byte
	read(r *reader) error
	write(w *writer)
}

// Byte is a signed 8-bit integer tag.
type Byte struct {
	Value int8
}

// Short is a signed 16-bit integer tag.
type Short struct {
	Value int16
}

// Int is a signed 32-bit integer tag.
type Int struct {
	Value int32
}

// Long is a signed 64-bit integer tag.
type Long struct {
	Value int64
}

// Float is a 32-bit IEEE 754 floating point tag.
type Float struct {
	Value float32
}

// Double is a 64-bit IEEE 754 floating point tag.
type Double struct {
	Value float64
}

// ByteArray is a raw buffer tag, one unsigned byte per element.
type ByteArray struct {
	Value []byte
}

// String is a length-prefixed UTF-8 string tag.
type String struct {
	Value string
}

// List is a sequence of unnamed tags sharing a single element type.
type List struct {
	// ElemID is the wire type marker shared by all elements. A list
	// with no elements may use TagEnd as its element type.
	ElemID byte
	Elems  []Tag
}

// Compound is a mapping of unique names to tags. It remembers insertion
// order so that writing a parsed compound reproduces its input bytes.
type Compound struct {
	names []string
	tags  map[string]Tag
}

// NewCompound creates an empty compound tag.
func NewCompound() *Compound {
	return &Compound{tags: make(map[string]Tag)}
}

// Set stores tag under name, replacing any previous tag with that name.
// The position of a replaced entry is retained.
func (c *Compound) Set(name string, tag Tag) {
	if c.tags == nil {
		c.tags = make(map[string]Tag)
	}
	if _, ok := c.tags[name]; !ok {
		c.names = append(c.names, name)
	}
	c.tags[name] = tag
}

// Get returns the tag stored under name.
func (c *Compound) Get(name string) (Tag, bool) {
	tag, ok := c.tags[name]
	return tag, ok
}

// Names returns the entry names in insertion order.
func (c *Compound) Names() []string {
	return append([]string(nil), c.names...)
}

// Len returns the number of entries in the compound.
func (c *Compound) Len() int {
	return len(c.names)
}

// Byte returns the value of the byte tag stored under name.
func (c *Compound) Byte(name string) (int8, error) {
	tag, ok := c.tags[name].(*Byte)
	if !ok {
		return 0, fmt.Errorf("%w: byte %q", ErrTagNotFound, name)
	}
	return tag.Value, nil
}

// Short returns the value of the short tag stored under name.
func (c *Compound) Short(name string) (int16, error) {
	tag, ok := c.tags[name].(*Short)
	if !ok {
		return 0, fmt.Errorf("%w: short %q", ErrTagNotFound, name)
	}
	return tag.Value, nil
}

// Int returns the value of the int tag stored under name.
func (c *Compound) Int(name string) (int32, error) {
	tag, ok := c.tags[name].(*Int)
	if !ok {
		return 0, fmt.Errorf("%w: int %q", ErrTagNotFound, name)
	}
	return tag.Value, nil
}

// String returns the value of the string tag stored under name.
func (c *Compound) String(name string) (string, error) {
	tag, ok := c.tags[name].(*String)
	if !ok {
		return "", fmt.Errorf("%w: string %q", ErrTagNotFound, name)
	}
	return tag.Value, nil
}

// ByteArray returns the value of the byte-array tag stored under name.
func (c *Compound) ByteArray(name string) ([]byte, error) {
	tag, ok := c.tags[name].(*ByteArray)
	if !ok {
		return nil, fmt.Errorf("%w: byte array %q", ErrTagNotFound, name)
	}
	return tag.Value, nil
}

// Compound returns the compound tag stored under name.
func (c *Compound) Compound(name string) (*Compound, error) {
	tag, ok := c.tags[name].(*Compound)
	if !ok {
		return nil, fmt.Errorf("%w: compound %q", ErrTagNotFound, name)
	}
	return tag, nil
}

// List returns the list tag stored under name.
func (c *Compound) List(name string) (*List, error) {
	tag, ok := c.tags[name].(*List)
	if !ok {
		return nil, fmt.Errorf("%w: list %q", ErrTagNotFound, name)
	}
	return tag, nil
}

// ID returns TagByte.
func (*Byte) ID() byte { return TagByte }

// ID returns TagShort.
func (*Short) ID() byte { return TagShort }

// ID returns TagInt.
func (*Int) ID() byte { return TagInt }

// ID returns TagLong.
func (*Long) ID() byte { return TagLong }

// ID returns TagFloat.
func (*Float) ID() byte { return TagFloat }

// ID returns TagDouble.
func (*Double) ID() byte { return TagDouble }

// ID returns TagByteArray.
func (*ByteArray) ID() byte { return TagByteArray }

// ID returns TagString.
func (*String) ID() byte { return TagString }

// ID returns TagList.
func (*List) ID() byte { return TagList }

// ID returns TagCompound.
func (*Compound) ID() byte { return TagCompound }

// newTag creates an empty tag of the given wire type.
func newTag(id byte) (Tag, error) {
	switch id {
	case TagByte:
		return &Byte{}, nil
	case TagShort:
		return &Short{}, nil
	case TagInt:
		return &Int{}, nil
	case TagLong:
		return &Long{}, nil
	case TagFloat:
		return &Float{}, nil
	case TagDouble:
		return &Double{}, nil
	case TagByteArray:
		return &ByteArray{}, nil
	case TagString:
		return &String{}, nil
	case TagList:
		return &List{}, nil
	case TagCompound:
		return NewCompound(), nil
	default:
		return nil, fmt.Errorf("%w: unknown tag type %#x", ErrMalformed, id)
	}
}
