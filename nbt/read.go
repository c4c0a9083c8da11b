package nbt

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// maxArrayLen caps the declared length of byte arrays, strings and
// lists. It exists so a corrupt length prefix cannot trigger a huge
// allocation before the short read is noticed.
const maxArrayLen = 1 << 26

// Read reads one named tag tree from r. The root must be a compound;
// its name is returned alongside the tree. Failures wrap ErrMalformed.
func Read(r io.Reader) (string, *Compound, error) {
	rd := &reader{r: r}

	id, err := rd.readByte()
	if err != nil {
		return "", nil, fmt.Errorf("read root type: %w", err)
	}
	if id != TagCompound {
		return "", nil, fmt.Errorf("%w: root tag type %#x, want compound", ErrMalformed, id)
	}
	name, err := rd.readString()
	if err != nil {
		return "", nil, fmt.Errorf("read root name: %w", err)
	}

	root := NewCompound()
	if err := root.read(rd); err != nil {
		return "", nil, err
	}
	return name, root, nil
}

// Unmarshal parses a serialized tag tree held entirely in memory.
func Unmarshal(data []byte) (string, *Compound, error) {
	return Read(bytes.NewReader(data))
}

// reader decodes big-endian tag payloads from an io.Reader.
type reader struct {
	r io.Reader
}

func (rd *reader) readByte() (byte, error) {
	var b [1]byte
	if _, err := io.ReadFull(rd.r, b[:]); err != nil {
		return 0, fmt.Errorf("%w: unexpected end of input", ErrMalformed)
	}
	return b[0], nil
}

func (rd *reader) readN(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(rd.r, buf); err != nil {
		return nil, fmt.Errorf("%w: unexpected end of input", ErrMalformed)
	}
	return buf, nil
}

func (rd *reader) readInt16() (int16, error) {
	buf, err := rd.readN(2)
	if err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(buf)), nil
}

func (rd *reader) readInt32() (int32, error) {
	buf, err := rd.readN(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(buf)), nil
}

func (rd *reader) readInt64() (int64, error) {
	buf, err := rd.readN(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(buf)), nil
}

func (rd *reader) readString() (string, error) {
	length, err := rd.readInt16()
	if err != nil {
		return "", err
	}
	if length < 0 {
		return "", fmt.Errorf("%w: negative string length %d", ErrMalformed, length)
	}
	buf, err := rd.readN(int(length))
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

func (t *Byte) read(rd *reader) error {
	b, err := rd.readByte()
	if err != nil {
		return err
	}
	t.Value = int8(b)
	return nil
}

func (t *Short) read(rd *reader) error {
	v, err := rd.readInt16()
	if err != nil {
		return err
	}
	t.Value = v
	return nil
}

func (t *Int) read(rd *reader) error {
	v, err := rd.readInt32()
	if err != nil {
		return err
	}
	t.Value = v
	return nil
}

func (t *Long) read(rd *reader) error {
	v, err := rd.readInt64()
	if err != nil {
		return err
	}
	t.Value = v
	return nil
}

func (t *Float) read(rd *reader) error {
	v, err := rd.readInt32()
	if err != nil {
		return err
	}
	t.Value = math.Float32frombits(uint32(v))
	return nil
}

func (t *Double) read(rd *reader) error {
	v, err := rd.readInt64()
	if err != nil {
		return err
	}
	t.Value = math.Float64frombits(uint64(v))
	return nil
}

func (t *ByteArray) read(rd *reader) error {
	length, err := rd.readInt32()
	if err != nil {
		return err
	}
	if length < 0 || length > maxArrayLen {
		return fmt.Errorf("%w: invalid byte array length %d", ErrMalformed, length)
	}
	buf, err := rd.readN(int(length))
	if err != nil {
		return err
	}
	t.Value = buf
	return nil
}

func (t *String) read(rd *reader) error {
	v, err := rd.readString()
	if err != nil {
		return err
	}
	t.Value = v
	return nil
}

func (t *List) read(rd *reader) error {
	elemID, err := rd.readByte()
	if err != nil {
		return err
	}
	length, err := rd.readInt32()
	if err != nil {
		return err
	}
	if length < 0 || length > maxArrayLen {
		return fmt.Errorf("%w: invalid list length %d", ErrMalformed, length)
	}
	if elemID == TagEnd && length > 0 {
		return fmt.Errorf("%w: non-empty list of end tags", ErrMalformed)
	}

	elems := make([]Tag, length)
	for i := range elems {
		elem, err := newTag(elemID)
		if err != nil {
			return err
		}
		if err := elem.read(rd); err != nil {
			return fmt.Errorf("list element %d: %w", i, err)
		}
		elems[i] = elem
	}
	t.ElemID = elemID
	t.Elems = elems
	return nil
}

func (c *Compound) read(rd *reader) error {
	for {
		id, err := rd.readByte()
		if err != nil {
			// The terminating end tag never arrived.
			return fmt.Errorf("unterminated compound: %w", err)
		}
		if id == TagEnd {
			return nil
		}

		name, err := rd.readString()
		if err != nil {
			return err
		}
		if _, ok := c.tags[name]; ok {
			return fmt.Errorf("%w: duplicate compound entry %q", ErrMalformed, name)
		}

		tag, err := newTag(id)
		if err != nil {
			return err
		}
		if err := tag.read(rd); err != nil {
			return fmt.Errorf("entry %q: %w", name, err)
		}
		c.Set(name, tag)
	}
}
