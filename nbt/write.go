package nbt

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
)

// Write serializes a named tag tree to w. Serialization of a well-formed
// tree cannot fail; the only errors returned are those of the writer.
func Write(w io.Writer, name string, root *Compound) error {
	wr := &writer{}
	wr.writeByte(TagCompound)
	wr.writeString(name)
	root.write(wr)
	_, err := w.Write(wr.buf.Bytes())
	return err
}

// Marshal serializes a named tag tree into a fresh byte slice.
func Marshal(name string, root *Compound) []byte {
	wr := &writer{}
	wr.writeByte(TagCompound)
	wr.writeString(name)
	root.write(wr)
	return wr.buf.Bytes()
}

// writer encodes big-endian tag payloads into a buffer.
type writer struct {
	buf bytes.Buffer
}

func (wr *writer) writeByte(b byte) {
	wr.buf.WriteByte(b)
}

func (wr *writer) writeInt16(v int16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], uint16(v))
	wr.buf.Write(b[:])
}

func (wr *writer) writeInt32(v int32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	wr.buf.Write(b[:])
}

func (wr *writer) writeInt64(v int64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	wr.buf.Write(b[:])
}

func (wr *writer) writeString(s string) {
	wr.writeInt16(int16(len(s)))
	wr.buf.WriteString(s)
}

func (t *Byte) write(wr *writer) {
	wr.writeByte(byte(t.Value))
}

func (t *Short) write(wr *writer) {
	wr.writeInt16(t.Value)
}

func (t *Int) write(wr *writer) {
	wr.writeInt32(t.Value)
}

func (t *Long) write(wr *writer) {
	wr.writeInt64(t.Value)
}

func (t *Float) write(wr *writer) {
	wr.writeInt32(int32(math.Float32bits(t.Value)))
}

func (t *Double) write(wr *writer) {
	wr.writeInt64(int64(math.Float64bits(t.Value)))
}

func (t *ByteArray) write(wr *writer) {
	wr.writeInt32(int32(len(t.Value)))
	wr.buf.Write(t.Value)
}

func (t *String) write(wr *writer) {
	wr.writeString(t.Value)
}

func (t *List) write(wr *writer) {
	wr.writeByte(t.ElemID)
	wr.writeInt32(int32(len(t.Elems)))
	for _, elem := range t.Elems {
		elem.write(wr)
	}
}

func (c *Compound) write(wr *writer) {
	for _, name := range c.names {
		tag := c.tags[name]
		wr.writeByte(tag.ID())
		wr.writeString(name)
		tag.write(wr)
	}
	wr.writeByte(TagEnd)
}
