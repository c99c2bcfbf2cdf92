package types

import (
	"bytes"
	"encoding/binary"
)

const (
	ColumnUsernameSize = 32
	ColumnEmailSize    = 255
)

// Sizes and offsets of the serialized row. The on-disk slot always holds
// RowSize bytes regardless of the logical string lengths.
const (
	IDSize         = 4
	UsernameSize   = ColumnUsernameSize + 1
	EmailSize      = ColumnEmailSize + 1
	IDOffset       = 0
	UsernameOffset = IDOffset + IDSize
	EmailOffset    = UsernameOffset + UsernameSize
	RowSize        = IDSize + UsernameSize + EmailSize
)

// Row is the single fixed-schema record: users(id, username, email).
// Username and Email are NUL-terminated within their arrays.
type Row struct {
	ID       uint32
	Username [UsernameSize]byte
	Email    [EmailSize]byte
}

func NewRow(id uint32, username, email string) Row {
	var r Row
	r.ID = id
	r.SetUsername(username)
	r.SetEmail(email)
	return r
}

// SetUsername does a bounded copy that always leaves a NUL terminator.
func (r *Row) SetUsername(s string) {
	n := copy(r.Username[:ColumnUsernameSize], s)
	for i := n; i < UsernameSize; i++ {
		r.Username[i] = 0
	}
}

func (r *Row) SetEmail(s string) {
	n := copy(r.Email[:ColumnEmailSize], s)
	for i := n; i < EmailSize; i++ {
		r.Email[i] = 0
	}
}

func (r *Row) UsernameString() string {
	return cString(r.Username[:])
}

func (r *Row) EmailString() string {
	return cString(r.Email[:])
}

func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return string(b[:i])
	}
	return string(b)
}

// SerializeRow writes the row into dst, which must be at least RowSize bytes.
// Integers are little-endian on disk.
func SerializeRow(r *Row, dst []byte) {
	binary.LittleEndian.PutUint32(dst[IDOffset:], r.ID)
	copy(dst[UsernameOffset:UsernameOffset+UsernameSize], r.Username[:])
	copy(dst[EmailOffset:EmailOffset+EmailSize], r.Email[:])
}

// DeserializeRow is the inverse of SerializeRow. The resulting strings are
// guaranteed NUL-terminated.
func DeserializeRow(src []byte, r *Row) {
	r.ID = binary.LittleEndian.Uint32(src[IDOffset:])
	copy(r.Username[:], src[UsernameOffset:UsernameOffset+UsernameSize])
	copy(r.Email[:], src[EmailOffset:EmailOffset+EmailSize])
	r.Username[ColumnUsernameSize] = 0
	r.Email[ColumnEmailSize] = 0
}
