package item

// Key is the packed identity of a (column, value) pair.
type Key uint64

// ComputeKey packs column and value into a Key without constructing an Item.
func ComputeKey(column, value int32) Key {
	return Key(uint64(uint32(column))<<32 | uint64(uint32(value)))
}

// Column returns the column half of the key.
func (k Key) Column() int32 {
	return int32(uint32(k >> 32))
}

// Value returns the value half of the key.
func (k Key) Value() int32 {
	return int32(uint32(k))
}

// Identity is the comparable identity record of an item.
// It can be used directly as a Go map key.
type Identity struct {
	Column int32
	Value  int32
}

// Key returns the packed form of the identity.
func (id Identity) Key() Key {
	return ComputeKey(id.Column, id.Value)
}

// Hash returns the hash an Item with this identity reports.
func (id Identity) Hash() uint32 {
	// Wrapping int32 arithmetic.
	return uint32((31+id.Column)*31 + id.Value)
}
