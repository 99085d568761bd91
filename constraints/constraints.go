package constraints

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Integer interface {
	Signed | Unsigned
}

type Float interface {
	~float32 | ~float64
}

// Numeric is any type that supports the arithmetic operators
type Numeric interface {
	Integer | Float
}

// Ordered is any type that supports the comparison operators
type Ordered interface {
	Integer | Float | ~string
}
