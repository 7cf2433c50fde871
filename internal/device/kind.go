// Package device manages the read-only storage regions that element
// accessors are bound to: host copies, read-only file mappings and,
// on windows, WebGPU storage buffers (see the webgpu subpackage).
package device

// Char is the byte/character element type. It is distinct from uint8 so
// that char data binds to its own accessor kind.
type Char byte

// Elem is a constraint for every storable element type.
type Elem interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~int8 | ~int16 | ~int32 | ~int64 |
		~float32 | ~float64
}

// Kind identifies the element kind of a region.
type Kind int

// Supported element kinds.
const (
	Word8 Kind = iota
	Word16
	Word32
	Word64
	Int8
	Int16
	Int32
	Int64
	Float
	Double
	CharKind
)

// Platform word kinds, 32 bits wide on every supported device.
const (
	Word = Word32
	Int  = Int32
)

// Size returns the byte size of one element.
func (k Kind) Size() int {
	switch k {
	case Word8, Int8, CharKind:
		return 1
	case Word16, Int16:
		return 2
	case Word32, Int32, Float:
		return 4
	case Word64, Int64, Double:
		return 8
	default:
		panic("unknown element kind")
	}
}

// Lanes returns the number of 32-bit lanes one element occupies in
// storage: 2 for the 64-bit kinds, 1 otherwise.
func (k Kind) Lanes() int {
	if k.Wide() {
		return 2
	}
	return 1
}

// Align returns the alignment storage of this kind needs: the element size,
// or 4 for the 64-bit kinds, which are read one 32-bit lane at a time.
func (k Kind) Align() int {
	if k.Wide() {
		return 4
	}
	return k.Size()
}

// Wide reports whether the kind is stored as two 32-bit lanes.
func (k Kind) Wide() bool {
	return k == Word64 || k == Int64 || k == Double
}

// Signed reports whether the kind is a signed integer kind.
func (k Kind) Signed() bool {
	switch k {
	case Int8, Int16, Int32, Int64:
		return true
	default:
		return false
	}
}

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Word8:
		return "word8"
	case Word16:
		return "word16"
	case Word32:
		return "word32"
	case Word64:
		return "word64"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float:
		return "float"
	case Double:
		return "double"
	case CharKind:
		return "char"
	default:
		return "unknown"
	}
}

// Kinds lists every element kind in declaration order.
func Kinds() []Kind {
	return []Kind{Word8, Word16, Word32, Word64, Int8, Int16, Int32, Int64, Float, Double, CharKind}
}

// ParseKind returns the kind whose String is name.
func ParseKind(name string) (Kind, bool) {
	for _, k := range Kinds() {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// KindOf returns the kind of element type T.
func KindOf[T Elem]() Kind {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return Word8
	case uint16:
		return Word16
	case uint32:
		return Word32
	case uint64:
		return Word64
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case float32:
		return Float
	case float64:
		return Double
	case Char:
		return CharKind
	default:
		panic("unsupported element type")
	}
}
