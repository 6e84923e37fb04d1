// Package codes holds the wire code table: the byte values that open every
// encoded value and the ranges whose offset from a zero-point carries a
// small integer or length inline.
package codes

// Packed integers. Each tier is a half-open range [Start, End) with a
// zero-point; the code byte minus the zero-point holds the top bits of the
// value. Single-byte integers are the literal bytes 0x00..0x3F plus 0xFF (-1).
const (
	IntPacked1Start = 0x00
	IntPacked1End   = 0x40
	IntNegOne       = 0xFF

	IntPacked2Start = 0x40
	IntPacked2Zero  = 0x50
	IntPacked2End   = 0x60

	IntPacked3Start = 0x60
	IntPacked3Zero  = 0x68
	IntPacked3End   = 0x70

	IntPacked4Start = 0x70
	IntPacked4Zero  = 0x72
	IntPacked4End   = 0x74

	IntPacked5Start = 0x74
	IntPacked5Zero  = 0x76
	IntPacked5End   = 0x78

	IntPacked6Start = 0x78
	IntPacked6Zero  = 0x7A
	IntPacked6End   = 0x7C

	IntPacked7Start = 0x7C
	IntPacked7Zero  = 0x7E
	IntPacked7End   = 0x80
)

// Cache references.
const (
	PriorityCachePackedStart = 0x80
	PriorityCachePackedEnd   = 0xA0
	StructCachePackedStart   = 0xA0
	StructCachePackedEnd     = 0xB0
)

// Typed arrays.
const (
	LongArray    = 0xB0
	DoubleArray  = 0xB1
	BooleanArray = 0xB2
	IntArray     = 0xB3
	FloatArray   = 0xB4
	ObjectArray  = 0xB5
)

// Collection wrappers and extension tags.
const (
	Map              = 0xC0
	Set              = 0xC1
	UUID             = 0xC3
	Regex            = 0xC4
	URI              = 0xC5
	BigInt           = 0xC6
	BigDec           = 0xC7
	Inst             = 0xC8
	Sym              = 0xC9
	Key              = 0xCA
	GetPriorityCache = 0xCC
	PutPriorityCache = 0xCD
	Precache         = 0xCE
	Footer           = 0xCF
)

// Byte arrays, strings and lists. A packed-length code is Start+length for
// lengths below PackedLengthLimit.
const (
	PackedLengthLimit = 8

	BytesPackedLengthStart = 0xD0
	BytesPackedLengthEnd   = 0xD8
	BytesChunk             = 0xD8
	Bytes                  = 0xD9

	StringPackedLengthStart = 0xDA
	StringPackedLengthEnd   = 0xE2
	StringChunk             = 0xE2
	String                  = 0xE3

	ListPackedLengthStart = 0xE4
	ListPackedLengthEnd   = 0xEC
	List                  = 0xEC
	BeginClosedList       = 0xED
	BeginOpenList         = 0xEE
)

// Scalars, structs and sentinels.
const (
	StructType    = 0xEF
	Struct        = 0xF0
	Meta          = 0xF1
	Any           = 0xF4
	True          = 0xF5
	False         = 0xF6
	Null          = 0xF7
	Int           = 0xF8
	Float         = 0xF9
	Double        = 0xFA
	Double0       = 0xFB
	Double1       = 0xFC
	EndCollection = 0xFD
	ResetCaches   = 0xFE
)

// ByteChunkSize is the largest payload carried by one BytesChunk segment.
const ByteChunkSize = 65535

// StringChunkSize caps the encoded bytes buffered per string segment.
const StringChunkSize = 65536
