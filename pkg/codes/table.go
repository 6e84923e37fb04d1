package codes

import "fmt"

// Tag is the decode routine a code byte selects.
type Tag uint8

const (
	TagUnmatched Tag = iota
	TagInt1
	TagInt2
	TagInt3
	TagInt4
	TagInt5
	TagInt6
	TagInt7
	TagInt
	TagNull
	TagTrue
	TagFalse
	TagFloat
	TagDouble
	TagDouble0
	TagDouble1
	TagBytesPacked
	TagBytesChunk
	TagBytes
	TagStringPacked
	TagStringChunk
	TagString
	TagListPacked
	TagList
	TagBeginClosedList
	TagBeginOpenList
	TagEndCollection
	TagMap
	TagSet
	TagPriorityCache
	TagStructCache
	TagTypedArray
	TagExtension
	TagCacheControl
	TagStruct
)

var tagNames = [...]string{
	TagUnmatched:       "unmatched",
	TagInt1:            "int/1",
	TagInt2:            "int/2",
	TagInt3:            "int/3",
	TagInt4:            "int/4",
	TagInt5:            "int/5",
	TagInt6:            "int/6",
	TagInt7:            "int/7",
	TagInt:             "int",
	TagNull:            "null",
	TagTrue:            "true",
	TagFalse:           "false",
	TagFloat:           "float",
	TagDouble:          "double",
	TagDouble0:         "double/0",
	TagDouble1:         "double/1",
	TagBytesPacked:     "bytes/packed",
	TagBytesChunk:      "bytes/chunk",
	TagBytes:           "bytes",
	TagStringPacked:    "string/packed",
	TagStringChunk:     "string/chunk",
	TagString:          "string",
	TagListPacked:      "list/packed",
	TagList:            "list",
	TagBeginClosedList: "list/closed",
	TagBeginOpenList:   "list/open",
	TagEndCollection:   "end",
	TagMap:             "map",
	TagSet:             "set",
	TagPriorityCache:   "cache/priority",
	TagStructCache:     "cache/struct",
	TagTypedArray:      "array",
	TagExtension:       "extension",
	TagCacheControl:    "cache/control",
	TagStruct:          "struct",
}

func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return fmt.Sprintf("Tag(%d)", uint8(t))
}

// IsInt reports whether t is one of the integer forms.
func (t Tag) IsInt() bool { return t >= TagInt1 && t <= TagInt }

// Rule maps the inclusive byte range [Lo, Hi] to a Tag.
type Rule struct {
	Lo, Hi byte
	Tag    Tag
}

// Rules is the decode table, checked in order. Ranges are disjoint so the
// order only fixes precedence for readers of the table, not the outcome.
var Rules = [...]Rule{
	{IntPacked1Start, IntPacked1End - 1, TagInt1},
	{IntNegOne, IntNegOne, TagInt1},
	{IntPacked2Start, IntPacked2End - 1, TagInt2},
	{IntPacked3Start, IntPacked3End - 1, TagInt3},
	{IntPacked4Start, IntPacked4End - 1, TagInt4},
	{IntPacked5Start, IntPacked5End - 1, TagInt5},
	{IntPacked6Start, IntPacked6End - 1, TagInt6},
	{IntPacked7Start, IntPacked7End - 1, TagInt7},
	{Int, Int, TagInt},
	{Null, Null, TagNull},
	{True, True, TagTrue},
	{False, False, TagFalse},
	{Float, Float, TagFloat},
	{Double, Double, TagDouble},
	{Double0, Double0, TagDouble0},
	{Double1, Double1, TagDouble1},
	{BytesPackedLengthStart, BytesPackedLengthEnd - 1, TagBytesPacked},
	{BytesChunk, BytesChunk, TagBytesChunk},
	{Bytes, Bytes, TagBytes},
	{StringPackedLengthStart, StringPackedLengthEnd - 1, TagStringPacked},
	{StringChunk, StringChunk, TagStringChunk},
	{String, String, TagString},
	{ListPackedLengthStart, ListPackedLengthEnd - 1, TagListPacked},
	{List, List, TagList},
	{BeginClosedList, BeginClosedList, TagBeginClosedList},
	{BeginOpenList, BeginOpenList, TagBeginOpenList},
	{EndCollection, EndCollection, TagEndCollection},
	{Map, Map, TagMap},
	{Set, Set, TagSet},
	{PriorityCachePackedStart, PriorityCachePackedEnd - 1, TagPriorityCache},
	{StructCachePackedStart, StructCachePackedEnd - 1, TagStructCache},
	{LongArray, ObjectArray, TagTypedArray},
	{UUID, Key, TagExtension},
	{GetPriorityCache, Footer, TagCacheControl},
	{ResetCaches, ResetCaches, TagCacheControl},
	{StructType, Meta, TagStruct},
	{Any, Any, TagStruct},
}

// lookup is Rules expanded to one entry per byte value.
var lookup = func() (t [256]Tag) {
	for _, r := range Rules {
		for b := int(r.Lo); b <= int(r.Hi); b++ {
			t[b] = r.Tag
		}
	}
	return t
}()

// Classify returns the Tag selected by code, or TagUnmatched.
func Classify(code byte) Tag {
	return lookup[code]
}
