package model

import "fmt"

// Segment is the closed set of market segments a car can belong to.
type Segment string

const (
	SegmentSedan   Segment = "SEDAN"
	SegmentSUV     Segment = "SUV"
	SegmentCompact Segment = "COMPACT"
	SegmentSport   Segment = "SPORT"
	SegmentMinivan Segment = "MINIVAN"
	SegmentPickup  Segment = "PICKUP"
)

// Segments lists every valid segment tag, in declaration order.
func Segments() []Segment {
	return []Segment{
		SegmentSedan,
		SegmentSUV,
		SegmentCompact,
		SegmentSport,
		SegmentMinivan,
		SegmentPickup,
	}
}

// ParseSegment validates a raw tag against the closed segment set.
func ParseSegment(raw string) (Segment, error) {
	for _, s := range Segments() {
		if string(s) == raw {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown segment %q", raw)
}

// IsValid reports whether the segment is one of the enumerated values.
func (s Segment) IsValid() bool {
	_, err := ParseSegment(string(s))
	return err == nil
}
