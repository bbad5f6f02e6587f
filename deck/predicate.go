package deck

import "math/bits"

// PredicateBits is a mask of supported predicates, one bit per catalog
// entry. A predicate is supported on a deck when its 52-bit indicator
// sequence (one bit per position whose card value is in the predicate's
// value set) is bracelet-valid.
type PredicateBits uint32

const (
	BitA6 PredicateBits = 1 << iota
	BitA7
	Bit27
	Bit28
	Bit38
	Bit39
	Bit49
	Bit4T
	Bit5T
	Bit5J
	Bit6J
	Bit6Q
	Bit7Q
	BitEV
	BitHD
	BitCD
	BitHC
	BitM34
	BitM46
	BitM47
	BitM58
	BitM59
	BitM6Q
	BitPR
	BitFI
	BitLU
)

// Count returns the number of supported predicates.
func (b PredicateBits) Count() int {
	return bits.OnesCount32(uint32(b))
}

// Names returns the names of the set predicates in catalog order.
func (b PredicateBits) Names() []string {
	var names []string
	for _, p := range Catalog {
		if b&p.Bit != 0 {
			names = append(names, p.Name)
		}
	}
	return names
}

// Predicate is one named subset of card values. Special predicates are
// only tested when the realizer is asked for all sequences. The entries
// without values (the suit axes) are set by construction in the realizer
// and not tested there; TestBracelets tests them from the card suits.
type Predicate struct {
	Name    string
	Bit     PredicateBits
	Values  []int
	Special bool
}

// Catalog is the full predicate family, in display order. The consecutive
// ranges are named first-to-last value (A6 = ace..six, 7Q = seven..queen);
// the M ranges drop interior values, PR is the primes, FI the Fibonacci
// and LU the Lucas numbers.
var Catalog = []Predicate{
	{Name: "A6", Bit: BitA6, Values: []int{1, 2, 3, 4, 5, 6}},
	{Name: "A7", Bit: BitA7, Values: []int{1, 2, 3, 4, 5, 6, 7}},
	{Name: "27", Bit: Bit27, Values: []int{2, 3, 4, 5, 6, 7}},
	{Name: "28", Bit: Bit28, Values: []int{2, 3, 4, 5, 6, 7, 8}},
	{Name: "38", Bit: Bit38, Values: []int{3, 4, 5, 6, 7, 8}},
	{Name: "39", Bit: Bit39, Values: []int{3, 4, 5, 6, 7, 8, 9}},
	{Name: "49", Bit: Bit49, Values: []int{4, 5, 6, 7, 8, 9}},
	{Name: "4T", Bit: Bit4T, Values: []int{4, 5, 6, 7, 8, 9, 10}},
	{Name: "5T", Bit: Bit5T, Values: []int{5, 6, 7, 8, 9, 10}},
	{Name: "5J", Bit: Bit5J, Values: []int{5, 6, 7, 8, 9, 10, 11}},
	{Name: "6J", Bit: Bit6J, Values: []int{6, 7, 8, 9, 10, 11}},
	{Name: "6Q", Bit: Bit6Q, Values: []int{6, 7, 8, 9, 10, 11, 12}},
	{Name: "7Q", Bit: Bit7Q, Values: []int{7, 8, 9, 10, 11, 12}},
	{Name: "EV", Bit: BitEV, Values: []int{2, 4, 6, 8, 10, 12}},
	{Name: "HD", Bit: BitHD},
	{Name: "CD", Bit: BitCD},
	{Name: "HC", Bit: BitHC},
	{Name: "M34", Bit: BitM34, Values: []int{3, 4, 6, 8, 9, 12}, Special: true},
	{Name: "M46", Bit: BitM46, Values: []int{4, 5, 6, 8, 10, 12}, Special: true},
	{Name: "M47", Bit: BitM47, Values: []int{4, 5, 6, 7, 8, 10, 12}, Special: true},
	{Name: "M58", Bit: BitM58, Values: []int{5, 6, 7, 8, 10, 12}, Special: true},
	{Name: "M59", Bit: BitM59, Values: []int{5, 6, 7, 8, 9, 10, 12}, Special: true},
	{Name: "M6Q", Bit: BitM6Q, Values: []int{6, 7, 8, 9, 10, 12}, Special: true},
	{Name: "PR", Bit: BitPR, Values: []int{2, 3, 5, 7, 11, 13}, Special: true},
	{Name: "FI", Bit: BitFI, Values: []int{1, 2, 3, 5, 8, 13}, Special: true},
	{Name: "LU", Bit: BitLU, Values: []int{1, 2, 3, 4, 7, 11}, Special: true},
}
