package deck

// pairID indexes one of the four two-way value choices of a layout.
type pairID int8

// valueCode is one entry of a layout's 16-way value decode table: either a
// concrete card value, a reference to an ambiguous pair, or illegal.
type valueCode struct {
	value int    // 1..13 when concrete, 0 otherwise
	pair  pairID // -1 when not ambiguous
}

func concrete(v int) valueCode  { return valueCode{value: v, pair: -1} }
func ambiguous(p int) valueCode { return valueCode{pair: pairID(p)} }
func illegal() valueCode        { return valueCode{pair: -1} }

// PairClass is one ambiguous value pair; Lo < Hi.
type PairClass struct {
	Lo, Hi int
}

// Layout maps a bundle's three value axes onto card values. The 4-bit
// decode index is (ODD << 3) | (X << 2) | (Y << 1) | Z where X, Y, Z are
// the bundle's value axes in file order (the 7K, 8K and 4T labels, which
// the uplus2 variant reinterprets as 92, T2 and 6Q).
type Layout struct {
	Name string

	// AxisNames are the display names of X, Y, Z under this layout.
	AxisNames [3]string

	codes [16]valueCode
	pairs [4]PairClass

	// guaranteed are the predicates supported by construction on any deck
	// decoded under this layout: the suit axes, the parity axis, the
	// complements of the X and Y value axes and the Z value axis itself.
	guaranteed PredicateBits
}

// Pairs returns the layout's ambiguous value pairs.
func (l *Layout) Pairs() [4]PairClass { return l.pairs }

// Guaranteed returns the predicate bits set by construction.
func (l *Layout) Guaranteed() PredicateBits { return l.guaranteed }

// Umake decodes (ODD, 7K, 8K, 4T) bundles. The ambiguous pairs are
// ace/three, four/six, eight/ten and jack/king.
var Umake = &Layout{
	Name:      "umake",
	AxisNames: [3]string{"7K", "8K", "4T"},
	codes: [16]valueCode{
		concrete(2),   // 0000: two
		ambiguous(1),  // 0001: four or six
		illegal(),     // 0010
		illegal(),     // 0011
		illegal(),     // 0100
		illegal(),     // 0101
		concrete(12),  // 0110: queen
		ambiguous(2),  // 0111: eight or ten
		ambiguous(0),  // 1000: ace or three
		concrete(5),   // 1001: five
		illegal(),     // 1010
		illegal(),     // 1011
		illegal(),     // 1100
		concrete(7),   // 1101: seven
		ambiguous(3),  // 1110: jack or king
		concrete(9),   // 1111: nine
	},
	pairs: [4]PairClass{
		{Lo: 1, Hi: 3},
		{Lo: 4, Hi: 6},
		{Lo: 8, Hi: 10},
		{Lo: 11, Hi: 13},
	},
	guaranteed: BitA6 | BitA7 | Bit4T | BitEV | BitHD | BitCD | BitHC,
}

// Uplus2 decodes the same files with the value axes shifted up by two:
// 7K read as 92, 8K as T2, 4T as 6Q. The ambiguous pairs become ace/king,
// three/five, six/eight and ten/queen.
var Uplus2 = &Layout{
	Name:      "uplus2",
	AxisNames: [3]string{"92", "T2", "6Q"},
	codes: [16]valueCode{
		concrete(4),   // 0000: four
		ambiguous(2),  // 0001: six or eight
		illegal(),     // 0010
		illegal(),     // 0011
		illegal(),     // 0100
		illegal(),     // 0101
		concrete(2),   // 0110: two
		ambiguous(3),  // 0111: ten or queen
		ambiguous(1),  // 1000: three or five
		concrete(7),   // 1001: seven
		illegal(),     // 1010
		illegal(),     // 1011
		illegal(),     // 1100
		concrete(9),   // 1101: nine
		ambiguous(0),  // 1110: ace or king
		concrete(11),  // 1111: jack
	},
	pairs: [4]PairClass{
		{Lo: 1, Hi: 13},
		{Lo: 3, Hi: 5},
		{Lo: 6, Hi: 8},
		{Lo: 10, Hi: 12},
	},
	guaranteed: Bit38 | Bit39 | Bit6Q | BitEV | BitHD | BitCD | BitHC,
}

// Layouts lists the supported decode variants by name.
var Layouts = map[string]*Layout{
	Umake.Name:  Umake,
	Uplus2.Name: Uplus2,
}
