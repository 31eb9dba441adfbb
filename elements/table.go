package elements

// builtinRadii holds single-bond covalent radii (Å) for a common subset of
// the periodic table — enough to cover typical inorganic test structures
// (oxides, halides, common metals and semiconductors), not a complete
// 118-element database (spec explicitly scopes the full table out of this
// module's core).
var builtinRadii = map[int]float64{
	1:  0.31, // H
	2:  0.28, // He
	3:  1.28, // Li
	4:  0.96, // Be
	5:  0.84, // B
	6:  0.76, // C
	7:  0.71, // N
	8:  0.66, // O
	9:  0.57, // F
	10: 0.58, // Ne
	11: 1.66, // Na
	12: 1.41, // Mg
	13: 1.21, // Al
	14: 1.11, // Si
	15: 1.07, // P
	16: 1.05, // S
	17: 1.02, // Cl
	18: 1.06, // Ar
	19: 2.03, // K
	20: 1.76, // Ca
	21: 1.70, // Sc
	22: 1.60, // Ti
	23: 1.53, // V
	24: 1.39, // Cr
	25: 1.39, // Mn
	26: 1.32, // Fe
	27: 1.26, // Co
	28: 1.24, // Ni
	29: 1.32, // Cu
	30: 1.22, // Zn
	31: 1.22, // Ga
	32: 1.20, // Ge
	33: 1.19, // As
	34: 1.20, // Se
	35: 1.20, // Br
	36: 1.16, // Kr
	37: 2.20, // Rb
	38: 1.95, // Sr
	39: 1.90, // Y
	40: 1.75, // Zr
	41: 1.64, // Nb
	42: 1.54, // Mo
	47: 1.45, // Ag
	48: 1.44, // Cd
	49: 1.42, // In
	50: 1.39, // Sn
	51: 1.39, // Sb
	53: 1.39, // I
	56: 2.15, // Ba
	74: 1.62, // W
	78: 1.36, // Pt
	79: 1.36, // Au
	82: 1.46, // Pb
}

// fallbackRadius is used for an atomic number absent from builtinRadii and
// not covered by a manual override — a deliberately conservative generic
// single-bond radius rather than zero, which would let that species defeat
// every IAD check outright.
const fallbackRadius = 1.0
