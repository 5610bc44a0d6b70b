// SPDX-License-Identifier: MIT

// Package molfile reads MDL V2000 molfiles and SD files into core.Molecule.
//
// Atoms are named "a1".."aN" after their position in the atom block. Aromatic
// bonds (type 4) and query bond types load with an unset order. Charges and
// radicals come from the atom block charge field unless an "M  CHG" or
// "M  RAD" property overrides them; mass numbers come from "M  ISO" and the
// D and T symbols. Implicit hydrogens are filled from default valences
// unless WithoutHydrogenation is given.
//
// V3000 blocks are rejected with ErrUnsupportedVersion. Parse failures wrap
// the package sentinels with the offending line number; use errors.Is.
package molfile
