// SPDX-License-Identifier: MIT
package molfile

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/molhash/core"
)

// headerLines precede the counts line.
const headerLines = 3

type atomLine struct {
	symbol   string
	mass     int
	charge   int
	radicals int
	aromatic bool
}

type bondLine struct {
	begin, end int
	order      core.BondOrder
	aromatic   bool
}

// parseRecord builds a molecule from the lines of one record. first is the
// input line number of lines[0].
func parseRecord(lines []string, first int, hydrogenate bool) (*Record, error) {
	if len(lines) <= headerLines {
		return nil, errors.Wrapf(ErrTruncated, "line %d: no counts line", first+len(lines))
	}
	counts := lines[headerLines]
	countsAt := first + headerLines
	if strings.Contains(counts, "V3000") {
		return nil, errors.Wrapf(ErrUnsupportedVersion, "line %d", countsAt)
	}
	nAtoms, errA := column(counts, 0, 3)
	nBonds, errB := column(counts, 3, 6)
	if errA != nil || errB != nil || nAtoms < 0 || nBonds < 0 {
		return nil, errors.Wrapf(ErrBadCounts, "line %d: %q", countsAt, counts)
	}

	atomsAt := headerLines + 1
	bondsAt := atomsAt + nAtoms
	propsAt := bondsAt + nBonds
	if len(lines) < propsAt {
		return nil, errors.Wrapf(ErrTruncated, "line %d: expected %d atoms and %d bonds", first+len(lines), nAtoms, nBonds)
	}

	atoms := make([]atomLine, nAtoms)
	for i := range atoms {
		a, err := parseAtom(lines[atomsAt+i])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", first+atomsAt+i)
		}
		atoms[i] = a
	}
	bonds := make([]bondLine, nBonds)
	for i := range bonds {
		b, err := parseBond(lines[bondsAt+i], nAtoms)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", first+bondsAt+i)
		}
		if b.aromatic {
			atoms[b.begin-1].aromatic = true
			atoms[b.end-1].aromatic = true
		}
		bonds[i] = b
	}

	i := propsAt
	var chg, iso, rad bool
	for ; i < len(lines) && !strings.HasPrefix(lines[i], "M  END"); i++ {
		var err error
		switch {
		case strings.HasPrefix(lines[i], "M  CHG"):
			err = applyProperty(lines[i], atoms, !chg, func(a *atomLine, v int) { a.charge = v })
			chg = true
		case strings.HasPrefix(lines[i], "M  ISO"):
			err = applyProperty(lines[i], atoms, !iso, func(a *atomLine, v int) { a.mass = v })
			iso = true
		case strings.HasPrefix(lines[i], "M  RAD"):
			err = applyProperty(lines[i], atoms, !rad, func(a *atomLine, v int) { a.radicals = radicalElectrons(v) })
			rad = true
		}
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", first+i)
		}
	}

	m, err := assemble(strings.TrimSpace(lines[0]), atoms, bonds)
	if err != nil {
		return nil, errors.Wrapf(err, "record at line %d", first)
	}
	if hydrogenate {
		m.Hydrogenate()
	}

	return &Record{Molecule: m, Data: parseData(lines[min(i+1, len(lines)):])}, nil
}

func assemble(title string, atoms []atomLine, bonds []bondLine) (*core.Molecule, error) {
	m := core.NewMolecule(core.WithTitle(title))
	for i, a := range atoms {
		opts := []core.AtomOption{core.WithCharge(a.charge), core.WithRadicals(a.radicals)}
		if a.mass != 0 {
			opts = append(opts, core.WithMassNumber(a.mass))
		}
		if a.aromatic {
			opts = append(opts, core.WithAromatic())
		}
		if err := m.AddAtom(atomID(i+1), a.symbol, opts...); err != nil {
			return nil, err
		}
	}
	for _, b := range bonds {
		var opts []core.BondOption
		if b.aromatic {
			opts = append(opts, core.WithAromaticBond())
		}
		if _, err := m.AddBond(atomID(b.begin), atomID(b.end), b.order, opts...); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// atomID names the atom at 1-based molfile position n.
func atomID(n int) string { return "a" + strconv.Itoa(n) }

// parseAtom reads "xxxxx.xxxxyyyyy.yyyyzzzzz.zzzz aaaddcccssshhhbbbvvvHHHrrriiimmmnnneee".
func parseAtom(line string) (atomLine, error) {
	if len(line) < 34 {
		return atomLine{}, errors.Wrapf(ErrBadAtom, "%q", line)
	}
	a := atomLine{symbol: strings.TrimSpace(slice(line, 31, 34))}
	switch a.symbol {
	case "":
		return atomLine{}, errors.Wrapf(ErrBadAtom, "no symbol in %q", line)
	case "D":
		a.symbol, a.mass = "H", 2
	case "T":
		a.symbol, a.mass = "H", 3
	}
	if strings.TrimSpace(slice(line, 36, 39)) != "" {
		code, err := column(line, 36, 39)
		if err != nil || code < 0 || code > 7 {
			return atomLine{}, errors.Wrapf(ErrBadAtom, "charge code in %q", line)
		}
		if code == 4 {
			a.radicals = 1
		} else if code != 0 {
			a.charge = 4 - code
		}
	}
	return a, nil
}

// parseBond reads "111222tttsssxxxrrrccc".
func parseBond(line string, nAtoms int) (bondLine, error) {
	begin, err1 := column(line, 0, 3)
	end, err2 := column(line, 3, 6)
	kind, err3 := column(line, 6, 9)
	if err1 != nil || err2 != nil || err3 != nil {
		return bondLine{}, errors.Wrapf(ErrBadBond, "%q", line)
	}
	if begin < 1 || begin > nAtoms || end < 1 || end > nAtoms {
		return bondLine{}, errors.Wrapf(ErrBadBond, "atom out of range in %q", line)
	}
	b := bondLine{begin: begin, end: end}
	switch kind {
	case 1, 2, 3:
		b.order = core.BondOrder(kind)
	case 4:
		b.aromatic = true
	case 5, 6, 7, 8:
	default:
		return bondLine{}, errors.Wrapf(ErrBadBond, "bond type %d", kind)
	}
	return b, nil
}

// applyProperty reads "M  XXXnn8 aaa vvv ...". The first property of a kind
// resets that attribute on every atom.
func applyProperty(line string, atoms []atomLine, reset bool, set func(*atomLine, int)) error {
	fields := strings.Fields(line[6:])
	if len(fields) == 0 {
		return errors.Wrapf(ErrBadProperty, "%q", line)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || len(fields) != 1+2*n {
		return errors.Wrapf(ErrBadProperty, "%q", line)
	}
	if reset {
		for i := range atoms {
			set(&atoms[i], 0)
		}
	}
	for k := 0; k < n; k++ {
		idx, err1 := strconv.Atoi(fields[1+2*k])
		val, err2 := strconv.Atoi(fields[2+2*k])
		if err1 != nil || err2 != nil || idx < 1 || idx > len(atoms) {
			return errors.Wrapf(ErrBadProperty, "%q", line)
		}
		set(&atoms[idx-1], val)
	}
	return nil
}

// radicalElectrons maps the RAD multiplicity code to unpaired electrons.
func radicalElectrons(code int) int {
	switch code {
	case 2:
		return 1
	case 1, 3:
		return 2
	}
	return 0
}

// parseData collects "> <name>" items from the tail of an SD record.
func parseData(lines []string) map[string]string {
	data := make(map[string]string)
	name := ""
	var value []string
	flush := func() {
		if name != "" {
			data[name] = strings.Join(value, "\n")
		}
		name, value = "", nil
	}
	for _, l := range lines {
		switch {
		case strings.HasPrefix(l, ">"):
			flush()
			if open, shut := strings.Index(l, "<"), strings.LastIndex(l, ">"); open > 0 && shut > open {
				name = l[open+1 : shut]
			}
		case strings.TrimSpace(l) == "":
			flush()
		case name != "":
			value = append(value, l)
		}
	}
	flush()
	return data
}

// slice returns line[from:to] clipped to the line length.
func slice(line string, from, to int) string {
	if from >= len(line) {
		return ""
	}
	return line[from:min(to, len(line))]
}

// column parses a fixed-width integer field; blank reads as 0.
func column(line string, from, to int) (int, error) {
	s := strings.TrimSpace(slice(line, from, to))
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
