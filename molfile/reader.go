// SPDX-License-Identifier: MIT
package molfile

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/molhash/core"
)

// recordEnd terminates an SD record.
const recordEnd = "$$$$"

// Record is one parsed SD entry.
type Record struct {
	Molecule *core.Molecule

	// Data holds the "> <name>" items; multi-line values are joined by "\n".
	Data map[string]string
}

// Option customizes a Reader.
type Option func(*Reader)

// WithoutHydrogenation keeps implicit hydrogen counts at zero.
func WithoutHydrogenation() Option {
	return func(r *Reader) { r.hydrogenate = false }
}

// Reader iterates the records of an SD file. A plain molfile is a single
// record without a terminator.
type Reader struct {
	sc          *bufio.Scanner
	line        int
	records     int
	hydrogenate bool
}

// NewReader returns a Reader over src.
func NewReader(src io.Reader, opts ...Option) *Reader {
	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	r := &Reader{sc: sc, hydrogenate: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Next parses the next record. It returns io.EOF when no records remain.
func (r *Reader) Next() (*Record, error) {
	first := r.line + 1
	var lines []string
	blank := true
	for r.sc.Scan() {
		r.line++
		text := strings.TrimRight(r.sc.Text(), "\r")
		if text == recordEnd {
			break
		}
		if strings.TrimSpace(text) != "" {
			blank = false
		}
		lines = append(lines, text)
	}
	if err := r.sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "molfile: read near line %d", r.line)
	}
	if blank {
		return nil, io.EOF
	}

	rec, err := parseRecord(lines, first, r.hydrogenate)
	if err != nil {
		return nil, err
	}
	r.records++
	klog.V(3).Infof("molfile: record %d %q: %d atoms, %d bonds",
		r.records, rec.Molecule.Title(), rec.Molecule.AtomCount(), rec.Molecule.BondCount())
	return rec, nil
}

// ReadAll parses every remaining record.
func (r *Reader) ReadAll() ([]*Record, error) {
	var out []*Record
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
}

// Parse reads a single molfile.
func Parse(src io.Reader, opts ...Option) (*core.Molecule, error) {
	rec, err := NewReader(src, opts...).Next()
	if err == io.EOF {
		return nil, errors.Wrap(ErrTruncated, "molfile: empty input")
	}
	if err != nil {
		return nil, err
	}
	return rec.Molecule, nil
}
