package atomhash_test

import (
	"fmt"

	"github.com/katalvlaran/molhash/atomhash"
	"github.com/katalvlaran/molhash/builder"
)

// ExampleNewAtomic shows that refinement alone cannot tell a cyclohexane
// ring from two cyclopropanes, while perturbation can.
func ExampleNewAtomic() {
	m := builder.Must(builder.RingMixture())
	opts := []atomhash.Option{atomhash.Depth(4), atomhash.Elemental(), atomhash.Connectivity()}

	plain, _ := atomhash.NewAtomic(opts...)
	broken, _ := atomhash.NewAtomic(append(opts, atomhash.Perturbed())...)

	a, _ := plain.Generate(m)
	b, _ := broken.Generate(m)

	h0, t0 := m.IndexOf("h0"), m.IndexOf("t0")
	fmt.Println("plain:", a[h0] == a[t0])
	fmt.Println("perturbed:", b[h0] == b[t0])

	// Output:
	// plain: true
	// perturbed: false
}

// ExampleNewMolecular compares the two enantiomers of CHFClBr.
func ExampleNewMolecular() {
	gen, _ := atomhash.NewMolecular(atomhash.Depth(2), atomhash.Elemental(), atomhash.Chiral())

	r, _ := gen.Generate(builder.Must(builder.Bromochlorofluoromethane(1)))
	s, _ := gen.Generate(builder.Must(builder.Bromochlorofluoromethane(-1)))
	fmt.Println("enantiomers equal:", r == s)

	// Output:
	// enantiomers equal: false
}
