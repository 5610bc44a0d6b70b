// SPDX-License-Identifier: MIT
package suppress

import "github.com/katalvlaran/molhash/core"

// AtomSuppression decides which atoms of a container are suppressed.
type AtomSuppression interface {
	Suppress(c core.Container) Suppressed
}

// Func adapts a predicate over atoms into an AtomSuppression.
type Func func(a *core.Atom) bool

// Suppress marks every atom for which f returns true.
func (f Func) Suppress(c core.Container) Suppressed {
	n := c.AtomCount()
	var marked []int
	for i := 0; i < n; i++ {
		if f(c.Atom(i)) {
			marked = append(marked, i)
		}
	}
	if len(marked) == 0 {
		return None()
	}

	return Of(n, marked...)
}

type unsuppressed struct{}

func (unsuppressed) Suppress(core.Container) Suppressed { return None() }

// Unsuppressed suppresses nothing.
func Unsuppressed() AtomSuppression { return unsuppressed{} }

// AnyHydrogens suppresses every explicit hydrogen atom, isotopes included.
func AnyHydrogens() AtomSuppression {
	return Func(func(a *core.Atom) bool { return a.AtomicNumber == 1 })
}

// AnyPseudoAtoms suppresses every pseudo atom (atomic number 0).
func AnyPseudoAtoms() AtomSuppression {
	return Func(func(a *core.Atom) bool { return a.AtomicNumber == 0 })
}
