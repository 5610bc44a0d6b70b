// SPDX-License-Identifier: MIT
// Package: molhash/atomhash
//
// maker.go - assembles generators from named toggles.
//
// Contract:
//   - Options are functional (type Option func(*makerConfig)).
//   - Invalid option values are recorded and returned by NewAtomic /
//     NewMolecular as ErrOptionViolation; nothing is silently defaulted.
//   - Basic encoders apply in registry order however the options were
//     ordered; custom encoders follow in insertion order.
//   - Defaults: depth 0, no encoders, no suppression, no stereo, no
//     perturbation.
package atomhash

import (
	"fmt"
	"slices"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/molhash/encoder"
	"github.com/katalvlaran/molhash/equiv"
	"github.com/katalvlaran/molhash/mix"
	"github.com/katalvlaran/molhash/stereo"
	"github.com/katalvlaran/molhash/suppress"
)

// Option configures NewAtomic / NewMolecular.
type Option func(*makerConfig)

type makerConfig struct {
	depth       int
	basics      map[encoder.Basic]struct{}
	custom      []encoder.AtomEncoder
	suppression suppress.AtomSuppression
	factories   []stereo.Factory
	finder      equiv.Finder
	passLimit   int
	mixer       mix.Mixer
	err         error
}

func newMakerConfig(opts ...Option) *makerConfig {
	cfg := &makerConfig{
		basics:      make(map[encoder.Basic]struct{}),
		suppression: suppress.Unsuppressed(),
		mixer:       mix.Default,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func (c *makerConfig) fail(format string, args ...any) {
	if c.err == nil {
		c.err = fmt.Errorf(format+": %w", append(args, ErrOptionViolation)...)
	}
}

// Depth sets the number of mixing rounds.
func Depth(d int) Option {
	return func(c *makerConfig) { c.depth = d }
}

// Use adds built-in encoders.
func Use(basics ...encoder.Basic) Option {
	return func(c *makerConfig) {
		for _, b := range basics {
			c.basics[b] = struct{}{}
		}
	}
}

// Elemental encodes the atomic number.
func Elemental() Option { return Use(encoder.AtomicNumber) }

// Isotopic encodes the mass number.
func Isotopic() Option { return Use(encoder.MassNumber) }

// Charged encodes the formal charge.
func Charged() Option { return Use(encoder.FormalCharge) }

// Orbital encodes the hybridization.
func Orbital() Option { return Use(encoder.Hybridization) }

// Radical encodes the number of unpaired electrons.
func Radical() Option { return Use(encoder.FreeRadicals) }

// Connectivity encodes the number of connected atoms (implicit H included).
func Connectivity() Option { return Use(encoder.ConnectedAtoms) }

// BondOrders encodes the bond order sum (implicit H included).
func BondOrders() Option { return Use(encoder.BondOrderSum) }

// Encode appends custom encoders after the built-in ones.
func Encode(encoders ...encoder.AtomEncoder) Option {
	return func(c *makerConfig) {
		for i, e := range encoders {
			if e == nil {
				c.fail("Encode: encoder %d is nil", i)
				return
			}
		}
		c.custom = append(c.custom, encoders...)
	}
}

// SuppressHydrogens suppresses explicit hydrogens.
func SuppressHydrogens() Option { return SuppressWith(suppress.AnyHydrogens()) }

// SuppressPseudoAtoms suppresses pseudo atoms.
func SuppressPseudoAtoms() Option { return SuppressWith(suppress.AnyPseudoAtoms()) }

// SuppressWith sets the suppression policy; the last one wins.
func SuppressWith(s suppress.AtomSuppression) Option {
	return func(c *makerConfig) {
		if s == nil {
			c.fail("SuppressWith: nil policy")
			return
		}
		c.suppression = s
	}
}

// Chiral encodes declared tetrahedral and double-bond stereo elements.
func Chiral() Option {
	return StereoWith(stereo.TetrahedralFactory(), stereo.DoubleBondFactory())
}

// StereoWith adds stereo encoder factories.
func StereoWith(factories ...stereo.Factory) Option {
	return func(c *makerConfig) {
		for i, f := range factories {
			if f == nil {
				c.fail("StereoWith: factory %d is nil", i)
				return
			}
		}
		c.factories = append(c.factories, factories...)
	}
}

// Perturbed enables perturbation over the minimum equivalent cyclic set.
func Perturbed() Option { return PerturbWith(equiv.MinimumCyclicSet()) }

// PerturbWith enables perturbation over the given finder.
func PerturbWith(f equiv.Finder) Option {
	return func(c *makerConfig) {
		if f == nil {
			c.fail("PerturbWith: nil finder")
			return
		}
		c.finder = f
	}
}

// StereoPassLimit bounds each stereo convergence loop (0 = unbounded).
func StereoPassLimit(k int) Option {
	return func(c *makerConfig) {
		if k < 0 {
			c.fail("StereoPassLimit: %d", k)
			return
		}
		c.passLimit = k
	}
}

// Pseudorandom replaces the xorshift step everywhere.
func Pseudorandom(p mix.Pseudorandom) Option {
	return func(c *makerConfig) {
		if p == nil {
			c.fail("Pseudorandom: nil")
			return
		}
		c.mixer = mix.New(p)
	}
}

// encoders returns the built-in encoders in registry order, then the custom ones.
func (c *makerConfig) encoders() []encoder.AtomEncoder {
	basics := make([]encoder.Basic, 0, len(c.basics))
	for b := range c.basics {
		basics = append(basics, b)
	}
	slices.Sort(basics)

	out := make([]encoder.AtomEncoder, 0, len(basics)+len(c.custom))
	for _, b := range basics {
		out = append(out, b)
	}
	return append(out, c.custom...)
}

// NewAtomic assembles an atom hash generator.
//
// Errors:
//   - ErrOptionViolation for invalid option values.
//   - ErrNegativeDepth for Depth(d) with d < 0.
func NewAtomic(opts ...Option) (AtomHashGenerator, error) {
	cfg := newMakerConfig(opts...)
	if cfg.err != nil {
		return nil, fmt.Errorf("NewAtomic: %w", cfg.err)
	}
	return newAtomic(cfg)
}

// newAtomic builds the generator from an applied, error-free config.
func newAtomic(cfg *makerConfig) (AtomHashGenerator, error) {
	conj, err := encoder.Conjugate(cfg.encoders()...)
	if err != nil {
		return nil, fmt.Errorf("NewAtomic: %w", err)
	}
	seeds, err := encoder.NewSeedGenerator(conj, encoder.WithMixer(cfg.mixer))
	if err != nil {
		return nil, fmt.Errorf("NewAtomic: %w", err)
	}
	basic, err := NewBasicGenerator(seeds, cfg.depth,
		WithStereo(stereo.Conjugate(cfg.factories...)),
		WithSuppression(cfg.suppression),
		WithMixer(cfg.mixer),
		WithStereoPassLimit(cfg.passLimit),
	)
	if err != nil {
		return nil, fmt.Errorf("NewAtomic: %w", err)
	}
	klog.V(4).Infof("atomhash: depth=%d encoders=%d stereo=%d perturbed=%t",
		cfg.depth, conj.Len(), len(cfg.factories), cfg.finder != nil)

	if cfg.finder == nil {
		return basic, nil
	}
	perturbed, err := NewPerturbedGenerator(basic, cfg.finder)
	if err != nil {
		return nil, fmt.Errorf("NewAtomic: %w", err)
	}
	return perturbed, nil
}

// NewMolecular assembles a molecule hash generator over NewAtomic(opts...).
// Each option is applied once.
func NewMolecular(opts ...Option) (MoleculeHashGenerator, error) {
	cfg := newMakerConfig(opts...)
	if cfg.err != nil {
		return nil, fmt.Errorf("NewMolecular: %w", cfg.err)
	}
	atoms, err := newAtomic(cfg)
	if err != nil {
		return nil, fmt.Errorf("NewMolecular: %w", err)
	}
	mol, err := NewMoleculeGenerator(atoms, cfg.mixer)
	if err != nil {
		return nil, fmt.Errorf("NewMolecular: %w", err)
	}
	return mol, nil
}
