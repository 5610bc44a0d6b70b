// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/molhash/atomhash"
	"github.com/katalvlaran/molhash/catalog"
	"github.com/katalvlaran/molhash/config"
	"github.com/katalvlaran/molhash/core"
	"github.com/katalvlaran/molhash/molfile"
)

// app carries the flags shared by every subcommand.
type app struct {
	configPath string
	cfg        config.Config
	opts       []atomhash.Option
}

// named is one input molecule with a display name.
type named struct {
	name string
	mol  *core.Molecule
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "molhash",
		Short:         "Hash molecules and report probable duplicates",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file (defaults apply when empty)")

	fset := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fset)
	_ = fset.Set("logtostderr", "true")
	root.PersistentFlags().AddGoFlagSet(fset)

	root.AddCommand(a.atomsCmd(), a.moleculeCmd(), a.dupesCmd())
	return root
}

func (a *app) load() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	a.cfg, a.opts = cfg, opts
	klog.V(1).Infof("molhash: depth=%d encoders=%v perturbation=%s", cfg.Depth, cfg.Encoders, cfg.Perturbation)
	return nil
}

func (a *app) atomsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "atoms FILE...",
		Short: "Print one hash per atom",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := atomhash.NewAtomic(a.opts...)
			if err != nil {
				return err
			}
			mols, err := readAll(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			hashes, err := atomhash.GenerateAll(contextOrBackground(cmd), gen, containers(mols), a.cfg.Workers)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, nm := range mols {
				fmt.Fprintf(out, "# %s\n", nm.name)
				for j, h := range hashes[i] {
					fmt.Fprintf(out, "%s\t%d\n", nm.mol.Atom(j).ID, h)
				}
			}
			return nil
		},
	}
}

func (a *app) moleculeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "molecule FILE...",
		Short: "Print one hash per molecule",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := atomhash.NewMolecular(a.opts...)
			if err != nil {
				return err
			}
			mols, err := readAll(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			hashes, err := atomhash.HashAll(contextOrBackground(cmd), gen, containers(mols), a.cfg.Workers)
			if err != nil {
				return err
			}
			for i, nm := range mols {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", hashes[i], nm.name)
			}
			return nil
		},
	}
}

func (a *app) dupesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dupes FILE...",
		Short: "Group molecules with equal hashes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := atomhash.NewMolecular(a.opts...)
			if err != nil {
				return err
			}
			cat, err := catalog.New(gen)
			if err != nil {
				return err
			}
			mols, err := readAll(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			names := make([]string, len(mols))
			for i, nm := range mols {
				names[i] = nm.name
			}
			if err := cat.AddAll(contextOrBackground(cmd), names, containers(mols), a.cfg.Workers); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			dups := cat.Duplicates()
			for _, g := range dups {
				fmt.Fprintf(out, "%d", g.Hash)
				for _, n := range g.Names {
					fmt.Fprintf(out, "\t%s", n)
				}
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "# %d molecules, %d distinct, %d duplicate groups\n", cat.Count(), cat.Len(), len(dups))
			return nil
		},
	}
}

// readAll parses every record of every file; "-" reads stdin.
func readAll(stdin io.Reader, paths []string) ([]named, error) {
	var out []named
	for _, path := range paths {
		src := stdin
		if path != "-" {
			f, err := os.Open(path)
			if err != nil {
				return nil, err
			}
			defer f.Close()
			src = f
		}
		recs, err := molfile.NewReader(src).ReadAll()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		for i, rec := range recs {
			name := rec.Molecule.Title()
			if name == "" {
				name = path + "#" + strconv.Itoa(i+1)
			}
			out = append(out, named{name: name, mol: rec.Molecule})
		}
	}
	return out, nil
}

func containers(mols []named) []core.Container {
	out := make([]core.Container, len(mols))
	for i, nm := range mols {
		out[i] = nm.mol
	}
	return out
}

// contextOrBackground guards commands executed without a context.
func contextOrBackground(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
