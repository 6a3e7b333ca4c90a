/*
Package entity defines the structural hierarchy shared by the PDB and
PDBx/mmCIF readers: a Structure holds one or more Models, each Model holds
Chains, each Chain holds Residues and each Residue holds Atoms. The types
carry the classification markers needed downstream (heterogen flag on
residues, alternate-location and element tags on atoms) so that callers can
normalize a structure without re-reading the file.

All containers are ordered; the order is the order of the records in the
source file. Traversal helpers (Chains, Residues, Atoms) return freshly
allocated slices, so a caller may detach children while iterating over a
traversal result without invalidating it.
*/
package entity

import (
	"github.com/TuftsBCB/structure"
)

// Residue heterogen classifications, as found in the first character of
// a residue's het flag.
const (
	HetNone  = ' ' // a regular polymer residue (ATOM record)
	HetWater = 'W' // solvent
	HetOther = 'H' // any other heterogen (ligands, ions, ...)
)

// AltNone is the alternate-location marker of an atom with a single
// reported position.
const AltNone = ' '

// Structure is the root of the hierarchy read from one coordinate file.
type Structure struct {
	// Name of the structure, usually the file's base name without its
	// extension.
	Name string

	// All models in the file, in file order. Most crystal structures
	// have exactly one; NMR ensembles have many.
	Models []*Model
}

// Model is a single complete conformation of the structure.
type Model struct {
	Structure *Structure
	Num       int
	Chains    []*Chain
}

// Chain is one polymer strand, identified by a short identifier.
type Chain struct {
	Model *Model

	// Ident is a string rather than a byte: PDB chains are single
	// characters, but mmCIF asym identifiers may be longer.
	Ident string

	Residues []*Residue
}

// Residue is a single monomer unit (amino acid, water or other component).
type Residue struct {
	Chain *Chain

	// Name is the three letter component name, e.g. "ALA" or "HOH".
	Name string

	// SeqNum is the author's residue sequence number, with ICode the
	// insertion code (0 when absent).
	SeqNum int
	ICode  byte

	// Het classifies the residue: HetNone, HetWater or HetOther.
	Het byte

	Atoms []*Atom
}

// Atom is a single atomic position within a residue.
type Atom struct {
	Residue *Residue

	Name string

	// AltLoc is the alternate-location indicator, AltNone when the atom
	// has only one reported position. Disordered is set by the readers
	// when more than one position was reported for the same atom name.
	AltLoc     byte
	Disordered bool

	// Element is the upper-cased element symbol, e.g. "C", "N", "ZN".
	Element string

	Occupancy float64

	structure.Coords
}

// Chain returns the chain with the given identifier in the first model,
// or nil if no such chain exists.
func (s *Structure) Chain(ident string) *Chain {
	if len(s.Models) == 0 {
		return nil
	}
	for _, c := range s.Models[0].Chains {
		if c.Ident == ident {
			return c
		}
	}
	return nil
}

// Chains returns all chains across all models, in order.
func (s *Structure) Chains() []*Chain {
	chains := make([]*Chain, 0, 2)
	for _, m := range s.Models {
		chains = append(chains, m.Chains...)
	}
	return chains
}

// ChainIdents returns the set of distinct chain identifiers in the
// structure.
func (s *Structure) ChainIdents() map[string]bool {
	idents := make(map[string]bool, 2)
	for _, c := range s.Chains() {
		idents[c.Ident] = true
	}
	return idents
}

// Residues returns all residues across all models and chains, in order.
func (s *Structure) Residues() []*Residue {
	residues := make([]*Residue, 0, 50)
	for _, c := range s.Chains() {
		residues = append(residues, c.Residues...)
	}
	return residues
}

// Atoms returns all atoms in the structure, in order.
func (s *Structure) Atoms() []*Atom {
	atoms := make([]*Atom, 0, 200)
	for _, r := range s.Residues() {
		atoms = append(atoms, r.Atoms...)
	}
	return atoms
}

// DetachModel removes the given model from the structure. Removing a
// model that is not attached is a no-op.
func (s *Structure) DetachModel(m *Model) {
	for i, other := range s.Models {
		if other == m {
			s.Models = append(s.Models[:i], s.Models[i+1:]...)
			m.Structure = nil
			return
		}
	}
}

// DetachChain removes the given chain from the model.
func (m *Model) DetachChain(c *Chain) {
	for i, other := range m.Chains {
		if other == c {
			m.Chains = append(m.Chains[:i], m.Chains[i+1:]...)
			c.Model = nil
			return
		}
	}
}

// DetachResidue removes the given residue from the chain.
func (c *Chain) DetachResidue(r *Residue) {
	for i, other := range c.Residues {
		if other == r {
			c.Residues = append(c.Residues[:i], c.Residues[i+1:]...)
			r.Chain = nil
			return
		}
	}
}

// AddResidue appends a residue to the chain and claims ownership of it.
func (c *Chain) AddResidue(r *Residue) {
	r.Chain = c
	c.Residues = append(c.Residues, r)
}

// DetachAtom removes the given atom from the residue.
func (r *Residue) DetachAtom(a *Atom) {
	for i, other := range r.Atoms {
		if other == a {
			r.Atoms = append(r.Atoms[:i], r.Atoms[i+1:]...)
			a.Residue = nil
			return
		}
	}
}

// AddAtom appends an atom to the residue and claims ownership of it.
func (r *Residue) AddAtom(a *Atom) {
	a.Residue = r
	r.Atoms = append(r.Atoms, a)
}

// Atom returns the first atom with the given name, or nil if the residue
// has no such atom.
func (r *Residue) Atom(name string) *Atom {
	for _, a := range r.Atoms {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// IsWater reports whether the residue is classified as solvent.
func (r *Residue) IsWater() bool {
	return r.Het == HetWater
}

// IsHet reports whether the residue is classified as a non-polymer
// component (solvent included).
func (r *Residue) IsHet() bool {
	return r.Het != HetNone
}
