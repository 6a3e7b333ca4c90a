/*
Package prodigy prepares protein complex structures for binding affinity
prediction. It loads a structure from a PDB or PDBx/mmCIF file and
normalizes it: one model, one location per atom, no solvent, heterogens
or hydrogens (unless ligand mode is on), optionally restricted to a
selected subset of chains. Chain discontinuities are detected and
reported, but never treated as errors.
*/
package prodigy

import (
	"fmt"
	"os"
	"strings"

	"github.com/opharin/prodigy/entity"
)

// Options controls validation and the diagnostic output of both Parse
// and Validate.
type Options struct {
	// Selection restricts the structure to the given chain
	// identifiers. Each element may itself be a comma-joined list
	// ("A,B"); all elements are flattened into one set. An empty
	// selection keeps every chain.
	Selection []string

	// Ligand turns on ligand mode: solvent, heterogens, hydrogens and
	// non-standard residues are kept instead of filtered. Used for
	// complexes whose binding partner is not a protein.
	Ligand bool

	// Notice receives informational diagnostics (multi-model warning,
	// gap report, progress). When nil, they are printed to stderr.
	Notice func(format string, v ...interface{})

	// Errf receives the textual report of fatal conditions just
	// before the corresponding error is returned. When nil, it goes
	// to stderr.
	Errf func(format string, v ...interface{})
}

func (o Options) notice(format string, v ...interface{}) {
	if o.Notice != nil {
		o.Notice(format, v...)
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", v...)
}

func (o Options) errf(format string, v ...interface{}) {
	if o.Errf != nil {
		o.Errf(format, v...)
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", v...)
}

// Validate normalizes the structure in place and returns it. The steps
// run in fixed order: model collapse, alternate-location collapse,
// heterogen/hydrogen filtering (skipped in ligand mode), gap detection
// and chain selection. A step always operates on the outcome of the
// previous one.
//
// Validation errors are terminal for the structure: the structure may
// have been partially normalized when an error is returned.
func Validate(s *entity.Structure, opts Options) (*entity.Structure, error) {
	collapseModels(s, opts)
	collapseAltLocs(s)
	if !opts.Ligand {
		if err := filterComposition(s); err != nil {
			opts.errf("[!] %v", err)
			return nil, err
		}
	}
	reportGaps(s, opts)
	if err := selectChains(s, opts); err != nil {
		opts.errf("[!] %v", err)
		return nil, err
	}
	return s, nil
}

// collapseModels keeps only the first model of the structure.
func collapseModels(s *entity.Structure, opts Options) {
	if len(s.Models) <= 1 {
		return
	}
	opts.notice("[!] Structure contains more than one model. " +
		"Only the first one will be kept")
	first := s.Models[0]
	models := append([]*entity.Model{}, s.Models...)
	for _, m := range models {
		if m != first {
			s.DetachModel(m)
		}
	}
}

// collapseAltLocs resolves every disordered atom to its selected
// alternate: the position with the highest occupancy, the earliest one
// on a tie. The survivor loses its alternate-location marker and is
// re-attached in place of the whole group.
func collapseAltLocs(s *entity.Structure) {
	for _, res := range s.Residues() {
		// Snapshot; the residue's atom list is mutated below.
		atoms := append([]*entity.Atom{}, res.Atoms...)
		done := make(map[string]bool)
		for _, atom := range atoms {
			if atom.AltLoc == entity.AltNone && !atom.Disordered {
				continue
			}
			if done[atom.Name] {
				continue
			}
			done[atom.Name] = true

			sel := atom
			for _, alt := range atoms {
				if alt.Name == atom.Name && alt.Occupancy > sel.Occupancy {
					sel = alt
				}
			}
			for _, alt := range atoms {
				if alt.Name == atom.Name {
					res.DetachAtom(alt)
				}
			}
			sel.AltLoc = entity.AltNone
			sel.Disordered = false
			res.AddAtom(sel)
		}
	}
}

// filterComposition removes solvent and heterogen residues, fails on
// any remaining non-standard amino acid, and strips hydrogens.
func filterComposition(s *entity.Structure) error {
	for _, res := range s.Residues() {
		if res.IsHet() {
			res.Chain.DetachResidue(res)
		} else if !entity.IsStandardAminoAcid(res) {
			return UnsupportedResidueError{ResName: res.Name}
		}
	}
	for _, atom := range s.Atoms() {
		if atom.Element == "H" {
			atom.Residue.DetachAtom(atom)
		}
	}
	return nil
}

// reportGaps builds the contiguous peptide fragments of the structure
// and reports a discontinuity when their count differs from the number
// of distinct chain identifiers. Gaps are diagnostic only.
func reportGaps(s *entity.Structure, opts Options) {
	peptides := entity.BuildPeptides(s)
	if len(peptides) == len(s.ChainIdents()) {
		return
	}
	var msg strings.Builder
	msg.WriteString("[!] Structure contains gaps:\n")
	for i, pp := range peptides {
		first, last := pp.First(), pp.Last()
		fmt.Fprintf(&msg, "\t%s %s%d < Fragment %d > %s %s%d\n",
			first.Chain.Ident, first.Name, first.SeqNum, i,
			last.Chain.Ident, last.Name, last.SeqNum)
	}
	opts.notice("%s", msg.String())
}

// selectChains restricts the structure to the selected chains. Every
// selected identifier is checked for existence before anything is
// removed, so a failed selection leaves the structure untouched.
func selectChains(s *entity.Structure, opts Options) error {
	if len(opts.Selection) == 0 {
		return nil
	}
	idents := s.ChainIdents()
	selected := make(map[string]bool, len(opts.Selection))
	for _, token := range opts.Selection {
		for _, ident := range strings.Split(token, ",") {
			if !idents[ident] {
				return ChainNotFoundError{Chain: ident}
			}
			selected[ident] = true
		}
	}
	for _, chain := range s.Chains() {
		if !selected[chain.Ident] {
			chain.Model.DetachChain(chain)
		}
	}
	return nil
}
