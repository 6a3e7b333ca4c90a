package entity

import (
	"github.com/TuftsBCB/seq"
)

// standardAminoMap maps the three letter names of the 20 standard amino
// acids to their single letter abbreviations. Non-standard and modified
// residues (MSE, SEC, PYL, ...) are deliberately absent.
var standardAminoMap = map[string]seq.Residue{
	"ALA": 'A', "ARG": 'R', "ASN": 'N', "ASP": 'D', "CYS": 'C',
	"GLU": 'E', "GLN": 'Q', "GLY": 'G', "HIS": 'H', "ILE": 'I',
	"LEU": 'L', "LYS": 'K', "MET": 'M', "PHE": 'F', "PRO": 'P',
	"SER": 'S', "THR": 'T', "TRP": 'W', "TYR": 'Y', "VAL": 'V',
}

// waterNames lists the component names recognized as solvent in PDB
// files, where waters carry a HETATM record like any other heterogen.
var waterNames = map[string]bool{
	"HOH": true, "WAT": true, "DOD": true, "H2O": true,
}

// IsStandardAminoAcid reports whether the residue is one of the 20
// standard amino acids, judged by its three letter component name.
func IsStandardAminoAcid(r *Residue) bool {
	_, ok := standardAminoMap[r.Name]
	return ok
}

// IsWaterName reports whether the given component name denotes solvent.
func IsWaterName(name string) bool {
	return waterNames[name]
}

// OneLetter returns the single letter abbreviation for a residue, or
// 'X' when the residue is not a standard amino acid.
func OneLetter(r *Residue) seq.Residue {
	if letter, ok := standardAminoMap[r.Name]; ok {
		return letter
	}
	return 'X'
}

// Sequence returns the chain's residues as single letter abbreviations,
// in chain order.
func (c *Chain) Sequence() []seq.Residue {
	residues := make([]seq.Residue, len(c.Residues))
	for i, r := range c.Residues {
		residues[i] = OneLetter(r)
	}
	return residues
}
