package entity

// maxPeptideBond is the longest C-N distance (in Angstroms) still
// counted as a peptide bond between consecutive residues.
const maxPeptideBond = 1.9

// A Peptide is one contiguous stretch of peptide-bonded residues within
// a single chain.
type Peptide []*Residue

// First returns the first residue of the fragment.
func (p Peptide) First() *Residue { return p[0] }

// Last returns the last residue of the fragment.
func (p Peptide) Last() *Residue { return p[len(p)-1] }

// BuildPeptides splits the structure into contiguous peptide fragments.
// Two consecutive amino acid residues of the same chain belong to the
// same fragment when the carboxyl carbon of the first and the amide
// nitrogen of the second are within peptide bonding distance. When
// either backbone atom is missing, consecutive sequence numbers are
// accepted instead. Waters and other heterogens never join a fragment.
//
// A structure with no chain breaks yields exactly one fragment per
// chain; a count above that signals internal gaps.
func BuildPeptides(s *Structure) []Peptide {
	var peptides []Peptide
	for _, chain := range s.Chains() {
		var cur Peptide
		for _, res := range chain.Residues {
			if res.IsHet() || !IsStandardAminoAcid(res) {
				if len(cur) > 0 {
					peptides = append(peptides, cur)
					cur = nil
				}
				continue
			}
			if len(cur) > 0 && !bonded(cur.Last(), res) {
				peptides = append(peptides, cur)
				cur = nil
			}
			cur = append(cur, res)
		}
		if len(cur) > 0 {
			peptides = append(peptides, cur)
		}
	}
	return peptides
}

// bonded reports whether two consecutive residues of one chain are
// joined by a peptide bond.
func bonded(prev, next *Residue) bool {
	c, n := prev.Atom("C"), next.Atom("N")
	if c == nil || n == nil {
		// No backbone coordinates to measure; fall back to the
		// author's numbering.
		return next.SeqNum == prev.SeqNum+1 ||
			(next.SeqNum == prev.SeqNum && next.ICode != prev.ICode)
	}
	dx := c.X - n.X
	dy := c.Y - n.Y
	dz := c.Z - n.Z
	return dx*dx+dy*dy+dz*dz <= maxPeptideBond*maxPeptideBond
}
