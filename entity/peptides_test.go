package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// addResidue appends an amino acid with backbone N and C atoms at the
// given x offsets. With step 3.0 between consecutive residues, the C of
// one residue sits 1.0 from the N of the next, well within bonding
// distance.
func addResidue(c *Chain, name string, seqNum int, x float64) *Residue {
	r := &Residue{Name: name, SeqNum: seqNum, Het: HetNone}
	c.AddResidue(r)

	n := &Atom{Name: "N", AltLoc: AltNone, Element: "N"}
	n.X = x
	r.AddAtom(n)
	cc := &Atom{Name: "C", AltLoc: AltNone, Element: "C"}
	cc.X = x + 2.0
	r.AddAtom(cc)
	return r
}

func newChain(ident string) (*Structure, *Chain) {
	s := &Structure{Name: "pep"}
	m := &Model{Structure: s, Num: 1}
	s.Models = append(s.Models, m)
	c := &Chain{Model: m, Ident: ident}
	m.Chains = append(m.Chains, c)
	return s, c
}

func TestContiguousChain(t *testing.T) {
	s, c := newChain("A")
	for i := 0; i < 5; i++ {
		addResidue(c, "ALA", i+1, float64(i)*3.0)
	}

	peptides := BuildPeptides(s)
	require.Len(t, peptides, 1)
	require.Len(t, peptides[0], 5)
	require.Equal(t, 1, peptides[0].First().SeqNum)
	require.Equal(t, 5, peptides[0].Last().SeqNum)
}

func TestSpatialBreak(t *testing.T) {
	s, c := newChain("A")
	addResidue(c, "ALA", 1, 0.0)
	addResidue(c, "GLY", 2, 3.0)
	// Numbering continues but the coordinates jump.
	addResidue(c, "SER", 3, 50.0)

	peptides := BuildPeptides(s)
	require.Len(t, peptides, 2)
	require.Equal(t, 2, peptides[0].Last().SeqNum)
	require.Equal(t, 3, peptides[1].First().SeqNum)
}

func TestNumberingFallback(t *testing.T) {
	s, c := newChain("A")
	// Residues without backbone atoms: continuity is judged by the
	// sequence numbers alone.
	for _, num := range []int{50, 51, 53, 54} {
		c.AddResidue(&Residue{Name: "ALA", SeqNum: num, Het: HetNone})
	}

	peptides := BuildPeptides(s)
	require.Len(t, peptides, 2)
	require.Equal(t, 51, peptides[0].Last().SeqNum)
	require.Equal(t, 53, peptides[1].First().SeqNum)
}

func TestChainBoundary(t *testing.T) {
	s, a := newChain("A")
	addResidue(a, "ALA", 1, 0.0)
	addResidue(a, "GLY", 2, 3.0)

	b := &Chain{Model: s.Models[0], Ident: "B"}
	s.Models[0].Chains = append(s.Models[0].Chains, b)
	// Chain B continues A's coordinates exactly; the chain boundary
	// must still split the fragments.
	addResidue(b, "SER", 3, 6.0)

	peptides := BuildPeptides(s)
	require.Len(t, peptides, 2)
}

func TestHetResiduesExcluded(t *testing.T) {
	s, c := newChain("A")
	addResidue(c, "ALA", 1, 0.0)
	addResidue(c, "GLY", 2, 3.0)

	hoh := &Residue{Name: "HOH", SeqNum: 100, Het: HetWater}
	c.AddResidue(hoh)

	peptides := BuildPeptides(s)
	require.Len(t, peptides, 1)
	require.Len(t, peptides[0], 2)
}
