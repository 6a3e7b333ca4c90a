/*
Package pdbx reads PDBx/mmCIF formatted files into the entity hierarchy.
The CIF grammar itself is handled by the BurntSushi/cif package; this
package only interprets the "atom_site" category, so everything else in
a PDBx file is ignored.
*/
package pdbx

import (
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/BurntSushi/cif"

	"github.com/opharin/prodigy/entity"
)

var (
	ef = fmt.Errorf
	sf = fmt.Sprintf
)

// ReadFile reads an mmCIF file from the file system into a Structure
// named after the file.
func ReadFile(fp string) (*entity.Structure, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	name := path.Base(fp)
	name = strings.TrimSuffix(name, path.Ext(name))
	return Read(f, name)
}

// Read reads exactly one structure from the mmCIF data in the reader
// given. An error is returned when the data is not valid CIF, when it
// does not contain exactly one data block, or when the block carries no
// atom_site records.
func Read(r io.Reader, name string) (*entity.Structure, error) {
	cf, err := cif.Read(r)
	if err != nil {
		return nil, err
	}
	if len(cf.Blocks) != 1 {
		return nil, ef("Expected one PDBx data block but got %d.",
			len(cf.Blocks))
	}
	for _, b := range cf.Blocks {
		return readBlock(b, name)
	}
	panic("unreachable")
}

func readBlock(b *cif.DataBlock, name string) (*entity.Structure, error) {
	loop := asLoop(b, "atom_site.group_pdb", "atom_site.auth_asym_id",
		"atom_site.auth_comp_id", "atom_site.auth_seq_id",
		"atom_site.pdbx_pdb_ins_code", "atom_site.label_atom_id",
		"atom_site.label_alt_id", "atom_site.type_symbol",
		"atom_site.cartn_x", "atom_site.cartn_y", "atom_site.cartn_z",
		"atom_site.occupancy", "atom_site.pdbx_pdb_model_num")
	groups := loop[0].Strings()
	chains, comps := loop[1].Strings(), loop[2].Strings()
	seqNums := loop[3].Ints()
	icodes, atomNames := loop[4].Strings(), loop[5].Strings()
	altLocs, elements := loop[6].Strings(), loop[7].Strings()
	xs, ys, zs := loop[8].Floats(), loop[9].Floats(), loop[10].Floats()
	occs := loop[11].Floats()
	modelNums := loop[12].Ints()
	if groups == nil || chains == nil || comps == nil || seqNums == nil ||
		atomNames == nil || xs == nil || ys == nil || zs == nil ||
		modelNums == nil {
		return nil, ef("The PDBx data named '%s' has no ATOM/HETATM "+
			"records.", name)
	}

	s := &entity.Structure{Name: name}
	var curModel *entity.Model
	var curChain *entity.Chain
	var curRes *entity.Residue
	for i := range groups {
		het := groups[i] == "HETATM"
		icode := optByte(icodes, i)
		alt := optAlt(altLocs, i)

		curModel = getModel(s, curModel, modelNums[i])
		curChain = getChain(curModel, curChain, chains[i])
		curRes = getResidue(curChain, curRes,
			comps[i], seqNums[i], icode, het)

		atom := &entity.Atom{
			Name:    atomNames[i],
			AltLoc:  alt,
			Element: strings.ToUpper(optString(elements, i)),
		}
		atom.X, atom.Y, atom.Z = xs[i], ys[i], zs[i]
		if occs != nil {
			atom.Occupancy = occs[i]
		}
		if prev := curRes.Atom(atom.Name); prev != nil &&
			prev.AltLoc != atom.AltLoc {
			prev.Disordered = true
			atom.Disordered = true
		}
		curRes.AddAtom(atom)
	}
	return s, nil
}

func getModel(s *entity.Structure, cur *entity.Model, num int) *entity.Model {
	if cur != nil && cur.Num == num {
		return cur
	}
	for _, m := range s.Models {
		if m.Num == num {
			return m
		}
	}
	m := &entity.Model{Structure: s, Num: num}
	s.Models = append(s.Models, m)
	return m
}

func getChain(m *entity.Model, cur *entity.Chain, ident string) *entity.Chain {
	if cur != nil && cur.Model == m && cur.Ident == ident {
		return cur
	}
	for _, c := range m.Chains {
		if c.Ident == ident {
			return c
		}
	}
	c := &entity.Chain{Model: m, Ident: ident}
	m.Chains = append(m.Chains, c)
	return c
}

func getResidue(
	c *entity.Chain,
	cur *entity.Residue,
	name string,
	seqNum int,
	icode byte,
	het bool,
) *entity.Residue {
	if cur != nil && cur.Chain == c && cur.SeqNum == seqNum &&
		cur.ICode == icode && cur.Name == name {
		return cur
	}
	for _, r := range c.Residues {
		if r.SeqNum == seqNum && r.ICode == icode && r.Name == name {
			return r
		}
	}
	r := &entity.Residue{
		Name:   name,
		SeqNum: seqNum,
		ICode:  icode,
	}
	if het {
		if entity.IsWaterName(name) {
			r.Het = entity.HetWater
		} else {
			r.Het = entity.HetOther
		}
	} else {
		r.Het = entity.HetNone
	}
	c.AddResidue(r)
	return r
}

// optString returns column i of vals, or "" when the column is absent
// or holds a CIF null ("." or "?").
func optString(vals []string, i int) string {
	if vals == nil || i >= len(vals) {
		return ""
	}
	if vals[i] == "." || vals[i] == "?" {
		return ""
	}
	return vals[i]
}

func optByte(vals []string, i int) byte {
	s := optString(vals, i)
	if len(s) == 0 {
		return 0
	}
	return s[0]
}

func optAlt(vals []string, i int) byte {
	s := optString(vals, i)
	if len(s) == 0 {
		return entity.AltNone
	}
	return s[0]
}
