package pdb

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/opharin/prodigy/entity"
)

// Options controls how tolerant the reader is with imperfect files.
type Options struct {
	// Quiet suppresses warnings about records that were skipped
	// because they could not be interpreted.
	Quiet bool

	// Warnf receives the warnings when Quiet is unset. When nil,
	// warnings go to stderr.
	Warnf func(format string, v ...interface{})
}

func (o Options) warnf(format string, v ...interface{}) {
	if o.Quiet {
		return
	}
	if o.Warnf != nil {
		o.Warnf(format, v...)
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", v...)
}

type pdbParser struct {
	structure *entity.Structure
	opts      Options
	curModel  int
	line      []byte
	lineNum   int
}

// ReadPDB reads a PDB file from the file system into a Structure named
// after the file. If the file name ends with ".gz", gzip decompression
// is used.
func ReadPDB(fp string, opts Options) (*entity.Structure, error) {
	var reader io.Reader
	var err error

	reader, err = os.Open(fp)
	if err != nil {
		return nil, err
	}
	if path.Ext(fp) == ".gz" {
		reader, err = gzip.NewReader(reader)
		if err != nil {
			return nil, err
		}
	}

	name := path.Base(fp)
	name = strings.TrimSuffix(name, path.Ext(name))
	return Read(reader, name, opts)
}

// Read reads PDB formatted data from the reader given into a Structure
// with the name given. An error is returned if no coordinate records
// could be found, or if the underlying reader fails.
func Read(r io.Reader, name string, opts Options) (*entity.Structure, error) {
	parser := pdbParser{
		structure: &entity.Structure{Name: name},
		opts:      opts,
		curModel:  1,
	}

	breader := bufio.NewReaderSize(r, 1000)
	for {
		// 'isPrefix' is ignored: no coordinate record is longer than
		// the 1000 byte buffer.
		line, _, err := breader.ReadLine()
		if err == io.EOF && len(line) == 0 {
			break
		} else if err != io.EOF && err != nil {
			return nil, err
		}
		parser.line = line
		parser.lineNum++
		parser.parseLine()
	}

	if len(parser.structure.Models) == 0 {
		return nil, fmt.Errorf("The data named '%s' does not appear to be "+
			"a valid PDB file: no coordinate records found.", name)
	}
	return parser.structure, nil
}

func (p *pdbParser) parseLine() {
	switch p.cols(1, 6) {
	case "MODEL":
		num, err := p.atoi(11, 14)
		if err != nil {
			p.opts.warnf("Line %d: bad MODEL record: %v", p.lineNum, err)
			return
		}
		p.curModel = num
	case "ENDMDL":
		p.curModel++
	case "ATOM":
		p.parseAtom(false)
	case "HETATM":
		p.parseAtom(true)
	}
}

func (p *pdbParser) parseAtom(het bool) {
	resName := p.cols(18, 20)
	seqNum, err := p.atoi(23, 26)
	if err != nil {
		p.opts.warnf("Line %d: bad residue sequence number: %v",
			p.lineNum, err)
		return
	}

	atom := &entity.Atom{
		Name:    p.cols(13, 16),
		AltLoc:  p.altLoc(),
		Element: p.cols(77, 78),
	}
	atom.X, err = p.atof(31, 38)
	if err == nil {
		atom.Y, err = p.atof(39, 46)
	}
	if err == nil {
		atom.Z, err = p.atof(47, 54)
	}
	if err != nil {
		p.opts.warnf("Line %d: bad coordinates: %v", p.lineNum, err)
		return
	}
	if occ, err := p.atof(55, 60); err == nil {
		atom.Occupancy = occ
	}
	if len(atom.Element) == 0 {
		atom.Element = elementFromName(p.cols(13, 16))
	}

	residue := p.getResidue(p.chainIdent(), resName, seqNum, p.iCode(), het)
	if prev := residue.Atom(atom.Name); prev != nil &&
		prev.AltLoc != atom.AltLoc {
		prev.Disordered = true
		atom.Disordered = true
	}
	residue.AddAtom(atom)
}

func (p *pdbParser) getModel() *entity.Model {
	s := p.structure
	for _, m := range s.Models {
		if m.Num == p.curModel {
			return m
		}
	}
	m := &entity.Model{Structure: s, Num: p.curModel}
	s.Models = append(s.Models, m)
	return m
}

func (p *pdbParser) getChain(ident string) *entity.Chain {
	model := p.getModel()
	for _, c := range model.Chains {
		if c.Ident == ident {
			return c
		}
	}
	c := &entity.Chain{Model: model, Ident: ident}
	model.Chains = append(model.Chains, c)
	return c
}

func (p *pdbParser) getResidue(
	chainIdent, name string,
	seqNum int,
	icode byte,
	het bool,
) *entity.Residue {
	chain := p.getChain(chainIdent)
	for _, r := range chain.Residues {
		if r.SeqNum == seqNum && r.ICode == icode && r.Name == name {
			return r
		}
	}
	r := &entity.Residue{
		Name:   name,
		SeqNum: seqNum,
		ICode:  icode,
		Het:    hetFlag(name, het),
	}
	chain.AddResidue(r)
	return r
}

// hetFlag classifies a residue from its record type and component name,
// in the same way the classification appears in a residue id: blank for
// polymer residues, 'W' for waters, 'H' for any other heterogen.
func hetFlag(name string, het bool) byte {
	if !het {
		return entity.HetNone
	}
	if entity.IsWaterName(name) {
		return entity.HetWater
	}
	return entity.HetOther
}

// elementFromName guesses an element symbol from an atom name when the
// element columns are blank. The first alphabetic character of the
// (untrimmed) name is the best available guess.
func elementFromName(name string) string {
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'A' && c <= 'Z' {
			return string(c)
		}
	}
	return ""
}

func (p *pdbParser) chainIdent() string {
	ident := p.at(22)
	if ident == 0 || ident == ' ' {
		ident = '_'
	}
	return string(ident)
}

func (p *pdbParser) altLoc() byte {
	alt := p.at(17)
	if alt == 0 {
		alt = entity.AltNone
	}
	return alt
}

func (p *pdbParser) iCode() byte {
	code := p.at(27)
	if code == ' ' {
		code = 0
	}
	return code
}

func (p *pdbParser) atoi(start, end int) (int, error) {
	return strconv.Atoi(p.cols(start, end))
}

func (p *pdbParser) atof(start, end int) (float64, error) {
	return strconv.ParseFloat(p.cols(start, end), 64)
}

func (p *pdbParser) cols(start, end int) string {
	rs, re := start-1, end
	if rs >= len(p.line) || rs < 0 {
		return ""
	}
	if re > len(p.line) || re < 0 || re < rs {
		return ""
	}
	return string(bytes.TrimSpace(p.line[rs:re]))
}

func (p *pdbParser) at(column int) byte {
	i := column - 1
	if i < 0 || i >= len(p.line) {
		return 0
	}
	return p.line[i]
}
