package prodigy

import (
	"path"
	"strings"

	"github.com/opharin/prodigy/entity"
	"github.com/opharin/prodigy/pdb"
	"github.com/opharin/prodigy/pdbx"
)

// Parse reads the structure file at the given path, validates it with
// the options given, and returns the normalized structure together with
// the number of distinct chain identifiers and the number of residues
// left after validation.
//
// The format is chosen from the file name's final extension: "pdb" and
// "ent" select the PDB reader in quiet mode, "cif" selects the
// PDBx/mmCIF reader. Any other extension is an UnsupportedFormatError.
// A reader failure is returned as a ParseError wrapping the cause.
func Parse(fp string, opts Options) (*entity.Structure, int, int, error) {
	opts.notice("[+] Reading structure file: %s", fp)

	fname := path.Base(fp)
	dot := strings.LastIndexByte(fname, '.')
	if dot < 0 {
		return nil, 0, 0, UnsupportedFormatError{Ext: fname}
	}
	sname := fname[:dot]
	ext := strings.ToLower(fname[dot+1:])

	var s *entity.Structure
	var err error
	switch ext {
	case "pdb", "ent":
		s, err = pdb.ReadPDB(fp, pdb.Options{Quiet: true})
	case "cif":
		s, err = pdbx.ReadFile(fp)
	default:
		return nil, 0, 0, UnsupportedFormatError{Ext: ext}
	}
	if err != nil {
		opts.errf("[!] Structure '%s' could not be parsed", sname)
		return nil, 0, 0, ParseError{Name: sname, Err: err}
	}
	s.Name = sname

	if _, err := Validate(s, opts); err != nil {
		return nil, 0, 0, err
	}
	return s, len(s.ChainIdents()), len(s.Residues()), nil
}
