package prodigy

import (
	"fmt"
)

// UnsupportedFormatError is returned by Parse when the file extension
// does not name a supported structure format.
type UnsupportedFormatError struct {
	Ext string
}

func (e UnsupportedFormatError) Error() string {
	return fmt.Sprintf("Structure format '%s' is not supported. "+
		"Use '.pdb' or '.cif'.", e.Ext)
}

// ParseError is returned by Parse when the underlying format reader
// rejected the file. The reader's error is preserved and reachable
// through errors.Unwrap.
type ParseError struct {
	Name string
	Err  error
}

func (e ParseError) Error() string {
	return fmt.Sprintf("Structure '%s' could not be parsed: %v",
		e.Name, e.Err)
}

func (e ParseError) Unwrap() error { return e.Err }

// UnsupportedResidueError is returned by Validate when a residue
// survives heterogen filtering but is not a standard amino acid. This
// usually signals a modified residue, or a ligand miscategorized as
// part of the protein.
type UnsupportedResidueError struct {
	ResName string
}

func (e UnsupportedResidueError) Error() string {
	return fmt.Sprintf("Unsupported non-standard amino acid found: %s",
		e.ResName)
}

// ChainNotFoundError is returned by Validate when a selected chain
// identifier is not present in the structure.
type ChainNotFoundError struct {
	Chain string
}

func (e ChainNotFoundError) Error() string {
	return fmt.Sprintf("Selected chain not present in provided "+
		"structure: %s", e.Chain)
}
