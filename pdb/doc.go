/*
Package pdb reads PDB formatted coordinate files into the entity
hierarchy. The reader keeps every model, chain, residue and atom it can
make sense of, including HETATM components, alternate locations and
element symbols, and leaves all filtering decisions to the caller.

Malformed ATOM/HETATM records are skipped with a warning rather than
aborting the read; the warnings can be silenced with the Quiet option.
*/
package pdb
