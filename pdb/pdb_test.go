package pdb

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opharin/prodigy/entity"
)

// atomLine formats one fixed-column ATOM/HETATM record.
func atomLine(
	het bool,
	serial int,
	name string,
	alt byte,
	res string,
	chain byte,
	seqNum int,
	x, y, z, occ float64,
	element string,
) string {
	rec := "ATOM"
	if het {
		rec = "HETATM"
	}
	return fmt.Sprintf(
		"%-6s%5d %-4s%c%3s %c%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s",
		rec, serial, name, alt, res, chain, seqNum, x, y, z, occ, 0.0,
		element)
}

func parse(t *testing.T, lines []string, opts Options) *entity.Structure {
	s, err := Read(strings.NewReader(strings.Join(lines, "\n")), "test", opts)
	require.NoError(t, err)
	return s
}

func TestReadBasic(t *testing.T) {
	s := parse(t, []string{
		atomLine(false, 1, "N", ' ', "ALA", 'A', 1, 0, 0, 0, 1.0, "N"),
		atomLine(false, 2, "CA", ' ', "ALA", 'A', 1, 1, 0, 0, 1.0, "C"),
		atomLine(false, 3, "N", ' ', "GLY", 'B', 1, 9, 0, 0, 1.0, "N"),
	}, Options{})

	require.Equal(t, "test", s.Name)
	require.Len(t, s.Models, 1)
	require.Equal(t, 1, s.Models[0].Num)
	require.Len(t, s.Models[0].Chains, 2)

	ala := s.Chain("A").Residues[0]
	require.Equal(t, "ALA", ala.Name)
	require.Equal(t, 1, ala.SeqNum)
	require.EqualValues(t, entity.HetNone, ala.Het)
	require.Len(t, ala.Atoms, 2)

	ca := ala.Atom("CA")
	require.NotNil(t, ca)
	require.Equal(t, "C", ca.Element)
	require.Equal(t, 1.0, ca.X)
	require.Equal(t, 1.0, ca.Occupancy)
}

func TestReadModels(t *testing.T) {
	s := parse(t, []string{
		"MODEL        1",
		atomLine(false, 1, "N", ' ', "ALA", 'A', 1, 0, 0, 0, 1.0, "N"),
		"ENDMDL",
		"MODEL        2",
		atomLine(false, 1, "N", ' ', "ALA", 'A', 1, 5, 0, 0, 1.0, "N"),
		"ENDMDL",
	}, Options{})

	require.Len(t, s.Models, 2)
	require.Equal(t, 1, s.Models[0].Num)
	require.Equal(t, 2, s.Models[1].Num)
	require.Equal(t, 0.0, s.Models[0].Chains[0].Residues[0].Atoms[0].X)
	require.Equal(t, 5.0, s.Models[1].Chains[0].Residues[0].Atoms[0].X)
}

func TestReadAltLocs(t *testing.T) {
	s := parse(t, []string{
		atomLine(false, 1, "CA", 'A', "SER", 'A', 1, 0, 0, 0, 0.6, "C"),
		atomLine(false, 2, "CA", 'B', "SER", 'A', 1, 1, 0, 0, 0.4, "C"),
		atomLine(false, 3, "N", ' ', "SER", 'A', 1, 2, 0, 0, 1.0, "N"),
	}, Options{})

	res := s.Chain("A").Residues[0]
	require.Len(t, res.Atoms, 3)
	require.EqualValues(t, 'A', res.Atoms[0].AltLoc)
	require.True(t, res.Atoms[0].Disordered)
	require.True(t, res.Atoms[1].Disordered)
	require.False(t, res.Atoms[2].Disordered)
}

func TestReadHeterogens(t *testing.T) {
	s := parse(t, []string{
		atomLine(false, 1, "N", ' ', "ALA", 'A', 1, 0, 0, 0, 1.0, "N"),
		atomLine(true, 2, "O", ' ', "HOH", 'A', 101, 5, 0, 0, 1.0, "O"),
		atomLine(true, 3, "C1", ' ', "GLC", 'A', 201, 9, 0, 0, 1.0, "C"),
	}, Options{})

	residues := s.Chain("A").Residues
	require.Len(t, residues, 3)
	require.EqualValues(t, entity.HetNone, residues[0].Het)
	require.EqualValues(t, entity.HetWater, residues[1].Het)
	require.EqualValues(t, entity.HetOther, residues[2].Het)
}

func TestElementGuess(t *testing.T) {
	// No element columns at all: the element is guessed from the
	// atom name.
	line := fmt.Sprintf("%-6s%5d %-4s%c%3s %c%4d    %8.3f%8.3f%8.3f",
		"ATOM", 1, "CA", ' ', "ALA", 'A', 1, 0.0, 0.0, 0.0)
	s := parse(t, []string{line}, Options{})
	require.Equal(t, "C", s.Chain("A").Residues[0].Atoms[0].Element)
}

func TestSkipsBadRecords(t *testing.T) {
	var warnings []string
	opts := Options{
		Warnf: func(format string, v ...interface{}) {
			warnings = append(warnings, fmt.Sprintf(format, v...))
		},
	}
	s := parse(t, []string{
		atomLine(false, 1, "N", ' ', "ALA", 'A', 1, 0, 0, 0, 1.0, "N"),
		"ATOM  garbage line",
	}, opts)

	require.Len(t, s.Residues(), 1)
	require.NotEmpty(t, warnings)
}

func TestQuietSuppressesWarnings(t *testing.T) {
	var warnings []string
	opts := Options{
		Quiet: true,
		Warnf: func(format string, v ...interface{}) {
			warnings = append(warnings, fmt.Sprintf(format, v...))
		},
	}
	parse(t, []string{
		atomLine(false, 1, "N", ' ', "ALA", 'A', 1, 0, 0, 0, 1.0, "N"),
		"ATOM  garbage line",
	}, opts)

	require.Empty(t, warnings)
}

func TestEmptyInput(t *testing.T) {
	_, err := Read(strings.NewReader("TITLE     NOTHING HERE\n"), "x",
		Options{})
	require.Error(t, err)
}
