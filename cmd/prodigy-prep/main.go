// Command prodigy-prep reads one or more structure files (PDB or
// PDBx/mmCIF), validates and normalizes each one, and prints a summary
// per file. Files are processed concurrently; each file is independent
// of the others.
package main

import (
	"flag"
	"fmt"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/Jeffail/tunny"
	"github.com/TuftsBCB/io/fasta"
	"github.com/TuftsBCB/seq"

	"github.com/opharin/prodigy"
	"github.com/opharin/prodigy/entity"
	"github.com/opharin/prodigy/util"
)

type chainList []string

func (cl *chainList) String() string { return strings.Join(*cl, " ") }

func (cl *chainList) Set(v string) error {
	*cl = append(*cl, v)
	return nil
}

var (
	flagChains chainList
	flagLigand = false
	flagSeqOut = ""
)

func init() {
	flag.Var(&flagChains, "chains",
		"A comma-joined list of chain identifiers to keep, e.g. 'A,B'.\n"+
			"May be given more than once. Every selected chain must be\n"+
			"present in the structure.")
	flag.BoolVar(&flagLigand, "lig", flagLigand,
		"When set, solvent, heterogens, hydrogens and non-standard\n"+
			"residues are kept. Use for complexes with non-protein ligands.")
	flag.StringVar(&flagSeqOut, "seq-out", flagSeqOut,
		"When set to a directory, the cleaned chain sequences of each\n"+
			"structure are written there as FASTA, one file per input.")

	util.FlagParse("structure-file [structure-file ...]",
		"Validates and normalizes each structure file given: one model, "+
			"one location per atom, protein residues only (unless -lig), "+
			"optionally restricted to the chains in -chains. Prints the "+
			"chain and residue counts of each normalized structure.")
	util.AssertNArg(1)
}

func main() {
	files := flag.Args()
	progress := util.NewProgress(len(files))

	var outLock sync.Mutex
	pool := tunny.NewFunc(util.FlagCPU, func(payload interface{}) interface{} {
		fp := payload.(string)
		s, nChains, nResidues, err := prodigy.Parse(fp, options())
		if err != nil {
			return fmt.Errorf("%s: %v", fp, err)
		}
		if len(flagSeqOut) > 0 {
			if err := writeSequences(s); err != nil {
				return fmt.Errorf("%s: %v", fp, err)
			}
		}
		outLock.Lock()
		fmt.Printf("%s: %d chains, %d residues\n", s.Name, nChains, nResidues)
		outLock.Unlock()
		return nil
	})
	defer pool.Close()

	var wg sync.WaitGroup
	for _, fp := range files {
		wg.Add(1)
		go func(fp string) {
			defer wg.Done()
			err, _ := pool.Process(fp).(error)
			progress.JobDone(err)
		}(fp)
	}
	wg.Wait()
	progress.Close()

	if progress.Failed > 0 {
		os.Exit(1)
	}
}

func options() prodigy.Options {
	return prodigy.Options{
		Selection: flagChains,
		Ligand:    flagLigand,
		Notice: func(format string, v ...interface{}) {
			util.Verbosef(format+"\n", v...)
		},
		Errf: func(format string, v ...interface{}) {
			util.Warnf(format, v...)
		},
	}
}

// writeSequences dumps the cleaned chain sequences of the structure to
// a FASTA file named after it in the -seq-out directory.
func writeSequences(s *entity.Structure) error {
	entries := make([]seq.Sequence, 0, 2)
	for _, chain := range s.Chains() {
		if len(chain.Residues) == 0 {
			continue
		}
		entries = append(entries, seq.Sequence{
			Name:     fmt.Sprintf("%s%s", s.Name, chain.Ident),
			Residues: chain.Sequence(),
		})
	}

	out, err := os.Create(path.Join(flagSeqOut, s.Name+".fasta"))
	if err != nil {
		return err
	}
	defer out.Close()
	return fasta.NewWriter(out).WriteAll(entries)
}
