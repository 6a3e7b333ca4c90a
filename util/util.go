// Package util provides the small helpers shared by the prodigy
// commands: flag/usage boilerplate, assertions that exit the program,
// and leveled stderr output.
package util

import (
	"flag"
	"fmt"
	"os"
	"path"
	"strings"
)

var (
	// FlagCPU is the number of workers used by commands that process
	// several files at once.
	FlagCPU = 1

	// FlagQuiet suppresses all informational output.
	FlagQuiet = false

	flagUsage string
	flagArgs  string
)

func init() {
	flag.IntVar(&FlagCPU, "cpu", FlagCPU,
		"The number of structure files to process concurrently.")
	flag.BoolVar(&FlagQuiet, "quiet", FlagQuiet,
		"When set, informational diagnostics are suppressed.")
}

// FlagParse sets the program's usage line and parses the command line.
func FlagParse(positional, desc string) {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] %s\n",
			path.Base(os.Args[0]), positional)
		if len(desc) > 0 {
			fmt.Fprintf(os.Stderr, "\n%s\n", wrap(desc, 76))
		}
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flag.PrintDefaults()
		os.Exit(1)
	}
	flag.Parse()
}

// Usage prints the program's usage and exits.
func Usage() {
	flag.Usage()
}

// NArg returns the number of positional arguments.
func NArg() int { return flag.NArg() }

// Arg returns the i'th positional argument.
func Arg(i int) string { return flag.Arg(i) }

// AssertNArg exits with a usage message when the number of positional
// arguments is less than n.
func AssertNArg(n int) {
	if flag.NArg() < n {
		Usage()
	}
}

// Assert exits the program when err is not nil. The optional format
// and arguments prefix the error message.
func Assert(err error, v ...interface{}) {
	if err == nil {
		return
	}
	if len(v) > 0 {
		format := v[0].(string)
		Fatalf(format+": %v", append(v[1:], err)...)
	}
	Fatalf("%v", err)
}

// Fatalf prints a message to stderr and exits with a failing status.
func Fatalf(format string, v ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", v...)
	os.Exit(1)
}

// Warnf prints a warning to stderr. Warnings are shown even when
// FlagQuiet is set.
func Warnf(format string, v ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", v...)
}

// Verbosef prints informational output to stderr unless FlagQuiet
// is set.
func Verbosef(format string, v ...interface{}) {
	if FlagQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, format, v...)
}

// OpenFile opens a file for reading and exits the program on failure.
func OpenFile(fp string) *os.File {
	f, err := os.Open(fp)
	Assert(err, "Could not open file '%s'", fp)
	return f
}

// CreateFile creates (or truncates) a file and exits the program on
// failure.
func CreateFile(fp string) *os.File {
	f, err := os.Create(fp)
	Assert(err, "Could not create file '%s'", fp)
	return f
}

// wrap breaks a one-line description into lines of at most n columns.
func wrap(s string, n int) string {
	words := strings.Fields(s)
	var lines []string
	var cur string
	for _, w := range words {
		if len(cur)+len(w)+1 > n {
			lines = append(lines, cur)
			cur = w
			continue
		}
		if len(cur) == 0 {
			cur = w
		} else {
			cur += " " + w
		}
	}
	if len(cur) > 0 {
		lines = append(lines, cur)
	}
	return strings.Join(lines, "\n")
}
