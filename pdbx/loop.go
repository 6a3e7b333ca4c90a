package pdbx

import (
	"github.com/BurntSushi/cif"
)

// value returns the data value tagged by "key". If it does not exist,
// an empty string is returned (wrapped in a cif.Value).
func value(b *cif.DataBlock, key string) cif.Value {
	if v, ok := b.Items[key]; ok {
		return v
	}
	return cif.AsValue("")
}

// asLoop retrieves the Loop containing the data tag "key". If a loop
// does not exist, one is created with a single row with columns
// corresponding to "key" and each of the tags in "others", using an
// empty string for any absent tag.
//
// This abstracts over whether a data set in a PDBx/CIF file is
// represented as a loop or not: a category with a single row may be
// declared as plain items instead of a one-row loop.
func asLoop(b *cif.DataBlock, key string, others ...string) []cif.ValueLoop {
	tags := append([]string{key}, others...)
	asColumns := func(loop *cif.Loop) []cif.ValueLoop {
		vloop := make([]cif.ValueLoop, len(tags))
		for i, tag := range tags {
			vloop[i] = loop.Get(tag)
		}
		return vloop
	}

	if loop, ok := b.Loops[key]; ok {
		return asColumns(loop)
	}
	loop := &cif.Loop{
		Columns: make(map[string]int, len(tags)),
		Values:  make([]cif.ValueLoop, len(tags)),
	}
	for i, tag := range tags {
		loop.Columns[tag] = i
		switch v := value(b, tag).Raw().(type) {
		case string:
			loop.Values[i] = cif.AsValues([]string{v})
		case int:
			loop.Values[i] = cif.AsValues([]int{v})
		case float64:
			loop.Values[i] = cif.AsValues([]float64{v})
		default:
			panic(sf("Unknown value type %T for %s.", v, tag))
		}
	}
	return asColumns(loop)
}
