package main

import (
	"fmt"
	"io"
	"text/template"
)

const tablesTemplate = `// Code generated by cmd/fastcdc-gen from GEAR_SEED={{printf "%#x" .Seed}}; DO NOT EDIT.
//
// gearTable is the 256-entry Gear-hash lookup table, one pseudo-random
// uint64 per byte value, produced by a ChaCha20 stream keyed on the seed
// above. gearTableLS is the same table with every entry pre-shifted left
// by one bit, so the byte-pair-unrolled inner loop in cut.go can skip one
// shift per even-indexed byte.
//
// maskTable holds the 26 normalized-chunking masks selected offline by
// this generator's bias/correlation analysis over gearTable, indexed by
// popcount bucket floor(log2(avg_size)) +/- normalization offset.
package fastcdc

var gearTable = [256]uint64{
{{- range $i, $v := .Gear}}{{if eq (mod $i 4) 0}}
	{{end}}{{printf "%#018x, " $v}}{{- end}}
}

var maskTable = [26]uint64{
{{- range $i, $v := .Mask}}
	{{printf "%#018x, // %d" $v $i}}{{- end}}
}

// gearTableLS is gearTable with every entry left-shifted by one bit, used
// by the byte-pair-unrolled step in cut.go.
var gearTableLS = [256]uint64{}

func init() {
	for i, v := range gearTable {
		gearTableLS[i] = v << 1
	}
}
`

var tablesTmpl = template.Must(template.New("tables").Funcs(template.FuncMap{
	"mod": func(a, b int) int { return a % b },
}).Parse(tablesTemplate))

type tablesData struct {
	Seed uint64
	Gear [256]uint64
	Mask [26]uint64
}

func writeTables(w io.Writer, seed uint64, gear [256]uint64, mask [26]uint64) error {
	if err := tablesTmpl.Execute(w, tablesData{Seed: seed, Gear: gear, Mask: mask}); err != nil {
		return fmt.Errorf("fastcdc-gen: render tables: %w", err)
	}

	return nil
}
