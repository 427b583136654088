package main

import (
	"bytes"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kalbasit/fastcdc/internal/gentables"
)

func TestWriteTablesProducesValidGo(t *testing.T) {
	t.Parallel()

	gear, err := gentables.GearTable(gentables.DefaultSeed)
	require.NoError(t, err)

	mask := gentables.MaskTable(gear)

	var buf bytes.Buffer
	require.NoError(t, writeTables(&buf, gentables.DefaultSeed, gear, mask))

	fset := token.NewFileSet()
	_, err = parser.ParseFile(fset, "tables_gen.go", buf.Bytes(), parser.AllErrors)
	require.NoError(t, err, "generator output must parse as valid Go source")
}

func TestResolveSeedFallsBackToDefault(t *testing.T) {
	t.Setenv("GEAR_SEED", "not-a-number")

	require.Equal(t, gentables.DefaultSeed, resolveSeed())
}

func TestResolveSeedReadsEnv(t *testing.T) {
	t.Setenv("GEAR_SEED", "4242")

	require.Equal(t, uint64(4242), resolveSeed())
}
