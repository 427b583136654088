package fastcdc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewMasksValid(t *testing.T) {
	t.Parallel()

	m, err := newMasks(13, NormalLevel2) // avg_size ~ 8192
	require.NoError(t, err)
	require.NotZero(t, m.maskS)
	require.NotZero(t, m.maskL)
	require.Equal(t, m.maskS<<1, m.maskSLS)
	require.Equal(t, m.maskL<<1, m.maskLLS)
}

func TestNewMasksOutOfRange(t *testing.T) {
	t.Parallel()

	_, err := newMasks(2, NormalLevel3)
	require.Error(t, err)
}

func TestNewMasksNormalNoneEqualsSameIndex(t *testing.T) {
	t.Parallel()

	m, err := newMasks(13, NormalNone)
	require.NoError(t, err)
	require.Equal(t, m.maskS, m.maskL)
}

func TestNewMasksHigherNormalWidensSpread(t *testing.T) {
	t.Parallel()

	none, err := newMasks(15, NormalNone)
	require.NoError(t, err)

	wide, err := newMasks(15, NormalLevel3)
	require.NoError(t, err)

	require.NotEqual(t, none.maskS, wide.maskS)
	require.NotEqual(t, none.maskL, wide.maskL)
}
