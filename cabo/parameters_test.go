package cabo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/burggraaff/pcse/cabo"
	"github.com/burggraaff/pcse/cabotest"
)

func TestParameterSet_Accessors(t *testing.T) {
	t.Parallel()

	ps, err := cabo.ParseString(cabotest.WinterWheat())
	require.NoError(t, err)

	assert.True(t, ps.Has("CRPNAM"))
	assert.False(t, ps.Has("TSUM1"))

	_, ok := ps.Get("TSUM1")
	assert.False(t, ok)

	assert.Equal(t, 6, ps.Len())
}

func TestParameterSet_AccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	ps, err := cabo.ParseString(cabotest.WinterWheat())
	require.NoError(t, err)

	names := ps.Names()
	names[0] = "CLOBBERED"
	assert.Equal(t, "CROP_NO", ps.Names()[0])

	header := ps.Header()
	header[0] = "CLOBBERED"
	assert.Equal(t, cabotest.WinterWheatHeader(), ps.Header())
}

func TestParameterSet_String(t *testing.T) {
	t.Parallel()

	ps, err := cabo.ParseString(cabotest.WinterWheat())
	require.NoError(t, err)

	want := cabotest.File(
		"** CROP DATA FILE for use with WOFOST Version 5.4, June 1992",
		"**",
		"** WHEAT, WINTER 102",
		"** Regions: Ireland, central en southern UK (R72-R79),",
		"**          Netherlands (not R47), northern Germany (R11-R14)",
		"------------------------------------",
		"CROP_NO: 99 <int64>",
		"TBASEM: -10 <float64>",
		"NMINSO: 0.011 <float64>",
		"NMINVE: 0.003 <float64>",
		"CRPNAM: Winter wheat 102, Ireland, N-U.K., Netherlands, N-Germany <string>",
		"DTSMTB: [0 0 30 30 45 30] <[]float64>",
	)
	assert.Equal(t, want, ps.String())
}

func TestParameterSet_StringMinimal(t *testing.T) {
	t.Parallel()

	ps, err := cabo.ParseString(cabotest.File(
		"** minimal",
		"CROP_NO = 1",
	))
	require.NoError(t, err)

	want := cabotest.File(
		"** minimal",
		"------------------------------------",
		"CROP_NO: 1 <int64>",
	)
	assert.Equal(t, want, ps.String())
}
