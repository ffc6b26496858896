package caboenc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/burggraaff/pcse/cabo"
	"github.com/burggraaff/pcse/caboenc"
	"github.com/burggraaff/pcse/cabotest"
)

func parseFixture(t *testing.T) *cabo.ParameterSet {
	t.Helper()

	ps, err := cabo.ParseString(cabotest.WinterWheat())
	require.NoError(t, err)

	return ps
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input       string
		expected    caboenc.Format
		expectError bool
	}{
		"text format": {
			input:    "text",
			expected: caboenc.FormatText,
		},
		"json format": {
			input:    "json",
			expected: caboenc.FormatJSON,
		},
		"yaml format": {
			input:    "yaml",
			expected: caboenc.FormatYAML,
		},
		"toml format": {
			input:    "toml",
			expected: caboenc.FormatTOML,
		},
		"case insensitive": {
			input:    "JSON",
			expected: caboenc.FormatJSON,
		},
		"unknown format": {
			input:       "xml",
			expectError: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			format, err := caboenc.ParseFormat(tc.input)
			if tc.expectError {
				require.ErrorIs(t, err, caboenc.ErrUnknownFormat)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, format)
			}
		})
	}
}

func TestNewDocument(t *testing.T) {
	t.Parallel()

	ps := parseFixture(t)
	doc := caboenc.NewDocument(ps)

	assert.Equal(t, cabotest.WinterWheatHeader(), doc.Header)
	assert.Len(t, doc.Parameters, 6)
	assert.Equal(t, int64(99), doc.Parameters["CROP_NO"])
	assert.Equal(t, []float64{0, 0, 30, 30, 45, 30}, doc.Parameters["DTSMTB"])
}

func TestEncode_Text(t *testing.T) {
	t.Parallel()

	ps := parseFixture(t)

	out, err := caboenc.Encode(ps, caboenc.FormatText)
	require.NoError(t, err)
	assert.Equal(t, ps.String(), string(out))
}

func TestEncode_JSON(t *testing.T) {
	t.Parallel()

	ps := parseFixture(t)

	out, err := caboenc.Encode(ps, caboenc.FormatJSON)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"header": [
			"** CROP DATA FILE for use with WOFOST Version 5.4, June 1992",
			"**",
			"** WHEAT, WINTER 102",
			"** Regions: Ireland, central en southern UK (R72-R79),",
			"**          Netherlands (not R47), northern Germany (R11-R14)"
		],
		"parameters": {
			"CROP_NO": 99,
			"CRPNAM": "Winter wheat 102, Ireland, N-U.K., Netherlands, N-Germany",
			"DTSMTB": [0, 0, 30, 30, 45, 30],
			"NMINSO": 0.011,
			"NMINVE": 0.003,
			"TBASEM": -10
		}
	}`, string(out))

	assert.Equal(t, byte('\n'), out[len(out)-1])
}

func TestEncode_YAML(t *testing.T) {
	t.Parallel()

	ps := parseFixture(t)

	out, err := caboenc.Encode(ps, caboenc.FormatYAML)
	require.NoError(t, err)

	got := string(out)
	assert.Contains(t, got, "header:")
	assert.Contains(t, got, "parameters:")
	assert.Contains(t, got, "CROP_NO: 99")
	assert.Contains(t, got, "Winter wheat 102")
}

func TestEncode_TOML(t *testing.T) {
	t.Parallel()

	ps := parseFixture(t)

	out, err := caboenc.Encode(ps, caboenc.FormatTOML)
	require.NoError(t, err)

	got := string(out)
	assert.Contains(t, got, "header = [")
	assert.Contains(t, got, "[parameters]")
	assert.Contains(t, got, "CROP_NO = 99")
	assert.Contains(t, got, "DTSMTB = [")
	assert.Contains(t, got, "TBASEM = -10")
}

func TestEncode_UnknownFormat(t *testing.T) {
	t.Parallel()

	ps := parseFixture(t)

	_, err := caboenc.Encode(ps, caboenc.Format("xml"))
	assert.ErrorIs(t, err, caboenc.ErrUnknownFormat)
}
