package cabotest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/burggraaff/pcse/cabotest"
)

func TestFile(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		want  string
		input []string
	}{
		"no lines": {
			input: nil,
			want:  "",
		},
		"single line": {
			input: []string{"CROP_NO = 99"},
			want:  "CROP_NO = 99\n",
		},
		"multiple lines": {
			input: []string{"** header", "CROP_NO = 99"},
			want:  "** header\nCROP_NO = 99\n",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := cabotest.File(tc.input...)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFileCRLF(t *testing.T) {
	t.Parallel()

	got := cabotest.FileCRLF("** header", "CROP_NO = 99")
	assert.Equal(t, "** header\r\nCROP_NO = 99\r\n", got)
}
