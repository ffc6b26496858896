// Package cabotest provides helpers for constructing CABO parameter file
// content in tests: line joiners with explicit endings and a canned crop
// file.
package cabotest

import "strings"

// File joins lines into CABO file content with LF line endings and a
// trailing newline, the shape of a file read from disk.
//
// Example:
//
//	content := cabotest.File(
//		"** header",
//		"CROP_NO = 99",
//	) // -> "** header\nCROP_NO = 99\n"
func File(lines ...string) string {
	var sb strings.Builder

	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// FileCRLF joins lines into CABO file content with CRLF line endings, the
// shape of a file written on Windows.
func FileCRLF(lines ...string) string {
	var sb strings.Builder

	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteString("\r\n")
	}

	return sb.String()
}
