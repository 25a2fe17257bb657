package services

import "bytes"

// bytesReader wraps a generated document for readers like excelize.OpenReader
// and pdfcpu's api helpers.
func bytesReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}
