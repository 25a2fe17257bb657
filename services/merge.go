package services

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// MergeDocuments concatenates already-rendered PDFs into one document in the
// order given. It only recombines; rendering the inputs is the callers'
// problem, so a failure here is isolable from a failure of any generator.
func MergeDocuments(docs ...[]byte) ([]byte, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("merge: no documents to merge")
	}

	readers := make([]io.ReadSeeker, len(docs))
	for i, doc := range docs {
		if len(doc) == 0 {
			return nil, fmt.Errorf("merge: document %d is empty", i)
		}
		readers[i] = bytes.NewReader(doc)
	}

	var buf bytes.Buffer
	if err := api.MergeRaw(readers, &buf, false, nil); err != nil {
		return nil, fmt.Errorf("merge: %w", err)
	}
	return buf.Bytes(), nil
}
