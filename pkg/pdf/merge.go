package pdf

import (
	"bytes"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func init() {
	// pdfcpu should not touch user's config directory.
	api.DisableConfigDir()
}

// Merge concatenates PDFs in order and writes it to w.
func Merge(w io.Writer, pdfs [][]byte) error {
	rsc := make([]io.ReadSeeker, 0, len(pdfs))
	for _, p := range pdfs {
		rsc = append(rsc, bytes.NewReader(p))
	}
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return api.MergeRaw(rsc, w, false, conf)
}
