package payload

import (
	"bytes"

	"github.com/ledongthuc/pdf"
)

var pdfMagic = []byte("%PDF-")

// Info describes a decoded resume payload.
type Info struct {
	SizeBytes int64
	PageCount int
}

// Inspect checks that data carries the PDF magic header and reports its
// size and page count. The page count is best-effort: files with damaged
// cross-reference tables still pass with a count of zero, since viewers
// tolerate far more than strict parsers do.
func Inspect(data []byte) (Info, error) {
	if !bytes.HasPrefix(data, pdfMagic) {
		return Info{}, ErrInvalidType
	}
	info := Info{SizeBytes: int64(len(data))}
	info.PageCount = countPages(data)
	return info, nil
}

// countPages probes the page tree. The parser panics on some malformed
// inputs, so the probe is fully contained here.
func countPages(data []byte) (n int) {
	defer func() {
		if recover() != nil {
			n = 0
		}
	}()
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0
	}
	return reader.NumPage()
}
