package pdf

import (
	"context"
	"fmt"
)

// Printer prints HTML documents into PDF.
type Printer interface {
	// Print renders html and returns the PDF.
	Print(ctx context.Context, html string) ([]byte, error)

	// Close releases the browser.
	Close() error
}

// PrintDocument wraps a rendered page into a document to be printed on a sheet of A4 paper.
func PrintDocument(page []byte) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<style>
@page { size: A4; margin: 0; }
@media print { body { width: 210mm; height: 297mm; margin: 0; padding: 0; } }
body { width: 210mm; height: 297mm; margin: 0; padding: 0; }
</style>
</head>
<body>
%s
</body>
</html>
`, page)
}
