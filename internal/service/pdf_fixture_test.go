package service

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dinethlive/dpdf-planner/internal/domain"
)

// testLogger is a no-op domain.Logger for service tests.
type testLogger struct{}

func (testLogger) Info(msg string, fields ...interface{})             {}
func (testLogger) Error(msg string, err error, fields ...interface{}) {}
func (testLogger) Debug(msg string, fields ...interface{})            {}
func (testLogger) Warn(msg string, fields ...interface{})             {}

var _ domain.Logger = testLogger{}

// writeTestPDF writes a minimal but well-formed PDF with one page per entry
// in rotations. A negative rotation omits the Rotate entry entirely so tests
// can cover the default-to-zero path. Returns the file path.
func writeTestPDF(t *testing.T, rotations []int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.pdf")
	if err := os.WriteFile(path, buildTestPDF(rotations), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

// buildTestPDF assembles the document body and a correct xref table. Object
// layout: 1 catalog, 2 page tree, 3..n+2 pages, n+3 shared contents stream.
func buildTestPDF(rotations []int) []byte {
	n := len(rotations)
	contentsObj := n + 3

	kids := make([]string, n)
	for i := range kids {
		kids[i] = fmt.Sprintf("%d 0 R", i+3)
	}

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), n),
	}
	for _, rot := range rotations {
		rotate := ""
		if rot >= 0 {
			rotate = fmt.Sprintf(" /Rotate %d", rot)
		}
		objects = append(objects, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << >> /Contents %d 0 R%s >>",
			contentsObj, rotate))
	}
	stream := "BT ET"
	objects = append(objects, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects)+1)
	for i, body := range objects {
		offsets[i+1] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, body)
	}

	xrefOffset := buf.Len()
	size := len(objects) + 1
	fmt.Fprintf(&buf, "xref\n0 %d\n", size)
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i < size; i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", size, xrefOffset)
	return buf.Bytes()
}
