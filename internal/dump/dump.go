// Package dump persists raw API response payloads to timestamped files for
// offline inspection.
package dump

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Writer writes one file per response into Dir.
type Writer struct {
	Dir string
	// Now is overridable for tests; nil means time.Now.
	Now func() time.Time
}

// Write stores body as acetime_<fct>_<timestamp>.xml and returns the path.
// The payload is pretty-printed when it parses as XML, otherwise stored as-is.
func (w *Writer) Write(fct string, body []byte) (string, error) {
	now := time.Now
	if w.Now != nil {
		now = w.Now
	}
	name := fmt.Sprintf("acetime_%s_%s.xml", fct, now().Format("20060102-150405"))
	path := filepath.Join(w.Dir, name)

	if err := os.WriteFile(path, Indent(body), 0o600); err != nil {
		return "", fmt.Errorf("writing dump file: %w", err)
	}
	return path, nil
}

// Indent re-encodes an XML document with two-space indentation. Payloads
// that do not parse as XML are returned unchanged.
func Indent(data []byte) []byte {
	dec := xml.NewDecoder(bytes.NewReader(data))
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return data
		}
		// Drop inter-element whitespace so re-indenting stays clean.
		if cd, ok := tok.(xml.CharData); ok && len(bytes.TrimSpace(cd)) == 0 {
			continue
		}
		if err := enc.EncodeToken(tok); err != nil {
			return data
		}
	}
	if err := enc.Flush(); err != nil {
		return data
	}
	return buf.Bytes()
}
