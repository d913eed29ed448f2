package aceproject

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Row is one result record as a flat field map. The service returns rows in
// two shapes depending on the requested format: dataset responses
// (format=ds) carry the fields as leaf child elements with text content,
// report responses (format=xml) carry them as attributes. Both collapse
// into the same map.
type Row map[string]string

// Get returns the named field, or "" when absent.
func (r Row) Get(key string) string {
	return r[key]
}

// Has reports whether the named field is present and non-empty.
func (r Row) Has(key string) bool {
	return r[key] != ""
}

// element is a minimal XML tree node used while collecting rows.
type element struct {
	name     string
	attrs    map[string]string
	text     strings.Builder
	children []*element
}

func (e *element) leaf() bool { return len(e.children) == 0 }

// parseRows walks an XML payload and extracts every record-like element:
// any element carrying attributes or holding only leaf children with text.
// Schema subtrees (xs:schema in dataset envelopes) are skipped.
func parseRows(data []byte) ([]Row, error) {
	root, err := parseTree(data)
	if err != nil {
		return nil, err
	}

	var rows []Row
	collectRows(root, &rows)
	return rows, nil
}

func parseTree(data []byte) (*element, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	root := &element{name: ""}
	stack := []*element{root}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed XML response: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &element{name: t.Name.Local}
			if len(t.Attr) > 0 {
				el.attrs = make(map[string]string, len(t.Attr))
				for _, a := range t.Attr {
					if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
						continue
					}
					el.attrs[a.Name.Local] = a.Value
				}
			}
			parent := stack[len(stack)-1]
			parent.children = append(parent.children, el)
			stack = append(stack, el)
		case xml.EndElement:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			stack[len(stack)-1].text.Write(t)
		}
	}
	return root, nil
}

func collectRows(el *element, rows *[]Row) {
	for _, child := range el.children {
		if child.name == "schema" {
			continue
		}
		if row := rowFrom(child); len(row) > 0 {
			*rows = append(*rows, row)
		}
		collectRows(child, rows)
	}
}

// rowFrom builds a field map for one element, combining its attributes with
// the text of its leaf children. Elements whose children nest deeper are
// containers, not rows, and contribute nothing themselves.
func rowFrom(el *element) Row {
	row := Row{}
	for k, v := range el.attrs {
		row[k] = v
	}
	for _, child := range el.children {
		if !child.leaf() {
			continue
		}
		if text := strings.TrimSpace(child.text.String()); text != "" {
			row[child.name] = text
		}
	}
	return row
}

// findField returns the first row carrying the named field, in document order.
func findField(rows []Row, key string) (string, bool) {
	for _, r := range rows {
		if r.Has(key) {
			return r.Get(key), true
		}
	}
	return "", false
}

// remoteErrorIn scans parsed rows for an embedded service error description.
func remoteErrorIn(fct string, rows []Row) error {
	if desc, ok := findField(rows, "ERRORDESCRIPTION"); ok {
		return &RemoteError{Fct: fct, Description: desc}
	}
	return nil
}
