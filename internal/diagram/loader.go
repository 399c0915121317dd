// =============================================================================
// UML Models - Diagram Loader
// =============================================================================
//
// This module reads a diagram XML file (the table/cell dialect written by
// draw.io / diagrams.net) and returns every cell in the document.
//
// DOCUMENT STRUCTURE:
//   Only the mxCell elements matter. They can be nested at any depth, so the
//   whole token stream is scanned rather than the children of the root:
//
//   <mxfile>
//     <diagram>
//       <mxGraphModel>
//         <root>
//           <mxCell id="2" value="Book" style="shape=table;..." parent="1"/>
//           <mxCell id="3" value="title char NOT NULL" parent="Book"/>
//         </root>
//       </mxGraphModel>
//     </diagram>
//   </mxfile>
//
// ERRORS:
//   A missing file and a document that is not well-formed XML (including a
//   second root element or text after the root) both fail with
//   ErrMalformedDiagram. A missing file additionally matches
//   ErrDiagramNotFound.
//
// =============================================================================

package diagram

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/ginjaninja78/uml-models/internal/types"
)

// CellElement is the element name of a diagram cell.
const CellElement = "mxCell"

var (
	// ErrMalformedDiagram is returned when the diagram cannot be read or
	// is not well-formed XML.
	ErrMalformedDiagram = errors.New("malformed diagram")

	// ErrDiagramNotFound is returned when the diagram file does not exist.
	ErrDiagramNotFound = errors.New("diagram not found")
)

// =============================================================================
// LOADER FUNCTIONS
// =============================================================================

// Load opens the diagram at path and returns its cells in document order.
func Load(path string) ([]types.RawCell, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w: %s", ErrMalformedDiagram, ErrDiagramNotFound, path)
		}
		return nil, fmt.Errorf("%w: failed to open %s: %v", ErrMalformedDiagram, path, err)
	}
	defer file.Close()

	cells, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cells, nil
}

// Parse reads a diagram document from r and returns its cells in document
// order. The whole document is consumed: a second root element or text
// after the root fails with ErrMalformedDiagram. Encodings other than UTF-8
// are decoded according to the XML declaration.
func Parse(r io.Reader) ([]types.RawCell, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel

	var cells []types.RawCell
	depth := 0
	sawRoot := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDiagram, err)
		}

		switch tok := token.(type) {
		case xml.StartElement:
			if depth == 0 && sawRoot {
				return nil, fmt.Errorf("%w: junk after document element: <%s>", ErrMalformedDiagram, tok.Name.Local)
			}
			sawRoot = true
			depth++

			if tok.Name.Local == CellElement {
				cells = append(cells, cellFromElement(tok))
			}

		case xml.EndElement:
			depth--

		case xml.CharData:
			if depth == 0 && len(bytes.TrimSpace(tok)) > 0 {
				return nil, fmt.Errorf("%w: text outside document element", ErrMalformedDiagram)
			}
		}
	}

	if !sawRoot {
		return nil, fmt.Errorf("%w: no root element", ErrMalformedDiagram)
	}

	return cells, nil
}

// cellFromElement copies the attributes the extractor needs.
func cellFromElement(start xml.StartElement) types.RawCell {
	var cell types.RawCell

	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "id":
			cell.ID = attr.Value
		case "value":
			cell.Value = strings.TrimSpace(attr.Value)
		case "style":
			cell.Style = attr.Value
		case "parent":
			cell.Parent = attr.Value
		}
	}

	return cell
}
