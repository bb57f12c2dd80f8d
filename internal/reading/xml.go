package reading

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/DavidKarlas/CsprojToVs2017/internal/models"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func trimBOM(data []byte) []byte {
	return bytes.TrimPrefix(data, utf8BOM)
}

// parseElementTree decodes an XML document into an order-preserving element
// tree. Comments and processing instructions are dropped; text is kept only
// for elements without child elements.
func parseElementTree(data []byte) (*models.Element, error) {
	decoder := xml.NewDecoder(bytes.NewReader(trimBOM(data)))
	decoder.Strict = true

	var stack []*models.Element
	var root *models.Element

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := models.NewElement(t.Name.Local)
			for _, a := range t.Attr {
				if a.Name.Local == "xmlns" || a.Name.Space == "xmlns" {
					continue
				}
				el.Attrs = append(el.Attrs, models.Attr{Name: a.Name.Local, Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("failed to parse XML: multiple root elements")
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			el := stack[len(stack)-1]
			if len(el.Children) > 0 {
				el.Text = ""
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, errors.New("failed to parse XML: document is empty")
	}
	return root, nil
}
