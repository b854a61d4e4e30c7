package output

import (
	"encoding/json"

	"github.com/ukaji3/tablerepair-go/pkg/tablerepair/models"
)

// ToJSON serializes any output value.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// DocumentToJSON serializes a document's table results.
func DocumentToJSON(doc *models.DocumentData, pretty bool) ([]byte, error) {
	return ToJSON(doc, pretty)
}

// TableToJSON serializes one table in the detailed shape.
func TableToJSON(ts *models.TableStructure, pretty bool) ([]byte, error) {
	return ToJSON(ToDetailed(ts), pretty)
}

// StructuredToJSON serializes one table in the structured shape.
func StructuredToJSON(ts *models.TableStructure, pretty bool) ([]byte, error) {
	return ToJSON(ToStructuredTable(ts), pretty)
}
