package catalog

import (
	"encoding/json"
	"os"

	"github.com/jonathan/marketpulse/internal/schemas"
	"github.com/jonathan/marketpulse/internal/types"
)

// catalogFile is the on-disk shape produced by the ingestion step.
type catalogFile struct {
	Items []types.Item `json:"items"`
}

// LoadFile reads a catalog JSON file and builds the in-memory catalog.
// When schemaPath is non-empty the raw JSON is validated against the
// item-catalog schema before decoding, so a malformed ingestion output fails
// the build with field-level errors instead of a partial catalog.
func LoadFile(path, schemaPath string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Message: "failed to read catalog file " + path, Cause: err}
	}

	if schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, data); err != nil {
			return nil, &LoadError{Message: "catalog schema validation failed", Cause: err}
		}
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, &LoadError{Message: "failed to parse catalog JSON", Cause: err}
	}

	return New(file.Items)
}
