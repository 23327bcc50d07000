// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package glossary

import (
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/acronym-table/pkg/types"
)

// ExportFile is the document encoded by EncodeExport.
type ExportFile struct {
	Acronyms []types.Entry `json:"acronyms" yaml:"acronyms"`
}

// EncodeExport renders entries as YAML or JSON. Other formats fail with
// types.ErrInvalidConfiguration.
func EncodeExport(format types.ExportFormat, entries []types.Entry) ([]byte, error) {
	file := ExportFile{Acronyms: entries}
	if file.Acronyms == nil {
		file.Acronyms = []types.Entry{}
	}

	switch format {
	case types.ExportYAML:
		data, err := yaml.Marshal(&file)
		if err != nil {
			return nil, fmt.Errorf("marshaling YAML: %w", err)
		}
		return data, nil
	case types.ExportJSON:
		data, err := json.MarshalIndent(&file, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling JSON: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("%w: unsupported export format %q", types.ErrInvalidConfiguration, format)
	}
}
