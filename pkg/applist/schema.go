/*
* Copyright (c) 2025 FABRICATORS S.R.L.
* Licensed under the Fabricators Public Access License (FPAL) v1.0
* See https://github.com/fabricatorsltd/FPAL for details.
 */
package applist

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/mirkobrombin/lsapps/pkg/types"
	"github.com/xeipuuv/gojsonschema"
)

// OptionsSchema reflects the JSON Schema of the options file.
func OptionsSchema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		ExpandedStruct:             true,
		AllowAdditionalProperties:  false,
		RequiredFromJSONSchemaTags: true,
	}
	return reflector.Reflect(&types.Options{})
}

// ValidateOptions checks raw options JSON against OptionsSchema. The
// returned error lists every violation.
func ValidateOptions(data []byte) error {
	schemaBytes, err := json.Marshal(OptionsSchema())
	if err != nil {
		return fmt.Errorf("failed to serialize schema: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaBytes),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}

	if !result.Valid() {
		var msgs []string
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return fmt.Errorf("invalid options: %s", strings.Join(msgs, "; "))
	}

	return nil
}
