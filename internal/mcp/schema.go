package mcp

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// argumentSchema validates tool arguments against a tool's inputSchema
type argumentSchema struct {
	schema *gojsonschema.Schema
}

func compileSchema(inputSchema map[string]interface{}) (*argumentSchema, error) {
	if len(inputSchema) == 0 {
		return nil, nil
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(inputSchema))
	if err != nil {
		return nil, err
	}
	return &argumentSchema{schema: schema}, nil
}

func (a *argumentSchema) validate(args json.RawMessage) error {
	if len(args) == 0 || string(args) == "null" {
		args = json.RawMessage(`{}`)
	}

	result, err := a.schema.Validate(gojsonschema.NewBytesLoader(args))
	if err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("invalid arguments: %s", strings.Join(errs, "; "))
	}

	return nil
}
