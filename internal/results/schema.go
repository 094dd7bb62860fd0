package results

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// documentSchema describes the JSON results document.
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["format", "version", "tests"],
  "properties": {
    "format": {"const": "stride-results"},
    "version": {"type": "integer", "minimum": 1},
    "meta": {
      "type": "object",
      "properties": {
        "iterations": {"type": "integer", "minimum": 0},
        "timePerIteration": {"type": "integer", "minimum": 0},
        "suite": {"type": "string"},
        "filter": {"type": "string"},
        "goVersion": {"type": "string"},
        "platform": {"type": "string"},
        "created": {"type": "string"}
      }
    },
    "tests": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "samples"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "samples": {
            "type": "array",
            "items": {"type": "integer", "minimum": 0}
          }
        }
      }
    }
  }
}`

// SchemaErrors lists every schema violation found in a document.
type SchemaErrors []string

func (e SchemaErrors) Error() string {
	return "invalid results document: " + strings.Join(e, "; ")
}

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("results.json", strings.NewReader(documentSchema)); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	return compiler.Compile("results.json")
})

// validateSchema checks a JSON document against documentSchema.
func validateSchema(data []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return collectSchemaErrors(verr)
		}
		return err
	}
	return nil
}

// collectSchemaErrors flattens the leaf causes of a validation error.
func collectSchemaErrors(err *jsonschema.ValidationError) SchemaErrors {
	var out SchemaErrors
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			loc := e.InstanceLocation
			if loc == "" {
				loc = "/"
			}
			out = append(out, fmt.Sprintf("%s: %s", loc, e.Message))
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(err)
	return out
}
