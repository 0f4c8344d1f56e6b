// Package schema checks API responses against the documented activity shape.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	invjsonschema "github.com/invopop/jsonschema"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/usestring/boredq/pkg/client"
)

const activityResource = "activity.json"

// Validator validates response bodies against the activity schema.
type Validator struct {
	schema *jsonschema.Schema
	doc    map[string]any
}

// NewActivityValidator reflects the JSON Schema of client.Activity and
// compiles it. Unknown top-level fields are allowed.
func NewActivityValidator() (*Validator, error) {
	r := &invjsonschema.Reflector{
		DoNotReference:            true,
		ExpandedStruct:            true,
		AllowAdditionalProperties: true,
	}
	reflected := r.Reflect(&client.Activity{})
	reflected.ID = ""

	raw, err := json.Marshal(reflected)
	if err != nil {
		return nil, fmt.Errorf("marshaling schema: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshaling schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(activityResource, doc); err != nil {
		return nil, fmt.Errorf("adding schema resource: %w", err)
	}
	compiled, err := compiler.Compile(activityResource)
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}

	return &Validator{schema: compiled, doc: doc}, nil
}

// Document returns the reflected schema as a generic JSON document.
func (v *Validator) Document() map[string]any {
	return v.doc
}

// Validate returns one message per violation, sorted by location. A nil
// slice means the body matches.
func (v *Validator) Validate(data []byte) []string {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return []string{fmt.Sprintf("invalid JSON: %s", err.Error())}
	}

	err := v.schema.Validate(value)
	if err == nil {
		return nil
	}

	var vErr *jsonschema.ValidationError
	if !errors.As(err, &vErr) {
		return []string{err.Error()}
	}

	seen := make(map[string]bool)
	var out []string
	collect(vErr, func(msg string) {
		if !seen[msg] {
			seen[msg] = true
			out = append(out, msg)
		}
	})
	sort.Strings(out)
	return out
}

var printer = message.NewPrinter(language.English)

// collect reports leaf errors, skipping the wrapper messages the validator
// adds for the root schema.
func collect(err *jsonschema.ValidationError, emit func(string)) {
	if err.ErrorKind != nil && len(err.Causes) == 0 {
		msg := err.ErrorKind.LocalizedString(printer)
		if !strings.HasPrefix(msg, "doesn't validate with") {
			path := "/" + strings.Join(err.InstanceLocation, "/")
			emit(path + ": " + msg)
		}
	}
	for _, cause := range err.Causes {
		collect(cause, emit)
	}
}
