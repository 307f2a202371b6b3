package inline

import (
	"encoding/json"
	"io"
	"reflect"

	"github.com/apod-cli/apod/apod"
	"github.com/invopop/jsonschema"
)

// Output is the JSON document written in json mode.
type Output struct {
	Search string        `json:"search" jsonschema:"description=Title filter, empty when listing everything"`
	Result []*apod.Entry `json:"result"`
}

func writeJson(out io.Writer, entries []*apod.Entry, options *Options) error {
	if entries == nil {
		entries = []*apod.Entry{}
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(&Output{
		Search: options.Search,
		Result: entries,
	})
}

// Schema describes Output as a JSON schema.
func Schema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		return t.Name()
	}
	return reflector.Reflect(&Output{})
}
