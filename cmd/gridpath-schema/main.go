// Command gridpath-schema writes the JSON schema of the /find and /ws
// messages so the browser UI can validate what it sends.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"reflect"

	"github.com/invopop/jsonschema"

	"github.com/katalvlaran/gridpath/server"
)

// messages groups both directions of the wire protocol in one document.
type messages struct {
	Request  server.FindRequest  `json:"request" jsonschema:"required"`
	Response server.FindResponse `json:"response" jsonschema:"required"`
}

func main() {
	var outPath string
	flag.StringVar(&outPath, "out", "", "output path for the JSON schema")
	flag.Parse()

	if outPath == "" {
		log.Fatal("gridpath-schema: missing -out path")
	}

	schema, err := buildSchema()
	if err != nil {
		log.Fatalf("gridpath-schema: %v", err)
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		log.Fatalf("gridpath-schema: marshal schema: %v", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		log.Fatalf("gridpath-schema: create output dir: %v", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		log.Fatalf("gridpath-schema: write schema: %v", err)
	}
}

func buildSchema() (*jsonschema.Schema, error) {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}

	schema := reflector.ReflectFromType(reflect.TypeOf(messages{}))
	if schema == nil {
		return nil, fmt.Errorf("failed to reflect message schema")
	}
	schema.Title = "gridpath messages"
	schema.Description = "FindRequest sent by the UI and the FindResponse it receives, over POST /find or a /ws text frame."
	return schema, nil
}
