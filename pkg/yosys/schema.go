package yosys

import (
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cuejson "cuelang.org/go/encoding/json"
)

// documentSchema constrains the shape of a Yosys JSON document. The
// definitions stay open since Yosys adds fields across versions; only
// the structure the reconstruction relies on is pinned down.
const documentSchema = `
#Bit: int | "0" | "1" | "x"

#Port: {
	direction: string
	bits: [...#Bit]
	...
}

#Cell: {
	type:             string
	port_directions?: {[string]: string}
	connections?:     {[string]: [...#Bit]}
	attributes?:      {...}
	...
}

#Netname: {
	hide_name?: int
	bits: [...#Bit]
	attributes?: {
		unused_bits?: string
		...
	}
	...
}

#Module: {
	attributes?: {...}
	ports?:      {[string]: #Port}
	cells?:      {[string]: #Cell}
	netnames?:   {[string]: #Netname}
	...
}

#Document: {
	creator?: string
	modules:  {[string]: #Module}
	...
}
`

var (
	schemaOnce  sync.Once
	schemaValue cue.Value
	schemaErr   error
)

func compiledSchema() (cue.Value, error) {
	schemaOnce.Do(func() {
		ctx := cuecontext.New()
		root := ctx.CompileString(documentSchema)
		if err := root.Err(); err != nil {
			schemaErr = fmt.Errorf("yosys: failed to compile schema: %w", err)
			return
		}
		schemaValue = root.LookupPath(cue.ParsePath("#Document"))
		if err := schemaValue.Err(); err != nil {
			schemaErr = fmt.Errorf("yosys: failed to resolve schema: %w", err)
		}
	})
	return schemaValue, schemaErr
}

// Validate checks a raw document against the embedded schema before any
// decoding. It catches shape defects (a ports object holding arrays, a
// bit that is neither integer nor "0"/"1"/"x") with positions the plain
// decoder would report less precisely.
func Validate(data []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return err
	}
	if err := cuejson.Validate(data, schema); err != nil {
		return fmt.Errorf("yosys: document does not match schema: %w", err)
	}
	return nil
}
