// Package docs holds the OpenAPI document of the clinic API and publishes it
// to the swag registry read by echo-swagger.
package docs

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var document []byte

// Load parses and validates the embedded document.
func Load(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("parse openapi document: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

// Register validates the document and makes it the default swag document,
// served by echo-swagger as /swagger/doc.json. Calling it again is a no-op.
func Register(ctx context.Context) error {
	if swag.GetSwagger(swag.Name) != nil {
		return nil
	}

	doc, err := Load(ctx)
	if err != nil {
		return err
	}

	raw, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode openapi document: %w", err)
	}

	swag.Register(swag.Name, swaggerDoc{json: string(raw)})
	return nil
}
