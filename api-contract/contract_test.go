package apicontract_test

import (
	"context"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apicontract "github.com/tuanvumaihuynh/inventory-service/api-contract"
)

func TestEmbeddedContractIsValid(t *testing.T) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(apicontract.GetSpecBytes())
	require.NoError(t, err)

	require.NoError(t, doc.Validate(context.Background()))

	// Every route the server registers must be documented.
	for _, path := range []string{
		"/health",
		"/health/db",
		"/products",
		"/products/low-stock",
		"/products/{productID}",
		"/products/{productID}/increase-stock",
		"/products/{productID}/decrease-stock",
	} {
		assert.NotNil(t, doc.Paths.Find(path), "missing path %s", path)
	}
}
