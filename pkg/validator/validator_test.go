package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/inventory-service/pkg/validator"
)

func TestNotBlank(t *testing.T) {
	v, err := validator.NewDefaultValidator()
	require.NoError(t, err)

	type payload struct {
		Name string `validate:"required,notblank"`
	}

	assert.NoError(t, v.Validate(payload{Name: "Widget"}))
	assert.Error(t, v.Validate(payload{Name: ""}))
	assert.Error(t, v.Validate(payload{Name: "   "}))
}
