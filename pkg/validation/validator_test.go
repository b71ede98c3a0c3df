package validation_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microshop/pkg/validation"
)

type createRequest struct {
	Name       string          `json:"name" validate:"required,max=50"`
	Price      decimal.Decimal `json:"price" validate:"required,gt=0"`
	CategoryID uuid.UUID       `json:"category_id" validate:"required"`
}

func fields(errs []validation.FieldError) map[string]string {
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		out[e.Field] = e.Rule
	}
	return out
}

func TestCheckPassesValidStruct(t *testing.T) {
	errs := validation.Check(createRequest{
		Name:       "Widget",
		Price:      decimal.RequireFromString("9.99"),
		CategoryID: uuid.New(),
	})

	assert.Nil(t, errs)
}

func TestCheckReportsMissingFields(t *testing.T) {
	errs := validation.Check(createRequest{})
	require.NotEmpty(t, errs)

	byField := fields(errs)
	assert.Contains(t, byField, "name")
	assert.Contains(t, byField, "price")
	assert.Contains(t, byField, "category_id")
}

func TestCheckTreatsNilUUIDAsMissing(t *testing.T) {
	errs := validation.Check(createRequest{
		Name:       "Widget",
		Price:      decimal.RequireFromString("9.99"),
		CategoryID: uuid.Nil,
	})

	byField := fields(errs)
	assert.Equal(t, "required", byField["category_id"])
}

func TestCheckRejectsNonPositivePrice(t *testing.T) {
	errs := validation.Check(createRequest{
		Name:       "Widget",
		Price:      decimal.NewFromInt(-1),
		CategoryID: uuid.New(),
	})

	byField := fields(errs)
	assert.Equal(t, "gt", byField["price"])
}

func TestCheckUsesJSONFieldNames(t *testing.T) {
	errs := validation.Check(createRequest{Price: decimal.NewFromInt(1), CategoryID: uuid.New()})
	require.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "name is required", errs[0].Message)
}
