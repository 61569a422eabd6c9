package dto_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Dulceria-api/internal/application/dto"
	"github.com/jhoicas/Dulceria-api/internal/domain"
)

func TestValidate_CreateSweetRequest(t *testing.T) {
	ok := dto.CreateSweetRequest{Name: "Fudge", Price: decimal.NewFromInt(3), Quantity: 0}
	assert.NoError(t, dto.Validate(ok))

	noName := ok
	noName.Name = ""
	err := dto.Validate(noName)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "name es requerido")

	negative := ok
	negative.Quantity = -1
	assert.ErrorIs(t, dto.Validate(negative), domain.ErrInvalidInput)

	badImage := ok
	badImage.Image = "no es url"
	assert.ErrorIs(t, dto.Validate(badImage), domain.ErrInvalidInput)
}

func TestValidate_StockRequest(t *testing.T) {
	assert.NoError(t, dto.Validate(dto.StockRequest{Quantity: 1}))
	err := dto.Validate(dto.StockRequest{Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "quantity debe ser mayor que 0")
}

func TestValidate_RegisterRequest(t *testing.T) {
	assert.NoError(t, dto.Validate(dto.RegisterRequest{Username: "shopper", Password: "x"}))
	assert.ErrorIs(t, dto.Validate(dto.RegisterRequest{Username: "shopper"}), domain.ErrInvalidInput)
}
