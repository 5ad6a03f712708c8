package validator

import (
	"testing"

	"house_rent_web/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_SearchForm(t *testing.T) {
	v := New()

	ok := dto.SearchForm{MinPrice: "3", MaxPrice: "7.5", ProvinceID: "1", Page: 1}
	assert.NoError(t, v.Validate(ok))

	empty := dto.SearchForm{Page: 1}
	assert.NoError(t, v.Validate(empty), "all filters are optional")

	bad := dto.SearchForm{
		MinPrice:   "-1",
		ProvinceID: "hanoi",
		MinAcreage: "50",
		MaxAcreage: "20",
		Page:       0,
	}
	err := v.Validate(bad)
	require.Error(t, err)

	vErr, isValidation := err.(*ValidationError)
	require.True(t, isValidation)
	assert.Equal(t, "Must be a non-negative number", vErr.Errors["min_price"])
	assert.Equal(t, "Must be a whole number", vErr.Errors["province_id"])
	assert.Equal(t, "Must not be less than min_acreage", vErr.Errors["max_acreage"])
	assert.Contains(t, vErr.Errors, "page")
	assert.Contains(t, vErr.Error(), "field 'max_acreage'")
}

func TestValidate_SearchFormNonFinite(t *testing.T) {
	v := New()

	for _, raw := range []string{"Inf", "+Inf", "-Inf", "infinity", "NaN", "1e999"} {
		t.Run(raw, func(t *testing.T) {
			err := v.Validate(dto.SearchForm{MinPrice: raw, MaxAcreage: raw, Page: 1})
			require.Error(t, err)

			vErr, isValidation := err.(*ValidationError)
			require.True(t, isValidation)
			assert.Equal(t, "Must be a non-negative number", vErr.Errors["min_price"])
			assert.Equal(t, "Must be a non-negative number", vErr.Errors["max_acreage"])
		})
	}
}

func TestValidate_CompareAPIRequest(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(dto.CompareAPIRequest{HouseRentIDs: []int{1, 2}}))

	err := v.Validate(dto.CompareAPIRequest{HouseRentIDs: []int{1, 0}})
	require.Error(t, err)
	assert.IsType(t, &ValidationError{}, err)
}
