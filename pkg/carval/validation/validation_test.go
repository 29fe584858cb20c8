package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekruzvatanshoev/carval/pkg/carval/dal"
)

func TestVehicle(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name: "Minimal",
			body: `{"brand":"Tesla","model":"Model Y","year":2023}`,
		},
		{
			name: "Full",
			body: `{"brand":"Tesla","model":"Model Y Long Range","year":2023,"fuel":"Electric","mi":"28,500",
				"devs":[{"desc":"scratch","sev":"Minor"}],"regCountry":"us","insurance":150.5,"extraEquip":["tow_hitch"]}`,
		},
		{
			name:    "MissingBrand",
			body:    `{"model":"Model Y","year":2023}`,
			wantErr: "brand",
		},
		{
			name:    "YearAsString",
			body:    `{"brand":"Tesla","model":"Model Y","year":"2023"}`,
			wantErr: "year",
		},
		{
			name:    "YearOutOfRange",
			body:    `{"brand":"Tesla","model":"Model Y","year":1850}`,
			wantErr: "year",
		},
		{
			name:    "BadSeverity",
			body:    `{"brand":"Tesla","model":"Model Y","year":2023,"devs":[{"sev":"cosmetic"}]}`,
			wantErr: "sev",
		},
		{
			name:    "BadCountry",
			body:    `{"brand":"Tesla","model":"Model Y","year":2023,"regCountry":"USA"}`,
			wantErr: "regCountry",
		},
		{
			name:    "NegativeInsurance",
			body:    `{"brand":"Tesla","model":"Model Y","year":2023,"insurance":-1}`,
			wantErr: "insurance",
		},
		{
			name:    "NotJSON",
			body:    `{brand`,
			wantErr: "invalid vehicle",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Vehicle([]byte(tc.body))
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidVehicle)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestVehicleDecodes(t *testing.T) {
	v, err := Vehicle([]byte(`{"brand":"Kia","model":"Sportage","year":2021,"mi":"45,000",
		"devs":[{"desc":"dent","sev":"moderate"}],"regRegion":"midwest","tax":240}`))
	require.NoError(t, err)

	assert.Equal(t, "Kia", v.Brand)
	assert.Equal(t, 2021, v.Year)
	assert.Equal(t, "45,000", v.Mileage)
	assert.Equal(t, []dal.Deviation{{Description: "dent", Severity: dal.SeverityModerate}}, v.Deviations)
	assert.Equal(t, "midwest", v.RegRegion)
	assert.Equal(t, 240.0, v.AnnualTax)
}

func TestGarage(t *testing.T) {
	got, err := Garage([]byte(`[{"brand":"Kia","model":"Soul","year":2019},{"brand":"Ford","model":"Escape","year":2020}]`))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Ford", got[1].Brand)

	_, err = Garage([]byte(`[{"brand":"Kia","model":"Soul","year":2019},{"brand":"Ford"}]`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidVehicle)
	assert.Contains(t, err.Error(), "vehicle 1")

	_, err = Garage([]byte(`{"brand":"Kia"}`))
	assert.ErrorIs(t, err, ErrInvalidVehicle)

	empty, err := Garage([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, empty)
}
