// Package validation checks inbound vehicle documents against the vehicle
// JSON schema before they reach the engine.
package validation

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/nekruzvatanshoev/carval/pkg/carval/dal"
)

// ErrInvalidVehicle is wrapped by every schema or decoding failure.
var ErrInvalidVehicle = errors.New("invalid vehicle")

//go:embed vehicle.schema.json
var vehicleSchemaJSON []byte

var vehicleSchema = mustSchema(vehicleSchemaJSON)

func mustSchema(raw []byte) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		panic(fmt.Sprintf("validation: bad embedded schema: %v", err))
	}
	return s
}

// Vehicle validates a single vehicle document and decodes it.
func Vehicle(data []byte) (dal.Vehicle, error) {
	var v dal.Vehicle
	if err := check(gojsonschema.NewBytesLoader(data)); err != nil {
		return v, err
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("%w: %v", ErrInvalidVehicle, err)
	}
	return v, nil
}

// Garage validates a JSON array of vehicle documents. The error names the
// index of the first invalid vehicle.
func Garage(data []byte) ([]dal.Vehicle, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: garage must be a JSON array: %v", ErrInvalidVehicle, err)
	}
	out := make([]dal.Vehicle, 0, len(raw))
	for i, doc := range raw {
		v, err := Vehicle(doc)
		if err != nil {
			return nil, fmt.Errorf("vehicle %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func check(doc gojsonschema.JSONLoader) error {
	result, err := vehicleSchema.Validate(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidVehicle, err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("%w: %s", ErrInvalidVehicle, strings.Join(errs, "; "))
	}
	return nil
}
