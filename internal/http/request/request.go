// Package request decodes and validates JSON payloads. Unknown fields are
// rejected so loose update bodies cannot smuggle writes past validation.
package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Decode strictly decodes the body into dst and validates its struct tags.
// The returned error message names the first failing field and is safe to
// show to the caller.
func Decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}

	if err := validate.Struct(dst); err != nil {
		var validationErrs validator.ValidationErrors

		if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
			first := validationErrs[0]
			return fmt.Errorf("invalid field %s: failed %s check", first.Field(), first.Tag())
		}

		return err
	}

	return nil
}
