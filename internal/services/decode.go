package services

import (
	"encoding/json"
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// decodeLoose unmarshals a backend JSON body into target, tolerating the
// shapes the backend emits when something went wrong on its side: missing
// fields stay zero, nulls are skipped, numeric strings become numbers and a
// lone string becomes a one-element list.
func decodeLoose(body []byte, target any) error {
	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           target,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
