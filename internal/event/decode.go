package event

import "encoding/json"

// DecodePayload returns the payload as T. In-process events already carry T;
// anything else (e.g. a map decoded from JSON) is converted by re-encoding.
func DecodePayload[T any](payload any) (T, error) {
	if v, ok := payload.(T); ok {
		return v, nil
	}
	var out T
	raw, err := json.Marshal(payload)
	if err != nil {
		return out, err
	}
	err = json.Unmarshal(raw, &out)
	return out, err
}
