package event

import "encoding/json"

// DecodePayload converts an event payload into T. In-process publishes via
// MemoryBus already carry the concrete struct and hit the type assertion;
// payloads that arrived serialized take the JSON round-trip instead.
func DecodePayload[T any](payload interface{}) (T, error) {
	if v, ok := payload.(T); ok {
		return v, nil
	}
	var decoded T
	raw, err := json.Marshal(payload)
	if err != nil {
		return decoded, err
	}
	return decoded, json.Unmarshal(raw, &decoded)
}
