package protocol

import "encoding/json"

// Frame is the envelope for every message on the realtime channel: one JSON
// object per websocket text message. Data is left raw so that a frame with
// an event name this build does not know still decodes cleanly; dispatch
// simply finds no handler for it.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Encode marshals an event and its payload into frame bytes. A nil payload
// produces a frame with no data field.
func Encode(event string, payload any) ([]byte, error) {
	f := Frame{Event: event}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		f.Data = raw
	}
	return json.Marshal(f)
}

// Decode parses frame bytes. The payload stays raw; use UnmarshalData once
// the event name has been matched to a payload type.
func Decode(b []byte) (Frame, error) {
	var f Frame
	if err := json.Unmarshal(b, &f); err != nil {
		return Frame{}, err
	}
	return f, nil
}

// UnmarshalData decodes the frame payload into out. A frame with no data is
// a no-op, so handlers can take payloads as optional.
func (f Frame) UnmarshalData(out any) error {
	if len(f.Data) == 0 {
		return nil
	}
	return json.Unmarshal(f.Data, out)
}
