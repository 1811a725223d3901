package protocol_test

import (
	"testing"

	"pinopoly/pkg/protocol"
)

func TestFrame_EncodeDecode(t *testing.T) {
	b, err := protocol.Encode(protocol.EventPlaceBid, protocol.PlaceBid{
		PlayerID:   "p1",
		PropertyID: "boardwalk",
		Amount:     320,
	})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	f, err := protocol.Decode(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if f.Event != protocol.EventPlaceBid {
		t.Fatalf("event = %q, want %q", f.Event, protocol.EventPlaceBid)
	}

	var bid protocol.PlaceBid
	if err := f.UnmarshalData(&bid); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if bid.Amount != 320 || bid.PropertyID != "boardwalk" {
		t.Fatalf("payload mismatch: %+v", bid)
	}
}

func TestFrame_NoData(t *testing.T) {
	b, err := protocol.Encode(protocol.EventRequestGameState, nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	f, err := protocol.Decode(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(f.Data) != 0 {
		t.Fatalf("expected empty data, got %s", f.Data)
	}

	// Unmarshalling absent data is a no-op.
	var ref protocol.PlayerRef
	if err := f.UnmarshalData(&ref); err != nil {
		t.Fatalf("unmarshal empty data: %v", err)
	}
}

func TestFrame_UnknownEventRoundTrips(t *testing.T) {
	raw := []byte(`{"event":"jackpot_hit","data":{"amount":9000}}`)
	f, err := protocol.Decode(raw)
	if err != nil {
		t.Fatalf("decode unknown event: %v", err)
	}
	if f.Event != "jackpot_hit" {
		t.Fatalf("event = %q", f.Event)
	}
}
