package protocol

import (
	"errors"
	"testing"
)

func TestParseRequestThreeSegments(t *testing.T) {
	req, err := ParseRequest("ADD|Cars|Toyota,Camry,2022,ABC123,45.50,Available,White,12000\n")
	if err != nil {
		t.Fatalf("parse request: %v", err)
	}
	if req.Action != VerbAdd || req.Table != "Cars" {
		t.Fatalf("unexpected action/table: %+v", req)
	}
	if req.Payload != "Toyota,Camry,2022,ABC123,45.50,Available,White,12000" {
		t.Fatalf("unexpected payload: %q", req.Payload)
	}
}

func TestParseRequestPayloadKeepsPipes(t *testing.T) {
	req, err := ParseRequest("ADD|VehicleMaintenance|3|2024-05-01|Oil change, filters|89.99")
	if err != nil {
		t.Fatalf("parse request: %v", err)
	}
	if req.Payload != "3|2024-05-01|Oil change, filters|89.99" {
		t.Fatalf("pipe payload truncated: %q", req.Payload)
	}
}

func TestParseRequestMissingPayloadIsEmpty(t *testing.T) {
	req, err := ParseRequest("LIST|Cars")
	if err != nil {
		t.Fatalf("parse request: %v", err)
	}
	if req.Payload != "" {
		t.Fatalf("expected empty payload, got %q", req.Payload)
	}
}

func TestParseRequestSingleSegmentFails(t *testing.T) {
	_, err := ParseRequest("GARBAGE\n")
	if !errors.Is(err, ErrMalformedRequest) {
		t.Fatalf("expected ErrMalformedRequest, got %v", err)
	}
}

func TestParseResponseKeepsPipesInPayload(t *testing.T) {
	resp, err := ParseResponse("SUCCESS|3|2024-05-01|Oil change|89.99\n")
	if err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if !resp.IsSuccess() {
		t.Fatalf("expected success, got %+v", resp)
	}
	if resp.Payload != "3|2024-05-01|Oil change|89.99" {
		t.Fatalf("pipe payload truncated: %q", resp.Payload)
	}
}

func TestParseResponseEmptyPayload(t *testing.T) {
	resp, err := ParseResponse("SUCCESS|")
	if err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if resp.Payload != "" {
		t.Fatalf("expected empty payload, got %q", resp.Payload)
	}
}

func TestRequestEncodeRoundTrip(t *testing.T) {
	in := Request{Action: VerbFind, Table: "Customers", Payload: "7"}
	out, err := ParseRequest(in.Encode())
	if err != nil {
		t.Fatalf("parse encoded request: %v", err)
	}
	if out != in {
		t.Fatalf("round trip mismatch: in=%+v out=%+v", in, out)
	}
}
