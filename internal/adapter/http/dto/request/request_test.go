package request

import (
	"encoding/json"
	"math"
	"testing"
)

func TestPlaceOrderRequest_Decode(t *testing.T) {
	body := `{
		"items": [
			{"file_url": "https://files/a.pdf", "file_name": "a.pdf", "pages": 12, "copies": "3"},
			{"file_name": "b.pdf", "pages": "1-3,5", "page_count": "x", "copies": 2.9}
		],
		"total_amount": "47.20"
	}`

	var req PlaceOrderRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	specs := req.ToSpecs()
	if len(specs) != 2 {
		t.Fatalf("expected 2 specs, got %d", len(specs))
	}
	if specs[0].Pages != "12" || specs[0].Copies != 3 {
		t.Fatalf("unexpected first spec: %+v", specs[0])
	}
	if specs[1].Pages != "1-3,5" || specs[1].PageCount != 0 || specs[1].Copies != 2 {
		t.Fatalf("unexpected second spec: %+v", specs[1])
	}
	if got := req.ResolveTotal(); got != 47.2 {
		t.Fatalf("expected 47.2, got %v", got)
	}
}

func TestPlaceOrderRequest_ResolveTotal(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		nan  bool
		want float64
	}{
		{name: "number", raw: `23.6`, want: 23.6},
		{name: "numeric string", raw: `" 23.60 "`, want: 23.6},
		{name: "missing", raw: ``, nan: true},
		{name: "null", raw: `null`, nan: true},
		{name: "text", raw: `"abc"`, nan: true},
		{name: "object", raw: `{}`, nan: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PlaceOrderRequest{TotalAmount: json.RawMessage(tc.raw)}.ResolveTotal()
			if tc.nan {
				if !math.IsNaN(got) {
					t.Fatalf("expected NaN, got %v", got)
				}
				return
			}
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestCalculatePriceRequest_ResolvePageCount(t *testing.T) {
	var req CalculatePriceRequest
	if err := json.Unmarshal([]byte(`{"pages":"1-5,10","copies":1}`), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := req.ResolvePageCount(); got != 6 {
		t.Fatalf("expected 6 pages from selection, got %d", got)
	}

	req.PageCount = 40
	if got := req.ResolvePageCount(); got != 40 {
		t.Fatalf("expected explicit page_count to win, got %d", got)
	}
}

func TestFlexInt_RejectsOutOfRange(t *testing.T) {
	var v FlexInt
	if err := json.Unmarshal([]byte(`1e20`), &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0 {
		t.Fatalf("expected 0 for out-of-range value, got %d", v)
	}
}
