package types

import (
	"encoding/json"
	"testing"
)

func TestExFloat_UnmarshalJSON_Coercion(t *testing.T) {
	var record struct {
		A ExFloat `json:"a"`
		B ExFloat `json:"b"`
		C ExFloat `json:"c"`
		D ExFloat `json:"d"`
		E ExFloat `json:"e"`
		F ExFloat `json:"f"`
	}

	data := []byte(`{"a": 1.5, "b": "2.25", "c": "", "d": null, "e": "junk", "f": "NULL"}`)
	if err := json.Unmarshal(data, &record); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if !record.A.Valid || record.A.Float64 != 1.5 {
		t.Fatalf("A = %+v, want valid 1.5", record.A)
	}
	if !record.B.Valid || record.B.Float64 != 2.25 {
		t.Fatalf("B = %+v, want valid 2.25", record.B)
	}
	// empty string, null, garbage and "NULL" must all become unknown, never zero
	for name, f := range map[string]ExFloat{"C": record.C, "D": record.D, "E": record.E, "F": record.F} {
		if f.Valid {
			t.Fatalf("%s = %+v, want unknown", name, f)
		}
	}
}

func TestExFloat_UnmarshalJSON_MalformedFieldDoesNotError(t *testing.T) {
	var record struct {
		Price ExFloat `json:"price"`
		Size  ExFloat `json:"size"`
	}
	// an object where a number belongs degrades to unknown instead of
	// failing the record
	data := []byte(`{"price": {"oops": 1}, "size": "3"}`)
	if err := json.Unmarshal(data, &record); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if record.Price.Valid {
		t.Fatalf("Price = %+v, want unknown", record.Price)
	}
	if !record.Size.Valid || record.Size.Float64 != 3 {
		t.Fatalf("Size = %+v, want valid 3", record.Size)
	}
}

func TestExFloat_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(map[string]ExFloat{"known": Float(1.25), "unknown": {}})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	got := string(out)
	want := `{"known":1.25,"unknown":null}`
	if got != want {
		t.Fatalf("Marshal() = %s, want %s", got, want)
	}
}

func TestParseFloat(t *testing.T) {
	cases := []struct {
		in        interface{}
		wantValid bool
		want      float64
	}{
		{12.5, true, 12.5},
		{"0.001", true, 0.001},
		{nil, false, 0},
		{"", false, 0},
		{"NULL", false, 0},
		{true, false, 0},
	}
	for _, c := range cases {
		got := ParseFloat(c.in)
		if got.Valid != c.wantValid || (got.Valid && got.Float64 != c.want) {
			t.Fatalf("ParseFloat(%v) = %+v, want valid=%v value=%v", c.in, got, c.wantValid, c.want)
		}
	}
}
