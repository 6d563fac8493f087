package gravlink

import (
	"testing"
)

func TestNewExchange(t *testing.T) {
	ex, err := NewExchange(ExchangeGraviex,
		WithAPIKey("k"),
		WithSecretKey("s"),
	)
	if err != nil {
		t.Fatalf("NewExchange() error: %v", err)
	}
	if ex.Name() != ExchangeGraviex {
		t.Fatalf("Name() = %q, want %q", ex.Name(), ExchangeGraviex)
	}
}

func TestNewExchange_Unsupported(t *testing.T) {
	if _, err := NewExchange("nonexistent"); err == nil {
		t.Fatalf("NewExchange(nonexistent) = nil error")
	}
}

func TestIsExchangeSupported(t *testing.T) {
	if !IsExchangeSupported(ExchangeGraviex) {
		t.Fatalf("IsExchangeSupported(%s) = false", ExchangeGraviex)
	}
	if IsExchangeSupported("nonexistent") {
		t.Fatalf("IsExchangeSupported(nonexistent) = true")
	}
}

func TestGetSupportedExchanges(t *testing.T) {
	exchanges := GetSupportedExchanges()
	found := false
	for _, name := range exchanges {
		if name == ExchangeGraviex {
			found = true
		}
	}
	if !found {
		t.Fatalf("GetSupportedExchanges() = %v, missing %s", exchanges, ExchangeGraviex)
	}
}
