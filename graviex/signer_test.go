package graviex

import (
	"strings"
	"testing"

	"github.com/lemconn/gravlink/common"
)

func newTestSigner() *Signer {
	s := NewSigner("test-key", "test-secret", graviexBaseURL)
	s.SetNonceFunc(func() int64 { return 1700000000000 })
	return s
}

func TestSigner_PrivateGET(t *testing.T) {
	s := newTestSigner()
	req := s.Sign("orders", ScopePrivate, "GET", map[string]interface{}{
		"market": "btcusd",
	})

	if req.Method != "GET" {
		t.Fatalf("Method = %s, want GET", req.Method)
	}
	if req.Body != "" {
		t.Fatalf("Body = %q, want empty for GET", req.Body)
	}

	// 编码结果按键字典序排列，signature 追加在末尾且不参与签名
	sorted := "access_key=test-key&market=btcusd&tonce=1700000000000"
	signature := common.SignHMAC256("GET|/api/v3/orders|"+sorted, "test-secret")
	want := graviexBaseURL + "/api/v3/orders?" + sorted + "&signature=" + signature
	if req.URL != want {
		t.Fatalf("URL = %s, want %s", req.URL, want)
	}
}

func TestSigner_PrivatePOST(t *testing.T) {
	s := newTestSigner()
	req := s.Sign("orders", ScopePrivate, "POST", map[string]interface{}{
		"market": "btcusd",
		"side":   "buy",
		"volume": "0.25",
		"price":  "42000",
	})

	if req.URL != graviexBaseURL+"/api/v3/orders" {
		t.Fatalf("URL = %s, want no query string on POST", req.URL)
	}
	if ct := req.Headers["Content-Type"]; ct != "application/x-www-form-urlencoded" {
		t.Fatalf("Content-Type = %q", ct)
	}

	sorted := "access_key=test-key&market=btcusd&price=42000&side=buy&tonce=1700000000000&volume=0.25"
	signature := common.SignHMAC256("POST|/api/v3/orders|"+sorted, "test-secret")
	if want := sorted + "&signature=" + signature; req.Body != want {
		t.Fatalf("Body = %s, want %s", req.Body, want)
	}
}

func TestSigner_Deterministic(t *testing.T) {
	s := newTestSigner()
	params := map[string]interface{}{"market": "btcusd", "limit": 20}
	first := s.Sign("trades/my", ScopePrivate, "GET", params)
	second := s.Sign("trades/my", ScopePrivate, "GET", params)
	if first.URL != second.URL {
		t.Fatalf("same inputs produced different URLs:\n%s\n%s", first.URL, second.URL)
	}
}

func TestSigner_ParamChangesSignature(t *testing.T) {
	s := newTestSigner()
	a := s.Sign("orders", ScopePrivate, "GET", map[string]interface{}{"market": "btcusd"})
	b := s.Sign("orders", ScopePrivate, "GET", map[string]interface{}{"market": "ethusd"})

	sigA := a.URL[strings.LastIndex(a.URL, "signature=")+len("signature="):]
	sigB := b.URL[strings.LastIndex(b.URL, "signature=")+len("signature="):]
	if sigA == sigB {
		t.Fatalf("signature did not change with params: %s", sigA)
	}
	if len(sigA) != 64 || strings.ToLower(sigA) != sigA {
		t.Fatalf("signature %q is not lowercase hex sha256", sigA)
	}
}

func TestSigner_PublicUnsigned(t *testing.T) {
	s := newTestSigner()
	req := s.Sign("tickers", ScopePublic, "GET", nil)

	if want := graviexBaseURL + "/api/v3/tickers?tonce=1700000000000"; req.URL != want {
		t.Fatalf("URL = %s, want %s", req.URL, want)
	}
	if strings.Contains(req.URL, "access_key") || strings.Contains(req.URL, "signature") {
		t.Fatalf("public request leaked credentials: %s", req.URL)
	}
}

func TestSigner_DoesNotMutateParams(t *testing.T) {
	s := newTestSigner()
	params := map[string]interface{}{"market": "btcusd"}
	s.Sign("orders", ScopePrivate, "GET", params)
	if len(params) != 1 {
		t.Fatalf("caller params mutated: %v", params)
	}
}
