package graviex

import (
	"testing"

	"github.com/lemconn/gravlink/types"
)

func TestParseOrderStatus(t *testing.T) {
	cases := map[string]types.OrderStatus{
		"wait":   types.OrderStatusOpen,
		"done":   types.OrderStatusClosed,
		"cancel": types.OrderStatusCanceled,
		// 未识别的状态原样透传
		"frozen": types.OrderStatus("frozen"),
	}
	for in, want := range cases {
		if got := ParseOrderStatus(in); got != want {
			t.Fatalf("ParseOrderStatus(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEncodeOrderStatus(t *testing.T) {
	cases := map[types.OrderStatus]string{
		types.OrderStatusOpen:     "wait",
		types.OrderStatusClosed:   "done",
		types.OrderStatusCanceled: "cancel",
		types.OrderStatus("odd"):  "odd",
	}
	for in, want := range cases {
		if got := EncodeOrderStatus(in); got != want {
			t.Fatalf("EncodeOrderStatus(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestOrderStatusRoundTrip(t *testing.T) {
	for _, raw := range []string{"wait", "done", "cancel"} {
		if got := EncodeOrderStatus(ParseOrderStatus(raw)); got != raw {
			t.Fatalf("round trip %q = %q", raw, got)
		}
	}
}

func TestParseTransactionStatus(t *testing.T) {
	cases := map[string]types.TransactionStatus{
		"accepted":  types.TransactionStatusOK,
		"done":      types.TransactionStatusOK,
		"submitted": types.TransactionStatusPending,
		"rejected":  types.TransactionStatus("rejected"),
	}
	for in, want := range cases {
		if got := ParseTransactionStatus(in); got != want {
			t.Fatalf("ParseTransactionStatus(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEncodeTransactionStatus(t *testing.T) {
	// ok 对应多个交易所状态，编码固定取 done
	if got := EncodeTransactionStatus(types.TransactionStatusOK); got != "done" {
		t.Fatalf("EncodeTransactionStatus(ok) = %q, want done", got)
	}
	if got := EncodeTransactionStatus(types.TransactionStatusPending); got != "submitted" {
		t.Fatalf("EncodeTransactionStatus(pending) = %q, want submitted", got)
	}
}
