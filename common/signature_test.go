package common

import "testing"

func TestSignHMAC256(t *testing.T) {
	// RFC 4231 test case 2
	got := SignHMAC256("what do ya want for nothing?", "Jefe")
	want := "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843"
	if got != want {
		t.Fatalf("SignHMAC256() = %s, want %s", got, want)
	}
}

func TestBuildQueryString_SortsKeys(t *testing.T) {
	params := map[string]interface{}{
		"tonce":      int64(1700000000000),
		"access_key": "abc",
		"market":     "btcusd",
	}
	got := BuildQueryString(params)
	want := "access_key=abc&market=btcusd&tonce=1700000000000"
	if got != want {
		t.Fatalf("BuildQueryString() = %s, want %s", got, want)
	}
}

func TestBuildQueryString_ValueFormats(t *testing.T) {
	cases := []struct {
		name   string
		params map[string]interface{}
		want   string
	}{
		{"empty", map[string]interface{}{}, ""},
		{"float keeps shortest form", map[string]interface{}{"price": 0.001}, "price=0.001"},
		{"bool", map[string]interface{}{"post_only": true}, "post_only=true"},
		{"escaped", map[string]interface{}{"memo": "a b&c"}, "memo=a+b%26c"},
		{"string slice repeats key", map[string]interface{}{"id": []string{"3", "1"}}, "id=3&id=1"},
		{"interface slice repeats key", map[string]interface{}{"id": []interface{}{3, 1}}, "id=3&id=1"},
	}
	for _, c := range cases {
		if got := BuildQueryString(c.params); got != c.want {
			t.Fatalf("%s: BuildQueryString() = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestCommonCurrencyCode(t *testing.T) {
	cases := map[string]string{
		"xbt": "BTC",
		"bcc": "BCH",
		"drk": "DASH",
		"gio": "GIO",
		"btc": "BTC",
	}
	for in, want := range cases {
		if got := CommonCurrencyCode(in); got != want {
			t.Fatalf("CommonCurrencyCode(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseSymbol(t *testing.T) {
	base, quote, ok := ParseSymbol("btc/usd")
	if !ok || base != "BTC" || quote != "USD" {
		t.Fatalf("ParseSymbol(btc/usd) = %q, %q, %v", base, quote, ok)
	}
	if _, _, ok := ParseSymbol("btcusd"); ok {
		t.Fatalf("ParseSymbol(btcusd) succeeded, want failure")
	}
}

func TestMulToPrecision(t *testing.T) {
	// 浮点直乘会得到 20.246912000000002 之类的尾差
	if got := MulToPrecision(10.123456, 2, 4); got != 20.2469 {
		t.Fatalf("MulToPrecision() = %v, want 20.2469", got)
	}
}

func TestFormatToPrecision(t *testing.T) {
	cases := []struct {
		in        string
		precision int
		want      string
	}{
		{"0.123456789", 8, "0.12345679"},
		{"100", 4, "100"},
		{"abc", 4, "abc"},
	}
	for _, c := range cases {
		if got := FormatToPrecision(c.in, c.precision); got != c.want {
			t.Fatalf("FormatToPrecision(%q, %d) = %q, want %q", c.in, c.precision, got, c.want)
		}
	}
}
