package graviex

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/lemconn/gravlink/exchange"
	"github.com/lemconn/gravlink/types"
)

func TestParseTransaction_Deposit(t *testing.T) {
	g := newTestExchange(t, &fakeTransport{})

	raw := json.RawMessage(`{
		"id": 5531, "txid": "abc123", "currency": "btc", "state": "accepted",
		"amount": "1.5", "fee": "0.0",
		"created_at": "2019-03-05T09:55:27Z", "done_at": 1551779800
	}`)
	tx := g.parseTransaction(raw, nil)

	if tx.ID != "5531" || tx.TxID != "abc123" {
		t.Fatalf("IDs = %q/%q", tx.ID, tx.TxID)
	}
	if tx.Currency != "BTC" {
		t.Fatalf("Currency = %q, want BTC", tx.Currency)
	}
	// 无 provider 字段视为充值
	if tx.Type != types.TransactionTypeDeposit {
		t.Fatalf("Type = %q, want deposit", tx.Type)
	}
	if tx.Status != types.TransactionStatusOK {
		t.Fatalf("Status = %q, want ok", tx.Status)
	}
	if got := tx.Timestamp.Unix(); got != 1551779800 {
		t.Fatalf("Timestamp = %d, want done_at 1551779800", got)
	}
	// fee 为 0 时不计算费率
	if tx.Fee.Rate.Valid {
		t.Fatalf("Fee.Rate = %v, want unknown for zero fee", tx.Fee.Rate)
	}
}

func TestParseTransaction_WithdrawalByProvider(t *testing.T) {
	g := newTestExchange(t, &fakeTransport{})

	raw := json.RawMessage(`{
		"id": 99, "currency": "btc", "state": "submitted", "provider": "bitcoind",
		"amount": "2.0", "fee": "0.0004",
		"created_at": "2019-03-05T09:55:27Z", "done_at": "NULL"
	}`)
	tx := g.parseTransaction(raw, nil)

	// 含 provider 字段的记录为提现
	if tx.Type != types.TransactionTypeWithdrawal {
		t.Fatalf("Type = %q, want withdrawal", tx.Type)
	}
	if tx.Status != types.TransactionStatusPending {
		t.Fatalf("Status = %q, want pending", tx.Status)
	}
	// done_at 为 "NULL" 时回退到 created_at
	if got := tx.Timestamp.Unix(); got != 1551779727 {
		t.Fatalf("Timestamp = %d, want created_at 1551779727", got)
	}
	if tx.Updated.Unix() > 0 {
		t.Fatalf("Updated = %v, want zero when done_at missing", tx.Updated)
	}
	if !tx.Fee.Rate.Valid || tx.Fee.Rate.Float64 != 0.0002 {
		t.Fatalf("Fee.Rate = %v, want 0.0002", tx.Fee.Rate)
	}
}

func TestParseTransaction_FeeRateZeroAmount(t *testing.T) {
	g := newTestExchange(t, &fakeTransport{})

	// 数量为 0 时不产生除零费率
	raw := json.RawMessage(`{"id": 1, "currency": "btc", "amount": "0", "fee": "0.1"}`)
	tx := g.parseTransaction(raw, nil)
	if tx.Fee.Rate.Valid {
		t.Fatalf("Fee.Rate = %v, want unknown for zero amount", tx.Fee.Rate)
	}
}

func TestParseTransactions_SortedByIDDescending(t *testing.T) {
	g := newTestExchange(t, &fakeTransport{})

	// ID 按数值倒序，"9" 不得排在 "10" 之后
	resp := []byte(`[
		{"id": 9, "currency": "btc"},
		{"id": 100, "currency": "btc"},
		{"id": 10, "currency": "btc"}
	]`)
	txs, err := g.parseTransactions(resp, nil)
	if err != nil {
		t.Fatalf("parseTransactions() error: %v", err)
	}
	var got []string
	for _, tx := range txs {
		got = append(got, tx.ID)
	}
	want := []string{"100", "10", "9"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestFetchDeposits(t *testing.T) {
	ft := &fakeTransport{responses: map[string]string{
		"/api/v3/currency/info": `{"code": "btc", "state": "online", "withdraw": {"fee": "0.0004", "inuse": 1}}`,
		"/api/v3/deposits": `[
			{"id": 1, "txid": "aa", "currency": "btc", "state": "accepted", "amount": "0.5", "done_at": 1700000000},
			{"id": 2, "txid": "bb", "currency": "btc", "state": "submitted", "amount": "0.7", "created_at": "2023-11-14T22:13:20Z"}
		]`,
	}}
	g := newTestExchange(t, ft)

	txs, err := g.FetchDeposits(context.Background(), "BTC", 5)
	if err != nil {
		t.Fatalf("FetchDeposits() error: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("FetchDeposits() returned %d records, want 2", len(txs))
	}
	if txs[0].ID != "2" {
		t.Fatalf("first record ID = %q, want newest first", txs[0].ID)
	}
	for _, tx := range txs {
		if tx.Currency != "BTC" || tx.Type != types.TransactionTypeDeposit {
			t.Fatalf("record = %+v", tx)
		}
	}
}

func TestFetchWithdrawals_RequiresCode(t *testing.T) {
	g := newTestExchange(t, &fakeTransport{})
	_, err := g.FetchWithdrawals(context.Background(), "", 0)
	if !errors.Is(err, exchange.ErrArgumentsRequired) {
		t.Fatalf("FetchWithdrawals(\"\") error = %v, want arguments required", err)
	}
}

func TestFetchDeposit_RequiresTxID(t *testing.T) {
	g := newTestExchange(t, &fakeTransport{})
	_, err := g.FetchDeposit(context.Background(), "")
	if !errors.Is(err, exchange.ErrArgumentsRequired) {
		t.Fatalf("FetchDeposit(\"\") error = %v, want arguments required", err)
	}
}

func TestParseDepositAddress(t *testing.T) {
	cases := []struct {
		name string
		resp string
		want string
	}{
		{"plain", `GPmLzRQyQCKp8HlQfY6eGhLn1F4CSGxNpC`, "GPmLzRQyQCKp8HlQfY6eGhLn1F4CSGxNpC"},
		{"json string", `"GPmLzRQyQCKp8HlQfY6eGhLn1F4CSGxNpC"`, "GPmLzRQyQCKp8HlQfY6eGhLn1F4CSGxNpC"},
		// 交易所把地址再套了一层JSON字符串
		{"double encoded", `"\"GPmLzRQyQCKp8HlQfY6eGhLn1F4CSGxNpC\""`, "GPmLzRQyQCKp8HlQfY6eGhLn1F4CSGxNpC"},
	}
	for _, c := range cases {
		addr, err := parseDepositAddress("gio", []byte(c.resp))
		if err != nil {
			t.Fatalf("%s: parseDepositAddress() error: %v", c.name, err)
		}
		if addr.Address != c.want {
			t.Fatalf("%s: Address = %q, want %q", c.name, addr.Address, c.want)
		}
		if addr.Currency != "GIO" {
			t.Fatalf("%s: Currency = %q, want GIO", c.name, addr.Currency)
		}
	}

	if _, err := parseDepositAddress("gio", []byte(`""`)); err == nil {
		t.Fatalf("parseDepositAddress(empty) = nil error")
	}
	if _, err := parseDepositAddress("gio", []byte(`"null"`)); err == nil {
		t.Fatalf("parseDepositAddress(null) = nil error")
	}
}

func TestWithdraw(t *testing.T) {
	ft := &fakeTransport{responses: map[string]string{
		"/api/v3/currency/info": `{"code": "btc", "state": "online", "withdraw": {"fee": "0.0004", "inuse": 1}}`,
		"/api/v3/create_withdraw": `{
			"id": 77, "currency": "btc", "state": "submitted", "provider": "bitcoind",
			"amount": "0.5", "fee": "0.0004", "created_at": "2023-11-14T22:13:20Z", "done_at": "NULL"
		}`,
	}}
	g := newTestExchange(t, ft)

	tx, err := g.Withdraw(context.Background(), "BTC", "0.5", "bc1qexample")
	if err != nil {
		t.Fatalf("Withdraw() error: %v", err)
	}
	if tx.ID != "77" || tx.Type != types.TransactionTypeWithdrawal {
		t.Fatalf("tx = %+v", tx)
	}

	// 提现参数使用交易所的 sum 字段名
	var body string
	for _, req := range ft.requests {
		if strings.Contains(req.url, "create_withdraw") {
			body = req.body
		}
	}
	if !strings.Contains(body, "sum=0.5") || !strings.Contains(body, "address=bc1qexample") || !strings.Contains(body, "currency=btc") {
		t.Fatalf("body = %s", body)
	}

	if _, err := g.Withdraw(context.Background(), "BTC", "", "addr"); !errors.Is(err, exchange.ErrArgumentsRequired) {
		t.Fatalf("Withdraw without amount error = %v, want arguments required", err)
	}
}
