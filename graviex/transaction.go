package graviex

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lemconn/gravlink/common"
	"github.com/lemconn/gravlink/exchange"
	"github.com/lemconn/gravlink/types"
)

// parseTransaction 解析单条充值/提现记录
//
// 交易所不返回显式的类型字段，含 provider 字段的记录为提现，否则为充值。
// 时间戳优先取 done_at（秒级），缺失或无法解析时回退到 created_at 的
// ISO-8601 字符串。手续费率仅在手续费与数量均为正时计算。
func (g *Graviex) parseTransaction(raw json.RawMessage, fallback *types.Currency) *types.Transaction {
	var entry graviexTransaction
	_ = json.Unmarshal(raw, &entry)
	info := rawInfo(raw)

	timestamp := entry.DoneAt.Time
	if timestamp.IsZero() {
		timestamp = entry.CreatedAt.Time
	}

	code := ""
	if fallback != nil {
		code = fallback.Code
	} else if currency, ok := g.registry.CurrencyByID(entry.Currency); ok {
		code = currency.Code
	} else if entry.Currency != "" {
		code = common.CommonCurrencyCode(entry.Currency)
	}

	txType := types.TransactionTypeDeposit
	if _, ok := info["provider"]; ok {
		txType = types.TransactionTypeWithdrawal
	}

	fee := &types.Fee{
		Currency: code,
		Cost:     entry.Fee,
	}
	if entry.Fee.Valid && entry.Amount.Valid && entry.Fee.Float64 > 0 && entry.Amount.Float64 > 0 {
		fee.Rate = types.Float(entry.Fee.Float64 / entry.Amount.Float64)
	}

	return &types.Transaction{
		ID:        entry.ID.String(),
		TxID:      entry.TxID,
		Currency:  code,
		Type:      txType,
		Status:    ParseTransactionStatus(entry.State),
		Amount:    entry.Amount,
		Fee:       fee,
		Timestamp: timestamp,
		Updated:   entry.DoneAt.Time,
		Info:      info,
	}
}

// parseTransactions 逐条解析资金流水，按ID倒序返回
// 单条异常不影响批次内其他记录。
func (g *Graviex) parseTransactions(resp []byte, fallback *types.Currency) ([]*types.Transaction, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(resp, &items); err != nil {
		return nil, fmt.Errorf("unmarshal transactions: %w", err)
	}
	transactions := make([]*types.Transaction, 0, len(items))
	for _, item := range items {
		transactions = append(transactions, g.parseTransaction(item, fallback))
	}
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactionIDLess(transactions[j].ID, transactions[i].ID)
	})
	return transactions, nil
}

// transactionIDLess 按数值比较记录ID，无法解析时退化为字符串比较
func transactionIDLess(a, b string) bool {
	ai, aerr := strconv.ParseInt(a, 10, 64)
	bi, berr := strconv.ParseInt(b, 10, 64)
	if aerr == nil && berr == nil {
		return ai < bi
	}
	return a < b
}

// fetchCurrencyContext 按需获取币种信息用于流水解析，失败时不阻断查询
func (g *Graviex) fetchCurrencyContext(ctx context.Context, code string) *types.Currency {
	if code == "" {
		return nil
	}
	if currency, ok := g.registry.CurrencyByID(strings.ToLower(code)); ok {
		return currency
	}
	currency, err := g.FetchCurrency(ctx, code)
	if err != nil {
		return nil
	}
	return currency
}

// FetchDeposits 获取充值记录，code 可为空
func (g *Graviex) FetchDeposits(ctx context.Context, code string, limit int) ([]*types.Transaction, error) {
	params := map[string]interface{}{}
	var currency *types.Currency
	if code != "" {
		currency = g.fetchCurrencyContext(ctx, code)
		params["currency"] = strings.ToLower(code)
	}
	if limit > 0 {
		params["limit"] = limit
	}

	resp, err := g.request(ctx, "deposits", ScopePrivate, "GET", params)
	if err != nil {
		return nil, fmt.Errorf("fetch deposits: %w", err)
	}
	return g.parseTransactions(resp, currency)
}

// FetchDeposit 按链上交易ID查询单笔充值
func (g *Graviex) FetchDeposit(ctx context.Context, txid string) (*types.Transaction, error) {
	if txid == "" {
		return nil, fmt.Errorf("%w: txid", exchange.ErrArgumentsRequired)
	}
	params := map[string]interface{}{
		"txid": txid,
	}
	resp, err := g.request(ctx, "deposit", ScopePrivate, "GET", params)
	if err != nil {
		return nil, fmt.Errorf("fetch deposit: %w", err)
	}
	return g.parseTransaction(resp, nil), nil
}

// FetchWithdrawals 获取提现记录，code 必填
func (g *Graviex) FetchWithdrawals(ctx context.Context, code string, limit int) ([]*types.Transaction, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: currency required for withdrawal information", exchange.ErrArgumentsRequired)
	}

	currency := g.fetchCurrencyContext(ctx, code)
	params := map[string]interface{}{
		"currency": strings.ToLower(code),
	}
	if limit > 0 {
		params["limit"] = limit
	}

	resp, err := g.request(ctx, "withdraws", ScopePrivate, "GET", params)
	if err != nil {
		return nil, fmt.Errorf("fetch withdrawals: %w", err)
	}
	return g.parseTransactions(resp, currency)
}

// parseDepositAddress 解析 deposit_address 接口返回
// 地址被双重JSON编码（字符串中再嵌一层JSON字符串），逐层解开。
func parseDepositAddress(code string, resp []byte) (*types.DepositAddress, error) {
	address := strings.TrimSpace(string(resp))
	var unwrapped string
	if err := json.Unmarshal(resp, &unwrapped); err == nil {
		address = unwrapped
		var inner string
		if err := json.Unmarshal([]byte(unwrapped), &inner); err == nil {
			address = inner
		}
	}
	address = strings.TrimSpace(address)
	if address == "" || strings.EqualFold(address, "null") {
		return nil, fmt.Errorf("%w: empty deposit address", exchange.ErrExchange)
	}
	return &types.DepositAddress{
		Currency: common.CommonCurrencyCode(code),
		Address:  address,
		Info:     map[string]interface{}{"response": string(resp)},
	}, nil
}

// FetchDepositAddress 获取充值地址
func (g *Graviex) FetchDepositAddress(ctx context.Context, code string) (*types.DepositAddress, error) {
	params := map[string]interface{}{
		"currency": strings.ToLower(code),
	}
	resp, err := g.request(ctx, "deposit_address", ScopePrivate, "GET", params)
	if err != nil {
		return nil, fmt.Errorf("fetch deposit address: %w", err)
	}
	return parseDepositAddress(code, resp)
}

// CreateDepositAddress 创建充值地址
// 交易所在地址不存在时由同一接口生成。
func (g *Graviex) CreateDepositAddress(ctx context.Context, code string) (*types.DepositAddress, error) {
	return g.FetchDepositAddress(ctx, code)
}

// Withdraw 发起提现
func (g *Graviex) Withdraw(ctx context.Context, code, amount, address string) (*types.Transaction, error) {
	if code == "" || amount == "" || address == "" {
		return nil, fmt.Errorf("%w: currency, amount and address required for withdraw", exchange.ErrArgumentsRequired)
	}

	params := map[string]interface{}{
		"currency": strings.ToLower(code),
		"sum":      amount,
		"address":  address,
	}
	resp, err := g.request(ctx, "create_withdraw", ScopePrivate, "POST", params)
	if err != nil {
		return nil, fmt.Errorf("create withdraw: %w", err)
	}

	currency := g.fetchCurrencyContext(ctx, code)
	return g.parseTransaction(resp, currency), nil
}
