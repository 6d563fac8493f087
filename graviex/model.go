package graviex

import (
	"encoding/json"

	"github.com/lemconn/gravlink/types"
)

// graviexTicker tickers 接口返回的单个市场条目
// 同时承载市场元数据（目录刷新用）与行情字段。
type graviexTicker struct {
	Name      string            `json:"name"`
	BaseUnit  string            `json:"base_unit"`
	QuoteUnit string            `json:"quote_unit"`
	API       interface{}       `json:"api"`     // 仅严格为 true 时视为开放
	WStatus   string            `json:"wstatus"` // 仅为 "on" 时视为开放
	BaseMin   types.ExFloat     `json:"base_min"`
	At        types.ExTimestamp `json:"at"`
	Buy       types.ExFloat     `json:"buy"`
	Sell      types.ExFloat     `json:"sell"`
	Open      types.ExFloat     `json:"open"`
	High      types.ExFloat     `json:"high"`
	Low       types.ExFloat     `json:"low"`
	Last      types.ExFloat     `json:"last"`
	Volume    types.ExFloat     `json:"volume"`
	Volume2   types.ExFloat     `json:"volume2"`
}

// graviexCurrency currency/info 接口返回格式
type graviexCurrency struct {
	Code      string      `json:"code"`
	Key       string      `json:"key"` // 币种名称
	State     string      `json:"state"`
	Delisting interface{} `json:"delisting"`
	Withdraw  struct {
		Fee   types.ExFloat `json:"fee"`
		Max   types.ExFloat `json:"max"`
		InUse interface{}   `json:"inuse"`
	} `json:"withdraw"`
}

// graviexDepth depth 接口返回格式，档位为 [价格, 数量] 数组
type graviexDepth struct {
	Timestamp types.ExTimestamp `json:"timestamp"`
	Asks      [][]types.ExFloat `json:"asks"`
	Bids      [][]types.ExFloat `json:"bids"`
}

// graviexTrade trades / trades/my 接口返回的单条成交
type graviexTrade struct {
	ID      json.Number       `json:"id"`
	OrderID json.Number       `json:"order_id"`
	Market  string            `json:"market"`
	Side    string            `json:"side"`
	Price   types.ExFloat     `json:"price"`
	Volume  types.ExFloat     `json:"volume"`
	At      types.ExTimestamp `json:"at"`
}

// graviexOrder orders / order 接口返回的单笔订单
type graviexOrder struct {
	ID              json.Number       `json:"id"`
	Market          string            `json:"market"`
	State           string            `json:"state"`
	OrdType         string            `json:"ord_type"`
	Side            string            `json:"side"`
	Price           types.ExFloat     `json:"price"`
	AvgPrice        types.ExFloat     `json:"avg_price"`
	Volume          types.ExFloat     `json:"volume"`
	ExecutedVolume  types.ExFloat     `json:"executed_volume"`
	RemainingVolume types.ExFloat     `json:"remaining_volume"`
	TradesCount     types.ExFloat     `json:"trades_count"`
	At              types.ExTimestamp `json:"at"`
}

// graviexTransaction deposits / withdraws 接口返回的单条资金流水
// created_at 为 ISO-8601 字符串，done_at 为秒级时间戳（可能为 "NULL"）。
type graviexTransaction struct {
	ID        json.Number       `json:"id"`
	TxID      string            `json:"txid"`
	Currency  string            `json:"currency"`
	State     string            `json:"state"`
	Amount    types.ExFloat     `json:"amount"`
	Fee       types.ExFloat     `json:"fee"`
	DoneAt    types.ExTimestamp `json:"done_at"`
	CreatedAt types.ExTimestamp `json:"created_at"`
}

// graviexAccount members/me 接口返回的单个账户
type graviexAccount struct {
	Currency string        `json:"currency"`
	Balance  types.ExFloat `json:"balance"`
	Locked   types.ExFloat `json:"locked"`
}

// graviexMember members/me 接口返回格式
type graviexMember struct {
	AccountsFiltered []json.RawMessage `json:"accounts_filtered"`
}

// rawInfo 将原始响应解析为 map，作为统一记录的 info 字段保留
func rawInfo(data []byte) map[string]interface{} {
	info := make(map[string]interface{})
	if err := json.Unmarshal(data, &info); err != nil {
		return map[string]interface{}{}
	}
	return info
}

// truthy 按宽松语义判断原始值是否为真
// nil、false、0、空字符串视为假，其余视为真。
func truthy(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case float64:
		return val != 0
	case string:
		return val != ""
	default:
		return true
	}
}
