package types

import (
	"strings"
	"time"
)

// OrderSide 订单方向
type OrderSide string

const (
	OrderSideBuy  OrderSide = "buy"  // 买入
	OrderSideSell OrderSide = "sell" // 卖出
)

func (s OrderSide) Lower() string {
	return strings.ToLower(string(s))
}

func (s OrderSide) IsBuy() bool {
	return s == OrderSideBuy
}

func (s OrderSide) IsSell() bool {
	return s == OrderSideSell
}

// OrderType 订单类型
type OrderType string

const (
	OrderTypeLimit  OrderType = "limit"  // 限价单
	OrderTypeMarket OrderType = "market" // 市价单
)

func (t OrderType) Lower() string {
	return strings.ToLower(string(t))
}

// OrderStatus 订单状态（统一格式）
type OrderStatus string

const (
	OrderStatusOpen     OrderStatus = "open"     // 未成交（交易所状态 wait）
	OrderStatusClosed   OrderStatus = "closed"   // 已完成（交易所状态 done）
	OrderStatusCanceled OrderStatus = "canceled" // 已取消（交易所状态 cancel）
)

// Order 订单信息
type Order struct {
	ID        string                 `json:"id"`             // 订单ID
	Symbol    string                 `json:"symbol"`         // 交易对
	Type      string                 `json:"type"`           // 订单类型
	Side      string                 `json:"side"`           // 订单方向
	Status    OrderStatus            `json:"status"`         // 订单状态（统一格式）
	Price     ExFloat                `json:"price"`          // 订单价格
	Average   ExFloat                `json:"average"`        // 平均成交价格
	Amount    ExFloat                `json:"amount"`         // 订单数量
	Filled    ExFloat                `json:"filled"`         // 已成交数量
	Remaining ExFloat                `json:"remaining"`      // 剩余数量
	Trades    ExFloat                `json:"trades"`         // 成交笔数
	Fee       *Fee                   `json:"fee,omitempty"`  // 手续费（仅币种可知）
	Timestamp time.Time              `json:"timestamp"`      // 创建时间
	Info      map[string]interface{} `json:"info,omitempty"` // 交易所原始信息
}

// OrderRequest 批量下单的单笔订单参数
type OrderRequest struct {
	Side   OrderSide `json:"side"`   // 订单方向
	Type   OrderType `json:"type"`   // 订单类型
	Amount string    `json:"amount"` // 订单数量
	Price  string    `json:"price"`  // 订单价格（限价单）
}
