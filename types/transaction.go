package types

import "time"

// TransactionType 资金流水类型
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"    // 充值
	TransactionTypeWithdrawal TransactionType = "withdrawal" // 提现
)

// TransactionStatus 资金流水状态（统一格式）
type TransactionStatus string

const (
	TransactionStatusOK      TransactionStatus = "ok"      // 完成（交易所状态 accepted/done）
	TransactionStatusPending TransactionStatus = "pending" // 处理中（交易所状态 submitted）
)

// Transaction 充值/提现记录
type Transaction struct {
	ID        string                 `json:"id"`             // 记录ID
	TxID      string                 `json:"txid"`           // 链上交易ID
	Currency  string                 `json:"currency"`       // 币种（统一格式）
	Type      TransactionType        `json:"type"`           // 类型（含 provider 字段的记录为提现）
	Status    TransactionStatus      `json:"status"`         // 状态（统一格式）
	Amount    ExFloat                `json:"amount"`         // 数量
	Fee       *Fee                   `json:"fee,omitempty"`  // 手续费
	Timestamp time.Time              `json:"timestamp"`      // 创建时间
	Updated   time.Time              `json:"updated"`        // 更新时间
	Info      map[string]interface{} `json:"info,omitempty"` // 交易所原始信息
}

// DepositAddress 充值地址
type DepositAddress struct {
	Currency string                 `json:"currency"`       // 币种（统一格式）
	Address  string                 `json:"address"`        // 地址
	Info     map[string]interface{} `json:"info,omitempty"` // 交易所原始信息
}
