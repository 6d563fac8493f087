package graviex

import "github.com/lemconn/gravlink/types"

// ParseOrderStatus 订单状态：交易所格式 -> 统一格式
// 未识别的状态原样透传，交易所新增状态不会中断解析。
func ParseOrderStatus(status string) types.OrderStatus {
	switch status {
	case "wait":
		return types.OrderStatusOpen
	case "done":
		return types.OrderStatusClosed
	case "cancel":
		return types.OrderStatusCanceled
	default:
		return types.OrderStatus(status)
	}
}

// EncodeOrderStatus 订单状态：统一格式 -> 交易所格式
// 未识别的状态原样透传。
func EncodeOrderStatus(status types.OrderStatus) string {
	switch status {
	case types.OrderStatusOpen:
		return "wait"
	case types.OrderStatusClosed:
		return "done"
	case types.OrderStatusCanceled:
		return "cancel"
	default:
		return string(status)
	}
}

// ParseTransactionStatus 资金流水状态：交易所格式 -> 统一格式
// accepted/done 均视为完成，submitted 视为处理中，其余原样透传。
func ParseTransactionStatus(status string) types.TransactionStatus {
	switch status {
	case "accepted", "done":
		return types.TransactionStatusOK
	case "submitted":
		return types.TransactionStatusPending
	default:
		return types.TransactionStatus(status)
	}
}

// EncodeTransactionStatus 资金流水状态：统一格式 -> 交易所格式
// ok 对应多个交易所状态，编码为 done；未识别的状态原样透传。
func EncodeTransactionStatus(status types.TransactionStatus) string {
	switch status {
	case types.TransactionStatusOK:
		return "done"
	case types.TransactionStatusPending:
		return "submitted"
	default:
		return string(status)
	}
}
