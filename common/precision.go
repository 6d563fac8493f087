package common

import "github.com/shopspring/decimal"

// RoundToPrecision 将数值按给定小数位数舍入
// 通过 decimal 计算，避免浮点乘积直接舍入引入的误差。
func RoundToPrecision(value float64, precision int) float64 {
	return decimal.NewFromFloat(value).Round(int32(precision)).InexactFloat64()
}

// MulToPrecision 计算 a*b 并按给定小数位数舍入
func MulToPrecision(a, b float64, precision int) float64 {
	product := decimal.NewFromFloat(a).Mul(decimal.NewFromFloat(b))
	return product.Round(int32(precision)).InexactFloat64()
}

// FormatToPrecision 将数值字符串按给定小数位数舍入后重新格式化
// 输入无法解析时原样返回，由交易所侧校验兜底。
func FormatToPrecision(value string, precision int) string {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return value
	}
	return d.Round(int32(precision)).String()
}
