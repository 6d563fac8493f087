package exchange

import (
	"context"
	"time"

	"github.com/lemconn/gravlink/types"
)

// Exchange 交易所接口
type Exchange interface {
	// 基本信息
	Name() string                                                            // 交易所名称
	LoadMarkets(ctx context.Context, reload bool) error                      // 加载市场信息
	FetchMarkets(ctx context.Context) ([]*types.Market, error)               // 获取市场列表
	GetMarket(symbol string) (*types.Market, error)                          // 获取市场信息
	FetchCurrency(ctx context.Context, code string) (*types.Currency, error) // 获取币种信息

	// 行情数据
	FetchTicker(ctx context.Context, symbol string) (*types.Ticker, error)                                             // 获取行情
	FetchTickers(ctx context.Context, symbols ...string) (map[string]*types.Ticker, error)                             // 批量获取行情
	FetchOrderBook(ctx context.Context, symbol string, limit int) (*types.OrderBook, error)                            // 获取订单簿
	FetchTrades(ctx context.Context, symbol string, limit int) ([]*types.Trade, error)                                 // 获取成交记录
	FetchOHLCV(ctx context.Context, symbol string, timeframe string, since time.Time, limit int) (types.OHLCVs, error) // 获取K线数据

	// 账户信息
	FetchBalance(ctx context.Context) (types.Balances, error) // 获取余额

	// 订单操作
	CreateOrder(ctx context.Context, symbol string, side types.OrderSide, orderType types.OrderType, amount, price string) (*types.Order, error) // 创建订单
	CreateOrders(ctx context.Context, symbol string, orders []types.OrderRequest) ([]*types.Order, error)                                        // 批量创建订单
	CancelOrder(ctx context.Context, orderID, symbol string) (*types.Order, error)                                                               // 取消订单
	CancelAllOrders(ctx context.Context, symbol string) error                                                                                    // 取消全部订单
	FetchOrder(ctx context.Context, orderID, symbol string) (*types.Order, error)                                                                // 查询订单
	FetchOpenOrders(ctx context.Context, symbol string, limit int) ([]*types.Order, error)                                                       // 查询未成交订单
	FetchClosedOrders(ctx context.Context, symbol string, limit int) ([]*types.Order, error)                                                     // 查询已关闭订单

	// 交易记录
	FetchMyTrades(ctx context.Context, symbol string, since time.Time, limit int) ([]*types.Trade, error) // 获取我的交易记录

	// 充值提现
	FetchDeposits(ctx context.Context, code string, limit int) ([]*types.Transaction, error)    // 获取充值记录
	FetchDeposit(ctx context.Context, txid string) (*types.Transaction, error)                  // 获取单笔充值
	FetchWithdrawals(ctx context.Context, code string, limit int) ([]*types.Transaction, error) // 获取提现记录
	FetchDepositAddress(ctx context.Context, code string) (*types.DepositAddress, error)        // 获取充值地址
	CreateDepositAddress(ctx context.Context, code string) (*types.DepositAddress, error)       // 创建充值地址
	Withdraw(ctx context.Context, code, amount, address string) (*types.Transaction, error)     // 提现
}
