package gravlink

import (
	"fmt"
	"sync"
	"time"

	"github.com/lemconn/gravlink/common"
	"github.com/lemconn/gravlink/exchange"
	"github.com/lemconn/gravlink/graviex"
)

// 交易所名称常量
const (
	// ExchangeGraviex Graviex 交易所
	ExchangeGraviex = "graviex"
)

// ExchangeOptions 交易所配置选项
type ExchangeOptions struct {
	APIKey    string
	SecretKey string
	BaseURL   string
	Proxy     string
	Debug     bool
	Timeout   time.Duration
	RateLimit time.Duration
	Transport common.Transport
	Options   map[string]interface{} // 其他自定义选项
}

// Option 配置选项函数类型
type Option func(*ExchangeOptions)

// WithAPIKey 设置 API Key
func WithAPIKey(apiKey string) Option {
	return func(opts *ExchangeOptions) {
		opts.APIKey = apiKey
	}
}

// WithSecretKey 设置 Secret Key
func WithSecretKey(secretKey string) Option {
	return func(opts *ExchangeOptions) {
		opts.SecretKey = secretKey
	}
}

// WithBaseURL 设置基础 URL
func WithBaseURL(baseURL string) Option {
	return func(opts *ExchangeOptions) {
		opts.BaseURL = baseURL
	}
}

// WithProxy 设置代理
func WithProxy(proxy string) Option {
	return func(opts *ExchangeOptions) {
		opts.Proxy = proxy
	}
}

// WithDebug 设置调试模式
func WithDebug(debug bool) Option {
	return func(opts *ExchangeOptions) {
		opts.Debug = debug
	}
}

// WithTimeout 设置请求超时时间
func WithTimeout(timeout time.Duration) Option {
	return func(opts *ExchangeOptions) {
		opts.Timeout = timeout
	}
}

// WithRateLimit 设置请求间隔
func WithRateLimit(interval time.Duration) Option {
	return func(opts *ExchangeOptions) {
		opts.RateLimit = interval
	}
}

// WithTransport 替换传输层实现（宿主框架注入）
func WithTransport(transport common.Transport) Option {
	return func(opts *ExchangeOptions) {
		opts.Transport = transport
	}
}

// WithOption 设置自定义选项
func WithOption(key string, value interface{}) Option {
	return func(opts *ExchangeOptions) {
		if opts.Options == nil {
			opts.Options = make(map[string]interface{})
		}
		opts.Options[key] = value
	}
}

// ExchangeFactory 交易所工厂函数
type ExchangeFactory func(apiKey, secretKey string, options map[string]interface{}) (exchange.Exchange, error)

// Registry 交易所注册表
type Registry struct {
	mu        sync.RWMutex
	factories map[string]ExchangeFactory
}

var globalRegistry = &Registry{
	factories: make(map[string]ExchangeFactory),
}

// init 初始化函数，注册所有支持的交易所
func init() {
	Register(ExchangeGraviex, graviex.New)
}

// Register 注册交易所
func Register(name string, factory ExchangeFactory) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.factories[name] = factory
}

// NewExchange 创建交易所实例（使用 Functional Options Pattern）
func NewExchange(name string, opts ...Option) (exchange.Exchange, error) {
	// 初始化默认选项
	options := &ExchangeOptions{
		Options: make(map[string]interface{}),
	}

	// 应用所有选项
	for _, opt := range opts {
		opt(options)
	}

	// 将选项转换为 map[string]interface{} 以兼容 ExchangeFactory
	optionsMap := make(map[string]interface{})
	if options.BaseURL != "" {
		optionsMap["baseURL"] = options.BaseURL
	}
	if options.Proxy != "" {
		optionsMap["proxy"] = options.Proxy
	}
	if options.Debug {
		optionsMap["debug"] = options.Debug
	}
	if options.Timeout > 0 {
		optionsMap["timeout"] = options.Timeout
	}
	if options.RateLimit > 0 {
		optionsMap["rateLimit"] = options.RateLimit
	}
	if options.Transport != nil {
		optionsMap["transport"] = options.Transport
	}
	// 合并自定义选项
	for k, v := range options.Options {
		optionsMap[k] = v
	}

	globalRegistry.mu.RLock()
	factory, ok := globalRegistry.factories[name]
	globalRegistry.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("exchange not supported: %s", name)
	}

	return factory(options.APIKey, options.SecretKey, optionsMap)
}

// GetSupportedExchanges 获取支持的交易所列表
func GetSupportedExchanges() []string {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	exchanges := make([]string, 0, len(globalRegistry.factories))
	for name := range globalRegistry.factories {
		exchanges = append(exchanges, name)
	}
	return exchanges
}

// IsExchangeSupported 检查交易所是否支持
func IsExchangeSupported(name string) bool {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	_, ok := globalRegistry.factories[name]
	return ok
}
