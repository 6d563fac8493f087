package common

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/lemconn/gravlink/logger"
)

// Transport 传输层接口
// 发出一次已构造好的请求并返回状态码和原始响应体。错误分类由上层完成，
// 传输层只负责网络层面的失败。
type Transport interface {
	Do(ctx context.Context, method, rawURL, body string, headers map[string]string) (int, []byte, error)
}

// HTTPClient HTTP客户端，Transport 的默认实现
type HTTPClient struct {
	client  *http.Client
	headers map[string]string
	limiter *rate.Limiter
	debug   bool
	log     *logger.Log
}

// NewHTTPClient 创建HTTP客户端
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		headers: make(map[string]string),
		log:     logger.GetLogger(),
	}
}

// SetProxy 设置代理
func (c *HTTPClient) SetProxy(proxyURL string) error {
	if proxyURL == "" {
		c.client.Transport = nil
		return nil
	}

	proxy, err := url.Parse(proxyURL)
	if err != nil {
		return fmt.Errorf("invalid proxy URL: %w", err)
	}
	c.client.Transport = &http.Transport{
		Proxy: http.ProxyURL(proxy),
	}
	return nil
}

// SetHeader 设置请求头
func (c *HTTPClient) SetHeader(key, value string) {
	c.headers[key] = value
}

// SetTimeout 设置超时时间
func (c *HTTPClient) SetTimeout(timeout time.Duration) {
	c.client.Timeout = timeout
}

// SetRateLimit 设置限速（每 interval 一次请求）
func (c *HTTPClient) SetRateLimit(interval time.Duration) {
	if interval <= 0 {
		c.limiter = nil
		return
	}
	c.limiter = rate.NewLimiter(rate.Every(interval), 1)
}

// SetDebug 设置是否启用调试日志
func (c *HTTPClient) SetDebug(debug bool) {
	c.debug = debug
}

// Do 发送HTTP请求，返回状态码和响应体
// 非 2xx 状态不作为错误返回，由调用方的错误分类器处理。
func (c *HTTPClient) Do(ctx context.Context, method, rawURL, body string, headers map[string]string) (int, []byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return 0, nil, err
		}
	}

	var reqBody io.Reader
	if body != "" {
		reqBody = strings.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}

	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	requestID := uuid.NewString()
	if c.debug {
		c.log.WithFields(logger.Fields{
			"request_id": requestID,
			"method":     method,
			"url":        rawURL,
			"body":       body,
		}).Debug("http request")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read response: %w", err)
	}

	if c.debug {
		c.log.WithFields(logger.Fields{
			"request_id": requestID,
			"status":     resp.StatusCode,
			"body":       string(respBody),
		}).Debug("http response")
	}

	return resp.StatusCode, respBody, nil
}
