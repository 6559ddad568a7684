package main

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptrace"
	"strings"
	"time"

	"github.com/quic-go/quic-go/http3"
)

// ===============================
// HTTP 客户端
// ===============================

// 创建 HTTP/1.1 客户端
func createHTTP1Client(timeout time.Duration, insecure bool) *http.Client {
	dialer := &net.Dialer{
		Timeout:   timeout,
		KeepAlive: 30 * time.Second,
	}

	transport := &http.Transport{
		DialContext: dialer.DialContext,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: insecure,
			// 强制使用 HTTP/1.1，不进行 HTTP/2 ALPN 协商
			NextProtos: []string{"http/1.1"},
		},
		// 禁用 HTTP/2
		ForceAttemptHTTP2:   false,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 100,
		IdleConnTimeout:     90 * time.Second,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}

// 创建 HTTP/2 客户端（强制使用HTTP/2）
func createHTTP2Client(timeout time.Duration, insecure bool) *http.Client {
	dialer := &net.Dialer{
		Timeout:   timeout,
		KeepAlive: 30 * time.Second,
	}

	transport := &http.Transport{
		DialContext: dialer.DialContext,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: insecure,
			// 强制使用HTTP/2的ALPN
			NextProtos: []string{"h2"},
		},
		// 强制启用HTTP/2
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 100,
		IdleConnTimeout:     90 * time.Second,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}

// 创建 HTTP/3 客户端
func createHTTP3Client(timeout time.Duration, insecure bool) *http.Client {
	transport := &http3.RoundTripper{
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: insecure,
		},
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}

// newProtocolClient 按配置的协议创建客户端
func newProtocolClient(p Protocol, timeout time.Duration, insecure bool) *http.Client {
	switch p {
	case HTTP3:
		return createHTTP3Client(timeout, insecure)
	case HTTP2:
		return createHTTP2Client(timeout, insecure)
	default:
		return createHTTP1Client(timeout, insecure)
	}
}

// ===============================
// Humanizer 服务客户端
// ===============================

// Client 目标服务的测量客户端
type Client struct {
	baseURL string
	httpc   *http.Client  // 转换请求用，超时为测量上限
	probe   *http.Client  // 健康检查用，超时较短
	timeout time.Duration // 单次请求耗时上限
}

// NewClient 创建测量客户端
func NewClient(cfg *Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpc:   newProtocolClient(cfg.Protocol, cfg.RequestTimeout, cfg.InsecureTLS),
		probe:   newProtocolClient(cfg.Protocol, cfg.HealthTimeout, cfg.InsecureTLS),
		timeout: cfg.RequestTimeout,
	}
}

// humanize 接口的请求体
type humanizeRequest struct {
	Text         string `json:"text"`
	Paraphrasing bool   `json:"paraphrasing"`
	Enhanced     bool   `json:"enhanced"`
}

// humanize 接口响应中关心的部分
type humanizeResponse struct {
	Statistics map[string]interface{} `json:"statistics"`
}

// IsAvailable 检查服务是否可用
// 健康检查超时内返回 200 才算可用；连接失败、超时、非 200 一律返回 false
func (c *Client) IsAvailable() bool {
	resp, err := c.probe.Get(c.baseURL + "/health")
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}

// ===============================
// 测量逻辑
// ===============================

// Humanize 执行单次转换调用并测量耗时
// 耗时为墙钟时间：从发出请求到响应体读取完毕，包含全部网络开销。
// 四种终态的记录规则：
//   - 成功(200)：实测耗时 + 解析 statistics
//   - 非 200：实测耗时 + 空统计
//   - 超时：耗时记为上限值 + 空统计
//   - 其他传输失败：耗时记为 0 + 空统计
// 任何失败都只反映在结果里，不会向上抛出。
func (c *Client) Humanize(text string, mode Mode) ModeResult {
	result := ModeResult{
		Mode:  mode,
		Stats: map[string]interface{}{},
	}

	payload, err := json.Marshal(humanizeRequest{
		Text:         text,
		Paraphrasing: true,
		Enhanced:     mode == ModeEnhanced,
	})
	if err != nil {
		result.Outcome = OutcomeTransportError
		result.Err = fmt.Sprintf("编码请求体失败: %v", err)
		return result
	}

	req, err := http.NewRequest("POST", c.baseURL+"/humanize", bytes.NewReader(payload))
	if err != nil {
		result.Outcome = OutcomeTransportError
		result.Err = fmt.Sprintf("创建请求失败: %v", err)
		return result
	}
	req.Header.Set("Content-Type", "application/json")

	// 使用 httptrace 测量 TTFB 和连接复用
	var start time.Time
	var ttfb time.Duration

	var reused bool

	trace := &httptrace.ClientTrace{
		GotConn: func(connInfo httptrace.GotConnInfo) {
			reused = connInfo.Reused
		},
		GotFirstResponseByte: func() {
			ttfb = time.Since(start)
		},
	}

	req = req.WithContext(httptrace.WithClientTrace(req.Context(), trace))

	// 发送请求
	start = time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		if isTimeout(err) {
			result.Outcome = OutcomeTimeout
			result.Elapsed = c.timeout
			result.Err = fmt.Sprintf("请求超时 (上限 %s)", c.timeout)
		} else {
			result.Outcome = OutcomeTransportError
			result.Err = fmt.Sprintf("请求失败: %v", err)
		}
		return result
	}
	defer resp.Body.Close()

	// 读完响应体再计时，保证测到完整往返
	body, err := io.ReadAll(resp.Body)
	elapsed := time.Since(start)
	if err != nil {
		if isTimeout(err) {
			result.Outcome = OutcomeTimeout
			result.Elapsed = c.timeout
			result.Err = fmt.Sprintf("读取响应超时 (上限 %s)", c.timeout)
		} else {
			result.Outcome = OutcomeTransportError
			result.Err = fmt.Sprintf("读取响应失败: %v", err)
		}
		return result
	}
	if elapsed > c.timeout {
		elapsed = c.timeout
	}

	result.Elapsed = elapsed
	result.TTFB = ttfb
	result.StatusCode = resp.StatusCode
	result.Reused = reused
	result.Proto = resp.Proto

	if resp.StatusCode != http.StatusOK {
		result.Outcome = OutcomeHTTPError
		result.Err = fmt.Sprintf("服务端返回状态码 %d", resp.StatusCode)
		return result
	}

	result.Outcome = OutcomeSuccess

	// 解析统计信息；解析不了只留空，不伪造数据
	var hr humanizeResponse
	if err := json.Unmarshal(body, &hr); err == nil && hr.Statistics != nil {
		result.Stats = hr.Statistics
	}

	return result
}

// isTimeout 判断错误是否为超时（含 Client.Timeout 与读响应体期间的超时）
func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
