package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 测试期间静默全局日志
func TestMain(m *testing.M) {
	logger = &Logger{multiOut: io.Discard, startTime: time.Now()}
	os.Exit(m.Run())
}

// newTestClient 构造指向 mock 服务的客户端
func newTestClient(baseURL string, timeout time.Duration) *Client {
	cfg := DefaultConfig()
	cfg.BaseURL = baseURL
	cfg.RequestTimeout = timeout
	cfg.HealthTimeout = timeout
	return NewClient(cfg)
}

// humanizeOK 返回正常应答的 mock handler，按模式附加延迟
func humanizeOK(fastDelay, enhancedDelay time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req humanizeRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		delay := fastDelay
		if req.Enhanced {
			delay = enhancedDelay
		}
		if delay > 0 {
			time.Sleep(delay)
		}

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"humanized_text": req.Text,
			"statistics": map[string]int{
				"original_length": len(req.Text),
				"final_length":    len(req.Text) + 7,
			},
		})
	}
}

func TestRunAllOrderAndCount(t *testing.T) {
	srv := httptest.NewServer(humanizeOK(0, 0))
	defer srv.Close()

	client := newTestClient(srv.URL, 2*time.Second)
	samples := []Sample{
		{Name: "short", Text: "aaa"},
		{Name: "medium", Text: "bbbbbb"},
		{Name: "long", Text: "ccccccccc"},
	}

	records := runAll(client, samples)

	require.Len(t, records, 3)
	for i, rec := range records {
		assert.Equal(t, samples[i].Name, rec.Label)
		assert.Equal(t, samples[i].Length(), rec.Length)
		assert.Equal(t, OutcomeSuccess, rec.Fast.Outcome)
		assert.Equal(t, OutcomeSuccess, rec.Enhanced.Outcome)
		assert.NotEmpty(t, rec.Fast.Stats)
		assert.NotEmpty(t, rec.Enhanced.Stats)

		for _, r := range []ModeResult{rec.Fast, rec.Enhanced} {
			assert.GreaterOrEqual(t, r.Elapsed, time.Duration(0))
			assert.LessOrEqual(t, r.Elapsed, 2*time.Second)
		}
	}
}

func TestRunAllContinuesAfterHTTPError(t *testing.T) {
	// enhanced 模式一律 500，fast 模式正常
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req humanizeRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Enhanced {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"statistics": map[string]int{"original_length": len(req.Text), "final_length": len(req.Text)},
		})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 2*time.Second)
	records := runAll(client, []Sample{
		{Name: "first", Text: "hello"},
		{Name: "second", Text: "world"},
	})

	require.Len(t, records, 2)
	for _, rec := range records {
		assert.Equal(t, OutcomeSuccess, rec.Fast.Outcome)

		assert.Equal(t, OutcomeHTTPError, rec.Enhanced.Outcome)
		assert.Equal(t, http.StatusInternalServerError, rec.Enhanced.StatusCode)
		assert.NotNil(t, rec.Enhanced.Stats)
		assert.Empty(t, rec.Enhanced.Stats)
		assert.NotEmpty(t, rec.Enhanced.Err)
		// 非 200 的耗时照常实测
		assert.GreaterOrEqual(t, rec.Enhanced.Elapsed, time.Duration(0))
	}
}

func TestRunAllTimeoutRecordsCeiling(t *testing.T) {
	const ceiling = 50 * time.Millisecond

	// enhanced 模式睡过上限，fast 模式立即返回
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req humanizeRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Enhanced {
			time.Sleep(300 * time.Millisecond)
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"statistics": map[string]int{"original_length": len(req.Text), "final_length": len(req.Text)},
		})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, ceiling)
	records := runAll(client, []Sample{
		{Name: "first", Text: "hello"},
		{Name: "second", Text: "world"},
	})

	// 超时不中断后续样本
	require.Len(t, records, 2)
	for _, rec := range records {
		assert.Equal(t, OutcomeSuccess, rec.Fast.Outcome)

		assert.Equal(t, OutcomeTimeout, rec.Enhanced.Outcome)
		assert.Equal(t, ceiling, rec.Enhanced.Elapsed)
		assert.Empty(t, rec.Enhanced.Stats)
	}
}

func TestRunAllTransportErrorRecordsZero(t *testing.T) {
	srv := httptest.NewServer(humanizeOK(0, 0))
	baseURL := srv.URL
	srv.Close() // 立即关闭，模拟连接失败

	client := newTestClient(baseURL, time.Second)
	records := runAll(client, []Sample{
		{Name: "first", Text: "hello"},
		{Name: "second", Text: "world"},
	})

	require.Len(t, records, 2)
	for _, rec := range records {
		for _, r := range []ModeResult{rec.Fast, rec.Enhanced} {
			assert.Equal(t, OutcomeTransportError, r.Outcome)
			assert.Equal(t, time.Duration(0), r.Elapsed)
			assert.Empty(t, r.Stats)
			assert.NotEmpty(t, r.Err)
		}
	}
}

func TestRunAllMixedSuccessAndFailure(t *testing.T) {
	// 按样本内容决定成败：包含 boom 的请求直接断开连接
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req humanizeRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if strings.Contains(req.Text, "boom") {
			panic(http.ErrAbortHandler)
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"statistics": map[string]int{"original_length": len(req.Text), "final_length": len(req.Text)},
		})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, time.Second)
	records := runAll(client, []Sample{
		{Name: "ok", Text: "hello"},
		{Name: "broken", Text: "boom"},
	})

	require.Len(t, records, 2)

	assert.Equal(t, OutcomeSuccess, records[0].Fast.Outcome)
	assert.Equal(t, OutcomeSuccess, records[0].Enhanced.Outcome)

	assert.Equal(t, OutcomeTransportError, records[1].Fast.Outcome)
	assert.Equal(t, OutcomeTransportError, records[1].Enhanced.Outcome)
	assert.Equal(t, time.Duration(0), records[1].Fast.Elapsed)
	assert.Equal(t, time.Duration(0), records[1].Enhanced.Elapsed)

	// 汇总只含成功样本的非零耗时
	summary := summarize(records)
	assert.Equal(t, records[0].Fast.Elapsed, summary.TotalFast)
	assert.Equal(t, records[0].Enhanced.Elapsed, summary.TotalEnhanced)
}
