package main

import (
	"encoding/json"
	"time"
	"unicode/utf8"
)

// Sample 一条基准测试样本（配置时定义，测量期间不变）
type Sample struct {
	Name string // 类别标签（如 short / medium / long）
	Text string // 待转换文本
}

// Length 样本文本长度（按 Unicode 字符数计）
func (s Sample) Length() int {
	return utf8.RuneCountInString(s.Text)
}

// Mode 测量模式
type Mode int

const (
	ModeFast     Mode = iota // enhanced=false，预期更快
	ModeEnhanced             // enhanced=true，预期更慢但输出变化更多
)

func (m Mode) String() string {
	switch m {
	case ModeFast:
		return "fast"
	case ModeEnhanced:
		return "enhanced"
	default:
		return "unknown"
	}
}

func (m Mode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// Outcome 单次定时调用的终态
type Outcome int

const (
	OutcomeSuccess        Outcome = iota // HTTP 200，统计信息已解析
	OutcomeHTTPError                     // 非 200 状态码，耗时照常记录
	OutcomeTimeout                       // 超过上限，耗时记为上限值
	OutcomeTransportError                // 其他传输失败，耗时记为 0
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeHTTPError:
		return "http_error"
	case OutcomeTimeout:
		return "timeout"
	case OutcomeTransportError:
		return "transport_error"
	default:
		return "unknown"
	}
}

func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// ModeResult 单次定时调用的测量结果
type ModeResult struct {
	Mode       Mode                   // 测量模式
	Outcome    Outcome                // 调用终态
	Elapsed    time.Duration          // 客户端观测的完整耗时（含网络开销）
	TTFB       time.Duration          // Time To First Byte（等待服务器响应时长）
	StatusCode int                    // HTTP状态码（传输失败时为 0）
	Reused     bool                   // 是否复用连接
	Proto      string                 // 实际使用的协议版本（如 HTTP/1.1, HTTP/2.0）
	Stats      map[string]interface{} // 服务端返回的统计信息（失败时为空，不伪造）
	Err        string                 // 错误信息（如果有）
}

// SampleRecord 一个样本在两种模式下的聚合记录
type SampleRecord struct {
	Label    string     // 样本标签
	Length   int        // 样本长度（字符数）
	Fast     ModeResult // fast 模式结果
	Enhanced ModeResult // enhanced 模式结果
}

// SummaryRow 汇总表中的一行
type SummaryRow struct {
	Label    string
	Length   int
	Fast     time.Duration
	Enhanced time.Duration
	Speedup  float64 // enhanced ÷ fast，除数为 0 时取 1.0
}

// BenchSummary 汇总统计（按需从记录序列计算，不落盘）
type BenchSummary struct {
	Rows           []SummaryRow
	TotalFast      time.Duration
	TotalEnhanced  time.Duration
	OverallSpeedup float64
	Verdict        string // 总体建议
}

// statInt 从统计映射中读取整数值（JSON 数字解码为 float64）
func statInt(stats map[string]interface{}, key string) int {
	switch v := stats[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}
