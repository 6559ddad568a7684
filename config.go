package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ===============================
// 配置加载模块
// ===============================

// 默认配置文件路径
const defaultConfigPath = "benchmark.yaml"

// 默认目标服务地址
const defaultBaseURL = "http://localhost:5000"

// Config 运行时配置
type Config struct {
	BaseURL        string        // 目标服务地址
	Protocol       Protocol      // 协议类型
	RequestTimeout time.Duration // 单次转换请求超时上限
	HealthTimeout  time.Duration // 健康检查超时
	InsecureTLS    bool          // 跳过 TLS 证书校验（自签名测试环境用）
	Samples        []Sample      // 待测样本列表

	// 输出配置
	OutputDir  string // 输出目录
	EnableLog  bool   // 是否启用日志文件
	EnableJSON bool   // 是否生成 JSON 报告
	EnableHTML bool   // 是否生成 HTML 报告
}

// Protocol 协议类型
type Protocol int

const (
	HTTP1 Protocol = iota
	HTTP2
	HTTP3
)

func (p Protocol) String() string {
	switch p {
	case HTTP1:
		return "HTTP/1.1"
	case HTTP2:
		return "HTTP/2"
	case HTTP3:
		return "HTTP/3"
	default:
		return "Unknown"
	}
}

// parseProtocol 解析协议字符串
func parseProtocol(s string) Protocol {
	switch s {
	case "HTTP/3", "http3", "h3":
		return HTTP3
	case "HTTP/2", "http2", "h2":
		return HTTP2
	default:
		return HTTP1
	}
}

// ===============================
// YAML 配置结构
// ===============================

type yamlConfig struct {
	BaseURL        string `yaml:"base_url"`
	Protocol       string `yaml:"protocol"`
	RequestTimeout string `yaml:"request_timeout"`
	HealthTimeout  string `yaml:"health_timeout"`
	InsecureTLS    bool   `yaml:"insecure_tls"`
	Samples        []struct {
		Name string `yaml:"name"`
		Text string `yaml:"text"`
	} `yaml:"samples"`
	Output struct {
		Dir        string `yaml:"dir"`
		EnableLog  bool   `yaml:"enable_log"`
		EnableJSON bool   `yaml:"enable_json"`
		EnableHTML bool   `yaml:"enable_html"`
	} `yaml:"output"`
}

// DefaultConfig 内置默认配置（无配置文件时使用）
func DefaultConfig() *Config {
	return &Config{
		BaseURL:        defaultBaseURL,
		Protocol:       HTTP1,
		RequestTimeout: 60 * time.Second,
		HealthTimeout:  5 * time.Second,
		Samples:        defaultSamples(),
		OutputDir:      "./output",
	}
}

// LoadConfig 从 YAML 文件加载配置
// 文件不存在不算错误，此时返回内置默认配置
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = defaultConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	// 解析请求超时上限
	requestTimeout, err := time.ParseDuration(yc.RequestTimeout)
	if err != nil {
		requestTimeout = 60 * time.Second
	}

	// 解析健康检查超时
	healthTimeout, err := time.ParseDuration(yc.HealthTimeout)
	if err != nil {
		healthTimeout = 5 * time.Second
	}

	// 转换样本配置
	samples := make([]Sample, len(yc.Samples))
	for i, s := range yc.Samples {
		samples[i] = Sample{Name: s.Name, Text: s.Text}
	}
	if len(samples) == 0 {
		samples = defaultSamples()
	}

	// 设置默认值
	baseURL := yc.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	outputDir := yc.Output.Dir
	if outputDir == "" {
		outputDir = "./output"
	}

	return &Config{
		BaseURL:        baseURL,
		Protocol:       parseProtocol(yc.Protocol),
		RequestTimeout: requestTimeout,
		HealthTimeout:  healthTimeout,
		InsecureTLS:    yc.InsecureTLS,
		Samples:        samples,
		OutputDir:      outputDir,
		EnableLog:      yc.Output.EnableLog,
		EnableJSON:     yc.Output.EnableJSON,
		EnableHTML:     yc.Output.EnableHTML,
	}, nil
}
