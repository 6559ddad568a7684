package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// ===============================
// 日志模块
// ===============================

// Logger 日志记录器，支持同时输出到控制台和文件
type Logger struct {
	file      *os.File
	multiOut  io.Writer
	startTime time.Time
	logPath   string
}

// NewLogger 创建新的日志记录器
// 会自动创建输出目录和日志文件
func NewLogger(outputDir string, enabled bool) (*Logger, error) {
	logger := &Logger{
		startTime: time.Now(),
	}

	if !enabled {
		// 禁用日志时，只输出到控制台
		logger.multiOut = os.Stdout
		return logger, nil
	}

	// 创建日志目录
	logDir := filepath.Join(outputDir, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("创建日志目录失败: %w", err)
	}

	// 生成日志文件名（基于时间戳）
	timestamp := logger.startTime.Format("2006-01-02_15-04-05")
	logger.logPath = filepath.Join(logDir, fmt.Sprintf("%s.log", timestamp))

	// 创建日志文件
	file, err := os.Create(logger.logPath)
	if err != nil {
		return nil, fmt.Errorf("创建日志文件失败: %w", err)
	}
	logger.file = file

	// 同时输出到控制台和文件
	logger.multiOut = io.MultiWriter(os.Stdout, file)

	return logger, nil
}

// Close 关闭日志文件
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// GetLogPath 获取日志文件路径
func (l *Logger) GetLogPath() string {
	return l.logPath
}

// GetStartTime 获取开始时间
func (l *Logger) GetStartTime() time.Time {
	return l.startTime
}

// Printf 格式化输出（同时写入控制台和日志文件）
func (l *Logger) Printf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprint(l.multiOut, msg)
}

// Println 输出一行（同时写入控制台和日志文件）
func (l *Logger) Println(args ...interface{}) {
	fmt.Fprintln(l.multiOut, args...)
}

// Info 输出信息日志
func (l *Logger) Info(format string, args ...interface{}) {
	timestamp := time.Now().Format("15:04:05")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.multiOut, "[%s] INFO  %s\n", timestamp, msg)
}

// Error 输出错误日志
func (l *Logger) Error(format string, args ...interface{}) {
	timestamp := time.Now().Format("15:04:05")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.multiOut, "[%s] ERROR %s\n", timestamp, msg)
}

// Debug 输出调试日志
func (l *Logger) Debug(format string, args ...interface{}) {
	timestamp := time.Now().Format("15:04:05")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.multiOut, "[%s] DEBUG %s\n", timestamp, msg)
}

// Section 输出分隔区域
func (l *Logger) Section(title string) {
	l.Println()
	l.Printf("==================== %s ====================\n", title)
}

// LogConfig 记录配置信息
func (l *Logger) LogConfig(cfg Config) {
	l.Section("测试配置")
	l.Printf("目标服务: %s\n", cfg.BaseURL)
	l.Printf("协议: %s\n", cfg.Protocol)
	l.Printf("请求超时上限: %s\n", cfg.RequestTimeout)
	l.Printf("健康检查超时: %s\n", cfg.HealthTimeout)
	l.Println("待测样本:")
	for _, s := range cfg.Samples {
		l.Printf("  - %s: %d 字符\n", s.Name, s.Length())
	}
}

// LogModeResult 记录单次模式测量结果
func (l *Logger) LogModeResult(r ModeResult) {
	switch r.Outcome {
	case OutcomeSuccess:
		reusedStr := "新连接"
		if r.Reused {
			reusedStr = "复用"
		}
		l.Printf("  ⏱️  耗时: %.2fs (TTFB: %.2fms) [%s] [%s]\n",
			r.Elapsed.Seconds(),
			float64(r.TTFB.Microseconds())/1000.0,
			reusedStr,
			r.Proto)
		if len(r.Stats) > 0 {
			l.Printf("  📊 原文长度: %d 字符\n", statInt(r.Stats, "original_length"))
			l.Printf("  📊 处理后长度: %d 字符\n", statInt(r.Stats, "final_length"))
		}
	case OutcomeHTTPError:
		l.Printf("  ⏱️  耗时: %.2fs\n", r.Elapsed.Seconds())
		l.Printf("  ❌ %s\n", r.Err)
	case OutcomeTimeout:
		l.Printf("  ❌ 请求超时，按上限 %.0fs 记录\n", r.Elapsed.Seconds())
	default:
		l.Printf("  ❌ %s\n", r.Err)
	}
}
