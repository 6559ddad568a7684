package main

import (
	"fmt"
	"os"

	"github.com/logrusorgru/aurora/v4"
)

// 全局日志记录器
var logger *Logger

// ===============================
// 主函数
// ===============================

func main() {
	var err error

	// 第一个参数覆盖目标服务地址，第二个参数指定配置文件路径
	configPath := defaultConfigPath
	if len(os.Args) > 2 {
		configPath = os.Args[2]
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		fmt.Printf("❌ 加载配置失败: %v\n", err)
		fmt.Println("用法: ./humanizer-bench [base_url] [benchmark.yaml]")
		os.Exit(1)
	}

	if len(os.Args) > 1 {
		config.BaseURL = os.Args[1]
	}

	// 初始化日志记录器
	logger, err = NewLogger(config.OutputDir, config.EnableLog)
	if err != nil {
		fmt.Printf("❌ 初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	// 创建测试报告
	report := NewTestReport(logger.GetStartTime(), *config)

	logger.Println("======================================================================")
	logger.Println("🚀 Humanizer 性能基准测试")
	logger.Println("======================================================================")
	logger.LogConfig(*config)

	client := NewClient(config)

	// 可用性探测是唯一的硬性前置条件：失败则不做任何测量
	logger.Println("\n📡 检查服务状态...")
	if !client.IsAvailable() {
		logger.Println(aurora.Red("❌ 服务不可用!"))
		logger.Printf("   请确认服务已在 %s 启动 (健康检查: GET %s/health)\n",
			config.BaseURL, config.BaseURL)
		logger.Close()
		os.Exit(1)
	}
	logger.Println(aurora.Green("✅ 服务正常"))

	// 顺序执行全部测量
	records := runAll(client, config.Samples)

	// 打印详细结果
	for _, rec := range records {
		printDetailTable(rec)
	}

	// 计算并打印汇总
	summary := summarize(records)
	printSummaryTable(summary)

	// 完成报告
	report.Finalize(records, summary)

	// 导出报告
	logger.Section("报告生成")

	if config.EnableJSON {
		jsonPath, err := ExportJSON(report, config.OutputDir)
		if err != nil {
			logger.Error("导出 JSON 报告失败: %v", err)
		} else {
			logger.Printf("📄 JSON 报告: %s\n", jsonPath)
		}
	}

	if config.EnableHTML {
		htmlPath, err := ExportHTML(report, config.OutputDir)
		if err != nil {
			logger.Error("导出 HTML 报告失败: %v", err)
		} else {
			logger.Printf("🌐 HTML 报告: %s\n", htmlPath)
		}
	}

	if logger.GetLogPath() != "" {
		logger.Printf("📝 日志文件: %s\n", logger.GetLogPath())
	}

	logger.Println("\n✅ 基准测试完成!")
}
