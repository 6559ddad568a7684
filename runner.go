package main

import (
	"fmt"
	"strings"
)

// ===============================
// 基准测试执行
// ===============================

// runAll 按声明顺序对每个样本依次执行 fast / enhanced 两种模式的测量，
// 返回与样本顺序一致的聚合记录序列。
// 严格串行：同一时刻只有一个请求在途，后一次调用必须等前一次返回或超时。
// 单次调用失败只记录在结果里，绝不中断整个测量。
func runAll(client *Client, samples []Sample) []SampleRecord {
	records := make([]SampleRecord, 0, len(samples))

	for _, sample := range samples {
		logger.Section(fmt.Sprintf("📝 测试 %s 文本 (%d 字符)", strings.ToUpper(sample.Name), sample.Length()))

		logger.Printf("\n⚡ 模式: FAST (enhanced=false)\n")
		fast := client.Humanize(sample.Text, ModeFast)
		logger.LogModeResult(fast)

		logger.Printf("\n🎨 模式: ENHANCED (enhanced=true)\n")
		enhanced := client.Humanize(sample.Text, ModeEnhanced)
		logger.LogModeResult(enhanced)

		// 单样本速度差异（除数为 0 时按 1.0 记）
		if enhanced.Elapsed > 0 {
			speedup := 1.0
			if fast.Elapsed > 0 {
				speedup = enhanced.Elapsed.Seconds() / fast.Elapsed.Seconds()
			}
			logger.Printf("\n⚡ 速度差异: FAST 模式快 %.1fx\n", speedup)
		}

		records = append(records, SampleRecord{
			Label:    sample.Name,
			Length:   sample.Length(),
			Fast:     fast,
			Enhanced: enhanced,
		})
	}

	return records
}
