package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/logrusorgru/aurora/v4"
	"github.com/olekukonko/tablewriter"
)

// ===============================
// 汇总计算
// ===============================

// summarize 从聚合记录序列计算汇总
// 每行速度比 = enhanced ÷ fast，除数为 0 时取 1.0；
// 总计为各模式耗时的精确求和；总体速度比按同样的规则从总计得出。
// 对空序列和全零序列都不会出错。
func summarize(records []SampleRecord) BenchSummary {
	summary := BenchSummary{
		Rows: make([]SummaryRow, 0, len(records)),
	}

	for _, rec := range records {
		speedup := 1.0
		if rec.Fast.Elapsed > 0 {
			speedup = rec.Enhanced.Elapsed.Seconds() / rec.Fast.Elapsed.Seconds()
		}

		summary.Rows = append(summary.Rows, SummaryRow{
			Label:    rec.Label,
			Length:   rec.Length,
			Fast:     rec.Fast.Elapsed,
			Enhanced: rec.Enhanced.Elapsed,
			Speedup:  speedup,
		})

		summary.TotalFast += rec.Fast.Elapsed
		summary.TotalEnhanced += rec.Enhanced.Elapsed
	}

	summary.OverallSpeedup = 1.0
	if summary.TotalFast > 0 {
		summary.OverallSpeedup = summary.TotalEnhanced.Seconds() / summary.TotalFast.Seconds()
	}
	summary.Verdict = verdict(summary.OverallSpeedup)

	return summary
}

// verdict 根据总体速度比生成建议文本
// 比值接近 1 时不给出"提升"字样，避免误导
func verdict(overall float64) string {
	switch {
	case overall >= 1.05:
		return fmt.Sprintf("使用 FAST 模式 (enhanced=false)，约 %.1fx 提升；仅在需要最大文本变化时使用 ENHANCED 模式", overall)
	case overall > 0.95:
		return "两种模式耗时相当，按输出质量需求选择即可"
	default:
		return fmt.Sprintf("本次运行中 ENHANCED 模式更快 (速度比 %.1fx)；若与预期不符请检查服务配置", overall)
	}
}

// ===============================
// 输出
// ===============================

// 打印单个样本的详细结果表格
func printDetailTable(rec SampleRecord) {
	fmt.Printf("\n📊 %s (%d 字符) 详细结果:\n", rec.Label, rec.Length)

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"模式", "结果", "状态码", "连接", "TTFB(ms)", "耗时(s)", "原文长度", "处理后长度", "错误"}),
	)

	for _, r := range []ModeResult{rec.Fast, rec.Enhanced} {
		statusStr := "-"
		if r.StatusCode > 0 {
			statusStr = fmt.Sprintf("%d", r.StatusCode)
		}

		reusedStr := "No"
		if r.Reused {
			reusedStr = "Yes"
		}

		origStr := "-"
		finalStr := "-"
		if len(r.Stats) > 0 {
			origStr = fmt.Sprintf("%d", statInt(r.Stats, "original_length"))
			finalStr = fmt.Sprintf("%d", statInt(r.Stats, "final_length"))
		}

		table.Append([]string{
			strings.ToUpper(r.Mode.String()),
			r.Outcome.String(),
			statusStr,
			reusedStr,
			fmt.Sprintf("%.2f", float64(r.TTFB.Microseconds())/1000.0),
			fmt.Sprintf("%.2f", r.Elapsed.Seconds()),
			origStr,
			finalStr,
			r.Err,
		})
	}

	table.Render()
}

// 打印汇总表格和总体建议
func printSummaryTable(summary BenchSummary) {
	fmt.Println("\n📊 基准测试汇总:")

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"样本", "长度(字符)", "FAST(s)", "ENHANCED(s)", "速度比"}),
	)

	for _, row := range summary.Rows {
		table.Append([]string{
			row.Label,
			fmt.Sprintf("%d", row.Length),
			fmt.Sprintf("%.2f", row.Fast.Seconds()),
			fmt.Sprintf("%.2f", row.Enhanced.Seconds()),
			fmt.Sprintf("%.1fx", row.Speedup),
		})
	}

	table.Append([]string{
		"TOTAL",
		"",
		fmt.Sprintf("%.2f", summary.TotalFast.Seconds()),
		fmt.Sprintf("%.2f", summary.TotalEnhanced.Seconds()),
		fmt.Sprintf("%.1fx", summary.OverallSpeedup),
	})

	table.Render()

	fmt.Println()
	fmt.Println(aurora.Sprintf(aurora.Yellow("💡 建议: %s"), summary.Verdict))
	fmt.Println("   速度比 = ENHANCED 耗时 ÷ FAST 耗时，大于 1 表示 FAST 模式更快")
}
