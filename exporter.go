package main

import (
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ===============================
// 报告导出模块
// ===============================

// TestReport 完整基准测试报告
type TestReport struct {
	StartTime  time.Time      `json:"start_time"` // 测试开始时间
	EndTime    time.Time      `json:"end_time"`   // 测试结束时间
	Duration   time.Duration  `json:"duration"`   // 总耗时
	Config     ReportConfig   `json:"config"`     // 测试配置快照
	Records    []SampleRecord `json:"records"`    // 按样本顺序的聚合记录
	Summary    BenchSummary   `json:"summary"`    // 汇总统计
	MaxElapsed time.Duration  `json:"-"`          // 所有模式结果中的最大耗时（仅用于 HTML 柱状图比例）
}

// ReportConfig 配置快照（用于报告）
type ReportConfig struct {
	BaseURL        string       `json:"base_url"`
	Protocol       string       `json:"protocol"`
	RequestTimeout string       `json:"request_timeout"`
	HealthTimeout  string       `json:"health_timeout"`
	Samples        []SampleInfo `json:"samples"`
}

// SampleInfo 样本信息（用于报告，不含正文）
type SampleInfo struct {
	Name   string `json:"name"`
	Length int    `json:"length"`
}

// NewTestReport 创建新的测试报告
func NewTestReport(startTime time.Time, cfg Config) *TestReport {
	samples := make([]SampleInfo, len(cfg.Samples))
	for i, s := range cfg.Samples {
		samples[i] = SampleInfo{
			Name:   s.Name,
			Length: s.Length(),
		}
	}

	return &TestReport{
		StartTime: startTime,
		Config: ReportConfig{
			BaseURL:        cfg.BaseURL,
			Protocol:       cfg.Protocol.String(),
			RequestTimeout: cfg.RequestTimeout.String(),
			HealthTimeout:  cfg.HealthTimeout.String(),
			Samples:        samples,
		},
	}
}

// Finalize 完成报告
func (r *TestReport) Finalize(records []SampleRecord, summary BenchSummary) {
	r.EndTime = time.Now()
	r.Duration = r.EndTime.Sub(r.StartTime)
	r.Records = records
	r.Summary = summary

	for _, rec := range records {
		if rec.Fast.Elapsed > r.MaxElapsed {
			r.MaxElapsed = rec.Fast.Elapsed
		}
		if rec.Enhanced.Elapsed > r.MaxElapsed {
			r.MaxElapsed = rec.Enhanced.Elapsed
		}
	}
}

// ExportJSON 导出 JSON 格式报告
func ExportJSON(report *TestReport, outputDir string) (string, error) {
	// 创建报告目录
	reportDir := filepath.Join(outputDir, "reports")
	if err := os.MkdirAll(reportDir, 0755); err != nil {
		return "", fmt.Errorf("创建报告目录失败: %w", err)
	}

	// 生成文件名
	timestamp := report.StartTime.Format("2006-01-02_15-04-05")
	filePath := filepath.Join(reportDir, fmt.Sprintf("%s.json", timestamp))

	// 序列化为 JSON
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("JSON 序列化失败: %w", err)
	}

	// 写入文件
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("写入 JSON 文件失败: %w", err)
	}

	return filePath, nil
}

// ExportHTML 导出 HTML 格式报告
func ExportHTML(report *TestReport, outputDir string) (string, error) {
	// 创建报告目录
	reportDir := filepath.Join(outputDir, "reports")
	if err := os.MkdirAll(reportDir, 0755); err != nil {
		return "", fmt.Errorf("创建报告目录失败: %w", err)
	}

	// 生成文件名
	timestamp := report.StartTime.Format("2006-01-02_15-04-05")
	filePath := filepath.Join(reportDir, fmt.Sprintf("%s.html", timestamp))

	// 创建文件
	file, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("创建 HTML 文件失败: %w", err)
	}
	defer file.Close()

	// 解析模板并渲染
	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"formatDuration": func(d time.Duration) string {
			return d.Round(time.Millisecond).String()
		},
		"formatTime": func(t time.Time) string {
			return t.Format("2006-01-02 15:04:05")
		},
		"seconds": func(d time.Duration) string {
			return fmt.Sprintf("%.2f", d.Seconds())
		},
		"ms": func(d time.Duration) float64 {
			return float64(d.Microseconds()) / 1000.0
		},
		"modeLabel": func(m Mode) string {
			return strings.ToUpper(m.String())
		},
		"modes": func(rec SampleRecord) []ModeResult {
			return []ModeResult{rec.Fast, rec.Enhanced}
		},
		"stat": statInt,
		// 柱宽按全局最大耗时等比缩放
		"barWidth": func(d, max time.Duration) template.CSS {
			if max <= 0 {
				return template.CSS("width: 0%")
			}
			pct := d.Seconds() / max.Seconds() * 100
			if pct < 1.5 && d > 0 {
				pct = 1.5
			}
			return template.CSS(fmt.Sprintf("width: %.1f%%", pct))
		},
		"barClass": func(r ModeResult) string {
			if r.Outcome != OutcomeSuccess {
				return "bar-failed"
			}
			if r.Mode == ModeEnhanced {
				return "bar-enhanced"
			}
			return "bar-fast"
		},
		"outcomeClass": func(o Outcome) string {
			switch o {
			case OutcomeSuccess:
				return "success"
			case OutcomeHTTPError:
				return "warn"
			default:
				return "error"
			}
		},
		// 根据速度比返回颜色类（>1 表示 FAST 更快）
		"speedupClass": func(s float64) string {
			if s >= 1.05 {
				return "perf-good"
			}
			if s > 0.95 {
				return "perf-fair"
			}
			return "perf-poor"
		},
	}).Parse(htmlTemplate)
	if err != nil {
		return "", fmt.Errorf("解析 HTML 模板失败: %w", err)
	}

	if err := tmpl.Execute(file, report); err != nil {
		return "", fmt.Errorf("渲染 HTML 模板失败: %w", err)
	}

	return filePath, nil
}

// HTML 模板
const htmlTemplate = `<!DOCTYPE html>
<html lang="zh-CN">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Humanizer 性能基准测试报告 - {{formatTime .StartTime}}</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            background: linear-gradient(135deg, #0f0f1a 0%, #1a1a2e 50%, #16213e 100%);
            color: #e8e8e8;
            min-height: 100vh;
            padding: 20px;
        }
        .container { max-width: 1200px; margin: 0 auto; }
        h1 {
            text-align: center;
            font-size: 2.5em;
            margin-bottom: 10px;
            background: linear-gradient(90deg, #00d4ff, #7b2fff, #ff6b6b);
            -webkit-background-clip: text;
            -webkit-text-fill-color: transparent;
            background-clip: text;
        }
        .subtitle { text-align: center; color: #888; margin-bottom: 30px; }
        .card {
            background: rgba(255, 255, 255, 0.03);
            border-radius: 16px;
            padding: 24px;
            margin-bottom: 24px;
            backdrop-filter: blur(10px);
            border: 1px solid rgba(255, 255, 255, 0.08);
        }
        .card h2 {
            font-size: 1.3em;
            margin-bottom: 16px;
            color: #00d4ff;
        }
        .config-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(200px, 1fr));
            gap: 16px;
        }
        .config-item { padding: 12px; background: rgba(0, 0, 0, 0.3); border-radius: 8px; }
        .config-item label { display: block; font-size: 0.85em; color: #888; margin-bottom: 4px; }
        .config-item span { font-size: 1.1em; font-weight: 600; color: #fff; }

        /* 柱状图样式 */
        .chart-container {
            margin-top: 16px;
        }
        .chart-group {
            margin-bottom: 16px;
            padding-bottom: 16px;
            border-bottom: 1px solid rgba(255, 255, 255, 0.05);
        }
        .chart-group:last-child {
            border-bottom: none;
            margin-bottom: 0;
        }
        .chart-row {
            display: flex;
            align-items: center;
            margin-bottom: 6px;
        }
        .chart-label {
            width: 160px;
            flex-shrink: 0;
            display: flex;
            flex-direction: column;
            gap: 4px;
        }
        .chart-name {
            font-weight: 600;
            color: #fff;
            font-size: 0.95em;
        }
        .chart-detail-text {
            font-size: 0.75em;
            color: #666;
            font-family: 'SF Mono', 'Monaco', 'Consolas', monospace;
        }
        .chart-bar-container {
            flex: 1;
            display: flex;
            align-items: center;
            gap: 12px;
        }
        .chart-bar {
            height: 24px;
            border-radius: 4px;
            transition: width 0.6s ease-out;
            min-width: 4px;
        }
        .chart-value {
            font-family: 'SF Mono', 'Monaco', 'Consolas', monospace;
            font-size: 0.85em;
            font-weight: 600;
            color: #fff;
            white-space: nowrap;
        }
        .bar-fast { background: linear-gradient(90deg, #00d4ff, #0ea5e9); }
        .bar-enhanced { background: linear-gradient(90deg, #7b2fff, #a78bfa); }
        .bar-failed { background: linear-gradient(90deg, #ef4444, #f87171); }

        .chart-legend {
            display: flex;
            gap: 20px;
            justify-content: center;
            margin-top: 16px;
            padding-top: 16px;
            border-top: 1px solid rgba(255, 255, 255, 0.1);
        }
        .legend-item {
            display: flex;
            align-items: center;
            gap: 6px;
            font-size: 0.8em;
            color: #888;
        }
        .legend-color {
            width: 16px;
            height: 12px;
            border-radius: 2px;
        }

        /* 颜色等级 */
        .perf-good { color: #34d399; }
        .perf-fair { color: #fbbf24; }
        .perf-poor { color: #f87171; }

        /* 表格样式 */
        table {
            width: 100%;
            border-collapse: collapse;
            margin-top: 12px;
        }
        th, td {
            padding: 12px 8px;
            text-align: left;
            border-bottom: 1px solid rgba(255, 255, 255, 0.08);
        }
        th {
            background: rgba(0, 212, 255, 0.1);
            color: #00d4ff;
            font-weight: 600;
            font-size: 0.8em;
            text-transform: uppercase;
        }
        tr:hover { background: rgba(255, 255, 255, 0.02); }
        .success { color: #4ade80; }
        .warn { color: #fbbf24; }
        .error { color: #f87171; }
        .reused { color: #fbbf24; }
        .na { color: #666; }
        .total-row td { font-weight: 700; border-top: 2px solid rgba(0, 212, 255, 0.3); }

        .summary-table td { font-family: 'SF Mono', 'Monaco', 'Consolas', monospace; font-size: 0.9em; }

        .verdict-card p {
            font-size: 1.05em;
            line-height: 1.6;
            color: #fbbf24;
        }

        /* 可折叠详情 */
        .collapsible {
            background: rgba(0, 0, 0, 0.2);
            border-radius: 12px;
            margin-top: 16px;
            overflow: hidden;
        }
        .collapsible-header {
            display: flex;
            align-items: center;
            justify-content: space-between;
            padding: 16px 20px;
            cursor: pointer;
            transition: background 0.2s;
        }
        .collapsible-header:hover {
            background: rgba(255, 255, 255, 0.03);
        }
        .collapsible-header h3 {
            font-size: 1em;
            color: #7b2fff;
            display: flex;
            align-items: center;
            gap: 8px;
        }
        .collapsible-toggle {
            width: 24px;
            height: 24px;
            border-radius: 50%;
            background: rgba(123, 47, 255, 0.2);
            display: flex;
            align-items: center;
            justify-content: center;
            transition: transform 0.3s;
        }
        .collapsible-toggle::after {
            content: '▼';
            font-size: 0.7em;
            color: #7b2fff;
        }
        .collapsible.open .collapsible-toggle {
            transform: rotate(180deg);
        }
        .collapsible-content {
            max-height: 0;
            overflow: hidden;
            transition: max-height 0.3s ease-out;
        }
        .collapsible.open .collapsible-content {
            max-height: 5000px;
        }
        .collapsible-inner {
            padding: 0 20px 20px;
        }

        .footer {
            text-align: center;
            padding: 20px;
            color: #666;
            font-size: 0.9em;
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>🚀 Humanizer 性能基准测试报告</h1>
        <p class="subtitle">生成时间: {{formatTime .EndTime}} | 测试耗时: {{formatDuration .Duration}}</p>

        <div class="card">
            <h2>📋 测试配置</h2>
            <div class="config-grid">
                <div class="config-item">
                    <label>目标服务</label>
                    <span>{{.Config.BaseURL}}</span>
                </div>
                <div class="config-item">
                    <label>协议</label>
                    <span>{{.Config.Protocol}}</span>
                </div>
                <div class="config-item">
                    <label>请求超时上限</label>
                    <span>{{.Config.RequestTimeout}}</span>
                </div>
                <div class="config-item">
                    <label>样本数</label>
                    <span>{{len .Config.Samples}}</span>
                </div>
            </div>
        </div>

        <div class="card">
            <h2>⚡ 延迟对比</h2>
            <div class="chart-container">
                {{range $rec := .Records}}
                <div class="chart-group">
                    <div class="chart-row">
                        <div class="chart-label">
                            <span class="chart-name">{{$rec.Label}}</span>
                            <span class="chart-detail-text">{{$rec.Length}} 字符</span>
                        </div>
                        <div class="chart-bar-container">
                            <div class="chart-bar {{barClass $rec.Fast}}" style="{{barWidth $rec.Fast.Elapsed $.MaxElapsed}}"></div>
                            <span class="chart-value">FAST {{seconds $rec.Fast.Elapsed}}s</span>
                        </div>
                    </div>
                    <div class="chart-row">
                        <div class="chart-label"></div>
                        <div class="chart-bar-container">
                            <div class="chart-bar {{barClass $rec.Enhanced}}" style="{{barWidth $rec.Enhanced.Elapsed $.MaxElapsed}}"></div>
                            <span class="chart-value">ENHANCED {{seconds $rec.Enhanced.Elapsed}}s</span>
                        </div>
                    </div>
                </div>
                {{end}}
            </div>
            <div class="chart-legend">
                <span class="legend-item"><span class="legend-color bar-fast"></span>FAST (enhanced=false)</span>
                <span class="legend-item"><span class="legend-color bar-enhanced"></span>ENHANCED (enhanced=true)</span>
                <span class="legend-item"><span class="legend-color bar-failed"></span>调用失败</span>
            </div>
        </div>

        <div class="card">
            <h2>📊 基准测试汇总</h2>
            <table class="summary-table">
                <thead>
                    <tr>
                        <th>样本</th>
                        <th>长度(字符)</th>
                        <th>FAST (s)</th>
                        <th>ENHANCED (s)</th>
                        <th>速度比</th>
                    </tr>
                </thead>
                <tbody>
                    {{range .Summary.Rows}}
                    <tr>
                        <td>{{.Label}}</td>
                        <td>{{.Length}}</td>
                        <td>{{seconds .Fast}}</td>
                        <td>{{seconds .Enhanced}}</td>
                        <td class="{{speedupClass .Speedup}}">{{printf "%.1f" .Speedup}}x</td>
                    </tr>
                    {{end}}
                    <tr class="total-row">
                        <td>TOTAL</td>
                        <td></td>
                        <td>{{seconds .Summary.TotalFast}}</td>
                        <td>{{seconds .Summary.TotalEnhanced}}</td>
                        <td class="{{speedupClass .Summary.OverallSpeedup}}">{{printf "%.1f" .Summary.OverallSpeedup}}x</td>
                    </tr>
                </tbody>
            </table>
        </div>

        <div class="card verdict-card">
            <h2>💡 建议</h2>
            <p>{{.Summary.Verdict}}</p>
        </div>

        <div class="collapsible" onclick="this.classList.toggle('open')">
            <div class="collapsible-header">
                <h3>🔍 详细结果 ({{len .Records}} 个样本)</h3>
                <div class="collapsible-toggle"></div>
            </div>
            <div class="collapsible-content">
                <div class="collapsible-inner">
                    <table>
                        <thead>
                            <tr>
                                <th>样本</th>
                                <th>模式</th>
                                <th>结果</th>
                                <th>状态码</th>
                                <th>连接</th>
                                <th>TTFB (ms)</th>
                                <th>耗时 (s)</th>
                                <th>原文长度</th>
                                <th>处理后长度</th>
                                <th>错误</th>
                            </tr>
                        </thead>
                        <tbody>
                            {{range $rec := .Records}}
                            {{range $m := modes $rec}}
                            <tr>
                                <td>{{$rec.Label}}</td>
                                <td>{{modeLabel $m.Mode}}</td>
                                <td class="{{outcomeClass $m.Outcome}}">{{$m.Outcome}}</td>
                                <td>{{if gt $m.StatusCode 0}}{{$m.StatusCode}}{{else}}<span class="na">-</span>{{end}}</td>
                                <td>{{if $m.Reused}}<span class="reused">复用</span>{{else}}新建{{end}}</td>
                                <td>{{printf "%.2f" (ms $m.TTFB)}}</td>
                                <td>{{seconds $m.Elapsed}}</td>
                                <td>{{if gt (len $m.Stats) 0}}{{stat $m.Stats "original_length"}}{{else}}<span class="na">-</span>{{end}}</td>
                                <td>{{if gt (len $m.Stats) 0}}{{stat $m.Stats "final_length"}}{{else}}<span class="na">-</span>{{end}}</td>
                                <td>{{if $m.Err}}<span class="error">{{$m.Err}}</span>{{else}}-{{end}}</td>
                            </tr>
                            {{end}}
                            {{end}}
                        </tbody>
                    </table>
                </div>
            </div>
        </div>

        <div class="footer">
            <p>💡 速度比 = ENHANCED 耗时 ÷ FAST 耗时，大于 1 表示 FAST 模式更快</p>
            <p>由 Humanizer Benchmark 生成</p>
        </div>
    </div>
</body>
</html>`
