package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ogurasousui/codex-workforce-synth/internal/core/workforce"
)

// DefaultWidth は棒の最大長 (セル数) です。
const DefaultWidth = 40

const barRune = "█"

var styles = struct {
	Title lipgloss.Style
	Label lipgloss.Style
	Bar   lipgloss.Style
	Value lipgloss.Style
}{
	Title: lipgloss.NewStyle().Bold(true).MarginBottom(1),
	Label: lipgloss.NewStyle(),
	Bar:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	Value: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Bar はラベル付きの 1 本の棒です。
type Bar struct {
	Label string
	Value workforce.Money
}

// Bars は横棒グラフを描画します。最大値の棒が width セルになるよう比例配分します。
func Bars(title string, bars []Bar, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n")

	if len(bars) == 0 {
		b.WriteString(styles.Value.Render("(no data)"))
		b.WriteString("\n")
		return b.String()
	}

	labelWidth := 0
	var maxValue workforce.Money
	for _, bar := range bars {
		labelWidth = max(labelWidth, lipgloss.Width(bar.Label))
		maxValue = max(maxValue, bar.Value)
	}

	label := styles.Label.Width(labelWidth).Align(lipgloss.Right)
	for _, bar := range bars {
		line := lipgloss.JoinHorizontal(lipgloss.Top,
			label.Render(bar.Label),
			" ",
			styles.Bar.Render(strings.Repeat(barRune, barLength(bar.Value, maxValue, width))),
			" ",
			styles.Value.Render(bar.Value.String()),
		)
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func barLength(value, maxValue workforce.Money, width int) int {
	if maxValue <= 0 || value <= 0 {
		return 0
	}
	return int(math.Round(float64(value) / float64(maxValue) * float64(width)))
}

// AgeBracketBars は年齢階級ごとの平均給与を棒に変換します。
func AgeBracketBars(items []workforce.AgeBracketMean) []Bar {
	bars := make([]Bar, 0, len(items))
	for _, item := range items {
		bars = append(bars, Bar{Label: item.Bracket.String(), Value: item.Mean})
	}
	return bars
}

// GenderAgeBars は指定した性別の年齢階級別平均給与を棒に変換します。
func GenderAgeBars(items []workforce.GenderAgeMean, gender workforce.Gender) []Bar {
	var bars []Bar
	for _, item := range items {
		if item.Gender == gender {
			bars = append(bars, Bar{Label: item.Bracket.String(), Value: item.Mean})
		}
	}
	return bars
}

// GenderTenureBars は性別・勤続階級ごとの平均給与を棒に変換します。
func GenderTenureBars(items []workforce.GenderTenureMean) []Bar {
	bars := make([]Bar, 0, len(items))
	for _, item := range items {
		bars = append(bars, Bar{Label: fmt.Sprintf("%s %s", item.Gender, item.Tenure), Value: item.Mean})
	}
	return bars
}

// Report はレポートの平均給与を年齢階級、性別ごとの年齢階級、性別・勤続階級の順に描画します。
func Report(r *workforce.Report, width int) string {
	if r == nil {
		return ""
	}

	sections := []string{Bars("Mean salary by age bracket", AgeBracketBars(r.AgeBrackets), width)}
	for _, g := range workforce.Genders {
		bars := GenderAgeBars(r.GenderAge, g)
		if len(bars) == 0 {
			continue
		}
		sections = append(sections, Bars(fmt.Sprintf("Mean salary by age bracket (%s)", g), bars, width))
	}
	sections = append(sections, Bars("Mean salary by gender and tenure", GenderTenureBars(r.GenderTenure), width))

	return strings.Join(sections, "\n")
}
