package notifier

import (
	"fmt"
	"strings"
	"time"

	"StockronAnalyzer/internal/model"
)

// FormatSellAlert formats a triggered sell signal into a Telegram message.
func FormatSellAlert(a *model.Analysis) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🔻 <b>Sell signal</b> | %s (%s)\n\n", a.Ticker, a.Style))
	b.WriteString(fmt.Sprintf("Price: %.2f\n", a.Price))
	if a.SellReason != nil {
		b.WriteString(fmt.Sprintf("Reason: %s\n", *a.SellReason))
	}
	if a.StopLoss != nil {
		b.WriteString(fmt.Sprintf("Suggested stop loss: %.2f\n", *a.StopLoss))
	}
	b.WriteString(fmt.Sprintf("Stance: %s | Risk: %s | Overall: %.2f\n", a.Stance, a.RiskLevel, a.OverallScore))
	return b.String()
}

// FormatWatchlistReport formats the refreshed watchlist into a digest message.
func FormatWatchlistReport(analyses []*model.Analysis) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📊 <b>Watchlist refresh</b> | %s\n\n", time.Now().Format("2006-01-02")))
	for _, a := range analyses {
		marker := ""
		if a.SellSignal.Triggered {
			marker = " 🔻"
		}
		b.WriteString(fmt.Sprintf("%s: %s (%.2f, risk %s)%s\n",
			a.Ticker, a.Stance, a.OverallScore, a.RiskLevel, marker))
	}
	return b.String()
}
