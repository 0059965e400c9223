// Package display renders records as console text blocks.
package display

import (
	"fmt"
	"strings"
	"time"

	"chalis/internal/models"
)

const timeLayout = "2006/01/02 15:04:05"

func addOnOrNone(a *models.AddOn) string {
	if a == nil {
		return "無"
	}
	return string(*a)
}

func localTime(t time.Time) string {
	return t.Local().Format(timeLayout)
}

// Order renders a recorded order
func Order(o *models.Order) string {
	lines := []string{
		"📝 訂單已記錄！",
		fmt.Sprintf("  品項：%s", o.Item),
		fmt.Sprintf("  大小：%s", o.Size),
		fmt.Sprintf("  數量：%d", o.Quantity),
		fmt.Sprintf("  冰塊：%s", o.Ice),
		fmt.Sprintf("  甜度：%s", o.Sugar),
		fmt.Sprintf("  添加：%s", addOnOrNone(o.AddOn)),
		fmt.Sprintf("  時間：%s", localTime(o.CreatedAt)),
		"",
	}
	return strings.Join(lines, "\n")
}

// Payment renders a payment record
func Payment(pr *models.PaymentRecord) string {
	status := "❌ 失敗"
	if pr.Status == models.PaymentCompleted {
		status = "✅ 成功"
	}
	lines := []string{
		"💳 支付資訊",
		fmt.Sprintf("  訂單編號：%s", pr.OrderID),
		fmt.Sprintf("  支付方式：%s", pr.Method),
		fmt.Sprintf("  支付金額：%g 元", pr.Amount),
		fmt.Sprintf("  支付狀態：%s", status),
		fmt.Sprintf("  支付時間：%s", localTime(pr.CreatedAt)),
		"",
	}
	return strings.Join(lines, "\n")
}

// StatusEmoji returns the marker shown beside a production status
func StatusEmoji(s models.ProductionStatus) string {
	switch s {
	case models.ProductionPending:
		return "⏳"
	case models.ProductionInProgress:
		return "🔥"
	case models.ProductionCompleted:
		return "✅"
	case models.ProductionCancelled:
		return "❌"
	}
	return "❓"
}

// Production renders a production order
func Production(po *models.ProductionOrder) string {
	notes := po.Notes
	if notes == "" {
		notes = "無"
	}
	lines := []string{
		"🏭 製作訂單",
		fmt.Sprintf("  訂單編號：%s", po.OrderID),
		fmt.Sprintf("  製作狀態：%s %s", StatusEmoji(po.Status), po.Status),
		fmt.Sprintf("  預估時間：%d 分鐘", po.EstimatedMinutes),
		fmt.Sprintf("  品項：%s", po.Items.Item),
		fmt.Sprintf("  規格：%s | %d 杯", po.Items.Size, po.Items.Quantity),
		fmt.Sprintf("  調整：%s | %s", po.Items.Ice, po.Items.Sugar),
		fmt.Sprintf("  添加：%s", addOnOrNone(po.Items.AddOn)),
		fmt.Sprintf("  支付：%s | %g 元", po.Payment.Method, po.Payment.Amount),
		fmt.Sprintf("  備註：%s", notes),
		fmt.Sprintf("  建立時間：%s", localTime(po.CreatedAt)),
		"",
	}
	return strings.Join(lines, "\n")
}

// Incomplete renders the follow-up question for a partial order. Missing is
// the field list the model reported; message, when present, wins.
func Incomplete(missing []string, message string) string {
	if message != "" {
		return fmt.Sprintf("❓ %s\n", message)
	}
	lines := []string{"❓ 訂單資訊不完整，請提供以下資訊："}
	for _, field := range missing {
		lines = append(lines, fmt.Sprintf("  - %s", field))
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}
