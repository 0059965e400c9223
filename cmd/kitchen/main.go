package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"chalis/internal/config"
	"chalis/internal/display"
	"chalis/internal/models"
	"chalis/internal/production"
	"chalis/internal/store"
)

var configFile = flag.String("config", config.DefaultPath, "Path to configuration file")

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	queue := store.NewCollection[models.ProductionOrder](cfg.ProductionPath())
	desk := &desk{
		scheduler: production.NewScheduler(queue),
		in:        bufio.NewScanner(os.Stdin),
	}

	fmt.Println("🏭 歡迎使用製作部門管理系統！")
	for desk.mainMenu() {
	}
}

type desk struct {
	scheduler *production.Scheduler
	in        *bufio.Scanner
}

func (d *desk) prompt(question string) string {
	fmt.Print(question)
	if !d.in.Scan() {
		return ""
	}
	return strings.TrimSpace(d.in.Text())
}

// mainMenu shows the menu and runs one choice; false means exit
func (d *desk) mainMenu() bool {
	fmt.Println("\n🏭 製作部門管理系統")
	fmt.Println(strings.Repeat("=", 30))
	fmt.Println("1. 查看所有訂單")
	fmt.Println("2. 查看訂單詳細資訊")
	fmt.Println("3. 更新訂單狀態")
	fmt.Println("4. 統計資訊")
	fmt.Println("5. 退出")

	switch d.prompt("\n請選擇功能 (1-5)：") {
	case "1":
		d.listOrders()
	case "2":
		d.showOrder(d.prompt("請輸入訂單編號："))
	case "3":
		d.updateStatus()
	case "4":
		d.showStats()
	case "5":
		fmt.Println("👋 再見！")
		return false
	default:
		fmt.Println("❌ 無效的選擇")
	}
	return true
}

func (d *desk) listOrders() {
	orders := d.scheduler.List()
	if len(orders) == 0 {
		fmt.Println("📭 目前沒有製作訂單")
		return
	}

	fmt.Printf("\n🏭 製作訂單總覽 (共 %d 筆)\n", len(orders))
	fmt.Println(strings.Repeat("=", 50))
	for i, o := range orders {
		fmt.Printf("\n%d. 訂單編號：%s\n", i+1, o.OrderID)
		fmt.Printf("   狀態：%s\n", o.Status)
		fmt.Printf("   品項：%s x%d\n", o.Items.Item, o.Items.Quantity)
		fmt.Printf("   預估時間：%d 分鐘\n", o.EstimatedMinutes)
		fmt.Printf("   建立時間：%s\n", o.CreatedAt.Local().Format("2006/01/02 15:04:05"))
	}
}

func (d *desk) showOrder(orderID string) {
	o, ok := d.scheduler.Get(orderID)
	if !ok {
		fmt.Println("❌ 找不到指定的訂單")
		return
	}
	fmt.Print(display.Production(o))
}

func (d *desk) updateStatus() {
	orders := d.scheduler.List()
	if len(orders) == 0 {
		fmt.Println("📭 目前沒有製作訂單")
		return
	}

	var pending []models.ProductionOrder
	for _, o := range orders {
		if o.Status == models.ProductionPending {
			pending = append(pending, o)
		}
	}
	if len(pending) == 0 {
		fmt.Println("✅ 所有訂單都已處理完成")
		return
	}

	fmt.Println("\n⏳ 待處理訂單：")
	for i, o := range pending {
		fmt.Printf("%d. %s x%d (%s)\n", i+1, o.Items.Item, o.Items.Quantity, o.OrderID)
	}

	choice, err := strconv.Atoi(d.prompt("\n請選擇要更新的訂單編號："))
	if err != nil || choice < 1 || choice > len(pending) {
		fmt.Println("❌ 無效的選擇")
		return
	}
	selected := pending[choice-1]

	fmt.Println("\n🔄 請選擇新狀態：")
	fmt.Println("1. 製作中 (in_progress)")
	fmt.Println("2. 已完成 (completed)")
	fmt.Println("3. 已取消 (cancelled)")

	statusMap := map[string]models.ProductionStatus{
		"1": models.ProductionInProgress,
		"2": models.ProductionCompleted,
		"3": models.ProductionCancelled,
	}
	status, ok := statusMap[d.prompt("請輸入狀態編號 (1-3)：")]
	if !ok {
		fmt.Println("❌ 無效的狀態選擇")
		return
	}

	if err := d.scheduler.UpdateStatus(selected.OrderID, status); err != nil {
		fmt.Printf("❌ 更新狀態失敗：%v\n", err)
		return
	}
	fmt.Printf("✅ 訂單 %s 狀態已更新為 %s\n", selected.OrderID, status)
}

func (d *desk) showStats() {
	stats := d.scheduler.QueueStats()
	if stats.Total == 0 {
		fmt.Println("📊 目前沒有製作訂單")
		return
	}

	fmt.Println("\n📊 製作部門統計")
	fmt.Println(strings.Repeat("=", 30))
	fmt.Printf("總訂單數：%d\n", stats.Total)
	fmt.Printf("待處理：%d\n", stats.Pending)
	fmt.Printf("製作中：%d\n", stats.InProgress)
	fmt.Printf("已完成：%d\n", stats.Completed)
	fmt.Printf("已取消：%d\n", stats.Cancelled)
	fmt.Printf("完成率：%.1f%%\n", stats.CompletionRate)
}
