package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"

	"chalis/internal/agents"
	"chalis/internal/config"
	"chalis/internal/monitoring"
	"chalis/internal/playground"
	"chalis/internal/shop"
)

var (
	configFile     = flag.String("config", config.DefaultPath, "Path to configuration file")
	playgroundFlag = flag.Bool("playground", false, "Serve the web chat playground")
	metricsFlag    = flag.Bool("metrics", false, "Serve the prometheus metrics endpoint")
)

func main() {
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	model, err := initializeLLM(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize LLM: %v", err)
	}

	sh, err := shop.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize shop: %v", err)
	}

	if *metricsFlag || cfg.Metrics.Enabled {
		go startMetricsServer(cfg.Metrics.Port, cfg.Metrics.Path)
	}
	if *playgroundFlag || cfg.Playground.Enabled {
		go startPlayground(model, sh, cfg)
	}

	runREPL(ctx, model, sh, cfg)
}

func initializeLLM(cfg *config.Config) (llms.Model, error) {
	model, err := ollama.New(
		ollama.WithModel(cfg.Ollama.Model),
		ollama.WithServerURL(cfg.Ollama.Host),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize ollama client: %w", err)
	}
	return model, nil
}

// runREPL is the interactive ordering loop. One turn is fully processed
// before the next line is read.
func runREPL(ctx context.Context, model llms.Model, sh *shop.Shop, cfg *config.Config) {
	barista := agents.NewBarista(model, sh, cfg.Ollama.Temperature, os.Stdout)

	fmt.Println("🍹 歡迎使用飲料點餐 AI 助理！")
	fmt.Println("輸入 \"exit\" 或 \"quit\" 結束對話")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("👤 您：")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if low := strings.ToLower(input); low == "exit" || low == "quit" {
			fmt.Println("\n👋 感謝使用，再見！")
			return
		}

		// One bad turn never ends the session.
		if err := barista.HandleTurn(ctx, input); err != nil {
			fmt.Printf("❌ 發生錯誤：%v\n", err)
		}
	}

	if err := scanner.Err(); err != nil {
		log.Fatalf("stdin error: %v", err)
	}
}

func startPlayground(model llms.Model, sh *shop.Shop, cfg *config.Config) {
	server := playground.NewServer(model, sh, cfg.Ollama.Temperature)
	log.Printf("Starting playground on port %d", cfg.Playground.Port)
	if err := server.Run(fmt.Sprintf(":%d", cfg.Playground.Port)); err != nil {
		log.Printf("Playground server error: %v", err)
	}
}

func startMetricsServer(port int, path string) {
	metricsRouter := gin.Default()
	metricsRouter.GET(path, gin.WrapH(monitoring.Handler()))

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: metricsRouter,
	}

	log.Printf("Starting metrics server on port %d", port)
	if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Printf("Metrics server error: %v", err)
	}
}
