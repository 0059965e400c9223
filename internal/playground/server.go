// Package playground serves a local web surface for the shop: a chat page
// over websocket plus read-only JSON views of the menu, the production
// queue, and the metrics endpoint. It is a single-operator dev surface, not
// a public API.
package playground

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tmc/langchaingo/llms"

	"chalis/internal/monitoring"
	"chalis/internal/shop"
)

// Server handles playground requests
type Server struct {
	router      *gin.Engine
	shop        *shop.Shop
	model       llms.Model
	temperature float64
}

// NewServer creates a playground server around the shop and model
func NewServer(model llms.Model, sh *shop.Shop, temperature float64) *Server {
	s := &Server{
		router:      gin.Default(),
		shop:        sh,
		model:       model,
		temperature: temperature,
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures the routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleHome)
	s.router.GET("/ws", s.handleWebSocket)
	s.router.GET("/metrics", gin.WrapH(monitoring.Handler()))

	api := s.router.Group("/api")
	{
		api.GET("/menu", s.handleMenu)
		api.GET("/production", s.handleProduction)
		api.GET("/stats", s.handleStats)
	}
}

// Router returns the gin router
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run serves until the listener fails
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

func (s *Server) handleHome(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(chatPage))
}

func (s *Server) handleMenu(c *gin.Context) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(s.shop.Catalog.JSON()))
}

func (s *Server) handleProduction(c *gin.Context) {
	c.JSON(http.StatusOK, s.shop.Production.List())
}

func (s *Server) handleStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.shop.Production.QueueStats())
}

// chatPage is the single-file chat client. Kept inline so the binary has no
// asset directory to ship.
const chatPage = `<!DOCTYPE html>
<html lang="zh-Hant">
<head>
<meta charset="utf-8">
<title>茶理仕點餐助理</title>
<style>
body { font-family: sans-serif; max-width: 720px; margin: 2em auto; }
#log { white-space: pre-wrap; border: 1px solid #ccc; padding: 1em; height: 420px; overflow-y: scroll; }
#msg { width: 80%; }
</style>
</head>
<body>
<h1>🍹 茶理仕點餐助理</h1>
<div id="log"></div>
<form id="f"><input id="msg" autocomplete="off" placeholder="我要一杯珍珠奶茶…"><button>送出</button></form>
<script>
const log = document.getElementById("log");
const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
ws.onmessage = (ev) => {
  const data = JSON.parse(ev.data);
  log.textContent += data.error ? ("❌ " + data.error + "\n") : data.reply;
  log.scrollTop = log.scrollHeight;
};
document.getElementById("f").onsubmit = (ev) => {
  ev.preventDefault();
  const input = document.getElementById("msg");
  if (!input.value) return;
  log.textContent += "👤 " + input.value + "\n";
  ws.send(JSON.stringify({message: input.value}));
  input.value = "";
};
</script>
</body>
</html>`
