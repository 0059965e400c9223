package agents

import (
	"github.com/tmc/langchaingo/llms"

	"chalis/internal/models"
)

// Tool argument shapes, mirroring the function schemas the model sees.
type calculateTotalArgs struct {
	Item     string      `json:"item"`
	Size     models.Size `json:"size"`
	Quantity int         `json:"quantity"`
}

type processOrderArgs struct {
	Item     string            `json:"item"`
	Size     models.Size       `json:"size"`
	Quantity int               `json:"quantity"`
	Ice      models.IceLevel   `json:"ice"`
	Sugar    models.SugarLevel `json:"sugar"`
	AddOn    *models.AddOn     `json:"addOn"`
}

type processPaymentArgs struct {
	OrderID       string               `json:"orderId"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod"`
	Amount        float64              `json:"amount"`
}

type transferToProductionArgs struct {
	OrderID         string `json:"orderId"`
	PaymentRecordID string `json:"paymentRecordId"`
}

func enumStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// Tools returns the four callable operations exposed to the model. The
// argument schemas map one to one onto the life-cycle services.
func Tools() []llms.Tool {
	return []llms.Tool{
		{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        "calculate_total",
				Description: "計算訂單總金額",
				Parameters: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"item": map[string]any{
							"type":        "string",
							"description": "飲料品項名稱",
						},
						"size": map[string]any{
							"type":        "string",
							"enum":        enumStrings(models.Sizes()),
							"description": "飲料大小",
						},
						"quantity": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"description": "數量",
						},
					},
					"required": []string{"item", "size", "quantity"},
				},
			},
		},
		{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        "process_order",
				Description: "處理完整的訂單資訊，建立訂單記錄",
				Parameters: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"item": map[string]any{
							"type":        "string",
							"description": "飲料品項名稱",
						},
						"size": map[string]any{
							"type":        "string",
							"enum":        enumStrings(models.Sizes()),
							"description": "飲料大小",
						},
						"quantity": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"description": "數量",
						},
						"ice": map[string]any{
							"type":        "string",
							"enum":        enumStrings(models.IceLevels()),
							"description": "冰塊選擇",
						},
						"sugar": map[string]any{
							"type":        "string",
							"enum":        enumStrings(models.SugarLevels()),
							"description": "甜度選擇",
						},
						"addOn": map[string]any{
							"type":        "string",
							"enum":        enumStrings(models.AddOns()),
							"description": "添加品（可選）",
							"nullable":    true,
						},
					},
					"required": []string{"item", "size", "quantity", "ice", "sugar"},
				},
			},
		},
		{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        "process_payment",
				Description: "處理訂單支付",
				Parameters: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"orderId": map[string]any{
							"type":        "string",
							"description": "訂單ID（時間戳）",
						},
						"paymentMethod": map[string]any{
							"type":        "string",
							"enum":        enumStrings(models.PaymentMethods()),
							"description": "支付方式",
						},
						"amount": map[string]any{
							"type":        "number",
							"description": "支付金額",
						},
					},
					"required": []string{"orderId", "paymentMethod", "amount"},
				},
			},
		},
		{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        "transfer_to_production",
				Description: "將已支付的訂單轉給製作部門",
				Parameters: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"orderId": map[string]any{
							"type":        "string",
							"description": "訂單ID",
						},
						"paymentRecordId": map[string]any{
							"type":        "string",
							"description": "支付記錄ID",
						},
					},
					"required": []string{"orderId", "paymentRecordId"},
				},
			},
		},
	}
}
