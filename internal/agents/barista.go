// Package agents implements the barista chat agent: one conversation with a
// local model, four callable shop operations, and a per-conversation order
// session.
package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/tmc/langchaingo/llms"

	"chalis/internal/display"
	"chalis/internal/models"
	"chalis/internal/monitoring"
	"chalis/internal/pricing"
	"chalis/internal/shop"
)

// Barista drives one customer conversation. Turns are strictly sequential;
// a Barista must not be shared between goroutines.
type Barista struct {
	model       llms.Model
	shop        *shop.Shop
	session     *Session
	history     []llms.MessageContent
	temperature float64
	out         io.Writer
}

// NewBarista creates an agent for one conversation, writing its console
// output to out.
func NewBarista(model llms.Model, sh *shop.Shop, temperature float64, out io.Writer) *Barista {
	system := fmt.Sprintf("%s\n\n菜單資料：%s", systemPrompt, sh.Catalog.JSON())
	return &Barista{
		model:       model,
		shop:        sh,
		session:     NewSession(),
		history:     []llms.MessageContent{llms.TextParts(llms.ChatMessageTypeSystem, system)},
		temperature: temperature,
		out:         out,
	}
}

// Session exposes the in-flight order state, mainly for tests
func (b *Barista) Session() *Session {
	return b.session
}

// HandleTurn processes one user turn end to end: model call, tool dispatch,
// follow-up reply, and the free-text extraction fallback. A failed turn
// leaves the conversation usable; the caller reports the error and keeps
// going.
func (b *Barista) HandleTurn(ctx context.Context, input string) error {
	monitoring.ChatTurns.Inc()
	b.history = append(b.history, llms.TextParts(llms.ChatMessageTypeHuman, input))

	choice, err := b.generate(ctx, llms.WithTools(Tools()))
	if err != nil {
		return fmt.Errorf("model request failed: %w", err)
	}

	if choice.Content != "" {
		fmt.Fprintf(b.out, "\n🤖 %s\n\n", choice.Content)
	}

	if len(choice.ToolCalls) > 0 {
		for _, tc := range choice.ToolCalls {
			content := b.dispatch(tc)
			b.history = append(b.history, llms.MessageContent{
				Role: llms.ChatMessageTypeTool,
				Parts: []llms.ContentPart{llms.ToolCallResponse{
					ToolCallID: tc.ID,
					Name:       tc.FunctionCall.Name,
					Content:    content,
				}},
			})
		}

		follow, err := b.generate(ctx)
		if err != nil {
			return fmt.Errorf("model follow-up failed: %w", err)
		}
		if follow.Content != "" {
			fmt.Fprintf(b.out, "🤖 %s\n\n", follow.Content)
		}
	} else if ext := ParseExtraction(choice.Content); ext != nil {
		b.handleExtraction(ext)
	}

	if b.session.Completed() {
		fmt.Fprintln(b.out, "\n🎉 訂單處理完成！感謝您的購買！")
		b.session.Reset()
	}
	return nil
}

// generate performs one model call and appends the reply (text and tool
// calls) to the history.
func (b *Barista) generate(ctx context.Context, extra ...llms.CallOption) (*llms.ContentChoice, error) {
	opts := append([]llms.CallOption{llms.WithTemperature(b.temperature)}, extra...)

	start := time.Now()
	resp, err := b.model.GenerateContent(ctx, b.history, opts...)
	monitoring.LLMLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("model returned no choices")
	}
	choice := resp.Choices[0]

	reply := llms.MessageContent{Role: llms.ChatMessageTypeAI}
	if choice.Content != "" {
		reply.Parts = append(reply.Parts, llms.TextContent{Text: choice.Content})
	}
	for _, tc := range choice.ToolCalls {
		reply.Parts = append(reply.Parts, tc)
	}
	b.history = append(b.history, reply)

	return choice, nil
}

// dispatch runs one tool call against the shop and returns the JSON payload
// handed back to the model. Tool failures come back as success:false rather
// than aborting the turn.
func (b *Barista) dispatch(tc llms.ToolCall) string {
	name := tc.FunctionCall.Name
	result, err := b.runTool(name, tc.FunctionCall.Arguments)
	if err != nil {
		monitoring.ToolCalls.WithLabelValues(name, "error").Inc()
		fmt.Fprintf(b.out, "❌ %v\n", err)
		return marshalToolResult(map[string]any{"success": false, "error": err.Error()})
	}
	monitoring.ToolCalls.WithLabelValues(name, "ok").Inc()
	return marshalToolResult(result)
}

func (b *Barista) runTool(name, rawArgs string) (any, error) {
	switch name {
	case "calculate_total":
		var args calculateTotalArgs
		if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
			return nil, fmt.Errorf("bad calculate_total arguments: %w", err)
		}
		total := pricing.Total(pricing.Quote{Item: args.Item, Size: args.Size, Quantity: args.Quantity}, b.shop.Catalog)
		message := fmt.Sprintf("訂單總金額：%g 元", total)
		fmt.Fprintf(b.out, "\n💰 %s\n", message)
		return map[string]any{"success": true, "totalAmount": total, "message": message}, nil

	case "process_order":
		var args processOrderArgs
		if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
			return nil, fmt.Errorf("bad process_order arguments: %w", err)
		}
		o, err := b.shop.Orders.Build(args.Item, args.Size, args.Quantity, args.Ice, args.Sugar, args.AddOn)
		if err != nil {
			return nil, err
		}
		monitoring.OrdersCreated.Inc()
		b.session.Order = o
		fmt.Fprint(b.out, display.Order(o))
		return map[string]any{"success": true, "order": o, "message": "訂單已成功建立"}, nil

	case "process_payment":
		var args processPaymentArgs
		if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
			return nil, fmt.Errorf("bad process_payment arguments: %w", err)
		}
		if b.session.Order == nil {
			return nil, models.ErrMissingOrderContext
		}
		res, err := b.shop.Payments.Process(b.session.Order, args.PaymentMethod, args.Amount)
		if err != nil {
			return nil, err
		}
		monitoring.PaymentsProcessed.Inc()
		b.session.Payment = res.Record
		fmt.Fprint(b.out, display.Payment(res.Record))
		return res, nil

	case "transfer_to_production":
		// The model supplies ids, but the transfer works off the session:
		// the order and payment of this conversation.
		res, err := b.shop.Production.Transfer(b.session.Order, b.session.Payment)
		if err != nil {
			return nil, err
		}
		monitoring.ProductionTransfers.Inc()
		b.session.Production = res.Order
		fmt.Fprint(b.out, display.Production(res.Order))
		return res, nil
	}
	return nil, fmt.Errorf("unknown tool: %s", name)
}

// handleExtraction covers the fallback path where the model embeds an order
// payload in prose instead of calling a tool.
func (b *Barista) handleExtraction(ext *Extraction) {
	switch ext.Type {
	case ExtractionIncomplete:
		fmt.Fprint(b.out, display.Incomplete(ext.Missing, ext.Message))
	case ExtractionComplete:
		f := ext.Order
		o, err := b.shop.Orders.Build(f.Item, f.Size, f.Quantity, f.Ice, f.Sugar, f.AddOn)
		if err != nil {
			fmt.Fprintf(b.out, "❌ %v\n", err)
			return
		}
		monitoring.OrdersCreated.Inc()
		b.session.Order = o
		fmt.Fprint(b.out, display.Order(o))
		total := pricing.TotalForOrder(o, b.shop.Catalog)
		fmt.Fprintf(b.out, "💰 訂單總金額：%g 元\n", total)
	}
}

func marshalToolResult(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return `{"success":false,"error":"unencodable tool result"}`
	}
	return string(data)
}
