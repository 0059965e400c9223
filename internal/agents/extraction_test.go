package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chalis/internal/models"
)

func TestParseExtractionNoJSON(t *testing.T) {
	assert.Nil(t, ParseExtraction("好的，請問您要什麼飲料？"))
	assert.Nil(t, ParseExtraction(""))
}

func TestParseExtractionBadJSON(t *testing.T) {
	assert.Nil(t, ParseExtraction("{item: 珍珠奶茶"))
	assert.Nil(t, ParseExtraction(`{"type": "complete", "order": `))
}

func TestParseExtractionUnknownType(t *testing.T) {
	assert.Nil(t, ParseExtraction(`{"type": "greeting"}`))
	assert.Nil(t, ParseExtraction(`{"order": {"item": "珍珠奶茶"}}`))
}

func TestParseExtractionCompleteWithoutOrder(t *testing.T) {
	assert.Nil(t, ParseExtraction(`{"type": "complete"}`))
}

func TestParseExtractionComplete(t *testing.T) {
	content := `好的，這是您的訂單：
{"type": "complete", "order": {"item": "珍珠奶茶", "size": "L", "quantity": 2, "ice": "正常冰", "sugar": "半糖", "addOn": "珍珠"}}
馬上為您處理！`

	ext := ParseExtraction(content)
	require.NotNil(t, ext)
	assert.Equal(t, ExtractionComplete, ext.Type)
	require.NotNil(t, ext.Order)
	assert.Equal(t, "珍珠奶茶", ext.Order.Item)
	assert.Equal(t, models.SizeLarge, ext.Order.Size)
	assert.Equal(t, 2, ext.Order.Quantity)
	assert.Equal(t, models.IceRegular, ext.Order.Ice)
	assert.Equal(t, models.SugarHalf, ext.Order.Sugar)
	require.NotNil(t, ext.Order.AddOn)
	assert.Equal(t, models.AddOnPearl, *ext.Order.AddOn)
}

func TestParseExtractionIncomplete(t *testing.T) {
	ext := ParseExtraction(`{"type": "incomplete", "missing": ["size", "ice"], "message": "請問要什麼大小？"}`)
	require.NotNil(t, ext)
	assert.Equal(t, ExtractionIncomplete, ext.Type)
	assert.Equal(t, []string{"size", "ice"}, ext.Missing)
	assert.Equal(t, "請問要什麼大小？", ext.Message)
	assert.Nil(t, ext.Order)
}
