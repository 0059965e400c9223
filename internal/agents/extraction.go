package agents

import (
	"encoding/json"
	"regexp"

	"chalis/internal/models"
)

// Extraction is the structured order payload pulled out of a free-form model
// reply, used when the model answers in prose instead of calling a tool.
type Extraction struct {
	Type    string       `json:"type"`
	Order   *OrderFields `json:"order,omitempty"`
	Missing []string     `json:"missing,omitempty"`
	Message string       `json:"message,omitempty"`
}

// OrderFields are the candidate order fields inside an extraction
type OrderFields struct {
	Item     string            `json:"item"`
	Size     models.Size       `json:"size"`
	Quantity int               `json:"quantity"`
	Ice      models.IceLevel   `json:"ice"`
	Sugar    models.SugarLevel `json:"sugar"`
	AddOn    *models.AddOn     `json:"addOn"`
}

// Extraction types.
const (
	ExtractionComplete   = "complete"
	ExtractionIncomplete = "incomplete"
)

// jsonBlob grabs the first top-level brace pair, greedily. Crude, and known
// to be: a reply with two JSON objects takes everything between the first {
// and the last }.
var jsonBlob = regexp.MustCompile(`(?s)\{.*\}`)

// ParseExtraction pulls an order payload out of a model reply. It returns
// nil when the reply carries no JSON object, the object does not parse, or
// the type is not one of complete/incomplete — nil means "no order payload
// in this turn", never an error.
func ParseExtraction(content string) *Extraction {
	blob := jsonBlob.FindString(content)
	if blob == "" {
		return nil
	}

	var ext Extraction
	if err := json.Unmarshal([]byte(blob), &ext); err != nil {
		return nil
	}

	switch ext.Type {
	case ExtractionComplete:
		if ext.Order == nil {
			return nil
		}
	case ExtractionIncomplete:
	default:
		return nil
	}
	return &ext
}
