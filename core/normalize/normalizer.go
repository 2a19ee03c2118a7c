// Package normalize implements the Normalizer stage.
// The primary implementation asks an OpenAI chat model to organize a raw
// product block into a structured record. Normalization is best-effort:
// callers go through Resolve, which substitutes a deterministic local
// structuring whenever the model call fails, so the layout stage always
// receives a complete record.
package normalize

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/jakerains/configpdfprocessor/core"
	"github.com/jakerains/configpdfprocessor/logger"
)

// DefaultModel is used when no model override is configured.
const DefaultModel = openai.GPT4oMini

// callTimeout bounds one model call so a hung request cannot stall the batch.
const callTimeout = 60 * time.Second

// OpenAINormalizer structures product data through the chat completions API.
type OpenAINormalizer struct {
	client *openai.Client
	model  string
}

// NewOpenAI creates an OpenAINormalizer. An empty model selects DefaultModel.
func NewOpenAI(apiKey, model string) *OpenAINormalizer {
	if model == "" {
		model = DefaultModel
	}
	return &OpenAINormalizer{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Normalize sends the raw product to the model and parses the JSON reply.
func (n *OpenAINormalizer) Normalize(ctx context.Context, product core.RawProduct) (core.StructuredRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	resp, err := n.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       n.model,
		Temperature: 0.2,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(product)},
		},
	})
	if err != nil {
		return core.StructuredRecord{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return core.StructuredRecord{}, fmt.Errorf("chat completion returned no choices")
	}

	record, err := parseReply(resp.Choices[0].Message.Content)
	if err != nil {
		return core.StructuredRecord{}, err
	}
	if record.Title == "" {
		record.Title = product.Name
	}
	return record, nil
}

// Resolve runs the normalizer and falls back to the local structuring on
// any failure. The returned record is structurally indistinguishable from
// a successful normalization.
func Resolve(ctx context.Context, n core.Normalizer, product core.RawProduct) core.StructuredRecord {
	record, err := n.Normalize(ctx, product)
	if err != nil {
		logger.Error("normalization failed, using local fallback", "product", product.Name, "error", err)
		return Fallback(product)
	}
	return record
}

// Fallback builds a structured record directly from the raw pairs:
// categories become labels verbatim and there are no upgrade options.
func Fallback(product core.RawProduct) core.StructuredRecord {
	specs := make([]core.SpecEntry, 0, len(product.Specifications))
	for _, s := range product.Specifications {
		specs = append(specs, core.SpecEntry{Label: s.Category, Value: s.Value})
	}
	return core.StructuredRecord{
		Title:          product.Name,
		Price:          product.Price,
		MainSpecs:      specs,
		UpgradeOptions: []core.UpgradeOption{},
	}
}

// parseReply extracts the JSON object from the model reply. Models often
// wrap the object in prose or a code fence, so take first '{' to last '}'.
func parseReply(content string) (core.StructuredRecord, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end < start {
		return core.StructuredRecord{}, fmt.Errorf("no JSON object in model reply")
	}

	var record core.StructuredRecord
	if err := json.Unmarshal([]byte(content[start:end+1]), &record); err != nil {
		return core.StructuredRecord{}, fmt.Errorf("parsing model reply: %w", err)
	}
	return record, nil
}

func buildPrompt(product core.RawProduct) string {
	var specs strings.Builder
	for _, s := range product.Specifications {
		fmt.Fprintf(&specs, "%s: %s\n", s.Category, s.Value)
	}

	price := product.Price
	if price == "" {
		price = "N/A"
	}

	return fmt.Sprintf(`Analyze and organize this product configuration into a structured format.
Make sure to identify and categorize each specification correctly.

Product: %s
Price: $%s

Raw Specifications:
%s
Organize this into a clean, structured format with proper labels and values.
Return ONLY a JSON object with this structure:
{
    "title": "%s",
    "price": "%s",
    "main_specs": [
        {"label": "Processor", "value": "processor details"},
        {"label": "Memory", "value": "memory details"},
        {"label": "Storage", "value": "storage details"},
        {"label": "Display", "value": "display details"},
        {"label": "Graphics", "value": "graphics details"},
        {"label": "Power", "value": "power details"},
        {"label": "Wireless", "value": "wireless details"},
        {"label": "Operating System", "value": "OS details"},
        {"label": "Warranty", "value": "warranty details"}
    ],
    "upgrade_options": []
}

Include only the specifications that are present in the raw data.
Format the values to be clear and readable.`,
		product.Name, price, specs.String(), product.Name, product.Price)
}
