// Package ai generates a narrative business summary with Gemini. The
// capability is optional: a missing key or a failed call degrades to a
// fixed placeholder string and never surfaces an error to the caller.
package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"eyetrends-pos/internal/models"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

const (
	// FallbackUnavailable is returned when no API key is configured or
	// insights are disabled.
	FallbackUnavailable = "AI Insights are currently unavailable. Please check system configuration."
	fallbackNoInsights  = "No actionable insights found based on current data."
	fallbackError       = "Could not generate insights at this moment. Please check your connectivity."
)

const insightsModel = "gemini-2.0-flash-001"

const recentSaleWindow = 10

// BusinessInsights summarizes the inventory and recent sales into a few
// actionable suggestions for the owner.
func BusinessInsights(ctx context.Context, apiKey string, products []models.Product, sales []models.Sale) string {
	if apiKey == "" {
		log.Warn().Msg("Gemini API key is missing, insights disabled")
		return FallbackUnavailable
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		log.Error().Err(err).Msg("gemini client init failed")
		return fallbackError
	}
	defer client.Close()

	model := client.GenerativeModel(insightsModel)

	resp, err := model.GenerateContent(ctx, genai.Text(buildPrompt(products, sales)))
	if err != nil {
		log.Error().Err(err).Msg("gemini insights call failed")
		return fallbackError
	}

	if text := extractText(resp); text != "" {
		return text
	}
	return fallbackNoInsights
}

// buildPrompt compacts the data so the prompt stays small: inventory is
// reduced to brand/model/stock/price, sales to the last ten transactions.
func buildPrompt(products []models.Product, sales []models.Sale) string {
	type stockLine struct {
		Brand string  `json:"brand"`
		Model string  `json:"model"`
		Stock int     `json:"stock"`
		Price float64 `json:"price"`
	}
	type saleLine struct {
		Product string  `json:"product"`
		Qty     int     `json:"qty"`
		Total   float64 `json:"total"`
	}

	stock := make([]stockLine, 0, len(products))
	for _, p := range products {
		stock = append(stock, stockLine{Brand: p.Brand, Model: p.Model, Stock: p.StockQuantity, Price: p.SellingPrice})
	}

	recent := sales
	if len(recent) > recentSaleWindow {
		recent = recent[:recentSaleWindow]
	}
	lines := make([]saleLine, 0, len(recent))
	for _, s := range recent {
		lines = append(lines, saleLine{Product: s.ProductName, Qty: s.Quantity, Total: s.TotalAmount})
	}

	stockJSON, _ := json.Marshal(stock)
	salesJSON, _ := json.Marshal(lines)

	return fmt.Sprintf(`Analyze this spectacles business data and provide 3-4 concise, actionable business insights.

Inventory: %s
Recent Sales: %s

Format the output as a friendly summary for an owner. Focus on stock optimization, popular items, or pricing suggestions.`,
		stockJSON, salesJSON)
}

func extractText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			return string(txt)
		}
	}
	return ""
}
