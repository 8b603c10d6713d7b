package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// extractInstruction asks for exactly the JSON shape finguide.ParseStatement
// understands.
const extractInstruction = `You are given the raw text of a bank statement.
Extract the user's monthly financial picture as JSON with these fields:
monthly_income (number), monthly_emi (number, 0 if no loan debits),
expense_categories (list of {name, amount} grouping the debits into everyday
categories like Groceries, Dining Out, Bills & Utilities, Transportation),
investments (list of {name, amount} for SIPs, mutual funds, FDs, stocks).
Amounts are monthly totals in rupees, without currency symbols.

Statement text:

`

// statementSchema constrains the model's reply to the import JSON shape.
var statementSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"monthly_income": {Type: genai.TypeNumber},
		"monthly_emi":    {Type: genai.TypeNumber},
		"expense_categories": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":   {Type: genai.TypeString},
					"amount": {Type: genai.TypeNumber},
				},
				Required: []string{"name", "amount"},
			},
		},
		"investments": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":   {Type: genai.TypeString},
					"amount": {Type: genai.TypeNumber},
				},
				Required: []string{"name", "amount"},
			},
		},
	},
	Required: []string{"monthly_income", "expense_categories"},
}

// ExtractStatement turns raw bank statement text into the structured import
// JSON, using a one-shot model call with a constrained response schema. The
// returned bytes feed finguide.ParseStatement.
func ExtractStatement(ctx context.Context, client *genai.Client, text string) ([]byte, error) {
	resp, err := client.Models.GenerateContent(ctx, model,
		genai.Text(extractInstruction+text),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   statementSchema,
		})
	if err != nil {
		return nil, fmt.Errorf("statement extraction failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("statement extraction returned no content")
	}
	return []byte(resp.Candidates[0].Content.Parts[0].Text), nil
}
