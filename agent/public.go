package agent

import (
	"context"

	"github.com/spendx/finguide"
	"github.com/spendx/finguide/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert skills you can reach through the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here for decisions about his own money: affordability, SIPs, spending,
			loans. Always check with the Advisor first, he knows the user's actual financial data.

			Devise a plan of questions to each expert and come up with the best response to the
			user's request, in the Advisor's Decision/Reason/Risk/Recommendation format.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAdvisor returns the expert grounded in the user's financial profile.
// Its system instruction carries the full financial context, and its library
// lets it re-read the profile and the fund recommendations mid-conversation.
func NewAdvisor(p *finguide.FinancialProfile) *Expert {
	lib := []Function{snapshotFunc(p), recommendationsFunc(p)}

	return &Expert{
		Name: "Advisor",
		Description: `This is the user's personal finance Advisor. He knows the user's actual
		income, expenses, EMI, investments and risk profile, and the fund recommendations
		computed from them. Ask the Advisor any question about the user's own money.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: finguide.BuildContext(p)}}},
		},
		Library: NewLibrary(lib),
	}
}

// NewAnalyst returns the market expert, grounded with Google Search.
func NewAnalyst() *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is an expert market analyst, well aware of financial products and
		institutions and of the latest news about funds and companies. Ask the Analyst
		whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert market analyst. You can search and find anything related to
			financial institutions, companies, markets and funds. Leverage Google Search to
			ground your assertions, and relate the latest news to the user's request.
			`}}},
		},
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// snapshotFunc exposes the current financial context. The profile may have
// been mutated since the chat started, so the function re-renders it.
func snapshotFunc(p *finguide.FinancialProfile) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "FinancialSnapshot",
			Description: `FinancialSnapshot returns the user's current financial data: monthly
			income with sources, expenses by category, EMI, savings, total investments and
			the investor profile.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A plain-text financial snapshot of the user.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return &genai.FunctionResponse{
				ID:   id,
				Name: "FinancialSnapshot",
				Response: map[string]any{
					"output": finguide.BuildContext(p),
				},
			}
		},
	}
}

// recommendationsFunc exposes the allocation and fund recommendations.
func recommendationsFunc(p *finguide.FinancialProfile) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "FundRecommendations",
			Description: `FundRecommendations returns the asset allocation and the five fund
			recommendations computed for the user, with per-fund SIP amounts.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown report of the recommended allocation and funds.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return &genai.FunctionResponse{
				ID:   id,
				Name: "FundRecommendations",
				Response: map[string]any{
					"output": renderer.RecommendationsMarkdown(p),
				},
			}
		},
	}
}
