package agent

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/equity"
	"github.com/etnz/equity/date"
	"github.com/etnz/equity/docs"
	"github.com/etnz/equity/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:        "Facilitator",
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to value equity-linked cash flows against his market data file,
			or to understand why a valuation moved.

			Devise a plan of questions to ask to each experts and come up with the best response to the user's request.

			The user will assume that you know about his equity indices, check the market file first to understand what they are.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewMarkets returns the expert grounding answers in public market news.
func NewMarkets() *Expert {
	return &Expert{
		Name: "Markets",
		Description: `This is an expert in equity markets,
		very well aware of the listed indices, the large companies and the currencies,
		and of the latest market moves.
		Ask Markets whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in equity markets, you can search and find about anything related to
			indices, companies, currencies, rates etc. You leverage Google Search to
			ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewQuant returns the expert in charge of the user's market data file and
// of valuing cash flows against it.
func NewQuant() *Expert {

	lib := []Function{Valuations, Fixings, Topics}

	return &Expert{
		Name: "Quant",
		Description: `This is the Quant. He is in charge of reading the user's market data file.
		He can value equity-linked cash flows against it and look up recorded index fixings.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a quant in charge of the user's market data file.
				You know how to use the Tools to value cash flows and to look up index fixings.
				You are part of a team of experts, yours is everything about valuation. They might ask
				you questions in approximative language, figure out what they meant.

				Use the available tools to:
				  - value an equity-linked cash flow between two dates
				  - look up a recorded fixing of an index
				  - read the documentation topics when unsure about formats
			`}}},
		},
		Library: NewLibrary(lib),
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

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

// The following implementation is not scalable, it will do it for the MVP not further.

var Valuations = &Func{

	Decl: &genai.FunctionDeclaration{
		Name: "Valuation",
		Description: `Valuation prices an equity-linked cash flow against the user's market data file.

		The amount is notional times the index performance between the start and the end date.
		`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"index": {
					Type:        genai.TypeString,
					Description: "The name of the equity index in the market file.",
				},
				"notional": {
					Type:        genai.TypeNumber,
					Description: "The notional of the cash flow.",
				},
				"start": {
					Type: genai.TypeString,
					Description: `The start date of the performance period.

					` + must(docs.GetTopic("dates")),
				},
				"end": {
					Type:        genai.TypeString,
					Description: "The end date of the performance period, same format as start.",
				},
				"currency": {
					Type:        genai.TypeString,
					Description: "The ISO 4217 currency of the payoff. EUR is the default.",
				},
			},
			Required: []string{"index", "notional", "start", "end"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted valuation report.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {

		index, _ := args["index"].(string)
		notional, ok := args["notional"].(float64)
		if !ok {
			return errResponse(id, "Valuation", fmt.Errorf("argument 'notional' is not a number as expected but %T", args["notional"]))
		}
		start, err := parseDate(args, "start")
		if err != nil {
			return errResponse(id, "Valuation", err)
		}
		end, err := parseDate(args, "end")
		if err != nil {
			return errResponse(id, "Valuation", err)
		}
		currency := "EUR"
		if c, ok := args["currency"].(string); ok && c != "" {
			currency = c
		}

		report, err := value(index, notional, start, end, currency)
		if err != nil {
			return errResponse(id, "Valuation", err)
		}

		return &genai.FunctionResponse{
			ID:   id,
			Name: "Valuation",
			Response: map[string]any{
				"output": report,
			},
		}
	},
}

var Fixings = &Func{

	Decl: &genai.FunctionDeclaration{
		Name: "Fixing",
		Description: `Fixing returns the level of an equity index on a given date.

		A recorded historical fixing is returned as is, a future date is projected from the market data.
		`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"index": {
					Type:        genai.TypeString,
					Description: "The name of the equity index in the market file.",
				},
				"date": {
					Type: genai.TypeString,
					Description: `The date of the fixing.

					` + must(docs.GetTopic("dates")),
				},
			},
			Required: []string{"index", "date"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "The index level on that date.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {

		name, _ := args["index"].(string)
		on, err := parseDate(args, "date")
		if err != nil {
			return errResponse(id, "Fixing", err)
		}

		m, err := loadMarket()
		if err != nil {
			return errResponse(id, "Fixing", err)
		}
		idx, err := m.Index(name)
		if err != nil {
			return errResponse(id, "Fixing", err)
		}
		level, err := idx.Fixing(on)
		if err != nil {
			return errResponse(id, "Fixing", err)
		}

		return &genai.FunctionResponse{
			ID:   id,
			Name: "Fixing",
			Response: map[string]any{
				"output": fmt.Sprintf("%s fixing on %s: %g", name, on, level),
			},
		}
	},
}

var Topics = &Func{

	Decl: &genai.FunctionDeclaration{
		Name: "Topic",
		Description: `Topic returns the tool's own documentation about a subject.

		Available topics: ` + strings.Join(must(docs.GetAllTopics()), ", ") + `.
		`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"topic": {
					Type:        genai.TypeString,
					Description: "The name of the topic to read.",
				},
			},
			Required: []string{"topic"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "The topic content in markdown.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {

		topic, _ := args["topic"].(string)
		content, err := docs.GetTopic(topic)
		if err != nil {
			return errResponse(id, "Topic", err)
		}

		return &genai.FunctionResponse{
			ID:   id,
			Name: "Topic",
			Response: map[string]any{
				"output": content,
			},
		}
	},
}

// private implementation to value a simple-return cash flow and render it.
func value(name string, notional float64, start, end date.Date, currency string) (string, error) {
	m, err := loadMarket()
	if err != nil {
		return "", err
	}
	idx, err := m.Index(name)
	if err != nil {
		return "", err
	}
	cf := equity.NewCashFlow(notional, idx, start, end, end)
	v, err := equity.NewValuation(cf, currency)
	if err != nil {
		return "", err
	}
	return renderer.ValuationMarkdown(v), nil
}

// loadMarket decodes the market from the application's default market file.
func loadMarket() (*equity.Market, error) {
	marketFile := "market.json"
	f, err := os.Open(marketFile)
	if err != nil {
		return nil, fmt.Errorf("could not open market file %q: %w", marketFile, err)
	}
	defer f.Close()

	m, err := equity.DecodeMarket(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode market file %q: %w", marketFile, err)
	}
	return m, nil
}

func parseDate(args map[string]any, key string) (date.Date, error) {
	idate, hasDate := args[key]
	if !hasDate {
		return date.Today(), nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return date.Today(), fmt.Errorf("argument %q is not a string as expected but %T", key, idate)
	}

	on, err := date.Parse(sdate)
	if err != nil {
		return date.Today(), fmt.Errorf("argument %q must be a valid date got %q. Below is the doc about the date format\n\n%s ", key, sdate, must(docs.GetTopic("dates")))
	}

	return on, nil
}
