package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/boredq/pkg/client"
)

// maxRandomCount caps bored_random's count input.
const maxRandomCount = 10

// RandomInput is the input for bored_random.
type RandomInput struct {
	Count  int    `json:"count,omitempty" jsonschema:"Number of random activities to fetch (default: 1, max: 10)"`
	JQ     string `json:"jq,omitempty" jsonschema:"Optional jq expression applied to each response body"`
	Strict bool   `json:"strict,omitempty" jsonschema:"Report responses that do not match the activity schema"`
}

// KeyInput is the input for bored_by_key.
type KeyInput struct {
	Key    string `json:"key" jsonschema:"Activity key, e.g. 5881028"`
	JQ     string `json:"jq,omitempty" jsonschema:"Optional jq expression applied to the response body"`
	Strict bool   `json:"strict,omitempty" jsonschema:"Report a response that does not match the activity schema"`
}

// ParamsInput is the input for bored_by_params. An exact value takes
// precedence over the min/max range of the same parameter.
type ParamsInput struct {
	Type             string `json:"type,omitempty" jsonschema:"Activity type, e.g. education, recreational, social, diy"`
	Participants     string `json:"participants,omitempty" jsonschema:"Exact number of participants"`
	MinParticipants  string `json:"min_participants,omitempty" jsonschema:"Minimum number of participants"`
	MaxParticipants  string `json:"max_participants,omitempty" jsonschema:"Maximum number of participants"`
	Price            string `json:"price,omitempty" jsonschema:"Exact price, 0 to 1"`
	MinPrice         string `json:"min_price,omitempty" jsonschema:"Minimum price, 0 to 1"`
	MaxPrice         string `json:"max_price,omitempty" jsonschema:"Maximum price, 0 to 1"`
	Accessibility    string `json:"accessibility,omitempty" jsonschema:"Exact accessibility, 0 (most accessible) to 1"`
	MinAccessibility string `json:"min_accessibility,omitempty" jsonschema:"Minimum accessibility"`
	MaxAccessibility string `json:"max_accessibility,omitempty" jsonschema:"Maximum accessibility"`
	JQ               string `json:"jq,omitempty" jsonschema:"Optional jq expression applied to the response body"`
	Strict           bool   `json:"strict,omitempty" jsonschema:"Report a response that does not match the activity schema"`
}

// Specs converts the input to parameter specs in query order.
func (in ParamsInput) Specs() []client.ParameterSpec {
	specs := client.DefaultParameters()
	for i := range specs {
		p := &specs[i]
		switch p.Name {
		case client.ParamType:
			p.Exact = in.Type
		case client.ParamParticipants:
			p.Exact, p.Min, p.Max = in.Participants, in.MinParticipants, in.MaxParticipants
		case client.ParamPrice:
			p.Exact, p.Min, p.Max = in.Price, in.MinPrice, in.MaxPrice
		case client.ParamAccessibility:
			p.Exact, p.Min, p.Max = in.Accessibility, in.MinAccessibility, in.MaxAccessibility
		}
	}
	return specs
}

// ActivityResult is one successful response.
type ActivityResult struct {
	URL   string        `json:"url"`
	Pairs []client.Pair `json:"pairs"`
}

// QueryOutput is the output of every bored_* tool.
type QueryOutput struct {
	Results        []ActivityResult `json:"results,omitzero"`
	Values         []any            `json:"values,omitzero"`
	FilterErrors   []string         `json:"filter_errors,omitzero"`
	SchemaProblems []string         `json:"schema_problems,omitzero"`
}

// ToolRandom fetches one or more random activities.
func ToolRandom(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input RandomInput) (*sdkmcp.CallToolResult, QueryOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input RandomInput) (*sdkmcp.CallToolResult, QueryOutput, error) {
		count := input.Count
		if count <= 0 {
			count = 1
		}
		if count > maxRandomCount {
			return nil, QueryOutput{}, ErrInvalidInput("count must be at most 10")
		}
		if err := d.checkExpression(input.JQ); err != nil {
			return nil, QueryOutput{}, err
		}

		results, err := d.Client.Random(ctx, count)
		if err != nil {
			return nil, QueryOutput{}, WrapQueryError(err)
		}
		return nil, d.buildOutput(results, input.JQ, input.Strict), nil
	}
}

// ToolByKey looks up one activity by key.
func ToolByKey(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input KeyInput) (*sdkmcp.CallToolResult, QueryOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input KeyInput) (*sdkmcp.CallToolResult, QueryOutput, error) {
		if err := d.checkExpression(input.JQ); err != nil {
			return nil, QueryOutput{}, err
		}
		res, err := d.Run(ctx, client.ModeByKey, input.Key, nil)
		if err != nil {
			return nil, QueryOutput{}, WrapQueryError(err)
		}
		return nil, d.buildOutput([]*client.Result{res}, input.JQ, input.Strict), nil
	}
}

// ToolByParams queries by type, participants, price and accessibility.
func ToolByParams(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ParamsInput) (*sdkmcp.CallToolResult, QueryOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ParamsInput) (*sdkmcp.CallToolResult, QueryOutput, error) {
		if err := d.checkExpression(input.JQ); err != nil {
			return nil, QueryOutput{}, err
		}
		res, err := d.Run(ctx, client.ModeByParameters, "", input.Specs())
		if err != nil {
			return nil, QueryOutput{}, WrapQueryError(err)
		}
		return nil, d.buildOutput([]*client.Result{res}, input.JQ, input.Strict), nil
	}
}

func (d *Deps) checkExpression(expr string) error {
	if expr == "" {
		return nil
	}
	if _, err := d.Query.Compile(expr); err != nil {
		return ErrInvalidInput(err.Error())
	}
	return nil
}

func (d *Deps) buildOutput(results []*client.Result, expr string, strict bool) QueryOutput {
	out := QueryOutput{Results: make([]ActivityResult, 0, len(results))}
	bodies := make([][]byte, 0, len(results))
	for _, r := range results {
		out.Results = append(out.Results, ActivityResult{URL: r.URL, Pairs: r.Pairs})
		bodies = append(bodies, r.Raw)

		if strict && d.Validator != nil {
			out.SchemaProblems = append(out.SchemaProblems, d.Validator.Validate(r.Raw)...)
		}
	}

	if expr != "" {
		filtered, err := d.Query.FilterMany(bodies, expr)
		if err != nil {
			out.FilterErrors = []string{err.Error()}
		} else {
			out.Values = filtered.Values
			out.FilterErrors = filtered.Errors
		}
	}
	return out
}
