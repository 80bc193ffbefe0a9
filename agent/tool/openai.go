package tool

import (
	"strings"

	"github.com/cloudwego/eino/schema"
	openaisdk "github.com/openai/openai-go"
)

// OpenAITools exports the catalog tool set as OpenAI function-calling
// definitions, for agent runtimes that bind tools through the OpenAI
// protocol rather than eino. Names use underscores because the OpenAI API
// rejects dots in function names; the executor accepts both forms.
func OpenAITools() []openaisdk.ChatCompletionToolParam {
	out := make([]openaisdk.ChatCompletionToolParam, 0, len(toolOrder))
	for _, name := range toolOrder {
		props := make(map[string]any, len(toolParams[name]))
		var required []string
		for _, p := range toolParams[name] {
			props[p.name] = map[string]any{
				"type":        jsonType(p.typ),
				"description": p.desc,
			}
			if p.required {
				required = append(required, p.name)
			}
		}

		parameters := openaisdk.FunctionParameters{
			"type":       "object",
			"properties": props,
		}
		if len(required) > 0 {
			parameters["required"] = required
		}

		out = append(out, openaisdk.ChatCompletionToolParam{
			Function: openaisdk.FunctionDefinitionParam{
				Name:        strings.ReplaceAll(name, ".", "_"),
				Description: openaisdk.String(toolDescs[name]),
				Parameters:  parameters,
			},
		})
	}
	return out
}

func jsonType(t schema.DataType) string {
	switch t {
	case schema.Number:
		return "number"
	case schema.Integer:
		return "integer"
	default:
		return "string"
	}
}
