package es

import "github.com/elastic/go-elasticsearch/v8/typedapi/types"

func buildMapping() types.TypeMapping {
	input := types.NewTextProperty()
	input.Fields = map[string]types.Property{
		"keyword": types.NewKeywordProperty(),
	}

	return types.TypeMapping{
		Properties: map[string]types.Property{
			"id":         types.NewKeywordProperty(),
			"input":      input,
			"sum":        types.NewIntegerNumberProperty(),
			"error":      types.NewTextProperty(),
			"kind":       types.NewKeywordProperty(),
			"created_at": types.NewDateProperty(),
		},
	}
}
