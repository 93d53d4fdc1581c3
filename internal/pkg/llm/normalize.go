package llm

import (
	"fmt"
	"sort"

	"github.com/goccy/go-json"
)

// StringList tolerates the model returning either a JSON array of strings or
// one plain string.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*l = many
		return nil
	}
	var one string
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*l = StringList{one}
	return nil
}

// NormalizeInsights accepts the three response shapes the model has been
// observed to produce (a single object, an array, or an object-of-objects,
// optionally wrapped in an "insights" key) and returns a flat array.
func NormalizeInsights(raw string) ([]*InsightPayload, error) {
	cleaned := stripFences(raw)

	// array shape
	var arr []*InsightPayload
	if err := json.Unmarshal([]byte(cleaned), &arr); err == nil {
		return arr, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &obj); err != nil {
		return nil, fmt.Errorf("insight response is neither array nor object: %w", err)
	}

	// "insights" wrapper
	if inner, ok := obj["insights"]; ok {
		return NormalizeInsights(string(inner))
	}

	// single object shape, recognized by its known fields
	if _, ok := obj["title"]; ok {
		return normalizeSingleInsight(cleaned)
	}
	if _, ok := obj["problem_summary"]; ok {
		return normalizeSingleInsight(cleaned)
	}

	// object-of-objects shape, keyed by index or facet name
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]*InsightPayload, 0, len(keys))
	for _, k := range keys {
		var p InsightPayload
		if err := json.Unmarshal(obj[k], &p); err != nil {
			return nil, fmt.Errorf("insight response entry %q is not an object: %w", k, err)
		}
		out = append(out, &p)
	}
	return out, nil
}

func normalizeSingleInsight(cleaned string) ([]*InsightPayload, error) {
	var p InsightPayload
	if err := json.Unmarshal([]byte(cleaned), &p); err != nil {
		return nil, err
	}
	return []*InsightPayload{&p}, nil
}

// NormalizeClusters accepts an array or a {"clusters": [...]} wrapper.
func NormalizeClusters(raw string) ([]*ClusterPayload, error) {
	cleaned := stripFences(raw)

	var arr []*ClusterPayload
	if err := json.Unmarshal([]byte(cleaned), &arr); err == nil {
		return arr, nil
	}

	var wrapped struct {
		Clusters []*ClusterPayload `json:"clusters"`
	}
	if err := json.Unmarshal([]byte(cleaned), &wrapped); err != nil {
		return nil, fmt.Errorf("cluster response is neither array nor wrapper: %w", err)
	}
	return wrapped.Clusters, nil
}

// NormalizeKeywords accepts an array or a {"keywords": [...]} wrapper.
func NormalizeKeywords(raw string) ([]*KeywordPayload, error) {
	cleaned := stripFences(raw)

	var arr []*KeywordPayload
	if err := json.Unmarshal([]byte(cleaned), &arr); err == nil {
		return arr, nil
	}

	var wrapped struct {
		Keywords []*KeywordPayload `json:"keywords"`
	}
	if err := json.Unmarshal([]byte(cleaned), &wrapped); err != nil {
		return nil, fmt.Errorf("keyword response is neither array nor wrapper: %w", err)
	}
	return wrapped.Keywords, nil
}
