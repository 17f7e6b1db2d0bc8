package domain

// ExtractRules maps a value name to the JSONPath expression that selects it.
type ExtractRules map[string]string

// ExtractResult is the outcome of a single extraction rule.
type ExtractResult struct {
	Name    string
	Success bool
	Value   string
	Message string
}
