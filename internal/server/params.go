package server

// StringParam returns params[key] as a string, or def if absent.
func StringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return def
}

// IntParam returns params[key] as an int, or def if absent. JSON numbers
// arrive as float64.
func IntParam(params map[string]interface{}, key string, def int) int {
	switch v := params[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	default:
		return def
	}
}

// OptionalIntParam is IntParam for filters where zero is meaningful.
func OptionalIntParam(params map[string]interface{}, key string) *int {
	if _, ok := params[key]; !ok {
		return nil
	}
	v := IntParam(params, key, 0)
	return &v
}

// BoolParam returns params[key] as a bool, or def if absent.
func BoolParam(params map[string]interface{}, key string, def bool) bool {
	if v, ok := params[key].(bool); ok {
		return v
	}
	return def
}
