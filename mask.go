package player

const (
	LogMaskKey = "masked"
	LogMaskVal = "xxxxxx"
)

// Mask replaces the values of key in vals with [LogMaskVal],
// hiding sensitive data from log messages.
// Nested map[string]any values are masked recursively.
func Mask(vals map[string]any, key string) {
	for k, v := range vals {
		if k == key {
			vals[k] = LogMaskVal
			continue
		}

		if nested, ok := v.(map[string]any); ok {
			Mask(nested, key)
		}
	}
}
