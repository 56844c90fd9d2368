package mdnative

import "strconv"

// Style is a flat bag of style attributes, e.g. {"color": "5",
// "marginBottom": 1}. Values are scalars: strings, numbers or booleans.
type Style map[string]any

// Clone returns a shallow copy of s. A nil Style clones to nil.
func (s Style) Clone() Style {
	if s == nil {
		return nil
	}
	out := make(Style, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Str returns the string value of key, or "" when absent or not a string.
func (s Style) Str(key string) string {
	v, _ := s[key].(string)
	return v
}

// Num returns the numeric value of key truncated to an int. Strings holding
// a number are accepted; anything else yields 0.
func (s Style) Num(key string) int {
	switch v := s[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case string:
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return int(n)
	}
	return 0
}

// Flatten merges styles into one Style. Later styles overwrite earlier ones
// key by key; values are never merged recursively. The result is always a
// new non-nil map.
func Flatten(styles ...Style) Style {
	out := make(Style)
	for _, s := range styles {
		for k, v := range s {
			out[k] = v
		}
	}
	return out
}

// StyleSheet maps a style name to its attributes. Names are node types, or
// "heading1" to "heading6" for heading levels, plus "list_item_bullet" and
// "list_item_number" for list prefixes.
type StyleSheet map[string]Style

// Clone returns a copy of ss with every Style copied.
func (ss StyleSheet) Clone() StyleSheet {
	out := make(StyleSheet, len(ss))
	for name, s := range ss {
		out[name] = s.Clone()
	}
	return out
}

// Merge returns a new StyleSheet where, for every name, the attributes of
// override are applied over those of ss.
func (ss StyleSheet) Merge(override StyleSheet) StyleSheet {
	out := ss.Clone()
	for name, s := range override {
		out[name] = Flatten(out[name], s)
	}
	return out
}
