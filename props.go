package mdnative

import (
	"maps"
	"slices"
)

// textStyleProps lists every style property understood by text elements.
// Text elements also accept most view properties, so the list overlaps
// viewStyleProps.
var textStyleProps = []string{
	"color",
	"fontFamily",
	"fontSize",
	"fontStyle",
	"fontWeight",
	"fontVariant",
	"letterSpacing",
	"lineHeight",
	"textAlign",
	"textAlignVertical",
	"textDecorationColor",
	"textDecorationLine",
	"textDecorationStyle",
	"textShadowColor",
	"textShadowRadius",
	"textTransform",
	"includeFontPadding",
	"writingDirection",
	// Shared with views.
	"backgroundColor",
	"borderColor",
	"borderRadius",
	"borderWidth",
	"margin",
	"marginBottom",
	"marginLeft",
	"marginRight",
	"marginTop",
	"opacity",
	"padding",
	"paddingBottom",
	"paddingLeft",
	"paddingRight",
	"paddingTop",
}

// viewStyleProps lists every style property understood by view elements.
var viewStyleProps = []string{
	"alignItems",
	"alignSelf",
	"backfaceVisibility",
	"backgroundColor",
	"borderBottomColor",
	"borderBottomWidth",
	"borderColor",
	"borderLeftColor",
	"borderLeftWidth",
	"borderRadius",
	"borderRightColor",
	"borderRightWidth",
	"borderStyle",
	"borderTopColor",
	"borderTopWidth",
	"borderWidth",
	"bottom",
	"elevation",
	"flex",
	"flexDirection",
	"flexWrap",
	"height",
	"justifyContent",
	"left",
	"margin",
	"marginBottom",
	"marginLeft",
	"marginRight",
	"marginTop",
	"opacity",
	"overflow",
	"padding",
	"paddingBottom",
	"paddingLeft",
	"paddingRight",
	"paddingTop",
	"position",
	"right",
	"top",
	"width",
}

// textOnlyProps holds textStyleProps minus viewStyleProps. It is built once
// and never written afterwards.
var textOnlyProps = textOnly(textStyleProps, viewStyleProps)

// TextStyleProps returns a copy of the style properties understood by text
// elements.
func TextStyleProps() []string { return slices.Clone(textStyleProps) }

// ViewStyleProps returns a copy of the style properties understood by view
// elements.
func ViewStyleProps() []string { return slices.Clone(viewStyleProps) }

func textOnly(text, view []string) map[string]struct{} {
	set := make(map[string]struct{}, len(text))
	for _, p := range text {
		set[p] = struct{}{}
	}
	for _, p := range view {
		delete(set, p)
	}
	return set
}

// IsTextOnly reports whether the named property applies to text elements
// only.
func IsTextOnly(name string) bool {
	_, ok := textOnlyProps[name]
	return ok
}

// TextOnlyProps returns the text-only property names, sorted.
func TextOnlyProps() []string {
	return slices.Sorted(maps.Keys(textOnlyProps))
}

// PickTextOnly returns a new Style holding only the text-only keys of s.
func PickTextOnly(s Style) Style {
	out := make(Style, len(s))
	for k, v := range s {
		if IsTextOnly(k) {
			out[k] = v
		}
	}
	return out
}

// OmitTextOnly returns a new Style holding every key of s that is not
// text-only.
func OmitTextOnly(s Style) Style {
	out := make(Style, len(s))
	for k, v := range s {
		if !IsTextOnly(k) {
			out[k] = v
		}
	}
	return out
}
