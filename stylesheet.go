package mdnative

import "strconv"

// Style names used besides node types.
const (
	StyleListItemBullet = "list_item_bullet"
	StyleListItemNumber = "list_item_number"
)

// HeadingStyleName returns the style name for a heading level, e.g.
// "heading2".
func HeadingStyleName(depth int) string {
	return string(NodeHeading) + strconv.Itoa(depth)
}

// Colors are ANSI indices (0-15) written as strings so the user's terminal
// palette decides the actual RGB values. Lengths are terminal cells.
var defaultStyleSheet = StyleSheet{
	string(NodeContainer): {
		"flex": 1,
	},
	string(NodeParagraph): {
		"flexDirection": "row",
		"flexWrap":      "wrap",
		"marginBottom":  1,
	},
	string(NodeTextBlock): {
		"flexDirection": "row",
		"flexWrap":      "wrap",
	},
	string(NodeHeading): {
		"flexDirection": "row",
		"flexWrap":      "wrap",
		"fontWeight":    "bold",
		"marginBottom":  1,
	},
	"heading1": {"color": "5", "fontSize": 32, "textDecorationLine": "underline"},
	"heading2": {"color": "5", "fontSize": 24},
	"heading3": {"color": "6", "fontSize": 20},
	"heading4": {"color": "6", "fontSize": 18},
	"heading5": {"color": "4", "fontSize": 16},
	"heading6": {"color": "4", "fontSize": 14, "fontStyle": "italic"},
	// Text leaves apply their own style last, so anything set here hides
	// what headings, links and code pass down.
	string(NodeText): {
		"includeFontPadding": false,
		"textAlignVertical":  "center",
	},
	string(NodeStrong): {
		"fontWeight": "bold",
	},
	string(NodeEm): {
		"fontStyle": "italic",
	},
	string(NodeDel): {
		"textDecorationLine": "line-through",
	},
	string(NodeLink): {
		"color":              "4",
		"textDecorationLine": "underline",
	},
	string(NodeCodespan): {
		"backgroundColor": "0",
		"color":           "3",
		"fontFamily":      "Courier",
	},
	string(NodeCode): {
		"backgroundColor": "0",
		"color":           "3",
		"fontFamily":      "Courier",
		"marginBottom":    1,
		"paddingLeft":     1,
		"paddingRight":    1,
	},
	string(NodeBlockquote): {
		"borderLeftColor": "8",
		"borderLeftWidth": 1,
		"color":           "8",
		"fontStyle":       "italic",
		"marginBottom":    1,
		"paddingLeft":     1,
	},
	string(NodeList): {
		"marginBottom": 1,
	},
	string(NodeListItem): {
		"flex": 1,
	},
	StyleListItemBullet: {
		"color":      "8",
		"fontWeight": "bold",
	},
	StyleListItemNumber: {
		"color": "8",
	},
	string(NodeHR): {
		"borderBottomColor": "8",
		"borderBottomWidth": 1,
		"marginBottom":      1,
	},
	string(NodeImage): {
		"marginBottom": 1,
	},
	string(NodeHTML): {
		"color": "8",
	},
	string(NodeTable): {
		"borderColor":  "8",
		"borderWidth":  1,
		"marginBottom": 1,
	},
	string(NodeTableRow): {
		"flexDirection": "row",
	},
	string(NodeTableCell): {
		"flex":          1,
		"flexDirection": "row",
		"flexWrap":      "wrap",
		"paddingLeft":   1,
		"paddingRight":  1,
	},
}

// DefaultStyleSheet returns a copy of the built-in stylesheet.
func DefaultStyleSheet() StyleSheet {
	return defaultStyleSheet.Clone()
}
