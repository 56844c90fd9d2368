// Package mdnative turns a parsed markdown tree into a tree of styled
// native elements. Each markdown node type maps to an element builder and a
// set of style rules; text leaves inherit the text-only styles of their
// ancestors.
package mdnative

// NodeType tags a markdown node.
type NodeType string

// Node types produced by the bundled parser. Parsers may emit other types;
// they render as plain views.
const (
	NodeContainer  NodeType = "container"
	NodeHeading    NodeType = "heading"
	NodeParagraph  NodeType = "paragraph"
	NodeTextBlock  NodeType = "text_block"
	NodeText       NodeType = "text"
	NodeList       NodeType = "list"
	NodeListItem   NodeType = "list_item"
	NodeImage      NodeType = "image"
	NodeBlockquote NodeType = "blockquote"
	NodeCode       NodeType = "code"
	NodeCodespan   NodeType = "codespan"
	NodeStrong     NodeType = "strong"
	NodeEm         NodeType = "em"
	NodeDel        NodeType = "del"
	NodeLink       NodeType = "link"
	NodeHR         NodeType = "hr"
	NodeHTML       NodeType = "html"
	NodeTable      NodeType = "table"
	NodeTableRow   NodeType = "table_row"
	NodeTableCell  NodeType = "table_cell"
)

// Node is one node of a parsed markdown document.
//
// Children are owned by their parent. The parent pointer is a back-reference
// used only to walk towards the root when collecting inherited text styles;
// it is set by Append and Link and never used to mutate the tree.
type Node struct {
	Type     NodeType
	Children []*Node

	Text    string // payload of text nodes
	Depth   int    // heading level, 1-6
	Ordered bool   // numbered list
	Href    string // image source or link destination

	parent *Node
}

// Parent returns the node's parent, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Append adds children to n and sets their parent to n.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		c.parent = n
		n.Children = append(n.Children, c)
	}
	return n
}

// Link sets the parent of every node below n. Trees built by assigning
// Children directly need this before rendering.
func (n *Node) Link() *Node {
	for _, c := range n.Children {
		c.parent = n
		c.Link()
	}
	return n
}

// IsText reports whether n is a text leaf.
func (n *Node) IsText() bool { return n.Type == NodeText }
