package mdnative

// styleNames returns the stylesheet names that apply to n, least specific
// first.
func styleNames(n *Node) []string {
	names := []string{string(n.Type)}
	if n.Type == NodeHeading {
		names = append(names, HeadingStyleName(n.Depth))
	}
	return names
}

// ResolveStyles returns the style bags that apply to n, lowest precedence
// first: the built-in entries for each of n's style names, then the user
// entries for the same names. Absent entries are skipped. With textOnly set
// each bag keeps only text-only properties; otherwise text-only properties
// are dropped.
func ResolveStyles(n *Node, user StyleSheet, textOnly bool) []Style {
	names := styleNames(n)
	styles := make([]Style, 0, 2*len(names))
	for _, sheet := range []StyleSheet{defaultStyleSheet, user} {
		for _, name := range names {
			s, ok := sheet[name]
			if !ok || s == nil {
				continue
			}
			if textOnly {
				styles = append(styles, PickTextOnly(s))
			} else {
				styles = append(styles, OmitTextOnly(s))
			}
		}
	}
	return styles
}

// AncestorTextStyles returns the text-only styles of every ancestor of n,
// the root's first, so that closer ancestors win when flattened.
func AncestorTextStyles(n *Node, user StyleSheet) []Style {
	var levels [][]Style
	for p := n.Parent(); p != nil; p = p.Parent() {
		levels = append(levels, ResolveStyles(p, user, true))
	}
	var styles []Style
	for i := len(levels) - 1; i >= 0; i-- {
		styles = append(styles, levels[i]...)
	}
	return styles
}

// listStyles resolves the prefix styles handed to list builders.
func listStyles(user StyleSheet) ListStyles {
	return ListStyles{
		Bullet: Flatten(defaultStyleSheet[StyleListItemBullet], user[StyleListItemBullet]),
		Number: Flatten(defaultStyleSheet[StyleListItemNumber], user[StyleListItemNumber]),
	}
}
