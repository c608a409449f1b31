package domain

// Tab represents a single open document in a view panel
type Tab struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Path   string `json:"path,omitempty"`
	Edited bool   `json:"edited,omitempty"`
}

// Panel is a vertical stack of tabs with one active tab
type Panel struct {
	Tabs      []Tab `json:"tabs"`
	ActiveTab int   `json:"active_tab"`
}

// ActiveTabID returns the id of the panel's active tab, or "" when empty
func (p Panel) ActiveTabID() string {
	if p.ActiveTab < 0 || p.ActiveTab >= len(p.Tabs) {
		return ""
	}
	return p.Tabs[p.ActiveTab].ID
}

// Views is the workbench layout: rows of panels
type Views [][]Panel

// Equal reports whether two layouts hold the same panels and tabs
func (v Views) Equal(other Views) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if len(v[i]) != len(other[i]) {
			return false
		}
		for j := range v[i] {
			if !panelEqual(v[i][j], other[i][j]) {
				return false
			}
		}
	}
	return true
}

func panelEqual(a, b Panel) bool {
	if a.ActiveTab != b.ActiveTab || len(a.Tabs) != len(b.Tabs) {
		return false
	}
	for i := range a.Tabs {
		if a.Tabs[i] != b.Tabs[i] {
			return false
		}
	}
	return true
}
