package navigation

// NavItem is a single navigation link in the dashboard shell.
type NavItem struct {
	Label    string `json:"label"`
	Icon     string `json:"icon"`
	Path     string `json:"path"`
	IsActive bool   `json:"is_active"`
}

// NavSection groups ordered navigation items under a heading.
type NavSection struct {
	Title string    `json:"title"`
	Items []NavItem `json:"items"`
}
