package admin

// Model describes a model view of the admin dashboard.
type Model struct {
	Identity string `json:"identity"`
	Name     string `json:"name"`
	Plural   string `json:"plural"`
	Icon     string `json:"icon"`

	Columns     []string  `json:"columns"`
	Searchable  []string  `json:"searchable"`
	Sortable    []string  `json:"sortable"`
	DefaultSort []SortKey `json:"defaultSort"`

	CanCreate      bool `json:"canCreate"`
	CanEdit        bool `json:"canEdit"`
	CanDelete      bool `json:"canDelete"`
	CanViewDetails bool `json:"canViewDetails"`
}

type SortKey struct {
	Column     string `json:"column"`
	Descending bool   `json:"descending"`
}

// Index is the response of `GET /admin/api/models`.
type Index struct {
	Title  string  `json:"title"`
	Models []Model `json:"models"`
}

// List is a page of records.
type List struct {
	Items    []any `json:"items"`
	Total    int   `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
	Pages    int   `json:"pages"`
}
