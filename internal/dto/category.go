package dto

type CategoryRequest struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

type ReplaceCategoriesRequest struct {
	Categories []CategoryRequest `json:"categories"`
}

type CategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// DetectCategoryResponse reports the resolved category together with its
// provenance: "explicit", "detected" or "default".
type DetectCategoryResponse struct {
	Category string `json:"category"`
	Source   string `json:"source"`
}

type SuggestCategoriesResponse struct {
	Suggestions []string `json:"suggestions"`
}

type AddKeywordsRequest struct {
	Keywords []string `json:"keywords"`
}

type KeywordsResponse struct {
	Category string   `json:"category"`
	Keywords []string `json:"keywords"`
}
