package browse

type SetCategoryRequest struct {
	Category string `json:"category" binding:"required"`
}

type SetQueryRequest struct {
	Query string `json:"query"`
}
