package request

// ListParams holds the pagination and ordering query parameters shared by
// list endpoints.
type ListParams struct {
	Page      int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
	SortOrder string `form:"sort_order,default=asc" binding:"omitempty,oneof=asc desc"`
}

// Ascending reports whether the requested ordering is ascending.
func (p ListParams) Ascending() bool {
	return p.SortOrder != "desc"
}

// ByIDRequest is the common shape for endpoints keyed by a UUID path param.
type ByIDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}
