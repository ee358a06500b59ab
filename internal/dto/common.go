package dto

// ListParams defines the shared pagination query parameters. Clients send
// either limit/offset (skip is an accepted alias for offset, pageSize for
// limit) or page/pageSize.
type ListParams struct {
	Limit    int `form:"limit"`
	PageSize int `form:"pageSize"`
	Offset   int `form:"offset"`
	Skip     int `form:"skip"`
	Page     int `form:"page"`
}

const defaultPageSize = 20

// Normalize resolves the aliases into a concrete limit and offset.
func (p ListParams) Normalize() (limit, offset int) {
	limit = p.Limit
	if limit <= 0 {
		limit = p.PageSize
	}
	if limit <= 0 {
		limit = defaultPageSize
	}

	offset = p.Offset
	if offset <= 0 {
		offset = p.Skip
	}
	if offset <= 0 && p.Page > 1 {
		offset = (p.Page - 1) * limit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
