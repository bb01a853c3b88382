package models

// Envelope is the uniform response wrapper. Every endpoint returns
// status "success" or "error"; data carries the payload on success,
// message the human-readable text on error (or informational notes).
type Envelope struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Success wraps a payload in a success envelope
func Success(data interface{}) Envelope {
	return Envelope{Status: "success", Data: data}
}

// SuccessMessage wraps a message in a success envelope without data
func SuccessMessage(message string) Envelope {
	return Envelope{Status: "success", Message: message}
}

// Error wraps a message in an error envelope
func Error(message string) Envelope {
	return Envelope{Status: "error", Message: message}
}

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

// NewPagination builds pagination metadata from a total row count
func NewPagination(total, page, limit int) PaginationInfo {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return PaginationInfo{Total: total, Page: page, Limit: limit, Pages: pages}
}

// PageDefaults applies the default page and limit when unset
// and clamps limit to the allowed maximum.
func PageDefaults(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
