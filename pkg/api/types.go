package api

// ErrorResponse is a standardized error message for API responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MutationResponse acknowledges a write that has no resource to return.
type MutationResponse struct {
	Success bool `json:"success"`
}

// VersionResponse is returned by GET /version.
type VersionResponse struct {
	Version string `json:"version"`
}

// PageResponse wraps a page of items with an opaque continuation cursor.
type PageResponse[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"nextCursor,omitempty"`
	HasMore    bool   `json:"hasMore"`
}
