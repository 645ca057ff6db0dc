package handlers

type Response struct {
	Error string `json:"error"`
}

// ListResponse is one page of a paginated listing
type ListResponse[T any] struct {
	Count    int64 `json:"count"`
	NumPages int   `json:"num_pages"`
	Page     int   `json:"page"`
	Results  []T   `json:"results"`
}

var (
	// Predefined errors
	NotFoundResponse  = Response{"not found"}
	DBError1Response  = Response{"DB Error 1"}
	DBError2Response  = Response{"DB Error 2"}
	DBError3Response  = Response{"DB Error 3"}
	SlugTakenResponse = Response{"slug taken"}
)
