package notion

import "fmt"

// QueryRequest is the body of POST /v1/data_sources/{id}/query.
type QueryRequest struct {
	Sorts       []Sort `json:"sorts,omitempty"`
	StartCursor string `json:"start_cursor,omitempty"`
	PageSize    int    `json:"page_size,omitempty"`
}

// Sort orders query results by a property.
type Sort struct {
	Property  string `json:"property"`
	Direction string `json:"direction"` // "ascending" or "descending"
}

// QueryResponse is one page of query results.
type QueryResponse struct {
	Object     string `json:"object"`
	Results    []Page `json:"results"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor"`
}

// Page is a data source entry. Only the fields the sync reads are decoded.
type Page struct {
	Object         string              `json:"object"`
	ID             string              `json:"id"`
	LastEditedTime string              `json:"last_edited_time"`
	Properties     map[string]Property `json:"properties"`
}

// Property holds a single page property; which field is set depends on Type.
type Property struct {
	ID    string     `json:"id"`
	Type  string     `json:"type"`
	Title []RichText `json:"title,omitempty"`
	Date  *Date      `json:"date,omitempty"`
}

type RichText struct {
	PlainText string `json:"plain_text"`
}

type Date struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	TimeZone string `json:"time_zone"`
}

// APIError is the error object Notion returns on non-2xx responses.
type APIError struct {
	StatusCode int    `json:"status"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("notion API error: %d", e.StatusCode)
	}
	return fmt.Sprintf("notion API error: %d %s: %s", e.StatusCode, e.Code, e.Message)
}
