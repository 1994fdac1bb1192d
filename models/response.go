package models

type ContactResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ContactID string `json:"contact_id,omitempty"`
}

type PropertyResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	PropertyID string `json:"property_id,omitempty"`
}

type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// FieldError describes a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the uniform failure envelope. Fields is only set for
// validation failures.
type ErrorResponse struct {
	Error  string       `json:"error"`
	Fields []FieldError `json:"fields,omitempty"`
}

type DashboardStats struct {
	Contacts   ContactStats  `json:"contacts"`
	Properties PropertyStats `json:"properties"`
}

type ContactStats struct {
	Total int64 `json:"total"`
	New   int64 `json:"new"`
}

type PropertyStats struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
}
