package model

// ExceptionReport is the payload accepted by the ingest endpoint.
// Optional fields stay nil when the caller omits them or sends null.
type ExceptionReport struct {
	ApplicationName string `json:"application_name" validate:"required"`
	ApplicationType string `json:"application_type" validate:"required"`
	Category        string `json:"category" validate:"required"`
	Message         string `json:"message" validate:"required"`
	StackTrace      string `json:"stack_trace" validate:"required"`

	ExceptionDetails *string `json:"exception_details,omitempty"`
	ExpObject        *string `json:"exp_object,omitempty"`
	ExpProcess       *string `json:"exp_process,omitempty"`
	InnerException   *string `json:"inner_exception,omitempty"`
}
