package model

// ValidationResult is the outcome of checking a generation request.
type ValidationResult struct {
	IsValid      bool   `json:"is_valid"`
	ErrorMessage string `json:"error_message,omitempty"`

	err error
}

// Valid returns a successful validation result.
func Valid() ValidationResult {
	return ValidationResult{IsValid: true}
}

// Invalid returns a failed validation result carrying err's message.
func Invalid(err error) ValidationResult {
	return ValidationResult{
		IsValid:      false,
		ErrorMessage: err.Error(),
		err:          err,
	}
}

// Err returns the sentinel error behind a failed result, or nil when valid.
func (r ValidationResult) Err() error {
	if r.IsValid {
		return nil
	}
	return r.err
}
