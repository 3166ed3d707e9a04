package api

// Envelope is the uniform response shape used by every endpoint.
// success: true on 2xx, false otherwise.
// message: human-readable outcome, present on writes and failures.
// count: number of records, present on list responses.
// data: the primary payload (omitted on failures).
// error: underlying error text, included only outside production.
// errors: field-level validation failures.
type Envelope[T any] struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty" doc:"Human-readable outcome"`
	Count   *int         `json:"count,omitempty"   doc:"Number of records in data"`
	Data    *T           `json:"data,omitempty"`
	Error   string       `json:"error,omitempty"   doc:"Underlying error detail (non-production only)"`
	Errors  []FieldError `json:"errors,omitempty"  doc:"Field-level validation failures"`
}

// FieldError names a single invalid field and why it was rejected.
type FieldError struct {
	Field   string `json:"field"   doc:"Name of the rejected field"`
	Message string `json:"message" doc:"Why the field was rejected"`
}

// Success constructs a success envelope around data.
func Success[T any](data T) Envelope[T] {
	d := data
	return Envelope[T]{Success: true, Data: &d}
}

// SuccessMessage constructs a success envelope with a message and data.
func SuccessMessage[T any](msg string, data T) Envelope[T] {
	env := Success(data)
	env.Message = msg
	return env
}

// SuccessList constructs a success envelope carrying a record count.
func SuccessList[T any](data T, count int) Envelope[T] {
	env := Success(data)
	env.Count = &count
	return env
}

// Failure constructs an error envelope with no data.
func Failure[T any](msg string) Envelope[T] {
	return Envelope[T]{Success: false, Message: msg}
}

// FailureDetail constructs an error envelope carrying the underlying
// error text. Callers gate detail exposure before passing it in.
func FailureDetail[T any](msg, detail string) Envelope[T] {
	env := Failure[T](msg)
	env.Error = detail
	return env
}

// FailureFields constructs a validation-error envelope listing every
// rejected field.
func FailureFields[T any](msg string, fields []FieldError) Envelope[T] {
	env := Failure[T](msg)
	if len(fields) > 0 {
		env.Errors = make([]FieldError, len(fields))
		copy(env.Errors, fields)
	}
	return env
}
