package transport

import "encoding/json"

// Response is the standard API wrapper used for both success and error
// payloads.
type Response struct {
	Status string      `json:"status"`
	Code   string      `json:"code,omitempty"`
	Data   interface{} `json:"data,omitempty"`
	Error  interface{} `json:"error,omitempty"`
	Meta   interface{} `json:"meta,omitempty"`
}

// NewSuccess returns a success response.
func NewSuccess(data interface{}, meta interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
		Meta:   meta,
	}
}

// NewError returns an error response with optional metadata.
func NewError(code string, err interface{}, meta interface{}) Response {
	return Response{
		Status: "error",
		Code:   code,
		Error:  err,
		Meta:   meta,
	}
}

// String returns the JSON representation (best-effort) for logging purposes.
func (r Response) String() string {
	out, err := json.Marshal(r)
	if err != nil {
		return "{}"
	}
	return string(out)
}
