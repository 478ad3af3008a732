package models

// BaseResponse is the error envelope returned by every service
// swagger:model BaseResponse
type BaseResponse struct {
	// example: Request has empty fields
	Message string `json:"message"`
}

// RemovedResponse reports the outcome of a delete
type RemovedResponse struct {
	Removed bool `json:"removed"`
}
