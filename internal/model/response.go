package model

// Response is the uniform envelope returned by every console endpoint. Status
// repeats the HTTP status code so clients can branch on the body alone. Data
// carries the primary result (created id, session token, or result set) and
// Error carries either a field->reason map for validation failures or an error
// description. Both are "" when empty so all four keys are always present.
type Response struct {
	Status  int    `json:"status"`
	Data    any    `json:"data"`
	Message string `json:"message"`
	Error   any    `json:"error"`
}
