package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/admindesk/admindesk/internal/model"
)

// respond writes the uniform response envelope with the given HTTP status.
// Nil data and errVal are normalized to "" so every response carries all
// four envelope keys.
func respond(w http.ResponseWriter, status int, data any, message string, errVal any) {
	if data == nil {
		data = ""
	}
	if errVal == nil {
		errVal = ""
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.Response{
		Status:  status,
		Data:    data,
		Message: message,
		Error:   errVal,
	})
}

// respondOK writes a 200 envelope carrying data.
func respondOK(w http.ResponseWriter, data any, message string) {
	respond(w, http.StatusOK, data, message, nil)
}

// respondError writes an error envelope. errVal may be a field->reason map
// for validation failures or a plain description.
func respondError(w http.ResponseWriter, status int, message string, errVal any) {
	respond(w, status, nil, message, errVal)
}

// readJSON decodes the request body as JSON into v. The body is closed after
// decoding regardless of success or failure.
func readJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// queryInt extracts an integer query parameter, returning defaultVal if the
// parameter is missing or cannot be parsed.
func queryInt(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

// queryString extracts a string query parameter.
func queryString(r *http.Request, key string) string {
	return r.URL.Query().Get(key)
}

// requiredFields checks that every value in fields is non-empty and returns a
// field->reason map of the ones that are not. An empty map means valid input.
func requiredFields(fields map[string]string) map[string]string {
	problems := map[string]string{}
	for name, value := range fields {
		if value == "" {
			problems[name] = "the " + name + " field is required"
		}
	}
	return problems
}
