package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRespond_Defaults(t *testing.T) {
	rr := httptest.NewRecorder()
	respond(rr, http.StatusOK, nil, "", nil)

	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}

	// All four keys are always present; nil data and error collapse to "".
	for _, key := range []string{"status", "data", "message", "error"} {
		if _, ok := body[key]; !ok {
			t.Errorf("missing envelope key %q", key)
		}
	}
	if body["data"] != "" {
		t.Errorf("data = %v, want empty string", body["data"])
	}
	if body["error"] != "" {
		t.Errorf("error = %v, want empty string", body["error"])
	}
	if body["status"] != float64(200) {
		t.Errorf("status = %v, want 200", body["status"])
	}
}

func TestRespondError_FieldMap(t *testing.T) {
	rr := httptest.NewRecorder()
	respondError(rr, http.StatusBadRequest, "invalid values",
		map[string]string{"email": "the email field is required"})

	if rr.Code != http.StatusBadRequest {
		t.Errorf("code = %d, want 400", rr.Code)
	}

	var body struct {
		Status  int               `json:"status"`
		Message string            `json:"message"`
		Error   map[string]string `json:"error"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Message != "invalid values" {
		t.Errorf("message = %q, want %q", body.Message, "invalid values")
	}
	if body.Error["email"] != "the email field is required" {
		t.Errorf("error.email = %q, want required message", body.Error["email"])
	}
}

func TestQueryInt(t *testing.T) {
	tests := []struct {
		url  string
		want int
	}{
		{"/users?page=3", 3},
		{"/users", 1},
		{"/users?page=", 1},
		{"/users?page=abc", 1},
		{"/users?page=-5", -5},
	}
	for _, tt := range tests {
		req := httptest.NewRequest("GET", tt.url, nil)
		if got := queryInt(req, "page", 1); got != tt.want {
			t.Errorf("queryInt(%q) = %d, want %d", tt.url, got, tt.want)
		}
	}
}

func TestRequiredFields(t *testing.T) {
	problems := requiredFields(map[string]string{
		"name":  "Ada",
		"email": "",
		"token": "",
	})
	if len(problems) != 2 {
		t.Fatalf("len = %d, want 2", len(problems))
	}
	if problems["email"] == "" || problems["token"] == "" {
		t.Error("expected reasons for the empty fields")
	}
	if _, ok := problems["name"]; ok {
		t.Error("name was provided and should not be flagged")
	}
}

func TestReadJSON_Invalid(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader("{not json"))
	var v map[string]string
	if err := readJSON(req, &v); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}
