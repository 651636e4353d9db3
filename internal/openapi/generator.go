// Package openapi generates the OpenAPI 3 document describing the console
// API. The document is built programmatically so it can never drift from the
// routes the server actually registers.
package openapi

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// Version is the API version advertised in the generated document.
const Version = "1.0.0"

// Generate builds the OpenAPI spec for the console API: the admin session
// endpoints, the user directory endpoints, and the health probes.
func Generate() *openapi3.T {
	doc := &openapi3.T{
		OpenAPI: "3.1.0",
		Info: &openapi3.Info{
			Title:       "AdminDesk API",
			Description: "Admin console backend: admin session management and a read-only end-user directory.",
			Version:     Version,
		},
	}

	components := openapi3.NewComponents()
	components.Schemas = openapi3.Schemas{}
	components.SecuritySchemes = openapi3.SecuritySchemes{}
	doc.Components = &components

	doc.Components.SecuritySchemes["bearerAuth"] = &openapi3.SecuritySchemeRef{
		Value: &openapi3.SecurityScheme{
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "JWT",
		},
	}

	doc.Paths = openapi3.NewPaths()

	registerSchemas(doc)
	addSessionPaths(doc)
	addDirectoryPaths(doc)
	addSystemPaths(doc)

	return doc
}

// registerSchemas adds the shared component schemas: the response envelope and
// the three directory projections.
func registerSchemas(doc *openapi3.T) {
	doc.Components.Schemas["Envelope"] = &openapi3.SchemaRef{
		Value: &openapi3.Schema{
			Type:        &openapi3.Types{"object"},
			Description: "Uniform response envelope. Every API response carries all four keys.",
			Properties: openapi3.Schemas{
				"status":  &openapi3.SchemaRef{Value: &openapi3.Schema{Type: &openapi3.Types{"integer"}, Format: "int32"}},
				"data":    &openapi3.SchemaRef{Value: &openapi3.Schema{Description: "Payload on success, empty string otherwise."}},
				"message": &openapi3.SchemaRef{Value: &openapi3.Schema{Type: &openapi3.Types{"string"}}},
				"error":   &openapi3.SchemaRef{Value: &openapi3.Schema{Description: "Error description or field-to-reason map, empty string on success."}},
			},
			Required: []string{"status", "data", "message", "error"},
		},
	}

	doc.Components.Schemas["UserSummary"] = objectSchema(map[string]string{
		"name":  "string",
		"email": "string",
	})
	doc.Components.Schemas["UserDetail"] = objectSchema(map[string]string{
		"name":    "string",
		"email":   "string",
		"country": "string",
		"city":    "string",
		"company": "string",
	})
	doc.Components.Schemas["UserProfile"] = objectSchema(map[string]string{
		"name":    "string",
		"email":   "string",
		"gender":  "string",
		"country": "string",
		"city":    "string",
		"company": "string",
		"age":     "integer",
	})
	doc.Components.Schemas["User"] = objectSchema(map[string]string{
		"id":      "string",
		"name":    "string",
		"email":   "string",
		"gender":  "string",
		"country": "string",
		"city":    "string",
		"company": "string",
		"age":     "integer",
	})
}

// addSessionPaths registers the unauthenticated session lifecycle endpoints.
func addSessionPaths(doc *openapi3.T) {
	doc.Paths.Set("/api/v1/admin/signup", &openapi3.PathItem{
		Post: &openapi3.Operation{
			Tags:        []string{"session"},
			Summary:     "Register a new admin",
			OperationID: "admin_signup",
			RequestBody: jsonRequestBody("Admin registration details", map[string]string{
				"name":     "string",
				"email":    "string",
				"gender":   "string",
				"password": "string",
			}, []string{"name", "email", "gender", "password"}),
			Responses: envelopeResponses("New admin id wrapped in the envelope"),
		},
	})

	doc.Paths.Set("/api/v1/admin/login", &openapi3.PathItem{
		Post: &openapi3.Operation{
			Tags:        []string{"session"},
			Summary:     "Log in and receive a session token",
			OperationID: "admin_login",
			RequestBody: jsonRequestBody("Admin credentials", map[string]string{
				"email":    "string",
				"password": "string",
			}, []string{"email", "password"}),
			Responses: envelopeResponses("Signed session token wrapped in the envelope"),
		},
	})

	doc.Paths.Set("/api/v1/admin/logout", &openapi3.PathItem{
		Post: &openapi3.Operation{
			Tags:        []string{"session"},
			Summary:     "Log out, clearing the stored session",
			OperationID: "admin_logout",
			RequestBody: jsonRequestBody("The session token to clear", map[string]string{
				"token": "string",
			}, []string{"token"}),
			Responses: envelopeResponses("Empty data wrapped in the envelope"),
		},
	})
}

// addDirectoryPaths registers the authenticated user directory endpoints.
func addDirectoryPaths(doc *openapi3.T) {
	auth := openapi3.SecurityRequirements{{"bearerAuth": {}}}

	doc.Paths.Set("/api/v1/users", &openapi3.PathItem{
		Get: &openapi3.Operation{
			Tags:        []string{"directory"},
			Summary:     "List users, 20 per page",
			OperationID: "list_users",
			Security:    &auth,
			Parameters: openapi3.Parameters{
				&openapi3.ParameterRef{
					Value: openapi3.NewQueryParameter("page").
						WithDescription("1-based page number. Defaults to 1.").
						WithSchema(&openapi3.Schema{Type: &openapi3.Types{"integer"}, Format: "int32"}),
				},
			},
			Responses: envelopeResponses("Array of UserSummary wrapped in the envelope"),
		},
	})

	doc.Paths.Set("/api/v1/users/{id}", &openapi3.PathItem{
		Get: &openapi3.Operation{
			Tags:        []string{"directory"},
			Summary:     "Get one user's detail view",
			OperationID: "get_user",
			Security:    &auth,
			Parameters: openapi3.Parameters{
				&openapi3.ParameterRef{
					Value: openapi3.NewPathParameter("id").
						WithDescription("User id.").
						WithSchema(openapi3.NewStringSchema()),
				},
			},
			Responses: envelopeResponses("UserDetail wrapped in the envelope"),
		},
	})

	doc.Paths.Set("/api/v1/users/filter", &openapi3.PathItem{
		Get: &openapi3.Operation{
			Tags:        []string{"directory"},
			Summary:     "Filter users by country and city",
			OperationID: "filter_users",
			Security:    &auth,
			Parameters: openapi3.Parameters{
				&openapi3.ParameterRef{
					Value: openapi3.NewQueryParameter("country").
						WithDescription("Case-insensitive country fragment. Omit to match all countries.").
						WithSchema(openapi3.NewStringSchema()),
				},
				&openapi3.ParameterRef{
					Value: openapi3.NewQueryParameter("city").
						WithDescription("Case-insensitive city fragment. Omit to match all cities.").
						WithSchema(openapi3.NewStringSchema()),
				},
			},
			Responses: envelopeResponses("Array of User wrapped in the envelope"),
		},
	})

	doc.Paths.Set("/api/v1/users/search/{query}", &openapi3.PathItem{
		Get: &openapi3.Operation{
			Tags:        []string{"directory"},
			Summary:     "Search users by name or email",
			OperationID: "search_users",
			Security:    &auth,
			Parameters: openapi3.Parameters{
				&openapi3.ParameterRef{
					Value: openapi3.NewPathParameter("query").
						WithDescription("Case-insensitive fragment matched against name and email.").
						WithSchema(openapi3.NewStringSchema()),
				},
			},
			Responses: envelopeResponses("Array of UserProfile wrapped in the envelope"),
		},
	})
}

// addSystemPaths registers the unauthenticated health probes.
func addSystemPaths(doc *openapi3.T) {
	probeSchema := &openapi3.SchemaRef{
		Value: &openapi3.Schema{
			Type: &openapi3.Types{"object"},
			Properties: openapi3.Schemas{
				"status": &openapi3.SchemaRef{Value: &openapi3.Schema{Type: &openapi3.Types{"string"}}},
			},
		},
	}

	doc.Paths.Set("/healthz", &openapi3.PathItem{
		Get: &openapi3.Operation{
			Tags:        []string{"system"},
			Summary:     "Liveness probe",
			OperationID: "healthz",
			Responses:   plainResponses("Process is running", probeSchema),
		},
	})
	doc.Paths.Set("/readyz", &openapi3.PathItem{
		Get: &openapi3.Operation{
			Tags:        []string{"system"},
			Summary:     "Readiness probe",
			OperationID: "readyz",
			Responses:   plainResponses("Backing database is reachable", probeSchema),
		},
	})
}

// objectSchema builds a flat object schema from a property-name to type map.
func objectSchema(props map[string]string) *openapi3.SchemaRef {
	schemas := openapi3.Schemas{}
	for name, typ := range props {
		schemas[name] = &openapi3.SchemaRef{Value: &openapi3.Schema{Type: &openapi3.Types{typ}}}
	}
	return &openapi3.SchemaRef{
		Value: &openapi3.Schema{
			Type:       &openapi3.Types{"object"},
			Properties: schemas,
		},
	}
}

// jsonRequestBody builds a required JSON request body from a flat property map.
func jsonRequestBody(description string, props map[string]string, required []string) *openapi3.RequestBodyRef {
	ref := objectSchema(props)
	ref.Value.Required = required
	return &openapi3.RequestBodyRef{
		Value: &openapi3.RequestBody{
			Description: description,
			Required:    true,
			Content:     openapi3.NewContentWithJSONSchemaRef(ref),
		},
	}
}

// envelopeResponses builds the standard response set for an envelope-carrying
// endpoint: 200 plus the 400/401/500 error shapes, all using the Envelope
// component schema.
func envelopeResponses(description string) *openapi3.Responses {
	responses := openapi3.NewResponses()
	envRef := openapi3.NewSchemaRef("#/components/schemas/Envelope", nil)

	okDesc := description
	responses.Set("200", &openapi3.ResponseRef{
		Value: &openapi3.Response{
			Description: &okDesc,
			Content:     openapi3.NewContentWithJSONSchemaRef(envRef),
		},
	})

	badReqDesc := "Validation failure or domain error"
	responses.Set("400", &openapi3.ResponseRef{
		Value: &openapi3.Response{
			Description: &badReqDesc,
			Content:     openapi3.NewContentWithJSONSchemaRef(envRef),
		},
	})

	unauthDesc := "Missing, invalid, or logged-out session token"
	responses.Set("401", &openapi3.ResponseRef{
		Value: &openapi3.Response{
			Description: &unauthDesc,
			Content:     openapi3.NewContentWithJSONSchemaRef(envRef),
		},
	})

	serverErrDesc := "Internal server error"
	responses.Set("500", &openapi3.ResponseRef{
		Value: &openapi3.Response{
			Description: &serverErrDesc,
			Content:     openapi3.NewContentWithJSONSchemaRef(envRef),
		},
	})

	return responses
}

// plainResponses builds a single-success response set for non-envelope
// endpoints like the health probes.
func plainResponses(description string, schema *openapi3.SchemaRef) *openapi3.Responses {
	responses := openapi3.NewResponses()
	desc := description
	responses.Set("200", &openapi3.ResponseRef{
		Value: &openapi3.Response{
			Description: &desc,
			Content:     openapi3.NewContentWithJSONSchemaRef(schema),
		},
	})
	return responses
}
