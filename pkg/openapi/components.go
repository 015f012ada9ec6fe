package openapi

var errorSchema = &Schema{
	Type: "object",
	Properties: map[string]*Property{
		"error": {Type: "string", Description: "Error message"},
	},
	Required: []string{"error"},
}

// NewComponents returns the components shared by every domain: the paging
// request schema and the standard error responses.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"Error": errorSchema,
			"PageRequest": {
				Type: "object",
				Properties: map[string]*Property{
					"page":      {Type: "integer", Description: "1-based page number", Example: 1},
					"page_size": {Type: "integer", Description: "Items per page", Example: 12},
					"search":    {Type: "string", Description: "Case-insensitive search term"},
					"sort": {
						Type:        "array",
						Description: "Ordering terms",
						Items: &Schema{
							Type: "object",
							Properties: map[string]*Property{
								"field":      {Type: "string"},
								"descending": {Type: "boolean"},
							},
						},
					},
				},
			},
		},
		Responses: map[string]*Response{
			"BadRequest":          errorResponse("Malformed request"),
			"NotFound":            errorResponse("Resource not found"),
			"Conflict":            errorResponse("Database integrity violation"),
			"UnprocessableEntity": errorResponse("Validation failed"),
			"TooManyRequests":     errorResponse("Rate limit exceeded"),
		},
	}
}

// AddSchemas merges schemas into the components, replacing existing names.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	for name, schema := range schemas {
		c.Schemas[name] = schema
	}
}

// AddResponses merges responses into the components, replacing existing names.
func (c *Components) AddResponses(responses map[string]*Response) {
	for name, resp := range responses {
		c.Responses[name] = resp
	}
}

func errorResponse(desc string) *Response {
	return &Response{
		Description: desc,
		Content: map[string]*MediaType{
			"application/json": {Schema: SchemaRef("Error")},
		},
	}
}
