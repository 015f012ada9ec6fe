package categories

import "github.com/JaimeStill/storefront/pkg/openapi"

type spec struct {
	List   *openapi.Operation
	Find   *openapi.Operation
	Search *openapi.Operation
	Create *openapi.Operation
	Update *openapi.Operation
	Delete *openapi.Operation
}

// Spec contains OpenAPI operation definitions for all category endpoints.
var Spec = spec{
	List: &openapi.Operation{
		OperationID: "listCategories",
		Summary:     "List categories",
		Description: "Returns a paginated list of categories with optional filtering and sorting",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number (1-indexed)", false),
			openapi.QueryParam("page_size", "integer", "Results per page", false),
			openapi.QueryParam("search", "string", "Search query (matches name)", false),
			openapi.QueryParam("sort", "string", "Comma-separated sort fields. Prefix with - for descending", false),
			openapi.QueryParam("name", "string", "Filter by category name (contains)", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Paginated list of categories", "CategoryPageResult"),
		},
	},
	Find: &openapi.Operation{
		OperationID: "findCategory",
		Summary:     "Get category by ID",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Category UUID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Category", "Category"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Search: &openapi.Operation{
		OperationID: "searchCategories",
		Summary:     "Search categories",
		Description: "Search categories with filters and pagination via POST body",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("name", "string", "Filter by category name (contains)", false),
		},
		RequestBody: openapi.RequestBodyJSON("PageRequest", false),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Paginated search results", "CategoryPageResult"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Create: &openapi.Operation{
		OperationID: "createCategory",
		Summary:     "Create category",
		RequestBody: openapi.RequestBodyJSON("CategoryCommand", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Category created", "Category"),
			400: openapi.ResponseRef("BadRequest"),
			409: openapi.ResponseRef("Conflict"),
			422: openapi.ResponseRef("UnprocessableEntity"),
		},
	},
	Update: &openapi.Operation{
		OperationID: "updateCategory",
		Summary:     "Rename category",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Category UUID"),
		},
		RequestBody: openapi.RequestBodyJSON("CategoryCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Category updated", "Category"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
			422: openapi.ResponseRef("UnprocessableEntity"),
		},
	},
	Delete: &openapi.Operation{
		OperationID: "deleteCategory",
		Summary:     "Delete category",
		Description: "Fails with 409 while any product still references the category",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Category UUID"),
		},
		Responses: map[int]*openapi.Response{
			204: {Description: "Category deleted"},
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
}

// Schemas returns the category domain schemas for OpenAPI components.
func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Category": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"id":         {Type: "string", Format: "uuid"},
				"name":       {Type: "string", Example: "Computadores"},
				"created_at": {Type: "string", Format: "date-time"},
				"updated_at": {Type: "string", Format: "date-time"},
			},
		},
		"CategoryCommand": {
			Type:     "object",
			Required: []string{"name"},
			Properties: map[string]*openapi.Property{
				"name": {Type: "string", MinLength: openapi.Length(1), MaxLength: openapi.Length(MaxNameLength)},
			},
		},
		"CategoryPageResult": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"data":        {Type: "array", Items: openapi.SchemaRef("Category")},
				"total":       {Type: "integer", Description: "Total number of results"},
				"page":        {Type: "integer", Description: "Current page number"},
				"page_size":   {Type: "integer", Description: "Results per page"},
				"total_pages": {Type: "integer", Description: "Total number of pages"},
				"first":       {Type: "boolean", Description: "Whether this is the first page"},
				"last":        {Type: "boolean", Description: "Whether this is the last page"},
			},
		},
	}
}
