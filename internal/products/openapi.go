package products

import "github.com/JaimeStill/storefront/pkg/openapi"

type spec struct {
	List   *openapi.Operation
	Find   *openapi.Operation
	Search *openapi.Operation
	Create *openapi.Operation
	Update *openapi.Operation
	Delete *openapi.Operation
}

var filterParams = []*openapi.Parameter{
	openapi.QueryParam("name", "string", "Filter by product name (contains)", false),
	openapi.QueryParam("category", "string", "Filter by category UUID", false),
}

// Spec contains OpenAPI operation definitions for all product endpoints.
var Spec = spec{
	List: &openapi.Operation{
		OperationID: "listProducts",
		Summary:     "List products",
		Description: "Returns a paginated list of products sorted by name unless sort is given. Pages past the end are empty.",
		Parameters: append([]*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number (1-indexed)", false),
			openapi.QueryParam("page_size", "integer", "Results per page", false),
			openapi.QueryParam("search", "string", "Search query (matches name and description)", false),
			openapi.QueryParam("sort", "string", "Comma-separated sort fields, e.g. name,-price", false),
		}, filterParams...),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Paginated list of products", "ProductPageResult"),
		},
	},
	Find: &openapi.Operation{
		OperationID: "findProduct",
		Summary:     "Get product by ID",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Product UUID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Product with categories", "Product"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Search: &openapi.Operation{
		OperationID: "searchProducts",
		Summary:     "Search products",
		Description: "Search products with filters and pagination via POST body",
		Parameters:  filterParams,
		RequestBody: openapi.RequestBodyJSON("PageRequest", false),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Paginated search results", "ProductPageResult"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Create: &openapi.Operation{
		OperationID: "createProduct",
		Summary:     "Create product",
		RequestBody: openapi.RequestBodyJSON("ProductCommand", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Product created", "Product"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
			422: openapi.ResponseRef("UnprocessableEntity"),
		},
	},
	Update: &openapi.Operation{
		OperationID: "updateProduct",
		Summary:     "Update product",
		Description: "Replaces the product fields and its category associations",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Product UUID"),
		},
		RequestBody: openapi.RequestBodyJSON("ProductCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Product updated", "Product"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
			422: openapi.ResponseRef("UnprocessableEntity"),
		},
	},
	Delete: &openapi.Operation{
		OperationID: "deleteProduct",
		Summary:     "Delete product",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Product UUID"),
		},
		Responses: map[int]*openapi.Response{
			204: {Description: "Product deleted"},
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

// Schemas returns the product domain schemas for OpenAPI components.
func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Product": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"id":          {Type: "string", Format: "uuid"},
				"name":        {Type: "string", Example: "PC Gamer"},
				"description": {Type: "string"},
				"price":       {Type: "number", Format: "double", Example: 1200.0},
				"img_url":     {Type: "string", Format: "uri"},
				"date":        {Type: "string", Format: "date-time"},
				"categories":  {Type: "array", Items: openapi.SchemaRef("Category")},
				"created_at":  {Type: "string", Format: "date-time"},
				"updated_at":  {Type: "string", Format: "date-time"},
			},
		},
		"ProductCommand": {
			Type:     "object",
			Required: []string{"name", "price", "date"},
			Properties: map[string]*openapi.Property{
				"name":         {Type: "string", MinLength: openapi.Length(MinNameLength), MaxLength: openapi.Length(MaxNameLength)},
				"description":  {Type: "string"},
				"price":        {Type: "number", ExclusiveMinimum: openapi.ExclusiveMin(0)},
				"img_url":      {Type: "string"},
				"date":         {Type: "string", Format: "date-time", Description: "Must not be in the future"},
				"category_ids": {Type: "array", Items: &openapi.Schema{Type: "string", Format: "uuid"}},
			},
		},
		"ProductPageResult": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"data":        {Type: "array", Items: openapi.SchemaRef("Product")},
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
