// Package docs registers the OpenAPI document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/products": {
            "get": {
                "description": "Filters, searches, sorts and paginates the catalog. Malformed values fall back to defaults instead of failing.",
                "produces": ["application/json"],
                "tags": ["Products"],
                "summary": "List products",
                "parameters": [
                    {"type": "integer", "description": "Page number, starting at 1 (default: 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size, clamped to 1..100 (default: 50)", "name": "size", "in": "query"},
                    {"type": "string", "description": "Sort key, see /products/sort-keys (default: id)", "name": "sortBy", "in": "query"},
                    {"type": "string", "description": "ascending or descending (default: ascending)", "name": "sortOrder", "in": "query"},
                    {"type": "number", "description": "Inclusive lower price bound", "name": "minPrice", "in": "query"},
                    {"type": "number", "description": "Inclusive upper price bound", "name": "maxPrice", "in": "query"},
                    {"type": "string", "description": "Case-insensitive name substring", "name": "name", "in": "query"},
                    {"type": "string", "description": "Exact, case-sensitive SKU", "name": "sku", "in": "query"},
                    {"type": "string", "description": "Name or SKU substring; true/false filters on availability", "name": "searchTerm", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.listResp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "post": {
                "description": "Creates a new catalog item. SKUs are unique and case-sensitive.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Products"],
                "summary": "Create a product",
                "parameters": [
                    {"description": "Item data", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.createReq"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.itemEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "409": {"description": "Conflict - sku already exists", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/products/sort-keys": {
            "get": {
                "description": "Returns the attribute names accepted by sortBy and the accepted sortOrder values.",
                "produces": ["application/json"],
                "tags": ["Products"],
                "summary": "List sort keys",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.sortKeysResp"}}
                }
            }
        },
        "/api/v1/products/{id}": {
            "get": {
                "description": "Returns a single item by its ID.",
                "produces": ["application/json"],
                "tags": ["Products"],
                "summary": "Get product detail",
                "parameters": [
                    {"type": "integer", "description": "Item ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.itemEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "put": {
                "description": "Updates an existing item. All fields are optional (partial update).",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Products"],
                "summary": "Update a product",
                "parameters": [
                    {"type": "integer", "description": "Item ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to update", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.updateReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.itemEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "409": {"description": "Conflict - sku already exists", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "delete": {
                "description": "Permanently removes an item by ID.",
                "produces": ["application/json"],
                "tags": ["Products"],
                "summary": "Delete a product",
                "parameters": [
                    {"type": "integer", "description": "Item ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check if the API is healthy",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/live": {
            "get": {
                "description": "Check if the API is alive",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "API is alive", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/ready": {
            "get": {
                "description": "Check if the API is ready to serve traffic",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {"description": "API is ready", "schema": {"type": "object", "additionalProperties": true}},
                    "503": {"description": "Storage unavailable", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        }
    },
    "definitions": {
        "http.createReq": {
            "type": "object",
            "required": ["name", "sku"],
            "properties": {
                "description": {"type": "string", "maxLength": 1000},
                "is_available": {"type": "boolean"},
                "name": {"type": "string", "maxLength": 255, "minLength": 1},
                "price": {"type": "number", "minimum": 0},
                "sku": {"type": "string", "maxLength": 64, "minLength": 1}
            }
        },
        "http.updateReq": {
            "type": "object",
            "properties": {
                "description": {"type": "string", "maxLength": 1000},
                "is_available": {"type": "boolean"},
                "name": {"type": "string", "maxLength": 255, "minLength": 1},
                "price": {"type": "number", "minimum": 0},
                "sku": {"type": "string", "maxLength": 64, "minLength": 1}
            }
        },
        "http.itemResp": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "integer"},
                "is_available": {"type": "boolean"},
                "name": {"type": "string"},
                "price": {"type": "number"},
                "sku": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "http.itemEnvelope": {
            "type": "object",
            "properties": {
                "item": {"$ref": "#/definitions/http.itemResp"}
            }
        },
        "http.listResp": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/http.itemResp"}},
                "page": {"type": "integer"},
                "size": {"type": "integer"},
                "total": {"type": "integer"},
                "total_pages": {"type": "integer"}
            }
        },
        "http.sortKeysResp": {
            "type": "object",
            "properties": {
                "sort_keys": {"type": "array", "items": {"type": "string"}},
                "sort_orders": {"type": "array", "items": {"type": "string"}}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "data": {},
                "error_code": {"type": "integer"},
                "errors": {},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Product Catalog API",
	Description:      "Catalog service with filtering, search, dynamic sorting and pagination over products.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
