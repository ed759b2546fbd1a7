// Package docs holds the Swagger document served at /swagger, kept in the
// layout swag expects and registered with swag on import.
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
        "/auth/login": {
            "post": {
                "description": "Validates the sign-in form and confirms with a notification",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign in",
                "parameters": [
                    {
                        "description": "Sign-in form",
                        "name": "credentials",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        },
        "/auth/register": {
            "post": {
                "description": "Validates the create-account form. Password and confirmation must match.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Create an account",
                "parameters": [
                    {
                        "description": "Create-account form",
                        "name": "account",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.RegisterRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        },
        "/seller/products": {
            "post": {
                "description": "Multipart form. Up to five images are kept; non-images and oversized files are dropped.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["seller"],
                "summary": "List a product for sale",
                "parameters": [
                    {"type": "string", "description": "Product name", "name": "name", "in": "formData", "required": true},
                    {
                        "enum": ["Electronics", "Accessories", "Home & Office", "Fashion", "Sports", "Books"],
                        "type": "string",
                        "description": "Category",
                        "name": "category",
                        "in": "formData",
                        "required": true
                    },
                    {"type": "number", "description": "Price", "name": "price", "in": "formData", "required": true},
                    {"type": "string", "description": "Description", "name": "description", "in": "formData", "required": true},
                    {
                        "type": "array",
                        "items": {"type": "string"},
                        "collectionFormat": "multi",
                        "description": "Feature bullet points",
                        "name": "features",
                        "in": "formData"
                    },
                    {"type": "file", "description": "Product images (first is the main image)", "name": "images", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        },
        "/store/categories": {
            "get": {
                "description": "Categories present in the catalog (first-seen order) and the labels offered by the listing form",
                "produces": ["application/json"],
                "tags": ["store"],
                "summary": "Get categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        },
        "/store/filters/metadata": {
            "get": {
                "description": "Returns categories, price range and sort keys for storefront filters",
                "produces": ["application/json"],
                "tags": ["store"],
                "summary": "Get all filter metadata",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        },
        "/store/home": {
            "get": {
                "description": "Featured products (catalog order) and the top rated products",
                "produces": ["application/json"],
                "tags": ["store"],
                "summary": "Get the storefront landing page",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        },
        "/store/products": {
            "get": {
                "description": "Filters by free text, categories and an inclusive price range, then sorts. No pagination.",
                "produces": ["application/json"],
                "tags": ["store"],
                "summary": "Search the catalog",
                "parameters": [
                    {"type": "string", "description": "Free text, matched case-insensitively against name, description and category", "name": "q", "in": "query"},
                    {
                        "type": "array",
                        "items": {"type": "string"},
                        "collectionFormat": "multi",
                        "description": "Category labels (repeatable)",
                        "name": "category",
                        "in": "query"
                    },
                    {"type": "number", "description": "Inclusive lower price bound", "name": "minPrice", "in": "query"},
                    {"type": "number", "description": "Inclusive upper price bound", "name": "maxPrice", "in": "query"},
                    {
                        "enum": ["relevance", "price-low", "price-high", "rating", "reviews"],
                        "type": "string",
                        "description": "Sort key",
                        "name": "sortBy",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        },
        "/store/products/{id}": {
            "get": {
                "description": "Product details plus the reviews visible in the caller's session, newest first",
                "produces": ["application/json"],
                "tags": ["store"],
                "summary": "Get single product details for storefront",
                "parameters": [
                    {"type": "string", "description": "Product ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        },
        "/store/products/{id}/cart": {
            "post": {
                "description": "Confirms with a notification. No cart state is kept.",
                "produces": ["application/json"],
                "tags": ["store"],
                "summary": "Add a product to the cart",
                "parameters": [
                    {"type": "string", "description": "Product ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        },
        "/store/products/{id}/reviews": {
            "get": {
                "description": "Seed reviews plus those submitted in this session, newest first",
                "produces": ["application/json"],
                "tags": ["reviews"],
                "summary": "List reviews for a product",
                "parameters": [
                    {"type": "string", "description": "Product ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            },
            "post": {
                "description": "Adds a review to the caller's session. Ratings outside 1..5 are clamped; a missing rating counts as 5.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reviews"],
                "summary": "Submit a review",
                "parameters": [
                    {"type": "string", "description": "Product ID", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Review",
                        "name": "review",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.ReviewRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.ApiResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"type": "boolean"},
                "message": {"type": "string"},
                "meta": {"$ref": "#/definitions/models.ResultMeta"},
                "notification": {"$ref": "#/definitions/models.Notification"},
                "rate_limit": {"$ref": "#/definitions/models.RateLimiter"},
                "requested_entity": {"type": "string"}
            }
        },
        "models.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string", "example": "shopper@example.com"},
                "password": {"type": "string", "example": "secret"}
            }
        },
        "models.Notification": {
            "type": "object",
            "properties": {
                "description": {"type": "string", "example": "Thank you for your feedback."},
                "title": {"type": "string", "example": "Review Submitted!"},
                "variant": {"type": "string", "example": "default"}
            }
        },
        "models.RateLimiter": {
            "type": "object",
            "properties": {
                "limit": {"type": "integer"},
                "remaining": {"type": "integer"},
                "reset_at": {"type": "string"},
                "reset_in_seconds": {"type": "integer"}
            }
        },
        "models.RegisterRequest": {
            "type": "object",
            "required": ["confirmPassword", "email", "name", "password"],
            "properties": {
                "confirmPassword": {"type": "string", "example": "secret"},
                "email": {"type": "string", "example": "shopper@example.com"},
                "name": {"type": "string", "example": "Sam Shopper"},
                "password": {"type": "string", "example": "secret"}
            }
        },
        "models.ResultMeta": {
            "type": "object",
            "properties": {
                "total": {"type": "integer", "example": 6}
            }
        },
        "models.ReviewRequest": {
            "type": "object",
            "properties": {
                "comment": {"type": "string", "example": "Great product"},
                "rating": {"type": "integer", "example": 5}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8081",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "MarketPlace Storefront API",
	Description:      "Catalog search, session reviews and storefront forms",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
