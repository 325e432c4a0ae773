// Package docs registers the bookshelf OpenAPI document with swag.
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
        "/books": {
            "get": {
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "List books",
                "parameters": [
                    {"type": "string", "description": "case-insensitive substring of the name", "name": "name", "in": "query"},
                    {"type": "string", "enum": ["0", "1"], "name": "reading", "in": "query"},
                    {"type": "string", "enum": ["0", "1"], "name": "finished", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "Add a book",
                "parameters": [
                    {"name": "book", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.BookInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response"}}
                }
            }
        },
        "/books/{bookId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "Get a book",
                "parameters": [
                    {"type": "string", "name": "bookId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "Update a book",
                "parameters": [
                    {"type": "string", "name": "bookId", "in": "path", "required": true},
                    {"name": "book", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.BookInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "Delete a book",
                "parameters": [
                    {"type": "string", "name": "bookId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response"}}
                }
            }
        }
    },
    "definitions": {
        "model.BookInput": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "year": {"type": "integer"},
                "author": {"type": "string"},
                "summary": {"type": "string"},
                "publisher": {"type": "string"},
                "pageCount": {"type": "integer", "minimum": 0},
                "readPage": {"type": "integer", "minimum": 0},
                "reading": {"type": "boolean"}
            }
        },
        "response": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["success", "fail", "error"]},
                "message": {"type": "string"},
                "data": {"type": "object"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Bookshelf API",
	Description:      "In-memory book collection service.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
