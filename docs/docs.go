// Package docs holds the swagger spec served at /swagger-doc.json.
// Regenerate with: swag init -g cmd/api/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/employees": {
            "get": {
                "produces": ["application/json"],
                "tags": ["employees"],
                "summary": "List all employees",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListEmployeesResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["employees"],
                "summary": "Create an employee",
                "parameters": [{"description": "Employee body", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateEmployeeRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.EmployeeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "409": {"description": "Conflict", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/employees/deleteAll": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["employees"],
                "summary": "Delete all employees",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DeleteAllResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/employees/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["employees"],
                "summary": "Get an employee by name",
                "parameters": [{"type": "string", "description": "Employee name", "name": "name", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.EmployeeResponse"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["employees"],
                "summary": "Update an employee",
                "parameters": [
                    {"type": "string", "description": "Employee name", "name": "name", "in": "path", "required": true},
                    {"description": "Partial update", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateEmployeeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.EmployeeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "409": {"description": "Conflict", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["employees"],
                "summary": "Delete an employee",
                "parameters": [{"type": "string", "description": "Employee name", "name": "name", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DeleteEmployeeResponse"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/todos": {
            "get": {
                "produces": ["application/json"],
                "tags": ["todos"],
                "summary": "List all todos",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListTodosResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["todos"],
                "summary": "Create a todo",
                "parameters": [{"description": "Todo body", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateTodoRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.TodoResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/todos/deleteAll": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["todos"],
                "summary": "Delete all todos",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DeleteAllResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/todos/{todo_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["todos"],
                "summary": "Get a todo by ID",
                "parameters": [{"type": "string", "description": "Todo ID", "name": "todo_id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TodoResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["todos"],
                "summary": "Update a todo",
                "parameters": [
                    {"type": "string", "description": "Todo ID", "name": "todo_id", "in": "path", "required": true},
                    {"description": "Partial update", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateTodoRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TodoResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["todos"],
                "summary": "Delete a todo",
                "parameters": [{"type": "string", "description": "Todo ID", "name": "todo_id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DeleteTodoResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "dto.CreateEmployeeRequest": {
            "type": "object",
            "required": ["age", "gender", "name", "surname"],
            "properties": {
                "age": {"type": "integer", "minimum": 0, "maximum": 150},
                "gender": {"type": "string", "enum": ["male", "female", "other"]},
                "name": {"type": "string", "minLength": 1, "maxLength": 120},
                "surname": {"type": "string", "minLength": 1, "maxLength": 120}
            }
        },
        "dto.UpdateEmployeeRequest": {
            "type": "object",
            "properties": {
                "age": {"type": "integer", "minimum": 0, "maximum": 150},
                "gender": {"type": "string", "enum": ["male", "female", "other"]},
                "name": {"type": "string", "minLength": 1, "maxLength": 120},
                "surname": {"type": "string", "minLength": 1, "maxLength": 120}
            }
        },
        "dto.EmployeeResponse": {
            "type": "object",
            "properties": {
                "age": {"type": "integer"},
                "gender": {"type": "string"},
                "name": {"type": "string"},
                "surname": {"type": "string"}
            }
        },
        "dto.ListEmployeesResponse": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/dto.EmployeeResponse"}}
            }
        },
        "dto.DeleteEmployeeResponse": {
            "type": "object",
            "properties": {"deleted": {"type": "string"}}
        },
        "dto.DeleteAllResponse": {
            "type": "object",
            "properties": {"deleted_count": {"type": "integer"}}
        },
        "dto.CreateTodoRequest": {
            "type": "object",
            "required": ["description", "title"],
            "properties": {
                "description": {"type": "string", "maxLength": 1000},
                "priority": {"type": "string", "enum": ["low", "medium", "high"]},
                "status": {"type": "string", "enum": ["pending", "in_progress", "completed"]},
                "title": {"type": "string", "minLength": 1, "maxLength": 200}
            }
        },
        "dto.UpdateTodoRequest": {
            "type": "object",
            "properties": {
                "description": {"type": "string", "maxLength": 1000},
                "priority": {"type": "string", "enum": ["low", "medium", "high"]},
                "status": {"type": "string", "enum": ["pending", "in_progress", "completed"]},
                "title": {"type": "string", "minLength": 1, "maxLength": 200}
            }
        },
        "dto.TodoResponse": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "string"},
                "priority": {"type": "string"},
                "status": {"type": "string"},
                "title": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "dto.ListTodosResponse": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/dto.TodoResponse"}}
            }
        },
        "dto.DeleteTodoResponse": {
            "type": "object",
            "properties": {"deleted": {"type": "string"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Dashboard API",
	Description:      "Employee and todo CRUD over MongoDB, with a websocket chat.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
