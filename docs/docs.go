// Package docs registers the OpenAPI description served at /swagger/.
// The document is maintained by hand; keep it in sync with the routes
// in internal/adapters/handler/http.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "JWT prefixed with \"Bearer \""
        }
    },
    "paths": {
        "/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Create an account",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {
                    "type": "object",
                    "required": ["email", "password"],
                    "properties": {
                        "name": {"type": "string"},
                        "email": {"type": "string"},
                        "password": {"type": "string", "minLength": 8}
                    }
                }}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/User"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/Error"}},
                    "409": {"description": "Email already registered", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Exchange credentials for a JWT",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {
                    "type": "object",
                    "required": ["email", "password"],
                    "properties": {
                        "email": {"type": "string"},
                        "password": {"type": "string"}
                    }
                }}],
                "responses": {
                    "200": {"description": "OK", "schema": {
                        "type": "object",
                        "properties": {
                            "token": {"type": "string"},
                            "user": {"$ref": "#/definitions/User"}
                        }
                    }},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/stats": {
            "get": {
                "tags": ["stats"],
                "security": [{"BearerAuth": []}],
                "summary": "Score the trailing N-day window",
                "parameters": [{"name": "window", "in": "query", "type": "integer", "default": 14, "minimum": 7, "maximum": 30}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/PeriodSummary"}},
                    "400": {"description": "Window out of range", "schema": {"$ref": "#/definitions/Error"}},
                    "401": {"description": "Missing identity", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/tasks": {
            "post": {
                "tags": ["tasks"],
                "security": [{"BearerAuth": []}],
                "summary": "Create a task for a day",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Validation error"}}
            },
            "get": {
                "tags": ["tasks"],
                "security": [{"BearerAuth": []}],
                "summary": "List tasks, optionally by day",
                "parameters": [{"name": "date", "in": "query", "type": "string", "format": "YYYY-MM-DD"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/tasks/{id}": {
            "patch": {
                "tags": ["tasks"],
                "security": [{"BearerAuth": []}],
                "summary": "Toggle completion (awards XP on the first completion)",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "delete": {
                "tags": ["tasks"],
                "security": [{"BearerAuth": []}],
                "summary": "Delete a task",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found"}}
            }
        },
        "/habits": {
            "post": {
                "tags": ["habits"],
                "security": [{"BearerAuth": []}],
                "summary": "Create a habit",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Validation error"}}
            },
            "get": {
                "tags": ["habits"],
                "security": [{"BearerAuth": []}],
                "summary": "List habits with streak counters",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/habits/{id}/log": {
            "post": {
                "tags": ["habits"],
                "security": [{"BearerAuth": []}],
                "summary": "Toggle a day's completion log",
                "description": "completed=true records the day (XP awarded once per day), completed=false removes it.",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "Toggled"}, "404": {"description": "Not found"}}
            }
        },
        "/habits/{id}": {
            "delete": {
                "tags": ["habits"],
                "security": [{"BearerAuth": []}],
                "summary": "Delete a habit and its logs",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found"}}
            }
        },
        "/routines": {
            "post": {
                "tags": ["routines"],
                "security": [{"BearerAuth": []}],
                "summary": "Create a routine",
                "responses": {"201": {"description": "Created"}}
            },
            "get": {
                "tags": ["routines"],
                "security": [{"BearerAuth": []}],
                "summary": "List routines",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/routines/{id}/log": {
            "patch": {
                "tags": ["routines"],
                "security": [{"BearerAuth": []}],
                "summary": "Toggle a day's completion log",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "Toggled"}, "404": {"description": "Not found"}}
            }
        },
        "/routines/{id}": {
            "delete": {
                "tags": ["routines"],
                "security": [{"BearerAuth": []}],
                "summary": "Delete a routine and its logs",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found"}}
            }
        },
        "/mood": {
            "post": {
                "tags": ["mood"],
                "security": [{"BearerAuth": []}],
                "summary": "Record the day's mood (replaces an earlier entry)",
                "responses": {"201": {"description": "Recorded"}}
            },
            "get": {
                "tags": ["mood"],
                "security": [{"BearerAuth": []}],
                "summary": "List recent moods, newest first",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/badges": {
            "get": {
                "tags": ["badges"],
                "security": [{"BearerAuth": []}],
                "summary": "Badge catalog with earned markers",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/me": {
            "get": {
                "tags": ["user"],
                "security": [{"BearerAuth": []}],
                "summary": "Current user profile and XP state",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/User"}}}
            },
            "patch": {
                "tags": ["user"],
                "security": [{"BearerAuth": []}],
                "summary": "Update name or avatar",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/User"}}}
            }
        },
        "/health": {
            "get": {
                "tags": ["ops"],
                "summary": "Liveness of the API and its backing services",
                "responses": {"200": {"description": "Healthy"}, "503": {"description": "Database unreachable"}}
            }
        }
    },
    "definitions": {
        "Error": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "xp": {"type": "integer"},
                "level": {"type": "integer"}
            }
        },
        "DailyStat": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "label": {"type": "string"},
                "percentage": {"type": "integer"}
            }
        },
        "PeriodSummary": {
            "type": "object",
            "properties": {
                "todayProgress": {"type": "integer"},
                "thisWeekProgress": {"type": "integer"},
                "lastWeekProgress": {"type": "integer"},
                "periodAverage": {"type": "integer"},
                "totalXp": {"type": "integer"},
                "currentXp": {"type": "integer"},
                "level": {"type": "integer"},
                "streak": {"type": "integer"},
                "history": {"type": "array", "items": {"$ref": "#/definitions/DailyStat"}},
                "insight": {"type": "string"},
                "tips": {"type": "array", "items": {"type": "string"}},
                "bestDay": {"type": "string"},
                "worstDay": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo fills the template placeholders at serve time.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "FocusFlow Engine API",
	Description:      "Daily performance scoring over tasks, habits and routines.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
