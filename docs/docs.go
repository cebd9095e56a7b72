// Package docs registers the OpenAPI description of the REST API with swag.
// It is served at /swagger/doc.json.
package docs

import "github.com/swaggo/swag"

const docTemplate = `
{
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
        "/auth/register": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Register a student",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "invalid input"
                    },
                    "409": {
                        "description": "email already registered"
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/RegisterRequest"
                        }
                    }
                ]
            }
        },
        "/auth/login": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Log in",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "invalid input"
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/LoginRequest"
                        }
                    }
                ]
            }
        },
        "/auth/logout": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Revoke the current token",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "204": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "invalid input"
                    },
                    "401": {
                        "description": "missing or invalid token"
                    },
                    "403": {
                        "description": "forbidden"
                    }
                },
                "description": "Roles: any",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/me": {
            "get": {
                "tags": [
                    "users"
                ],
                "summary": "Current profile",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "invalid input"
                    },
                    "401": {
                        "description": "missing or invalid token"
                    },
                    "403": {
                        "description": "forbidden"
                    }
                },
                "description": "Roles: any",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "put": {
                "tags": [
                    "users"
                ],
                "summary": "Update own profile",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "invalid input"
                    },
                    "401": {
                        "description": "missing or invalid token"
                    },
                    "403": {
                        "description": "forbidden"
                    }
                },
                "description": "Roles: any",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpdateProfileRequest"
                        }
                    }
                ]
            }
        },
        "/users": {
            "get": {
                "tags": [
                    "users"
                ],
                "summary": "List users",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "invalid input"
                    },
                    "401": {
                        "description": "missing or invalid token"
                    },
                    "403": {
                        "description": "forbidden"
                    }
                },
                "description": "Roles: admin, college_head, counsellor",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "in": "query",
                        "name": "role",
                        "type": "string",
                        "required": false
                    },
                    {
                        "in": "query",
                        "name": "college",
                        "type": "string",
                        "required": false
                    }
                ]
            },
            "post": {
                "tags": [
                    "users"
                ],
                "summary": "Create a user",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "invalid input"
                    },
                    "401": {
                        "description": "missing or invalid token"
                    },
                    "403": {
                        "description": "forbidden"
                    },
                    "409": {
                        "description": "email already registered"
                    }
                },
                "description": "Roles: admin",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreateUserRequest"
                        }
                    }
                ]
            }
        },
        "/users/{id}": {
            "get": {
                "tags": [
                    "users"
                ],
                "summary": "Get a user",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "invalid input"
                    },
                    "401": {
                        "description": "missing or invalid token"
                    },
                    "403": {
                        "description": "forbidden"
                    }
                },
                "description": "Roles: any",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "type": "string",
                        "required": true
                    }
                ]
            }
        },
        "/users/{id}/active": {
            "post": {
                "tags": [
                    "users"
                ],
                "summary": "Enable or disable an account",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "invalid input"
                    },
                    "401": {
                        "description": "missing or invalid token"
                    },
                    "403": {
                        "description": "forbidden"
                    }
                },
                "description": "Roles: admin",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "type": "string",
                        "required": true
                    }
                ]
            }
        },
        "/users/{id}/counsellor": {
            "post": {
                "tags": [
                    "users"
                ],
                "summary": "Assign a counsellor to a student",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "invalid input"
                    },
                    "401": {
                        "description": "missing or invalid token"
                    },
                    "403": {
                        "description": "forbidden"
                    }
                },
                "description": "Roles: admin, college_head",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "type": "string",
                        "required": true
                    }
                ]
            }
        },
        "/assessments": {
            "post": {
                "tags": [
                    "assessments"
                ],
                "summary": "Submit PHQ-9 and GAD-7 answers",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "invalid input"
                    },
                    "401": {
                        "description": "missing or invalid token"
                    },
                    "403": {
                        "description": "forbidden"
                    },
                    "422": {
                        "description": "incomplete assessment"
                    }
                },
                "description": "Roles: student",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/AssessmentResponse"
                        }
                    }
                ]
            },
            "get": {
                "tags": [
                    "assessments"
                ],
                "summary": "Assessment history",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "invalid input"
                    },
                    "401": {
                        "description": "missing or invalid token"
                    },
                    "403": {
                        "description": "forbidden"
                    }
                },
                "description": "Roles: any",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "in": "query",
                        "name": "userId",
                        "type": "string",
                        "required": false
                    },
                    {
                        "in": "query",
                        "name": "limit",
                        "type": "string",
                        "required": false
                    }
                ]
            }
        },
        "/assessments/latest": {
            "get": {
                "tags": [
                    "assessments"
                ],
                "summary": "Latest assessment",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "invalid input"
                    },
                    "401": {
                        "description": "missing or invalid token"
                    },
                    "403": {
                        "description": "forbidden"
                    }
                },
                "description": "Roles: any",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "in": "query",
                        "name": "userId",
                        "type": "string",
                        "required": false
                    }
                ]
            }
        },
        "/assessments/risk": {
            "get": {
                "tags": [
                    "assessments"
                ],
                "summary": "College risk board",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "invalid input"
                    },
                    "401": {
                        "description": "missing or invalid token"
                    },
                    "403": {
                        "description": "forbidden"
                    }
                },
                "description": "Roles: counsellor, college_head, admin",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "in": "query",
                        "name": "college",
                        "type": "string",
                        "required": false
                    },
                    {
                        "in": "query",
                        "name": "limit",
                        "type": "string",
                        "required": false
                    }
                ]
            }
        },
        "/chat/bot": {
            "post": {
                "tags": [
                    "chat"
                ],
                "summary": "Talk to the counselor bot",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "invalid input"
                    },
                    "401": {
                        "description": "missing or invalid token"
                    },
                    "403": {
                        "description": "forbidden"
                    }
                },
                "description": "Roles: student",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ChatRequest"
                        }
                    }
                ]
            }
        },
        "/chat/direct/{userId}": {
            "post": {
                "tags": [
                    "chat"
                ],
                "summary": "Send a direct message",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "invalid input"
                    },
                    "401": {
                        "description": "missing or invalid token"
                    },
                    "403": {
                        "description": "forbidden"
                    }
                },
                "description": "Roles: any",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ChatRequest"
                        }
                    },
                    {
                        "in": "path",
                        "name": "userId",
                        "type": "string",
                        "required": true
                    }
                ]
            }
        },
        "/chat/conversations/{id}/messages": {
            "get": {
                "tags": [
                    "chat"
                ],
                "summary": "Conversation history",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "invalid input"
                    },
                    "401": {
                        "description": "missing or invalid token"
                    },
                    "403": {
                        "description": "forbidden"
                    }
                },
                "description": "Roles: participants",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "type": "string",
                        "required": true
                    },
                    {
                        "in": "query",
                        "name": "limit",
                        "type": "string",
                        "required": false
                    }
                ]
            }
        },
        "/sessions": {
            "post": {
                "tags": [
                    "sessions"
                ],
                "summary": "Book a session",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "invalid input"
                    },
                    "401": {
                        "description": "missing or invalid token"
                    },
                    "403": {
                        "description": "forbidden"
                    }
                },
                "description": "Roles: student",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/BookSessionRequest"
                        }
                    }
                ]
            },
            "get": {
                "tags": [
                    "sessions"
                ],
                "summary": "List own sessions",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "invalid input"
                    },
                    "401": {
                        "description": "missing or invalid token"
                    },
                    "403": {
                        "description": "forbidden"
                    }
                },
                "description": "Roles: any",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "in": "query",
                        "name": "from",
                        "type": "string",
                        "required": false
                    },
                    {
                        "in": "query",
                        "name": "to",
                        "type": "string",
                        "required": false
                    }
                ]
            }
        },
        "/sessions/{id}/confirm": {
            "post": {
                "tags": [
                    "sessions"
                ],
                "summary": "Confirm a session",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "invalid input"
                    },
                    "401": {
                        "description": "missing or invalid token"
                    },
                    "403": {
                        "description": "forbidden"
                    },
                    "409": {
                        "description": "invalid status transition"
                    }
                },
                "description": "Roles: counsellor",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "type": "string",
                        "required": true
                    }
                ]
            }
        },
        "/sessions/{id}/complete": {
            "post": {
                "tags": [
                    "sessions"
                ],
                "summary": "Complete a session",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "invalid input"
                    },
                    "401": {
                        "description": "missing or invalid token"
                    },
                    "403": {
                        "description": "forbidden"
                    },
                    "409": {
                        "description": "invalid status transition"
                    }
                },
                "description": "Roles: counsellor",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "type": "string",
                        "required": true
                    }
                ]
            }
        },
        "/sessions/{id}/cancel": {
            "post": {
                "tags": [
                    "sessions"
                ],
                "summary": "Cancel a session",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "invalid input"
                    },
                    "401": {
                        "description": "missing or invalid token"
                    },
                    "403": {
                        "description": "forbidden"
                    },
                    "409": {
                        "description": "invalid status transition"
                    }
                },
                "description": "Roles: participants",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "type": "string",
                        "required": true
                    }
                ]
            }
        },
        "/reports": {
            "post": {
                "tags": [
                    "reports"
                ],
                "summary": "File a case report",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "invalid input"
                    },
                    "401": {
                        "description": "missing or invalid token"
                    },
                    "403": {
                        "description": "forbidden"
                    }
                },
                "description": "Roles: counsellor",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreateReportRequest"
                        }
                    }
                ]
            },
            "get": {
                "tags": [
                    "reports"
                ],
                "summary": "List reports",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "invalid input"
                    },
                    "401": {
                        "description": "missing or invalid token"
                    },
                    "403": {
                        "description": "forbidden"
                    }
                },
                "description": "Roles: counsellor, college_head, admin",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "in": "query",
                        "name": "college",
                        "type": "string",
                        "required": false
                    },
                    {
                        "in": "query",
                        "name": "status",
                        "type": "string",
                        "required": false
                    }
                ]
            }
        },
        "/reports/{id}/status": {
            "put": {
                "tags": [
                    "reports"
                ],
                "summary": "Change report status",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "invalid input"
                    },
                    "401": {
                        "description": "missing or invalid token"
                    },
                    "403": {
                        "description": "forbidden"
                    },
                    "409": {
                        "description": "invalid status transition"
                    }
                },
                "description": "Roles: counsellor, college_head, admin",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpdateReportStatusRequest"
                        }
                    },
                    {
                        "in": "path",
                        "name": "id",
                        "type": "string",
                        "required": true
                    }
                ]
            }
        },
        "/dashboard": {
            "get": {
                "tags": [
                    "dashboard"
                ],
                "summary": "Role specific dashboard",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "invalid input"
                    },
                    "401": {
                        "description": "missing or invalid token"
                    },
                    "403": {
                        "description": "forbidden"
                    }
                },
                "description": "Roles: any",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/feedback": {
            "post": {
                "tags": [
                    "feedback"
                ],
                "summary": "Submit feedback",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "invalid input"
                    },
                    "401": {
                        "description": "missing or invalid token"
                    },
                    "403": {
                        "description": "forbidden"
                    }
                },
                "description": "Roles: any",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/SubmitFeedbackRequest"
                        }
                    }
                ]
            },
            "get": {
                "tags": [
                    "feedback"
                ],
                "summary": "List feedback",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "invalid input"
                    },
                    "401": {
                        "description": "missing or invalid token"
                    },
                    "403": {
                        "description": "forbidden"
                    }
                },
                "description": "Roles: admin",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "in": "query",
                        "name": "limit",
                        "type": "string",
                        "required": false
                    }
                ]
            }
        },
        "/feedback/summary": {
            "get": {
                "tags": [
                    "feedback"
                ],
                "summary": "Feedback summary",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "invalid input"
                    },
                    "401": {
                        "description": "missing or invalid token"
                    },
                    "403": {
                        "description": "forbidden"
                    }
                },
                "description": "Roles: admin",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        }
    },
    "definitions": {
        "RegisterRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "college": {
                    "type": "string"
                }
            },
            "required": [
                "email",
                "password",
                "college"
            ]
        },
        "LoginRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            },
            "required": [
                "email",
                "password"
            ]
        },
        "UpdateProfileRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "college": {
                    "type": "string"
                }
            }
        },
        "CreateUserRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "role": {
                    "type": "string",
                    "enum": [
                        "student",
                        "counsellor",
                        "college_head",
                        "admin"
                    ]
                },
                "college": {
                    "type": "string"
                }
            },
            "required": [
                "email",
                "password",
                "role"
            ]
        },
        "AssessmentResponse": {
            "type": "object",
            "properties": {
                "phq9Answers": {
                    "type": "array",
                    "items": {
                        "type": "integer",
                        "minimum": 0,
                        "maximum": 3,
                        "x-nullable": true
                    },
                    "minItems": 9,
                    "maxItems": 9
                },
                "gad7Answers": {
                    "type": "array",
                    "items": {
                        "type": "integer",
                        "minimum": 0,
                        "maximum": 3,
                        "x-nullable": true
                    },
                    "minItems": 7,
                    "maxItems": 7
                }
            },
            "required": [
                "phq9Answers",
                "gad7Answers"
            ]
        },
        "ChatRequest": {
            "type": "object",
            "properties": {
                "text": {
                    "type": "string"
                }
            },
            "required": [
                "text"
            ]
        },
        "BookSessionRequest": {
            "type": "object",
            "properties": {
                "counsellorId": {
                    "type": "string"
                },
                "scheduledAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "durationMin": {
                    "type": "integer"
                },
                "mode": {
                    "type": "string",
                    "enum": [
                        "in_person",
                        "video",
                        "chat"
                    ]
                },
                "notes": {
                    "type": "string"
                }
            },
            "required": [
                "counsellorId",
                "scheduledAt"
            ]
        },
        "CreateReportRequest": {
            "type": "object",
            "properties": {
                "studentId": {
                    "type": "string"
                },
                "sessionId": {
                    "type": "string"
                },
                "summary": {
                    "type": "string"
                },
                "riskLevel": {
                    "type": "string",
                    "enum": [
                        "low",
                        "moderate",
                        "high",
                        "crisis"
                    ]
                }
            },
            "required": [
                "studentId",
                "summary"
            ]
        },
        "UpdateReportStatusRequest": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string",
                    "enum": [
                        "open",
                        "reviewed",
                        "closed"
                    ]
                }
            },
            "required": [
                "status"
            ]
        },
        "SubmitFeedbackRequest": {
            "type": "object",
            "properties": {
                "sessionId": {
                    "type": "string"
                },
                "rating": {
                    "type": "integer",
                    "minimum": 1,
                    "maximum": 5
                },
                "category": {
                    "type": "string",
                    "enum": [
                        "app",
                        "session",
                        "counselor_bot",
                        "other"
                    ]
                },
                "comment": {
                    "type": "string"
                }
            },
            "required": [
                "rating"
            ]
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "MindCare API",
	Description:      "Student mental health check-ins, counselor bot, sessions and dashboards.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
