// Package docs holds the OpenAPI description of the API served by gin-swagger.
// It is maintained by hand alongside the handler annotations.
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
                "description": "Authenticates a user with username/email and password, and returns a new token.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in a user",
                "parameters": [{"description": "Login Info", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.LoginInput"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.TokenResponse"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/auth/register": {
            "post": {
                "description": "Creates a new free plan user and returns an authentication token.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [{"description": "Registration Info", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.RegisterInput"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.TokenResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Username or email already exists", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/public/info": {
            "get": {
                "description": "Returns a plain text description of the application.",
                "produces": ["text/plain"],
                "tags": ["public"],
                "summary": "Get application info",
                "responses": {"200": {"description": "OK", "schema": {"type": "string"}}}
            }
        },
        "/users/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "Get current user profile",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.UserResponse"}}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "Update current user profile",
                "parameters": [{"description": "Profile changes", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.UpdateProfileInput"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.UserResponse"}},
                    "409": {"description": "Username or email already exists", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "Delete current user",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}}}
            }
        },
        "/users/me/password": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "Change current user password",
                "parameters": [{"description": "New password", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.ChangePasswordInput"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}}}
            }
        },
        "/places": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["places"],
                "summary": "List my places",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.PlaceResponse"}}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Saves a new place. Free plan users can save at most 10.",
                "tags": ["places"],
                "summary": "Save a place",
                "parameters": [{"description": "Place Info", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreatePlaceInput"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.PlaceResponse"}},
                    "400": {"description": "Invalid input or location", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "403": {"description": "Place limit exceeded", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Category not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Place already exists", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/places/private": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["places"],
                "summary": "List my private places",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.PlaceResponse"}}}}
            }
        },
        "/places/shared": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["places"],
                "summary": "List places shared with me",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.PlaceResponse"}}}}
            }
        },
        "/places/nearest": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns the saved place closest to the given point, optionally within one category.",
                "tags": ["places"],
                "summary": "Find my nearest place",
                "parameters": [
                    {"type": "number", "description": "Latitude", "name": "latitude", "in": "query", "required": true},
                    {"type": "number", "description": "Longitude", "name": "longitude", "in": "query", "required": true},
                    {"type": "string", "description": "Category name", "name": "category", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.PlaceResponse"}},
                    "404": {"description": "No saved places", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/places/friend/{username}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["places"],
                "summary": "List a friend's public places",
                "parameters": [{"type": "string", "description": "Friend username", "name": "username", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.PlaceResponse"}}},
                    "404": {"description": "Not a friend", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/places/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["places"],
                "summary": "Get one of my places",
                "parameters": [{"type": "integer", "description": "Place ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.PlaceResponse"}}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["places"],
                "summary": "Update one of my places",
                "parameters": [
                    {"type": "integer", "description": "Place ID", "name": "id", "in": "path", "required": true},
                    {"description": "Changes", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.UpdatePlaceInput"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.PlaceResponse"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["places"],
                "summary": "Delete one of my places",
                "parameters": [{"type": "integer", "description": "Place ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}},
                    "403": {"description": "Not the owner", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/places/{id}/share/{username}": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["places"],
                "summary": "Share a place",
                "parameters": [
                    {"type": "integer", "description": "Place ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Receiver username", "name": "username", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.PlaceResponse"}}}
            }
        },
        "/friends": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["friendship"],
                "summary": "List my friends",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.FriendshipResponse"}}}}
            }
        },
        "/friends/invitations": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["friendship"],
                "summary": "List invitations I received",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.FriendshipResponse"}}}}
            }
        },
        "/friends/{username}/invite": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["friendship"],
                "summary": "Invite a user",
                "parameters": [{"type": "string", "description": "Receiver username", "name": "username", "in": "path", "required": true}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.FriendshipResponse"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["friendship"],
                "summary": "Withdraw an invitation I sent",
                "parameters": [{"type": "string", "description": "Receiver username", "name": "username", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}}}
            }
        },
        "/friends/invitations/{username}/accept": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["friendship"],
                "summary": "Accept an invitation",
                "parameters": [{"type": "string", "description": "Requester username", "name": "username", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.FriendshipResponse"}}}
            }
        },
        "/friends/invitations/{username}/decline": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["friendship"],
                "summary": "Decline an invitation",
                "parameters": [{"type": "string", "description": "Requester username", "name": "username", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}}}
            }
        },
        "/friends/{username}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["friendship"],
                "summary": "Remove a friend",
                "parameters": [{"type": "string", "description": "Friend username", "name": "username", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}}}
            }
        },
        "/categories": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["categories"],
                "summary": "Get all categories",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.CategoryResponse"}}}}
            }
        },
        "/admin/categories": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin-categories"],
                "summary": "Create a new category",
                "parameters": [{"description": "Category Info", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CategoryInput"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.CategoryResponse"}}}
            }
        },
        "/admin/categories/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin-categories"],
                "summary": "Delete a category",
                "parameters": [{"type": "integer", "description": "Category ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}}}
            }
        },
        "/admin/users": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin-users"],
                "summary": "List users",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Items per page", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/admin/users/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin-users"],
                "summary": "Get a user",
                "parameters": [{"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.UserResponse"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin-users"],
                "summary": "Delete a user",
                "parameters": [{"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}}}
            }
        },
        "/admin/users/{id}/roles": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin-users"],
                "summary": "Replace a user's roles",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true},
                    {"description": "Roles", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.SetRolesInput"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.UserResponse"}}}
            }
        }
    },
    "definitions": {
        "handler.ErrorResponse": {"type": "object", "properties": {"error": {"type": "string", "example": "An error message"}}},
        "handler.MessageResponse": {"type": "object", "properties": {"message": {"type": "string", "example": "Place deleted"}}},
        "handler.TokenResponse": {"type": "object", "properties": {"token": {"type": "string"}}},
        "handler.RegisterInput": {
            "type": "object",
            "required": ["email", "password", "username"],
            "properties": {
                "email": {"type": "string", "example": "alice@example.com"},
                "password": {"type": "string", "minLength": 8, "example": "password123"},
                "username": {"type": "string", "example": "alice"}
            }
        },
        "handler.LoginInput": {
            "type": "object",
            "required": ["login", "password"],
            "properties": {
                "login": {"type": "string", "example": "alice"},
                "password": {"type": "string", "example": "password123"}
            }
        },
        "handler.UpdateProfileInput": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "example": "alice@example.com"},
                "username": {"type": "string", "example": "alice"}
            }
        },
        "handler.ChangePasswordInput": {
            "type": "object",
            "required": ["password"],
            "properties": {"password": {"type": "string", "minLength": 8, "example": "password123"}}
        },
        "handler.SetRolesInput": {
            "type": "object",
            "required": ["roles"],
            "properties": {"roles": {"type": "array", "items": {"type": "string"}, "example": ["FREE", "PREMIUM"]}}
        },
        "handler.UserResponse": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "email": {"type": "string", "example": "alice@example.com"},
                "id": {"type": "integer", "example": 1},
                "place_count": {"type": "integer", "example": 3},
                "roles": {"type": "array", "items": {"type": "string"}, "example": ["FREE"]},
                "username": {"type": "string", "example": "alice"}
            }
        },
        "handler.CreatePlaceInput": {
            "type": "object",
            "required": ["category", "name"],
            "properties": {
                "address": {"type": "string", "example": "Marszałkowska, Warszawa"},
                "category": {"type": "string", "example": "Park"},
                "isPublic": {"type": "boolean", "example": true},
                "latitude": {"type": "number", "maximum": 90, "minimum": -90, "example": 52.2401},
                "longitude": {"type": "number", "maximum": 180, "minimum": -180, "example": 21.0076},
                "name": {"type": "string", "example": "Saxon Garden"},
                "note": {"type": "string", "example": "Fountain in the middle"}
            }
        },
        "handler.UpdatePlaceInput": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "category": {"type": "string"},
                "latitude": {"type": "number"},
                "longitude": {"type": "number"},
                "name": {"type": "string"},
                "note": {"type": "string"}
            }
        },
        "handler.PlaceResponse": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "category": {"type": "string", "example": "Park"},
                "city": {"type": "string", "example": "Warszawa"},
                "country": {"type": "string", "example": "Poland"},
                "id": {"type": "integer", "example": 1},
                "isPublic": {"type": "boolean"},
                "latitude": {"type": "number", "example": 52.2401},
                "longitude": {"type": "number", "example": 21.0076},
                "name": {"type": "string", "example": "Saxon Garden"},
                "note": {"type": "string"},
                "owner": {"type": "string", "example": "alice"},
                "postDate": {"type": "string"},
                "sharedWith": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.FriendshipResponse": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "id": {"type": "integer", "example": 1},
                "receiverUsername": {"type": "string", "example": "alice"},
                "requesterUsername": {"type": "string", "example": "bob"},
                "status": {"type": "string", "example": "pending"}
            }
        },
        "handler.CategoryInput": {
            "type": "object",
            "required": ["name"],
            "properties": {"name": {"type": "string", "example": "Museum"}}
        },
        "handler.CategoryResponse": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "updated_at": {"type": "string"}
            }
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
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Placebook API",
	Description:      "Save, categorise, share and find the nearest of your places.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
