// Package docs registers the OpenAPI document served at /swagger.
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
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a group",
                "parameters": [
                    {"description": "Group credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/group.RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/auth.RegisterResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign in",
                "parameters": [
                    {"description": "Group credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/auth.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/auth.LoginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign out",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.SuccessBody"}}
                }
            }
        },
        "/auth/verify": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Check session",
                "parameters": [
                    {"type": "string", "description": "Silent probe (true or 1)", "name": "X-Auth-Silent", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/auth.VerifyResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/i18n/{locale}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["i18n"],
                "summary": "Get translations",
                "parameters": [
                    {"enum": ["en", "ru", "de"], "type": "string", "description": "Locale code", "name": "locale", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/members": {
            "get": {
                "produces": ["application/json"],
                "tags": ["members"],
                "summary": "List members",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/member.ListResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["members"],
                "summary": "Add a member",
                "parameters": [
                    {"description": "Member name", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/member.CreateMemberRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/member.CreateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/members/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["members"],
                "summary": "Remove a member",
                "parameters": [
                    {"type": "string", "description": "Member ID (24 hex characters)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.SuccessBody"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/gifts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["gifts"],
                "summary": "List gifts",
                "parameters": [
                    {"type": "string", "description": "Member ID filter", "name": "memberId", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/gift.ListResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["gifts"],
                "summary": "Create a gift",
                "parameters": [
                    {"description": "Gift creation request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/gift.CreateGiftRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/gift.MutationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/gifts/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["gifts"],
                "summary": "Get gift by ID",
                "parameters": [
                    {"type": "string", "description": "Gift ID (24 hex characters)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/gift.GiftResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["gifts"],
                "summary": "Update a gift",
                "parameters": [
                    {"type": "string", "description": "Gift ID (24 hex characters)", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/gift.UpdateGiftRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/gift.MutationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["gifts"],
                "summary": "Delete a gift",
                "parameters": [
                    {"type": "string", "description": "Gift ID (24 hex characters)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.SuccessBody"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/gifts/{id}/toggle": {
            "put": {
                "produces": ["application/json"],
                "tags": ["gifts"],
                "summary": "Toggle purchased",
                "parameters": [
                    {"type": "string", "description": "Gift ID (24 hex characters)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/gift.MutationResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        }
    },
    "definitions": {
        "auth.LoginRequest": {
            "type": "object",
            "properties": {"name": {"type": "string"}, "password": {"type": "string"}}
        },
        "auth.LoginResponse": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}, "token": {"type": "string"}}
        },
        "auth.RegisterResponse": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}, "group": {"$ref": "#/definitions/group.GroupResponse"}}
        },
        "auth.VerifyResponse": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}, "groupName": {"type": "string"}}
        },
        "group.RegisterRequest": {
            "type": "object",
            "properties": {"name": {"type": "string"}, "password": {"type": "string"}}
        },
        "group.GroupResponse": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "name": {"type": "string"}, "createdAt": {"type": "string"}}
        },
        "member.CreateMemberRequest": {
            "type": "object",
            "properties": {"name": {"type": "string"}}
        },
        "member.MemberResponse": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "userId": {"type": "string"}, "name": {"type": "string"}, "joinedAt": {"type": "string"}}
        },
        "member.ListResponse": {
            "type": "object",
            "properties": {"members": {"type": "array", "items": {"$ref": "#/definitions/member.MemberResponse"}}}
        },
        "member.CreateResponse": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}, "member": {"$ref": "#/definitions/member.MemberResponse"}}
        },
        "gift.CreateGiftRequest": {
            "type": "object",
            "properties": {"title": {"type": "string"}, "description": {"type": "string"}, "url": {"type": "string"}, "memberId": {"type": "string"}}
        },
        "gift.UpdateGiftRequest": {
            "type": "object",
            "properties": {"title": {"type": "string"}, "description": {"type": "string"}, "url": {"type": "string"}, "purchased": {"type": "boolean"}, "memberId": {"type": "string"}}
        },
        "gift.GiftResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "url": {"type": "string"},
                "purchased": {"type": "boolean"},
                "createdAt": {"type": "string"},
                "groupId": {"type": "string"},
                "memberId": {"type": "string"}
            }
        },
        "gift.ListResponse": {
            "type": "object",
            "properties": {"gifts": {"type": "array", "items": {"$ref": "#/definitions/gift.GiftResponse"}}}
        },
        "gift.MutationResponse": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}, "gift": {"$ref": "#/definitions/gift.GiftResponse"}}
        },
        "response.ErrorBody": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}, "error": {"type": "string"}, "details": {"type": "string"}}
        },
        "response.SuccessBody": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Giftbox API",
	Description:      "Group gift tracking: cookie sessions, members and gifts scoped to the signed-in group.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
