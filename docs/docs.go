// Package docs registers the Swagger document served at /swagger/*any. It
// mirrors the godoc annotations on the handlers and is maintained by hand.
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
        "/api/auth-url": {
            "get": {
                "security": [{"InternalKey": []}],
                "description": "Returns the offline-access consent URL used to bootstrap the stored credential.\nThe URL carries a one-time state that the callback must echo within ten minutes.",
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Google consent URL",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.authURLResp"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/oauth2callback": {
            "get": {
                "description": "Exchanges the authorization code and stores the credential.",
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "OAuth redirect target",
                "parameters": [
                    {"type": "string", "description": "Authorization code", "name": "code", "in": "query", "required": true},
                    {"type": "string", "description": "State issued by /api/auth-url", "name": "state", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.callbackResp"}},
                    "400": {"description": "Missing code or unknown state", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/webhook/notion": {
            "post": {
                "description": "Acknowledges the subscription handshake, otherwise runs one sync pass and returns its summary.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Sync"],
                "summary": "Notion webhook",
                "parameters": [
                    {"type": "string", "description": "sha256=<hex> HMAC of the body", "name": "X-Notion-Signature", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.runResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "401": {"description": "Invalid signature", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "409": {"description": "Sync already running", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "429": {"description": "Rate limit exceeded", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Sync failed", "schema": {"$ref": "#/definitions/response.Resp"}}
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
                    "503": {"description": "Database unavailable", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        }
    },
    "definitions": {
        "http.authURLResp": {
            "type": "object",
            "properties": {"auth_url": {"type": "string"}}
        },
        "http.callbackResp": {
            "type": "object",
            "properties": {
                "access_expiry": {"type": "string"},
                "identity": {"type": "string"},
                "message": {"type": "string"},
                "scope": {"type": "string"}
            }
        },
        "http.runResp": {
            "type": "object",
            "properties": {
                "created": {"type": "integer"},
                "deleted": {"type": "integer"},
                "duration_ms": {"type": "integer"},
                "fetched": {"type": "integer"},
                "run_id": {"type": "string"},
                "skipped": {"type": "integer"},
                "unchanged": {"type": "integer"},
                "updated": {"type": "integer"}
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
    },
    "securityDefinitions": {
        "InternalKey": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Notion to Google Calendar Sync API",
	Description:      "Mirrors Notion data source events into a Google Calendar.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
