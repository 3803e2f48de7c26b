// Package docs registers the OpenAPI document served at /swagger/doc.json.
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
        "/api/v1/audio/speakerphone": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Audio"],
                "summary": "Speakerphone state",
                "responses": {"200": {"description": "OK"}, "500": {"description": "Audio error"}}
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Audio"],
                "summary": "Turn the speakerphone on or off",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"type": "object", "properties": {"on": {"type": "boolean"}}}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid arguments"}, "500": {"description": "Audio error"}}
            }
        },
        "/api/v1/audio/mode": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Audio"],
                "summary": "Set the audio mode",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"type": "object", "properties": {"mode": {"type": "string", "enum": ["speaker", "earpiece", "bluetooth", "normal"]}}}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid arguments"}, "500": {"description": "Audio error"}}
            }
        },
        "/api/v1/audio/state": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Audio"],
                "summary": "Current routing decision",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/window/secure": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Window"],
                "summary": "Window secure flag",
                "responses": {"200": {"description": "OK"}}
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Window"],
                "summary": "Mark the window non-capturable",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"type": "object", "properties": {"secure": {"type": "boolean"}}}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid arguments"}}
            }
        },
        "/channels": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Channel"],
                "summary": "Registered channels",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/channels/{name}": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Channel"],
                "summary": "Invoke a channel method",
                "parameters": [
                    {"type": "string", "in": "path", "name": "name", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"type": "object", "properties": {"method": {"type": "string"}, "arguments": {"type": "object"}}}}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Channel not found"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Call Audio Control API",
	Description:      "Voice-call audio routing and secure window control.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
