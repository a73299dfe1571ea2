// Package docs registra la definición OpenAPI del registro del zoo en swag para
// que http-swagger la sirva en /swagger/.
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
        "/animals": {
            "get": {
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "List animals in admission order",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/animal"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Admit an animal",
                "parameters": [
                    {"description": "animal", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/admitAnimalRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/animal"}},
                    "400": {"description": "Bad Request", "schema": {"type": "string"}}
                }
            }
        },
        "/animals/sounds": {
            "get": {
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Make every animal sound, in admission order",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/soundsResponse"}}
                }
            }
        },
        "/animals/meals": {
            "get": {
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Feed every animal, in admission order",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/mealsResponse"}}
                }
            }
        },
        "/animals/{animalID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Get an animal",
                "parameters": [
                    {"type": "string", "description": "animal id", "name": "animalID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/animal"}},
                    "404": {"description": "Not Found", "schema": {"type": "string"}}
                }
            },
            "delete": {
                "tags": ["animals"],
                "summary": "Release an animal",
                "parameters": [
                    {"type": "string", "description": "animal id", "name": "animalID", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"type": "string"}}
                }
            }
        },
        "/animals/{animalID}/info": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["animals"],
                "summary": "Animal information block",
                "parameters": [
                    {"type": "string", "description": "animal id", "name": "animalID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}},
                    "404": {"description": "Not Found", "schema": {"type": "string"}}
                }
            }
        },
        "/report": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["report"],
                "summary": "Full zoo report",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}}
                }
            }
        },
        "/kinds": {
            "get": {
                "produces": ["application/json"],
                "tags": ["kinds"],
                "summary": "Registered kinds",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "admitAnimalRequest": {
            "type": "object",
            "properties": {
                "kind": {"type": "string", "enum": ["lion", "elephant"]},
                "name": {"type": "string"},
                "age": {"type": "integer", "minimum": 0},
                "diet": {"type": "string"},
                "habitat": {"type": "string"}
            }
        },
        "animal": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "kind": {"type": "string"},
                "name": {"type": "string"},
                "age": {"type": "integer"},
                "species": {"type": "string"},
                "diet": {"type": "string"},
                "habitat": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"}
            }
        },
        "soundsResponse": {
            "type": "object",
            "properties": {
                "sounds": {"type": "array", "items": {"type": "string"}}
            }
        },
        "mealsResponse": {
            "type": "object",
            "properties": {
                "meals": {"type": "array", "items": {"type": "string"}}
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
	Title:            "Digital Zoo API",
	Description:      "Registry of zoo animals: admit, list, sound, feed and report.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
