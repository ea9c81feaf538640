// Package docs registers the CyberStorm API swagger document.
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
        "/ping": {
            "get": {
                "tags": ["health"],
                "summary": "Ping",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/shared.Response"}}}
            }
        },
        "/courses/{courseIdString}": {
            "get": {
                "security": [{"Bearer": []}],
                "tags": ["courses"],
                "summary": "Get Course",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "courseIdString", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/shared.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/shared.Response"}}
                }
            }
        },
        "/courses/{courseIdString}/pages/{pageIndex}/check": {
            "post": {
                "security": [{"Bearer": []}],
                "tags": ["courses"],
                "summary": "Check Page",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "courseIdString", "in": "path", "required": true},
                    {"type": "integer", "name": "pageIndex", "in": "path", "required": true},
                    {"name": "checkRequest", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CheckPageRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/shared.Response"}}}
            }
        },
        "/sections-with-courses": {
            "get": {
                "security": [{"Bearer": []}],
                "tags": ["courses"],
                "summary": "Sections With Courses",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/shared.Response"}}}
            }
        },
        "/progress": {
            "post": {
                "security": [{"Bearer": []}],
                "tags": ["progress"],
                "summary": "Save Progress",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "saveRequest", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SaveProgressRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/shared.Response"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/shared.Response"}}
                }
            }
        },
        "/progress/{userId}": {
            "get": {
                "security": [{"Bearer": []}],
                "tags": ["progress"],
                "summary": "List Progress",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "userId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/shared.Response"}}}
            }
        },
        "/progress/{userId}/{courseId}": {
            "get": {
                "security": [{"Bearer": []}],
                "tags": ["progress"],
                "summary": "Get Course Progress",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "userId", "in": "path", "required": true},
                    {"type": "string", "name": "courseId", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/shared.Response"}}}
            },
            "delete": {
                "security": [{"Bearer": []}],
                "tags": ["progress"],
                "summary": "Reset Progress",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "userId", "in": "path", "required": true},
                    {"type": "string", "name": "courseId", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/shared.Response"}}}
            }
        },
        "/admin/courses": {
            "post": {
                "security": [{"Bearer": []}],
                "tags": ["admin"],
                "summary": "Create course (Admin)",
                "parameters": [{"name": "createRequest", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateCourseRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/shared.Response"}}}
            }
        },
        "/admin/courses/{id}": {
            "put": {
                "security": [{"Bearer": []}],
                "tags": ["admin"],
                "summary": "Update course (Admin)",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "updateRequest", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateCourseRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/shared.Response"}}}
            },
            "delete": {
                "security": [{"Bearer": []}],
                "tags": ["admin"],
                "summary": "Delete course (Admin)",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/shared.Response"}}}
            }
        },
        "/admin/pages": {
            "post": {
                "security": [{"Bearer": []}],
                "tags": ["admin"],
                "summary": "Add page (Admin)",
                "parameters": [{"name": "createRequest", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreatePageRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/shared.Response"}}}
            }
        },
        "/admin/pages/{pageId}/components": {
            "put": {
                "security": [{"Bearer": []}],
                "tags": ["admin"],
                "summary": "Replace page components (Admin)",
                "parameters": [
                    {"type": "string", "name": "pageId", "in": "path", "required": true},
                    {"name": "replaceRequest", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ReplaceComponentsRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/shared.Response"}}}
            }
        },
        "/admin/media": {
            "post": {
                "security": [{"Bearer": []}],
                "tags": ["admin"],
                "summary": "Upload media (Admin)",
                "consumes": ["multipart/form-data"],
                "parameters": [{"type": "file", "name": "file", "in": "formData", "required": true}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/shared.Response"}}}
            }
        }
    },
    "definitions": {
        "shared.Response": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {}
            }
        },
        "dto.CheckPageRequest": {
            "type": "object",
            "properties": {
                "responses": {"type": "object", "additionalProperties": {"type": "object"}},
                "record": {"type": "boolean"}
            }
        },
        "dto.SaveProgressRequest": {
            "type": "object",
            "required": ["courseId", "pageIndex"],
            "properties": {
                "courseId": {"type": "string"},
                "pageIndex": {"type": "integer", "minimum": 0}
            }
        },
        "dto.CreateCourseRequest": {
            "type": "object",
            "required": ["title", "course_id_string"],
            "properties": {
                "title": {"type": "string"},
                "course_id_string": {"type": "string"}
            }
        },
        "dto.UpdateCourseRequest": {
            "type": "object",
            "required": ["title", "course_id_string"],
            "properties": {
                "title": {"type": "string"},
                "course_id_string": {"type": "string"},
                "description": {"type": "string"},
                "image_url": {"type": "string"},
                "section_id": {"type": "string"},
                "is_active": {"type": "boolean"},
                "allowed_roles": {"type": "array", "items": {"type": "string"}}
            }
        },
        "dto.CreatePageRequest": {
            "type": "object",
            "required": ["course_id"],
            "properties": {"course_id": {"type": "string"}}
        },
        "dto.ReplaceComponentsRequest": {
            "type": "object",
            "properties": {
                "components": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "component_type": {"type": "string"},
                            "props": {"type": "object"}
                        }
                    }
                }
            }
        }
    },
    "securityDefinitions": {
        "Bearer": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "CyberStorm API",
	Description:      "Course playback, progress and authoring API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
