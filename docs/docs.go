// Package docs registers the OpenAPI document with swaggo at init time so
// the Swagger UI route can serve it. Keep SwaggerInfo in sync with the
// annotations in cmd/server and internal/http/handlers; regenerate the
// template with `swag init -g cmd/server/main.go` after changing endpoints.
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
    "paths": {
        "/generate": {
            "post": {
                "tags": ["Generation"],
                "operationId": "generateDocument",
                "summary": "Generate a legal document"
            }
        },
        "/usecases": {
            "get": {
                "tags": ["Generation"],
                "operationId": "listUseCases",
                "summary": "List use-case metadata"
            }
        },
        "/orders/get": {
            "get": {
                "tags": ["Orders"],
                "operationId": "getOrder",
                "summary": "Fetch an order"
            }
        },
        "/orders/mock-pay": {
            "post": {
                "tags": ["Orders"],
                "operationId": "mockPayOrder",
                "summary": "Mark an order paid (mock)"
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Reclamo API",
	Description:      "Intake-and-generation backend for formal legal-style documents.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
