// Package docs registers the OpenAPI document served by the Swagger UI in
// dev mode.
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
        "/alat": {
            "get": {"tags": ["alat"], "summary": "List tools", "parameters": [{"name": "search", "in": "query", "type": "string"}, {"name": "lab", "in": "query", "type": "string"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad lab"}}},
            "post": {"tags": ["alat"], "summary": "Create a tool", "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid"}}}
        },
        "/alat/export": {"get": {"tags": ["alat"], "summary": "Export tools as XLSX", "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"], "responses": {"200": {"description": "Workbook"}}}},
        "/alat/{id}": {
            "get": {"tags": ["alat"], "summary": "Get a tool", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "put": {"tags": ["alat"], "summary": "Update a tool", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "delete": {"tags": ["alat"], "summary": "Delete a tool", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "Deleted"}, "404": {"description": "Not found"}}}
        },
        "/bahan": {
            "get": {"tags": ["bahan"], "summary": "List materials", "parameters": [{"name": "search", "in": "query", "type": "string"}, {"name": "lab", "in": "query", "type": "string"}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["bahan"], "summary": "Create a material", "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid"}}}
        },
        "/bahan/export": {"get": {"tags": ["bahan"], "summary": "Export materials as XLSX", "responses": {"200": {"description": "Workbook"}}}},
        "/bahan/{id}": {
            "get": {"tags": ["bahan"], "summary": "Get a material", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "put": {"tags": ["bahan"], "summary": "Update a material", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "delete": {"tags": ["bahan"], "summary": "Delete a material", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "Deleted"}, "404": {"description": "Not found"}}}
        },
        "/peminjaman": {
            "get": {"tags": ["peminjaman"], "summary": "List loans", "parameters": [{"name": "search", "in": "query", "type": "string"}, {"name": "jenis", "in": "query", "type": "string"}, {"name": "status", "in": "query", "type": "string"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad filter"}}},
            "post": {"tags": ["peminjaman"], "summary": "Borrow an item", "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid"}}}
        },
        "/peminjaman/export": {"get": {"tags": ["peminjaman"], "summary": "Export loans as XLSX", "responses": {"200": {"description": "Workbook"}}}},
        "/peminjaman/{id}": {
            "get": {"tags": ["peminjaman"], "summary": "Get a loan by id or kode", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "put": {"tags": ["peminjaman"], "summary": "Mark a loan returned", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}, "409": {"description": "Already returned"}}},
            "delete": {"tags": ["peminjaman"], "summary": "Delete a loan", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "Deleted"}, "404": {"description": "Not found"}}}
        },
        "/dashboard": {"get": {"tags": ["laporan"], "summary": "Dashboard totals", "responses": {"200": {"description": "OK"}}}},
        "/laporan": {"get": {"tags": ["laporan"], "summary": "Reports for every lab", "responses": {"200": {"description": "OK"}}}},
        "/laporan/{lab}": {"get": {"tags": ["laporan"], "summary": "Report for one lab", "parameters": [{"name": "lab", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Unknown lab"}}}},
        "/laporan/{lab}/export": {"get": {"tags": ["laporan"], "summary": "Export one lab report as XLSX", "parameters": [{"name": "lab", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "Workbook"}}}},
        "/login": {"post": {"tags": ["auth"], "summary": "Staff login", "responses": {"200": {"description": "Token"}, "401": {"description": "Wrong id or password"}}}},
        "/accounts": {"post": {"tags": ["auth"], "summary": "Create a staff account (admin)", "responses": {"201": {"description": "Created"}, "409": {"description": "Exists"}}}},
        "/accounts/{id}": {"delete": {"tags": ["auth"], "summary": "Delete a staff account (admin)", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "Deleted"}, "404": {"description": "Not found"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Inventaris Lab API",
	Description:      "Lab tools, materials and loans with stock tracking.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
