// Package docs registers the OpenAPI document served under /swagger.
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
        "/auth/token": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Issue an admin token",
                "parameters": [
                    {
                        "description": "Admin password",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.loginInput"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.TokenResult"}},
                    "400": {"description": "Bad Request"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/leagues": {
            "get": {
                "produces": ["application/json"],
                "tags": ["leagues"],
                "summary": "List regional leagues with their teams and ratings",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/leagues/{region}/teams/{teamID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["leagues"],
                "summary": "Get a team with its current roster",
                "parameters": [
                    {"type": "string", "description": "Region", "name": "region", "in": "path", "required": true},
                    {"type": "integer", "description": "Team ID", "name": "teamID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/simulations": {
            "get": {
                "produces": ["application/json"],
                "tags": ["simulations"],
                "summary": "List stored simulation runs, newest first",
                "parameters": [
                    {"type": "string", "description": "series or year", "name": "kind", "in": "query"},
                    {"type": "integer", "description": "Page size (max 100)", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "Offset", "name": "offset", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/simulations/series": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["simulations"],
                "summary": "Play an exhibition series between two league teams",
                "parameters": [
                    {
                        "description": "Series",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/services.SeriesInput"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "401": {"description": "Unauthorized"},
                    "404": {"description": "Not Found"},
                    "422": {"description": "Unprocessable Entity"}
                }
            }
        },
        "/simulations/years": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["simulations"],
                "summary": "Simulate the next competitive year",
                "parameters": [
                    {
                        "description": "Seed",
                        "name": "input",
                        "in": "body",
                        "schema": {"$ref": "#/definitions/services.YearInput"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "401": {"description": "Unauthorized"},
                    "409": {"description": "Another year is running"}
                }
            }
        },
        "/simulations/{runID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["simulations"],
                "summary": "Get a simulation run with its result document",
                "parameters": [
                    {"type": "string", "description": "Run ID", "name": "runID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/simulations/{runID}/standings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["simulations"],
                "summary": "Get the regular-season tables stored for a yearly run",
                "parameters": [
                    {"type": "string", "description": "Run ID", "name": "runID", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        }
    },
    "definitions": {
        "handlers.loginInput": {
            "type": "object",
            "properties": {"password": {"type": "string"}}
        },
        "services.SeriesInput": {
            "type": "object",
            "properties": {
                "away_team_id": {"type": "integer"},
                "best_of": {"type": "integer"},
                "home_team_id": {"type": "integer"},
                "seed": {"type": "integer"}
            }
        },
        "services.TokenResult": {
            "type": "object",
            "properties": {
                "expires_at": {"type": "string"},
                "token": {"type": "string"}
            }
        },
        "services.YearInput": {
            "type": "object",
            "properties": {"seed": {"type": "integer"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "League Simulator API",
	Description:      "Regional leagues, playoffs and world championship simulation.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
