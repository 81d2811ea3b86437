// Package docs Collisions Monitor API.
//
// Дашборд по выгрузке ДТП SWITRS: фильтрация снимка записей и агрегированные показатели.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/api/v1/dashboard": {
            "get": {
                "description": "Фильтрует снимок записей о ДТП и возвращает сводные показатели, точки для карты, почасовой ряд и топ причин",
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Collision dashboard",
                "parameters": [
                    {"type": "string", "description": "Start date (YYYY-MM-DD), defaults to the window start", "name": "start_date", "in": "query"},
                    {"type": "string", "description": "End date (YYYY-MM-DD), defaults to the window end", "name": "end_date", "in": "query"},
                    {"type": "string", "default": "all", "description": "County code or 'all'", "name": "county", "in": "query"},
                    {"type": "boolean", "description": "Only alcohol-involved collisions", "name": "alcohol", "in": "query"},
                    {"type": "string", "description": "Comma separated: pedestrian,bicycle,motorcycle,truck", "name": "parties", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DashboardResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/counties": {
            "get": {
                "description": "Справочник округов для селектора, отсортирован по коду",
                "produces": ["application/json"],
                "tags": ["Reference"],
                "summary": "List counties",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CountiesResponse"}}
                }
            }
        },
        "/api/v1/snapshot": {
            "get": {
                "description": "Историческое окно, число загруженных и исключённых записей",
                "produces": ["application/json"],
                "tags": ["Reference"],
                "summary": "Snapshot info",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SnapshotResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.County": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "name": {"type": "string"},
                "population": {"type": "integer"}
            }
        },
        "domain.Point": {
            "type": "object",
            "properties": {
                "lat": {"type": "number"},
                "lon": {"type": "number"}
            }
        },
        "domain.BoundingBox": {
            "type": "object",
            "properties": {
                "min_lat": {"type": "number"},
                "min_lon": {"type": "number"},
                "max_lat": {"type": "number"},
                "max_lon": {"type": "number"}
            }
        },
        "domain.HourlyBucket": {
            "type": "object",
            "properties": {
                "hour": {"type": "integer"},
                "severe_injuries": {"type": "integer"},
                "fatalities": {"type": "integer"}
            }
        },
        "domain.FactorShare": {
            "type": "object",
            "properties": {
                "factor": {"type": "string"},
                "percentage": {"type": "number"}
            }
        },
        "domain.PopulationRates": {
            "type": "object",
            "properties": {
                "population": {"type": "integer"},
                "fatalities_per_1000_residents": {"type": "number"},
                "injuries_per_1000_residents": {"type": "number"}
            }
        },
        "domain.AggregateResult": {
            "type": "object",
            "properties": {
                "fatalities_per_1000": {"type": "number"},
                "injuries_per_1000": {"type": "number"},
                "pedestrian_fatalities": {"type": "integer"},
                "pedestrian_injuries": {"type": "integer"},
                "bicyclist_fatalities": {"type": "integer"},
                "bicyclist_injuries": {"type": "integer"},
                "map_points": {"type": "array", "items": {"$ref": "#/definitions/domain.Point"}},
                "hourly": {"type": "array", "items": {"$ref": "#/definitions/domain.HourlyBucket"}},
                "top_factors": {"type": "array", "items": {"$ref": "#/definitions/domain.FactorShare"}}
            }
        },
        "dto.CriteriaEcho": {
            "type": "object",
            "properties": {
                "start_date": {"type": "string"},
                "end_date": {"type": "string"},
                "county": {"type": "string"},
                "alcohol": {"type": "boolean"},
                "parties": {"type": "array", "items": {"type": "string"}}
            }
        },
        "dto.DashboardResponse": {
            "type": "object",
            "properties": {
                "criteria": {"$ref": "#/definitions/dto.CriteriaEcho"},
                "record_count": {"type": "integer"},
                "aggregate": {"$ref": "#/definitions/domain.AggregateResult"},
                "weekly_fatality_rate": {"type": "number"},
                "bounds": {"$ref": "#/definitions/domain.BoundingBox"},
                "center": {"$ref": "#/definitions/domain.Point"},
                "population_rates": {"$ref": "#/definitions/domain.PopulationRates"}
            }
        },
        "dto.CountiesResponse": {
            "type": "object",
            "properties": {
                "counties": {"type": "array", "items": {"$ref": "#/definitions/domain.County"}}
            }
        },
        "dto.SnapshotResponse": {
            "type": "object",
            "properties": {
                "window_start": {"type": "string"},
                "window_end": {"type": "string"},
                "records": {"type": "integer"},
                "excluded": {"type": "integer"},
                "loaded_at": {"type": "string"}
            }
        },
        "errors.AppError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/errors.AppError"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Collisions Monitor API",
	Description:      "Filter-and-aggregate dashboard over the SWITRS collision records.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
