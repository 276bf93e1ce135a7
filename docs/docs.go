// Package docs registers the API document served under /docs
// Package docs 注册 /docs 下提供的 API 文档
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
        "/api/admin/articles": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Article"
                ],
                "summary": "List Article",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "name": "page",
                        "in": "query",
                        "description": "Zero based page"
                    },
                    {
                        "type": "integer",
                        "name": "size",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "sortBy",
                        "in": "query",
                        "description": "createdTime-desc (default), createdTime-asc or an entity specific token"
                    },
                    {
                        "type": "string",
                        "name": "searchText",
                        "in": "query"
                    }
                ]
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Article"
                ],
                "summary": "Create Article",
                "responses": {
                    "201": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Fields to set, absent fields are kept and null clears",
                        "name": "params",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "title": "dto.ArticlePatch"
                        }
                    }
                ]
            }
        },
        "/api/admin/articles/all": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Article"
                ],
                "summary": "All Article",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ]
            }
        },
        "/api/admin/articles/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Article"
                ],
                "summary": "Get Article",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "put": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Article"
                ],
                "summary": "Update Article",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to set, absent fields are kept and null clears",
                        "name": "params",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "title": "dto.ArticlePatch"
                        }
                    }
                ]
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Article"
                ],
                "summary": "Delete Article",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/admin/videos": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Video"
                ],
                "summary": "List Video",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "name": "page",
                        "in": "query",
                        "description": "Zero based page"
                    },
                    {
                        "type": "integer",
                        "name": "size",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "sortBy",
                        "in": "query",
                        "description": "createdTime-desc (default), createdTime-asc or an entity specific token"
                    },
                    {
                        "type": "string",
                        "name": "searchText",
                        "in": "query"
                    }
                ]
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Video"
                ],
                "summary": "Create Video",
                "responses": {
                    "201": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Fields to set, absent fields are kept and null clears",
                        "name": "params",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "title": "dto.VideoPatch"
                        }
                    }
                ]
            }
        },
        "/api/admin/videos/all": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Video"
                ],
                "summary": "All Video",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ]
            }
        },
        "/api/admin/videos/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Video"
                ],
                "summary": "Get Video",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "put": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Video"
                ],
                "summary": "Update Video",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to set, absent fields are kept and null clears",
                        "name": "params",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "title": "dto.VideoPatch"
                        }
                    }
                ]
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Video"
                ],
                "summary": "Delete Video",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/admin/audios": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Audio"
                ],
                "summary": "List Audio",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "name": "page",
                        "in": "query",
                        "description": "Zero based page"
                    },
                    {
                        "type": "integer",
                        "name": "size",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "sortBy",
                        "in": "query",
                        "description": "createdTime-desc (default), createdTime-asc or an entity specific token"
                    },
                    {
                        "type": "string",
                        "name": "searchText",
                        "in": "query"
                    }
                ]
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Audio"
                ],
                "summary": "Create Audio",
                "responses": {
                    "201": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Fields to set, absent fields are kept and null clears",
                        "name": "params",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "title": "dto.AudioPatch"
                        }
                    }
                ]
            }
        },
        "/api/admin/audios/all": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Audio"
                ],
                "summary": "All Audio",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ]
            }
        },
        "/api/admin/audios/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Audio"
                ],
                "summary": "Get Audio",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "put": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Audio"
                ],
                "summary": "Update Audio",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to set, absent fields are kept and null clears",
                        "name": "params",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "title": "dto.AudioPatch"
                        }
                    }
                ]
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Audio"
                ],
                "summary": "Delete Audio",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/admin/websites": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Website"
                ],
                "summary": "List Website",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "name": "page",
                        "in": "query",
                        "description": "Zero based page"
                    },
                    {
                        "type": "integer",
                        "name": "size",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "sortBy",
                        "in": "query",
                        "description": "createdTime-desc (default), createdTime-asc or an entity specific token"
                    },
                    {
                        "type": "string",
                        "name": "searchText",
                        "in": "query"
                    }
                ]
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Website"
                ],
                "summary": "Create Website",
                "responses": {
                    "201": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Fields to set, absent fields are kept and null clears",
                        "name": "params",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "title": "dto.WebsitePatch"
                        }
                    }
                ]
            }
        },
        "/api/admin/websites/all": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Website"
                ],
                "summary": "All Website",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ]
            }
        },
        "/api/admin/websites/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Website"
                ],
                "summary": "Get Website",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "put": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Website"
                ],
                "summary": "Update Website",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to set, absent fields are kept and null clears",
                        "name": "params",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "title": "dto.WebsitePatch"
                        }
                    }
                ]
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Website"
                ],
                "summary": "Delete Website",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/admin/travel-plans": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "TravelPlan"
                ],
                "summary": "List TravelPlan",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "name": "page",
                        "in": "query",
                        "description": "Zero based page"
                    },
                    {
                        "type": "integer",
                        "name": "size",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "sortBy",
                        "in": "query",
                        "description": "createdTime-desc (default), createdTime-asc or an entity specific token"
                    },
                    {
                        "type": "string",
                        "name": "searchText",
                        "in": "query"
                    }
                ]
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "TravelPlan"
                ],
                "summary": "Create TravelPlan",
                "responses": {
                    "201": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Fields to set, absent fields are kept and null clears",
                        "name": "params",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "title": "dto.TravelPlanPatch"
                        }
                    }
                ]
            }
        },
        "/api/admin/travel-plans/all": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "TravelPlan"
                ],
                "summary": "All TravelPlan",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ]
            }
        },
        "/api/admin/travel-plans/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "TravelPlan"
                ],
                "summary": "Get TravelPlan",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "put": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "TravelPlan"
                ],
                "summary": "Update TravelPlan",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to set, absent fields are kept and null clears",
                        "name": "params",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "title": "dto.TravelPlanPatch"
                        }
                    }
                ]
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "TravelPlan"
                ],
                "summary": "Delete TravelPlan",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/admin/categories": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Category"
                ],
                "summary": "List Category",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "name": "page",
                        "in": "query",
                        "description": "Zero based page"
                    },
                    {
                        "type": "integer",
                        "name": "size",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "sortBy",
                        "in": "query",
                        "description": "createdTime-desc (default), createdTime-asc or an entity specific token"
                    },
                    {
                        "type": "string",
                        "name": "searchText",
                        "in": "query"
                    }
                ]
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Category"
                ],
                "summary": "Create Category",
                "responses": {
                    "201": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Fields to set, absent fields are kept and null clears",
                        "name": "params",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "title": "dto.CategoryPatch"
                        }
                    }
                ]
            }
        },
        "/api/admin/categories/all": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Category"
                ],
                "summary": "All Category",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ]
            }
        },
        "/api/admin/categories/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Category"
                ],
                "summary": "Get Category",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "put": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Category"
                ],
                "summary": "Update Category",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to set, absent fields are kept and null clears",
                        "name": "params",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "title": "dto.CategoryPatch"
                        }
                    }
                ]
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Category"
                ],
                "summary": "Delete Category",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/admin/tags": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Tag"
                ],
                "summary": "List Tag",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "name": "page",
                        "in": "query",
                        "description": "Zero based page"
                    },
                    {
                        "type": "integer",
                        "name": "size",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "sortBy",
                        "in": "query",
                        "description": "createdTime-desc (default), createdTime-asc or an entity specific token"
                    },
                    {
                        "type": "string",
                        "name": "searchText",
                        "in": "query"
                    }
                ]
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Tag"
                ],
                "summary": "Create Tag",
                "responses": {
                    "201": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Fields to set, absent fields are kept and null clears",
                        "name": "params",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "title": "dto.TagPatch"
                        }
                    }
                ]
            }
        },
        "/api/admin/tags/all": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Tag"
                ],
                "summary": "All Tag",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ]
            }
        },
        "/api/admin/tags/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Tag"
                ],
                "summary": "Get Tag",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "put": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Tag"
                ],
                "summary": "Update Tag",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to set, absent fields are kept and null clears",
                        "name": "params",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "title": "dto.TagPatch"
                        }
                    }
                ]
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Tag"
                ],
                "summary": "Delete Tag",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/admin/subjects": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Subject"
                ],
                "summary": "List Subject",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "name": "page",
                        "in": "query",
                        "description": "Zero based page"
                    },
                    {
                        "type": "integer",
                        "name": "size",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "sortBy",
                        "in": "query",
                        "description": "createdTime-desc (default), createdTime-asc or an entity specific token"
                    },
                    {
                        "type": "string",
                        "name": "searchText",
                        "in": "query"
                    }
                ]
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Subject"
                ],
                "summary": "Create Subject",
                "responses": {
                    "201": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Fields to set, absent fields are kept and null clears",
                        "name": "params",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "title": "dto.SubjectPatch"
                        }
                    }
                ]
            }
        },
        "/api/admin/subjects/all": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Subject"
                ],
                "summary": "All Subject",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ]
            }
        },
        "/api/admin/subjects/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Subject"
                ],
                "summary": "Get Subject",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "put": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Subject"
                ],
                "summary": "Update Subject",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to set, absent fields are kept and null clears",
                        "name": "params",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "title": "dto.SubjectPatch"
                        }
                    }
                ]
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Subject"
                ],
                "summary": "Delete Subject",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/memos": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Memo"
                ],
                "summary": "List Memo",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "name": "page",
                        "in": "query",
                        "description": "Zero based page"
                    },
                    {
                        "type": "integer",
                        "name": "size",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "sortBy",
                        "in": "query",
                        "description": "createdTime-desc (default), createdTime-asc or an entity specific token"
                    },
                    {
                        "type": "string",
                        "name": "searchText",
                        "in": "query"
                    }
                ]
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Memo"
                ],
                "summary": "Create Memo",
                "responses": {
                    "201": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Fields to set, absent fields are kept and null clears",
                        "name": "params",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "title": "dto.MemoPatch"
                        }
                    }
                ]
            }
        },
        "/api/memos/all": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Memo"
                ],
                "summary": "All Memo",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ]
            }
        },
        "/api/memos/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Memo"
                ],
                "summary": "Get Memo",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "put": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Memo"
                ],
                "summary": "Update Memo",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to set, absent fields are kept and null clears",
                        "name": "params",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "title": "dto.MemoPatch"
                        }
                    }
                ]
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Memo"
                ],
                "summary": "Delete Memo",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/todos": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Todo"
                ],
                "summary": "List Todo",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "name": "page",
                        "in": "query",
                        "description": "Zero based page"
                    },
                    {
                        "type": "integer",
                        "name": "size",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "sortBy",
                        "in": "query",
                        "description": "createdTime-desc (default), createdTime-asc or an entity specific token"
                    },
                    {
                        "type": "string",
                        "name": "searchText",
                        "in": "query"
                    }
                ]
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Todo"
                ],
                "summary": "Create Todo",
                "responses": {
                    "201": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Fields to set, absent fields are kept and null clears",
                        "name": "params",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "title": "dto.TodoPatch"
                        }
                    }
                ]
            }
        },
        "/api/todos/all": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Todo"
                ],
                "summary": "All Todo",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ]
            }
        },
        "/api/todos/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Todo"
                ],
                "summary": "Get Todo",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "put": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Todo"
                ],
                "summary": "Update Todo",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to set, absent fields are kept and null clears",
                        "name": "params",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "title": "dto.TodoPatch"
                        }
                    }
                ]
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Todo"
                ],
                "summary": "Delete Todo",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/diaries": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Diary"
                ],
                "summary": "List Diary",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "name": "page",
                        "in": "query",
                        "description": "Zero based page"
                    },
                    {
                        "type": "integer",
                        "name": "size",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "sortBy",
                        "in": "query",
                        "description": "createdTime-desc (default), createdTime-asc or an entity specific token"
                    },
                    {
                        "type": "string",
                        "name": "searchText",
                        "in": "query"
                    }
                ]
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Diary"
                ],
                "summary": "Create Diary",
                "responses": {
                    "201": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Fields to set, absent fields are kept and null clears",
                        "name": "params",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "title": "dto.DiaryPatch"
                        }
                    }
                ]
            }
        },
        "/api/diaries/all": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Diary"
                ],
                "summary": "All Diary",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ]
            }
        },
        "/api/diaries/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Diary"
                ],
                "summary": "Get Diary",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "put": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Diary"
                ],
                "summary": "Update Diary",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to set, absent fields are kept and null clears",
                        "name": "params",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "title": "dto.DiaryPatch"
                        }
                    }
                ]
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Diary"
                ],
                "summary": "Delete Diary",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/expenses": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Expense"
                ],
                "summary": "List Expense",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "name": "page",
                        "in": "query",
                        "description": "Zero based page"
                    },
                    {
                        "type": "integer",
                        "name": "size",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "sortBy",
                        "in": "query",
                        "description": "createdTime-desc (default), createdTime-asc or an entity specific token"
                    },
                    {
                        "type": "string",
                        "name": "searchText",
                        "in": "query"
                    }
                ]
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Expense"
                ],
                "summary": "Create Expense",
                "responses": {
                    "201": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Fields to set, absent fields are kept and null clears",
                        "name": "params",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "title": "dto.ExpensePatch"
                        }
                    }
                ]
            }
        },
        "/api/expenses/all": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Expense"
                ],
                "summary": "All Expense",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ]
            }
        },
        "/api/expenses/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Expense"
                ],
                "summary": "Get Expense",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "put": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Expense"
                ],
                "summary": "Update Expense",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to set, absent fields are kept and null clears",
                        "name": "params",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "title": "dto.ExpensePatch"
                        }
                    }
                ]
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Expense"
                ],
                "summary": "Delete Expense",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/study-check-ins": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "StudyCheckIn"
                ],
                "summary": "List StudyCheckIn",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "name": "page",
                        "in": "query",
                        "description": "Zero based page"
                    },
                    {
                        "type": "integer",
                        "name": "size",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "sortBy",
                        "in": "query",
                        "description": "createdTime-desc (default), createdTime-asc or an entity specific token"
                    },
                    {
                        "type": "string",
                        "name": "searchText",
                        "in": "query"
                    }
                ]
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "StudyCheckIn"
                ],
                "summary": "Create StudyCheckIn",
                "responses": {
                    "201": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Fields to set, absent fields are kept and null clears",
                        "name": "params",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "title": "dto.StudyCheckInPatch"
                        }
                    }
                ]
            }
        },
        "/api/study-check-ins/all": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "StudyCheckIn"
                ],
                "summary": "All StudyCheckIn",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ]
            }
        },
        "/api/study-check-ins/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "StudyCheckIn"
                ],
                "summary": "Get StudyCheckIn",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "put": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "StudyCheckIn"
                ],
                "summary": "Update StudyCheckIn",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to set, absent fields are kept and null clears",
                        "name": "params",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "title": "dto.StudyCheckInPatch"
                        }
                    }
                ]
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "StudyCheckIn"
                ],
                "summary": "Delete StudyCheckIn",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/auth/register": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Auth"
                ],
                "summary": "User registration",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "params",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UserRegisterRequest"
                        }
                    }
                ]
            }
        },
        "/api/auth/login": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Auth"
                ],
                "summary": "User login",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "params",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UserLoginRequest"
                        }
                    }
                ]
            }
        },
        "/api/users/me": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "User"
                ],
                "summary": "Get current user",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ]
            }
        },
        "/api/users/profile": {
            "put": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "User"
                ],
                "summary": "Update profile",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "name": "params",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UserProfileRequest"
                        }
                    }
                ]
            }
        },
        "/api/users/password": {
            "put": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "User"
                ],
                "summary": "Change user password",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ],
                "parameters": [
                    {
                        "name": "params",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UserChangePasswordRequest"
                        }
                    }
                ]
            }
        },
        "/api/admin/dashboard/stats": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Dashboard"
                ],
                "summary": "Dashboard statistics",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ]
            }
        },
        "/api/admin/system": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "System"
                ],
                "summary": "System information",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                },
                "security": [
                    {
                        "UserAuthToken": []
                    }
                ]
            }
        },
        "/api/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "System"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                }
            }
        },
        "/api/version": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "System"
                ],
                "summary": "Get server version info",
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    },
                    "400": {
                        "description": "Invalid Parameters",
                        "schema": {
                            "$ref": "#/definitions/pkgapp.Res"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "pkgapp.Res": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "integer"
                },
                "status": {
                    "type": "boolean"
                },
                "message": {
                    "type": "string"
                },
                "data": {},
                "details": {}
            }
        },
        "dto.UserRegisterRequest": {
            "type": "object",
            "properties": {
                "username": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                }
            },
            "required": [
                "username",
                "password"
            ]
        },
        "dto.UserLoginRequest": {
            "type": "object",
            "properties": {
                "username": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            },
            "required": [
                "username",
                "password"
            ]
        },
        "dto.UserProfileRequest": {
            "type": "object",
            "properties": {
                "username": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                }
            }
        },
        "dto.UserChangePasswordRequest": {
            "type": "object",
            "properties": {
                "currentPassword": {
                    "type": "string"
                },
                "newPassword": {
                    "type": "string"
                }
            },
            "required": [
                "currentPassword",
                "newPassword"
            ]
        }
    },
    "securityDefinitions": {
        "UserAuthToken": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Personal Information Manager API",
	Description:      "Records, taxonomy, users and dashboard of the personal information manager.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
