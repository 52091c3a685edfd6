// Package docs registers the OpenAPI description served under /swagger.
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
    "securityDefinitions": {
        "AdminSession": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/healthz": {
            "get": {"tags": ["系统"], "summary": "健康检查", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}
        },
        "/api/v1/home": {
            "get": {"tags": ["文章"], "summary": "首页：精选文章、最近文章与分类", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}
        },
        "/api/v1/posts": {
            "get": {
                "tags": ["文章"],
                "summary": "文章列表（按日期倒序）",
                "parameters": [
                    {"type": "string", "description": "分类（不区分大小写）", "name": "category", "in": "query"},
                    {"type": "string", "description": "标题、摘要、分类关键词", "name": "q", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/api/v1/posts/categories": {
            "get": {"tags": ["文章"], "summary": "分类列表", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}
        },
        "/api/v1/posts/recent": {
            "get": {
                "tags": ["文章"],
                "summary": "最近文章",
                "parameters": [
                    {"maximum": 50, "minimum": 0, "type": "integer", "default": 3, "description": "数量（0-50）", "name": "count", "in": "query"},
                    {"type": "string", "description": "排除的 slug", "name": "exclude", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/v1/posts/slug/{slug}": {
            "get": {
                "tags": ["文章"],
                "summary": "文章详情（先同步目录中的同名文章）",
                "parameters": [{"type": "string", "description": "slug", "name": "slug", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/v1/posts/{id}": {
            "get": {
                "tags": ["文章"],
                "summary": "文章详情",
                "parameters": [{"type": "string", "description": "文章ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/v1/posts/{id}/comments": {
            "get": {
                "tags": ["互动"],
                "summary": "评论列表（最新在前）",
                "parameters": [{"type": "string", "description": "文章ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            },
            "post": {
                "tags": ["互动"],
                "summary": "发表评论",
                "parameters": [
                    {"type": "string", "description": "文章ID", "name": "id", "in": "path", "required": true},
                    {"description": "评论", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.commentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/v1/posts/{id}/interactions": {
            "get": {
                "tags": ["互动"],
                "summary": "反应计数（总是包含四种类型）",
                "parameters": [{"type": "string", "description": "文章ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            },
            "post": {
                "tags": ["互动"],
                "summary": "对文章做出反应（每个访客每篇文章一次）",
                "parameters": [
                    {"type": "string", "description": "文章ID", "name": "id", "in": "path", "required": true},
                    {"description": "反应", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.reactionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/v1/contact": {
            "post": {
                "tags": ["站点"],
                "summary": "提交联系表单",
                "parameters": [{"description": "联系信息", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.contactRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/api/v1/newsletter": {
            "post": {
                "tags": ["站点"],
                "summary": "订阅邮件（重复订阅不报错）",
                "parameters": [{"description": "邮箱", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.newsletterRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/api/v1/admin/login": {
            "post": {
                "tags": ["管理"],
                "summary": "管理员登录，返回会话令牌并写入 cookie",
                "parameters": [{"description": "账号密码", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/v1/admin/session": {
            "get": {"security": [{"AdminSession": []}], "tags": ["管理"], "summary": "管理会话状态", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}
        },
        "/api/v1/admin/posts": {
            "get": {"security": [{"AdminSession": []}], "tags": ["管理"], "summary": "管理端文章列表", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "post": {
                "security": [{"AdminSession": []}],
                "tags": ["管理"],
                "summary": "新建文章",
                "parameters": [{"description": "文章", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createPostRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/api/v1/admin/posts/sync": {
            "post": {"security": [{"AdminSession": []}], "tags": ["管理"], "summary": "同步内置文章目录", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}
        },
        "/api/v1/admin/posts/{id}": {
            "patch": {
                "security": [{"AdminSession": []}],
                "tags": ["管理"],
                "summary": "部分更新文章（只写入请求中出现的字段）",
                "parameters": [
                    {"type": "string", "description": "文章ID", "name": "id", "in": "path", "required": true},
                    {"description": "要修改的字段", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updatePostRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            },
            "delete": {
                "security": [{"AdminSession": []}],
                "tags": ["管理"],
                "summary": "删除文章（级联删除评论与反应）",
                "parameters": [{"type": "string", "description": "文章ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        }
    },
    "definitions": {
        "response.Response": {
            "type": "object",
            "properties": {"code": {"type": "integer"}, "data": {}, "message": {"type": "string"}}
        },
        "handler.commentRequest": {
            "type": "object",
            "required": ["message", "name"],
            "properties": {"message": {"type": "string", "maxLength": 5000}, "name": {"type": "string", "maxLength": 100}}
        },
        "handler.reactionRequest": {
            "type": "object",
            "required": ["type"],
            "properties": {
                "type": {"type": "string", "enum": ["like", "love", "insightful", "celebrate"]},
                "visitor_id": {"type": "string", "maxLength": 64}
            }
        },
        "handler.contactRequest": {
            "type": "object",
            "required": ["email", "message", "name"],
            "properties": {"email": {"type": "string"}, "message": {"type": "string"}, "name": {"type": "string"}}
        },
        "handler.newsletterRequest": {
            "type": "object",
            "required": ["email"],
            "properties": {"email": {"type": "string"}}
        },
        "handler.loginRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {"password": {"type": "string"}, "username": {"type": "string"}}
        },
        "handler.createPostRequest": {
            "type": "object",
            "required": ["content", "cover_image", "title"],
            "properties": {
                "author_avatar": {"type": "string"},
                "author_name": {"type": "string"},
                "category": {"type": "string"},
                "content": {"type": "string"},
                "cover_image": {"type": "string"},
                "excerpt": {"type": "string"},
                "slug": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "handler.updatePostRequest": {
            "type": "object",
            "properties": {
                "author_avatar": {"type": "string"},
                "author_name": {"type": "string"},
                "category": {"type": "string"},
                "content": {"type": "string"},
                "cover_image": {"type": "string"},
                "excerpt": {"type": "string"},
                "slug": {"type": "string"},
                "title": {"type": "string"}
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
	Title:            "gin-blog API",
	Description:      "博客内容服务：文章、评论、反应与管理端编辑",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
