// Package docs содержит swagger-документ API, который отдаётся по /swagger/doc.json.
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
        "/view": {
            "get": {
                "description": "Карточки товаров с надписями, маржой, состоянием диалога и пустым состоянием",
                "produces": ["application/json"],
                "tags": ["view"],
                "summary": "Экран учёта товаров",
                "parameters": [
                    {"type": "string", "description": "Поиск по артикулу и подсказке", "name": "q", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.InventoryViewResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/products": {
            "get": {
                "description": "Товары в порядке добавления; q фильтрует по артикулу и подсказке без учёта регистра",
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Список товаров",
                "parameters": [
                    {"type": "string", "description": "Поиск по артикулу и подсказке", "name": "q", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/http.ProductResponse"}}}
                }
            },
            "post": {
                "description": "Добавляет пустой товар в конец списка",
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Добавить товар",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.ProductResponse"}}
                }
            }
        },
        "/products/{id}": {
            "delete": {
                "description": "Удаляет товар; неизвестный id не является ошибкой",
                "tags": ["products"],
                "summary": "Удалить товар",
                "parameters": [
                    {"type": "string", "description": "ID товара", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"204": {"description": "No Content"}}
            },
            "patch": {
                "description": "Записывает значение поля без диалога. value = null очищает фото и цены",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Заменить поле товара",
                "parameters": [
                    {"type": "string", "description": "ID товара", "name": "id", "in": "path", "required": true},
                    {"description": "Поле и значение", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.UpdateFieldRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.UpdateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/products/{id}/editing": {
            "post": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Переключить режим редактирования карточки",
                "parameters": [
                    {"type": "string", "description": "ID товара", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.EditingResponse"}}
                }
            }
        },
        "/products/{id}/fields/{field}": {
            "put": {
                "description": "Значение записывается сразу. Нечисловая цена сохраняется как незаданная",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["inline"],
                "summary": "Изменить поле в карточке",
                "parameters": [
                    {"type": "string", "description": "ID товара", "name": "id", "in": "path", "required": true},
                    {"enum": ["photo", "hint", "sku", "sellingPrice", "purchasePrice", "quantity"], "type": "string", "description": "Поле", "name": "field", "in": "path", "required": true},
                    {"description": "Значение", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.SetFieldRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.UpdateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/products/{id}/fields/{field}/confirm": {
            "post": {
                "description": "Только уведомление: цена уже записана. committed = false, если цена не задана или равна нулю",
                "produces": ["application/json"],
                "tags": ["inline"],
                "summary": "Зафиксировать цену",
                "parameters": [
                    {"type": "string", "description": "ID товара", "name": "id", "in": "path", "required": true},
                    {"enum": ["sellingPrice", "purchasePrice"], "type": "string", "description": "Поле цены", "name": "field", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.ConfirmResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/products/{id}/photo": {
            "post": {
                "description": "Фото читается асинхронно и записывается в товар, если он ещё существует",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["inline"],
                "summary": "Загрузить фото товара",
                "parameters": [
                    {"type": "string", "description": "ID товара", "name": "id", "in": "path", "required": true},
                    {"type": "file", "description": "Файл изображения", "name": "photo", "in": "formData", "required": true}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/http.UploadPhotoResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/dialog": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dialog"],
                "summary": "Текущий диалог",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.DialogResponse"}}
                }
            },
            "post": {
                "description": "Закрывает предыдущий диалог без сохранения и копирует текущее значение поля во временное",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["dialog"],
                "summary": "Открыть диалог поля",
                "parameters": [
                    {"description": "Товар и поле", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.OpenDialogRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.DialogResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["dialog"],
                "summary": "Отменить изменение",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.DialogResponse"}}
                }
            }
        },
        "/dialog/staged": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["dialog"],
                "summary": "Изменить временное значение",
                "parameters": [
                    {"description": "Значение", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.StageValueRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.DialogResponse"}},
                    "409": {"description": "Диалог не открыт", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/dialog/photo": {
            "post": {
                "description": "Фото читается асинхронно и попадает во временное значение, если диалог ещё открыт",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["dialog"],
                "summary": "Загрузить фото в диалог",
                "parameters": [
                    {"type": "file", "description": "Файл изображения", "name": "photo", "in": "formData", "required": true}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/http.UploadPhotoResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/dialog/confirm": {
            "post": {
                "description": "Записывает временное значение в товар. committed = false, если значение недопустимо",
                "produces": ["application/json"],
                "tags": ["dialog"],
                "summary": "Подтвердить изменение",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.ConfirmResponse"}}
                }
            }
        },
        "/notifications": {
            "get": {
                "description": "Возвращает уведомления в порядке появления и очищает очередь",
                "produces": ["application/json"],
                "tags": ["notifications"],
                "summary": "Уведомления",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/http.NotificationResponse"}}}
                }
            }
        }
    },
    "definitions": {
        "http.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "message": {"type": "string"}
            }
        },
        "http.ProductResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "photo": {"type": "string"},
                "hint": {"type": "string"},
                "sku": {"type": "string"},
                "selling_price": {"type": "string"},
                "purchase_price": {"type": "string"},
                "quantity": {"type": "integer"},
                "created_at": {"type": "string"}
            }
        },
        "http.MarginResponse": {
            "type": "object",
            "properties": {
                "amount": {"type": "string"},
                "percent": {"type": "string"},
                "display": {"type": "string"},
                "tone": {"type": "string"},
                "is_negative": {"type": "boolean"}
            }
        },
        "http.ProductCardResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "photo": {"type": "string"},
                "hint": {"type": "string"},
                "sku": {"type": "string"},
                "selling_price": {"type": "string"},
                "purchase_price": {"type": "string"},
                "quantity": {"type": "integer"},
                "created_at": {"type": "string"},
                "hint_label": {"type": "string"},
                "sku_label": {"type": "string"},
                "selling_price_label": {"type": "string"},
                "purchase_price_label": {"type": "string"},
                "margin": {"$ref": "#/definitions/http.MarginResponse"},
                "editing": {"type": "boolean"}
            }
        },
        "http.DialogResponse": {
            "type": "object",
            "properties": {
                "kind": {"type": "string"},
                "product_id": {"type": "string"},
                "field": {"type": "string"},
                "title": {"type": "string"},
                "placeholder": {"type": "string"},
                "staged": {"type": "string"},
                "can_confirm": {"type": "boolean"}
            }
        },
        "http.InventoryViewResponse": {
            "type": "object",
            "properties": {
                "query": {"type": "string"},
                "edit_mode": {"type": "string"},
                "editing_id": {"type": "string"},
                "empty_message": {"type": "string"},
                "products": {"type": "array", "items": {"$ref": "#/definitions/http.ProductCardResponse"}},
                "dialog": {"$ref": "#/definitions/http.DialogResponse"}
            }
        },
        "http.ConfirmResponse": {
            "type": "object",
            "properties": {
                "committed": {"type": "boolean"},
                "notification": {"type": "string"},
                "dialog": {"$ref": "#/definitions/http.DialogResponse"}
            }
        },
        "http.UploadPhotoResponse": {
            "type": "object",
            "properties": {
                "ticket_id": {"type": "string"},
                "product_id": {"type": "string"}
            }
        },
        "http.UpdateResponse": {
            "type": "object",
            "properties": {
                "changed": {"type": "boolean"},
                "product": {"$ref": "#/definitions/http.ProductCardResponse"}
            }
        },
        "http.EditingResponse": {
            "type": "object",
            "properties": {
                "editing_id": {"type": "string"}
            }
        },
        "http.NotificationResponse": {
            "type": "object",
            "properties": {
                "seq": {"type": "integer"},
                "kind": {"type": "string"},
                "message": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "http.UpdateFieldRequest": {
            "type": "object",
            "required": ["field"],
            "properties": {
                "field": {"type": "string"},
                "value": {"type": "string"}
            }
        },
        "http.OpenDialogRequest": {
            "type": "object",
            "required": ["field", "product_id"],
            "properties": {
                "product_id": {"type": "string"},
                "field": {"type": "string"}
            }
        },
        "http.StageValueRequest": {
            "type": "object",
            "properties": {
                "value": {"type": "string"}
            }
        },
        "http.SetFieldRequest": {
            "type": "object",
            "properties": {
                "value": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Inventory View API",
	Description:      "Учёт товаров на складе: карточки, редактирование полей, маржа и уведомления.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
