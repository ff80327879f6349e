// Package docs registra la especificación OpenAPI que sirve /swagger.
// Se regenera con: swag init -g cmd/petmatch/main.go --parseInternal
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
        "/api/pet-match": {
            "post": {
                "description": "Puntúa las mascotas disponibles contra las preferencias y devuelve las que alcanzan al menos 50, de mayor a menor.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["matching"],
                "summary": "Buscar mascotas compatibles",
                "parameters": [
                    {
                        "description": "Preferencias; species es obligatorio",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/matching.matchRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/matching.matchListResponse"}},
                    "400": {"description": "no data provided / species is required", "schema": {"type": "string"}}
                }
            }
        },
        "/api/pet-match/{petID}/breakdown": {
            "get": {
                "description": "Las preferencias van en query string con los mismos nombres que el body de /api/pet-match.",
                "produces": ["application/json"],
                "tags": ["matching"],
                "summary": "Desglose del score de una mascota",
                "parameters": [
                    {"type": "string", "description": "ID de la mascota", "name": "petID", "in": "path", "required": true},
                    {"type": "string", "description": "Especie buscada", "name": "species", "in": "query", "required": true},
                    {"type": "string", "description": "baby, adult, senior, any", "name": "age_preference", "in": "query"},
                    {"type": "string", "description": "male, female, any", "name": "gender_preference", "in": "query"},
                    {"type": "string", "description": "small, medium, large, any", "name": "size_preference", "in": "query"},
                    {"type": "string", "description": "low, medium, high, any", "name": "energy_level", "in": "query"},
                    {"type": "string", "description": "yes/no", "name": "good_with_children", "in": "query"},
                    {"type": "string", "description": "yes/no", "name": "good_with_other_pets", "in": "query"},
                    {"type": "string", "description": "yes/no", "name": "special_needs", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/matching.breakdownResponse"}},
                    "400": {"description": "species is required", "schema": {"type": "string"}},
                    "404": {"description": "pet not found", "schema": {"type": "string"}}
                }
            }
        },
        "/donations": {
            "get": {
                "description": "Las 5 donaciones no anónimas más recientes.",
                "produces": ["application/json"],
                "tags": ["donations"],
                "summary": "Últimas donaciones",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/donations.donationResponse"}}},
                    "500": {"description": "internal error", "schema": {"type": "string"}}
                }
            },
            "post": {
                "description": "No requiere identidad; si hay usuario se asocia a la donación.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["donations"],
                "summary": "Registrar donación",
                "parameters": [
                    {"type": "string", "description": "Solo en modo dev, ID de usuario para depuración", "name": "X-Debug-User-ID", "in": "header"},
                    {
                        "description": "Monto (>= 1), mensaje opcional (<= 500)",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/donations.donateRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/donations.donationResponse"}},
                    "400": {"description": "invalid json / invalid input", "schema": {"type": "string"}}
                }
            }
        },
        "/pet-match": {
            "post": {
                "description": "Guarda las preferencias en una sesión temporal y devuelve la URL de resultados.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["matching"],
                "summary": "Enviar formulario de matching",
                "parameters": [
                    {
                        "description": "Preferencias; species es obligatorio",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/matching.matchRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/matching.sessionResponse"}},
                    "400": {"description": "no data provided / species is required", "schema": {"type": "string"}}
                }
            }
        },
        "/pet-match/{sessionID}/results": {
            "get": {
                "produces": ["application/json"],
                "tags": ["matching"],
                "summary": "Resultados de matching de una sesión",
                "parameters": [
                    {"type": "string", "description": "ID de sesión devuelto por POST /pet-match", "name": "sessionID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/matching.sessionResultsResponse"}},
                    "404": {"description": "please fill out the pet matching form first", "schema": {"type": "string"}}
                }
            }
        },
        "/pets": {
            "get": {
                "description": "Lista pública de mascotas en estado available, más nuevas primero, 12 por página.",
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Listar mascotas disponibles",
                "parameters": [
                    {"type": "string", "description": "Filtrar por especie", "name": "species", "in": "query"},
                    {"type": "string", "description": "Texto libre en nombre/raza/descripción", "name": "q", "in": "query"},
                    {"type": "integer", "description": "Página (desde 1)", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/pets.petResponse"}}},
                    "500": {"description": "internal error", "schema": {"type": "string"}}
                }
            },
            "post": {
                "description": "Crea un anuncio de adopción. Los atributos de matching son opcionales y no se infieren. Autenticación: X-Debug-User-ID (dev) o Authorization: Bearer.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Publicar mascota en adopción",
                "parameters": [
                    {"type": "string", "description": "Solo en modo dev, ID de usuario para depuración", "name": "X-Debug-User-ID", "in": "header"},
                    {
                        "description": "Datos de la mascota; age en meses",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/pets.createPetRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/pets.petResponse"}},
                    "400": {"description": "invalid json / invalid input", "schema": {"type": "string"}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}}
                }
            }
        },
        "/pets/{petID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Detalle de mascota",
                "parameters": [
                    {"type": "string", "description": "ID de la mascota", "name": "petID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.petDetailResponse"}},
                    "404": {"description": "pet not found", "schema": {"type": "string"}}
                }
            }
        },
        "/pets/{petID}/status": {
            "patch": {
                "description": "Solo el dueño del anuncio puede moverlo entre available, pending y adopted.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Cambiar estado de adopción",
                "parameters": [
                    {"type": "string", "description": "Solo en modo dev, ID de usuario para depuración", "name": "X-Debug-User-ID", "in": "header"},
                    {"type": "string", "description": "ID de la mascota", "name": "petID", "in": "path", "required": true},
                    {
                        "description": "Nuevo estado",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/pets.updateStatusRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.petResponse"}},
                    "400": {"description": "invalid input", "schema": {"type": "string"}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}},
                    "403": {"description": "forbidden", "schema": {"type": "string"}},
                    "404": {"description": "pet not found", "schema": {"type": "string"}}
                }
            }
        },
        "/products": {
            "get": {
                "description": "Catálogo de la tienda, 12 por página, con filtro por categoría y búsqueda libre.",
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Listar productos",
                "parameters": [
                    {"type": "string", "description": "Categoría (food, toys, accessories...)", "name": "category", "in": "query"},
                    {"type": "string", "description": "Texto libre en nombre/descripción", "name": "q", "in": "query"},
                    {"type": "integer", "description": "Página (desde 1)", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/products.productListResponse"}},
                    "500": {"description": "internal error", "schema": {"type": "string"}}
                }
            }
        },
        "/products/{productID}": {
            "get": {
                "description": "Incluye hasta 4 productos de la misma categoría en related_products.",
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Detalle de producto",
                "parameters": [
                    {"type": "string", "description": "ID del producto", "name": "productID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/products.productDetailResponse"}},
                    "404": {"description": "product not found", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "donations.donateRequest": {
            "type": "object",
            "properties": {
                "amount": {"type": "number"},
                "message": {"type": "string"},
                "is_anonymous": {"type": "boolean"}
            }
        },
        "donations.donationResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "user_id": {"type": "string"},
                "amount": {"type": "number"},
                "message": {"type": "string"},
                "is_anonymous": {"type": "boolean"},
                "created_at": {"type": "string"}
            }
        },
        "matching.matchRequest": {
            "type": "object",
            "properties": {
                "species": {"type": "string", "example": "dog"},
                "age_preference": {"type": "string", "enum": ["baby", "adult", "senior", "any"]},
                "gender_preference": {"type": "string", "enum": ["male", "female", "any"]},
                "size_preference": {"type": "string", "enum": ["small", "medium", "large", "any"]},
                "energy_level": {"type": "string", "enum": ["low", "medium", "high", "any"]},
                "energy_preference": {"type": "string"},
                "good_with_children": {"type": "boolean"},
                "good_with_other_pets": {"type": "boolean"},
                "special_needs": {"type": "boolean"},
                "living_environment": {"type": "string"},
                "time_availability": {"type": "string"},
                "training_preference": {"type": "string"}
            }
        },
        "matching.matchResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "species": {"type": "string"},
                "breed": {"type": "string"},
                "age": {"type": "integer"},
                "gender": {"type": "string"},
                "image_url": {"type": "string"},
                "match_score": {"type": "integer"}
            }
        },
        "matching.matchListResponse": {
            "type": "object",
            "properties": {
                "matches": {"type": "array", "items": {"$ref": "#/definitions/matching.matchResponse"}},
                "count": {"type": "integer"}
            }
        },
        "matching.sessionResponse": {
            "type": "object",
            "properties": {
                "session_id": {"type": "string"},
                "results_url": {"type": "string"}
            }
        },
        "matching.sessionResultsResponse": {
            "type": "object",
            "properties": {
                "preferences": {"$ref": "#/definitions/matching.matchRequest"},
                "matches": {"type": "array", "items": {"$ref": "#/definitions/matching.matchResponse"}},
                "count": {"type": "integer"}
            }
        },
        "matching.RuleResult": {
            "type": "object",
            "properties": {
                "rule": {"type": "string"},
                "active": {"type": "boolean"},
                "weight": {"type": "integer"},
                "points": {"type": "integer"}
            }
        },
        "matching.breakdownResponse": {
            "type": "object",
            "properties": {
                "pet_id": {"type": "string"},
                "pet_name": {"type": "string"},
                "score": {"type": "integer"},
                "species_match": {"type": "boolean"},
                "earned": {"type": "integer"},
                "possible": {"type": "integer"},
                "normalized": {"type": "boolean"},
                "rules": {"type": "array", "items": {"$ref": "#/definitions/matching.RuleResult"}}
            }
        },
        "pets.createPetRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "species": {"type": "string", "enum": ["dog", "cat", "bird", "rabbit", "fish", "other"]},
                "breed": {"type": "string"},
                "age": {"type": "integer"},
                "gender": {"type": "string", "enum": ["male", "female", "unknown"]},
                "description": {"type": "string"},
                "health_info": {"type": "string"},
                "behavior_info": {"type": "string"},
                "image_filename": {"type": "string"},
                "size": {"type": "string", "enum": ["small", "medium", "large"]},
                "energy_level": {"type": "string", "enum": ["low", "medium", "high"]},
                "good_with_children": {"type": "boolean"},
                "good_with_other_pets": {"type": "boolean"},
                "special_needs": {"type": "boolean"},
                "training_level": {"type": "string", "enum": ["untrained", "basic", "well_trained"]}
            }
        },
        "pets.petDetailResponse": {
            "type": "object",
            "allOf": [{"$ref": "#/definitions/pets.petResponse"}],
            "properties": {
                "other_pets": {"type": "array", "items": {"$ref": "#/definitions/pets.petResponse"}}
            }
        },
        "pets.petResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "owner_user_id": {"type": "string"},
                "name": {"type": "string"},
                "species": {"type": "string"},
                "breed": {"type": "string"},
                "age": {"type": "integer"},
                "gender": {"type": "string"},
                "description": {"type": "string"},
                "health_info": {"type": "string"},
                "behavior_info": {"type": "string"},
                "adoption_status": {"type": "string", "enum": ["available", "pending", "adopted"]},
                "image_filename": {"type": "string"},
                "size": {"type": "string"},
                "energy_level": {"type": "string"},
                "good_with_children": {"type": "boolean"},
                "good_with_other_pets": {"type": "boolean"},
                "special_needs": {"type": "boolean"},
                "training_level": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "pets.updateStatusRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["available", "pending", "adopted"]}
            }
        },
        "products.productResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "category": {"type": "string"},
                "price": {"type": "number"},
                "description": {"type": "string"},
                "stock": {"type": "integer"},
                "in_stock": {"type": "boolean"},
                "image_filename": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "products.productListResponse": {
            "type": "object",
            "properties": {
                "products": {"type": "array", "items": {"$ref": "#/definitions/products.productResponse"}},
                "categories": {"type": "array", "items": {"type": "string"}},
                "active_category": {"type": "string"},
                "page": {"type": "integer"}
            }
        },
        "products.productDetailResponse": {
            "type": "object",
            "allOf": [{"$ref": "#/definitions/products.productResponse"}],
            "properties": {
                "related_products": {"type": "array", "items": {"$ref": "#/definitions/products.productResponse"}}
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
	Title:            "Pet Adoption API",
	Description:      "Listado de mascotas en adopción, matching por preferencias, tienda y donaciones.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
