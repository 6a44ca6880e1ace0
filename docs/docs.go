// Package docs registra la especificación OpenAPI de la API en swag para que
// el middleware de Swagger la sirva. El archivo swagger.json se regenera con
// `swag init -g cmd/api/main.go -o docs`.
package docs

import (
	_ "embed"

	"github.com/swaggo/swag"
)

//go:embed swagger.json
var doc string

// SwaggerInfo metadatos de la especificación.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Kardex API",
	Description:      "API de kardex: productos, ubicaciones, libro de movimientos y reportes de saldos derivados.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  doc,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
