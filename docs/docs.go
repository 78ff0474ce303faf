// Package docs registra el documento OpenAPI de la API en swag.
package docs

import (
	_ "embed"

	"github.com/swaggo/swag"
)

//go:embed swagger.json
var docTemplate string

// SwaggerInfo información del documento; Host y BasePath se pueden ajustar al arrancar.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Inventario de equipos API",
	Description:      "API del inventario de equipos institucional.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

// JSON devuelve el documento registrado.
func JSON() []byte {
	return []byte(SwaggerInfo.ReadDoc())
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
