package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/netrok/rh-api/internal/api/middleware"
	"github.com/netrok/rh-api/pkg/response"
)

// usuarioDelContexto regresa el ID del usuario autenticado para la
// atribución de historial, o nil si la ruta no pasó por JWTAuth.
func usuarioDelContexto(c *gin.Context) *uint {
	p := middleware.GetPrincipal(c)
	if p == nil {
		return nil
	}
	id := p.UserID
	return &id
}

// parseID extrae el parámetro :id de la ruta. Con ok=false ya se
// escribió la respuesta 400 y el handler debe regresar.
func parseID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(c, 10001, "id inválido")
		return 0, false
	}
	return uint(id), true
}

// incluirEliminados lee el parámetro include_deleted de la query
func incluirEliminados(c *gin.Context) bool {
	v, _ := strconv.ParseBool(c.Query("include_deleted"))
	return v
}

// errorDeBind respuesta 400 para errores de binding.
// Los errores del validador se desglosan campo por campo; cualquier
// otro error de deserialización produce un mensaje genérico.
func errorDeBind(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = mensajeDeValidacion(fe)
		}
		response.ValidationError(c, 10001, fields)
		return
	}
	response.BadRequest(c, 10001, "cuerpo de la petición inválido")
}

func mensajeDeValidacion(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "este campo es obligatorio"
	case "min":
		return "longitud o valor mínimo: " + fe.Param()
	case "max":
		return "longitud o valor máximo: " + fe.Param()
	case "email":
		return "correo electrónico inválido"
	case "oneof":
		return "valor fuera del conjunto permitido: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "datetime":
		return "fecha inválida, se espera el formato AAAA-MM-DD"
	case "curp":
		return "CURP inválida"
	case "rfc":
		return "RFC inválido"
	case "nss":
		return "NSS inválido (11 dígitos)"
	case "clabe":
		return "CLABE debe tener 18 dígitos"
	case "cuentabancaria":
		return "cuenta bancaria entre 10 y 20 dígitos"
	default:
		return "valor inválido"
	}
}
