package dto

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Patrones oficiales de identificadores mexicanos. Se validan sobre el
// valor en mayúsculas; la capa de servicio normaliza antes de guardar.
var (
	reCURP   = regexp.MustCompile(`^[A-Z]{4}\d{6}[HM][A-Z]{5}\d{2}$`)
	reRFC    = regexp.MustCompile(`^[A-ZÑ&]{3,4}\d{6}[A-Z0-9]{3}$`)
	reNSS    = regexp.MustCompile(`^\d{11}$`)
	reCLABE  = regexp.MustCompile(`^\d{18}$`)
	reCuenta = regexp.MustCompile(`^\d{10,20}$`)
)

// RegistrarValidadores registra los validadores de dominio en el motor
// de binding de gin y hace que los errores de validación reporten el
// nombre json del campo en lugar del nombre del struct.
func RegistrarValidadores() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("motor de validación inesperado: %T", binding.Validator.Engine())
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validadores := map[string]*regexp.Regexp{
		"curp":           reCURP,
		"rfc":            reRFC,
		"nss":            reNSS,
		"clabe":          reCLABE,
		"cuentabancaria": reCuenta,
	}
	for tag, re := range validadores {
		re := re
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return re.MatchString(strings.ToUpper(strings.TrimSpace(fl.Field().String())))
		}); err != nil {
			return fmt.Errorf("registrar validador %q: %w", tag, err)
		}
	}

	return nil
}
