package model

import "time"

// ── Catálogos de opciones ──

// GeneroDisplay etiquetas legibles del género
var GeneroDisplay = map[string]string{
	"M": "Masculino",
	"F": "Femenino",
	"O": "Otro/No especifica",
}

// EstadoCivilDisplay etiquetas legibles del estado civil
var EstadoCivilDisplay = map[string]string{
	"soltero":     "Soltero(a)",
	"casado":      "Casado(a)",
	"union_libre": "Unión libre",
	"divorciado":  "Divorciado(a)",
	"viudo":       "Viudo(a)",
}

// TipoContratoDisplay etiquetas legibles del tipo de contrato
var TipoContratoDisplay = map[string]string{
	"determinado":   "Determinado",
	"indeterminado": "Indeterminado",
	"obra":          "Obra o proyecto",
}

// TipoJornadaDisplay etiquetas legibles del tipo de jornada
var TipoJornadaDisplay = map[string]string{
	"diurna":   "Diurna",
	"mixta":    "Mixta",
	"nocturna": "Nocturna",
}

// Empleado registro de empleado — empleados.
// num_empleado/curp/rfc/nss son únicos solo entre registros vivos: un
// empleado borrado lógicamente libera sus identificadores.
type Empleado struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Básicos
	NumEmpleado      string  `gorm:"type:varchar(50);not null"  json:"num_empleado"`
	Nombres          string  `gorm:"type:varchar(150);not null" json:"nombres"`
	ApellidoPaterno  string  `gorm:"type:varchar(100);not null" json:"apellido_paterno"`
	ApellidoMaterno  *string `gorm:"type:varchar(100)"          json:"apellido_materno"`

	// Personales
	FechaNacimiento *time.Time `gorm:"type:date"           json:"fecha_nacimiento"`
	Genero          *string    `gorm:"type:varchar(1)"     json:"genero"`
	EstadoCivil     *string    `gorm:"type:varchar(20)"    json:"estado_civil"`
	CURP            *string    `gorm:"column:curp;type:varchar(18)" json:"curp"`
	RFC             *string    `gorm:"column:rfc;type:varchar(13)"  json:"rfc"`
	NSS             *string    `gorm:"column:nss;type:varchar(11)"  json:"nss"`
	Telefono        *string    `gorm:"type:varchar(20)"    json:"telefono"`
	Celular         *string    `gorm:"type:varchar(20)"    json:"celular"`
	Email           *string    `gorm:"type:varchar(255)"   json:"email"`

	// Domicilio
	Calle     *string `gorm:"type:varchar(120)" json:"calle"`
	Numero    *string `gorm:"type:varchar(20)"  json:"numero"`
	Colonia   *string `gorm:"type:varchar(120)" json:"colonia"`
	Municipio *string `gorm:"type:varchar(120)" json:"municipio"`
	Estado    *string `gorm:"type:varchar(120)" json:"estado"`
	CP        *string `gorm:"column:cp;type:varchar(10)" json:"cp"`

	// Laboral
	DepartamentoID *uint      `gorm:"index"            json:"departamento_id"`
	PuestoID       *uint      `gorm:"index"            json:"puesto_id"`
	TurnoID        *uint      `gorm:"index"            json:"turno_id"`
	HorarioID      *uint      `gorm:"index"            json:"horario_id"`
	FechaIngreso   *time.Time `gorm:"type:date"        json:"fecha_ingreso"`
	Activo         bool       `gorm:"not null;default:true" json:"activo"`
	Sueldo         *float64   `gorm:"type:numeric(12,2)"    json:"sueldo"`
	TipoContrato   *string    `gorm:"type:varchar(20)"      json:"tipo_contrato"`
	TipoJornada    *string    `gorm:"type:varchar(20)"      json:"tipo_jornada"`

	// Bancario
	Banco  *string `gorm:"type:varchar(120)" json:"banco"`
	CLABE  *string `gorm:"column:clabe;type:varchar(18)" json:"clabe"`
	Cuenta *string `gorm:"type:varchar(20)"  json:"cuenta"`

	// Emergencia / otros
	ContactoEmergenciaNombre     *string `gorm:"type:varchar(150)" json:"contacto_emergencia_nombre"`
	ContactoEmergenciaParentesco *string `gorm:"type:varchar(60)"  json:"contacto_emergencia_parentesco"`
	ContactoEmergenciaTelefono   *string `gorm:"type:varchar(20)"  json:"contacto_emergencia_telefono"`
	Escolaridad                  *string `gorm:"type:varchar(100)" json:"escolaridad"`
	Notas                        *string `gorm:"type:text"         json:"notas"`

	// Foto (ruta relativa en el almacenamiento de media)
	Foto *string `gorm:"type:varchar(255)" json:"foto"`

	SoftDeleteModel

	// Relaciones
	Departamento *Departamento `gorm:"foreignKey:DepartamentoID" json:"-"`
	Puesto       *Puesto       `gorm:"foreignKey:PuestoID"       json:"-"`
	Turno        *Turno        `gorm:"foreignKey:TurnoID"        json:"-"`
	Horario      *Horario      `gorm:"foreignKey:HorarioID"      json:"-"`
}

// TableName nombre de tabla
func (Empleado) TableName() string { return "empleados" }
