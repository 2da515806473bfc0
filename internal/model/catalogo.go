package model

// CatalogoFields forma común de los cuatro catálogos (Departamento,
// Puesto, Turno, Horario). La unicidad de nombre y clave aplica solo
// entre registros vivos (índices parciales en la migración).
type CatalogoFields struct {
	ID     uint    `gorm:"primaryKey"                json:"id"`
	Nombre string  `gorm:"type:varchar(120);not null" json:"nombre"`
	Clave  *string `gorm:"type:varchar(20)"           json:"clave"`
	Activo bool    `gorm:"not null;default:true"      json:"activo"`
	SoftDeleteModel
}

// Catalogo acceso a los campos comunes; habilita los repositorios y
// servicios genéricos sobre las cuatro entidades.
func (f *CatalogoFields) Catalogo() *CatalogoFields { return f }

// Catalogable entidad con la forma común de catálogo
type Catalogable interface {
	Catalogo() *CatalogoFields
	TableName() string
}

// Departamento catálogo de departamentos — cat_departamentos
type Departamento struct {
	CatalogoFields
}

// TableName nombre de tabla
func (Departamento) TableName() string { return "cat_departamentos" }

// Puesto catálogo de puestos — cat_puestos.
// Extiende la forma común con la referencia opcional a Departamento.
type Puesto struct {
	CatalogoFields
	DepartamentoID *uint         `gorm:"index" json:"departamento"`
	Departamento   *Departamento `gorm:"foreignKey:DepartamentoID" json:"-"`
}

// TableName nombre de tabla
func (Puesto) TableName() string { return "cat_puestos" }

// Turno catálogo de turnos — cat_turnos
type Turno struct {
	CatalogoFields
}

// TableName nombre de tabla
func (Turno) TableName() string { return "cat_turnos" }

// Horario catálogo de horarios — cat_horarios
type Horario struct {
	CatalogoFields
}

// TableName nombre de tabla
func (Horario) TableName() string { return "cat_horarios" }
