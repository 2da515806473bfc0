package dto

// ── Empleados ──

// CreateEmpleadoRequest alta de empleado.
// curp/rfc/nss/clabe/cuenta usan validadores registrados en el router.
type CreateEmpleadoRequest struct {
	NumEmpleado     string  `json:"num_empleado"     binding:"required,min=1,max=50"`
	Nombres         string  `json:"nombres"          binding:"required,min=1,max=150"`
	ApellidoPaterno string  `json:"apellido_paterno" binding:"required,min=1,max=100"`
	ApellidoMaterno *string `json:"apellido_materno" binding:"omitempty,max=100"`

	FechaNacimiento *string `json:"fecha_nacimiento" binding:"omitempty,datetime=2006-01-02"`
	Genero          *string `json:"genero"           binding:"omitempty,oneof=M F O"`
	EstadoCivil     *string `json:"estado_civil"     binding:"omitempty,oneof=soltero casado union_libre divorciado viudo"`
	CURP            *string `json:"curp"             binding:"omitempty,curp"`
	RFC             *string `json:"rfc"              binding:"omitempty,rfc"`
	NSS             *string `json:"nss"              binding:"omitempty,nss"`
	Telefono        *string `json:"telefono"         binding:"omitempty,max=20"`
	Celular         *string `json:"celular"          binding:"omitempty,max=20"`
	Email           *string `json:"email"            binding:"omitempty,email"`

	Calle     *string `json:"calle"     binding:"omitempty,max=120"`
	Numero    *string `json:"numero"    binding:"omitempty,max=20"`
	Colonia   *string `json:"colonia"   binding:"omitempty,max=120"`
	Municipio *string `json:"municipio" binding:"omitempty,max=120"`
	Estado    *string `json:"estado"    binding:"omitempty,max=120"`
	CP        *string `json:"cp"        binding:"omitempty,max=10"`

	Departamento *uint    `json:"departamento" binding:"omitempty,min=1"`
	Puesto       *uint    `json:"puesto"       binding:"omitempty,min=1"`
	Turno        *uint    `json:"turno"        binding:"omitempty,min=1"`
	Horario      *uint    `json:"horario"      binding:"omitempty,min=1"`
	FechaIngreso *string  `json:"fecha_ingreso" binding:"omitempty,datetime=2006-01-02"`
	Activo       *bool    `json:"activo"`
	Sueldo       *float64 `json:"sueldo"        binding:"omitempty,min=0"`
	TipoContrato *string  `json:"tipo_contrato" binding:"omitempty,oneof=determinado indeterminado obra"`
	TipoJornada  *string  `json:"tipo_jornada"  binding:"omitempty,oneof=diurna mixta nocturna"`

	Banco  *string `json:"banco"  binding:"omitempty,max=120"`
	CLABE  *string `json:"clabe"  binding:"omitempty,clabe"`
	Cuenta *string `json:"cuenta" binding:"omitempty,cuentabancaria"`

	ContactoEmergenciaNombre     *string `json:"contacto_emergencia_nombre"     binding:"omitempty,max=150"`
	ContactoEmergenciaParentesco *string `json:"contacto_emergencia_parentesco" binding:"omitempty,max=60"`
	ContactoEmergenciaTelefono   *string `json:"contacto_emergencia_telefono"   binding:"omitempty,max=20"`
	Escolaridad                  *string `json:"escolaridad"                    binding:"omitempty,max=100"`
	Notas                        *string `json:"notas"`
	Foto                         *string `json:"foto" binding:"omitempty,max=255"`
}

// UpdateEmpleadoRequest modificación parcial de empleado
type UpdateEmpleadoRequest struct {
	NumEmpleado     *string `json:"num_empleado"     binding:"omitempty,min=1,max=50"`
	Nombres         *string `json:"nombres"          binding:"omitempty,min=1,max=150"`
	ApellidoPaterno *string `json:"apellido_paterno" binding:"omitempty,min=1,max=100"`
	ApellidoMaterno *string `json:"apellido_materno" binding:"omitempty,max=100"`

	FechaNacimiento *string `json:"fecha_nacimiento" binding:"omitempty,datetime=2006-01-02"`
	Genero          *string `json:"genero"           binding:"omitempty,oneof=M F O"`
	EstadoCivil     *string `json:"estado_civil"     binding:"omitempty,oneof=soltero casado union_libre divorciado viudo"`
	CURP            *string `json:"curp"             binding:"omitempty,curp"`
	RFC             *string `json:"rfc"              binding:"omitempty,rfc"`
	NSS             *string `json:"nss"              binding:"omitempty,nss"`
	Telefono        *string `json:"telefono"         binding:"omitempty,max=20"`
	Celular         *string `json:"celular"          binding:"omitempty,max=20"`
	Email           *string `json:"email"            binding:"omitempty,email"`

	Calle     *string `json:"calle"     binding:"omitempty,max=120"`
	Numero    *string `json:"numero"    binding:"omitempty,max=20"`
	Colonia   *string `json:"colonia"   binding:"omitempty,max=120"`
	Municipio *string `json:"municipio" binding:"omitempty,max=120"`
	Estado    *string `json:"estado"    binding:"omitempty,max=120"`
	CP        *string `json:"cp"        binding:"omitempty,max=10"`

	Departamento *uint    `json:"departamento"`
	Puesto       *uint    `json:"puesto"`
	Turno        *uint    `json:"turno"`
	Horario      *uint    `json:"horario"`
	FechaIngreso *string  `json:"fecha_ingreso" binding:"omitempty,datetime=2006-01-02"`
	Activo       *bool    `json:"activo"`
	Sueldo       *float64 `json:"sueldo"        binding:"omitempty,min=0"`
	TipoContrato *string  `json:"tipo_contrato" binding:"omitempty,oneof=determinado indeterminado obra"`
	TipoJornada  *string  `json:"tipo_jornada"  binding:"omitempty,oneof=diurna mixta nocturna"`

	Banco  *string `json:"banco"  binding:"omitempty,max=120"`
	CLABE  *string `json:"clabe"  binding:"omitempty,clabe"`
	Cuenta *string `json:"cuenta" binding:"omitempty,cuentabancaria"`

	ContactoEmergenciaNombre     *string `json:"contacto_emergencia_nombre"     binding:"omitempty,max=150"`
	ContactoEmergenciaParentesco *string `json:"contacto_emergencia_parentesco" binding:"omitempty,max=60"`
	ContactoEmergenciaTelefono   *string `json:"contacto_emergencia_telefono"   binding:"omitempty,max=20"`
	Escolaridad                  *string `json:"escolaridad"                    binding:"omitempty,max=100"`
	Notas                        *string `json:"notas"`
	Foto                         *string `json:"foto" binding:"omitempty,max=255"`
}

// EmpleadoListRequest parámetros de listado/búsqueda de empleados
type EmpleadoListRequest struct {
	Q                  string `form:"q"`
	Activo             *bool  `form:"activo"`
	Departamento       *uint  `form:"departamento"`
	Puesto             *uint  `form:"puesto"`
	DepartamentoNombre string `form:"departamento_nombre"`
	PuestoNombre       string `form:"puesto_nombre"`
	Genero             string `form:"genero"`
	Ordering           string `form:"ordering"`
	SoftDeleteFilter
	PaginationRequest
}

// BulkIDsRequest operación en lote sobre un conjunto de ids
type BulkIDsRequest struct {
	IDs []uint `json:"ids" binding:"required,min=1,dive,min=1"`
}

// BulkResponse total de registros afectados por una operación en lote
type BulkResponse struct {
	Affected int64 `json:"affected"`
}

// EmpleadoResponse empleado serializado con derivados de lectura
type EmpleadoResponse struct {
	ID              uint    `json:"id"`
	NumEmpleado     string  `json:"num_empleado"`
	Nombres         string  `json:"nombres"`
	ApellidoPaterno string  `json:"apellido_paterno"`
	ApellidoMaterno *string `json:"apellido_materno"`

	FechaNacimiento    *string `json:"fecha_nacimiento"`
	Genero             *string `json:"genero"`
	GeneroDisplay      *string `json:"genero_display"`
	EstadoCivil        *string `json:"estado_civil"`
	EstadoCivilDisplay *string `json:"estado_civil_display"`
	CURP               *string `json:"curp"`
	RFC                *string `json:"rfc"`
	NSS                *string `json:"nss"`
	Telefono           *string `json:"telefono"`
	Celular            *string `json:"celular"`
	Email              *string `json:"email"`

	Calle     *string `json:"calle"`
	Numero    *string `json:"numero"`
	Colonia   *string `json:"colonia"`
	Municipio *string `json:"municipio"`
	Estado    *string `json:"estado"`
	CP        *string `json:"cp"`

	DepartamentoID     *uint   `json:"departamento_id"`
	DepartamentoNombre *string `json:"departamento_nombre"`
	PuestoID           *uint   `json:"puesto_id"`
	PuestoNombre       *string `json:"puesto_nombre"`
	TurnoID            *uint   `json:"turno_id"`
	TurnoNombre        *string `json:"turno_nombre"`
	HorarioID          *uint   `json:"horario_id"`
	HorarioNombre      *string `json:"horario_nombre"`

	FechaIngreso *string  `json:"fecha_ingreso"`
	Activo       bool     `json:"activo"`
	Sueldo       *float64 `json:"sueldo"`
	TipoContrato *string  `json:"tipo_contrato"`
	TipoJornada  *string  `json:"tipo_jornada"`

	Banco  *string `json:"banco"`
	CLABE  *string `json:"clabe"`
	Cuenta *string `json:"cuenta"`

	ContactoEmergenciaNombre     *string `json:"contacto_emergencia_nombre"`
	ContactoEmergenciaParentesco *string `json:"contacto_emergencia_parentesco"`
	ContactoEmergenciaTelefono   *string `json:"contacto_emergencia_telefono"`
	Escolaridad                  *string `json:"escolaridad"`
	Notas                        *string `json:"notas"`

	Foto    *string `json:"foto"`
	FotoURL *string `json:"foto_url"`

	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
	DeletedAt *string `json:"deleted_at"`
}
