package model

// Grupo grupo de permisos — grupos
type Grupo struct {
	ID     uint   `gorm:"primaryKey"                       json:"id"`
	Nombre string `gorm:"type:varchar(80);not null;unique" json:"nombre"`
}

// TableName nombre de tabla
func (Grupo) TableName() string { return "grupos" }

// Usuario cuenta que opera la API — usuarios
type Usuario struct {
	ID           uint   `gorm:"primaryKey"                        json:"id"`
	Username     string `gorm:"type:varchar(150);not null;unique" json:"username"`
	Email        string `gorm:"type:varchar(255);not null"        json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"        json:"-"`
	IsStaff      bool   `gorm:"not null;default:false"            json:"is_staff"`
	IsSuperuser  bool   `gorm:"not null;default:false"            json:"is_superuser"`
	Activo       bool   `gorm:"not null;default:true"             json:"activo"`
	BaseModel

	Grupos []Grupo `gorm:"many2many:usuario_grupos;joinForeignKey:UsuarioID;joinReferences:GrupoID" json:"grupos,omitempty"`
}

// TableName nombre de tabla
func (Usuario) TableName() string { return "usuarios" }

// GroupNames nombres de los grupos del usuario
func (u *Usuario) GroupNames() []string {
	names := make([]string, 0, len(u.Grupos))
	for _, g := range u.Grupos {
		names = append(names, g.Nombre)
	}
	return names
}
