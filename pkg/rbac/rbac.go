package rbac

// Grupos estándar del proyecto.
const (
	GroupSuperAdmin = "SuperAdmin"
	GroupAdmin      = "Admin"
	GroupRRHH       = "RRHH"
	GroupGerente    = "Gerente"
	GroupSupervisor = "Supervisor"
	GroupUsuario    = "Usuario"
)

// aliasPairs alias legacy de nombres de grupo:
//
//	RH_ADMIN  ≈ Admin
//	RH_EDITOR ≈ RRHH
//
// La expansión es bidireccional: una asignación histórica con el nombre
// antiguo sigue siendo válida tras el renombre, y viceversa.
var aliasPairs = map[string]string{
	"RH_ADMIN":  GroupAdmin,
	"RH_EDITOR": GroupRRHH,
}

// WithAliases devuelve el conjunto de nombres más sus alias en ambos sentidos.
func WithAliases(names ...string) map[string]struct{} {
	expanded := make(map[string]struct{}, len(names)*2)
	for _, n := range names {
		expanded[n] = struct{}{}
		if modern, ok := aliasPairs[n]; ok {
			expanded[modern] = struct{}{}
		}
		for legacy, modern := range aliasPairs {
			if modern == n {
				expanded[legacy] = struct{}{}
			}
		}
	}
	return expanded
}

// Principal actor autenticado con sus banderas y membresías de grupo.
// Los grupos se cargan una vez por request (caché en el contexto).
type Principal struct {
	UserID      uint
	Username    string
	IsStaff     bool
	IsSuperuser bool
	Groups      []string
}

// InGroups true si el principal es superusuario o pertenece a alguno de
// los grupos dados (considerando alias legacy).
func (p *Principal) InGroups(names ...string) bool {
	if p == nil {
		return false
	}
	if p.IsSuperuser {
		return true
	}
	target := WithAliases(names...)
	for _, g := range p.Groups {
		if _, ok := target[g]; ok {
			return true
		}
	}
	return false
}

// CanWrite regla general de escritura: grupos permitidos, superusuario,
// o bandera de staff.
func (p *Principal) CanWrite(writeGroups ...string) bool {
	if p == nil {
		return false
	}
	if p.IsStaff {
		return true
	}
	return p.InGroups(writeGroups...)
}
