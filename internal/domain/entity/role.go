package entity

// Role es el conjunto cerrado de roles del sistema. Cada rol determina la
// vista de aterrizaje y las acciones permitidas; la tabla de permisos por
// ruta vive en la capa HTTP.
type Role string

const (
	RoleAccounting      Role = "accounting"
	RoleCommercialAgent Role = "commercial_agent"
	RoleCommercialChief Role = "commercial_chief"
	RoleStock           Role = "stock"
	RoleFinance         Role = "finance"
	RoleManagement      Role = "management"
)

// Roles lista todos los roles válidos, en orden estable para formularios.
func Roles() []Role {
	return []Role{
		RoleAccounting,
		RoleCommercialAgent,
		RoleCommercialChief,
		RoleStock,
		RoleFinance,
		RoleManagement,
	}
}

// Valid indica si el rol pertenece al conjunto cerrado.
func (r Role) Valid() bool {
	switch r {
	case RoleAccounting, RoleCommercialAgent, RoleCommercialChief,
		RoleStock, RoleFinance, RoleManagement:
		return true
	}
	return false
}

// ParseRole convierte una cadena en Role; ok=false si no es un rol conocido.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.Valid()
}

func (r Role) String() string { return string(r) }
