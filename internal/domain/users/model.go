package users

// Role define los roles soportados.
// @Enum user, admin
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User es el documento de usuario.
// Pets guarda referencias (ObjectId hex) a mascotas; el usuario no maneja su ciclo de vida.
type User struct {
	ID string

	FirstName string
	LastName  string
	Email     string
	Age       float64

	// Se guarda tal cual llega (sin hash).
	Password string

	Role Role
	Pets []string
}

// Patch lleva solo los campos enviados en un PUT; nil = no tocar.
type Patch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Age       *float64
	Password  *string
	Role      *Role
	Pets      *[]string
}

func (p Patch) IsEmpty() bool {
	return p.FirstName == nil &&
		p.LastName == nil &&
		p.Email == nil &&
		p.Age == nil &&
		p.Password == nil &&
		p.Role == nil &&
		p.Pets == nil
}

// Apply devuelve u con los campos del patch aplicados (lo usan los repos sin $set nativo).
func (p Patch) Apply(u User) User {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Age != nil {
		u.Age = *p.Age
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Pets != nil {
		u.Pets = append([]string{}, (*p.Pets)...)
	}
	return u
}
