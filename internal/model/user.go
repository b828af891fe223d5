package model

// Role — уровень доступа пользователя.
type Role string

const (
	RoleAdmin     Role = "Admin"
	RoleInspector Role = "Inspector"
	RoleEngineer  Role = "Engineer"
)

// User — учётная запись. Пользователи заводятся только при первичном
// заполнении хранилища и приложением не изменяются.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     Role   `json:"role"`
	Name     string `json:"name"`
}

// StripPassword возвращает копию пользователя без пароля.
// В таком виде запись сохраняется как активная сессия.
func (u User) StripPassword() User {
	u.Password = ""
	return u
}
