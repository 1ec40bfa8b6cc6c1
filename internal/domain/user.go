package domain

// User представляет модель пользователя в системе.
// Соответствует таблице 'users' в базе данных.
type User struct {
	ID             int64  `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Email          string `json:"email" db:"email" gorm:"uniqueIndex;not null"`
	HashedPassword string `json:"-" db:"hashed_password" gorm:"column:hashed_password;not null"`
	Name           string `json:"name" db:"name"`
	LastName       string `json:"last_name" db:"last_name"`
}

func (User) TableName() string {
	return "users"
}

// UserField: поле профиля, которое можно получить по email
type UserField string

const (
	UserFieldName     UserField = "name"
	UserFieldLastName UserField = "last_name"
	UserFieldID       UserField = "id"
)

// SignUpRequest: тело запроса POST /signup
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	LastName string `json:"lastName"`
}

// LoginRequest: тело запроса POST /login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult возвращается после успешной регистрации или входа
type AuthResult struct {
	Email string `json:"email"`
	Token string `json:"token"`
}
