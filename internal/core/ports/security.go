package ports

// PasswordHasher хэширует и проверяет пароли
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare возвращает domain.ErrWrongPassword при несовпадении
	Compare(hash, password string) error
}

// TokenIssuer выпускает подписанные токены с ограниченным сроком жизни
type TokenIssuer interface {
	Issue(email string) (string, error)
}
