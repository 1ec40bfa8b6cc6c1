package domain

// FavoriteEntry: фильм в избранном пользователя,
// соответствует таблице favorite_movies. Ключ (user_id, movie_id) уникален.
type FavoriteEntry struct {
	UserID  string `json:"user_id" db:"user_id" gorm:"primaryKey"`
	MovieID string `json:"movie_id" db:"movie_id" gorm:"primaryKey"`
}

func (FavoriteEntry) TableName() string {
	return "favorite_movies"
}

// WatchlistEntry: фильм в списке "посмотреть позже",
// соответствует таблице watchlist_movies
type WatchlistEntry struct {
	UserID  string `json:"user_id" db:"user_id" gorm:"primaryKey"`
	MovieID string `json:"movie_id" db:"movie_id" gorm:"primaryKey"`
	Watched bool   `json:"watched" db:"watched" gorm:"not null"`
}

func (WatchlistEntry) TableName() string {
	return "watchlist_movies"
}

// RatingEntry: оценка фильма пользователем, соответствует таблице valuation_movies.
// Колонка исторически называется valoration.
type RatingEntry struct {
	UserID    string  `json:"user_id" db:"user_id" gorm:"primaryKey"`
	MovieID   string  `json:"movie_id" db:"movie_id" gorm:"primaryKey"`
	Valuation float64 `json:"valoration" db:"valoration" gorm:"column:valoration;not null"`
}

func (RatingEntry) TableName() string {
	return "valuation_movies"
}

// RatingRequest: тело запроса POST /:userId/rate/:movieId.
// Указатели отличают отсутствующее поле от нулевого значения.
type RatingRequest struct {
	Rating *float64 `json:"rating"`
}

// WatchedRequest: тело запроса POST /:userId/watched/:movieId
type WatchedRequest struct {
	Watched *bool `json:"watched"`
}
