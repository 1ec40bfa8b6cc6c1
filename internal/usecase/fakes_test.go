package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/GoArmGo/MovieApp/internal/domain"
)

type key struct{ user, movie string }

// fakeUserStorage эмулирует таблицу users с уникальным email
type fakeUserStorage struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]domain.User
	err    error
}

func newFakeUserStorage() *fakeUserStorage {
	return &fakeUserStorage{users: map[string]domain.User{}}
}

func (s *fakeUserStorage) CreateUser(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if _, ok := s.users[user.Email]; ok {
		return domain.ErrEmailTaken
	}
	s.nextID++
	user.ID = s.nextID
	s.users[user.Email] = *user
	return nil
}

func (s *fakeUserStorage) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

// fakePlainHasher: хэширование без bcrypt, чтобы тесты были быстрыми
type fakePlainHasher struct{}

func (fakePlainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakePlainHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return domain.ErrWrongPassword
	}
	return nil
}

type fakeTokenIssuer struct {
	issued []string
	err    error
}

func (f *fakeTokenIssuer) Issue(email string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.issued = append(f.issued, email)
	return "token-for-" + email, nil
}

// fakeListStorage эмулирует три таблицы со списками фильмов
type fakeListStorage struct {
	mu        sync.Mutex
	favorites map[key]domain.FavoriteEntry
	watchlist map[key]domain.WatchlistEntry
	ratings   map[key]domain.RatingEntry
	err       error
}

func newFakeListStorage() *fakeListStorage {
	return &fakeListStorage{
		favorites: map[key]domain.FavoriteEntry{},
		watchlist: map[key]domain.WatchlistEntry{},
		ratings:   map[key]domain.RatingEntry{},
	}
}

var errFakeStorage = &domain.StorageError{Op: "fake", Err: errors.New("connection refused")}

func (s *fakeListStorage) FavoriteExists(_ context.Context, u, m string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return false, s.err
	}
	_, ok := s.favorites[key{u, m}]
	return ok, nil
}

func (s *fakeListStorage) AddFavorite(_ context.Context, e domain.FavoriteEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	k := key{e.UserID, e.MovieID}
	if _, ok := s.favorites[k]; ok {
		return domain.ErrAlreadyInFavorites
	}
	s.favorites[k] = e
	return nil
}

func (s *fakeListStorage) RemoveFavorite(_ context.Context, u, m string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	delete(s.favorites, key{u, m})
	return nil
}

func (s *fakeListStorage) ListFavorites(_ context.Context, u string) ([]domain.FavoriteEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	var out []domain.FavoriteEntry
	for k, e := range s.favorites {
		if k.user == u {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *fakeListStorage) WatchlistExists(_ context.Context, u, m string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return false, s.err
	}
	_, ok := s.watchlist[key{u, m}]
	return ok, nil
}

func (s *fakeListStorage) AddToWatchlist(_ context.Context, e domain.WatchlistEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	k := key{e.UserID, e.MovieID}
	if _, ok := s.watchlist[k]; ok {
		return domain.ErrAlreadyInWatchlist
	}
	s.watchlist[k] = e
	return nil
}

func (s *fakeListStorage) RemoveFromWatchlist(_ context.Context, u, m string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	delete(s.watchlist, key{u, m})
	return nil
}

func (s *fakeListStorage) SetWatched(_ context.Context, u, m string, watched bool) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	e, ok := s.watchlist[key{u, m}]
	if !ok {
		return 0, nil
	}
	e.Watched = watched
	s.watchlist[key{u, m}] = e
	return 1, nil
}

func (s *fakeListStorage) ListWatchlist(_ context.Context, u string) ([]domain.WatchlistEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	var out []domain.WatchlistEntry
	for k, e := range s.watchlist {
		if k.user == u {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *fakeListStorage) GetRating(_ context.Context, u, m string) ([]domain.RatingEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	if e, ok := s.ratings[key{u, m}]; ok {
		return []domain.RatingEntry{e}, nil
	}
	return nil, nil
}

func (s *fakeListStorage) UpsertRating(_ context.Context, e domain.RatingEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.ratings[key{e.UserID, e.MovieID}] = e
	return nil
}

func (s *fakeListStorage) RemoveRating(_ context.Context, u, m string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	delete(s.ratings, key{u, m})
	return nil
}

func (s *fakeListStorage) ListRatings(_ context.Context, u string) ([]domain.RatingEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	var out []domain.RatingEntry
	for k, e := range s.ratings {
		if k.user == u {
			out = append(out, e)
		}
	}
	return out, nil
}
