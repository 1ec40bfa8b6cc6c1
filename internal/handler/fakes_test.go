package handler

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/GoArmGo/MovieApp/internal/domain"
	"github.com/GoArmGo/MovieApp/internal/security"
	"golang.org/x/crypto/bcrypt"
)

var errBoom = &domain.StorageError{Op: "query", Err: errors.New("connection refused")}

type fakeIdentity struct {
	users map[string]domain.User
	pass  map[string]string
	err   error
}

func newFakeIdentity() *fakeIdentity {
	return &fakeIdentity{
		users: map[string]domain.User{},
		pass:  map[string]string{},
	}
}

func (f *fakeIdentity) LookupField(_ context.Context, email string, field domain.UserField) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	u, ok := f.users[email]
	if !ok {
		return "", domain.ErrUserNotFound
	}
	switch field {
	case domain.UserFieldName:
		return u.Name, nil
	case domain.UserFieldLastName:
		return u.LastName, nil
	default:
		return "7", nil
	}
}

func (f *fakeIdentity) SignUp(_ context.Context, req domain.SignUpRequest) (*domain.AuthResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	// настоящий bcrypt, чтобы проверить его ограничения на длину пароля
	if _, err := security.NewBcryptHasher(bcrypt.MinCost).Hash(req.Password); err != nil {
		return nil, fmt.Errorf("usecase: signup: %w", err)
	}
	if _, ok := f.users[req.Email]; ok {
		return nil, domain.ErrEmailTaken
	}
	f.users[req.Email] = domain.User{Email: req.Email, Name: req.Name, LastName: req.LastName}
	f.pass[req.Email] = req.Password
	return &domain.AuthResult{Email: req.Email, Token: "token-" + req.Email}, nil
}

func (f *fakeIdentity) Login(_ context.Context, req domain.LoginRequest) (*domain.AuthResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	pw, ok := f.pass[req.Email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if pw != req.Password {
		return nil, domain.ErrWrongPassword
	}
	return &domain.AuthResult{Email: req.Email, Token: "token-" + req.Email}, nil
}

type key struct{ user, movie string }

type fakeLists struct {
	mu        sync.Mutex
	favorites map[key]bool
	watchlist map[key]bool
	ratings   map[key]float64
	err       error
}

func newFakeLists() *fakeLists {
	return &fakeLists{
		favorites: map[key]bool{},
		watchlist: map[key]bool{},
		ratings:   map[key]float64{},
	}
}

func (f *fakeLists) IsFavorite(_ context.Context, u, m string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.favorites[key{u, m}]
	return ok, nil
}

func (f *fakeLists) AddFavorite(_ context.Context, u, m string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if f.favorites[key{u, m}] {
		return domain.ErrAlreadyInFavorites
	}
	f.favorites[key{u, m}] = true
	return nil
}

func (f *fakeLists) RemoveFavorite(_ context.Context, u, m string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	delete(f.favorites, key{u, m})
	return nil
}

func (f *fakeLists) ListFavorites(_ context.Context, u string) ([]domain.FavoriteEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := []domain.FavoriteEntry{}
	for k := range f.favorites {
		if k.user == u {
			out = append(out, domain.FavoriteEntry{UserID: k.user, MovieID: k.movie})
		}
	}
	return out, nil
}

func (f *fakeLists) IsInWatchlist(_ context.Context, u, m string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.watchlist[key{u, m}]
	return ok, nil
}

func (f *fakeLists) AddToWatchlist(_ context.Context, u, m string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, ok := f.watchlist[key{u, m}]; ok {
		return domain.ErrAlreadyInWatchlist
	}
	f.watchlist[key{u, m}] = false
	return nil
}

func (f *fakeLists) RemoveFromWatchlist(_ context.Context, u, m string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	delete(f.watchlist, key{u, m})
	return nil
}

func (f *fakeLists) SetWatched(_ context.Context, u, m string, watched bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, ok := f.watchlist[key{u, m}]; ok {
		f.watchlist[key{u, m}] = watched
	}
	return nil
}

func (f *fakeLists) ListWatchlist(_ context.Context, u string) ([]domain.WatchlistEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := []domain.WatchlistEntry{}
	for k, w := range f.watchlist {
		if k.user == u {
			out = append(out, domain.WatchlistEntry{UserID: k.user, MovieID: k.movie, Watched: w})
		}
	}
	return out, nil
}

func (f *fakeLists) GetRating(_ context.Context, u, m string) ([]domain.RatingEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	v, ok := f.ratings[key{u, m}]
	if !ok {
		return []domain.RatingEntry{}, nil
	}
	return []domain.RatingEntry{{UserID: u, MovieID: m, Valuation: v}}, nil
}

func (f *fakeLists) SetRating(_ context.Context, u, m string, rating float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.ratings[key{u, m}] = rating
	return nil
}

func (f *fakeLists) RemoveRating(_ context.Context, u, m string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	delete(f.ratings, key{u, m})
	return nil
}

func (f *fakeLists) ListRatings(_ context.Context, u string) ([]domain.RatingEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := []domain.RatingEntry{}
	for k, v := range f.ratings {
		if k.user == u {
			out = append(out, domain.RatingEntry{UserID: k.user, MovieID: k.movie, Valuation: v})
		}
	}
	return out, nil
}

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

type countingRecorder struct {
	mu    sync.Mutex
	calls map[string]int
}

func (c *countingRecorder) RecordAuthFailure(op, reason string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.calls == nil {
		c.calls = map[string]int{}
	}
	c.calls[op+"/"+reason]++
}
