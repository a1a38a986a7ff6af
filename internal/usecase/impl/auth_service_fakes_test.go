package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"ledger/internal/domain/entity"
	"ledger/internal/domain/repository"
	"ledger/internal/domain/service"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeUserRepo is an in-memory UserRepository keyed by email.
type fakeUserRepo struct {
	users     map[string]*entity.User
	createErr error
	findErr   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	if u, ok := r.users[email]; ok {
		return u, nil
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.Email] = user

	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := r.users[user.Email]; !ok {
		return repository.ErrUserNotFound
	}
	r.users[user.Email] = user

	return nil
}

// fakeAPIKeyRepo is an in-memory APIKeyRepository keyed by prefix.
type fakeAPIKeyRepo struct {
	keys      map[string]*entity.APIKey
	createErr error
}

func newFakeAPIKeyRepo() *fakeAPIKeyRepo {
	return &fakeAPIKeyRepo{keys: make(map[string]*entity.APIKey)}
}

func (r *fakeAPIKeyRepo) Create(_ context.Context, key *entity.APIKey) error {
	if r.createErr != nil {
		return r.createErr
	}
	key.ID = uuid.New()
	key.CreatedAt = time.Now()
	r.keys[key.Prefix] = key

	return nil
}

func (r *fakeAPIKeyRepo) FindByPrefix(_ context.Context, prefix string) (*entity.APIKey, error) {
	if k, ok := r.keys[prefix]; ok {
		return k, nil
	}

	return nil, repository.ErrAPIKeyNotFound
}

func (r *fakeAPIKeyRepo) DeleteByPrefix(_ context.Context, prefix string) error {
	if _, ok := r.keys[prefix]; !ok {
		return repository.ErrAPIKeyNotFound
	}
	delete(r.keys, prefix)

	return nil
}

// fakeTokenStore is an in-memory RefreshTokenStore.
type fakeTokenStore struct {
	tokens      map[string]struct{}
	storeErr    error
	containsErr error
	deleteErr   error
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: make(map[string]struct{})}
}

func (s *fakeTokenStore) Store(_ context.Context, token string) error {
	if s.storeErr != nil {
		return s.storeErr
	}
	s.tokens[token] = struct{}{}

	return nil
}

func (s *fakeTokenStore) Contains(_ context.Context, token string) (bool, error) {
	if s.containsErr != nil {
		return false, s.containsErr
	}
	_, ok := s.tokens[token]

	return ok, nil
}

func (s *fakeTokenStore) Delete(_ context.Context, token string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.tokens, token)

	return nil
}

// fakeTxManager runs the callback against a factory backed by the fixture repos.
// No transactional behavior is simulated; the callback's error is passed through.
type fakeTxManager struct {
	factory *fakeRepoFactory
}

func (tm *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(tm.factory)
}

type fakeRepoFactory struct {
	userRepo   repository.UserRepository
	apiKeyRepo repository.APIKeyRepository
}

func (f *fakeRepoFactory) UserRepo() repository.UserRepository {
	return f.userRepo
}

func (f *fakeRepoFactory) APIKeyRepo() repository.APIKeyRepository {
	return f.apiKeyRepo
}

// fakePasswordHasher marks hashes with a recognizable prefix instead of
// running a real KDF, keeping the tests fast and deterministic.
type fakePasswordHasher struct {
	hashErr error
}

func (h *fakePasswordHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}

	return "hashed:" + password, nil
}

func (h *fakePasswordHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// fakeSecretHasher mirrors the stored digest format without running scrypt.
type fakeSecretHasher struct {
	hashErr error
}

func (h *fakeSecretHasher) HashSecret(secret string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}

	return h.HashSecretWithSalt(secret, "0011223344556677")
}

func (h *fakeSecretHasher) HashSecretWithSalt(secret, salt string) (string, error) {
	sum := sha256.Sum256([]byte(salt + secret))

	return "digestof(" + hex.EncodeToString(sum[:]) + ")." + salt, nil
}

func (h *fakeSecretHasher) VerifySecret(stored, candidate string) bool {
	rederived, _ := h.HashSecretWithSalt(candidate, "0011223344556677")

	return stored == rederived
}

// fakeCredentialGenerator returns fixed credential material.
type fakeCredentialGenerator struct {
	prefix    string
	secret    string
	prefixErr error
	secretErr error
}

func (g *fakeCredentialGenerator) Secret(_ int) (string, error) {
	if g.secretErr != nil {
		return "", g.secretErr
	}

	return g.secret, nil
}

func (g *fakeCredentialGenerator) Prefix() (string, error) {
	if g.prefixErr != nil {
		return "", g.prefixErr
	}

	return g.prefix, nil
}

// fakeTokenService issues predictable tokens and validates only the ones it issued.
type fakeTokenService struct {
	counter     int
	issued      map[string]*service.Claims
	generateErr error
	validateErr error
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{issued: make(map[string]*service.Claims)}
}

func (s *fakeTokenService) GenerateTokens(userID uuid.UUID, email string) (string, string, error) {
	if s.generateErr != nil {
		return "", "", s.generateErr
	}
	s.counter++
	access := "access-" + uuid.NewString()
	refresh := "refresh-" + uuid.NewString()
	s.issued[access] = &service.Claims{UserID: userID, Email: email, Type: "access"}
	s.issued[refresh] = &service.Claims{UserID: userID, Email: email, Type: "refresh"}

	return access, refresh, nil
}

func (s *fakeTokenService) ValidateAccessToken(token string) (*service.Claims, error) {
	return s.validate(token, "access")
}

func (s *fakeTokenService) ValidateRefreshToken(token string) (*service.Claims, error) {
	return s.validate(token, "refresh")
}

func (s *fakeTokenService) validate(token, wantType string) (*service.Claims, error) {
	if s.validateErr != nil {
		return nil, s.validateErr
	}
	claims, ok := s.issued[token]
	if !ok || claims.Type != wantType {
		return nil, errors.New("unknown token")
	}

	return claims, nil
}

func (s *fakeTokenService) RefreshTokenDuration() time.Duration {
	return 7 * 24 * time.Hour
}
