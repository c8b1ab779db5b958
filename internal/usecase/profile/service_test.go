package profile_test

import (
	"context"
	"errors"
	"testing"

	"profeed/internal/domain/entity"
	"profeed/internal/repository"
	profUC "profeed/internal/usecase/profile"
)

/* ───────── stub implementations ───────── */

// stubUserRepo is a minimal in-memory UserRepository.
type stubUserRepo struct {
	users map[string]string // id -> phone
	err   error
}

func newUserStub() *stubUserRepo {
	return &stubUserRepo{users: map[string]string{}}
}

func (s *stubUserRepo) ExistsByID(_ context.Context, id string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	_, ok := s.users[id]
	return ok, nil
}

func (s *stubUserRepo) ResolveIDByPhone(_ context.Context, phone string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	for id, p := range s.users {
		if p == phone {
			return id, nil
		}
	}
	return "", nil
}

// stubProfileRepo is a minimal in-memory ProfileRepository keyed by user ID.
type stubProfileRepo struct {
	users     *stubUserRepo
	data      map[string]*entity.Profile
	err       error
	createErr error
}

func newProfileStub(users *stubUserRepo) *stubProfileRepo {
	return &stubProfileRepo{users: users, data: map[string]*entity.Profile{}}
}

func (s *stubProfileRepo) GetByUserID(_ context.Context, userID string) (*entity.Profile, error) {
	return s.data[userID], s.err
}

func (s *stubProfileRepo) GetByPhone(ctx context.Context, phone string) (*entity.Profile, error) {
	if s.err != nil {
		return nil, s.err
	}
	userID, _ := s.users.ResolveIDByPhone(ctx, phone)
	if userID == "" {
		return nil, nil
	}
	return s.data[userID], nil
}

func (s *stubProfileRepo) ExistsByUserID(_ context.Context, userID string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	_, ok := s.data[userID]
	return ok, nil
}

func (s *stubProfileRepo) Create(_ context.Context, p *entity.Profile) error {
	if s.createErr != nil {
		return s.createErr
	}
	if s.err != nil {
		return s.err
	}
	if _, ok := s.data[p.UserID]; ok {
		return repository.ErrDuplicateProfile
	}
	s.data[p.UserID] = p
	return nil
}

func newService(users *stubUserRepo, profiles *stubProfileRepo) *profUC.Service {
	return &profUC.Service{Users: users, Profiles: profiles}
}

/* ───────── Create ───────── */

func TestCreateByUserID(t *testing.T) {
	users := newUserStub()
	users.users["user-1"] = "+15551230001"
	profiles := newProfileStub(users)
	svc := newService(users, profiles)

	got, err := svc.Create(context.Background(), profUC.CreateInput{
		UserID:   "user-1",
		Headline: "Backend Engineer",
		Skills:   []string{"Go", "PostgreSQL"},
		Score:    87.5,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got.UserID != "user-1" {
		t.Errorf("UserID = %q, want user-1", got.UserID)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt was not set")
	}
	if profiles.data["user-1"] == nil {
		t.Error("profile was not persisted")
	}
}

func TestCreateByPhoneNumber(t *testing.T) {
	users := newUserStub()
	users.users["user-2"] = "+15551230002"
	profiles := newProfileStub(users)
	svc := newService(users, profiles)

	got, err := svc.Create(context.Background(), profUC.CreateInput{
		PhoneNumber: "+15551230002",
		Headline:    "Designer",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got.UserID != "user-2" {
		t.Errorf("UserID = %q, want user-2 (resolved from phone)", got.UserID)
	}
}

func TestCreateUserIDTakesPrecedence(t *testing.T) {
	users := newUserStub()
	users.users["user-1"] = "+15551230001"
	users.users["user-2"] = "+15551230002"
	profiles := newProfileStub(users)
	svc := newService(users, profiles)

	got, err := svc.Create(context.Background(), profUC.CreateInput{
		UserID:      "user-1",
		PhoneNumber: "+15551230002",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got.UserID != "user-1" {
		t.Errorf("UserID = %q, want user-1 (ID wins over phone)", got.UserID)
	}
}

func TestCreateUserNotFoundByID(t *testing.T) {
	users := newUserStub()
	profiles := newProfileStub(users)
	svc := newService(users, profiles)

	_, err := svc.Create(context.Background(), profUC.CreateInput{UserID: "ghost"})
	if !errors.Is(err, profUC.ErrUserNotFound) {
		t.Errorf("Create() error = %v, want ErrUserNotFound", err)
	}
}

func TestCreateUserNotFoundByPhone(t *testing.T) {
	users := newUserStub()
	profiles := newProfileStub(users)
	svc := newService(users, profiles)

	_, err := svc.Create(context.Background(), profUC.CreateInput{PhoneNumber: "+15559990000"})
	if !errors.Is(err, profUC.ErrUserNotFound) {
		t.Errorf("Create() error = %v, want ErrUserNotFound", err)
	}
}

func TestCreateDuplicate(t *testing.T) {
	users := newUserStub()
	users.users["user-1"] = "+15551230001"
	profiles := newProfileStub(users)
	profiles.data["user-1"] = &entity.Profile{UserID: "user-1"}
	svc := newService(users, profiles)

	_, err := svc.Create(context.Background(), profUC.CreateInput{UserID: "user-1"})
	if !errors.Is(err, profUC.ErrDuplicateProfile) {
		t.Errorf("Create() error = %v, want ErrDuplicateProfile", err)
	}
}

func TestCreateDuplicateRace(t *testing.T) {
	// The pre-check passes but the insert hits the unique constraint,
	// simulating a concurrent create for the same user.
	users := newUserStub()
	users.users["user-1"] = "+15551230001"
	profiles := newProfileStub(users)
	profiles.createErr = repository.ErrDuplicateProfile
	svc := newService(users, profiles)

	_, err := svc.Create(context.Background(), profUC.CreateInput{UserID: "user-1"})
	if !errors.Is(err, profUC.ErrDuplicateProfile) {
		t.Errorf("Create() error = %v, want ErrDuplicateProfile", err)
	}
}

func TestCreateRepositoryError(t *testing.T) {
	users := newUserStub()
	users.users["user-1"] = "+15551230001"
	profiles := newProfileStub(users)
	profiles.err = errors.New("db down")
	svc := newService(users, profiles)

	_, err := svc.Create(context.Background(), profUC.CreateInput{UserID: "user-1"})
	if err == nil {
		t.Fatal("Create() error = nil, want wrapped repository error")
	}
	if errors.Is(err, profUC.ErrDuplicateProfile) || errors.Is(err, profUC.ErrUserNotFound) {
		t.Errorf("Create() error = %v, want a plain repository error", err)
	}
}

/* ───────── GetByUserID ───────── */

func TestGetByUserID(t *testing.T) {
	users := newUserStub()
	users.users["user-1"] = "+15551230001"
	profiles := newProfileStub(users)
	profiles.data["user-1"] = &entity.Profile{UserID: "user-1", Headline: "Engineer"}
	svc := newService(users, profiles)

	got, err := svc.GetByUserID(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetByUserID() error = %v", err)
	}
	if got.Headline != "Engineer" {
		t.Errorf("Headline = %q, want Engineer", got.Headline)
	}
}

func TestGetByUserIDUserMissing(t *testing.T) {
	users := newUserStub()
	profiles := newProfileStub(users)
	svc := newService(users, profiles)

	_, err := svc.GetByUserID(context.Background(), "ghost")
	if !errors.Is(err, profUC.ErrUserNotFound) {
		t.Errorf("GetByUserID() error = %v, want ErrUserNotFound", err)
	}
}

func TestGetByUserIDProfileMissing(t *testing.T) {
	users := newUserStub()
	users.users["user-1"] = "+15551230001"
	profiles := newProfileStub(users)
	svc := newService(users, profiles)

	_, err := svc.GetByUserID(context.Background(), "user-1")
	if !errors.Is(err, profUC.ErrProfileNotFound) {
		t.Errorf("GetByUserID() error = %v, want ErrProfileNotFound", err)
	}
}

/* ───────── GetByPhone ───────── */

func TestGetByPhone(t *testing.T) {
	users := newUserStub()
	users.users["user-1"] = "+15551230001"
	profiles := newProfileStub(users)
	profiles.data["user-1"] = &entity.Profile{UserID: "user-1", Headline: "Engineer"}
	svc := newService(users, profiles)

	got, err := svc.GetByPhone(context.Background(), "+15551230001")
	if err != nil {
		t.Fatalf("GetByPhone() error = %v", err)
	}
	if got.UserID != "user-1" {
		t.Errorf("UserID = %q, want user-1", got.UserID)
	}
}

func TestGetByPhoneUserMissing(t *testing.T) {
	users := newUserStub()
	profiles := newProfileStub(users)
	svc := newService(users, profiles)

	_, err := svc.GetByPhone(context.Background(), "+15559990000")
	if !errors.Is(err, profUC.ErrUserNotFound) {
		t.Errorf("GetByPhone() error = %v, want ErrUserNotFound", err)
	}
}

func TestGetByPhoneProfileMissing(t *testing.T) {
	users := newUserStub()
	users.users["user-1"] = "+15551230001"
	profiles := newProfileStub(users)
	svc := newService(users, profiles)

	_, err := svc.GetByPhone(context.Background(), "+15551230001")
	if !errors.Is(err, profUC.ErrProfileNotFound) {
		t.Errorf("GetByPhone() error = %v, want ErrProfileNotFound", err)
	}
}
