package facility

import (
	"context"
	"errors"
	"io"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"playfield/models"
)

type stubFacilityRepo struct {
	facilities map[string]*models.Facility
}

func (r *stubFacilityRepo) GetByID(id string) (*models.Facility, error) {
	f, ok := r.facilities[id]
	if !ok {
		return nil, nil
	}
	clone := *f
	return &clone, nil
}
func (r *stubFacilityRepo) GetByStatus(status string) ([]models.Facility, error) { return nil, nil }
func (r *stubFacilityRepo) GetByOwner(ownerID string) ([]models.Facility, error) { return nil, nil }
func (r *stubFacilityRepo) Create(facility *models.Facility) error {
	clone := *facility
	r.facilities[facility.ID] = &clone
	return nil
}
func (r *stubFacilityRepo) Update(facility *models.Facility) error              { return nil }
func (r *stubFacilityRepo) UpdateSetDocument(id string, updateDoc bson.M) error { return nil }
func (r *stubFacilityRepo) PushImage(id, url string) error                      { return nil }
func (r *stubFacilityRepo) Delete(id string) error                              { return nil }

type stubServiceRepo struct {
	services map[string]*models.Service
}

func (r *stubServiceRepo) GetByID(id string) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, nil
	}
	clone := *s
	return &clone, nil
}
func (r *stubServiceRepo) GetByFacility(facilityID string) ([]models.Service, error) {
	return nil, nil
}
func (r *stubServiceRepo) Create(service *models.Service) error {
	clone := *service
	r.services[service.ID] = &clone
	return nil
}
func (r *stubServiceRepo) UpdateSetDocument(id string, updateDoc bson.M) error { return nil }
func (r *stubServiceRepo) Delete(id string) error                              { return nil }
func (r *stubServiceRepo) DeleteByFacility(facilityID string) (int64, error)   { return 0, nil }

func facErrCode(t *testing.T, err error) string {
	t.Helper()
	var fe *FacilityError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FacilityError, got %v", err)
	}
	return fe.Code
}

func newFacilityService() *DefaultFacilityService {
	return &DefaultFacilityService{
		Repo:     &stubFacilityRepo{facilities: make(map[string]*models.Facility)},
		Services: &stubServiceRepo{services: make(map[string]*models.Service)},
	}
}

func TestValidateOpeningHours(t *testing.T) {
	good := map[string]models.OpeningHours{
		"Monday": {Open: "08:00", Close: "20:00"},
		"sunday": {Closed: true},
	}
	if err := validateOpeningHours(good); err != nil {
		t.Fatalf("valid hours rejected: %v", err)
	}

	bad := map[string]models.OpeningHours{
		"monday": {Open: "20:00", Close: "08:00"},
	}
	if err := validateOpeningHours(bad); err == nil {
		t.Fatal("expected error for close before open")
	}

	malformed := map[string]models.OpeningHours{
		"monday": {Open: "8am", Close: "20:00"},
	}
	if err := validateOpeningHours(malformed); err == nil {
		t.Fatal("expected error for malformed clock value")
	}
}

func TestNormalizeOpeningHours(t *testing.T) {
	in := map[string]models.OpeningHours{
		"Monday":  {Open: "08:00", Close: "20:00"},
		"TUESDAY": {Open: "09:00", Close: "18:00"},
	}
	out := normalizeOpeningHours(in)
	if _, ok := out["monday"]; !ok {
		t.Fatalf("keys not lower-cased: %v", out)
	}
	if _, ok := out["tuesday"]; !ok {
		t.Fatalf("keys not lower-cased: %v", out)
	}
	if normalizeOpeningHours(nil) != nil {
		t.Fatal("nil input must stay nil")
	}
}

func TestCreateFacilityStartsPending(t *testing.T) {
	svc := newFacilityService()
	actor := &models.Account{ID: "owner-1", Role: models.RoleAdmin}

	fac, err := svc.Create(context.Background(), actor, CreateFacilityRequest{
		Name:    "Riverside Courts",
		Address: "1 River Rd",
		OpeningHours: map[string]models.OpeningHours{
			"Monday": {Open: "08:00", Close: "22:00"},
		},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if fac.Status != models.FacilityStatusPending {
		t.Fatalf("status = %s, want pending", fac.Status)
	}
	if fac.OwnerID != "owner-1" {
		t.Fatalf("ownerId = %s, want owner-1", fac.OwnerID)
	}
	if _, ok := fac.OpeningHours["monday"]; !ok {
		t.Fatalf("opening hours not normalized: %v", fac.OpeningHours)
	}
}

func TestCreateServiceValidation(t *testing.T) {
	svc := newFacilityService()
	owner := &models.Account{ID: "owner-1", Role: models.RoleAdmin}
	repo := svc.Repo.(*stubFacilityRepo)
	repo.facilities["fac-1"] = &models.Facility{
		ID: "fac-1", OwnerID: "owner-1", Status: models.FacilityStatusApproved,
	}

	created, err := svc.CreateService(context.Background(), owner, "fac-1", CreateServiceRequest{
		Name: "Tennis Court", Price: 2500, Currency: "usd", DurationMinutes: 60, Capacity: 4,
	})
	if err != nil {
		t.Fatalf("CreateService failed: %v", err)
	}
	if !created.IsActive || created.FacilityID != "fac-1" {
		t.Fatalf("unexpected service: %+v", created)
	}

	_, err = svc.CreateService(context.Background(), owner, "fac-1", CreateServiceRequest{
		Name: "Bad", Price: 100, Currency: "usd", DurationMinutes: 0, Capacity: 4,
	})
	if code := facErrCode(t, err); code != CodeValidation {
		t.Fatalf("zero duration: code = %s, want %s", code, CodeValidation)
	}

	_, err = svc.CreateService(context.Background(), owner, "fac-1", CreateServiceRequest{
		Name: "Bad", Price: 100, Currency: "usd", DurationMinutes: 60, Capacity: 0,
	})
	if code := facErrCode(t, err); code != CodeValidation {
		t.Fatalf("zero capacity: code = %s, want %s", code, CodeValidation)
	}

	stranger := &models.Account{ID: "other-1", Role: models.RoleAdmin}
	_, err = svc.CreateService(context.Background(), stranger, "fac-1", CreateServiceRequest{
		Name: "Squash Court", Price: 100, Currency: "usd", DurationMinutes: 45, Capacity: 2,
	})
	if code := facErrCode(t, err); code != CodeForbidden {
		t.Fatalf("foreign create: code = %s, want %s", code, CodeForbidden)
	}
}

type recordingStorage struct {
	destroyed []string
	fail      map[string]bool
}

func (s *recordingStorage) UploadImage(ctx context.Context, file io.Reader, folder string) (string, error) {
	return "", nil
}
func (s *recordingStorage) DeleteImage(ctx context.Context, publicID string) error {
	if s.fail[publicID] {
		return errors.New("destroy failed")
	}
	s.destroyed = append(s.destroyed, publicID)
	return nil
}

func TestRemoveImagesDestroysUploads(t *testing.T) {
	store := &recordingStorage{fail: map[string]bool{"facilities/fac-1/b": true}}
	svc := newFacilityService()
	svc.Storage = store

	fac := &models.Facility{
		ID: "fac-1",
		Images: []string{
			"https://res.cloudinary.com/demo/image/upload/v1700000000/facilities/fac-1/a.jpg",
			"https://res.cloudinary.com/demo/image/upload/facilities/fac-1/b.jpg",
			"https://res.cloudinary.com/demo/image/upload/facilities/fac-1/c.png",
			"https://example.com/not-cloudinary.jpg",
		},
	}
	svc.removeImages(context.Background(), fac)

	// The failing asset is logged and skipped, the foreign URL ignored.
	want := []string{"facilities/fac-1/a", "facilities/fac-1/c"}
	if len(store.destroyed) != len(want) {
		t.Fatalf("destroyed %v, want %v", store.destroyed, want)
	}
	for i, w := range want {
		if store.destroyed[i] != w {
			t.Fatalf("destroyed %v, want %v", store.destroyed, want)
		}
	}
}

func TestRemoveImagesWithoutStorage(t *testing.T) {
	svc := newFacilityService()
	fac := &models.Facility{ID: "fac-1", Images: []string{"https://res.cloudinary.com/demo/image/upload/x.jpg"}}
	svc.removeImages(context.Background(), fac) // must not panic with no storage wired
}
