package timeslot

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"playfield/models"
)

type memSlotRepo struct {
	mu    sync.Mutex
	seq   int
	slots map[string]*models.TimeSlot
}

func newMemSlotRepo() *memSlotRepo {
	return &memSlotRepo{slots: make(map[string]*models.TimeSlot)}
}

func (r *memSlotRepo) Create(ctx context.Context, slot *models.TimeSlot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if slot.ID == "" {
		r.seq++
		slot.ID = fmt.Sprintf("slot-%d", r.seq)
	}
	clone := *slot
	r.slots[slot.ID] = &clone
	return nil
}

func (r *memSlotRepo) GetByID(ctx context.Context, slotID string) (*models.TimeSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	slot, ok := r.slots[slotID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	clone := *slot
	return &clone, nil
}

func (r *memSlotRepo) List(ctx context.Context, filter models.SlotFilter) ([]models.TimeSlot, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.TimeSlot
	for _, s := range r.slots {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (r *memSlotRepo) GetByFacilityAndDate(ctx context.Context, facilityID, date string) ([]models.TimeSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.TimeSlot
	for _, s := range r.slots {
		if s.FacilityID == facilityID && s.Date == date {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *memSlotRepo) UpdateFields(ctx context.Context, slotID string, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	slot, ok := r.slots[slotID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	if v, ok := fields["date"].(string); ok {
		slot.Date = v
	}
	if v, ok := fields["startTime"].(string); ok {
		slot.StartTime = v
	}
	if v, ok := fields["endTime"].(string); ok {
		slot.EndTime = v
	}
	if v, ok := fields["isActive"].(bool); ok {
		slot.IsActive = v
	}
	return nil
}

func (r *memSlotRepo) DeleteByID(ctx context.Context, slotID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.slots[slotID]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.slots, slotID)
	return nil
}

func (r *memSlotRepo) DeleteByFacility(ctx context.Context, facilityID string) (int64, error) {
	return 0, nil
}
func (r *memSlotRepo) DeleteByService(ctx context.Context, serviceID string) (int64, error) {
	return 0, nil
}
func (r *memSlotRepo) CountBooked(ctx context.Context, field, value string) (int64, error) {
	return 0, nil
}
func (r *memSlotRepo) IncrementBooked(ctx context.Context, slotID string, quantity, capacity int) error {
	return nil
}
func (r *memSlotRepo) DecrementBooked(ctx context.Context, slotID string, quantity, capacity int) error {
	return nil
}

type memFacilityRepo struct {
	facilities map[string]*models.Facility
}

func (r *memFacilityRepo) GetByID(id string) (*models.Facility, error) {
	f, ok := r.facilities[id]
	if !ok {
		return nil, nil
	}
	clone := *f
	return &clone, nil
}
func (r *memFacilityRepo) GetByStatus(status string) ([]models.Facility, error) { return nil, nil }
func (r *memFacilityRepo) GetByOwner(ownerID string) ([]models.Facility, error) { return nil, nil }
func (r *memFacilityRepo) Create(facility *models.Facility) error               { return nil }
func (r *memFacilityRepo) Update(facility *models.Facility) error               { return nil }
func (r *memFacilityRepo) UpdateSetDocument(id string, updateDoc bson.M) error  { return nil }
func (r *memFacilityRepo) PushImage(id, url string) error                       { return nil }
func (r *memFacilityRepo) Delete(id string) error                               { return nil }

type memServiceRepo struct {
	services map[string]*models.Service
}

func (r *memServiceRepo) GetByID(id string) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, nil
	}
	clone := *s
	return &clone, nil
}
func (r *memServiceRepo) GetByFacility(facilityID string) ([]models.Service, error) {
	return nil, nil
}
func (r *memServiceRepo) Create(service *models.Service) error                { return nil }
func (r *memServiceRepo) UpdateSetDocument(id string, updateDoc bson.M) error { return nil }
func (r *memServiceRepo) Delete(id string) error                              { return nil }
func (r *memServiceRepo) DeleteByFacility(facilityID string) (int64, error)   { return 0, nil }

var (
	owner      = &models.Account{ID: "owner-1", Role: models.RoleAdmin}
	stranger   = &models.Account{ID: "other-1", Role: models.RoleAdmin}
	superAdmin = &models.Account{ID: "root-1", Role: models.RoleSuperAdmin}
)

func newSlotService(slots *memSlotRepo) *DefaultTimeSlotService {
	return &DefaultTimeSlotService{
		Slots: slots,
		Facilities: &memFacilityRepo{facilities: map[string]*models.Facility{
			"fac-1": {ID: "fac-1", OwnerID: "owner-1", Status: models.FacilityStatusApproved},
		}},
		Services: &memServiceRepo{services: map[string]*models.Service{
			"svc-1": {ID: "svc-1", FacilityID: "fac-1", DurationMinutes: 60, Capacity: 4},
		}},
	}
}

func slotErrCode(t *testing.T, err error) string {
	t.Helper()
	var se *SlotError
	if !errors.As(err, &se) {
		t.Fatalf("expected SlotError, got %v", err)
	}
	return se.Code
}

func TestCreateDerivesEndTime(t *testing.T) {
	repo := newMemSlotRepo()
	svc := newSlotService(repo)

	slot, err := svc.Create(context.Background(), owner, CreateSlotRequest{
		FacilityID: "fac-1",
		ServiceID:  "svc-1",
		Date:       "2030-06-03",
		StartTime:  "09:00",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if slot.EndTime != "10:00" {
		t.Fatalf("end time = %s, want 10:00", slot.EndTime)
	}
	if !slot.IsActive || slot.CreatedBy != "owner-1" {
		t.Fatalf("unexpected slot: %+v", slot)
	}
	if slot.Status != models.SlotStatusAvailable {
		t.Fatalf("status = %s, want available", slot.Status)
	}
}

func TestCreateRejectsCollision(t *testing.T) {
	repo := newMemSlotRepo()
	svc := newSlotService(repo)

	if _, err := svc.Create(context.Background(), owner, CreateSlotRequest{
		FacilityID: "fac-1", ServiceID: "svc-1", Date: "2030-06-03", StartTime: "10:00",
	}); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	_, err := svc.Create(context.Background(), owner, CreateSlotRequest{
		FacilityID: "fac-1", ServiceID: "svc-1", Date: "2030-06-03", StartTime: "10:30",
	})
	if code := slotErrCode(t, err); code != CodeConflict {
		t.Fatalf("overlapping slot: code = %s, want %s", code, CodeConflict)
	}

	// Back to back is fine.
	if _, err := svc.Create(context.Background(), owner, CreateSlotRequest{
		FacilityID: "fac-1", ServiceID: "svc-1", Date: "2030-06-03", StartTime: "11:00",
	}); err != nil {
		t.Fatalf("adjacent slot rejected: %v", err)
	}
}

func TestCreateOwnership(t *testing.T) {
	repo := newMemSlotRepo()
	svc := newSlotService(repo)
	req := CreateSlotRequest{
		FacilityID: "fac-1", ServiceID: "svc-1", Date: "2030-06-03", StartTime: "09:00",
	}

	_, err := svc.Create(context.Background(), stranger, req)
	if code := slotErrCode(t, err); code != CodeForbidden {
		t.Fatalf("foreign create: code = %s, want %s", code, CodeForbidden)
	}

	// A super-admin may manage any facility.
	if _, err := svc.Create(context.Background(), superAdmin, req); err != nil {
		t.Fatalf("super-admin create failed: %v", err)
	}
}

func TestUpdateRescheduleBlockedWhenBooked(t *testing.T) {
	repo := newMemSlotRepo()
	svc := newSlotService(repo)

	slot, err := svc.Create(context.Background(), owner, CreateSlotRequest{
		FacilityID: "fac-1", ServiceID: "svc-1", Date: "2030-06-03", StartTime: "09:00",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	repo.slots[slot.ID].BookedCount = 2

	newStart := "14:00"
	_, err = svc.Update(context.Background(), owner, slot.ID, UpdateSlotRequest{StartTime: &newStart})
	if code := slotErrCode(t, err); code != CodeConflict {
		t.Fatalf("reschedule of booked slot: code = %s, want %s", code, CodeConflict)
	}

	// Deactivating is still allowed.
	inactive := false
	updated, err := svc.Update(context.Background(), owner, slot.ID, UpdateSlotRequest{IsActive: &inactive})
	if err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	if updated.IsActive {
		t.Fatal("slot still active after update")
	}
}

func TestUpdateRescheduleRederivesEndTime(t *testing.T) {
	repo := newMemSlotRepo()
	svc := newSlotService(repo)

	slot, err := svc.Create(context.Background(), owner, CreateSlotRequest{
		FacilityID: "fac-1", ServiceID: "svc-1", Date: "2030-06-03", StartTime: "09:00",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	newStart := "13:00"
	updated, err := svc.Update(context.Background(), owner, slot.ID, UpdateSlotRequest{StartTime: &newStart})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.StartTime != "13:00" || updated.EndTime != "14:00" {
		t.Fatalf("unexpected times after reschedule: %s-%s", updated.StartTime, updated.EndTime)
	}
}

func TestDeleteBookedSlotGuard(t *testing.T) {
	repo := newMemSlotRepo()
	svc := newSlotService(repo)

	slot, err := svc.Create(context.Background(), owner, CreateSlotRequest{
		FacilityID: "fac-1", ServiceID: "svc-1", Date: "2030-06-03", StartTime: "09:00",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	repo.slots[slot.ID].BookedCount = 1

	err = svc.Delete(context.Background(), owner, slot.ID, false)
	if code := slotErrCode(t, err); code != CodeSlotBooked {
		t.Fatalf("delete booked slot: code = %s, want %s", code, CodeSlotBooked)
	}

	// Force delete is a super-admin privilege.
	err = svc.Delete(context.Background(), owner, slot.ID, true)
	if code := slotErrCode(t, err); code != CodeForbidden {
		t.Fatalf("owner force delete: code = %s, want %s", code, CodeForbidden)
	}

	if err := svc.Delete(context.Background(), superAdmin, slot.ID, true); err != nil {
		t.Fatalf("super-admin force delete failed: %v", err)
	}
	if _, err := repo.GetByID(context.Background(), slot.ID); err != mongo.ErrNoDocuments {
		t.Fatal("slot still present after force delete")
	}
}

func TestDeleteEmptySlot(t *testing.T) {
	repo := newMemSlotRepo()
	svc := newSlotService(repo)

	slot, err := svc.Create(context.Background(), owner, CreateSlotRequest{
		FacilityID: "fac-1", ServiceID: "svc-1", Date: "2030-06-03", StartTime: "09:00",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := svc.Delete(context.Background(), owner, slot.ID, false); err != nil {
		t.Fatalf("delete of empty slot failed: %v", err)
	}

	err = svc.Delete(context.Background(), owner, slot.ID, false)
	if code := slotErrCode(t, err); code != CodeNotFound {
		t.Fatalf("double delete: code = %s, want %s", code, CodeNotFound)
	}
}

func TestCreateBulkPartialOutcome(t *testing.T) {
	repo := newMemSlotRepo()
	svc := newSlotService(repo)

	// Seed an existing slot that one bulk item will collide with.
	if _, err := svc.Create(context.Background(), owner, CreateSlotRequest{
		FacilityID: "fac-1", ServiceID: "svc-1", Date: "2030-06-03", StartTime: "10:00",
	}); err != nil {
		t.Fatalf("seed Create failed: %v", err)
	}

	result, err := svc.CreateBulk(context.Background(), owner, models.BulkSlotRequest{
		FacilityID: "fac-1",
		ServiceID:  "svc-1",
		Date:       "2030-06-03",
		TimeSlots: []models.TimeRange{
			{StartTime: "08:00"},
			{StartTime: "10:30"}, // collides with the seeded slot
			{StartTime: "23:30"}, // crosses midnight
		},
	})
	if err != nil {
		t.Fatalf("CreateBulk failed: %v", err)
	}
	if result.Created != 1 {
		t.Fatalf("created = %d, want 1", result.Created)
	}
	if len(result.Errors) != 2 {
		t.Fatalf("errors = %v, want 2 entries", result.Errors)
	}
}
