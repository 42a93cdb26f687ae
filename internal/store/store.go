// Package store owns every mutable application collection and the current
// session identity. It is the only component permitted to mutate them, and
// every mutation is written to the local snapshot database before control
// returns to the caller.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/edusphere/edusphere-api/internal/models"
)

// dateLayout is the wall-clock date format used for stamps on fee payments
// and notices.
const dateLayout = "2006-01-02"

type snapshotRepository interface {
	Load(ctx context.Context, slot string) ([]byte, bool, error)
	Save(ctx context.Context, slot string, payload []byte) error
	Delete(ctx context.Context, slot string) error
}

// Store holds all collections in memory and mirrors them to the snapshot
// repository. A single mutex keeps the one-logical-mutator property under
// concurrent HTTP handlers.
type Store struct {
	mu        sync.RWMutex
	snapshots snapshotRepository
	logger    *zap.Logger
	now       func() time.Time

	currentUser *models.User
	students    []models.Student
	teachers    []models.Teacher
	attendance  []models.AttendanceRecord
	fees        []models.FeeRecord
	notices     []models.Notice
	classes     []models.ClassSession
}

// New constructs a Store, loading each collection from its persisted slot.
// A missing or corrupt slot falls back to seed data for that slot only.
func New(ctx context.Context, snapshots snapshotRepository, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		snapshots: snapshots,
		logger:    logger,
		now:       time.Now,
		classes:   seedClasses(),
	}
	s.students = loadSlot(ctx, s, SlotStudents, seedStudents)
	s.teachers = loadSlot(ctx, s, SlotTeachers, seedTeachers)
	s.fees = loadSlot(ctx, s, SlotFees, seedFees)
	s.attendance = loadSlot(ctx, s, SlotAttendance, func() []models.AttendanceRecord { return nil })
	s.notices = loadSlot(ctx, s, SlotNotices, seedNotices)
	s.currentUser = s.loadCurrentUser(ctx)
	return s
}

// loadSlot decodes one collection slot, substituting seed data when the slot
// is absent or its payload does not decode. Corruption is per-slot: a broken
// students slot does not reseed fees.
func loadSlot[T any](ctx context.Context, s *Store, slot string, seed func() []T) []T {
	payload, ok, err := s.snapshots.Load(ctx, slot)
	if err != nil {
		s.logger.Warn("snapshot load failed, falling back to seed data", zap.String("slot", slot), zap.Error(err))
		return seed()
	}
	if !ok {
		return seed()
	}
	var collection []T
	if err := json.Unmarshal(payload, &collection); err != nil {
		s.logger.Warn("snapshot corrupt, falling back to seed data", zap.String("slot", slot), zap.Error(err))
		return seed()
	}
	if collection == nil {
		collection = []T{}
	}
	return collection
}

func (s *Store) loadCurrentUser(ctx context.Context) *models.User {
	payload, ok, err := s.snapshots.Load(ctx, SlotCurrentUser)
	if err != nil {
		s.logger.Warn("snapshot load failed, starting without session", zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}
	var user *models.User
	if err := json.Unmarshal(payload, &user); err != nil {
		s.logger.Warn("session snapshot corrupt, starting without session", zap.Error(err))
		return nil
	}
	return user
}

func (s *Store) persist(ctx context.Context, slot string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode slot %s: %w", slot, err)
	}
	return s.snapshots.Save(ctx, slot, payload)
}

// Login synthesizes a session user for the selected role and persists it.
// This is unauthenticated role selection, not credential verification.
func (s *Store) Login(ctx context.Context, role models.Role) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := models.User{
		ID:    uuid.NewString(),
		Name:  displayName(role),
		Email: strings.ToLower(string(role)) + "@edusphere.com",
		Role:  role,
	}
	if err := s.persist(ctx, SlotCurrentUser, &user); err != nil {
		return models.User{}, err
	}
	s.currentUser = &user
	return user, nil
}

func displayName(role models.Role) string {
	switch role {
	case models.RoleAdmin:
		return "Administrator"
	case models.RoleTeacher:
		return "Jane Doe"
	default:
		return "Student User"
	}
}

// Logout clears the session identity and removes its persisted slot.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.snapshots.Delete(ctx, SlotCurrentUser); err != nil {
		return err
	}
	s.currentUser = nil
	return nil
}

// CurrentUser returns the session identity, if any.
func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentUser == nil {
		return models.User{}, false
	}
	return *s.currentUser, true
}

// AddStudent assigns a fresh id to the draft and appends it to the roster.
func (s *Store) AddStudent(ctx context.Context, draft models.Student) (models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft.ID = uuid.NewString()
	next := append(copyOf(s.students), draft)
	if err := s.persist(ctx, SlotStudents, next); err != nil {
		return models.Student{}, err
	}
	s.students = next
	return draft, nil
}

// AddTeacher assigns a fresh id to the draft and appends it to the roster.
func (s *Store) AddTeacher(ctx context.Context, draft models.Teacher) (models.Teacher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft.ID = uuid.NewString()
	next := append(copyOf(s.teachers), draft)
	if err := s.persist(ctx, SlotTeachers, next); err != nil {
		return models.Teacher{}, err
	}
	s.teachers = next
	return draft, nil
}

// MarkAttendance writes a batch of records using merge-by-replace: any
// existing record for the same (subject, date) pair is superseded by the
// incoming one, so a day's sheet can be resubmitted idempotently.
// Duplicate pairs within one batch collapse to the last occurrence, so the
// stored collection never holds two records for the same person and date.
func (s *Store) MarkAttendance(ctx context.Context, records []models.AttendanceRecord) ([]models.AttendanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	incoming := make([]models.AttendanceRecord, 0, len(records))
	for _, rec := range records {
		rec.ID = uuid.NewString()
		replaced := false
		for i, prior := range incoming {
			if prior.SameSubjectDate(rec) {
				incoming[i] = rec
				replaced = true
				break
			}
		}
		if !replaced {
			incoming = append(incoming, rec)
		}
	}

	kept := make([]models.AttendanceRecord, 0, len(s.attendance))
outer:
	for _, existing := range s.attendance {
		for _, rec := range incoming {
			if existing.SameSubjectDate(rec) {
				continue outer
			}
		}
		kept = append(kept, existing)
	}

	next := append(kept, incoming...)
	if err := s.persist(ctx, SlotAttendance, next); err != nil {
		return nil, err
	}
	s.attendance = next
	return incoming, nil
}

// UpdateFeeStatus sets the status of one fee record. The paymentDate stamp
// is present exactly when the status is PAID. The boolean reports whether
// the id was found; an unknown id leaves the collection untouched and is
// not an error.
func (s *Store) UpdateFeeStatus(ctx context.Context, id string, status models.FeeStatus) (models.FeeRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, fee := range s.fees {
		if fee.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.FeeRecord{}, false, nil
	}

	next := copyOf(s.fees)
	rec := next[idx]
	rec.Status = status
	if status == models.FeeStatusPaid {
		stamp := s.now().Format(dateLayout)
		rec.PaymentDate = &stamp
	} else {
		rec.PaymentDate = nil
	}
	next[idx] = rec

	if err := s.persist(ctx, SlotFees, next); err != nil {
		return models.FeeRecord{}, false, err
	}
	s.fees = next
	return rec, true, nil
}

// AddNotice assigns a fresh id, stamps the current date when the draft has
// none, and prepends the notice so the board reads newest-first.
func (s *Store) AddNotice(ctx context.Context, draft models.Notice) (models.Notice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft.ID = uuid.NewString()
	if draft.Date == "" {
		draft.Date = s.now().Format(dateLayout)
	}
	next := make([]models.Notice, 0, len(s.notices)+1)
	next = append(next, draft)
	next = append(next, s.notices...)
	if err := s.persist(ctx, SlotNotices, next); err != nil {
		return models.Notice{}, err
	}
	s.notices = next
	return draft, nil
}

// Students returns a copy of the student roster in insertion order.
func (s *Store) Students() []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyOf(s.students)
}

// Teachers returns a copy of the teacher roster in insertion order.
func (s *Store) Teachers() []models.Teacher {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyOf(s.teachers)
}

// Attendance returns a copy of all attendance records.
func (s *Store) Attendance() []models.AttendanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyOf(s.attendance)
}

// Fees returns a copy of the fee ledger in insertion order.
func (s *Store) Fees() []models.FeeRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyOf(s.fees)
}

// Notices returns a copy of the notice board, newest first.
func (s *Store) Notices() []models.Notice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyOf(s.notices)
}

// Classes returns the static timetable.
func (s *Store) Classes() []models.ClassSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyOf(s.classes)
}

func copyOf[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
