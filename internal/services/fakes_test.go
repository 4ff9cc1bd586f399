package services

import (
	"context"
	"time"

	"github.com/reinzjustinedagang/osca-backend/internal/dtos"
	"github.com/reinzjustinedagang/osca-backend/internal/models"
	"github.com/reinzjustinedagang/osca-backend/internal/repositories"
)

// recordingAudit captures audit entries in memory so tests can assert
// on what was (or was not) recorded.
type recordingAudit struct {
	entries []models.AuditLog
}

func (a *recordingAudit) Record(_ context.Context, user, role, action, details string) {
	a.entries = append(a.entries, models.AuditLog{
		User: user, UserRole: role, Action: action, Details: details,
	})
}

func (a *recordingAudit) GetPaginated(context.Context, int, int) (*dtos.AuditLogPage, error) {
	return nil, nil
}

type fakeUserRepo struct {
	users      map[string]*models.User // keyed by email
	created    []*models.User
	statuses   map[int64]models.UserStatus
	logouts    []int64
	deactivate []int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:    map[string]*models.User{},
		statuses: map[int64]models.UserStatus{},
	}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) (int64, error) {
	id := int64(len(r.created) + 1)
	user.ID = id
	r.created = append(r.created, user)
	r.users[user.Email] = user
	return id, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return r.users[email], nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) SetStatus(_ context.Context, id int64, status models.UserStatus) error {
	r.statuses[id] = status
	return nil
}

func (r *fakeUserRepo) RecordLogout(_ context.Context, id int64) error {
	r.logouts = append(r.logouts, id)
	r.statuses[id] = models.UserStatusInactive
	return nil
}

func (r *fakeUserRepo) DeactivateMany(_ context.Context, ids []int64) (int64, error) {
	r.deactivate = append(r.deactivate, ids...)
	for _, id := range ids {
		r.statuses[id] = models.UserStatusInactive
	}
	return int64(len(ids)), nil
}

type fakeCitizenRepo struct {
	byID    map[int64]*models.SeniorCitizen
	all     []*models.SeniorCitizen
	total   int64
	updated int64 // rows affected by next Update
	deleted int64 // rows affected by next Delete
}

func (r *fakeCitizenRepo) Create(_ context.Context, sc *models.SeniorCitizen) (int64, error) {
	return 42, nil
}

func (r *fakeCitizenRepo) GetByID(_ context.Context, id int64) (*models.SeniorCitizen, error) {
	return r.byID[id], nil
}

func (r *fakeCitizenRepo) Update(_ context.Context, sc *models.SeniorCitizen) (int64, error) {
	return r.updated, nil
}

func (r *fakeCitizenRepo) Delete(_ context.Context, id int64) (int64, error) {
	return r.deleted, nil
}

func (r *fakeCitizenRepo) GetAll(_ context.Context) ([]*models.SeniorCitizen, error) {
	return r.all, nil
}

func (r *fakeCitizenRepo) Count(_ context.Context) (int64, error) {
	return r.total, nil
}

func (r *fakeCitizenRepo) GetPage(_ context.Context, limit, offset int) ([]*models.SeniorCitizen, error) {
	return r.all, nil
}

func (r *fakeCitizenRepo) Search(_ context.Context, term string) ([]*models.SeniorCitizen, error) {
	return r.all, nil
}

func (r *fakeCitizenRepo) GetByBarangay(_ context.Context, barangay string) ([]*models.SeniorCitizen, error) {
	return r.all, nil
}

type fakeMunicipalRepo struct {
	byID    map[int64]*models.MunicipalOfficial
	updated int64
	deleted int64
}

func (r *fakeMunicipalRepo) Create(_ context.Context, o *models.MunicipalOfficial) (int64, error) {
	return 7, nil
}

func (r *fakeMunicipalRepo) GetByID(_ context.Context, id int64) (*models.MunicipalOfficial, error) {
	return r.byID[id], nil
}

func (r *fakeMunicipalRepo) GetAll(_ context.Context) ([]*models.MunicipalOfficial, error) {
	return nil, nil
}

func (r *fakeMunicipalRepo) Update(_ context.Context, o *models.MunicipalOfficial) (int64, error) {
	return r.updated, nil
}

func (r *fakeMunicipalRepo) Delete(_ context.Context, id int64) (int64, error) {
	return r.deleted, nil
}

type fakeBarangayRepo struct {
	byID      map[int64]*models.BarangayOfficial
	updated   int64
	deleted   int64
	lastImage *string
}

func (r *fakeBarangayRepo) Create(_ context.Context, o *models.BarangayOfficial) (int64, error) {
	return 9, nil
}

func (r *fakeBarangayRepo) GetByID(_ context.Context, id int64) (*models.BarangayOfficial, error) {
	return r.byID[id], nil
}

func (r *fakeBarangayRepo) GetAll(_ context.Context) ([]*models.BarangayOfficial, error) {
	return nil, nil
}

func (r *fakeBarangayRepo) Update(_ context.Context, o *models.BarangayOfficial, newImage *string) (int64, error) {
	r.lastImage = newImage
	return r.updated, nil
}

func (r *fakeBarangayRepo) Delete(_ context.Context, id int64) (int64, error) {
	return r.deleted, nil
}

type fakeSmsLogRepo struct {
	inserted  []*models.SmsLog
	insertErr error
	listed    []*models.SmsLog
	deleted   int64
}

func (r *fakeSmsLogRepo) Insert(_ context.Context, log *models.SmsLog) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, log)
	return nil
}

func (r *fakeSmsLogRepo) List(_ context.Context, filters repositories.SmsLogFilters) ([]*models.SmsLog, error) {
	return r.listed, nil
}

func (r *fakeSmsLogRepo) History(_ context.Context) ([]*models.SmsLog, error) {
	return r.listed, nil
}

func (r *fakeSmsLogRepo) Delete(_ context.Context, id int64) (int64, error) {
	return r.deleted, nil
}

type fakeCredsRepo struct {
	creds    *models.SmsCredentials
	upserted []*models.SmsCredentials
}

func (r *fakeCredsRepo) Get(_ context.Context) (*models.SmsCredentials, error) {
	return r.creds, nil
}

func (r *fakeCredsRepo) Upsert(_ context.Context, creds *models.SmsCredentials) error {
	r.upserted = append(r.upserted, creds)
	r.creds = creds
	return nil
}

type fakeAuditLogRepo struct {
	inserted  []*models.AuditLog
	insertErr error
	page      []*models.AuditLog
	total     int64
}

func (r *fakeAuditLogRepo) Insert(_ context.Context, entry *models.AuditLog) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, entry)
	return nil
}

func (r *fakeAuditLogRepo) Count(_ context.Context) (int64, error) {
	return r.total, nil
}

func (r *fakeAuditLogRepo) GetPage(_ context.Context, limit, offset int) ([]*models.AuditLog, error) {
	return r.page, nil
}

type fakeSessionRepo struct {
	expiredIDs []int64
	pruned     int64
	sweptAt    []time.Time
}

func (r *fakeSessionRepo) Create(_ context.Context, sess *models.Session) error { return nil }

func (r *fakeSessionRepo) Get(_ context.Context, id string) (*models.Session, error) {
	return nil, nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, id string) error { return nil }

func (r *fakeSessionRepo) ExpiredUserIDs(_ context.Context, now time.Time) ([]int64, error) {
	r.sweptAt = append(r.sweptAt, now)
	return r.expiredIDs, nil
}

func (r *fakeSessionRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.sweptAt = append(r.sweptAt, now)
	return r.pruned, nil
}

// fakeGateway returns a canned response or error without touching the
// network.
type fakeGateway struct {
	resp       *BroadcastResponse
	err        error
	recipients []string
	message    string
}

func (g *fakeGateway) Broadcast(_ context.Context, _ *models.SmsCredentials, recipients []string, message string) (*BroadcastResponse, error) {
	g.recipients = recipients
	g.message = message
	if g.err != nil {
		return nil, g.err
	}
	return g.resp, nil
}
