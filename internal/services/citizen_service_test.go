package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reinzjustinedagang/osca-backend/internal/models"
	"github.com/reinzjustinedagang/osca-backend/internal/utils"
)

var testActor = &models.SessionUser{
	ID: 1, Username: "admin", Email: "admin@osca.gov.ph", Role: "admin",
}

func TestCreateCitizenAuditsWithFullName(t *testing.T) {
	repo := &fakeCitizenRepo{}
	audit := &recordingAudit{}
	svc := NewSeniorCitizenService(repo, audit)

	id, err := svc.Create(context.Background(), &models.SeniorCitizen{
		FirstName: "Juan", LastName: "Dela Cruz",
	}, testActor)
	require.NoError(t, err)
	require.Equal(t, int64(42), id)

	require.Len(t, audit.entries, 1)
	require.Equal(t, models.AuditActionCreate, audit.entries[0].Action)
	require.Contains(t, audit.entries[0].Details, "Juan Dela Cruz")
}

func TestCreateCitizenWithoutActorSkipsAudit(t *testing.T) {
	repo := &fakeCitizenRepo{}
	audit := &recordingAudit{}
	svc := NewSeniorCitizenService(repo, audit)

	_, err := svc.Create(context.Background(), &models.SeniorCitizen{FirstName: "Juan"}, nil)
	require.NoError(t, err)
	require.Empty(t, audit.entries)
}

func TestUpdateCitizenZeroRowsIsNotFound(t *testing.T) {
	repo := &fakeCitizenRepo{updated: 0}
	audit := &recordingAudit{}
	svc := NewSeniorCitizenService(repo, audit)

	err := svc.Update(context.Background(), &models.SeniorCitizen{ID: 99}, testActor)
	require.ErrorIs(t, err, utils.ErrNotFound)
	require.Empty(t, audit.entries)
}

func TestDeleteCitizenAuditsNameFetchedBeforeDelete(t *testing.T) {
	repo := &fakeCitizenRepo{
		byID: map[int64]*models.SeniorCitizen{
			3: {ID: 3, FirstName: "Maria", LastName: "Santos"},
		},
		deleted: 1,
	}
	audit := &recordingAudit{}
	svc := NewSeniorCitizenService(repo, audit)

	err := svc.Delete(context.Background(), 3, testActor)
	require.NoError(t, err)

	require.Len(t, audit.entries, 1)
	require.Equal(t, models.AuditActionDelete, audit.entries[0].Action)
	require.Contains(t, audit.entries[0].Details, "Maria Santos")
}

func TestDeleteCitizenZeroRowsIsNotFound(t *testing.T) {
	repo := &fakeCitizenRepo{deleted: 0}
	svc := NewSeniorCitizenService(repo, &recordingAudit{})

	err := svc.Delete(context.Background(), 404, testActor)
	require.ErrorIs(t, err, utils.ErrNotFound)
}

func TestGetPaginatedPageMath(t *testing.T) {
	cases := []struct {
		name        string
		total       int64
		page, limit int
		totalPages  int
		hasNext     bool
		hasPrev     bool
	}{
		{"first of many", 25, 1, 10, 3, true, false},
		{"middle page", 25, 2, 10, 3, true, true},
		{"last partial page", 25, 3, 10, 3, false, true},
		{"exact fit", 20, 2, 10, 2, false, true},
		{"empty", 0, 1, 10, 0, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeCitizenRepo{total: tc.total}
			svc := NewSeniorCitizenService(repo, &recordingAudit{})

			page, err := svc.GetPaginated(context.Background(), tc.page, tc.limit)
			require.NoError(t, err)
			require.Equal(t, tc.total, page.Total)
			require.Equal(t, tc.totalPages, page.TotalPages)
			require.Equal(t, tc.hasNext, page.HasNextPage)
			require.Equal(t, tc.hasPrev, page.HasPrevPage)
		})
	}
}
