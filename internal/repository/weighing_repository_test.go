package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/uuid"
)

// unbilledPredicateSQL pins the exclusion rule of the unpaid pool: a weighing
// is excluded only while a non-cancelled bulletin links it, so cancelling a
// bulletin releases its weighings.
const unbilledPredicateSQL = `FROM weighings w WHERE w\.farmer_id = .+ AND NOT EXISTS \( SELECT 1 FROM bulletin_weighings bw JOIN bulletins b ON b\.id = bw\.bulletin_id WHERE bw\.weighing_id = w\.id AND b\.status <> 'CANCELLED' \) ORDER BY w\.weighed_at ASC`

func TestListUnpaidByFarmerExcludesOnlyNonCancelledBulletins(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewWeighingRepository(db)

	farmerID := uuid.New()
	freed := uuid.New()

	mock.ExpectQuery(unbilledPredicateSQL).
		WithArgs(farmerID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "farmer_id", "ticket_number", "weighed_at", "net_amount"}).
			AddRow(freed.String(), farmerID.String(), "T-0007", time.Now(), "5000"))

	weighings, err := repo.ListUnpaidByFarmer(context.Background(), farmerID)
	require.NoError(t, err)
	require.Len(t, weighings, 1)
	assert.Equal(t, freed, weighings[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByIDsEmptySelectionSkipsQuery(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewWeighingRepository(db)

	weighings, err := repo.ListByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, weighings)
	assert.NoError(t, mock.ExpectationsWereMet())
}
