package catalog

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var planColumns = []string{"plan_id", "title", "slug", "image", "product_url", "spec_labels", "spec_values"}

func TestPostgresList_KeepsSpecOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows(planColumns).
		AddRow("la", "LA Luxe", "la-luxe", "img", "url", "{Size,Roof,Style}", `{"14x14 ft",Flat,Modern}`).
		AddRow("bare", "Bare", "bare", nil, nil, "{}", "{}")
	mock.ExpectQuery("SELECT plan_id").WillReturnRows(rows)

	plans, err := repo.List()
	require.NoError(t, err)
	require.Len(t, plans, 2)

	assert.Equal(t, []Spec{{"Size", "14x14 ft"}, {"Roof", "Flat"}, {"Style", "Modern"}}, plans[0].Specs)
	assert.Equal(t, "url", plans[0].ProductURL)
	assert.Empty(t, plans[1].Image)
	assert.Empty(t, plans[1].Specs)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresList_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT plan_id").WillReturnError(errors.New("relation does not exist"))

	_, err = repo.List()
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM pergola_plan").WithArgs("missing").WillReturnRows(sqlmock.NewRows(planColumns))

	_, err = repo.GetByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreate_Duplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("INSERT INTO pergola_plan").
		WithArgs("la", "LA", "la", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err = repo.Create(Product{ID: "la", Title: "LA", Slug: "la"})
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUpdate_NoRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("UPDATE pergola_plan").WillReturnResult(sqlmock.NewResult(0, 0))

	_, err = repo.Update("ghost", Product{Title: "Ghost", Slug: "ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresReset_InsertsInOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresRepository(db)

	plans := DefaultPlans()
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM pergola_plan").WillReturnResult(sqlmock.NewResult(0, 3))
	for i, p := range plans {
		mock.ExpectExec("INSERT INTO pergola_plan").
			WithArgs(p.ID, p.Title, p.Slug, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), i+1).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	require.NoError(t, repo.Reset(plans))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresReset_RollsBackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM pergola_plan").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO pergola_plan").WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	assert.Error(t, repo.Reset(DefaultPlans()[:1]))
	assert.NoError(t, mock.ExpectationsWereMet())
}
