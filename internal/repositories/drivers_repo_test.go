package repositories

import (
	"context"
	"testing"
	"time"

	"hhdonations/internal/models"

	"github.com/google/uuid"
	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type DriverRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    DriverRepository
	context context.Context
}

func (suite *DriverRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewDriverRepository(mock)
	suite.context = context.Background()
}

func (suite *DriverRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestDriverRepoTestSuite(t *testing.T) {
	suite.Run(t, new(DriverRepoTestSuite))
}

func stringPtr(s string) *string {
	return &s
}

func (suite *DriverRepoTestSuite) TestCreate_Success() {
	driver := &models.Driver{
		ID:     uuid.New(),
		Name:   "John Smith",
		Email:  stringPtr("john.smith@hh-donations.com"),
		Status: models.DriverStatusActive,
	}

	suite.mock.ExpectExec(`INSERT INTO drivers`).
		WithArgs(driver.ID, driver.Name, driver.Email, driver.Phone, driver.LicenseNumber, driver.Status).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.Create(suite.context, driver)

	assert.NoError(suite.T(), err)
}

func (suite *DriverRepoTestSuite) TestCreate_UniqueViolationIsDuplicateEmail() {
	driver := &models.Driver{
		ID:     uuid.New(),
		Name:   "Sarah Johnson",
		Email:  stringPtr("sarah.johnson@hh-donations.com"),
		Status: models.DriverStatusActive,
	}

	suite.mock.ExpectExec(`INSERT INTO drivers`).
		WithArgs(driver.ID, driver.Name, driver.Email, driver.Phone, driver.LicenseNumber, driver.Status).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := suite.repo.Create(suite.context, driver)

	assert.ErrorIs(suite.T(), err, ErrDuplicateEmail)
}

func (suite *DriverRepoTestSuite) TestGetByEmail_NotFound() {
	suite.mock.ExpectQuery(`SELECT (.+) FROM drivers`).
		WithArgs("nobody@hh-donations.com").
		WillReturnError(pgx.ErrNoRows)

	driver, err := suite.repo.GetByEmail(suite.context, "nobody@hh-donations.com")

	assert.Nil(suite.T(), driver)
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *DriverRepoTestSuite) TestDelete_BlockedByOpenPickups() {
	id := uuid.New()

	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`SELECT COUNT\(\*\) FROM pickups`).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))

	err := suite.repo.Delete(suite.context, id)

	assert.ErrorIs(suite.T(), err, ErrDriverHasOpenPickups)
}

func (suite *DriverRepoTestSuite) TestDelete_Success() {
	id := uuid.New()

	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`SELECT COUNT\(\*\) FROM pickups`).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
	suite.mock.ExpectExec(`DELETE FROM drivers WHERE id`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	suite.mock.ExpectCommit()

	err := suite.repo.Delete(suite.context, id)

	assert.NoError(suite.T(), err)
}

func (suite *DriverRepoTestSuite) TestDelete_NotFound() {
	id := uuid.New()

	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`SELECT COUNT\(\*\) FROM pickups`).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
	suite.mock.ExpectExec(`DELETE FROM drivers WHERE id`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := suite.repo.Delete(suite.context, id)

	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *DriverRepoTestSuite) TestList_Success() {
	now := time.Now()

	suite.mock.ExpectQuery(`SELECT (.+) FROM drivers ORDER BY name ASC`).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "name", "email", "phone", "license_number", "status", "created_at", "updated_at",
		}).AddRow(
			uuid.New(), "John Smith", stringPtr("john.smith@hh-donations.com"), stringPtr("(416) 555-0101"),
			stringPtr("D1234567"), models.DriverStatusActive, now, now,
		).AddRow(
			uuid.New(), "Mike Wilson", (*string)(nil), (*string)(nil),
			(*string)(nil), models.DriverStatusInactive, now, now,
		))

	drivers, err := suite.repo.List(suite.context)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), drivers, 2)
	assert.Equal(suite.T(), "John Smith", drivers[0].Name)
	assert.Nil(suite.T(), drivers[1].Email)
}
