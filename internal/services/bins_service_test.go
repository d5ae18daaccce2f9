package services

import (
	"context"
	"testing"

	"hhdonations/internal/common"
	"hhdonations/internal/geo"
	"hhdonations/internal/models"
	"hhdonations/internal/query"
	"hhdonations/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BinServiceTestSuite struct {
	suite.Suite
	mockBinRepo *MockBinRepository
	mockCache   *MockCacheService
	service     BinService
}

func (suite *BinServiceTestSuite) SetupTest() {
	suite.mockBinRepo = &MockBinRepository{}
	suite.mockCache = &MockCacheService{}
	suite.service = NewBinService(suite.mockBinRepo, suite.mockCache)
}

func (suite *BinServiceTestSuite) TearDownTest() {
	suite.mockBinRepo.AssertExpectations(suite.T())
	suite.mockCache.AssertExpectations(suite.T())
}

func TestBinServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BinServiceTestSuite))
}

func (suite *BinServiceTestSuite) TestCreate_Success() {
	bin := &models.Bin{
		Name:    "Yorkdale Shopping Centre",
		Address: "3401 Dufferin Street, Toronto, ON M6A 2T9",
		Hours:   "Mon-Sat 10:00 AM - 9:00 PM",
		Type:    models.BinTypeIndoor,
	}
	stored := &models.Bin{
		BinNumber: "HH-0001",
		Name:      bin.Name,
		Address:   bin.Address,
		Hours:     bin.Hours,
		Type:      bin.Type,
		Status:    models.BinStatusActive,
	}

	suite.mockBinRepo.On("Create", mock.Anything, bin).Return(nil).Once()
	suite.mockBinRepo.On("GetByID", mock.Anything, mock.Anything).Return(stored, nil).Once()
	suite.mockCache.On("InvalidatePublicBins", mock.Anything).Return(nil).Once()

	created, err := suite.service.Create(context.Background(), bin)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "HH-0001", created.BinNumber)
	assert.Equal(suite.T(), models.BinStatusActive, created.Status)
	assert.NotEqual(suite.T(), uuid.Nil, bin.ID)
}

func (suite *BinServiceTestSuite) TestCreate_MissingName() {
	bin := &models.Bin{
		Address: "300 Borough Drive",
		Hours:   "Open 24/7",
		Type:    models.BinTypeOutdoor,
	}

	created, err := suite.service.Create(context.Background(), bin)

	assert.Nil(suite.T(), created)
	assert.True(suite.T(), common.IsKind(err, common.KindValidation))
	assert.Equal(suite.T(), "name", common.AsError(err).Field)
}

func (suite *BinServiceTestSuite) TestCreate_InvalidType() {
	bin := &models.Bin{
		Name:    "Dundas Square",
		Address: "10 Dundas Street East",
		Hours:   "Open 24/7",
		Type:    "Underground",
	}

	created, err := suite.service.Create(context.Background(), bin)

	assert.Nil(suite.T(), created)
	assert.True(suite.T(), common.IsKind(err, common.KindValidation))
	assert.Equal(suite.T(), "type", common.AsError(err).Field)
}

func (suite *BinServiceTestSuite) TestUpdate_PartialLeavesOtherFieldsAlone() {
	id := uuid.New()
	notes := "Near parking lot entrance."
	existing := &models.Bin{
		ID:      id,
		Name:    "High Park",
		Address: "1873 Bloor Street West",
		Hours:   "Open 24/7",
		Type:    models.BinTypeOutdoor,
		Notes:   &notes,
		Status:  models.BinStatusActive,
	}
	newName := "High Park North"

	suite.mockBinRepo.On("GetByID", mock.Anything, id).Return(existing, nil).Twice()
	suite.mockBinRepo.On("Update", mock.Anything, mock.MatchedBy(func(b *models.Bin) bool {
		return b.Name == newName &&
			b.Address == "1873 Bloor Street West" &&
			b.Notes != nil && *b.Notes == notes &&
			b.Status == models.BinStatusActive
	})).Return(nil).Once()
	suite.mockCache.On("InvalidatePublicBins", mock.Anything).Return(nil).Once()

	_, err := suite.service.Update(context.Background(), id, &models.BinPatch{Name: &newName})

	assert.NoError(suite.T(), err)
}

func (suite *BinServiceTestSuite) TestUpdate_NotFound() {
	id := uuid.New()
	suite.mockBinRepo.On("GetByID", mock.Anything, id).Return(nil, repositories.ErrNotFound).Once()

	name := "Anything"
	updated, err := suite.service.Update(context.Background(), id, &models.BinPatch{Name: &name})

	assert.Nil(suite.T(), updated)
	assert.True(suite.T(), common.IsKind(err, common.KindNotFound))
}

func (suite *BinServiceTestSuite) TestDelete_Success() {
	id := uuid.New()
	suite.mockBinRepo.On("Delete", mock.Anything, id).Return(nil).Once()
	suite.mockCache.On("InvalidatePublicBins", mock.Anything).Return(nil).Once()

	err := suite.service.Delete(context.Background(), id)

	assert.NoError(suite.T(), err)
}

func (suite *BinServiceTestSuite) TestDelete_NotFound() {
	id := uuid.New()
	suite.mockBinRepo.On("Delete", mock.Anything, id).Return(repositories.ErrNotFound).Once()

	err := suite.service.Delete(context.Background(), id)

	assert.True(suite.T(), common.IsKind(err, common.KindNotFound))
}

func (suite *BinServiceTestSuite) TestList_FilterByStatus() {
	bins := []*models.Bin{
		{ID: uuid.New(), Name: "A", Status: models.BinStatusActive},
		{ID: uuid.New(), Name: "B", Status: models.BinStatusMaintenance},
		{ID: uuid.New(), Name: "C", Status: models.BinStatusActive},
	}
	suite.mockBinRepo.On("List", mock.Anything).Return(bins, nil).Once()

	result, err := suite.service.List(context.Background(), query.Options{
		Filters: []query.Filter{{Field: "status", Value: "active", Exact: true}},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, result.TotalCount)
	assert.Len(suite.T(), result.Items, 2)
}

func (suite *BinServiceTestSuite) TestListPublic_ExcludesInactiveAndOrdersByDistance() {
	lat1, lng1 := 43.7255, -79.4523 // ~8 km from downtown origin
	lat2, lng2 := 43.6561, -79.3802 // well under 1 km
	static := "15.3 km"

	bins := []*models.Bin{
		{ID: uuid.New(), Name: "Yorkdale", Latitude: &lat1, Longitude: &lng1, Status: models.BinStatusActive},
		{ID: uuid.New(), Name: "Dundas Square", Latitude: &lat2, Longitude: &lng2, Status: models.BinStatusActive},
		{ID: uuid.New(), Name: "Scarborough", Distance: &static, Status: models.BinStatusActive},
		{ID: uuid.New(), Name: "No location", Status: models.BinStatusActive},
		{ID: uuid.New(), Name: "Closed", Latitude: &lat2, Longitude: &lng2, Status: models.BinStatusInactive},
	}

	suite.mockCache.On("GetPublicBins", mock.Anything).Return(nil, assert.AnError).Once()
	suite.mockBinRepo.On("List", mock.Anything).Return(bins, nil).Once()
	suite.mockCache.On("SetPublicBins", mock.Anything, bins, publicBinsCacheTTL).Return(nil).Once()

	origin := &geo.Coordinates{Latitude: 43.6532, Longitude: -79.3832}
	result, err := suite.service.ListPublic(context.Background(), query.Options{}, origin)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 4, result.TotalCount)
	assert.Equal(suite.T(), "Dundas Square", result.Items[0].Name)
	assert.Equal(suite.T(), "Yorkdale", result.Items[1].Name)
	assert.Equal(suite.T(), "Scarborough", result.Items[2].Name)
	assert.Equal(suite.T(), "No location", result.Items[3].Name)
	assert.NotNil(suite.T(), result.Items[0].DistanceKm)
	assert.Nil(suite.T(), result.Items[2].DistanceKm)
}

func (suite *BinServiceTestSuite) TestListPublic_NoOriginFallsBackToStaticDistance() {
	near := "2.1 km"
	far := "25.6 km"
	bins := []*models.Bin{
		{ID: uuid.New(), Name: "Markham", Distance: &far, Status: models.BinStatusActive},
		{ID: uuid.New(), Name: "Kensington", Distance: &near, Status: models.BinStatusActive},
	}

	suite.mockCache.On("GetPublicBins", mock.Anything).Return(nil, assert.AnError).Once()
	suite.mockBinRepo.On("List", mock.Anything).Return(bins, nil).Once()
	suite.mockCache.On("SetPublicBins", mock.Anything, bins, publicBinsCacheTTL).Return(nil).Once()

	result, err := suite.service.ListPublic(context.Background(), query.Options{}, nil)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Kensington", result.Items[0].Name)
	assert.Equal(suite.T(), "Markham", result.Items[1].Name)
}

func (suite *BinServiceTestSuite) TestListPublic_ServedFromCache() {
	cached := []*models.Bin{
		{ID: uuid.New(), Name: "Harbourfront", Status: models.BinStatusActive},
	}
	suite.mockCache.On("GetPublicBins", mock.Anything).Return(cached, nil).Once()

	result, err := suite.service.ListPublic(context.Background(), query.Options{}, nil)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, result.TotalCount)
	suite.mockBinRepo.AssertNotCalled(suite.T(), "List", mock.Anything)
}
