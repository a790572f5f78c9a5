package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/simpshopy/simpshopy_backend/internal/apperrors"
	"github.com/simpshopy/simpshopy_backend/internal/core/domain"
	"github.com/simpshopy/simpshopy_backend/internal/core/services"
	"github.com/simpshopy/simpshopy_backend/internal/dto"
)

const (
	zoneWestAfrica = "zone-waf"
	zoneTogo       = "zone-tg"
)

// --- Test Suite ---
type ShippingServiceTestSuite struct {
	suite.Suite
	mockShippingRepo *MockShippingRepository
	mockStoreRepo    *MockStoreRepository
	service          *services.ShippingService
}

func (suite *ShippingServiceTestSuite) SetupTest() {
	suite.mockShippingRepo = new(MockShippingRepository)
	suite.mockStoreRepo = new(MockStoreRepository)
	stores := services.NewStoreService(suite.mockStoreRepo, time.Second)
	suite.service = services.NewShippingService(
		suite.mockShippingRepo,
		services.WithShippingStoreAuthorizer(stores),
		services.WithShippingRepositoryTimeout(time.Second),
		services.WithShippingClock(func() time.Time { return fixedNow }),
	)
}

func (suite *ShippingServiceTestSuite) TearDownTest() {
	suite.mockShippingRepo.AssertExpectations(suite.T())
	suite.mockStoreRepo.AssertExpectations(suite.T())
}

func (suite *ShippingServiceTestSuite) zones() []domain.ShippingZone {
	return []domain.ShippingZone{
		{ShippingZoneID: zoneWestAfrica, StoreID: testStoreID, Name: "Afrique de l'Ouest", Countries: []string{"Sénégal", "Côte d'Ivoire", "Mali"}, IsActive: true},
		{ShippingZoneID: zoneTogo, StoreID: testStoreID, Name: "Togo", Countries: []string{"Togo"}, IsActive: false},
		{ShippingZoneID: "zone-empty", StoreID: testStoreID, Name: "Vide", Countries: []string{}, IsActive: true},
	}
}

func (suite *ShippingServiceTestSuite) methods() []domain.ShippingMethod {
	return []domain.ShippingMethod{
		{ShippingMethodID: "m-intl", StoreID: testStoreID, Name: "International", Price: dec("15000"), IsActive: true, SortOrder: 3},
		{ShippingMethodID: "m-express", StoreID: testStoreID, ShippingZoneID: strPtr(zoneWestAfrica), Name: "Express", Price: dec("5000"), IsActive: true, SortOrder: 2},
		{ShippingMethodID: "m-standard", StoreID: testStoreID, ShippingZoneID: strPtr(zoneWestAfrica), Name: "Standard", Price: dec("2500"), FreeShippingThreshold: decPtr("50000"), IsActive: true, SortOrder: 1},
		{ShippingMethodID: "m-togo", StoreID: testStoreID, ShippingZoneID: strPtr(zoneTogo), Name: "Togo Poste", Price: dec("1000"), IsActive: true, SortOrder: 0},
		{ShippingMethodID: "m-empty", StoreID: testStoreID, ShippingZoneID: strPtr("zone-empty"), Name: "Nulle part", Price: dec("1"), IsActive: true, SortOrder: 0},
	}
}

func (suite *ShippingServiceTestSuite) expectShippingData() {
	suite.mockShippingRepo.On("ListShippingMethods", mock.Anything, testStoreID, true).Return(suite.methods(), nil).Once()
	suite.mockShippingRepo.On("ListShippingZones", mock.Anything, testStoreID).Return(suite.zones(), nil).Once()
}

func (suite *ShippingServiceTestSuite) expectOwner() {
	store := &domain.Store{StoreID: testStoreID, OwnerID: testOwnerID, Currency: "XOF"}
	suite.mockStoreRepo.On("FindStoreByID", mock.Anything, testStoreID).Return(store, nil).Once()
}

func methodIDs(calcs []domain.ShippingCalculation) []string {
	ids := make([]string, len(calcs))
	for i, c := range calcs {
		ids[i] = c.Method.ShippingMethodID
	}
	return ids
}

// --- CalculateShipping ---

func (suite *ShippingServiceTestSuite) TestCalculateShipping_SenegalAboveThresholdShipsFree() {
	suite.expectShippingData()

	calcs, err := suite.service.CalculateShipping(context.Background(), testStoreID, "Sénégal", dec("60000"))

	suite.Require().NoError(err)
	suite.Equal([]string{"m-standard", "m-express", "m-intl"}, methodIDs(calcs))

	standard := calcs[0]
	suite.True(standard.IsFree)
	suite.True(standard.CalculatedPrice.IsZero())
	suite.Equal("2500", standard.OriginalPrice.String())
	suite.Equal("free shipping on orders of 50000 or more", standard.Reason)

	express := calcs[1]
	suite.False(express.IsFree)
	suite.Equal("5000", express.CalculatedPrice.String())
	suite.Equal(domain.ReasonStandardRate, express.Reason)
}

func (suite *ShippingServiceTestSuite) TestCalculateShipping_BelowThresholdPaysStandardRate() {
	suite.expectShippingData()

	calcs, err := suite.service.CalculateShipping(context.Background(), testStoreID, "Sénégal", dec("49999"))

	suite.Require().NoError(err)
	suite.Require().NotEmpty(calcs)
	suite.False(calcs[0].IsFree)
	suite.Equal("2500", calcs[0].CalculatedPrice.String())
}

func (suite *ShippingServiceTestSuite) TestCalculateShipping_CountryMatchingIgnoresAccentsCaseAndCodes() {
	for _, country := range []string{"senegal", "SÉNÉGAL", " Sénégal ", "SN"} {
		suite.expectShippingData()

		calcs, err := suite.service.CalculateShipping(context.Background(), testStoreID, country, dec("100"))

		suite.Require().NoError(err)
		suite.Equal([]string{"m-standard", "m-express", "m-intl"}, methodIDs(calcs), country)
	}
}

func (suite *ShippingServiceTestSuite) TestCalculateShipping_TogoOnlyGetsGlobalMethods() {
	suite.expectShippingData()

	calcs, err := suite.service.CalculateShipping(context.Background(), testStoreID, "Togo", dec("60000"))

	suite.Require().NoError(err)
	suite.Equal([]string{"m-intl"}, methodIDs(calcs))
}

func (suite *ShippingServiceTestSuite) TestCalculateShipping_ZeroPriceIsFree() {
	methods := []domain.ShippingMethod{
		{ShippingMethodID: "m-pickup", StoreID: testStoreID, Name: "Retrait", Price: dec("0"), IsActive: true},
	}
	suite.mockShippingRepo.On("ListShippingMethods", mock.Anything, testStoreID, true).Return(methods, nil).Once()
	suite.mockShippingRepo.On("ListShippingZones", mock.Anything, testStoreID).Return([]domain.ShippingZone{}, nil).Once()

	calcs, err := suite.service.CalculateShipping(context.Background(), testStoreID, "France", dec("0"))

	suite.Require().NoError(err)
	suite.Require().Len(calcs, 1)
	suite.True(calcs[0].IsFree)
	suite.Equal(domain.ReasonFreeMethod, calcs[0].Reason)
}

func (suite *ShippingServiceTestSuite) TestCalculateShipping_TiesSortedByName() {
	methods := []domain.ShippingMethod{
		{ShippingMethodID: "b", StoreID: testStoreID, Name: "Colissimo", Price: dec("10"), IsActive: true, SortOrder: 1},
		{ShippingMethodID: "a", StoreID: testStoreID, Name: "Chronopost", Price: dec("20"), IsActive: true, SortOrder: 1},
		{ShippingMethodID: "c", StoreID: testStoreID, Name: "Zeta", Price: dec("5"), IsActive: true, SortOrder: 0},
	}
	suite.mockShippingRepo.On("ListShippingMethods", mock.Anything, testStoreID, true).Return(methods, nil).Once()
	suite.mockShippingRepo.On("ListShippingZones", mock.Anything, testStoreID).Return([]domain.ShippingZone{}, nil).Once()

	calcs, err := suite.service.CalculateShipping(context.Background(), testStoreID, "France", dec("0"))

	suite.Require().NoError(err)
	suite.Equal([]string{"c", "a", "b"}, methodIDs(calcs))
}

func (suite *ShippingServiceTestSuite) TestCalculateShipping_DataUnavailableDegradesToEmpty() {
	suite.mockShippingRepo.On("ListShippingMethods", mock.Anything, testStoreID, true).
		Return(nil, apperrors.ErrShippingDataUnavailable).Once()

	calcs, err := suite.service.CalculateShipping(context.Background(), testStoreID, "Sénégal", dec("100"))

	suite.NoError(err)
	suite.NotNil(calcs)
	suite.Empty(calcs)
}

func (suite *ShippingServiceTestSuite) TestCalculateShipping_TimeoutDegradesToEmpty() {
	suite.mockShippingRepo.On("ListShippingMethods", mock.Anything, testStoreID, true).Return(suite.methods(), nil).Once()
	suite.mockShippingRepo.On("ListShippingZones", mock.Anything, testStoreID).Return(nil, context.DeadlineExceeded).Once()

	calcs, err := suite.service.CalculateShipping(context.Background(), testStoreID, "Sénégal", dec("100"))

	suite.NoError(err)
	suite.Empty(calcs)
}

func (suite *ShippingServiceTestSuite) TestCalculateShipping_OtherRepositoryErrorsSurface() {
	suite.mockShippingRepo.On("ListShippingMethods", mock.Anything, testStoreID, true).Return(nil, errors.New("syntax error")).Once()

	calcs, err := suite.service.CalculateShipping(context.Background(), testStoreID, "Sénégal", dec("100"))

	suite.Nil(calcs)
	suite.Error(err)
}

func (suite *ShippingServiceTestSuite) TestCalculateShipping_DanglingZoneIsMisconfigured() {
	methods := []domain.ShippingMethod{
		{ShippingMethodID: "m-ghost", StoreID: testStoreID, ShippingZoneID: strPtr("zone-deleted"), Name: "Ghost", Price: dec("10"), IsActive: true},
	}
	suite.mockShippingRepo.On("ListShippingMethods", mock.Anything, testStoreID, true).Return(methods, nil).Once()
	suite.mockShippingRepo.On("ListShippingZones", mock.Anything, testStoreID).Return(suite.zones(), nil).Once()

	_, err := suite.service.CalculateShipping(context.Background(), testStoreID, "Sénégal", dec("100"))

	suite.ErrorIs(err, apperrors.ErrShippingMisconfigured)
}

func (suite *ShippingServiceTestSuite) TestCalculateShipping_Validation() {
	_, err := suite.service.CalculateShipping(context.Background(), testStoreID, "  ", dec("100"))
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.CalculateShipping(context.Background(), testStoreID, "Mali", dec("-1"))
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- Zones ---

func (suite *ShippingServiceTestSuite) TestCreateZone_Success() {
	suite.expectOwner()
	suite.mockShippingRepo.On("SaveShippingZone", mock.Anything, mock.MatchedBy(func(z domain.ShippingZone) bool {
		return z.StoreID == testStoreID &&
			z.Name == "UEMOA" &&
			len(z.Countries) == 2 &&
			z.IsActive &&
			z.CreatedBy == testOwnerID &&
			z.ShippingZoneID != ""
	})).Return(nil).Once()

	zone, err := suite.service.CreateZone(context.Background(), testStoreID, dto.CreateShippingZoneRequest{
		Name:      " UEMOA ",
		Countries: []string{"Sénégal", "senegal", " Mali ", ""},
	}, testOwnerID)

	suite.Require().NoError(err)
	suite.Equal([]string{"Sénégal", "Mali"}, zone.Countries)
	suite.Equal(fixedNow, zone.CreatedAt)
}

func (suite *ShippingServiceTestSuite) TestCreateZone_RequiresCountries() {
	suite.expectOwner()

	_, err := suite.service.CreateZone(context.Background(), testStoreID, dto.CreateShippingZoneRequest{
		Name:      "Empty",
		Countries: []string{" "},
	}, testOwnerID)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ShippingServiceTestSuite) TestCreateZone_NotOwner() {
	suite.expectOwner()

	_, err := suite.service.CreateZone(context.Background(), testStoreID, dto.CreateShippingZoneRequest{
		Name:      "UEMOA",
		Countries: []string{"Mali"},
	}, "intruder")

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockShippingRepo.AssertNotCalled(suite.T(), "SaveShippingZone", mock.Anything, mock.Anything)
}

func (suite *ShippingServiceTestSuite) TestUpdateZone_Deactivate() {
	suite.expectOwner()
	zone := suite.zones()[0]
	suite.mockShippingRepo.On("FindShippingZoneByID", mock.Anything, testStoreID, zoneWestAfrica).Return(&zone, nil).Once()
	suite.mockShippingRepo.On("UpdateShippingZone", mock.Anything, mock.MatchedBy(func(z domain.ShippingZone) bool {
		return !z.IsActive && z.LastUpdatedBy == testOwnerID
	})).Return(nil).Once()

	inactive := false
	updated, err := suite.service.UpdateZone(context.Background(), testStoreID, zoneWestAfrica, dto.UpdateShippingZoneRequest{IsActive: &inactive}, testOwnerID)

	suite.Require().NoError(err)
	suite.False(updated.IsActive)
	suite.Equal(zone.Countries, updated.Countries)
}

func (suite *ShippingServiceTestSuite) TestDeleteZone_NotFound() {
	suite.expectOwner()
	suite.mockShippingRepo.On("DeleteShippingZone", mock.Anything, testStoreID, "nope").Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteZone(context.Background(), testStoreID, "nope", testOwnerID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Methods ---

func (suite *ShippingServiceTestSuite) TestCreateMethod_UnknownZoneRejected() {
	suite.expectOwner()
	suite.mockShippingRepo.On("FindShippingZoneByID", mock.Anything, testStoreID, "zone-x").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateMethod(context.Background(), testStoreID, dto.CreateShippingMethodRequest{
		ShippingZoneID: strPtr("zone-x"),
		Name:           "Express",
		Price:          dec("5000"),
	}, testOwnerID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockShippingRepo.AssertNotCalled(suite.T(), "SaveShippingMethod", mock.Anything, mock.Anything)
}

func (suite *ShippingServiceTestSuite) TestCreateMethod_GlobalWithThreshold() {
	suite.expectOwner()
	suite.mockShippingRepo.On("SaveShippingMethod", mock.Anything, mock.MatchedBy(func(m domain.ShippingMethod) bool {
		return m.IsGlobal() && m.FreeShippingThreshold != nil && m.IsActive && m.SortOrder == 4
	})).Return(nil).Once()

	method, err := suite.service.CreateMethod(context.Background(), testStoreID, dto.CreateShippingMethodRequest{
		Name:                  "Monde",
		Price:                 dec("15000"),
		FreeShippingThreshold: decPtr("200000"),
		SortOrder:             4,
	}, testOwnerID)

	suite.Require().NoError(err)
	suite.True(method.IsGlobal())
}

func (suite *ShippingServiceTestSuite) TestCreateMethod_NegativePriceRejected() {
	suite.expectOwner()

	_, err := suite.service.CreateMethod(context.Background(), testStoreID, dto.CreateShippingMethodRequest{
		Name:  "Broken",
		Price: dec("-1"),
	}, testOwnerID)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ShippingServiceTestSuite) TestUpdateMethod_MakeGlobalAndClearThreshold() {
	suite.expectOwner()
	method := suite.methods()[2]
	suite.mockShippingRepo.On("FindShippingMethodByID", mock.Anything, testStoreID, "m-standard").Return(&method, nil).Once()
	suite.mockShippingRepo.On("UpdateShippingMethod", mock.Anything, mock.MatchedBy(func(m domain.ShippingMethod) bool {
		return m.IsGlobal() && m.FreeShippingThreshold == nil
	})).Return(nil).Once()

	updated, err := suite.service.UpdateMethod(context.Background(), testStoreID, "m-standard", dto.UpdateShippingMethodRequest{
		MakeGlobal:     true,
		ClearThreshold: true,
	}, testOwnerID)

	suite.Require().NoError(err)
	suite.True(updated.IsGlobal())
	suite.Nil(updated.FreeShippingThreshold)
}

func (suite *ShippingServiceTestSuite) TestListMethods_IncludesInactive() {
	suite.expectOwner()
	suite.mockShippingRepo.On("ListShippingMethods", mock.Anything, testStoreID, false).Return(suite.methods(), nil).Once()

	methods, err := suite.service.ListMethods(context.Background(), testStoreID, testOwnerID)

	suite.Require().NoError(err)
	suite.Len(methods, 5)
}

func TestShippingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShippingServiceTestSuite))
}
