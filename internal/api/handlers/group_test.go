package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"group-registry-backend/internal/mocks"
	"group-registry-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	apperrors "group-registry-backend/internal/errors"
)

// testCaller is the identity the test middleware authenticates as
func testCaller() string {
	return strings.Repeat("ab", 32)
}

// testGroupID is a well-formed group id for route paths
func testGroupID() string {
	return strings.Repeat("cd", 32)
}

// withIdentity simulates the auth middleware for handler tests
func withIdentity(identity string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("identity", identity)
		c.Next()
	}
}

// GroupHandlerTestSuite tests the GroupHandler
type GroupHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	ctrl        *gomock.Controller
	mockService *mocks.MockGroupServiceInterface
	handler     *GroupHandler
}

// SetupSuite sets up the test suite
func (suite *GroupHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

// SetupTest sets up each individual test
func (suite *GroupHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockGroupServiceInterface(suite.ctrl)
	suite.handler = NewGroupHandler(suite.mockService)

	suite.router = gin.New()

	v1 := suite.router.Group("/api/v1")
	{
		v1.GET("/lookup/groups/:code", suite.handler.ResolveGroupByCode)

		groups := v1.Group("/groups", withIdentity(testCaller()))
		{
			groups.POST("", suite.handler.CreateGroup)
			groups.GET("/:id", suite.handler.GetGroup)
			groups.POST("/:id/code", suite.handler.SetGroupCode)
			groups.PUT("/:id/settings", suite.handler.UpdateGroupSettings)
		}
	}
}

// TearDownTest cleans up after each test
func (suite *GroupHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateGroup tests creating a new group
func (suite *GroupHandlerTestSuite) TestCreateGroup() {
	request := service.CreateGroupRequest{
		GroupID: testGroupID(),
		Name:    "Reading Club",
	}

	expectedResponse := &service.GroupResponse{
		GroupID:     testGroupID(),
		Owner:       testCaller(),
		Name:        "Reading Club",
		MemberCount: 1,
	}

	suite.mockService.EXPECT().
		Create(testCaller(), gomock.Any()).
		Return(expectedResponse, nil)

	body, _ := json.Marshal(request)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/groups", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response service.GroupResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), testGroupID(), response.GroupID)
	assert.Equal(suite.T(), testCaller(), response.Owner)
}

// TestCreateGroupConflict tests creating a group whose id is taken
func (suite *GroupHandlerTestSuite) TestCreateGroupConflict() {
	request := service.CreateGroupRequest{
		GroupID: testGroupID(),
		Name:    "Reading Club",
	}

	suite.mockService.EXPECT().
		Create(testCaller(), gomock.Any()).
		Return(nil, apperrors.ErrGroupExists)

	body, _ := json.Marshal(request)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/groups", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

// TestCreateGroupValidationError tests that a wrapped field-validation error
// from the service maps to 400
func (suite *GroupHandlerTestSuite) TestCreateGroupValidationError() {
	type payload struct {
		Name string `validate:"required"`
	}
	fieldErrs := validator.New().Struct(payload{})
	assert.Error(suite.T(), fieldErrs)

	suite.mockService.EXPECT().
		Create(testCaller(), gomock.Any()).
		Return(nil, fmt.Errorf("validation failed: %w", fieldErrs))

	body, _ := json.Marshal(service.CreateGroupRequest{GroupID: testGroupID(), Name: "Reading Club"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/groups", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestCreateGroupMissingIdentity tests the unauthenticated path
func (suite *GroupHandlerTestSuite) TestCreateGroupMissingIdentity() {
	router := gin.New()
	router.POST("/groups", suite.handler.CreateGroup)

	body, _ := json.Marshal(service.CreateGroupRequest{GroupID: testGroupID(), Name: "x"})
	req := httptest.NewRequest(http.MethodPost, "/groups", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

// TestGetGroup tests retrieving a group
func (suite *GroupHandlerTestSuite) TestGetGroup() {
	expectedResponse := &service.GroupResponse{
		GroupID: testGroupID(),
		Name:    "Reading Club",
	}

	suite.mockService.EXPECT().
		Get(testGroupID()).
		Return(expectedResponse, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/groups/"+testGroupID(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response service.GroupResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Reading Club", response.Name)
}

// TestGetGroupNotFound tests retrieving a missing group
func (suite *GroupHandlerTestSuite) TestGetGroupNotFound() {
	suite.mockService.EXPECT().
		Get(testGroupID()).
		Return(nil, apperrors.ErrGroupNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/groups/"+testGroupID(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestSetGroupCode tests assigning a public code
func (suite *GroupHandlerTestSuite) TestSetGroupCode() {
	request := service.SetGroupCodeRequest{Code: "reading-club"}

	expectedResponse := &service.GroupResponse{
		GroupID:    testGroupID(),
		PublicCode: "reading-club",
	}

	suite.mockService.EXPECT().
		SetCode(testCaller(), testGroupID(), gomock.Any()).
		Return(expectedResponse, nil)

	body, _ := json.Marshal(request)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/groups/"+testGroupID()+"/code", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response service.GroupResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "reading-club", response.PublicCode)
}

// TestSetGroupCodeNotOwner tests the owner-only guard
func (suite *GroupHandlerTestSuite) TestSetGroupCodeNotOwner() {
	suite.mockService.EXPECT().
		SetCode(testCaller(), testGroupID(), gomock.Any()).
		Return(nil, apperrors.ErrNotGroupOwner)

	body, _ := json.Marshal(service.SetGroupCodeRequest{Code: "reading-club"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/groups/"+testGroupID()+"/code", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

// TestUpdateGroupSettings tests updating group settings
func (suite *GroupHandlerTestSuite) TestUpdateGroupSettings() {
	name := "Renamed Club"
	request := service.UpdateGroupSettingsRequest{Name: &name}

	expectedResponse := &service.GroupResponse{
		GroupID: testGroupID(),
		Name:    "Renamed Club",
	}

	suite.mockService.EXPECT().
		UpdateSettings(testCaller(), testGroupID(), gomock.Any()).
		Return(expectedResponse, nil)

	body, _ := json.Marshal(request)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/groups/"+testGroupID()+"/settings", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response service.GroupResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Renamed Club", response.Name)
}

// TestResolveGroupByCode tests the public code lookup
func (suite *GroupHandlerTestSuite) TestResolveGroupByCode() {
	expectedResponse := &service.GroupResponse{
		GroupID:    testGroupID(),
		PublicCode: "reading-club",
	}

	suite.mockService.EXPECT().
		ResolveByCode("reading-club").
		Return(expectedResponse, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/lookup/groups/reading-club", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response service.GroupResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), testGroupID(), response.GroupID)
}

// TestResolveGroupByCodeNotFound tests an unclaimed code
func (suite *GroupHandlerTestSuite) TestResolveGroupByCodeNotFound() {
	suite.mockService.EXPECT().
		ResolveByCode("nobody").
		Return(nil, apperrors.ErrCodeLookupNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/lookup/groups/nobody", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// Run the test suite
func TestGroupHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GroupHandlerTestSuite))
}
