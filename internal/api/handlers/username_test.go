package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"group-registry-backend/internal/mocks"
	"group-registry-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	apperrors "group-registry-backend/internal/errors"
)

// UsernameHandlerTestSuite tests the UsernameHandler
type UsernameHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	ctrl        *gomock.Controller
	mockService *mocks.MockUsernameServiceInterface
	handler     *UsernameHandler
}

// SetupSuite sets up the test suite
func (suite *UsernameHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

// SetupTest sets up each individual test
func (suite *UsernameHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockUsernameServiceInterface(suite.ctrl)
	suite.handler = NewUsernameHandler(suite.mockService)

	suite.router = gin.New()

	v1 := suite.router.Group("/api/v1")
	{
		v1.GET("/lookup/usernames/:name", suite.handler.LookupUsername)

		usernames := v1.Group("/usernames", withIdentity(testCaller()))
		{
			usernames.POST("", suite.handler.RegisterUsername)
			usernames.PUT("/:name/owner", suite.handler.TransferUsername)
			usernames.PUT("/:name/key", suite.handler.UpdateUsernameKey)
			usernames.DELETE("/:name", suite.handler.ReleaseUsername)
		}
	}
}

// TearDownTest cleans up after each test
func (suite *UsernameHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestRegisterUsername tests claiming a username
func (suite *UsernameHandlerTestSuite) TestRegisterUsername() {
	request := service.RegisterUsernameRequest{Username: "alice_01"}

	expectedResponse := &service.UsernameResponse{
		Username: "alice_01",
		Owner:    testCaller(),
	}

	suite.mockService.EXPECT().
		Register(testCaller(), gomock.Any()).
		Return(expectedResponse, nil)

	body, _ := json.Marshal(request)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/usernames", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response service.UsernameResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "alice_01", response.Username)
	assert.Equal(suite.T(), testCaller(), response.Owner)
}

// TestRegisterUsernameTaken tests claiming a taken username
func (suite *UsernameHandlerTestSuite) TestRegisterUsernameTaken() {
	suite.mockService.EXPECT().
		Register(testCaller(), gomock.Any()).
		Return(nil, apperrors.ErrUsernameTaken)

	body, _ := json.Marshal(service.RegisterUsernameRequest{Username: "alice_01"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/usernames", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

// TestLookupUsername tests the public username lookup
func (suite *UsernameHandlerTestSuite) TestLookupUsername() {
	expectedResponse := &service.UsernameResponse{
		Username: "alice_01",
		Owner:    testCaller(),
	}

	suite.mockService.EXPECT().
		Lookup("alice_01").
		Return(expectedResponse, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/lookup/usernames/alice_01", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response service.UsernameResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), testCaller(), response.Owner)
}

// TestLookupUsernameNotFound tests looking up an unclaimed name
func (suite *UsernameHandlerTestSuite) TestLookupUsernameNotFound() {
	suite.mockService.EXPECT().
		Lookup("nobody").
		Return(nil, apperrors.ErrUsernameNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/lookup/usernames/nobody", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestTransferUsername tests transferring ownership
func (suite *UsernameHandlerTestSuite) TestTransferUsername() {
	newOwner := strings.Repeat("ef", 32)
	request := service.TransferUsernameRequest{NewOwner: newOwner}

	expectedResponse := &service.UsernameResponse{
		Username: "alice_01",
		Owner:    newOwner,
	}

	suite.mockService.EXPECT().
		Transfer(testCaller(), "alice_01", gomock.Any()).
		Return(expectedResponse, nil)

	body, _ := json.Marshal(request)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/usernames/alice_01/owner", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response service.UsernameResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), newOwner, response.Owner)
}

// TestTransferUsernameNotOwner tests the owner-only guard
func (suite *UsernameHandlerTestSuite) TestTransferUsernameNotOwner() {
	suite.mockService.EXPECT().
		Transfer(testCaller(), "alice_01", gomock.Any()).
		Return(nil, apperrors.ErrNotUsernameOwner)

	body, _ := json.Marshal(service.TransferUsernameRequest{NewOwner: strings.Repeat("ef", 32)})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/usernames/alice_01/owner", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

// TestUpdateUsernameKey tests replacing the published key
func (suite *UsernameHandlerTestSuite) TestUpdateUsernameKey() {
	request := service.UpdateUsernameKeyRequest{EncryptionKey: bytes.Repeat([]byte{0x01}, 32)}

	expectedResponse := &service.UsernameResponse{
		Username:      "alice_01",
		Owner:         testCaller(),
		EncryptionKey: bytes.Repeat([]byte{0x01}, 32),
	}

	suite.mockService.EXPECT().
		UpdateEncryptionKey(testCaller(), "alice_01", gomock.Any()).
		Return(expectedResponse, nil)

	body, _ := json.Marshal(request)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/usernames/alice_01/key", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestReleaseUsername tests releasing a username
func (suite *UsernameHandlerTestSuite) TestReleaseUsername() {
	suite.mockService.EXPECT().
		Release(testCaller(), "alice_01").
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/usernames/alice_01", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

// TestReleaseUsernameNotFound tests releasing a missing username
func (suite *UsernameHandlerTestSuite) TestReleaseUsernameNotFound() {
	suite.mockService.EXPECT().
		Release(testCaller(), "alice_01").
		Return(apperrors.ErrUsernameNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/usernames/alice_01", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// Run the test suite
func TestUsernameHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UsernameHandlerTestSuite))
}
