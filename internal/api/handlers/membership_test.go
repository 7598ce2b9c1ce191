package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"group-registry-backend/internal/mocks"
	"group-registry-backend/internal/permissions"
	"group-registry-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	apperrors "group-registry-backend/internal/errors"
)

// MembershipHandlerTestSuite tests the MembershipHandler
type MembershipHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	ctrl        *gomock.Controller
	mockService *mocks.MockMembershipServiceInterface
	handler     *MembershipHandler
}

// SetupSuite sets up the test suite
func (suite *MembershipHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

// SetupTest sets up each individual test
func (suite *MembershipHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockMembershipServiceInterface(suite.ctrl)
	suite.handler = NewMembershipHandler(suite.mockService)

	suite.router = gin.New()

	groups := suite.router.Group("/api/v1/groups", withIdentity(testCaller()))
	{
		groups.GET("/:id/members", suite.handler.ListMembers)
		groups.POST("/:id/members", suite.handler.JoinGroup)
		groups.POST("/:id/members/invite", suite.handler.InviteMember)
		groups.DELETE("/:id/members/me", suite.handler.LeaveGroup)
		groups.PUT("/:id/members/me/last-read", suite.handler.UpdateLastRead)
		groups.GET("/:id/members/:identity", suite.handler.GetMember)
		groups.DELETE("/:id/members/:identity", suite.handler.KickMember)
		groups.PUT("/:id/members/:identity/role", suite.handler.UpdateMemberRole)
	}
}

// TearDownTest cleans up after each test
func (suite *MembershipHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestJoinGroup tests joining an open group
func (suite *MembershipHandlerTestSuite) TestJoinGroup() {
	expectedResponse := &service.MembershipResponse{
		GroupID: testGroupID(),
		Member:  testCaller(),
		Role:    permissions.RoleMember,
	}

	suite.mockService.EXPECT().
		Join(testCaller(), testGroupID(), gomock.Any()).
		Return(expectedResponse, nil)

	body, _ := json.Marshal(service.JoinGroupRequest{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/groups/"+testGroupID()+"/members", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response service.MembershipResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), testCaller(), response.Member)
}

// TestJoinGroupFull tests joining a group at capacity
func (suite *MembershipHandlerTestSuite) TestJoinGroupFull() {
	suite.mockService.EXPECT().
		Join(testCaller(), testGroupID(), gomock.Any()).
		Return(nil, apperrors.ErrGroupFull)

	body, _ := json.Marshal(service.JoinGroupRequest{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/groups/"+testGroupID()+"/members", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

// TestJoinGroupInviteOnly tests joining an invite-only group
func (suite *MembershipHandlerTestSuite) TestJoinGroupInviteOnly() {
	suite.mockService.EXPECT().
		Join(testCaller(), testGroupID(), gomock.Any()).
		Return(nil, apperrors.NewPermissionDeniedError("group is invite only"))

	body, _ := json.Marshal(service.JoinGroupRequest{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/groups/"+testGroupID()+"/members", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

// TestInviteMember tests inviting an identity directly
func (suite *MembershipHandlerTestSuite) TestInviteMember() {
	invitee := strings.Repeat("ef", 32)
	request := service.InviteMemberRequest{Invitee: invitee}

	expectedResponse := &service.MembershipResponse{
		GroupID:   testGroupID(),
		Member:    invitee,
		Role:      permissions.RoleMember,
		InvitedBy: testCaller(),
	}

	suite.mockService.EXPECT().
		Invite(testCaller(), testGroupID(), gomock.Any()).
		Return(expectedResponse, nil)

	body, _ := json.Marshal(request)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/groups/"+testGroupID()+"/members/invite", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response service.MembershipResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), invitee, response.Member)
	assert.Equal(suite.T(), testCaller(), response.InvitedBy)
}

// TestInviteMemberDenied tests inviting without permission
func (suite *MembershipHandlerTestSuite) TestInviteMemberDenied() {
	suite.mockService.EXPECT().
		Invite(testCaller(), testGroupID(), gomock.Any()).
		Return(nil, apperrors.ErrInsufficientRole)

	body, _ := json.Marshal(service.InviteMemberRequest{Invitee: strings.Repeat("ef", 32)})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/groups/"+testGroupID()+"/members/invite", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

// TestLeaveGroup tests leaving a group
func (suite *MembershipHandlerTestSuite) TestLeaveGroup() {
	suite.mockService.EXPECT().
		Leave(testCaller(), testGroupID()).
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/groups/"+testGroupID()+"/members/me", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

// TestLeaveGroupAsOwner tests that the owner cannot leave
func (suite *MembershipHandlerTestSuite) TestLeaveGroupAsOwner() {
	suite.mockService.EXPECT().
		Leave(testCaller(), testGroupID()).
		Return(apperrors.ErrOwnerCannotLeave)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/groups/"+testGroupID()+"/members/me", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

// TestKickMember tests kicking a member
func (suite *MembershipHandlerTestSuite) TestKickMember() {
	target := strings.Repeat("ef", 32)

	suite.mockService.EXPECT().
		Kick(testCaller(), testGroupID(), target).
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/groups/"+testGroupID()+"/members/"+target, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

// TestKickMemberOutranked tests kicking a member of equal rank
func (suite *MembershipHandlerTestSuite) TestKickMemberOutranked() {
	target := strings.Repeat("ef", 32)

	suite.mockService.EXPECT().
		Kick(testCaller(), testGroupID(), target).
		Return(apperrors.ErrCannotOutrankKicker)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/groups/"+testGroupID()+"/members/"+target, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

// TestUpdateMemberRole tests promoting a member
func (suite *MembershipHandlerTestSuite) TestUpdateMemberRole() {
	target := strings.Repeat("ef", 32)
	request := service.UpdateMemberRoleRequest{Role: "moderator"}

	expectedResponse := &service.MembershipResponse{
		GroupID: testGroupID(),
		Member:  target,
		Role:    permissions.RoleModerator,
	}

	suite.mockService.EXPECT().
		UpdateRole(testCaller(), testGroupID(), target, gomock.Any()).
		Return(expectedResponse, nil)

	body, _ := json.Marshal(request)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/groups/"+testGroupID()+"/members/"+target+"/role", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response service.MembershipResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), permissions.RoleModerator, response.Role)
}

// TestUpdateLastRead tests recording a read marker
func (suite *MembershipHandlerTestSuite) TestUpdateLastRead() {
	request := service.UpdateLastReadRequest{Timestamp: 1700000000}

	suite.mockService.EXPECT().
		UpdateLastRead(testCaller(), testGroupID(), gomock.Any()).
		Return(nil)

	body, _ := json.Marshal(request)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/groups/"+testGroupID()+"/members/me/last-read", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

// TestGetMember tests reading a membership
func (suite *MembershipHandlerTestSuite) TestGetMember() {
	target := strings.Repeat("ef", 32)

	expectedResponse := &service.MembershipResponse{
		GroupID: testGroupID(),
		Member:  target,
		Role:    permissions.RoleAdmin,
	}

	suite.mockService.EXPECT().
		Get(testGroupID(), target).
		Return(expectedResponse, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/groups/"+testGroupID()+"/members/"+target, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response service.MembershipResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), permissions.RoleAdmin, response.Role)
}

// TestGetMemberNotFound tests reading a missing membership
func (suite *MembershipHandlerTestSuite) TestGetMemberNotFound() {
	target := strings.Repeat("ef", 32)

	suite.mockService.EXPECT().
		Get(testGroupID(), target).
		Return(nil, apperrors.ErrMembershipNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/groups/"+testGroupID()+"/members/"+target, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestListMembers tests listing the roster with pagination
func (suite *MembershipHandlerTestSuite) TestListMembers() {
	expectedResponse := &service.MembershipListResponse{
		Members: []service.MembershipResponse{
			{GroupID: testGroupID(), Member: testCaller(), Role: permissions.RoleOwner},
			{GroupID: testGroupID(), Member: strings.Repeat("ef", 32), Role: permissions.RoleMember},
		},
		Total:    2,
		Page:     1,
		PageSize: 20,
	}

	suite.mockService.EXPECT().
		List(testGroupID(), 1, 20).
		Return(expectedResponse, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/groups/"+testGroupID()+"/members?page=1&page_size=20", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response service.MembershipListResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, len(response.Members))
	assert.Equal(suite.T(), int64(2), response.Total)
}

// Run the test suite
func TestMembershipHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipHandlerTestSuite))
}
