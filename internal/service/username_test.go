package service_test

import (
	"bytes"
	"testing"

	"group-registry-backend/internal/database/models"
	apperrors "group-registry-backend/internal/errors"
	"group-registry-backend/internal/mocks"
	"group-registry-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// UsernameServiceTestSuite defines the test suite for UsernameService
type UsernameServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockRepo        *mocks.MockUsernameRepositoryInterface
	usernameService *service.UsernameService
	validator       *validator.Validate
}

// SetupTest sets up the test suite
func (suite *UsernameServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockUsernameRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.usernameService = service.NewUsernameService(suite.mockRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *UsernameServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestRegister tests claiming a username; names are folded to lowercase
func (suite *UsernameServiceTestSuite) TestRegister() {
	caller := hexKey(0xAA)

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(record *models.Username) error {
			assert.Equal(suite.T(), "alice_01", record.Username)
			assert.Equal(suite.T(), caller, record.Owner)
			assert.Len(suite.T(), record.EncryptionKey, 32)
			return nil
		}).
		Times(1)

	response, err := suite.usernameService.Register(caller, &service.RegisterUsernameRequest{Username: "Alice_01"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "alice_01", response.Username)
	assert.Equal(suite.T(), caller, response.Owner)
}

// TestRegisterTaken tests claiming an occupied name
func (suite *UsernameServiceTestSuite) TestRegisterTaken() {
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(apperrors.ErrUsernameTaken).Times(1)

	_, err := suite.usernameService.Register(hexKey(0xAA), &service.RegisterUsernameRequest{Username: "alice_01"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrUsernameTaken)
}

// TestRegisterInvalidName tests the username character rules
func (suite *UsernameServiceTestSuite) TestRegisterInvalidName() {
	_, err := suite.usernameService.Register(hexKey(0xAA), &service.RegisterUsernameRequest{Username: "a-b"})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestLookup tests resolving a username
func (suite *UsernameServiceTestSuite) TestLookup() {
	record := &models.Username{Username: "alice_01", Owner: hexKey(0xAA), EncryptionKey: bytes.Repeat([]byte{7}, 32)}

	suite.mockRepo.EXPECT().GetByName("alice_01").Return(record, nil).Times(1)

	response, err := suite.usernameService.Lookup("Alice_01")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), record.Owner, response.Owner)
	assert.Equal(suite.T(), record.EncryptionKey, response.EncryptionKey)
}

// TestLookupNotFound tests resolving an unregistered name
func (suite *UsernameServiceTestSuite) TestLookupNotFound() {
	suite.mockRepo.EXPECT().GetByName("ghost").Return(nil, gorm.ErrRecordNotFound).Times(1)

	_, err := suite.usernameService.Lookup("ghost")

	assert.ErrorIs(suite.T(), err, apperrors.ErrUsernameNotFound)
}

// TestTransfer tests handing a name to a new owner
func (suite *UsernameServiceTestSuite) TestTransfer() {
	caller := hexKey(0xAA)
	newOwner := hexKey(0xBB)
	record := &models.Username{Username: "alice_01", Owner: caller}

	suite.mockRepo.EXPECT().GetByName("alice_01").Return(record, nil).Times(1)
	suite.mockRepo.EXPECT().UpdateOwner("alice_01", newOwner).Return(nil).Times(1)

	response, err := suite.usernameService.Transfer(caller, "alice_01", &service.TransferUsernameRequest{NewOwner: newOwner})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), newOwner, response.Owner)
}

// TestTransferNotOwner tests that only the owner may transfer
func (suite *UsernameServiceTestSuite) TestTransferNotOwner() {
	record := &models.Username{Username: "alice_01", Owner: hexKey(0xAA)}

	suite.mockRepo.EXPECT().GetByName("alice_01").Return(record, nil).Times(1)

	_, err := suite.usernameService.Transfer(hexKey(0xBB), "alice_01", &service.TransferUsernameRequest{NewOwner: hexKey(0xCC)})

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotUsernameOwner)
}

// TestRelease tests deleting a username record
func (suite *UsernameServiceTestSuite) TestRelease() {
	caller := hexKey(0xAA)
	record := &models.Username{Username: "alice_01", Owner: caller}

	suite.mockRepo.EXPECT().GetByName("alice_01").Return(record, nil).Times(1)
	suite.mockRepo.EXPECT().Delete("alice_01").Return(nil).Times(1)

	err := suite.usernameService.Release(caller, "alice_01")

	assert.NoError(suite.T(), err)
}

// TestReleaseNotOwner tests that only the owner may release
func (suite *UsernameServiceTestSuite) TestReleaseNotOwner() {
	record := &models.Username{Username: "alice_01", Owner: hexKey(0xAA)}

	suite.mockRepo.EXPECT().GetByName("alice_01").Return(record, nil).Times(1)

	err := suite.usernameService.Release(hexKey(0xBB), "alice_01")

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotUsernameOwner)
}

// TestUpdateEncryptionKey tests replacing the published key
func (suite *UsernameServiceTestSuite) TestUpdateEncryptionKey() {
	caller := hexKey(0xAA)
	record := &models.Username{Username: "alice_01", Owner: caller}
	key := bytes.Repeat([]byte{9}, 32)

	suite.mockRepo.EXPECT().GetByName("alice_01").Return(record, nil).Times(1)
	suite.mockRepo.EXPECT().UpdateKey("alice_01", key).Return(nil).Times(1)

	response, err := suite.usernameService.UpdateEncryptionKey(caller, "alice_01", &service.UpdateUsernameKeyRequest{EncryptionKey: key})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), key, response.EncryptionKey)
}

// TestUpdateEncryptionKeyWrongSize tests the key size check
func (suite *UsernameServiceTestSuite) TestUpdateEncryptionKeyWrongSize() {
	_, err := suite.usernameService.UpdateEncryptionKey(hexKey(0xAA), "alice_01", &service.UpdateUsernameKeyRequest{EncryptionKey: []byte{1}})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

// Run the test suite
func TestUsernameServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UsernameServiceTestSuite))
}
