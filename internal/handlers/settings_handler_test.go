package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"expensetracker/internal/dto"
	"expensetracker/internal/services"
	"expensetracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// SettingsHandlerSuite defines the test suite for SettingsHandler
type SettingsHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockSettingsServiceInterface
	handler     *SettingsHandler
	echo        *echo.Echo
}

// SetupTest runs before each test in the suite
func (s *SettingsHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockSettingsServiceInterface(s.ctrl)
	s.handler = NewSettingsHandler(s.mockService)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()
}

// TearDownTest runs after each test in the suite
func (s *SettingsHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestSettingsHandlerSuite runs the test suite
func TestSettingsHandlerSuite(t *testing.T) {
	suite.Run(t, new(SettingsHandlerSuite))
}

func (s *SettingsHandlerSuite) createContext(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	return c, rec
}

func (s *SettingsHandlerSuite) TestGetSettings_Success() {
	expected := map[string]string{
		"income_target": "75000",
		"budget":        "52500",
		"theme":         "dark",
	}

	s.mockService.EXPECT().GetSettings().Return(expected, nil)

	c, rec := s.createContext("GET", "/settings", nil)

	err := s.handler.GetSettings(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Data map[string]string `json:"data"`
	}
	err = json.Unmarshal(rec.Body.Bytes(), &resp)
	s.NoError(err)
	s.Equal("75000", resp.Data["income_target"])
	s.Equal("dark", resp.Data["theme"])
}

func (s *SettingsHandlerSuite) TestGetSettings_SystemError() {
	s.mockService.EXPECT().GetSettings().Return(nil, errors.New("database unavailable"))

	c, rec := s.createContext("GET", "/settings", nil)

	err := s.handler.GetSettings(c)
	s.NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)
}

func (s *SettingsHandlerSuite) TestUpdateSetting_Success() {
	reqBody := dto.UpdateSettingRequest{Key: "income_target", Value: "90000"}

	s.mockService.EXPECT().UpdateSetting("income_target", "90000").Return(nil)

	c, rec := s.createContext("PUT", "/settings", reqBody)

	err := s.handler.UpdateSetting(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *SettingsHandlerSuite) TestUpdateSetting_UnknownKeyRejectedByValidation() {
	reqBody := dto.UpdateSettingRequest{Key: "currency", Value: "EUR"}

	c, rec := s.createContext("PUT", "/settings", reqBody)

	err := s.handler.UpdateSetting(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *SettingsHandlerSuite) TestUpdateSetting_UnknownKeyFromService() {
	reqBody := dto.UpdateSettingRequest{Key: "theme", Value: "dark"}

	s.mockService.EXPECT().
		UpdateSetting("theme", "dark").
		Return(services.ErrUnknownSettingKey)

	c, rec := s.createContext("PUT", "/settings", reqBody)

	err := s.handler.UpdateSetting(c)
	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)

	var errorResp ErrorResponse
	err = json.Unmarshal(rec.Body.Bytes(), &errorResp)
	s.NoError(err)
	s.Equal("SETTINGS_001", errorResp.Error.Code)
}

func (s *SettingsHandlerSuite) TestUpdateSetting_InvalidValue() {
	reqBody := dto.UpdateSettingRequest{Key: "budget", Value: "a lot"}

	s.mockService.EXPECT().
		UpdateSetting("budget", "a lot").
		Return(services.ErrInvalidSettingValue)

	c, rec := s.createContext("PUT", "/settings", reqBody)

	err := s.handler.UpdateSetting(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var errorResp ErrorResponse
	err = json.Unmarshal(rec.Body.Bytes(), &errorResp)
	s.NoError(err)
	s.Equal("SETTINGS_002", errorResp.Error.Code)
}

func (s *SettingsHandlerSuite) TestUpdateSetting_MissingValue() {
	reqBody := dto.UpdateSettingRequest{Key: "budget"}

	c, rec := s.createContext("PUT", "/settings", reqBody)

	err := s.handler.UpdateSetting(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}
