package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type RequestIDTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *RequestIDTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestRequestIDTestSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

// newContext builds a bare request/recorder pair for middleware tests.
func (s *RequestIDTestSuite) newContext() (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

// TestRequestID_MintsTraceID verifies a request without a trace header gets one
func (s *RequestIDTestSuite) TestRequestID_MintsTraceID() {
	c, rec := s.newContext()

	handler := RequestID()(func(c echo.Context) error {
		s.NotEmpty(GetTraceID(c))
		return c.NoContent(http.StatusOK)
	})

	s.NoError(handler(c))
	s.NotEmpty(rec.Header().Get(TraceIDHeader))
}

// TestRequestID_HonorsCallerTraceID verifies a caller-supplied X-Trace-ID survives
func (s *RequestIDTestSuite) TestRequestID_HonorsCallerTraceID() {
	callerTraceID := "retry-correlation-12345"

	c, rec := s.newContext()
	c.Request().Header.Set(TraceIDHeader, callerTraceID)

	handler := RequestID()(func(c echo.Context) error {
		s.Equal(callerTraceID, GetTraceID(c))
		return c.NoContent(http.StatusOK)
	})

	s.NoError(handler(c))
	s.Equal(callerTraceID, rec.Header().Get(TraceIDHeader))
}

// TestRequestID_ContextMatchesHeader verifies the same ID lands in both places
func (s *RequestIDTestSuite) TestRequestID_ContextMatchesHeader() {
	c, rec := s.newContext()

	var seenByHandler string
	handler := RequestID()(func(c echo.Context) error {
		seenByHandler = GetTraceID(c)
		return c.NoContent(http.StatusOK)
	})

	s.NoError(handler(c))
	s.Equal(seenByHandler, rec.Header().Get(TraceIDHeader))
}

// TestRequestID_MintedIDIsUUID verifies minted trace IDs parse as UUIDs
func (s *RequestIDTestSuite) TestRequestID_MintedIDIsUUID() {
	c, _ := s.newContext()

	handler := RequestID()(func(c echo.Context) error {
		_, err := uuid.Parse(GetTraceID(c))
		s.NoError(err)
		return c.NoContent(http.StatusOK)
	})

	s.NoError(handler(c))
}

// TestGetTraceID_EmptyWithoutMiddleware verifies the getter on a bare context
func (s *RequestIDTestSuite) TestGetTraceID_EmptyWithoutMiddleware() {
	c, _ := s.newContext()
	s.Empty(GetTraceID(c))
}
