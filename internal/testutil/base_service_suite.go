package testutil

import (
	"context"

	"github.com/anmolenterprise/invoicer/internal/config"
	"github.com/anmolenterprise/invoicer/internal/logger"
	"github.com/anmolenterprise/invoicer/internal/pdf"
	"github.com/anmolenterprise/invoicer/internal/sentry"
	"github.com/anmolenterprise/invoicer/internal/validator"
	"github.com/stretchr/testify/suite"
)

// SubmissionURL is where test configurations send submissions
const SubmissionURL = "http://submissions.test/api/invoice"

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	logger       *logger.Logger
	config       *config.Configuration
	pdfGenerator pdf.Generator
	sentry       *sentry.Service
	httpClient   *MockHTTPClient
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	validator.NewValidator()
	s.logger = logger.NewNopLogger()
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = SetupContext()

	s.config = config.GetDefaultConfig()
	s.config.PDF.Compress = false
	s.config.Submission.URL = SubmissionURL

	s.pdfGenerator = pdf.NewGenerator(s.config, s.logger)
	s.sentry = sentry.NewSentryService(s.config, s.logger)
	s.httpClient = NewMockHTTPClient()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.httpClient.Clear()
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetPDFGenerator returns a real generator with uncompressed output
func (s *BaseServiceTestSuite) GetPDFGenerator() pdf.Generator {
	return s.pdfGenerator
}

func (s *BaseServiceTestSuite) GetSentry() *sentry.Service {
	return s.sentry
}

func (s *BaseServiceTestSuite) GetHTTPClient() *MockHTTPClient {
	return s.httpClient
}

func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}
