package export

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jeff-nasseri/mailharvest/interfaces"
	"github.com/jeff-nasseri/mailharvest/internal/models"
)

type mockConnector struct {
	mock.Mock
}

func (m *mockConnector) Connect() error {
	args := m.Called()
	return args.Error(0)
}

func (m *mockConnector) FetchEmails(opts interfaces.FetchOptions) ([]models.EmailRecord, error) {
	args := m.Called(opts)
	records, _ := args.Get(0).([]models.EmailRecord)
	return records, args.Error(1)
}

func (m *mockConnector) Disconnect() {
	m.Called()
}

type mockExporter struct {
	mock.Mock
}

func (m *mockExporter) Export(records []models.EmailRecord, path string) error {
	args := m.Called(records, path)
	return args.Error(0)
}

func TestRun_ExportsFetchedRecords(t *testing.T) {
	// Arrange
	records := []models.EmailRecord{{ID: "1", Subject: "Offer"}}
	opts := Options{
		OutputPath: "output.json",
		Fetch: interfaces.FetchOptions{
			Limit:         10,
			PlainTextOnly: true,
			Exclusions:    models.NewExclusionList("newsletter"),
		},
	}

	connector := new(mockConnector)
	connector.On("Connect").Return(nil)
	connector.On("FetchEmails", opts.Fetch).Return(records, nil)
	connector.On("Disconnect").Return()

	exporter := new(mockExporter)
	exporter.On("Export", records, "output.json").Return(nil)

	service := NewService(connector, exporter, getLogger())

	// Act
	err := service.Run(opts)

	// Assert
	require.NoError(t, err)
	connector.AssertExpectations(t)
	exporter.AssertExpectations(t)
}

func TestRun_ConnectFailureStopsEverything(t *testing.T) {
	// Arrange
	connectErr := errors.New("connection refused")

	connector := new(mockConnector)
	connector.On("Connect").Return(connectErr)

	exporter := new(mockExporter)

	service := NewService(connector, exporter, getLogger())

	// Act
	err := service.Run(Options{OutputPath: "output.json"})

	// Assert
	assert.ErrorIs(t, err, connectErr)
	connector.AssertNotCalled(t, "FetchEmails", mock.Anything)
	connector.AssertNotCalled(t, "Disconnect")
	exporter.AssertNotCalled(t, "Export", mock.Anything, mock.Anything)
}

func TestRun_DisconnectsAfterFetchFailure(t *testing.T) {
	// Arrange
	fetchErr := errors.New("mailbox gone")

	connector := new(mockConnector)
	connector.On("Connect").Return(nil)
	connector.On("FetchEmails", mock.Anything).Return(nil, fetchErr)
	connector.On("Disconnect").Return()

	exporter := new(mockExporter)

	service := NewService(connector, exporter, getLogger())

	// Act
	err := service.Run(Options{OutputPath: "output.json"})

	// Assert
	assert.ErrorIs(t, err, fetchErr)
	connector.AssertCalled(t, "Disconnect")
	exporter.AssertNotCalled(t, "Export", mock.Anything, mock.Anything)
}

func TestRun_DisconnectsAfterExportFailure(t *testing.T) {
	// Arrange
	exportErr := errors.New("disk full")

	connector := new(mockConnector)
	connector.On("Connect").Return(nil)
	connector.On("FetchEmails", mock.Anything).Return([]models.EmailRecord{}, nil)
	connector.On("Disconnect").Return()

	exporter := new(mockExporter)
	exporter.On("Export", mock.Anything, mock.Anything).Return(exportErr)

	service := NewService(connector, exporter, getLogger())

	// Act
	err := service.Run(Options{OutputPath: "output.json"})

	// Assert
	assert.ErrorIs(t, err, exportErr)
	connector.AssertCalled(t, "Disconnect")
}
