package service

import (
	"io"
	"testing"

	"github.com/dutyrota/dutyrota/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager    *mocks.MockDataManager
	mockRotationRepo   *mocks.MockRotationRepo
	mockAssignmentRepo *mocks.MockAssignmentRepo
	mockSlackClient    *mocks.MockSlackClient
	mockRecurrence     *mocks.MockRecurrenceEvaluator
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	rotationRepo := mocks.NewMockRotationRepo(ctrl)
	dm.EXPECT().Rotation().Return(rotationRepo).AnyTimes()

	assignmentRepo := mocks.NewMockAssignmentRepo(ctrl)
	dm.EXPECT().Assignment().Return(assignmentRepo).AnyTimes()

	slackClient := mocks.NewMockSlackClient(ctrl)
	evaluator := mocks.NewMockRecurrenceEvaluator(ctrl)

	m = allMocks{
		mockDataManager:    dm,
		mockRotationRepo:   rotationRepo,
		mockAssignmentRepo: assignmentRepo,
		mockSlackClient:    slackClient,
		mockRecurrence:     evaluator,
	}

	// validate service creation
	instance := NewInstance(dm, slackClient, evaluator, testLogger())
	require.NotNil(t, instance)

	return
}

// newTestInstance builds the full service graph on top of the given mocks.
func newTestInstance(m allMocks) *Instance {
	return NewInstance(m.mockDataManager, m.mockSlackClient, m.mockRecurrence, testLogger())
}
