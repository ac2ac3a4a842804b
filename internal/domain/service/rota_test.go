package service

import (
	"testing"
	"time"

	"github.com/dutyrota/dutyrota/internal/domain"
	"github.com/dutyrota/dutyrota/internal/domain/entity"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_rotaService_SetupRotation(t *testing.T) {
	now := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

	t.Run("Should return the existing rotation without creating", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		instance := newTestInstance(m)
		existing := testRotation("U111")

		m.mockRotationRepo.EXPECT().
			GetBySlackChannelID(existing.SlackChannelID).
			Return(existing, nil).Times(1)

		rotation, created, err := instance.Rota.SetupRotation(existing.SlackChannelID, "daily-standup", "T123456789")

		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, existing, rotation)
	})

	t.Run("Should create a rotation with defaults on first use", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		instance := newTestInstance(m)
		instance.Rota.now = func() time.Time { return now }

		m.mockRotationRepo.EXPECT().
			GetBySlackChannelID("C123456789").
			Return(nil, nil).Times(1)

		m.mockRotationRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(r *entity.Rotation) error {
				r.ID = 1
				assert.Equal(t, domain.FrequencyDaily, r.Recurrence.Frequency)
				assert.Equal(t, 1, r.Recurrence.Interval)
				assert.True(t, r.Recurrence.WeekdaysOnly)
				assert.Equal(t, domain.DefaultNotificationTime, r.NotificationTime)
				assert.Equal(t, domain.DefaultTimezone, r.Timezone)
				assert.True(t, r.IsActive)
				assert.Empty(t, r.Members)
				return nil
			}).Times(1)

		rotation, created, err := instance.Rota.SetupRotation("C123456789", "daily-standup", "T123456789")

		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, int64(1), rotation.ID)
		assert.Equal(t, "daily-standup", rotation.Name)
	})
}

func Test_rotaService_AddMember(t *testing.T) {
	type args struct {
		rotationID  int64
		slackUserID string
	}
	tests := []struct {
		name      string
		buildMock func(mocks allMocks, args args)
		args      args
		wantErr   bool
	}{
		{
			name: "Should add a member and park the cursor before any assignment",
			args: args{rotationID: 1, slackUserID: "U111"},
			buildMock: func(mocks allMocks, args args) {
				rotation := testRotation()

				mocks.mockSlackClient.EXPECT().
					GetUserInfo(args.slackUserID).
					Return(&slack.User{ID: args.slackUserID}, nil).Times(1)

				mocks.mockRotationRepo.EXPECT().
					GetByID(args.rotationID).
					Return(rotation, nil).Times(1)

				mocks.mockAssignmentRepo.EXPECT().
					ListRecent(args.rotationID, 1).
					Return(nil, nil).Times(1)

				mocks.mockRotationRepo.EXPECT().
					Update(gomock.Any()).
					DoAndReturn(func(r *entity.Rotation) error {
						assert.Equal(t, []string{"U111"}, r.Members)
						// Cursor sits on the new last member so the first
						// member added still gets the first duty.
						assert.Equal(t, 0, r.Cursor)
						return nil
					}).Times(1)
			},
		},
		{
			name: "Should keep the cursor once the rotation has history",
			args: args{rotationID: 1, slackUserID: "U333"},
			buildMock: func(mocks allMocks, args args) {
				rotation := testRotation("U111", "U222")
				rotation.Cursor = 1

				mocks.mockSlackClient.EXPECT().
					GetUserInfo(args.slackUserID).
					Return(&slack.User{ID: args.slackUserID}, nil).Times(1)

				mocks.mockRotationRepo.EXPECT().
					GetByID(args.rotationID).
					Return(rotation, nil).Times(1)

				mocks.mockAssignmentRepo.EXPECT().
					ListRecent(args.rotationID, 1).
					Return([]*entity.Assignment{{ID: 5}}, nil).Times(1)

				mocks.mockRotationRepo.EXPECT().
					Update(gomock.Any()).
					DoAndReturn(func(r *entity.Rotation) error {
						assert.Equal(t, []string{"U111", "U222", "U333"}, r.Members)
						assert.Equal(t, 1, r.Cursor)
						return nil
					}).Times(1)
			},
		},
		{
			name: "Should reject a user already in the rotation",
			args: args{rotationID: 1, slackUserID: "U111"},
			buildMock: func(mocks allMocks, args args) {
				rotation := testRotation("U111", "U222")

				mocks.mockSlackClient.EXPECT().
					GetUserInfo(args.slackUserID).
					Return(&slack.User{ID: args.slackUserID}, nil).Times(1)

				mocks.mockRotationRepo.EXPECT().
					GetByID(args.rotationID).
					Return(rotation, nil).Times(1)
			},
			wantErr: true,
		},
		{
			name: "Should reject a bot user",
			args: args{rotationID: 1, slackUserID: "UBOT"},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockSlackClient.EXPECT().
					GetUserInfo(args.slackUserID).
					Return(&slack.User{ID: args.slackUserID, IsBot: true}, nil).Times(1)
			},
			wantErr: true,
		},
		{
			name: "Should reject an unknown Slack user",
			args: args{rotationID: 1, slackUserID: "U404"},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockSlackClient.EXPECT().
					GetUserInfo(args.slackUserID).
					Return(nil, assert.AnError).Times(1)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			instance := newTestInstance(m)

			if tt.buildMock != nil {
				tt.buildMock(m, tt.args)
			}

			err := instance.Rota.AddMember(tt.args.rotationID, tt.args.slackUserID)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func Test_rotaService_RemoveMember(t *testing.T) {
	type args struct {
		rotationID  int64
		slackUserID string
	}
	tests := []struct {
		name      string
		buildMock func(mocks allMocks, args args)
		args      args
		wantErr   bool
	}{
		{
			name: "Should remove a member before the cursor and pull the cursor back",
			args: args{rotationID: 1, slackUserID: "U111"},
			buildMock: func(mocks allMocks, args args) {
				rotation := testRotation("U111", "U222", "U333")
				rotation.Cursor = 2

				mocks.mockRotationRepo.EXPECT().
					GetByID(args.rotationID).
					Return(rotation, nil).Times(1)

				mocks.mockRotationRepo.EXPECT().
					Update(gomock.Any()).
					DoAndReturn(func(r *entity.Rotation) error {
						assert.Equal(t, []string{"U222", "U333"}, r.Members)
						assert.Equal(t, 1, r.Cursor)
						return nil
					}).Times(1)
			},
		},
		{
			name: "Should reset the cursor when the last member slot disappears",
			args: args{rotationID: 1, slackUserID: "U222"},
			buildMock: func(mocks allMocks, args args) {
				rotation := testRotation("U111", "U222")
				rotation.Cursor = 0

				mocks.mockRotationRepo.EXPECT().
					GetByID(args.rotationID).
					Return(rotation, nil).Times(1)

				mocks.mockRotationRepo.EXPECT().
					Update(gomock.Any()).
					DoAndReturn(func(r *entity.Rotation) error {
						assert.Equal(t, []string{"U111"}, r.Members)
						assert.Equal(t, 0, r.Cursor)
						return nil
					}).Times(1)
			},
		},
		{
			name: "Should fail for a user outside the rotation",
			args: args{rotationID: 1, slackUserID: "U404"},
			buildMock: func(mocks allMocks, args args) {
				rotation := testRotation("U111")

				mocks.mockRotationRepo.EXPECT().
					GetByID(args.rotationID).
					Return(rotation, nil).Times(1)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			instance := newTestInstance(m)

			if tt.buildMock != nil {
				tt.buildMock(m, tt.args)
			}

			err := instance.Rota.RemoveMember(tt.args.rotationID, tt.args.slackUserID)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func Test_rotaService_UpdateConfig(t *testing.T) {
	type args struct {
		configType string
		value      string
	}
	tests := []struct {
		name    string
		args    args
		check   func(t *testing.T, r *entity.Rotation)
		wantErr bool
	}{
		{
			name: "Should update the notification time",
			args: args{configType: "time", value: "14:30"},
			check: func(t *testing.T, r *entity.Rotation) {
				assert.Equal(t, "14:30", r.NotificationTime)
			},
		},
		{
			name:    "Should reject minutes off the quarter-hour grid",
			args:    args{configType: "time", value: "14:10"},
			wantErr: true,
		},
		{
			name: "Should update the frequency with an interval",
			args: args{configType: "freq", value: "weekly 2"},
			check: func(t *testing.T, r *entity.Rotation) {
				assert.Equal(t, domain.FrequencyWeekly, r.Recurrence.Frequency)
				assert.Equal(t, 2, r.Recurrence.Interval)
			},
		},
		{
			name: "Should default the interval to one",
			args: args{configType: "freq", value: "monthly"},
			check: func(t *testing.T, r *entity.Rotation) {
				assert.Equal(t, domain.FrequencyMonthly, r.Recurrence.Frequency)
				assert.Equal(t, 1, r.Recurrence.Interval)
			},
		},
		{
			name:    "Should reject an unknown frequency",
			args:    args{configType: "freq", value: "hourly"},
			wantErr: true,
		},
		{
			name: "Should update the timezone",
			args: args{configType: "tz", value: "America/Sao_Paulo"},
			check: func(t *testing.T, r *entity.Rotation) {
				assert.Equal(t, "America/Sao_Paulo", r.Timezone)
			},
		},
		{
			name:    "Should reject an unknown timezone",
			args:    args{configType: "tz", value: "Mars/Olympus_Mons"},
			wantErr: true,
		},
		{
			name: "Should update the start date",
			args: args{configType: "start", value: "2024-06-01"},
			check: func(t *testing.T, r *entity.Rotation) {
				assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), r.Recurrence.StartDate)
			},
		},
		{
			name:    "Should reject a malformed start date",
			args:    args{configType: "start", value: "01/06/2024"},
			wantErr: true,
		},
		{
			name: "Should turn weekday-only scheduling off",
			args: args{configType: "weekdays", value: "off"},
			check: func(t *testing.T, r *entity.Rotation) {
				assert.False(t, r.Recurrence.WeekdaysOnly)
			},
		},
		{
			name:    "Should reject an unknown setting",
			args:    args{configType: "color", value: "blue"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			instance := newTestInstance(m)
			rotation := testRotation("U111", "U222")

			m.mockRotationRepo.EXPECT().
				GetByID(rotation.ID).
				Return(rotation, nil).Times(1)

			if !tt.wantErr {
				m.mockRotationRepo.EXPECT().
					Update(gomock.Any()).
					DoAndReturn(func(r *entity.Rotation) error {
						tt.check(t, r)
						return nil
					}).Times(1)
			}

			err := instance.Rota.UpdateConfig(rotation.ID, tt.args.configType, tt.args.value)

			if tt.wantErr {
				require.Error(t, err)
				var validationErr *domain.ValidationError
				require.ErrorAs(t, err, &validationErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func Test_rotaService_PauseResume(t *testing.T) {
	t.Run("Should pause an active rotation", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		instance := newTestInstance(m)
		rotation := testRotation("U111")

		m.mockRotationRepo.EXPECT().GetByID(rotation.ID).Return(rotation, nil).Times(1)
		m.mockRotationRepo.EXPECT().SetActive(rotation.ID, false).Return(nil).Times(1)

		require.NoError(t, instance.Rota.Pause(rotation.ID))
	})

	t.Run("Should not touch the store when already paused", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		instance := newTestInstance(m)
		rotation := testRotation("U111")
		rotation.IsActive = false

		m.mockRotationRepo.EXPECT().GetByID(rotation.ID).Return(rotation, nil).Times(1)

		require.NoError(t, instance.Rota.Pause(rotation.ID))
	})

	t.Run("Should resume a paused rotation", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		instance := newTestInstance(m)
		rotation := testRotation("U111")
		rotation.IsActive = false

		m.mockRotationRepo.EXPECT().GetByID(rotation.ID).Return(rotation, nil).Times(1)
		m.mockRotationRepo.EXPECT().SetActive(rotation.ID, true).Return(nil).Times(1)

		require.NoError(t, instance.Rota.Resume(rotation.ID))
	})
}

func Test_rotaService_Status(t *testing.T) {
	now := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	day := entity.Day(now)

	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	instance := newTestInstance(m)
	rotation := testRotation("U111", "U222")

	m.mockRotationRepo.EXPECT().GetByID(rotation.ID).Return(rotation, nil).Times(1)

	// Once inside ShouldRun, once for the next-occurrence preview.
	m.mockRecurrence.EXPECT().IsValid(rotation.Recurrence).Return(true).Times(1)
	m.mockRecurrence.EXPECT().
		NextOccurrence(rotation.Recurrence, gomock.Any()).
		Return(day, true).Times(2)

	skipped := &entity.Assignment{ID: 10, SlackUserID: "U111", Skipped: true}
	open := &entity.Assignment{ID: 11, SlackUserID: "U222"}

	m.mockAssignmentRepo.EXPECT().
		ListForDay(rotation.ID, day).
		Return([]*entity.Assignment{skipped, open}, nil).Times(1)

	status, err := instance.Rota.Status(rotation.ID, now)

	require.NoError(t, err)
	assert.Equal(t, rotation, status.Rotation)
	assert.True(t, status.EligibleNow)
	assert.True(t, status.HasOccurrence)
	assert.Equal(t, day, status.NextOccurrence)
	require.NotNil(t, status.OpenAssignment)
	assert.Equal(t, int64(11), status.OpenAssignment.ID)
}

func Test_rotaService_History(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	instance := newTestInstance(m)
	rotation := testRotation("U111")

	records := []*entity.Assignment{{ID: 3}, {ID: 2}, {ID: 1}}

	m.mockRotationRepo.EXPECT().GetByID(rotation.ID).Return(rotation, nil).Times(1)
	m.mockAssignmentRepo.EXPECT().ListRecent(rotation.ID, 10).Return(records, nil).Times(1)

	// A non-positive limit falls back to the default of ten.
	got, err := instance.Rota.History(rotation.ID, 0)

	require.NoError(t, err)
	assert.Equal(t, records, got)
}
