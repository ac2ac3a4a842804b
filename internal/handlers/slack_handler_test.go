package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dutyrota/dutyrota/internal/domain"
	"github.com/dutyrota/dutyrota/internal/domain/contract"
	"github.com/dutyrota/dutyrota/internal/domain/entity"
	"github.com/dutyrota/dutyrota/internal/handlers/test"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSigningSecret = "test-signing-secret"

type handlerArgs struct {
	command     string
	text        string
	channelID   string
	channelName string
	userID      string
	teamID      string
}

func defaultArgs(text string) handlerArgs {
	return handlerArgs{
		command:     "/rota",
		text:        text,
		channelID:   "C123456789",
		channelName: "test-channel",
		userID:      "U987654321",
		teamID:      "T123456789",
	}
}

func testRotationEntity(args handlerArgs) *entity.Rotation {
	return &entity.Rotation{
		ID:             1,
		SlackTeamID:    args.teamID,
		SlackChannelID: args.channelID,
		Name:           args.channelName,
		Members:        []string{"U111", "U222"},
		Recurrence: entity.Recurrence{
			Frequency: domain.FrequencyDaily,
			Interval:  1,
		},
		NotificationTime: "09:00",
		Timezone:         "UTC",
		IsActive:         true,
	}
}

func decodeResponse(t *testing.T, resp *httptest.ResponseRecorder) slack.Msg {
	t.Helper()

	require.Equal(t, http.StatusOK, resp.Code)

	var response slack.Msg
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	require.NoError(t, err)
	return response
}

func TestSlackHandler_HandleSlashCommand(t *testing.T) {
	tests := []struct {
		name          string
		args          handlerArgs
		buildMocks    func(m test.ServiceMocks, args handlerArgs)
		checkResponse func(t *testing.T, resp *httptest.ResponseRecorder)
	}{
		{
			name: "Should add a member successfully",
			args: defaultArgs("add <@U123456789|testuser>"),
			buildMocks: func(m test.ServiceMocks, args handlerArgs) {
				m.RotaServiceMock.EXPECT().
					SetupRotation(args.channelID, args.channelName, args.teamID).
					Return(testRotationEntity(args), false, nil).Times(1)

				m.RotaServiceMock.EXPECT().
					AddMember(int64(1), "U123456789").
					Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Equal(t, slack.ResponseTypeInChannel, response.ResponseType)
				assert.Contains(t, response.Text, "✅ <@U123456789> has been added to the rotation!")
			},
		},
		{
			name: "Should add multiple members in one command",
			args: defaultArgs("add <@U123456789|testuser> <@U555555555|other>"),
			buildMocks: func(m test.ServiceMocks, args handlerArgs) {
				m.RotaServiceMock.EXPECT().
					SetupRotation(args.channelID, args.channelName, args.teamID).
					Return(testRotationEntity(args), false, nil).Times(1)

				m.RotaServiceMock.EXPECT().
					AddMember(int64(1), "U123456789").
					Return(nil).Times(1)
				m.RotaServiceMock.EXPECT().
					AddMember(int64(1), "U555555555").
					Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Equal(t, slack.ResponseTypeInChannel, response.ResponseType)
				assert.Contains(t, response.Text, "2 users added to the rotation: <@U123456789>, <@U555555555>")
			},
		},
		{
			name: "Should ask for a mention when add has no argument",
			args: defaultArgs("add"),
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "❌")
				assert.Contains(t, response.Text, "/rota add @user")
			},
		},
		{
			name: "Should surface a rejected member add as an error",
			args: defaultArgs("add <@UBOT|robot>"),
			buildMocks: func(m test.ServiceMocks, args handlerArgs) {
				m.RotaServiceMock.EXPECT().
					SetupRotation(args.channelID, args.channelName, args.teamID).
					Return(testRotationEntity(args), false, nil).Times(1)

				m.RotaServiceMock.EXPECT().
					AddMember(int64(1), "UBOT").
					Return(&domain.ValidationError{Field: "member", Msg: "bots and deactivated users cannot join a rotation"}).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "Could not add <@UBOT>")
			},
		},
		{
			name: "Should remove a member successfully",
			args: defaultArgs("remove <@U123456789|testuser>"),
			buildMocks: func(m test.ServiceMocks, args handlerArgs) {
				m.RotaServiceMock.EXPECT().
					SetupRotation(args.channelID, args.channelName, args.teamID).
					Return(testRotationEntity(args), false, nil).Times(1)

				m.RotaServiceMock.EXPECT().
					RemoveMember(int64(1), "U123456789").
					Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Equal(t, slack.ResponseTypeInChannel, response.ResponseType)
				assert.Contains(t, response.Text, "✅ <@U123456789> has been removed from the rotation.")
			},
		},
		{
			name: "Should list members",
			args: defaultArgs("list"),
			buildMocks: func(m test.ServiceMocks, args handlerArgs) {
				m.RotaServiceMock.EXPECT().
					SetupRotation(args.channelID, args.channelName, args.teamID).
					Return(testRotationEntity(args), false, nil).Times(1)

				m.RotaServiceMock.EXPECT().
					ListMembers(int64(1)).
					Return([]string{"U111", "U222"}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "1. <@U111>")
				assert.Contains(t, response.Text, "2. <@U222>")
			},
		},
		{
			name: "Should hint at add when the rotation is empty",
			args: defaultArgs("list"),
			buildMocks: func(m test.ServiceMocks, args handlerArgs) {
				m.RotaServiceMock.EXPECT().
					SetupRotation(args.channelID, args.channelName, args.teamID).
					Return(testRotationEntity(args), true, nil).Times(1)

				m.RotaServiceMock.EXPECT().
					ListMembers(int64(1)).
					Return(nil, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "No members in the rotation yet")
			},
		},
		{
			name: "Should update a setting",
			args: defaultArgs("config time 14:30"),
			buildMocks: func(m test.ServiceMocks, args handlerArgs) {
				m.RotaServiceMock.EXPECT().
					SetupRotation(args.channelID, args.channelName, args.teamID).
					Return(testRotationEntity(args), false, nil).Times(1)

				m.RotaServiceMock.EXPECT().
					UpdateConfig(int64(1), "time", "14:30").
					Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "✅ Settings updated: time = 14:30")
			},
		},
		{
			name: "Should skip today's assignee",
			args: defaultArgs("skip on vacation"),
			buildMocks: func(m test.ServiceMocks, args handlerArgs) {
				m.SkipServiceMock.EXPECT().
					SkipCurrent(gomock.Any(), args.channelID, args.userID, "on vacation").
					Return(&contract.SkipResult{NewAssignmentID: 11, NewMemberID: "U222", Delivered: true}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Equal(t, slack.ResponseTypeInChannel, response.ResponseType)
				assert.Contains(t, response.Text, "⏭️ Duty handed over to <@U222>")
				assert.NotContains(t, response.Text, "pending")
			},
		},
		{
			name: "Should flag an undelivered replacement notification",
			args: defaultArgs("skip"),
			buildMocks: func(m test.ServiceMocks, args handlerArgs) {
				m.SkipServiceMock.EXPECT().
					SkipCurrent(gomock.Any(), args.channelID, args.userID, "").
					Return(&contract.SkipResult{NewAssignmentID: 11, NewMemberID: "U222", Delivered: false}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "notification pending")
			},
		},
		{
			name: "Should explain a rejected skip",
			args: defaultArgs("skip"),
			buildMocks: func(m test.ServiceMocks, args handlerArgs) {
				m.SkipServiceMock.EXPECT().
					SkipCurrent(gomock.Any(), args.channelID, args.userID, "").
					Return(nil, &domain.SkipNotAllowedError{Reason: "every other member was already skipped over today"}).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "Cannot skip: every other member was already skipped over today")
			},
		},
		{
			name: "Should explain when there is nothing to skip",
			args: defaultArgs("skip"),
			buildMocks: func(m test.ServiceMocks, args handlerArgs) {
				m.SkipServiceMock.EXPECT().
					SkipCurrent(gomock.Any(), args.channelID, args.userID, "").
					Return(nil, domain.ErrAssignmentNotFound).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "no open assignment to skip today")
			},
		},
		{
			name: "Should pause the rotation",
			args: defaultArgs("pause"),
			buildMocks: func(m test.ServiceMocks, args handlerArgs) {
				m.RotaServiceMock.EXPECT().
					SetupRotation(args.channelID, args.channelName, args.teamID).
					Return(testRotationEntity(args), false, nil).Times(1)

				m.RotaServiceMock.EXPECT().Pause(int64(1)).Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "⏸️ Rotation paused")
			},
		},
		{
			name: "Should resume the rotation",
			args: defaultArgs("resume"),
			buildMocks: func(m test.ServiceMocks, args handlerArgs) {
				m.RotaServiceMock.EXPECT().
					SetupRotation(args.channelID, args.channelName, args.teamID).
					Return(testRotationEntity(args), false, nil).Times(1)

				m.RotaServiceMock.EXPECT().Resume(int64(1)).Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "▶️ Rotation resumed.")
			},
		},
		{
			name: "Should show the rotation status",
			args: defaultArgs("status"),
			buildMocks: func(m test.ServiceMocks, args handlerArgs) {
				rotation := testRotationEntity(args)

				m.RotaServiceMock.EXPECT().
					SetupRotation(args.channelID, args.channelName, args.teamID).
					Return(rotation, false, nil).Times(1)

				m.RotaServiceMock.EXPECT().
					Status(int64(1), gomock.Any()).
					Return(&contract.RotationStatus{
						Rotation:       rotation,
						OpenAssignment: &entity.Assignment{ID: 5, SlackUserID: "U111"},
						NextOccurrence: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
						HasOccurrence:  true,
						EligibleNow:    false,
					}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "State: active")
				assert.Contains(t, response.Text, "On duty today: <@U111>")
				assert.Contains(t, response.Text, "Next occurrence: 2024-03-05")
			},
		},
		{
			name: "Should show the assignment history",
			args: defaultArgs("history 2"),
			buildMocks: func(m test.ServiceMocks, args handlerArgs) {
				m.RotaServiceMock.EXPECT().
					SetupRotation(args.channelID, args.channelName, args.teamID).
					Return(testRotationEntity(args), false, nil).Times(1)

				m.RotaServiceMock.EXPECT().
					History(int64(1), 2).
					Return([]*entity.Assignment{
						{ID: 6, SlackUserID: "U222", AssignedDate: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), Status: domain.AssignmentDelivered},
						{ID: 5, SlackUserID: "U111", AssignedDate: time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC), Skipped: true},
					}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "2024-03-04 - <@U222>")
				assert.Contains(t, response.Text, "2024-03-03 - <@U111> (skipped)")
			},
		},
		{
			name: "Should show the help text for an empty command",
			args: defaultArgs(""),
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "*Available Commands:*")
			},
		},
		{
			name: "Should reject an unknown command",
			args: defaultArgs("dance"),
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "unknown command: dance")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			if tt.buildMocks != nil {
				tt.buildMocks(m, tt.args)
			}

			req := test.CreateSlackRequest(t, tt.args.command, tt.args.text, tt.args.channelID, tt.args.channelName, tt.args.userID, tt.args.teamID, testSigningSecret)
			resp := test.CreateTestRecorder()

			handler.HandleSlashCommand(resp, req)

			tt.checkResponse(t, resp)
		})
	}
}

func TestSlackHandler_HandleSlashCommand_InvalidSignature(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	req := test.CreateSlackRequest(t, "/rota", "list", "C123456789", "test-channel", "U987654321", "T123456789", "wrong-secret")
	resp := test.CreateTestRecorder()

	handler.HandleSlashCommand(resp, req)

	require.Equal(t, http.StatusUnauthorized, resp.Code)
}
