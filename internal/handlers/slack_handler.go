package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dutyrota/dutyrota/internal/domain"
	"github.com/dutyrota/dutyrota/internal/domain/contract"
	"github.com/dutyrota/dutyrota/internal/slackcmd"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	rotaService   contract.RotaService
	skipService   contract.SkipService
	signingSecret string
}

func New(rotaService contract.RotaService, skipService contract.SkipService, signingSecret string) *SlackHandler {
	return &SlackHandler{
		rotaService:   rotaService,
		skipService:   skipService,
		signingSecret: signingSecret,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Parse our command
	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	// Handle command
	response := h.handleCommand(r, cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdAdd:
		return h.handleAddMember(cmd, slashCmd)
	case slackcmd.CmdRemove:
		return h.handleRemoveMember(cmd, slashCmd)
	case slackcmd.CmdList:
		return h.handleListMembers(slashCmd)
	case slackcmd.CmdConfig:
		return h.handleConfig(cmd, slashCmd)
	case slackcmd.CmdSkip:
		return h.handleSkip(r, cmd, slashCmd)
	case slackcmd.CmdStatus:
		return h.handleStatus(slashCmd)
	case slackcmd.CmdHistory:
		return h.handleHistory(cmd, slashCmd)
	case slackcmd.CmdPause:
		return h.handlePause(slashCmd)
	case slackcmd.CmdResume:
		return h.handleResume(slashCmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

// parseMention extracts the user ID from a Slack mention like <@U123|name>.
func parseMention(mention string) string {
	userID := strings.TrimSpace(mention)
	userID = strings.TrimPrefix(userID, "<@")
	userID = strings.TrimSuffix(userID, ">")
	if idx := strings.Index(userID, "|"); idx >= 0 {
		userID = userID[:idx]
	}
	return userID
}

func (h *SlackHandler) setupRotation(slashCmd *slack.SlashCommand) (int64, *slack.Msg) {
	rotation, _, err := h.rotaService.SetupRotation(slashCmd.ChannelID, slashCmd.ChannelName, slashCmd.TeamID)
	if err != nil {
		return 0, h.createErrorResponse("Could not look up the rotation for this channel")
	}
	return rotation.ID, nil
}

func (h *SlackHandler) handleAddMember(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Please mention the user: `/rota add @user`")
	}

	rotationID, errMsg := h.setupRotation(slashCmd)
	if errMsg != nil {
		return errMsg
	}

	var added []string
	for _, mention := range cmd.Args {
		userID := parseMention(mention)
		if err := h.rotaService.AddMember(rotationID, userID); err != nil {
			return h.createErrorResponse(fmt.Sprintf("Could not add <@%s>: %v", userID, err))
		}
		added = append(added, userID)
	}

	if len(added) == 1 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeInChannel,
			Text:         fmt.Sprintf("✅ <@%s> has been added to the rotation!", added[0]),
		}
	}

	mentions := make([]string, len(added))
	for i, userID := range added {
		mentions[i] = fmt.Sprintf("<@%s>", userID)
	}
	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ %d users added to the rotation: %s", len(added), strings.Join(mentions, ", ")),
	}
}

func (h *SlackHandler) handleRemoveMember(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Please mention the user: `/rota remove @user`")
	}

	rotationID, errMsg := h.setupRotation(slashCmd)
	if errMsg != nil {
		return errMsg
	}

	userID := parseMention(cmd.Args[0])
	if err := h.rotaService.RemoveMember(rotationID, userID); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Could not remove <@%s>: %v", userID, err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ <@%s> has been removed from the rotation.", userID),
	}
}

func (h *SlackHandler) handleListMembers(slashCmd *slack.SlashCommand) *slack.Msg {
	rotationID, errMsg := h.setupRotation(slashCmd)
	if errMsg != nil {
		return errMsg
	}

	members, err := h.rotaService.ListMembers(rotationID)
	if err != nil {
		return h.createErrorResponse("Could not list members")
	}

	if len(members) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No members in the rotation yet. Use `/rota add @user` to add one.",
		}
	}

	var memberList strings.Builder
	memberList.WriteString("*Rotation members:*\n")
	for i, userID := range members {
		memberList.WriteString(fmt.Sprintf("%d. <@%s>\n", i+1, userID))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         memberList.String(),
	}
}

func (h *SlackHandler) handleConfig(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) < 2 {
		return h.createErrorResponse("Use: `/rota config time HH:MM`, `/rota config freq weekly`, `/rota config tz America/Sao_Paulo`, `/rota config start YYYY-MM-DD` or `/rota config weekdays on|off`")
	}

	configType := cmd.Args[0]
	configValue := strings.Join(cmd.Args[1:], " ")

	rotationID, errMsg := h.setupRotation(slashCmd)
	if errMsg != nil {
		return errMsg
	}

	if err := h.rotaService.UpdateConfig(rotationID, configType, configValue); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Could not update settings: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("✅ Settings updated: %s = %s", configType, configValue),
	}
}

func (h *SlackHandler) handleSkip(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	reason := strings.Join(cmd.Args, " ")

	result, err := h.skipService.SkipCurrent(r.Context(), slashCmd.ChannelID, slashCmd.UserID, reason)
	if err != nil {
		var skipErr *domain.SkipNotAllowedError
		switch {
		case errors.As(err, &skipErr):
			return h.createErrorResponse(fmt.Sprintf("Cannot skip: %s", skipErr.Reason))
		case errors.Is(err, domain.ErrAlreadySkipped):
			return h.createErrorResponse("Today's assignment was already skipped")
		case errors.Is(err, domain.ErrAssignmentNotFound):
			return h.createErrorResponse("There is no open assignment to skip today")
		case errors.Is(err, domain.ErrRotationNotFound):
			return h.createErrorResponse("This channel has no rotation yet. Use `/rota add @user` to start one.")
		default:
			return h.createErrorResponse(fmt.Sprintf("Could not skip: %v", err))
		}
	}

	text := fmt.Sprintf("⏭️ Duty handed over to <@%s>", result.NewMemberID)
	if !result.Delivered {
		text += " (notification pending, it will be retried)"
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         text,
	}
}

func (h *SlackHandler) handleStatus(slashCmd *slack.SlashCommand) *slack.Msg {
	rotationID, errMsg := h.setupRotation(slashCmd)
	if errMsg != nil {
		return errMsg
	}

	status, err := h.rotaService.Status(rotationID, time.Now())
	if err != nil {
		return h.createErrorResponse("Could not load the rotation status")
	}

	rotation := status.Rotation

	var b strings.Builder
	b.WriteString(fmt.Sprintf("*Rotation %s*\n", rotation.Name))
	if rotation.IsActive {
		b.WriteString("State: active\n")
	} else {
		b.WriteString("State: paused\n")
	}
	schedule := strings.ToLower(rotation.Recurrence.Frequency)
	if rotation.Recurrence.Interval > 1 {
		schedule = fmt.Sprintf("%s (every %d)", schedule, rotation.Recurrence.Interval)
	}
	b.WriteString(fmt.Sprintf("Schedule: %s at %s (%s)\n", schedule, rotation.NotificationTime, rotation.Timezone))
	if rotation.Recurrence.WeekdaysOnly {
		b.WriteString("Weekdays only: yes\n")
	}
	b.WriteString(fmt.Sprintf("Members: %d\n", len(rotation.Members)))

	if status.OpenAssignment != nil {
		b.WriteString(fmt.Sprintf("On duty today: <@%s>\n", status.OpenAssignment.SlackUserID))
	}
	if status.HasOccurrence {
		b.WriteString(fmt.Sprintf("Next occurrence: %s\n", status.NextOccurrence.Format("2006-01-02")))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         b.String(),
	}
}

func (h *SlackHandler) handleHistory(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	rotationID, errMsg := h.setupRotation(slashCmd)
	if errMsg != nil {
		return errMsg
	}

	limit := 10
	if len(cmd.Args) > 0 {
		parsed, err := strconv.Atoi(cmd.Args[0])
		if err != nil || parsed < 1 {
			return h.createErrorResponse("History size must be a positive number")
		}
		limit = parsed
	}

	records, err := h.rotaService.History(rotationID, limit)
	if err != nil {
		return h.createErrorResponse("Could not load the assignment history")
	}

	if len(records) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No assignments yet.",
		}
	}

	var b strings.Builder
	b.WriteString("*Recent assignments:*\n")
	for _, record := range records {
		line := fmt.Sprintf("%s - <@%s>", record.AssignedDate.Format("2006-01-02"), record.SlackUserID)
		if record.Skipped {
			line += " (skipped)"
		} else if record.Status == domain.AssignmentPending {
			line += " (notification pending)"
		}
		b.WriteString(line + "\n")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         b.String(),
	}
}

func (h *SlackHandler) handlePause(slashCmd *slack.SlashCommand) *slack.Msg {
	rotationID, errMsg := h.setupRotation(slashCmd)
	if errMsg != nil {
		return errMsg
	}

	if err := h.rotaService.Pause(rotationID); err != nil {
		return h.createErrorResponse("Could not pause the rotation")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "⏸️ Rotation paused. Use `/rota resume` to start it again.",
	}
}

func (h *SlackHandler) handleResume(slashCmd *slack.SlashCommand) *slack.Msg {
	rotationID, errMsg := h.setupRotation(slashCmd)
	if errMsg != nil {
		return errMsg
	}

	if err := h.rotaService.Resume(rotationID); err != nil {
		return h.createErrorResponse("Could not resume the rotation")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "▶️ Rotation resumed.",
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
