package slackcmd

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdAdd     CommandType = "add"
	CmdRemove  CommandType = "remove"
	CmdList    CommandType = "list"
	CmdConfig  CommandType = "config"
	CmdSkip    CommandType = "skip"
	CmdStatus  CommandType = "status"
	CmdHistory CommandType = "history"
	CmdPause   CommandType = "pause"
	CmdResume  CommandType = "resume"
	CmdHelp    CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch parts[0] {
	case "add":
		cmd.Type = CmdAdd
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "remove", "rm":
		cmd.Type = CmdRemove
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "list", "ls":
		cmd.Type = CmdList
	case "config":
		cmd.Type = CmdConfig
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "skip":
		cmd.Type = CmdSkip
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "status":
		cmd.Type = CmdStatus
	case "history":
		cmd.Type = CmdHistory
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "pause":
		cmd.Type = CmdPause
	case "resume":
		cmd.Type = CmdResume
	case "help", "":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available Commands:*

*Configuration:*
• ` + "`/rota config time HH:MM`" + ` - Set notification time, minutes on the quarter hour (ex: 09:30)
• ` + "`/rota config freq FREQUENCY [interval]`" + ` - Set recurrence: daily, weekly, biweekly or monthly (ex: weekly 2)
• ` + "`/rota config tz TIMEZONE`" + ` - Set IANA timezone (ex: America/Sao_Paulo)
• ` + "`/rota config start YYYY-MM-DD`" + ` - Set recurrence start date
• ` + "`/rota config weekdays on|off`" + ` - Limit duties to weekdays

*Manage Members:*
• ` + "`/rota add @user`" + ` - Add member to the rotation
• ` + "`/rota remove @user`" + ` - Remove member from the rotation
• ` + "`/rota list`" + ` - List all members

*Duty:*
• ` + "`/rota skip [reason]`" + ` - Skip today's assignee and hand the duty to the next member

*Control:*
• ` + "`/rota pause`" + ` - Pause automatic assignments
• ` + "`/rota resume`" + ` - Resume automatic assignments
• ` + "`/rota status`" + ` - Show rotation status for this channel
• ` + "`/rota history [n]`" + ` - Show the last assignments`
}
