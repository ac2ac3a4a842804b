package notifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_NodeVariants(t *testing.T) {
	doc := Section{
		Text("hello "), Mention("who"), Text(", welcome to "), Var("where"),
	}

	got := Render(doc, Vars{"who": "U123", "where": "the rota"})
	assert.Equal(t, "hello <@U123>, welcome to the rota", got)
}

func TestRender_MissingVarRendersEmpty(t *testing.T) {
	doc := Section{Text("x"), Var("nope"), Text("y")}
	assert.Equal(t, "xy", Render(doc, Vars{}))
}

func TestDutyMessage(t *testing.T) {
	got := DutyMessage("standup", "U123456")

	assert.Contains(t, got, "*standup*")
	assert.Contains(t, got, "<@U123456>")
	assert.Contains(t, got, "/rota skip")
}

func TestSkippedMessage(t *testing.T) {
	got := SkippedMessage("standup", "U111", "U999", "09:30", "U222")

	assert.Contains(t, got, "~🎯 *standup* duty today: <@U111>~")
	assert.Contains(t, got, "Skipped by <@U999> at 09:30")
	assert.Contains(t, got, "<@U222> takes over")
}

func TestReplacementMessage(t *testing.T) {
	got := ReplacementMessage("standup", "U222")

	assert.Contains(t, got, "*standup*")
	assert.Contains(t, got, "<@U222>")
}
