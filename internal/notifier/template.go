package notifier

import (
	"fmt"
	"strings"
)

// Vars is the substitution map applied to a message document.
type Vars map[string]string

// Node is one variant of a message document. Rendering walks the tree and
// substitutes values per node kind, so placeholders can never leak into the
// output as raw text.
type Node interface {
	render(b *strings.Builder, vars Vars)
}

// Text is a literal fragment.
type Text string

func (t Text) render(b *strings.Builder, _ Vars) {
	b.WriteString(string(t))
}

// Var substitutes the plain value stored under its key.
type Var string

func (v Var) render(b *strings.Builder, vars Vars) {
	b.WriteString(vars[string(v)])
}

// Mention renders a Slack user mention for the user id stored under its key.
type Mention string

func (m Mention) render(b *strings.Builder, vars Vars) {
	fmt.Fprintf(b, "<@%s>", vars[string(m)])
}

// Section is a container node joining its children in order.
type Section []Node

func (s Section) render(b *strings.Builder, vars Vars) {
	for _, child := range s {
		child.render(b, vars)
	}
}

// Render produces the message text for a document and its substitutions.
func Render(doc Node, vars Vars) string {
	var b strings.Builder
	doc.render(&b, vars)
	return b.String()
}

var dutyDoc = Section{
	Text("🎯 *"), Var("rotaName"), Text("* duty today: "), Mention("userId"),
	Text("\n\nUse `/rota skip` if they are unavailable."),
}

var skippedDoc = Section{
	Text("~🎯 *"), Var("rotaName"), Text("* duty today: "), Mention("userId"), Text("~\n"),
	Text("_Skipped by "), Mention("skippedBy"), Text(" at "), Var("skippedAt"),
	Text(". "), Mention("newUserId"), Text(" takes over._"),
}

var replacementDoc = Section{
	Text("🔁 *"), Var("rotaName"), Text("* duty reassigned to "), Mention("userId"),
	Text(" after a skip."),
}

// DutyMessage is the daily notification for the assigned member.
func DutyMessage(rotaName, userID string) string {
	return Render(dutyDoc, Vars{"rotaName": rotaName, "userId": userID})
}

// SkippedMessage is the edited body of the original notification after a
// skip, showing the struck-through assignee and the replacement.
func SkippedMessage(rotaName, userID, skippedBy, skippedAt, newUserID string) string {
	return Render(skippedDoc, Vars{
		"rotaName":  rotaName,
		"userId":    userID,
		"skippedBy": skippedBy,
		"skippedAt": skippedAt,
		"newUserId": newUserID,
	})
}

// ReplacementMessage announces the member taking over after a skip.
func ReplacementMessage(rotaName, userID string) string {
	return Render(replacementDoc, Vars{"rotaName": rotaName, "userId": userID})
}
