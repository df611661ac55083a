package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditor_CommitChangedTitle(t *testing.T) {
	e := New("Write docs")
	assert.Equal(t, Viewing, e.State())

	e.Begin()
	assert.Equal(t, Editing, e.State())
	assert.Equal(t, "Write docs", e.Draft())

	e.SetDraft("  Write better docs ")
	ev := e.Commit()

	assert.Equal(t, EventCommit, ev.Kind)
	assert.Equal(t, "Write better docs", ev.Value)
	assert.Equal(t, Viewing, e.State())
	assert.Equal(t, "Write better docs", e.Title())
}

func TestEditor_CommitUnchangedEmitsNothing(t *testing.T) {
	e := New("Write docs")
	e.Begin()
	e.SetDraft(" Write docs  ")

	assert.Equal(t, EventNone, e.Commit().Kind)
	assert.Equal(t, "Write docs", e.Title())
}

func TestEditor_CommitEmptyOnExistingCommitsBlank(t *testing.T) {
	e := New("Write docs")
	e.Begin()
	e.SetDraft("   ")

	ev := e.Commit()
	assert.Equal(t, EventCommit, ev.Kind)
	assert.Equal(t, "", ev.Value)
	assert.Equal(t, "", e.Title())

	// the owner rolls a rejected title back
	e.Reset("Write docs")
	assert.Equal(t, "Write docs", e.Title())
}

func TestEditor_Cancel(t *testing.T) {
	e := New("Write docs")
	e.Begin()
	e.SetDraft("something else")
	assert.Equal(t, "something else", e.Title())

	assert.Equal(t, EventCancel, e.Cancel().Kind)
	assert.Equal(t, Viewing, e.State())
	assert.Equal(t, "Write docs", e.Title())
}

func TestEditor_NewDraftWhitespaceDiscards(t *testing.T) {
	e := NewDraft()
	assert.Equal(t, Editing, e.State())
	assert.True(t, e.IsNew())

	e.SetDraft("  ")
	assert.Equal(t, EventDiscard, e.Commit().Kind)
}

func TestEditor_NewDraftCommit(t *testing.T) {
	e := NewDraft()
	e.SetDraft("Plan sprint")

	ev := e.Commit()
	assert.Equal(t, EventCommit, ev.Kind)
	assert.Equal(t, "Plan sprint", ev.Value)
	assert.False(t, e.IsNew())
}

func TestEditor_IgnoredWhileViewing(t *testing.T) {
	e := New("Write docs")

	e.SetDraft("ignored")
	assert.Equal(t, "", e.Draft())
	assert.Equal(t, EventNone, e.Commit().Kind)
	assert.Equal(t, EventNone, e.Cancel().Kind)
}

func TestEditor_Reset(t *testing.T) {
	e := New("old")
	e.Begin()
	e.SetDraft("new")
	e.Commit()

	e.Reset("old")
	assert.Equal(t, "old", e.Title())
}

func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "commit", EventCommit.String())
	assert.Equal(t, "discard", EventDiscard.String())
}
