package chat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewChat_SeedsWelcomeMessage(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	c := NewChat(now)

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, DefaultTitle, c.Title)
	assert.Equal(t, []string{"gpt-4"}, c.Chat.Models)
	require.NotNil(t, c.Chat.History.CurrentID)
	assert.Equal(t, WelcomeMessageID, *c.Chat.History.CurrentID)
	assert.Equal(t, []string{WelcomeMessageID}, c.Chat.History.Roots())
	assert.Equal(t, now.Unix(), c.Chat.History.Messages[WelcomeMessageID].Timestamp)
	assert.NoError(t, c.Chat.History.Validate())

	other := NewChat(now)
	assert.NotEqual(t, c.ID, other.ID)
}

func TestHistory_AppendLinksToCurrent(t *testing.T) {
	h := NewHistory(time.Now())

	user := &Message{Role: RoleUser, Content: "cześć"}
	require.NoError(t, h.Append(user))
	reply := &Message{ID: "r1", Role: RoleAssistant, Content: "hej"}
	require.NoError(t, h.Append(reply))

	assert.NotEmpty(t, user.ID)
	require.NotNil(t, user.ParentID)
	assert.Equal(t, WelcomeMessageID, *user.ParentID)
	assert.Equal(t, []string{user.ID}, h.Messages[WelcomeMessageID].ChildrenIDs)
	assert.Equal(t, user.ID, *reply.ParentID)
	assert.Equal(t, "r1", *h.CurrentID)
	assert.Equal(t, []string{WelcomeMessageID}, h.Roots())
	assert.NoError(t, h.Validate())

	assert.ErrorIs(t, h.Append(&Message{ID: "r1"}), ErrDuplicateMessage)
}

func TestHistory_AppendToEmptyStartsRoot(t *testing.T) {
	var h History
	require.NoError(t, h.Append(&Message{ID: "a", Role: RoleUser}))

	assert.Nil(t, h.Messages["a"].ParentID)
	assert.Equal(t, []string{}, h.Messages["a"].ChildrenIDs)
	assert.Equal(t, "a", *h.CurrentID)
}

func TestHistory_AppendWithDanglingCurrent(t *testing.T) {
	h := History{Messages: map[string]*Message{}, CurrentID: strPtr("ghost")}
	assert.ErrorIs(t, h.Append(&Message{ID: "a"}), ErrUnknownCurrent)
}

func TestHistory_Validate(t *testing.T) {
	tests := []struct {
		name    string
		history History
		wantErr error
	}{
		{
			name: "forest with two roots",
			history: History{Messages: map[string]*Message{
				"a": {ID: "a", ChildrenIDs: []string{"b"}},
				"b": {ID: "b", ParentID: strPtr("a")},
				"c": {ID: "c"},
			}, CurrentID: strPtr("b")},
		},
		{
			name: "unknown parent",
			history: History{Messages: map[string]*Message{
				"b": {ID: "b", ParentID: strPtr("a")},
			}},
			wantErr: ErrUnknownParent,
		},
		{
			name: "unknown child",
			history: History{Messages: map[string]*Message{
				"a": {ID: "a", ChildrenIDs: []string{"x"}},
			}},
			wantErr: ErrUnknownChild,
		},
		{
			name: "child not listed by parent",
			history: History{Messages: map[string]*Message{
				"a": {ID: "a"},
				"b": {ID: "b", ParentID: strPtr("a")},
			}},
			wantErr: ErrBrokenLink,
		},
		{
			name: "cycle",
			history: History{Messages: map[string]*Message{
				"a": {ID: "a", ParentID: strPtr("b"), ChildrenIDs: []string{"b"}},
				"b": {ID: "b", ParentID: strPtr("a"), ChildrenIDs: []string{"a"}},
			}},
			wantErr: ErrCycle,
		},
		{
			name: "dangling current",
			history: History{Messages: map[string]*Message{
				"a": {ID: "a"},
			}, CurrentID: strPtr("z")},
			wantErr: ErrUnknownCurrent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.history.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestChats_Queries(t *testing.T) {
	now := time.Now()
	a, b, c := NewChat(now), NewChat(now), NewChat(now)
	a.Tags = []string{"work", "go"}
	b.Tags = []string{"home"}
	b.Pinned = true
	c.Tags = []string{"go", "home"}
	chats := Chats{a, b, c}

	found, ok := chats.FindByID(b.ID)
	require.True(t, ok)
	assert.Same(t, b, found)
	_, ok = chats.FindByID("missing")
	assert.False(t, ok)
	assert.Equal(t, 2, chats.IndexOf(c.ID))

	assert.Equal(t, Chats{b}, chats.Pinned())
	assert.Equal(t, Chats{a, c}, chats.WithTag("go"))
	assert.Empty(t, chats.WithTag("none"))
	assert.Equal(t, []string{"work", "go", "home"}, chats.DistinctTags())

	d := NewChat(now)
	prepended := chats.Prepend(d)
	assert.Equal(t, d.ID, prepended[0].ID)
	assert.Len(t, prepended, 4)
}

func TestChats_Validate(t *testing.T) {
	now := time.Now()
	a, b := NewChat(now), NewChat(now)

	assert.NoError(t, Chats{a, b}.Validate())
	assert.ErrorIs(t, Chats{a, a}.Validate(), ErrDuplicateChatID)
	assert.ErrorIs(t, Chats{a, {Title: "sem id"}}.Validate(), ErrEmptyChatID)
	assert.ErrorIs(t, Chats{nil}.Validate(), ErrEmptyChatID)

	broken := NewChat(now)
	broken.Chat.History.Messages["ghost"] = nil
	assert.ErrorIs(t, Chats{a, broken}.Validate(), ErrNilMessage)
}

func TestChats_Compact(t *testing.T) {
	a := NewChat(time.Now())
	assert.Equal(t, Chats{a}, Chats{nil, a, nil}.Compact())
}
