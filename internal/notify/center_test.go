package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FleetKeeper/internal/model"
)

var (
	admin    = model.User{ID: "u1", Role: model.RoleAdmin}
	engineer = model.User{ID: "u3", Role: model.RoleEngineer}
)

func TestPublish_AssignsIDAndResetsRead(t *testing.T) {
	c := NewCenter()

	n := c.Publish(model.Notification{Title: "Job Created", Message: "m", Read: true})
	assert.NotEmpty(t, n.ID)
	assert.False(t, n.Read)
	assert.False(t, n.Timestamp.IsZero())

	// id уникальны даже в пределах одной миллисекунды
	n2 := c.Publish(model.Notification{Title: "Job Updated"})
	assert.NotEqual(t, n.ID, n2.ID)

	all := c.All()
	require.Len(t, all, 2)
	assert.Equal(t, n.ID, all[0].ID)
}

func TestVisibility(t *testing.T) {
	c := NewCenter()
	c.Publish(model.Notification{Title: "admins only", Roles: []model.Role{model.RoleAdmin}})
	c.Publish(model.Notification{Title: "personal", UserIDs: []string{"u3"}})
	c.Publish(model.Notification{Title: "public"})

	// уведомление с ролью Admin видно админу, но не инженеру;
	// публичное видно всем
	adminSees := c.VisibleTo(admin)
	require.Len(t, adminSees, 2)
	assert.Equal(t, "admins only", adminSees[0].Title)
	assert.Equal(t, "public", adminSees[1].Title)

	engineerSees := c.VisibleTo(engineer)
	require.Len(t, engineerSees, 2)
	assert.Equal(t, "personal", engineerSees[0].Title)
	assert.Equal(t, "public", engineerSees[1].Title)
}

func TestMarkReadAndUnread(t *testing.T) {
	c := NewCenter()
	n1 := c.Publish(model.Notification{Title: "a"})
	c.Publish(model.Notification{Title: "b"})

	assert.Equal(t, 2, c.Unread(admin))
	c.MarkRead(n1.ID)
	assert.Equal(t, 1, c.Unread(admin))

	// неизвестный id — no-op
	c.MarkRead("missing")
	assert.Equal(t, 1, c.Unread(admin))
}

func TestRemoveAndClear(t *testing.T) {
	c := NewCenter()
	n1 := c.Publish(model.Notification{Title: "a"})
	c.Publish(model.Notification{Title: "b"})

	c.Remove(n1.ID)
	all := c.All()
	require.Len(t, all, 1)
	assert.Equal(t, "b", all[0].Title)

	c.Remove("missing")
	assert.Len(t, c.All(), 1)

	c.ClearAll()
	assert.Empty(t, c.All())
}

func TestSubscribe(t *testing.T) {
	c := NewCenter()
	var got []model.Notification
	c.Subscribe(func(n model.Notification) { got = append(got, n) })

	// подписчик получает уведомление синхронно, с проставленным id
	c.Publish(model.Notification{Title: "a", Timestamp: time.Now()})
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Title)
	assert.NotEmpty(t, got[0].ID)

	// nil-подписчик игнорируется
	c.Subscribe(nil)
	c.Publish(model.Notification{Title: "b"})
	assert.Len(t, got, 2)
}
