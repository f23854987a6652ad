package verbs

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MudShop_Go/internal/domain"
	"github.com/osse101/MudShop_Go/internal/room"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		verb string
		args []string
	}{
		{"", "", nil},
		{"   ", "", nil},
		{"LOOK", "look", []string{}},
		{"order 2 OF 1", "order", []string{"2", "of", "1"}},
		{"  buy   short   sword ", "buy", []string{"short", "sword"}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			verb, args := Parse(tt.line)
			assert.Equal(t, tt.verb, verb)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestExecutor_UnknownPlayer(t *testing.T) {
	h := newHarness(t)

	err := h.exec.Execute(context.Background(), "Nobody", "look")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestExecutor_UnknownVerb(t *testing.T) {
	h := newHarness(t)
	h.addRoom(room.New("field", room.Data{Name: "a field"}))
	h.addPlayer("Alice", "field", 0)

	assert.Equal(t, MsgUnknownVerb, h.run(t, "Alice", "dance wildly"))
}

func TestExecutor_MissingRoom(t *testing.T) {
	h := newHarness(t)
	h.addPlayer("Alice", "void", 0)

	assert.Equal(t, MsgNowhere, h.run(t, "Alice", "look"))
}

func TestExecutor_AliasAndRegister(t *testing.T) {
	h := newHarness(t)
	h.addRoom(room.New("field", room.Data{Name: "a field"}))
	h.addPlayer("Alice", "field", 0)

	var got *Request
	h.exec.Register("wave", func(_ context.Context, req *Request) error {
		got = req
		return nil
	})
	h.exec.Alias("wv", "wave")

	require.NoError(t, h.exec.Execute(context.Background(), "Alice", "WV at Bob"))

	require.NotNil(t, got)
	assert.Equal(t, "wave", got.Verb)
	assert.Equal(t, "at bob", got.Target())
	assert.Equal(t, "field", got.Room.RoomID)
	assert.Contains(t, h.exec.Verbs(), "wave")
}

func TestExecutor_Describe(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("%w: x", domain.ErrNoShop), MsgNoShop},
		{fmt.Errorf("%w: index 9", domain.ErrNoSuchItem), MsgInvalidSelection},
		{domain.ErrNotForSale, MsgNotForSale},
		{domain.ErrInvalidQuantity, MsgInvalidQuantity},
		{domain.ErrCannotAfford, MsgCannotAfford},
		{domain.ErrInsufficientStock, MsgInsufficientStock},
		{domain.ErrTemplateMissing, MsgTemplateMissing},
		{domain.ErrNotInterested, MsgNotInterested},
		{domain.ErrWorthless, MsgWorthless},
		{domain.ErrRoomNotFound, MsgNowhere},
		{errors.New("disk on fire"), MsgSomethingWrong},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, h.exec.describe(ctx, "buy", tt.err))
		})
	}
}
