package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/MudShop_Go/internal/domain"
	"github.com/osse101/MudShop_Go/internal/room"
)

func TestHandleGetRoom(t *testing.T) {
	rooms := new(MockRooms)
	rooms.On("RoomSnapshot", mock.Anything, "market").Return(room.Data{Name: "market square"}, nil)
	rooms.On("RoomSnapshot", mock.Anything, "atlantis").Return(nil, fmt.Errorf("load: %w", domain.ErrRoomNotFound))

	w := serve(http.MethodGet, "/rooms/{roomID}", "/rooms/market", "", HandleGetRoom(rooms))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"market square"`)

	w = serve(http.MethodGet, "/rooms/{roomID}", "/rooms/atlantis", "", HandleGetRoom(rooms))
	assert.Equal(t, http.StatusNotFound, w.Code)
	rooms.AssertNotCalled(t, "Room", mock.Anything, mock.Anything)
}

func TestHandleTickRoom(t *testing.T) {
	rm := room.New("curio", room.Data{Name: "curio shop"})

	t.Run("success", func(t *testing.T) {
		rooms := new(MockRooms)
		rooms.On("Room", mock.Anything, "curio").Return(rm, nil)
		ticker := new(MockTicker)
		ticker.On("TickRoom", mock.Anything, rm).Return(nil)

		w := serve(http.MethodPost, "/rooms/{roomID}/tick", "/rooms/curio/tick", "", HandleTickRoom(rooms, ticker))

		assert.Equal(t, http.StatusOK, w.Code)
		ticker.AssertExpectations(t)
	})

	t.Run("tick failure", func(t *testing.T) {
		rooms := new(MockRooms)
		rooms.On("Room", mock.Anything, "curio").Return(rm, nil)
		ticker := new(MockTicker)
		ticker.On("TickRoom", mock.Anything, rm).Return(errors.New("save failed"))

		w := serve(http.MethodPost, "/rooms/{roomID}/tick", "/rooms/curio/tick", "", HandleTickRoom(rooms, ticker))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "save failed")
	})
}
