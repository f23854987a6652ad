package verbs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/MudShop_Go/internal/concurrency"
	"github.com/osse101/MudShop_Go/internal/domain"
	"github.com/osse101/MudShop_Go/internal/economy"
	"github.com/osse101/MudShop_Go/internal/event"
	"github.com/osse101/MudShop_Go/internal/logger"
	"github.com/osse101/MudShop_Go/internal/metrics"
	"github.com/osse101/MudShop_Go/internal/room"
	"github.com/osse101/MudShop_Go/internal/utils"
)

// World is the slice of the game world the verbs read and write.
type World interface {
	economy.Messenger
	Player(name string) (*domain.Player, bool)
	PlayerRoom(name string) (string, bool)
	Room(ctx context.Context, id string) (*room.Room, error)
	RoomPlayers(roomID string) []string
	ActiveRooms() []*room.Room
	AllPlayers() []domain.PlayerInfo
}

// Request is one parsed command issued by a player standing in a room.
type Request struct {
	Player *domain.Player
	Room   *room.Room
	Verb   string
	Args   []string
}

// Target joins the arguments back into a single term.
func (r *Request) Target() string {
	return strings.Join(r.Args, " ")
}

// Handler runs a verb. Returned errors are turned into a player message.
type Handler func(ctx context.Context, req *Request) error

// Executor parses command lines and dispatches them to verb handlers while
// holding the acting player's room lock.
type Executor struct {
	world         World
	catalog       economy.Catalog
	shops         *economy.Manager
	deliverer     *economy.Deliverer
	mirror        *room.Mirror
	locks         *concurrency.LockManager
	publisher     event.Publisher
	displayMarkup float64

	handlers map[string]Handler
	aliases  map[string]string

	intn func(int) int
	now  func() time.Time
}

// NewExecutor creates an Executor with the shop verbs registered.
// publisher may be nil.
func NewExecutor(
	world World,
	catalog economy.Catalog,
	shops *economy.Manager,
	deliverer *economy.Deliverer,
	mirror *room.Mirror,
	locks *concurrency.LockManager,
	publisher event.Publisher,
) *Executor {
	if publisher == nil {
		publisher = event.Nop{}
	}
	e := &Executor{
		world:         world,
		catalog:       catalog,
		shops:         shops,
		deliverer:     deliverer,
		mirror:        mirror,
		locks:         locks,
		publisher:     publisher,
		displayMarkup: DefaultDisplayMarkup,
		handlers:      make(map[string]Handler),
		aliases:       make(map[string]string),
		intn:          utils.RandomIntn,
		now:           time.Now,
	}
	for alias, verb := range defaultAliases {
		e.aliases[alias] = verb
	}

	e.Register(VerbList, e.handleList)
	e.Register(VerbOrder, e.handleOrder)
	e.Register(VerbBuy, e.handleBuy)
	e.Register(VerbSell, e.handleSell)
	e.Register(VerbAppraise, e.handleAppraise)
	e.Register(VerbLook, e.handleLook)
	e.Register(VerbExamine, e.handleExamine)
	e.Register(VerbInvestigate, e.handleInvestigate)
	return e
}

// WithDisplayMarkup sets the markup applied to display case purchases.
func (e *Executor) WithDisplayMarkup(markup float64) *Executor {
	if markup > 0 {
		e.displayMarkup = markup
	}
	return e
}

// WithRand replaces the random source; intn must behave like utils.RandomIntn.
func (e *Executor) WithRand(intn func(int) int) *Executor {
	e.intn = intn
	return e
}

// WithClock replaces the wall clock.
func (e *Executor) WithClock(now func() time.Time) *Executor {
	e.now = now
	return e
}

// Register adds or replaces a verb handler.
func (e *Executor) Register(verb string, h Handler) {
	e.handlers[strings.ToLower(verb)] = h
}

// Alias makes alias run verb.
func (e *Executor) Alias(alias, verb string) {
	e.aliases[strings.ToLower(alias)] = strings.ToLower(verb)
}

// Verbs lists the registered verb names.
func (e *Executor) Verbs() []string {
	out := make([]string, 0, len(e.handlers))
	for v := range e.handlers {
		out = append(out, v)
	}
	return out
}

// Parse splits a command line into a lowercase verb and its arguments.
func Parse(line string) (string, []string) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}

// Execute runs one command line for the named player. Every verb outcome,
// failures included, is reported to the player; the returned error only
// signals that the player is unknown.
func (e *Executor) Execute(ctx context.Context, playerName, line string) error {
	ctx = logger.WithPlayer(ctx, playerName)
	log := logger.FromContext(ctx)

	p, ok := e.world.Player(playerName)
	if !ok {
		return fmt.Errorf(ErrMsgUnknownPlayerFmt, domain.ErrPlayerNotFound, playerName)
	}

	verb, args := Parse(line)
	if verb == "" {
		return nil
	}
	if target, ok := e.aliases[verb]; ok {
		verb = target
	}
	h, ok := e.handlers[verb]
	if !ok {
		e.reply(ctx, p, MsgUnknownVerb)
		return nil
	}
	metrics.VerbsExecuted.WithLabelValues(verb).Inc()

	// A move can land while we wait for the room lock; follow the player.
	var err error
	for handled := false; !handled; {
		roomID, ok := e.world.PlayerRoom(playerName)
		if !ok {
			return fmt.Errorf(ErrMsgUnknownPlayerFmt, domain.ErrPlayerNotFound, playerName)
		}
		e.locks.Do(roomID, func() {
			if current, _ := e.world.PlayerRoom(playerName); current != roomID {
				return
			}
			handled = true
			rm, loadErr := e.world.Room(ctx, roomID)
			if loadErr != nil {
				log.Warn(LogMsgRoomUnavailable, "room_id", roomID, "error", loadErr)
				err = loadErr
				return
			}
			err = h(ctx, &Request{Player: p, Room: rm, Verb: verb, Args: args})
		})
	}

	if err != nil {
		e.reply(ctx, p, e.describe(ctx, verb, err))
	}
	return nil
}

// describe maps a verb error to the line the player sees.
func (e *Executor) describe(ctx context.Context, verb string, err error) string {
	log := logger.FromContext(ctx)

	var msg string
	switch {
	case errors.Is(err, domain.ErrNoShop):
		msg = MsgNoShop
	case errors.Is(err, domain.ErrNoSuchItem):
		msg = MsgInvalidSelection
	case errors.Is(err, domain.ErrNotForSale):
		msg = MsgNotForSale
	case errors.Is(err, domain.ErrInvalidQuantity):
		msg = MsgInvalidQuantity
	case errors.Is(err, domain.ErrCannotAfford):
		msg = MsgCannotAfford
	case errors.Is(err, domain.ErrInsufficientStock):
		msg = MsgInsufficientStock
	case errors.Is(err, domain.ErrTemplateMissing):
		msg = MsgTemplateMissing
	case errors.Is(err, domain.ErrNotInterested):
		msg = MsgNotInterested
	case errors.Is(err, domain.ErrWorthless):
		msg = MsgWorthless
	case errors.Is(err, domain.ErrRoomNotFound):
		msg = MsgNowhere
	default:
		log.Error(LogMsgVerbUnexpected, "verb", verb, "error", err)
		return MsgSomethingWrong
	}

	log.Debug(LogMsgVerbFailed, "verb", verb, "error", err)
	return msg
}

func (e *Executor) reply(ctx context.Context, p *domain.Player, lines ...string) {
	if len(lines) == 0 {
		return
	}
	e.world.SendToPlayer(ctx, p.Name, strings.Join(lines, "\n"), domain.ChannelMessage)
}

func (e *Executor) publish(ctx context.Context, evt event.Event) {
	if err := e.publisher.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "error", err)
	}
}

func (e *Executor) nowSeconds() float64 {
	return float64(e.now().UnixNano()) / float64(time.Second)
}
