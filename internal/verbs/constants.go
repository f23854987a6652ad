package verbs

import "time"

// ==================== Tuning ====================

const (
	// DefaultDisplayMarkup prices items bought out of dynamic display cases.
	DefaultDisplayMarkup = 1.2

	// ListLimit caps the lines shown for a descriptor shop.
	ListLimit = 15

	// InvestigateRoundtime is the action delay after investigating.
	InvestigateRoundtime = 3 * time.Second

	// DefaultPerceptionDC applies to hidden objects without a perception_dc.
	DefaultPerceptionDC = 100

	// DefaultDetailDC applies to examine details without a dc.
	DefaultDetailDC = 100
)

// Verb names and aliases
const (
	VerbList        = "list"
	VerbOrder       = "order"
	VerbBuy         = "buy"
	VerbSell        = "sell"
	VerbAppraise    = "appraise"
	VerbLook        = "look"
	VerbExamine     = "examine"
	VerbInvestigate = "investigate"
)

var defaultAliases = map[string]string{
	"x": VerbExamine,
	"l": VerbLook,
}

var backpackWords = []string{"backpack", "pack", "back"}

// ==================== Player Messages ====================

// Shop messages
const (
	MsgNoShop          = "You can't seem to shop here."
	MsgNothingForSale  = "The shop has nothing for sale right now."
	MsgListHeader      = "--- Items for Sale ---"
	MsgListColumns     = "Item Name (type 'buy <name>')      Price"
	MsgListRule        = "-----------------------------------------"
	MsgOrderHint       = "Type ORDER <number> or ORDER <quantity> OF <number> to buy."
	MsgListLineFmt     = "- %-30s %d silver"
	MsgListTableFmt    = "- %-30s %d silver (on the %s)"
	MsgOrderLineFmt    = "%2d. %-30s %d silver (%d in stock)"
	MsgOrderSoldOutFmt = "%2d. %-30s %d silver (sold out)"
	MsgOrderUsage      = "Usage: ORDER <number> or ORDER <quantity> OF <number>"
	MsgBuyWhat         = "What do you want to buy?"

	MsgInvalidSelection  = "Invalid item selection."
	MsgNotForSale        = "That item is not for sale here."
	MsgInvalidQuantity   = "That is not a valid quantity."
	MsgCannotAfford      = "You cannot afford that."
	MsgInsufficientStock = "Not enough stock available."
	MsgTemplateMissing   = "The shopkeeper can't seem to find that item. Your silver is returned."
	MsgSomethingWrong    = "Something went wrong. Please try again."
	MsgUnknownVerb       = "I don't understand that."
	MsgNowhere           = "You are nowhere at all."
)

// Sell and appraise messages
const (
	MsgSellWhat           = "What do you want to sell?"
	MsgAppraiseWhat       = "What do you want to appraise?"
	MsgNotHoldingFmt      = "You are not holding a '%s' to sell."
	MsgDontHaveFmt        = "You don't have a '%s'."
	MsgNotInterested      = "The shopkeep isn't interested in that item."
	MsgAppraiseNoInterest = "The shopkeep looks at your item and shakes their head, 'I'm not interested in that.'"
	MsgWorthless          = "That item is worthless."
	MsgAppraiseWorthless  = "The shopkeep tells you, 'That item is worthless.'"
	MsgAppraiseOfferFmt   = "The shopkeep offers you %d silver for your %s."
	MsgSoldFmt            = "You sell %s for %d silver."
	MsgBackpackOffer      = "You offer your backpack to the shopkeep to look through..."
	MsgBackpackNothing    = "The shopkeep finds nothing of interest in your pack."
	MsgBackpackWorthless  = "The shopkeep finds nothing of value in your pack."
	MsgEarnedTotalFmt     = "You earned a total of %d silver."
)

// Look, examine and investigate messages
const (
	MsgAlsoSeeFmt         = "You also see %s."
	MsgAlsoHereFmt        = "Also here: %s."
	MsgLookAtFmt          = "You see **%s**."
	MsgLookAtOwnFmt       = "You look at your **%s**."
	MsgExamineFmt         = "You examine the **%s**."
	MsgInvestigateObjFmt  = "You investigate the **%s**."
	MsgNondescript        = "It is a nondescript object."
	MsgNotHereFmt         = "You do not see a **%s** here."
	MsgExamineWhat        = "Examine what?"
	MsgNothingUnusual     = "You don't notice anything else unusual about it."
	MsgTryVerbsFmt        = "You could try: %s"
	MsgOnSurfaceFmt       = "On the %s you see:"
	MsgNothingOnFmt       = "There is nothing on the %s."
	MsgInContainerFmt     = "In the %s you see:"
	MsgEmptyFmt           = "The %s is empty."
	MsgNoContainerFmt     = "You don't see a container called '%s' here."
	MsgItemLineFmt        = "- %s"
	MsgTableEmptyFmt      = "No one is sitting at the %s."
	MsgTableOneFmt        = "There is 1 person sitting at the %s."
	MsgTableManyFmt       = "There are %d people sitting at the %s."
	MsgTableNothingFmt    = "The %s has nothing of interest for sale."
	MsgInvestigateRoom    = "You investigate the room..."
	MsgInvestigateNothing = "...but you don't find anything unusual."
	MsgInvestigateNoNew   = "...but you don't find anything new."
	MsgRevealFmt          = "Your investigation reveals: **%s**!"
	MsgNotReadyFmt        = "You are not ready to do that yet. (Wait %.1fs)"
)

// ==================== Error Messages ====================

const (
	ErrMsgUnknownPlayerFmt = "%w: %s"
	ErrMsgLoadRoomFmt      = "failed to load room %s: %w"
	ErrMsgDisplayIndexFmt  = "%w: display listing %d"
	ErrMsgDisplayQtyFmt    = "%w: display items are sold one at a time, got %d"
	ErrMsgCostFmt          = "%w: cost %d, have %d"
)

// ==================== Log Messages ====================

const (
	LogMsgVerbFailed       = "Verb ended in a player-facing error"
	LogMsgVerbUnexpected   = "Verb failed unexpectedly"
	LogMsgRoomUnavailable  = "Player room unavailable"
	LogMsgDeliveryFailed   = "Purchase committed but delivery failed"
	LogMsgDisplayPurchased = "Display item purchased"
	LogMsgItemSold         = "Item sold to shop"
	LogMsgHiddenRevealed   = "Hidden object revealed"
	LogMsgSoldCountFailed  = "Failed to record sold count"
	LogMsgPublishFailed    = "Failed to publish shop event"
)
