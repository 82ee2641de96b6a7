package catalog

import (
	"github.com/danmuck/pokerpackets/internal/protocol/schema"
	"github.com/danmuck/pokerpackets/internal/protocol/wire"
)

// Type ids of the client-side display messages. These are generated by a
// client for its own display and never cross the server boundary.
const (
	IDPokerBestCards          uint8 = 170
	IDPokerPotChips           uint8 = 171
	IDPokerBetLimit           uint8 = 173
	IDPokerSitRequest         uint8 = 174
	IDPokerPlayerNoCards      uint8 = 175
	IDPokerChipsPlayer2Bet    uint8 = 176
	IDPokerChipsBet2Pot       uint8 = 177
	IDPokerChipsPot2Player    uint8 = 178
	IDPokerChipsPotMerge      uint8 = 179
	IDPokerChipsPotReset      uint8 = 180
	IDPokerChipsBet2Player    uint8 = 181
	IDPokerEndRound           uint8 = 182
	IDPokerDealCards          uint8 = 184
	IDPokerSelfInPosition     uint8 = 187
	IDPokerSelfLostPosition   uint8 = 188
	IDPokerHighestBetIncrease uint8 = 189
	IDPokerPlayerWin          uint8 = 190
	IDPokerBeginRound         uint8 = 197
	IDPokerCurrentGames       uint8 = 198
	IDPokerEndRoundLast       uint8 = 199
	IDPokerSitOutNextTurn     uint8 = 201
	IDPokerShowdown           uint8 = 204
	IDPokerClientPlayerChips  uint8 = 205
	IDPokerAllinShowdown      uint8 = 209
	IDPokerPlayerHandStrength uint8 = 210
)

var (
	// ChipsPlayer2Bet moves chips, given as (value, count) pairs, between a
	// player's stacks.
	ChipsPlayer2Bet = schema.Extend(PokerID, schema.Field("chips", []uint32{}, wire.TypeChips))
	// ChipsBet2Pot moves chips from a bet to a pot index, -1 when unset.
	ChipsBet2Pot = schema.Extend(PokerID,
		schema.Field("chips", []uint32{}, wire.TypeChips),
		schema.Field("pot", int8(-1), wire.TypeI8),
	)
)

func clientDefinitions() []definition {
	return []definition{
		{IDPokerBestCards, "POKER_BEST_CARDS", schema.Extend(PokerCards,
			schema.Field("side", "", wire.TypeString),
			schema.Field("hand", "", wire.TypeString),
			schema.Field("bestcards", []uint8{}, wire.TypeU8List),
			schema.Field("board", []uint8{}, wire.TypeU8List),
			schema.Field("besthand", uint8(0), wire.TypeU8),
		)},
		{IDPokerPotChips, "POKER_POT_CHIPS", schema.Extend(Packet,
			schema.Field("game_id", uint32(0), wire.TypeU32),
			schema.Field("index", uint8(0), wire.TypeU8),
			schema.Field("bet", []uint32{}, wire.TypeChips),
		)},
		{IDPokerBetLimit, "POKER_BET_LIMIT", schema.Extend(PokerID,
			schema.Field("min", uint32(0), wire.TypeU32),
			schema.Field("max", uint32(0), wire.TypeU32),
			schema.Field("step", uint32(0), wire.TypeU32),
			schema.Field("call", uint32(0), wire.TypeU32),
			schema.Field("allin", uint32(0), wire.TypeU32),
			schema.Field("pot", uint32(0), wire.TypeU32),
		)},
		{IDPokerSitRequest, "POKER_SIT_REQUEST", PokerID},
		{IDPokerPlayerNoCards, "POKER_PLAYER_NO_CARDS", PokerID},
		{IDPokerChipsPlayer2Bet, "POKER_CHIPS_PLAYER2BET", ChipsPlayer2Bet},
		{IDPokerChipsBet2Pot, "POKER_CHIPS_BET2POT", ChipsBet2Pot},
		{IDPokerChipsPot2Player, "POKER_CHIPS_POT2PLAYER", schema.Extend(ChipsBet2Pot,
			schema.Field("reason", "", wire.TypeString),
		)},
		{IDPokerChipsPotMerge, "POKER_CHIPS_POT_MERGE", schema.Extend(PokerID,
			schema.Field("sources", []uint8{}, wire.TypeU8List),
			schema.Field("destination", uint8(0), wire.TypeU8),
		)},
		{IDPokerChipsPotReset, "POKER_CHIPS_POT_RESET", PokerID},
		{IDPokerChipsBet2Player, "POKER_CHIPS_BET2PLAYER", ChipsPlayer2Bet},
		{IDPokerEndRound, "POKER_END_ROUND", PokerID},
		{IDPokerDealCards, "POKER_DEAL_CARDS", schema.Extend(PokerID,
			schema.Field("numberOfCards", uint8(2), wire.TypeU8),
			schema.Field("serials", []uint32{}, wire.TypeU32List),
		)},
		{IDPokerSelfInPosition, "POKER_SELF_IN_POSITION", PokerPosition},
		{IDPokerSelfLostPosition, "POKER_SELF_LOST_POSITION", PokerPosition},
		{IDPokerHighestBetIncrease, "POKER_HIGHEST_BET_INCREASE", PokerID},
		{IDPokerPlayerWin, "POKER_PLAYER_WIN", PokerID},
		{IDPokerBeginRound, "POKER_BEGIN_ROUND", PokerID},
		{IDPokerCurrentGames, "POKER_CURRENT_GAMES", schema.Extend(Packet,
			schema.Field("game_ids", []uint32{}, wire.TypeU32List),
			schema.Field("count", uint8(0), wire.TypeU8),
		)},
		{IDPokerEndRoundLast, "POKER_END_ROUND_LAST", PokerID},
		{IDPokerSitOutNextTurn, "POKER_SIT_OUT_NEXT_TURN", PokerID},
		{IDPokerShowdown, "POKER_SHOWDOWN", schema.Extend(PokerID,
			schema.Field("showdown_stack", map[string]any{}, wire.TypeJSON),
		)},
		{IDPokerClientPlayerChips, "POKER_CLIENT_PLAYER_CHIPS", schema.Extend(Packet,
			schema.Field("game_id", uint32(0), wire.TypeU32),
			schema.Field("serial", uint32(0), wire.TypeU32),
			schema.Field("bet", []uint32{}, wire.TypeChips),
			schema.Field("money", []uint32{}, wire.TypeChips),
		)},
		{IDPokerAllinShowdown, "POKER_ALLIN_SHOWDOWN", schema.Extend(Packet,
			schema.Field("game_id", uint32(0), wire.TypeU32),
		)},
		{IDPokerPlayerHandStrength, "POKER_PLAYER_HAND_STRENGTH", schema.Extend(PokerID,
			schema.Field("hand", "", wire.TypeString),
		)},
	}
}
