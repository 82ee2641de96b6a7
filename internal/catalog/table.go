package catalog

import (
	"github.com/danmuck/pokerpackets/internal/protocol/schema"
	"github.com/danmuck/pokerpackets/internal/protocol/wire"
)

// Type ids of the table messages.
const (
	IDPokerID            uint8 = 50
	IDPokerPosition      uint8 = 51
	IDPokerSit           uint8 = 52
	IDPokerSitOut        uint8 = 53
	IDPokerCards         uint8 = 54
	IDPokerSeat          uint8 = 55
	IDPokerPlayerArrive  uint8 = 56
	IDPokerPlayerChips   uint8 = 57
	IDPokerTable         uint8 = 58
	IDPokerTableList     uint8 = 59
	IDPokerUserInfo      uint8 = 60
	IDPokerPlayersList   uint8 = 61
	IDPokerTourneyRanks  uint8 = 62
	IDPokerTablePicker   uint8 = 63
	IDPokerAutoBlindAnte uint8 = 64
)

var (
	// PokerID addresses one player at one game.
	PokerID = schema.Extend(Serial, schema.Field("game_id", uint32(0), wire.TypeU32))
	// PokerPosition is PokerID plus a seat position, -1 when nobody is in
	// position.
	PokerPosition = schema.Extend(PokerID, schema.Field("position", int8(-1), wire.TypeI8))
	// PokerCards is PokerID plus card values.
	PokerCards = schema.Extend(PokerID, schema.Field("cards", []uint8{}, wire.TypeU8List))
)

func tableDefinitions() []definition {
	return []definition{
		{IDPokerID, "POKER_ID", PokerID},
		{IDPokerPosition, "POKER_POSITION", PokerPosition},
		{IDPokerSit, "POKER_SIT", PokerID},
		{IDPokerSitOut, "POKER_SIT_OUT", PokerID},
		{IDPokerCards, "POKER_CARDS", PokerCards},
		{IDPokerSeat, "POKER_SEAT", schema.Extend(PokerID,
			schema.Field("seat", wire.NullByte{}, wire.TypeOptU8),
		)},
		{IDPokerPlayerArrive, "POKER_PLAYER_ARRIVE", schema.Extend(PokerID,
			schema.Field("name", "noname", wire.TypeString),
			schema.Field("url", "random", wire.TypeString),
			schema.Field("outfit", "random", wire.TypeString),
			schema.Field("blind", "late", wire.TypeBoolString),
			schema.Field("remove_next_turn", false, wire.TypeBool),
			schema.Field("sit_out", false, wire.TypeBool),
			schema.Field("sit_out_next_turn", false, wire.TypeBool),
			schema.Field("auto", false, wire.TypeBool),
			schema.Field("auto_blind_ante", false, wire.TypeBool),
			schema.Field("wait_for", false, wire.TypeBoolString),
			schema.Field("buy_in_payed", false, wire.TypeBool),
			schema.Field("seat", wire.NullByte{}, wire.TypeOptU8),
		)},
		{IDPokerPlayerChips, "POKER_PLAYER_CHIPS", schema.Extend(PokerID,
			schema.Field("bet", uint64(0), wire.TypeU64),
			schema.Field("money", uint64(0), wire.TypeU64),
		)},
		{IDPokerTable, "POKER_TABLE", schema.Extend(Packet,
			schema.Field("id", uint32(0), wire.TypeU32),
			schema.Field("seats", uint8(10), wire.TypeU8),
			schema.Field("average_pot", uint64(0), wire.TypeU64),
			schema.Field("hands_per_hour", uint16(0), wire.TypeU16),
			schema.Field("percent_flop", uint8(0), wire.TypeU8),
			schema.Field("players", uint8(0), wire.TypeU8),
			schema.Field("observers", uint8(0), wire.TypeU8),
			schema.Field("waiting", uint8(0), wire.TypeU8),
			schema.Field("player_timeout", uint16(0), wire.TypeU16),
			schema.Field("muck_timeout", uint16(0), wire.TypeU16),
			schema.Field("currency_serial", uint32(0), wire.TypeU32),
			schema.Field("name", "noname", wire.TypeString),
			schema.Field("variant", "holdem", wire.TypeString),
			schema.Field("betting_structure", "", wire.TypeString),
			schema.Field("skin", "default", wire.TypeString),
			schema.Field("reason", "", wire.TypeString),
			schema.Field("tourney_serial", uint32(0), wire.TypeU32),
		)},
		{IDPokerTableList, "POKER_TABLE_LIST", schema.Extend(Packet,
			schema.Field("players", uint32(0), wire.TypeU32),
			schema.Field("tables", uint32(0), wire.TypeU32),
			schema.Field("packets", nil, wire.TypeMessageList),
		)},
		{IDPokerUserInfo, "POKER_USER_INFO", schema.Extend(Serial,
			schema.Field("rating", uint32(1000), wire.TypeU32),
			schema.Field("affiliate", uint32(0), wire.TypeU32),
			schema.Field("money", map[uint32]wire.Amounts{}, wire.TypeMoney),
		)},
		{IDPokerPlayersList, "POKER_PLAYERS_LIST", schema.Extend(Packet,
			schema.Field("game_id", uint32(0), wire.TypeU32),
			schema.Field("players", []wire.Player{}, wire.TypePlayers),
		)},
		{IDPokerTourneyRanks, "POKER_TOURNEY_RANKS", schema.Extend(Packet,
			schema.Field("tourney_serial", uint32(0), wire.TypeU32),
			schema.Field("ranks", []uint16{}, wire.TypeU16List),
		)},
		{IDPokerTablePicker, "POKER_TABLE_PICKER", schema.Extend(Serial,
			schema.Field("min_players", uint8(2), wire.TypeU8),
			schema.Field("variant", "", wire.TypeString),
			schema.Field("betting_structure", "", wire.TypeString),
			schema.Field("currency_serial", uint32(0), wire.TypeU32),
			schema.Field("auto_blind_ante", wire.No, wire.TypeCharBool),
		)},
		{IDPokerAutoBlindAnte, "POKER_AUTO_BLIND_ANTE", schema.Extend(PokerID,
			schema.Field("auto_blind_ante", false, wire.TypeBool),
		)},
	}
}
