package catalog

import (
	"github.com/danmuck/pokerpackets/internal/protocol/schema"
	"github.com/danmuck/pokerpackets/internal/protocol/wire"
)

// Type ids of the core session messages.
const (
	IDNone        uint8 = 0
	IDString      uint8 = 1
	IDInt         uint8 = 2
	IDError       uint8 = 3
	IDAck         uint8 = 4
	IDPing        uint8 = 5
	IDSerial      uint8 = 6
	IDQuit        uint8 = 7
	IDAuthOK      uint8 = 8
	IDAuthRefused uint8 = 9
	IDLogin       uint8 = 10
	IDAuthRequest uint8 = 11
	IDList        uint8 = 12
	IDLogout      uint8 = 13
)

// Shared parent schemas.
var (
	// Packet carries no fields; every message extends it.
	Packet = schema.Base
	// Serial identifies a player.
	Serial = schema.Extend(Packet, schema.Field("serial", uint32(0), wire.TypeU32))
	// ErrorReport is the layout of ERROR and AUTH_REFUSED.
	ErrorReport = schema.Extend(Packet,
		schema.Field("message", "", wire.TypeString),
		schema.Field("code", uint8(0), wire.TypeU8),
		schema.Field("other_type", uint8(0), wire.TypeU8),
	)
	// Credentials is the layout of LOGIN and AUTH_REQUEST.
	Credentials = schema.Extend(Packet,
		schema.Field("name", "unknown", wire.TypeString),
		schema.Field("password", "unknown", wire.TypeString),
	)
)

func coreDefinitions() []definition {
	return []definition{
		{IDNone, "NONE", Packet},
		{IDString, "STRING", schema.Extend(Packet, schema.Field("string", "", wire.TypeString))},
		{IDInt, "INT", schema.Extend(Packet, schema.Field("numeric", uint32(0), wire.TypeU32))},
		{IDError, "ERROR", ErrorReport},
		{IDAck, "ACK", Packet},
		{IDPing, "PING", Packet},
		{IDSerial, "SERIAL", Serial},
		{IDQuit, "QUIT", Packet},
		{IDAuthOK, "AUTH_OK", Packet},
		{IDAuthRefused, "AUTH_REFUSED", ErrorReport},
		{IDLogin, "LOGIN", Credentials},
		{IDAuthRequest, "AUTH_REQUEST", Credentials},
		{IDList, "LIST", schema.Extend(Packet, schema.Field("packets", nil, wire.TypeMessageList))},
		{IDLogout, "LOGOUT", Packet},
	}
}
