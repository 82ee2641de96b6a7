package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"maps"
	"math/big"
	"slices"
	"strings"

	"github.com/danmuck/pokerpackets/internal/protocol"
	"github.com/danmuck/pokerpackets/internal/protocol/schema"
	"github.com/danmuck/pokerpackets/internal/protocol/wire"
	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
)

func printCatalog(out io.Writer, reg *schema.Registry) error {
	tw := tablewriter.NewWriter(out)
	tw.SetHeader([]string{"ID", "Name", "Fields", "Layout"})
	tw.SetBorder(true)
	tw.SetAutoWrapText(false)
	for _, e := range reg.Entries() {
		layout := make([]string, 0, e.Schema.Len())
		for _, f := range e.Schema.Fields() {
			layout = append(layout, f.Name+":"+f.Type.String())
		}
		tw.Append([]string{
			fmt.Sprintf("%d", e.ID),
			e.Name,
			fmt.Sprintf("%d", e.Schema.Len()),
			strings.Join(layout, " "),
		})
	}
	tw.Render()
	fmt.Fprintf(out, "%d message types\n", reg.Len())
	return nil
}

func printSample(out io.Writer, codec *protocol.Codec, name string) error {
	m, err := codec.New(name)
	if err != nil {
		if near := similarNames(codec.Registry(), name); len(near) > 0 && errors.Is(err, schema.ErrUnknownName) {
			return fmt.Errorf("%w (similar: %s)", err, strings.Join(near, ", "))
		}
		return err
	}
	buf, err := codec.Encode(m)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, hex.EncodeToString(buf))
	return nil
}

// similarNames returns the registered names containing name, ignoring case.
func similarNames(reg *schema.Registry, name string) []string {
	needle := strings.ToUpper(strings.TrimSpace(name))
	if needle == "" {
		return nil
	}
	var out []string
	for _, n := range reg.Names() {
		if strings.Contains(n, needle) {
			out = append(out, n)
		}
	}
	return out
}

func printDecode(out io.Writer, codec *protocol.Codec, raw string) error {
	buf, err := hex.DecodeString(strings.Join(strings.Fields(raw), ""))
	if err != nil {
		return fmt.Errorf("decode hex: %w", err)
	}
	msgs, err := codec.DecodeAll(buf)
	for i, m := range msgs {
		renderMessage(out, fmt.Sprintf("[%d]", i), m)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%d messages, %s\n", len(msgs), humanize.Bytes(uint64(len(buf))))
	return nil
}

func renderMessage(out io.Writer, path string, m *protocol.Message) {
	e := m.Entry()
	fmt.Fprintf(out, "%s %s (id %d)\n", path, e.Name, e.ID)
	tw := tablewriter.NewWriter(out)
	tw.SetHeader([]string{"Field", "Type", "Value"})
	tw.SetBorder(true)
	tw.SetAutoWrapText(false)

	var nested []*protocol.Message
	var nestedPaths []string
	s := e.Schema
	for i := range s.Len() {
		f := s.At(i)
		v := m.At(i)
		if list, ok := v.([]*protocol.Message); ok {
			for j, sub := range list {
				nested = append(nested, sub)
				nestedPaths = append(nestedPaths, fmt.Sprintf("%s.%s[%d]", path, f.Name, j))
			}
		}
		tw.Append([]string{f.Name, f.Type.String(), formatValue(f.Type, v)})
	}
	tw.Render()
	for i, sub := range nested {
		renderMessage(out, nestedPaths[i], sub)
	}
}

// commaU64 formats n with thousands separators over the full uint64 range.
func commaU64(n uint64) string {
	return humanize.BigComma(new(big.Int).SetUint64(n))
}

func formatValue(t wire.Type, v any) string {
	switch t {
	case wire.TypeChips:
		pairs, _ := v.([]uint32)
		total, err := wire.ChipTotal(pairs)
		if err != nil {
			return fmt.Sprintf("%v (%v)", pairs, err)
		}
		return fmt.Sprintf("%v (total %s)", pairs, humanize.Comma(int64(total)))
	case wire.TypeMoney:
		money, _ := v.(map[uint32]wire.Amounts)
		parts := make([]string, 0, len(money))
		for _, k := range slices.Sorted(maps.Keys(money)) {
			a := money[k]
			parts = append(parts, fmt.Sprintf("%d: %s/%s/%s", k, commaU64(a[0]), commaU64(a[1]), commaU64(a[2])))
		}
		return strings.Join(parts, ", ")
	case wire.TypePlayers:
		players, _ := v.([]wire.Player)
		parts := make([]string, 0, len(players))
		for _, p := range players {
			parts = append(parts, fmt.Sprintf("%s#%d(%d)", p.Name, p.Serial, p.Flags))
		}
		return strings.Join(parts, ", ")
	case wire.TypeJSON:
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(raw)
	case wire.TypeString, wire.TypeCharBool:
		return fmt.Sprintf("%q", v)
	case wire.TypeMessageList:
		list, _ := v.([]*protocol.Message)
		return fmt.Sprintf("%d messages", len(list))
	default:
		return fmt.Sprint(v)
	}
}
