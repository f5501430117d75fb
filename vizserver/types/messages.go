package types

import (
	commontypes "github.com/bytearena/gridarena/common/types"
	"github.com/bytearena/gridarena/game/specs"
)

// go-notify events between the renderer and the websocket handlers.
const (
	EventFrame = "viz:frame" // commontypes.VizMessage
	EventEnd   = "viz:end"   // game id
)

type VizInitMessageData struct {
	GameID string           `json:"gameid"`
	Width  int              `json:"width"`
	Height int              `json:"height"`
	Rows   []string         `json:"rows"`
	Specs  specs.ArenaSpecs `json:"specs"`
}

type VizInitMessage struct {
	Type string             `json:"type"`
	Data VizInitMessageData `json:"data"`
}

type VizFrameMessage struct {
	Type string                 `json:"type"`
	Data commontypes.VizMessage `json:"data"`
}

type VizEndMessage struct {
	Type   string `json:"type"`
	GameID string `json:"gameid"`
}

func MakeFrameMessage(frame commontypes.VizMessage) VizFrameMessage {
	return VizFrameMessage{Type: "frame", Data: frame}
}

func MakeEndMessage(gameID string) VizEndMessage {
	return VizEndMessage{Type: "end", GameID: gameID}
}
