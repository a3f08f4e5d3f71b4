package sim

import (
	"go.uber.org/zap"

	"github.com/dshills/chatsounds/internal/logging"
	"github.com/dshills/chatsounds/internal/sound"
)

// Printer receives lines for the chat log.
type Printer interface {
	Print(line string)
}

// ChatPlayer stands in for an audio device by announcing playback in chat.
// Stopping is silent in chat and only logged.
type ChatPlayer struct {
	out    Printer
	logger *zap.Logger
}

// NewChatPlayer creates a player that writes to out. logger may be nil.
func NewChatPlayer(out Printer, logger *zap.Logger) *ChatPlayer {
	return &ChatPlayer{out: out, logger: logging.OrNop(logger).Named("player")}
}

// Play implements sound.Player.
func (p *ChatPlayer) Play(h sound.Handle) {
	p.logger.Debug("play", zap.String("name", h.Name), zap.String("source", h.Source))
	p.out.Print("&d♪ &f" + h.Name + " &7(" + h.Source + ")")
}

// StopAll implements sound.Player.
func (p *ChatPlayer) StopAll() {
	p.logger.Debug("stop all")
}
