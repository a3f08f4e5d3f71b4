package plugin

import (
	"github.com/dshills/chatsounds/internal/chat"
	"github.com/dshills/chatsounds/internal/input/key"
)

func (p *Plugin) onChat(text string, rawType int) {
	msgType, err := chat.ParseMsgType(rawType)
	if err != nil {
		p.abort(err)
		return
	}
	if msgType != chat.MsgNormal {
		return
	}

	msg := p.reassembler.Reassemble(text)
	trigger, ok := chat.ExtractTrigger(msg)
	if !ok {
		return
	}

	if d := p.dispatcher.Load(); d != nil {
		d.Submit(trigger)
	}
}

func (p *Plugin) onKeyDown(rawKey int, repeat bool) {
	k, err := key.FromRaw(rawKey)
	if err != nil {
		p.abort(err)
		return
	}
	p.relay.KeyDown(k, repeat)
}

func (p *Plugin) onKeyPress(rawChar int) {
	ch, err := key.RuneFromRaw(rawChar)
	if err != nil {
		p.abort(err)
		return
	}
	p.relay.KeyPress(ch)
}
