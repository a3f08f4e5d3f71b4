package plugin

import "github.com/dshills/chatsounds/internal/host"

// onTick replaces the client's scheduled tick. The client's own tick always
// runs to completion before buffered output is flushed.
func (p *Plugin) onTick(task *host.ScheduledTask) {
	if original, ok := p.tick.Original(); ok {
		original(task)
	}
	p.printer.Flush()
}
