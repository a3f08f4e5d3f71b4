// Package sim runs a chat client in the terminal so chatsounds can be used
// without the game.
//
// The simulator owns a host.Local and drives it from a single loop: terminal
// key events are raised as host key events, the client's scheduled task runs
// at a fixed rate through the tick slot, and scripted server messages are
// replayed through the server's line splitter. Chat is drawn with the game's
// &-color codes.
package sim
