// @focus: #sys { term }
// Package terminal hosts the animation on a tcell screen.
//
// Surface adapts a tcell.Screen plus a render.PixelBuffer to engine.Surface:
// one terminal cell spans CellWidth x CellHeight logical pixels and shows two
// stacked device pixels through a half-block glyph.
//
// Poller translates tcell events to engine events. Mouse motion becomes pointer
// moves, focus changes become enter and leave, and keys resolve through an
// input.KeyTable.
package terminal
