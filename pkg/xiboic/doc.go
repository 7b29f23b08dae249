// Package xiboic lets widget code talk to a digital signage player.
//
// A Client turns widget actions (info, trigger, expire, extend and set the
// widget duration) into calls on the player's local HTTP surface, or into
// in-process calls when the widget is rendered by an authoring tool. It also
// buffers widget work until the player reports the widget as visible, and
// toggles the input behaviours signage widgets usually disable.
//
//	c := xiboic.New(
//		xiboic.WithConnection(xiboic.ConnectionConfig{Protocol: "http", HostName: "localhost", Port: "9696"}),
//		xiboic.WithLocation(widgetURL),
//		xiboic.WithTargetID(xiboic.TargetIDFromInt(42)),
//	)
//	c.ExpireNow(ctx, xiboic.OnError(func(err error) { ... }))
package xiboic
