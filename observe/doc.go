// Package observe provides synchronous change notification for value
// wrappers.
//
// An Emitter is a typed listener registry that value types embed by
// composition. Listeners receive a Change carrying the old and new value.
// Delivery is synchronous: Notify invokes every registered listener on the
// caller's goroutine, in subscription order, before returning. Listeners are
// invoked outside the registry lock, so a listener may subscribe or cancel
// during delivery.
//
// Subscriptions are counted, not keyed: subscribing the same function twice
// yields two deliveries per change and requires two cancels to fully detach.
//
//	var e observe.Emitter[int]
//	sub := e.Subscribe(func(c observe.Change[int]) {
//	    fmt.Printf("%d -> %d\n", c.Old, c.New)
//	})
//	e.Notify(1, 2)
//	sub.Cancel()
//
// Emitter is safe for concurrent use. Individual listeners must manage their
// own thread safety.
package observe
