// Package observer provides synchronous, in-thread publish/subscribe
// primitives generic over a payload type.
//
// Every Notify call runs entirely on the caller's stack: subscribers are
// invoked in-line, in subscription order for Multicast, and must not
// suspend indefinitely. A subscriber is free to Subscribe or unsubscribe
// (by calling the func() returned from Subscribe) from inside its own
// notification callback; Multicast snapshots its subscriber list before
// iterating, so such reentrant calls never corrupt the delivery already
// in flight - they simply take effect starting with the next Notify.
//
// Two shapes are provided:
//
//	Unicast[E]   - at most one subscriber. A second Subscribe fails with
//	               ErrAlreadySubscribed rather than silently replacing the
//	               existing one.
//	Multicast[E] - an ordered list of subscribers, notified in the order
//	               they subscribed.
//
// Signal is a zero-payload specialization of Multicast for events that
// carry no data.
package observer
