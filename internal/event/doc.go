// Package event provides a small synchronous publish/subscribe bus for
// composition lifecycle notifications.
//
// The engine itself stays pure; the app publishes an event when a
// composition commits (word boundary) or resets (navigation, layout
// reload), and interested components such as the macro expander
// subscribe. Handlers run synchronously on the publisher's goroutine,
// in subscription order.
package event
