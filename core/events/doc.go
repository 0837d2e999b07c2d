// Package events defines the event types exchanged on the internal bus.
package events
