// Package stream assembles and emits trees as structural events over a
// channel. The intended discipline is a rendezvous hand-off: the
// producer sends events over an unbuffered (or capacity-one) channel,
// so each tree level is fully materialized by Assemble before the
// producer advances. NewChannel returns a channel with that capacity.
//
// Events correspond to a top-first walk of the physical structure:
//
//	EventValue{v}      the current node's value
//	EventEnter{key}    descend into the child under key
//	EventLeave         ascend to the parent
//
// Default functions do not stream; the flat form covers physical
// structure only.
package stream

import (
	"errors"
	"fmt"

	"github.com/signadot/trie"
	"github.com/signadot/trie/debug"
)

// EventType represents the type of a structural event.
type EventType int

const (
	EventEnter EventType = iota
	EventValue
	EventLeave
)

func (t EventType) String() string {
	switch t {
	case EventEnter:
		return "Enter"
	case EventValue:
		return "Value"
	case EventLeave:
		return "Leave"
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// Event is one structural event. Key is set for EventEnter, Value for
// EventValue.
type Event[K comparable, V any] struct {
	Type  EventType
	Key   K
	Value V
}

var (
	// ErrUnbalanced is returned by Assemble when a Leave event has no
	// matching Enter.
	ErrUnbalanced = errors.New("unbalanced leave event")
	// ErrTruncated is returned by Assemble when the channel closes
	// with unclosed levels.
	ErrTruncated = errors.New("truncated event stream")
)

// NewChannel returns an event channel with the rendezvous capacity.
func NewChannel[K comparable, V any]() chan Event[K, V] {
	return make(chan Event[K, V], 1)
}

// Emit walks n top-first and sends its structural events on ch. The
// channel is not closed; Close the channel after Emit returns (or use
// EmitAll) to signal the end of the stream.
func Emit[K comparable, V any](n *trie.Node[K, V], ch chan<- Event[K, V]) {
	if v, ok := n.Value(); ok {
		ch <- Event[K, V]{Type: EventValue, Value: v}
	}
	for _, c := range n.Children() {
		ch <- Event[K, V]{Type: EventEnter, Key: c.Key}
		Emit(c.Node, ch)
		ch <- Event[K, V]{Type: EventLeave}
	}
}

// EmitAll emits n and closes the channel.
func EmitAll[K comparable, V any](n *trie.Node[K, V], ch chan Event[K, V]) {
	Emit(n, ch)
	close(ch)
}

type frame[K comparable, V any] struct {
	key      K
	value    *V
	children []trie.Child[K, V]
}

// Assemble builds a tree from the events on ch, materializing each
// level through b as its Leave event arrives. A repeated Value event
// at one level keeps the last value, matching the flat-form policy.
// Assemble returns when the channel closes; unclosed levels at that
// point are an ErrTruncated.
func Assemble[K comparable, V any](b *trie.Builder[K, V], ch <-chan Event[K, V]) (*trie.Node[K, V], error) {
	stack := []*frame[K, V]{{}}
	for ev := range ch {
		if debug.Stream() {
			debug.Logf("assemble %s depth=%d\n", ev.Type, len(stack)-1)
		}
		top := stack[len(stack)-1]
		switch ev.Type {
		case EventValue:
			v := ev.Value
			top.value = &v
		case EventEnter:
			stack = append(stack, &frame[K, V]{key: ev.Key})
		case EventLeave:
			if len(stack) == 1 {
				return nil, ErrUnbalanced
			}
			stack = stack[:len(stack)-1]
			parent := stack[len(stack)-1]
			parent.children = append(parent.children, trie.Child[K, V]{
				Key:  top.key,
				Node: b.Build(top.value, top.children, nil),
			})
		default:
			return nil, fmt.Errorf("unknown event type %d", ev.Type)
		}
	}
	if len(stack) != 1 {
		return nil, fmt.Errorf("%w: %d unclosed levels", ErrTruncated, len(stack)-1)
	}
	root := stack[0]
	return b.Build(root.value, root.children, nil), nil
}
