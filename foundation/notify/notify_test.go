package notify

import (
	"testing"
)

func TestBroadcast(t *testing.T) {
	n := New[string]()

	a := n.Register(2)
	b := n.Register(2)

	n.Broadcast("load")
	n.Broadcast("save")

	for _, chn := range []<-chan string{a, b} {
		if got := <-chn; got != "load" {
			t.Errorf("first value: got %q", got)
		}
		if got := <-chn; got != "save" {
			t.Errorf("second value: got %q", got)
		}
	}
}

func TestSlowReceiverDoesNotBlock(t *testing.T) {
	n := New[int]()
	chn := n.Register(1)

	n.Broadcast(1)
	n.Broadcast(2) // dropped, buffer full

	if got := <-chn; got != 1 {
		t.Errorf("got %d, expected 1", got)
	}

	select {
	case v := <-chn:
		t.Errorf("unexpected value %d", v)
	default:
	}
}

func TestShutdownClosesChannels(t *testing.T) {
	n := New[int]()
	chn := n.Register(0)

	n.Shutdown()

	if _, open := <-chn; open {
		t.Error("channel should be closed")
	}
}
