package engine

import "testing"

func TestEventWithArgInvokeOrder(t *testing.T) {
	var ev EventWithArg[int]
	var got []int

	ev.AddListener(func(v int) { got = append(got, v) })
	ev.AddListener(func(v int) { got = append(got, v*10) })

	ev.Invoke(3)

	if len(got) != 2 || got[0] != 3 || got[1] != 30 {
		t.Errorf("Unexpected invocation result %v", got)
	}
}

func TestEventWithArgRemoveListener(t *testing.T) {
	var ev EventWithArg[string]
	calls := 0

	id := ev.AddListener(func(string) { calls++ })
	ev.AddListener(func(string) { calls += 10 })

	ev.RemoveListener(id)
	ev.Invoke("click")

	if calls != 10 {
		t.Errorf("Expected only the second listener to run, calls=%d", calls)
	}
	if ev.GetListenerCount() != 1 {
		t.Errorf("Expected 1 listener, got %d", ev.GetListenerCount())
	}
}

func TestEventWithArgNilListenerIgnored(t *testing.T) {
	var ev EventWithArg[int]
	if id := ev.AddListener(nil); id != 0 {
		t.Errorf("Nil listener should return id 0, got %d", id)
	}
	if ev.GetListenerCount() != 0 {
		t.Error("Nil listener should not be registered")
	}
}

func TestEventWithArgUnsubscribeDuringInvoke(t *testing.T) {
	var ev EventWithArg[int]
	calls := 0
	var id ListenerID
	id = ev.AddListener(func(int) {
		calls++
		ev.RemoveListener(id)
	})

	ev.Invoke(1)
	ev.Invoke(2)

	if calls != 1 {
		t.Errorf("Listener should run once, ran %d times", calls)
	}
}

func TestEvent(t *testing.T) {
	var ev Event
	calls := 0
	ev.AddListener(func() { calls++ })
	ev.Invoke()
	ev.Invoke()

	if calls != 2 {
		t.Errorf("Expected 2 calls, got %d", calls)
	}

	ev.RemoveAllListeners()
	ev.Invoke()
	if calls != 2 {
		t.Error("RemoveAllListeners should drop every listener")
	}
}
