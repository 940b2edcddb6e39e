package event

import "testing"

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchByType(t *testing.T) {
	d := NewDispatcher()
	stages := &recorder{}
	hexes := &recorder{}
	d.Subscribe(StageChangeRequested, stages)
	d.Subscribe(HexSelected, hexes)

	d.Dispatch(Event{Type: StageChangeRequested, Data: StageTitle})
	d.Dispatch(Event{Type: PauseToggled, Data: true})

	if len(stages.got) != 1 || stages.got[0].Data != StageTitle {
		t.Fatalf("stage listener got %+v", stages.got)
	}
	if len(hexes.got) != 0 {
		t.Fatalf("hex listener got %+v", hexes.got)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(ErrorReported, a)
	d.Subscribe(ErrorReported, b)
	d.Unsubscribe(ErrorReported, a)

	d.Dispatch(Event{Type: ErrorReported, Data: "boom"})
	if len(a.got) != 0 || len(b.got) != 1 {
		t.Fatalf("a got %d, b got %d", len(a.got), len(b.got))
	}
}

func TestSubscribeFuncDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	var unsubscribe func()
	unsubscribe = d.SubscribeFunc(HexSelected, func(Event) {
		calls++
		unsubscribe()
	})
	d.Dispatch(Event{Type: HexSelected})
	d.Dispatch(Event{Type: HexSelected})
	if calls != 1 {
		t.Fatalf("listener called %d times, want 1", calls)
	}
}

func TestStageString(t *testing.T) {
	if StageGame.String() != "game" || Stage(9).String() != "unknown" {
		t.Fatal("unexpected stage names")
	}
}
