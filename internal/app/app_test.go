package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rook-computer/starfield/internal/render"
	"github.com/rook-computer/starfield/internal/starfield"
	"github.com/rook-computer/starfield/internal/state"
)

type fakeRenderer struct {
	render.NoopRenderer
	w, h     int
	startErr error
	redraws  atomic.Int32
}

func (r *fakeRenderer) Start(ctx context.Context) error { return r.startErr }
func (r *fakeRenderer) Size() (int, int)                { return r.w, r.h }
func (r *fakeRenderer) RunLoop(ctx context.Context, store *state.Store) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-store.Changed():
			r.redraws.Add(1)
		}
	}
}

type fakeNetInfo struct {
	calls atomic.Int32
	ip    string
	after int32
}

func (n *fakeNetInfo) IP(ctx context.Context) (string, error) {
	if n.calls.Add(1) <= n.after {
		return "", errors.New("no address yet")
	}
	return n.ip, nil
}

func TestDisplayPublishesFrame(t *testing.T) {
	store := state.NewStore()
	a := New(store, &fakeRenderer{w: 40, h: 20}, nil, nil)

	cfg := starfield.Config{StarCount: 10, StarColors: true}
	id, err := a.Display(context.Background(), cfg, 77)
	if err != nil {
		t.Fatal(err)
	}
	snap := store.Snapshot()
	if snap.Phase != state.READY || snap.Frame.ID != id || snap.Frame.Seed != 77 || snap.Frame.Config != cfg {
		t.Fatalf("snapshot = %+v", snap)
	}
	if b := snap.Frame.Image.Bounds(); b.Dx() != 40 || b.Dy() != 20 {
		t.Errorf("frame size = %v", b)
	}
	want, _ := starfield.Generate(40, 20, cfg, 77)
	if string(want.Pix) != string(snap.Frame.Image.Pix) {
		t.Error("frame differs from a direct render with the same seed")
	}
}

func TestDisplayFreshSeed(t *testing.T) {
	store := state.NewStore()
	a := New(store, &fakeRenderer{w: 8, h: 8}, nil, nil)
	if _, err := a.Display(context.Background(), starfield.Config{}, 0); err != nil {
		t.Fatal(err)
	}
	first := store.Snapshot().Frame
	if _, err := a.Display(context.Background(), starfield.Config{}, 0); err != nil {
		t.Fatal(err)
	}
	second := store.Snapshot().Frame
	if first.ID == second.ID || first.Seed == second.Seed {
		t.Errorf("expected a new frame with a new seed: %d/%d", first.Seed, second.Seed)
	}
}

func TestDisplayWithoutSize(t *testing.T) {
	store := state.NewStore()
	a := New(store, &fakeRenderer{}, nil, nil)
	if _, err := a.Display(context.Background(), starfield.Config{}, 1); err == nil {
		t.Fatal("expected an error")
	}
	if snap := store.Snapshot(); snap.Phase != state.ERROR || snap.Err == "" {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestRerollKeepsOptions(t *testing.T) {
	store := state.NewStore()
	a := New(store, &fakeRenderer{w: 8, h: 8}, nil, nil)
	cfg := starfield.Config{StarCount: 3, GlowBand: true, GlowBandIntensity: 9}
	if _, err := a.Display(context.Background(), cfg, 5); err != nil {
		t.Fatal(err)
	}
	a.Reroll(context.Background())
	f := store.Snapshot().Frame
	if f.Config != cfg || f.Seed == 5 {
		t.Errorf("frame after reroll: config=%+v seed=%d", f.Config, f.Seed)
	}
}

func TestStartRendersAndExits(t *testing.T) {
	store := state.NewStore()
	a := New(store, &fakeRenderer{w: 16, h: 9}, nil, nil)
	a.Config = starfield.Config{StarCount: 4}
	a.PublicURL = "http://kiosk.local/"

	done := make(chan error, 1)
	go func() { done <- a.Start(context.Background()) }()

	deadline := time.Now().Add(5 * time.Second)
	for {
		snap := store.Snapshot()
		if snap.Frame.ID != "" && snap.Network.URL == "http://kiosk.local/" {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("kiosk never showed a frame: %+v", snap)
		}
		time.Sleep(10 * time.Millisecond)
	}

	a.Exit(nil)
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Start = %v, want nil after Exit", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after Exit")
	}
}

func TestStartReturnsExitError(t *testing.T) {
	a := New(state.NewStore(), &fakeRenderer{w: 4, h: 4}, nil, nil)
	boom := errors.New("boom")
	a.Exit(boom)
	if err := a.Start(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Start = %v, want boom", err)
	}
}

func TestStartRendererError(t *testing.T) {
	boom := errors.New("no framebuffer")
	a := New(state.NewStore(), &fakeRenderer{startErr: boom}, nil, nil)
	if err := a.Start(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Start = %v", err)
	}
}

func TestResolveNetworkRetries(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for one retry interval")
	}
	store := state.NewStore()
	a := New(store, &fakeRenderer{}, nil, nil)
	a.ListenAddr = ":8080"
	a.NetInfo = &fakeNetInfo{ip: "10.0.0.9", after: 1}

	ctx, cancel := context.WithTimeout(context.Background(), 2*networkRetry)
	defer cancel()
	a.resolveNetwork(ctx)
	if got := store.Snapshot().Network.URL; got != "http://10.0.0.9:8080/" {
		t.Errorf("url = %q", got)
	}
}
