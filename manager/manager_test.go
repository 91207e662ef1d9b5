package manager_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	serr "github.com/next-trace/scg-social-adapter/contract/errors"
	"github.com/next-trace/scg-social-adapter/contract/social"
	"github.com/next-trace/scg-social-adapter/manager"
	"github.com/next-trace/scg-social-adapter/networks/instagram"
	"github.com/next-trace/scg-social-adapter/networks/twitter"
	"github.com/next-trace/scg-social-adapter/sinks/inmemory"
)

// fakes

type fakeAdapter struct {
	mu        sync.Mutex
	name      string
	auths     int
	published []social.Content
	err       error
}

func (f *fakeAdapter) Network() string { return f.name }

func (f *fakeAdapter) Authenticate(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.auths++

	return f.err
}

func (f *fakeAdapter) Publish(ctx context.Context, c social.Content) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.published = append(f.published, c)

	return f.err
}

func TestNew_RequiresAdapter(t *testing.T) {
	if _, err := manager.New(nil, nil); !errors.Is(err, serr.ErrAdapterRequired) {
		t.Fatalf("want ErrAdapterRequired, got %v", err)
	}
}

func TestManager_Delegates(t *testing.T) {
	fa := &fakeAdapter{name: "fake"}

	m, err := manager.New(fa, nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	c := social.NewContent("t", "d")
	if err := m.Authenticate(t.Context()); err != nil {
		t.Fatalf("authenticate: %v", err)
	}

	if err := m.Publish(t.Context(), c); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if fa.auths != 1 || len(fa.published) != 1 || fa.published[0] != c {
		t.Fatalf("auths=%d published=%v", fa.auths, fa.published)
	}

	if m.Adapter() != fa {
		t.Fatalf("unexpected active adapter")
	}
}

func TestManager_PropagatesAdapterErrors(t *testing.T) {
	boom := errors.New("boom")
	m, _ := manager.New(&fakeAdapter{name: "fake", err: boom}, nil)

	if err := m.Authenticate(t.Context()); !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}

	if err := m.Publish(t.Context(), social.NewContent("a", "b")); !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}
}

func TestManager_ChangeAdapter_OrderingAndNil(t *testing.T) {
	oldA := &fakeAdapter{name: "old"}
	newA := &fakeAdapter{name: "new"}
	m, _ := manager.New(oldA, nil)

	c1 := social.NewContent("before", "swap")
	c2 := social.NewContent("after", "swap")

	_ = m.Publish(t.Context(), c1)

	if err := m.ChangeAdapter(newA); err != nil {
		t.Fatalf("change: %v", err)
	}

	_ = m.Publish(t.Context(), c2)

	if len(oldA.published) != 1 || oldA.published[0] != c1 {
		t.Fatalf("old adapter got %v", oldA.published)
	}

	if len(newA.published) != 1 || newA.published[0] != c2 {
		t.Fatalf("new adapter got %v", newA.published)
	}

	if err := m.ChangeAdapter(nil); !errors.Is(err, serr.ErrAdapterRequired) {
		t.Fatalf("want ErrAdapterRequired, got %v", err)
	}

	if m.Adapter() != newA {
		t.Fatalf("nil swap must keep the active adapter")
	}
}

func TestManager_TwitterThenInstagramScenario(t *testing.T) {
	sink := inmemory.New()
	c := social.NewContent("Teste supremo!", "Realizando um teste do padrão Adapter.")

	tw, err := twitter.NewFactory(sink).CreateAdapter()
	if err != nil {
		t.Fatalf("twitter factory: %v", err)
	}

	m, _ := manager.New(tw, nil)
	_ = m.Authenticate(t.Context())
	_ = m.Publish(t.Context(), c)

	ig, err := instagram.NewFactory(sink).CreateAdapter()
	if err != nil {
		t.Fatalf("instagram factory: %v", err)
	}

	_ = m.ChangeAdapter(ig)
	_ = m.Authenticate(t.Context())
	_ = m.Publish(t.Context(), c)

	texts := sink.Texts()
	if len(texts) != 4 {
		t.Fatalf("want 4 notices, got %v", texts)
	}

	if texts[0] != "Autenticando..." || texts[2] != "Autenticando..." {
		t.Fatalf("auth notices: %v", texts)
	}

	for i, token := range map[int]string{1: "Twitter", 3: "Instagram"} {
		if !strings.Contains(texts[i], token) || !strings.Contains(texts[i], "Teste supremo!") ||
			!strings.Contains(texts[i], "Realizando um teste do padrão Adapter.") {
			t.Fatalf("notice %d=%q missing %s or content", i, texts[i], token)
		}
	}

	if strings.Contains(texts[1], "Instagram") || strings.Contains(texts[3], "Twitter") {
		t.Fatalf("network tokens leaked across variants: %v", texts)
	}
}

func TestManager_PublishMiddlewareOrder(t *testing.T) {
	var order []string

	mw := func(tag string) manager.PublishMiddleware {
		return func(next manager.PublishFunc) manager.PublishFunc {
			return func(ctx context.Context, c social.Content) error {
				order = append(order, tag)
				return next(ctx, c)
			}
		}
	}

	fa := &fakeAdapter{name: "fake"}
	m, _ := manager.New(fa, nil, manager.WithPublishMiddleware(mw("g1"), mw("g2")))

	if err := m.PublishWithMiddleware(t.Context(), social.NewContent("a", "b"), mw("call")); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if strings.Join(order, ",") != "g1,g2,call" {
		t.Fatalf("order=%v", order)
	}

	if len(fa.published) != 1 {
		t.Fatalf("adapter not reached")
	}
}

func TestManager_ConcurrentSwapAndUse(t *testing.T) {
	a := &fakeAdapter{name: "a"}
	b := &fakeAdapter{name: "b"}
	m, _ := manager.New(a, nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)

		go func(i int) {
			defer wg.Done()

			if i%2 == 0 {
				_ = m.ChangeAdapter(b)
			} else {
				_ = m.ChangeAdapter(a)
			}
		}(i)

		go func() {
			defer wg.Done()

			_ = m.Publish(t.Context(), social.NewContent("x", "y"))
		}()
	}

	wg.Wait()

	if got := len(a.published) + len(b.published); got != 50 {
		t.Fatalf("published=%d", got)
	}
}
