package asyncx_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aussiebroadwan/tokend/pkg/asyncx"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func TestFuture_FirstCompletionWins(t *testing.T) {
	f, done := asyncx.NewFuture[int]()
	done(nil, 1)
	done(nil, 2)
	done(errBoom, 3)

	v, err := f.Await(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, v)
}

func TestFuture_AwaitHonoursContext(t *testing.T) {
	f, _ := asyncx.NewFuture[int]()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := f.Await(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	select {
	case <-f.Resolved():
		t.Fatal("future must stay unresolved")
	default:
	}
}

func TestFuture_Then(t *testing.T) {
	f, done := asyncx.NewFuture[string]()

	got := make(chan string, 1)
	f.Then(func(err error, v string) {
		if err == nil {
			got <- v
		}
	})
	done(nil, "later")

	select {
	case v := <-got:
		require.Equal(t, "later", v)
	case <-time.After(time.Second):
		t.Fatal("Then callback not called")
	}

	// Already resolved futures call back synchronously.
	var immediate string
	f.Then(func(_ error, v string) { immediate = v })
	require.Equal(t, "later", immediate)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		call    func(done asyncx.Done[bool]) *asyncx.Future[bool]
		want    bool
		wantErr error
	}{
		{
			name: "callback",
			call: func(done asyncx.Done[bool]) *asyncx.Future[bool] {
				done(nil, true)
				return nil
			},
			want: true,
		},
		{
			name: "callback from another goroutine",
			call: func(done asyncx.Done[bool]) *asyncx.Future[bool] {
				go func() {
					time.Sleep(5 * time.Millisecond)
					done(nil, true)
				}()
				return nil
			},
			want: true,
		},
		{
			name: "callback error",
			call: func(done asyncx.Done[bool]) *asyncx.Future[bool] {
				done(errBoom, false)
				return nil
			},
			wantErr: errBoom,
		},
		{
			name: "returned future",
			call: func(asyncx.Done[bool]) *asyncx.Future[bool] {
				return asyncx.Go(func() (bool, error) { return true, nil })
			},
			want: true,
		},
		{
			name: "returned failed future",
			call: func(asyncx.Done[bool]) *asyncx.Future[bool] {
				return asyncx.Fail[bool](errBoom)
			},
			wantErr: errBoom,
		},
		{
			name: "both channels, callback first",
			call: func(done asyncx.Done[bool]) *asyncx.Future[bool] {
				done(nil, false)
				return asyncx.Value(true)
			},
			want: false,
		},
		{
			name: "panic",
			call: func(asyncx.Done[bool]) *asyncx.Future[bool] {
				panic("collaborator bug")
			},
			wantErr: asyncx.ErrPanic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()

			got, err := asyncx.Resolve(ctx, tt.call).Await(ctx)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFuture_ThenContextCancelled(t *testing.T) {
	f, _ := asyncx.NewFuture[int]()
	ctx, cancel := context.WithCancel(context.Background())

	got := make(chan error, 1)
	f.ThenContext(ctx, func(err error, _ int) { got <- err })
	cancel()

	select {
	case err := <-got:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("ThenContext did not return after cancel")
	}
}

func TestResolve_NeverResolvingFuture(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	stuck, _ := asyncx.NewFuture[bool]()
	f := asyncx.Resolve(ctx, func(asyncx.Done[bool]) *asyncx.Future[bool] { return stuck })

	_, err := f.Await(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	// The bridge resolves the outer future once ctx ends instead of waiting
	// on the stuck one forever.
	select {
	case <-f.Resolved():
	case <-time.After(time.Second):
		t.Fatal("bridge still waiting on unresolved future")
	}
	_, err = f.Await(context.Background())
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGo_RecoversPanic(t *testing.T) {
	_, err := asyncx.Go(func() (int, error) { panic("nope") }).Await(context.Background())
	require.ErrorIs(t, err, asyncx.ErrPanic)
	require.Contains(t, err.Error(), "nope")
}
