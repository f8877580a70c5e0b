package git_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/mason-build/mason/pkg/domain/model"
	"github.com/mason-build/mason/pkg/infra/git"
)

type recordedCall struct {
	Dir  string
	Args []string
}

func TestPublisher_Publish(t *testing.T) {
	ctx := context.Background()

	t.Run("runs stage, commit, push in order", func(t *testing.T) {
		var calls []recordedCall
		pub := git.New(git.WithRunner(func(ctx context.Context, dir string, args ...string) error {
			calls = append(calls, recordedCall{Dir: dir, Args: args})
			return nil
		}))

		err := pub.Publish(ctx, &model.PublishRequest{
			Dir:     "/work/repo",
			Message: "Force Update: rewrite workflow",
			Remote:  "origin",
			Branch:  "main",
			Force:   true,
		})
		gt.NoError(t, err)

		gt.Number(t, len(calls)).Equal(3)
		gt.Array(t, calls[0].Args).Equal([]string{"add", "-A"})
		gt.Array(t, calls[1].Args).Equal([]string{"commit", "-m", "Force Update: rewrite workflow"})
		gt.Array(t, calls[2].Args).Equal([]string{"push", "--force", "origin", "main"})
		for _, call := range calls {
			gt.Value(t, call.Dir).Equal("/work/repo")
		}
	})

	t.Run("push without force", func(t *testing.T) {
		var calls []recordedCall
		pub := git.New(git.WithRunner(func(ctx context.Context, dir string, args ...string) error {
			calls = append(calls, recordedCall{Dir: dir, Args: args})
			return nil
		}))

		err := pub.Publish(ctx, &model.PublishRequest{
			Dir:     "/work/repo",
			Message: "update",
			Remote:  "origin",
			Branch:  "main",
		})
		gt.NoError(t, err)
		gt.Array(t, calls[2].Args).Equal([]string{"push", "origin", "main"})
	})

	t.Run("failed step does not stop later steps", func(t *testing.T) {
		var calls []recordedCall
		pub := git.New(git.WithRunner(func(ctx context.Context, dir string, args ...string) error {
			calls = append(calls, recordedCall{Dir: dir, Args: args})
			if args[0] == "commit" {
				return errors.New("nothing to commit")
			}
			return nil
		}))

		err := pub.Publish(ctx, &model.PublishRequest{
			Dir:     "/work/repo",
			Message: "update",
			Remote:  "origin",
			Branch:  "main",
		})
		gt.Error(t, err)
		gt.True(t, strings.Contains(err.Error(), "publish completed with failures"))

		// push still ran after the failing commit
		gt.Number(t, len(calls)).Equal(3)
		gt.Value(t, calls[2].Args[0]).Equal("push")
	})

	t.Run("rejects empty directory", func(t *testing.T) {
		pub := git.New(git.WithRunner(func(ctx context.Context, dir string, args ...string) error {
			t.Fatal("runner must not be called")
			return nil
		}))

		err := pub.Publish(ctx, &model.PublishRequest{Message: "m", Remote: "origin", Branch: "main"})
		gt.Error(t, err)
	})

	t.Run("rejects empty message", func(t *testing.T) {
		pub := git.New(git.WithRunner(func(ctx context.Context, dir string, args ...string) error {
			t.Fatal("runner must not be called")
			return nil
		}))

		err := pub.Publish(ctx, &model.PublishRequest{Dir: "/work/repo", Remote: "origin", Branch: "main"})
		gt.Error(t, err)
	})
}
