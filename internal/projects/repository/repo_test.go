package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ai-website-generator/backend/internal/projects/domain"
	"github.com/ai-website-generator/backend/internal/testhelpers"
)

func newTestRepo(t *testing.T) *ProjectRepository {
	t.Helper()
	client := testhelpers.StartMongo(t)
	coll := client.Database("repo_test_" + primitive.NewObjectID().Hex()).Collection(CollectionName)
	return NewProjectRepository(coll)
}

func newProject(prompt string, at time.Time) *domain.Project {
	return &domain.Project{
		Prompt: prompt,
		Code: domain.CodeStructure{
			HTML: "<h1>Hi</h1>",
			CSS:  "h1{color:red}",
			JS:   "",
		},
		CreatedAt: at.UTC().Truncate(time.Millisecond),
	}
}

func TestProjectRepository_Integration(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.EnsureIndexes(ctx))
	require.NoError(t, repo.EnsureIndexes(ctx), "index creation is repeatable")

	t.Run("empty collection lists nothing", func(t *testing.T) {
		items, err := repo.List(ctx, 10)
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("insert then find returns an equal project", func(t *testing.T) {
		p := newProject("Build me a landing page", time.Now())
		require.NoError(t, repo.Insert(ctx, p))
		require.NoError(t, domain.ValidateID(p.ID))

		got, err := repo.FindByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, *p, *got)
		assert.Equal(t, time.UTC, got.CreatedAt.Location())
	})

	t.Run("list is newest first and honours limit", func(t *testing.T) {
		base := time.Now().Add(time.Hour)
		var ids []string
		for i := 0; i < 5; i++ {
			p := newProject("portfolio site number", base.Add(time.Duration(i)*time.Second))
			require.NoError(t, repo.Insert(ctx, p))
			ids = append(ids, p.ID)
		}

		items, err := repo.List(ctx, 3)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, []string{ids[4], ids[3], ids[2]}, []string{items[0].ID, items[1].ID, items[2].ID})
		for i := 1; i < len(items); i++ {
			assert.False(t, items[i].CreatedAt.After(items[i-1].CreatedAt))
		}
	})

	t.Run("equal timestamps keep insertion order", func(t *testing.T) {
		at := time.Now().Add(2 * time.Hour)
		first := newProject("same instant first", at)
		second := newProject("same instant second", at)
		require.NoError(t, repo.Insert(ctx, first))
		require.NoError(t, repo.Insert(ctx, second))

		items, err := repo.List(ctx, 2)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, second.ID, items[0].ID)
		assert.Equal(t, first.ID, items[1].ID)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, primitive.NewObjectID().Hex())
		assert.True(t, errors.Is(err, domain.ErrNotFound))

		n, err := repo.Delete(ctx, primitive.NewObjectID().Hex())
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("malformed id is rejected", func(t *testing.T) {
		_, err := repo.FindByID(ctx, "not-an-id")
		assert.True(t, errors.Is(err, domain.ErrInvalidID))

		_, err = repo.Delete(ctx, "not-an-id")
		assert.True(t, errors.Is(err, domain.ErrInvalidID))
	})

	t.Run("delete removes the document", func(t *testing.T) {
		p := newProject("a project to delete", time.Now())
		require.NoError(t, repo.Insert(ctx, p))

		n, err := repo.Delete(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		_, err = repo.FindByID(ctx, p.ID)
		assert.True(t, errors.Is(err, domain.ErrNotFound))

		n, err = repo.Delete(ctx, p.ID)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}
