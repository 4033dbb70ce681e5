package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/learnhub/internal/catalog"
	"github.com/alexanderramin/learnhub/internal/domain"
	"github.com/alexanderramin/learnhub/internal/progress"
	"github.com/alexanderramin/learnhub/internal/testutil"
)

// setupCatalog builds a two-course catalog:
//
//	c1: m1(l1, l2) m2(l3, l4)    category Go
//	c2: m1(a, b, c, d, e, f)     category Rust
func setupCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]domain.Course{
		testutil.NewTestCourse("c1",
			testutil.WithCategory("Go"),
			testutil.WithModule("m1", "l1", "l2"),
			testutil.WithModule("m2", "l3", "l4")),
		testutil.NewTestCourse("c2",
			testutil.WithCategory("Rust"),
			testutil.WithLevel(domain.LevelAdvanced),
			testutil.WithModule("m1", "a", "b", "c", "d", "e", "f")),
	})
	require.NoError(t, err)
	return c
}

func setupProgress(t *testing.T, observers ...UseCaseObserver) (ProgressService, *progress.Store) {
	t.Helper()
	store := progress.NewStore()
	return NewProgressService(setupCatalog(t), store, observers...), store
}
