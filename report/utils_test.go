package report

import (
	"context"
	"testing"
)

type testFileStore struct {
	LoadFunc func(ctx context.Context, name string) ([]byte, error)
	SaveFunc func(ctx context.Context, name string, content []byte) error
}

func newTestFileStore(t *testing.T) *testFileStore {
	return &testFileStore{
		LoadFunc: func(ctx context.Context, name string) ([]byte, error) {
			t.Error("Load should not be called")
			return nil, nil
		},
		SaveFunc: func(ctx context.Context, name string, content []byte) error {
			t.Error("Save should not be called")
			return nil
		},
	}
}

func (s *testFileStore) Load(ctx context.Context, name string) ([]byte, error) {
	return s.LoadFunc(ctx, name)
}

func (s *testFileStore) Save(ctx context.Context, name string, content []byte) error {
	return s.SaveFunc(ctx, name, content)
}
