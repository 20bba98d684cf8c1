package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	name    string
	deps    []string
	failOn  string
	journal *[]string
}

func (f *fakeService) Name() string           { return f.name }
func (f *fakeService) Dependencies() []string { return f.deps }

func (f *fakeService) Init(any) error {
	*f.journal = append(*f.journal, "init:"+f.name)
	if f.failOn == "init" {
		return errors.New("boom")
	}
	return nil
}

func (f *fakeService) Start() error {
	*f.journal = append(*f.journal, "start:"+f.name)
	if f.failOn == "start" {
		return errors.New("boom")
	}
	return nil
}

func (f *fakeService) Stop() error {
	*f.journal = append(*f.journal, "stop:"+f.name)
	return nil
}

func TestHubDependencyOrder(t *testing.T) {
	var journal []string
	h := NewHub()
	require.NoError(t, h.Register(&fakeService{name: "metrics", deps: []string{"status"}, journal: &journal}))
	require.NoError(t, h.Register(&fakeService{name: "status", journal: &journal}))
	require.NoError(t, h.Register(&fakeService{name: "audio", journal: &journal}))

	require.NoError(t, h.InitAll(nil))
	require.NoError(t, h.StartAll())
	h.StopAll()

	assert.Equal(t, []string{
		"init:audio", "init:status", "init:metrics",
		"start:audio", "start:status", "start:metrics",
		"stop:metrics", "stop:status", "stop:audio",
	}, journal)
	assert.Equal(t, []string{"audio", "status", "metrics"}, h.Names())
}

func TestHubRejectsDuplicatesAndMissingDeps(t *testing.T) {
	var journal []string
	h := NewHub()
	require.NoError(t, h.Register(&fakeService{name: "a", deps: []string{"ghost"}, journal: &journal}))
	assert.Error(t, h.Register(&fakeService{name: "a", journal: &journal}))
	assert.ErrorContains(t, h.InitAll(nil), "unregistered service")
}

func TestHubCycle(t *testing.T) {
	var journal []string
	h := NewHub()
	require.NoError(t, h.Register(&fakeService{name: "a", deps: []string{"b"}, journal: &journal}))
	require.NoError(t, h.Register(&fakeService{name: "b", deps: []string{"a"}, journal: &journal}))
	assert.ErrorContains(t, h.InitAll(nil), "circular")
}

func TestHubStartRollback(t *testing.T) {
	var journal []string
	h := NewHub()
	require.NoError(t, h.Register(&fakeService{name: "a", journal: &journal}))
	require.NoError(t, h.Register(&fakeService{name: "b", deps: []string{"a"}, failOn: "start", journal: &journal}))

	require.NoError(t, h.InitAll(nil))
	require.Error(t, h.StartAll())
	assert.Equal(t, "stop:a", journal[len(journal)-1])
}
