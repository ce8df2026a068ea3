package task

import (
	"context"
	"errors"
	"testing"

	"github.com/injoyai/tdx"
)

type fakeTask struct {
	name string
	err  error
	runs *int
}

func (this *fakeTask) Name() string { return this.name }

func (this *fakeTask) Run(ctx context.Context, m *tdx.Manage) error {
	*this.runs++
	return this.err
}

func TestGroup(t *testing.T) {
	runs := 0
	e := errors.New("失败")
	err := Run(context.Background(), nil,
		&fakeTask{name: "a", runs: &runs},
		&fakeTask{name: "b", err: e, runs: &runs},
		&fakeTask{name: "c", runs: &runs},
	)
	if err != e {
		t.Errorf("err = %v, 期望 %v", err, e)
	}
	if runs != 2 {
		t.Errorf("runs = %d, 期望 2", runs)
	}
}
