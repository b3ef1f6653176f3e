package app

import (
	"context"
	"errors"
	"testing"

	"lucky_slots/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type purgeStub struct {
	calls int
	n     int64
	err   error
}

func (p *purgeStub) Register(context.Context, *model.User) (*model.AuthData, error) {
	return nil, nil
}

func (p *purgeStub) Login(context.Context, string, string) (*model.AuthData, error) {
	return nil, nil
}

func (p *purgeStub) Refresh(context.Context, *model.AuthData) (string, error) {
	return "", nil
}

func (p *purgeStub) Logout(context.Context, string) error {
	return nil
}

func (p *purgeStub) PurgeExpiredSessions(context.Context) (int64, error) {
	p.calls++
	return p.n, p.err
}

func TestNewPurgeJob(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		stubErr error
		wantErr bool
	}{
		{name: "every hour", spec: "@every 1h"},
		{name: "cron expression", spec: "0 3 * * *"},
		{name: "purge failure is logged", spec: "@hourly", stubErr: errors.New("db down")},
		{name: "bad spec", spec: "not a spec", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &purgeStub{n: 2, err: tt.stubErr}

			c, err := newPurgeJob(tt.spec, stub, zap.NewNop())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			entries := c.Entries()
			require.Len(t, entries, 1)

			entries[0].Job.Run()
			assert.Equal(t, 1, stub.calls)
		})
	}
}
