package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Additional-Code/storefront/pkg/errorbank"
)

func noopHandler(context.Context, Args) (any, error) {
	return map[string]any{}, nil
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(Tool{Name: "a", Handler: noopHandler}))
	assert.Error(t, reg.Register(Tool{Name: "a", Handler: noopHandler}))
	assert.Error(t, reg.Register(Tool{Name: "", Handler: noopHandler}))
	assert.Error(t, reg.Register(Tool{Name: "b"}))
}

func TestRegistryDescriptorsKeepRegistrationOrder(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(Tool{Name: "zeta", Description: "z", Handler: noopHandler}))
	require.NoError(t, reg.Register(Tool{Name: "alpha", Description: "a", Handler: noopHandler}))

	descriptors := reg.Descriptors()
	require.Len(t, descriptors, 2)
	assert.Equal(t, "zeta", descriptors[0].Name)
	assert.Equal(t, "alpha", descriptors[1].Name)
}

func TestInvokeUnknownToolIsNotFound(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Invoke(context.Background(), "nope", Args{})
	require.Error(t, err)

	var appErr *errorbank.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, errorbank.KindNotFound, appErr.Kind())
}

func TestArgsInt64Coercion(t *testing.T) {
	cases := []struct {
		name    string
		args    Args
		want    int64
		wantErr bool
	}{
		{name: "json number", args: Args{"order_id": float64(42)}, want: 42},
		{name: "string digits", args: Args{"order_id": "42"}, want: 42},
		{name: "fractional", args: Args{"order_id": 4.2}, wantErr: true},
		{name: "non numeric string", args: Args{"order_id": "abc"}, wantErr: true},
		{name: "missing", args: Args{}, wantErr: true},
		{name: "wrong type", args: Args{"order_id": true}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.args.Int64("order_id")
			if tc.wantErr {
				require.Error(t, err)
				var appErr *errorbank.AppError
				require.True(t, errors.As(err, &appErr))
				assert.Equal(t, errorbank.KindBadRequest, appErr.Kind())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
