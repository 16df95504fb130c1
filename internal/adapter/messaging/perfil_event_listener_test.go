package messaging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestPerfilEventListener_HandleEvent(t *testing.T) {
	listener := NewPerfilEventListener(zap.NewNop())
	ctx := context.Background()

	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{
			name:    "registration event is acknowledged",
			payload: `{"tipoAccion":"REGISTRO_USUARIO","payload":{"usuario":"u1"}}`,
		},
		{
			name:    "profile update event is acknowledged",
			payload: `{"tipoAccion":"PERFIL_ACTUALIZADO","payload":{"usuario":"u1"}}`,
		},
		{
			name:    "unknown action is acknowledged",
			payload: `{"tipoAccion":"ALGO_NUEVO","payload":{"usuario":"u1"}}`,
		},
		{
			name:    "missing payload is discarded without retry",
			payload: `{"tipoAccion":"REGISTRO_USUARIO"}`,
		},
		{
			name:    "empty usuario is discarded without retry",
			payload: `{"tipoAccion":"REGISTRO_USUARIO","payload":{"usuario":""}}`,
		},
		{
			name:    "non-string usuario is discarded without retry",
			payload: `{"tipoAccion":"REGISTRO_USUARIO","payload":{"usuario":42}}`,
		},
		{
			name:    "undecodable body propagates for redelivery",
			payload: `{not json`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := listener.HandleEvent(ctx, []byte(tt.payload))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
