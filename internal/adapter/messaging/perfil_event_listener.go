package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// Lifecycle action types published by the user management service.
const (
	ActionRegistroUsuario   = "REGISTRO_USUARIO"
	ActionPerfilActualizado = "PERFIL_ACTUALIZADO"
)

// PerfilEvent is the shape of a user lifecycle notification.
type PerfilEvent struct {
	TipoAccion string                 `json:"tipoAccion"`
	Payload    map[string]interface{} `json:"payload"`
}

// PerfilEventListener consumes user lifecycle events. The listener only
// classifies and logs events today; no profile state changes here.
type PerfilEventListener struct {
	logger *zap.Logger
}

// NewPerfilEventListener creates a new lifecycle event listener
func NewPerfilEventListener(logger *zap.Logger) *PerfilEventListener {
	return &PerfilEventListener{logger: logger}
}

// HandleEvent processes one raw event body. Events without a usable
// usuario are discarded (logged, nil return, no retry). Decode failures
// propagate so the transport applies its redelivery policy.
func (l *PerfilEventListener) HandleEvent(ctx context.Context, payload []byte) error {
	var event PerfilEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("failed to decode perfil event: %w", err)
	}

	l.logger.Info("Event received", zap.String("tipo_accion", event.TipoAccion))

	if event.Payload == nil {
		l.logger.Warn("Event has empty payload, discarding", zap.ByteString("event", payload))
		return nil
	}

	usuarioID, _ := event.Payload["usuario"].(string)
	if usuarioID == "" {
		l.logger.Warn("Event payload has no usuario, discarding", zap.ByteString("event", payload))
		return nil
	}

	switch event.TipoAccion {
	case ActionRegistroUsuario:
		// Extension point: a default profile could be created here when a
		// user registers.
		l.logger.Info("Usuario registered", zap.String("usuario_id", usuarioID))
	case ActionPerfilActualizado:
		l.logger.Info("Perfil updated for usuario", zap.String("usuario_id", usuarioID))
	default:
		l.logger.Debug("Unknown event type",
			zap.String("tipo_accion", event.TipoAccion),
			zap.String("usuario_id", usuarioID),
		)
	}

	return nil
}
