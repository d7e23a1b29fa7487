package main

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/arun0009/request-id-header/requestid"
)

// websocketHandler echoes websocket messages. The upgrade response is
// written on the hijacked connection, so the request ID header has to be
// passed to Upgrade explicitly.
func (s *server) websocketHandler(w http.ResponseWriter, r *http.Request) {
	requestID, _ := requestid.FromContext(r.Context())
	responseHeader := http.Header{}
	responseHeader.Set(s.cfg.requestID().Header(), requestID)

	conn, err := s.upgrader.Upgrade(w, r, responseHeader)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err), zap.String("request_id", requestID))
		return
	}
	defer conn.Close()

	s.logger.Debug("websocket connected", zap.String("remote_addr", r.RemoteAddr), zap.String("request_id", requestID))
	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			s.logger.Debug("websocket closed", zap.Error(err), zap.String("request_id", requestID))
			return
		}
		if err := conn.WriteMessage(messageType, message); err != nil {
			s.logger.Warn("websocket write failed", zap.Error(err), zap.String("request_id", requestID))
			return
		}
	}
}
