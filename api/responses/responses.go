package responses

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	pkgerrors "github.com/srmns/quotation-backend/pkg/errors"
	"github.com/srmns/quotation-backend/pkg/logger"
)

// WriteJSON writes the payload as-is. The quotation frontend predates this
// service and expects flat bodies, so there is no success envelope.
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf(`{"level":"error","msg":"failed to encode response","err":"%v"}`, err)
	}
}

// WriteMessage writes the {"message": ...} shape used by mutation endpoints.
func WriteMessage(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"message": message})
}

// WriteError maps an error onto the legacy wire contract:
// validation failures become {"errors": [...]}; everything else becomes
// {"error": ...} with any allowed details merged into the body.
func WriteError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}

	meta := pkgerrors.MetadataFor(typed.Code())

	msg := meta.PublicMessage
	switch typed.Code() {
	case pkgerrors.CodeValidation,
		pkgerrors.CodeBadRequest,
		pkgerrors.CodeUnauthorized,
		pkgerrors.CodeNotFound,
		pkgerrors.CodeConflict,
		pkgerrors.CodeRateLimit,
		pkgerrors.CodeDependency:
		if m := typed.Message(); m != "" {
			msg = m
		}
	}

	var payload map[string]any
	if typed.Code() == pkgerrors.CodeValidation {
		payload = map[string]any{"errors": validationErrors(typed, msg)}
	} else {
		payload = map[string]any{"error": msg}
		if meta.DetailsAllowed {
			if details, ok := typed.Details().(map[string]any); ok {
				for k, v := range details {
					payload[k] = v
				}
			}
		}
	}

	if logg != nil {
		dump := pkgerrors.Dump(err)

		fields := map[string]any{
			"error":         dump.TopMessage,
			"error_code":    dump.Code,
			"error_chain":   dump.Chain,
			"pg_code":       dump.PGCode,
			"pg_detail":     dump.PGDetail,
			"pg_message":    dump.PGMessage,
			"pg_table":      dump.PGTable,
			"pg_column":     dump.PGColumn,
			"pg_constraint": dump.PGConstraint,
		}

		ctx = logg.WithFields(ctx, fields)
		logg.Error(ctx, "request.error", err)
	}

	WriteJSON(w, meta.HTTPStatus, payload)
}

func validationErrors(typed *pkgerrors.Error, fallback string) []string {
	switch details := typed.Details().(type) {
	case []string:
		if len(details) > 0 {
			return details
		}
	case []any:
		msgs := make([]string, 0, len(details))
		for _, d := range details {
			if s, ok := d.(string); ok {
				msgs = append(msgs, s)
			}
		}
		if len(msgs) > 0 {
			return msgs
		}
	}
	return []string{fallback}
}
