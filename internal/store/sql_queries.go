package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-rm-cloud/models"
)

const (
	clientStateTable = "client_state"
	// clientStateRowID is the only row of client_state.
	clientStateRowID = 1
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildLoadClientStateQuery() (string, []any, error) {
	return psql.
		Select("device_token", "user_token", "endpoint", "updated_at").
		From(clientStateTable).
		Where(sq.Eq{"id": clientStateRowID}).
		ToSql()
}

func buildSaveClientStateQuery(state models.ClientState, now time.Time) (string, []any, error) {
	return psql.
		Insert(clientStateTable).
		Columns("id", "device_token", "user_token", "endpoint", "updated_at").
		Values(clientStateRowID, state.DeviceToken, state.UserToken, state.Endpoint, now).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			device_token = excluded.device_token,
			user_token = excluded.user_token,
			endpoint = excluded.endpoint,
			updated_at = excluded.updated_at`).
		ToSql()
}

func buildClearClientStateQuery() (string, []any, error) {
	return psql.
		Delete(clientStateTable).
		Where(sq.Eq{"id": clientStateRowID}).
		ToSql()
}
