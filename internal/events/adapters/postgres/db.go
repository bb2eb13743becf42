package postgres

import "event-heatmap-service/internal/db"

type (
	Rows = db.Rows
	DB   = db.Conn
)
