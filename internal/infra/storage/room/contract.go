package room

import "github.com/m04kA/SMC-HotelBooking/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
